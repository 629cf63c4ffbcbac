package systems

import (
	"image/color"

	"github.com/automoto/orbitview/components"
	cfg "github.com/automoto/orbitview/config"
	"github.com/automoto/orbitview/fonts"
	"github.com/automoto/orbitview/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// ShowStatus puts msg in the status banner and restarts its fade.
func ShowStatus(ecs *ecs.ECS, msg string) {
	entry, ok := tags.Viewer.First(ecs.World)
	if !ok {
		return
	}
	status := components.Status.Get(entry)
	status.Message = msg
	status.Alpha = 1
	status.Fade = gween.New(1, 0, cfg.HUD.StatusSeconds, ease.InQuad)
}

// UpdateStatus fades the banner out, one tick at a time.
func UpdateStatus(ecs *ecs.ECS) {
	entry, ok := tags.Viewer.First(ecs.World)
	if !ok {
		return
	}
	advanceStatus(components.Status.Get(entry), 1/float32(cfg.Animation.UpdateRate))
}

func advanceStatus(status *components.StatusData, dt float32) {
	if status.Fade == nil {
		return
	}
	alpha, finished := status.Fade.Update(dt)
	status.Alpha = alpha
	if finished {
		status.Alpha = 0
		status.Message = ""
		status.Fade = nil
	}
}

// DrawStatus renders the banner along the bottom edge of the screen.
func DrawStatus(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := tags.Viewer.First(ecs.World)
	if !ok {
		return
	}
	status := components.Status.Get(entry)
	if status.Message == "" || status.Alpha <= 0 {
		return
	}

	c := cfg.HUD.StatusColor
	faded := color.RGBA{
		R: uint8(float32(c.R) * status.Alpha),
		G: uint8(float32(c.G) * status.Alpha),
		B: uint8(float32(c.B) * status.Alpha),
		A: uint8(float32(c.A) * status.Alpha),
	}
	y := screen.Bounds().Dy() - int(cfg.HUD.Margin)
	text.Draw(screen, status.Message, fonts.HUD.Get(), int(cfg.HUD.Margin), y, faded)
}
