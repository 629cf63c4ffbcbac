package systems

import (
	"fmt"

	"github.com/automoto/orbitview/components"
	cfg "github.com/automoto/orbitview/config"
	"github.com/automoto/orbitview/fonts"
	"github.com/automoto/orbitview/shared/viewcamera"
	"github.com/automoto/orbitview/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// HUDStats is everything the overlays report about the viewer.
type HUDStats struct {
	Step     int
	Steps    int
	ID       string
	Objects  int
	Camera   viewcamera.State
	Failures int
	LastErr  error
	TPS      float64
	FPS      float64
	Pick     components.PickData
}

// CollectStats gathers HUD values from the viewer entity.
func CollectStats(ecs *ecs.ECS) (HUDStats, bool) {
	entry, ok := tags.Viewer.First(ecs.World)
	if !ok {
		return HUDStats{}, false
	}
	pb := components.Playback.Get(entry)
	set := pb.Driver.Current()

	stats := HUDStats{
		Step:     pb.Driver.Step(),
		Steps:    pb.Driver.Len(),
		Objects:  set.Len(),
		Camera:   components.Camera.Get(entry).Camera.State(),
		Failures: pb.Failures,
		LastErr:  pb.LastError,
		Pick:     *components.Pick.Get(entry),
	}
	// After a failed tick the driver has moved on but the screen still shows
	// the retained set, so report the set's step.
	if set != nil {
		stats.Step = set.Step
		stats.ID = set.ID
	}
	return stats, true
}

// Lines formats the stats one item per line.
func (s HUDStats) Lines() []string {
	lines := []string{
		fmt.Sprintf("step %d/%d  %s", s.Step+1, s.Steps, s.ID),
		fmt.Sprintf("objects %d", s.Objects),
		fmt.Sprintf("zoom %.2f  pan %.1f, %.1f", s.Camera.Zoom, s.Camera.PanX, s.Camera.PanY),
		fmt.Sprintf("tps %.0f  fps %.0f", s.TPS, s.FPS),
	}
	if s.Failures > 0 {
		lines = append(lines, fmt.Sprintf("load failures %d", s.Failures))
	}
	if s.LastErr != nil {
		lines = append(lines, s.LastErr.Error())
	}
	if s.Pick.Hovered {
		lines = append(lines, fmt.Sprintf("#%d  %.1f ly, %.1f ly", s.Pick.Index, s.Pick.LightYearsX, s.Pick.LightYearsY))
	}
	return lines
}

// DrawHUD renders playback and camera stats in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreateSettings(ecs).ShowHUD {
		return
	}
	stats, ok := CollectStats(ecs)
	if !ok {
		return
	}
	stats.TPS = ebiten.ActualTPS()
	stats.FPS = ebiten.ActualFPS()

	y := cfg.HUD.Margin + cfg.HUD.TitleHeight
	text.Draw(screen, cfg.C.Title, fonts.Title.Get(), int(cfg.HUD.Margin), int(y), cfg.HUD.TextColor)
	y += cfg.HUD.LineHeight

	face := fonts.HUD.Get()
	for _, line := range stats.Lines() {
		text.Draw(screen, line, face, int(cfg.HUD.Margin), int(y), cfg.HUD.TextColor)
		y += cfg.HUD.LineHeight
	}
}
