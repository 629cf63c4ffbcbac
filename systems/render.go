package systems

import (
	"github.com/automoto/orbitview/components"
	"github.com/automoto/orbitview/shared/playback"
	"github.com/automoto/orbitview/shared/viewcamera"
	"github.com/automoto/orbitview/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var (
	orbitalOp = &ebiten.DrawImageOptions{}
)

// Viewport culling skips draw calls for objects that are off-screen.
// A small padding keeps sprites from popping in/out at the edges.
const cullPadding = 16.0

// projectEntry runs e through the camera and converts it to screen space.
// Snapshot data is y-up, the screen is y-down.
func projectEntry(camera *viewcamera.Camera, e playback.Entry, screenHeight float64) (x, y, scale float64) {
	pos, scale := camera.Apply(e.Position, e.Scale)
	return pos.X, screenHeight - pos.Y, scale
}

// spriteHalfSize is half the larger side of the entry's sprite at scale 1.
func spriteHalfSize(e playback.Entry) float64 {
	img, ok := e.Sprite.(*ebiten.Image)
	if !ok || img == nil {
		return 0
	}
	b := img.Bounds()
	return float64(max(b.Dx(), b.Dy())) / 2
}

// DrawOrbitals draws the current render set, each sprite centred on its position.
func DrawOrbitals(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := tags.Viewer.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(entry).Camera
	set := components.Playback.Get(entry).Driver.Current()

	width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

	for _, e := range set.All() {
		img, ok := e.Sprite.(*ebiten.Image)
		if !ok || img == nil {
			continue
		}

		x, y, scale := projectEntry(camera, e, height)

		half := spriteHalfSize(e)*scale + cullPadding
		if x+half < 0 || x-half > width || y+half < 0 || y-half > height {
			continue
		}

		w, h := img.Bounds().Dx(), img.Bounds().Dy()
		orbitalOp.GeoM.Reset()
		orbitalOp.GeoM.Translate(-float64(w)/2, -float64(h)/2)
		orbitalOp.GeoM.Scale(scale, scale)
		orbitalOp.GeoM.Translate(x, y)
		screen.DrawImage(img, orbitalOp)
	}
}
