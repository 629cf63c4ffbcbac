package scenes

import (
	"sync"

	"github.com/automoto/orbitview/components"
	cfg "github.com/automoto/orbitview/config"
	"github.com/automoto/orbitview/shared/playback"
	"github.com/automoto/orbitview/shared/viewcamera"
	"github.com/automoto/orbitview/systems"
	"github.com/automoto/orbitview/systems/factory"
	"github.com/automoto/orbitview/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ViewerOptions are the collaborators the scene takes ownership of.
type ViewerOptions struct {
	Camera   *viewcamera.Camera
	Driver   *playback.Driver
	Settings components.SettingsData
	Width    int
	Height   int
}

// ViewerScene plays back snapshots under a pannable, zoomable camera.
type ViewerScene struct {
	ecs    *ecs.ECS
	opts   ViewerOptions
	viewer *donburi.Entry
	infoUI *ui.InfoUI
	once   sync.Once
}

// NewViewerScene creates the scene. The driver must already be initialized.
func NewViewerScene(opts ViewerOptions) *ViewerScene {
	return &ViewerScene{opts: opts}
}

func (vs *ViewerScene) Update() {
	vs.once.Do(vs.configure)
	vs.ecs.Update()

	if systems.GetOrCreateSettings(vs.ecs).ShowInfo {
		if stats, ok := systems.CollectStats(vs.ecs); ok {
			vs.infoUI.SetStats(stats)
		}
		vs.infoUI.Update()
	}
}

func (vs *ViewerScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.SpaceBlack)

	if vs.ecs == nil {
		return
	}
	vs.ecs.Draw(screen)

	if systems.GetOrCreateSettings(vs.ecs).ShowInfo {
		vs.infoUI.UI.Draw(screen)
	}
}

// OnDraw renders one frame; the host calls it at display refresh rate.
func (vs *ViewerScene) OnDraw(screen *ebiten.Image) {
	vs.Draw(screen)
}

// OnKeyDown, OnKeyUp and OnScroll let a host drive the camera directly
// instead of through polled input.
func (vs *ViewerScene) OnKeyDown(dir viewcamera.Direction) {
	vs.opts.Camera.OnKeyPress(dir)
}

func (vs *ViewerScene) OnKeyUp(dir viewcamera.Direction) {
	vs.opts.Camera.OnKeyRelease(dir)
}

func (vs *ViewerScene) OnScroll(delta float64) {
	vs.opts.Camera.OnScroll(delta)
}

// SetViewport records the drawable size. Playback reads it on every tick.
func (vs *ViewerScene) SetViewport(width, height int) {
	vs.opts.Width = width
	vs.opts.Height = height
	if vs.viewer == nil {
		return
	}
	viewport := components.Viewport.Get(vs.viewer)
	viewport.Width = width
	viewport.Height = height
}

func (vs *ViewerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Input and camera run before playback so a key pressed this frame
	// moves the pan offset on this tick.
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateViewerActions)
	ecs.AddSystem(systems.UpdateCameraInput)
	ecs.AddSystem(systems.UpdateAnimation)
	ecs.AddSystem(systems.UpdateStatus)
	ecs.AddSystem(systems.UpdatePicking)

	ecs.AddRenderer(cfg.Default, systems.DrawOrbitals)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawStatus)

	vs.ecs = ecs

	factory.CreateSettings(vs.ecs, vs.opts.Settings)
	vs.viewer = factory.CreateViewer(vs.ecs, vs.opts.Camera, vs.opts.Driver, vs.opts.Width, vs.opts.Height)

	vs.infoUI = ui.NewInfoUI()
}
