package systems

import (
	"github.com/automoto/orbitview/components"
	cfg "github.com/automoto/orbitview/config"
	"github.com/automoto/orbitview/shared/viewcamera"
	"github.com/yohamta/donburi/ecs"
)

// EventHandler receives the viewer's logical input events. The host decides
// how raw keys and wheel movement become these calls.
type EventHandler interface {
	OnKeyDown(dir viewcamera.Direction)
	OnKeyUp(dir viewcamera.Direction)
	OnScroll(delta float64)
}

var panActions = [...]struct {
	action cfg.ActionID
	dir    viewcamera.Direction
}{
	{cfg.ActionPanLeft, viewcamera.PanLeft},
	{cfg.ActionPanRight, viewcamera.PanRight},
	{cfg.ActionPanUp, viewcamera.PanUp},
	{cfg.ActionPanDown, viewcamera.PanDown},
}

// DispatchInput turns one frame of action state into events for h.
func DispatchInput(input *components.InputData, h EventHandler) {
	for _, p := range panActions {
		state := GetAction(input, p.action)
		if state.JustPressed {
			h.OnKeyDown(p.dir)
		}
		if state.JustReleased {
			h.OnKeyUp(p.dir)
		}
	}

	if input.WheelY != 0 {
		h.OnScroll(input.WheelY)
	}
	if GetAction(input, cfg.ActionZoomIn).JustPressed {
		h.OnScroll(cfg.Camera.KeyZoomStep)
	}
	if GetAction(input, cfg.ActionZoomOut).JustPressed {
		h.OnScroll(-cfg.Camera.KeyZoomStep)
	}
}

// CameraEvents adapts a camera to EventHandler.
type CameraEvents struct {
	Camera *viewcamera.Camera
}

func (c CameraEvents) OnKeyDown(dir viewcamera.Direction) { c.Camera.OnKeyPress(dir) }
func (c CameraEvents) OnKeyUp(dir viewcamera.Direction)   { c.Camera.OnKeyRelease(dir) }
func (c CameraEvents) OnScroll(delta float64)             { c.Camera.OnScroll(delta) }

// UpdateCameraInput applies this frame's input to the camera. Input changes
// velocity and zoom only; the pan offset moves in UpdateAnimation.
func UpdateCameraInput(ecs *ecs.ECS) {
	entry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(entry).Camera
	input := getOrCreateInput(ecs)

	DispatchInput(input, CameraEvents{Camera: camera})

	if GetAction(input, cfg.ActionResetView).JustPressed {
		camera.Reset()
	}
}
