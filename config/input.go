package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical viewer action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionPanLeft
	ActionPanRight
	ActionPanUp
	ActionPanDown
	ActionZoomIn
	ActionZoomOut
	ActionResetView
	ActionToggleHUD
	ActionToggleInfo
	ActionToggleFullscreen
	ActionCycleResolution
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Wheel movement below this is ignored (trackpads report tiny deltas)
	WheelDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		WheelDeadzone: 0.01,
		Bindings: map[ActionID]InputBinding{
			ActionPanLeft: {
				Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionPanRight: {
				Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyRight},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionPanUp: {
				Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyUp},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionPanDown: {
				Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyDown},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionZoomIn: {
				Keys: []ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadAdd},
				// Right shoulder
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopRight,
				},
			},
			ActionZoomOut: {
				Keys: []ebiten.Key{ebiten.KeyMinus, ebiten.KeyNumpadSubtract},
				// Left shoulder
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopLeft,
				},
			},
			ActionResetView: {
				Keys: []ebiten.Key{ebiten.KeyR, ebiten.KeyHome},
				// Select / Share button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			ActionToggleHUD: {
				Keys: []ebiten.Key{ebiten.KeyH},
			},
			ActionToggleInfo: {
				Keys: []ebiten.Key{ebiten.KeyI, ebiten.KeyF1},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionToggleFullscreen: {
				Keys: []ebiten.Key{ebiten.KeyF, ebiten.KeyF11},
			},
			ActionCycleResolution: {
				Keys: []ebiten.Key{ebiten.KeyV},
			},
		},
	}
}
