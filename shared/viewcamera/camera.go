// Package viewcamera holds the zoom/pan state applied to every mapped
// position before it is drawn. It has no dependencies on ebitengine.
package viewcamera

import "github.com/yohamta/donburi/features/math"

// Direction is a logical pan intent. Mapping physical keys to directions is
// done by the input layer.
type Direction int

const (
	PanLeft Direction = iota
	PanRight
	PanUp
	PanDown
)

func (d Direction) String() string {
	switch d {
	case PanLeft:
		return "left"
	case PanRight:
		return "right"
	case PanUp:
		return "up"
	case PanDown:
		return "down"
	}
	return "unknown"
}

// Axis identifies the velocity component a direction drives.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Axis returns the axis d drives.
func (d Direction) Axis() Axis {
	if d == PanUp || d == PanDown {
		return AxisY
	}
	return AxisX
}

// sign is the velocity sign for d. Panning left moves the world right.
func (d Direction) sign() float64 {
	switch d {
	case PanLeft, PanDown:
		return 1
	case PanRight, PanUp:
		return -1
	}
	return 0
}

func (d Direction) opposite() Direction {
	switch d {
	case PanLeft:
		return PanRight
	case PanRight:
		return PanLeft
	case PanUp:
		return PanDown
	}
	return PanUp
}

// Settings are the initial values a Camera starts from and resets to.
type Settings struct {
	Zoom          float64
	ZoomRatio     float64
	ZoomMinimum   float64
	PanX          float64
	PanY          float64
	MovementSpeed float64
}

// State is a snapshot of the camera, handy for HUDs and tests.
type State struct {
	Zoom         float64
	ZoomRatio    float64
	ZoomMinimum  float64
	PanX         float64
	PanY         float64
	PanVelocityX float64
	PanVelocityY float64
}

// Camera accumulates zoom and pan. Zoom never drops below ZoomMinimum.
type Camera struct {
	settings Settings
	state    State

	held   [4]bool
	driver [2]Direction // direction currently setting each axis' velocity
}

// New creates a camera from s. A zero or negative ZoomMinimum is replaced by 1
// so Apply never divides by zero.
func New(s Settings) *Camera {
	if s.ZoomMinimum <= 0 {
		s.ZoomMinimum = 1
	}
	c := &Camera{
		settings: s,
		state: State{
			ZoomRatio:   s.ZoomRatio,
			ZoomMinimum: s.ZoomMinimum,
		},
	}
	c.Reset()
	return c
}

// Reset restores zoom and pan offset to the initial settings. Held keys keep
// driving their axes.
func (c *Camera) Reset() {
	c.state.Zoom = c.settings.Zoom
	c.state.PanX = c.settings.PanX
	c.state.PanY = c.settings.PanY
	c.clampZoom()
}

// State returns a copy of the current camera state.
func (c *Camera) State() State {
	return c.state
}

// MovementSpeed is the pan velocity magnitude set by a key press.
func (c *Camera) MovementSpeed() float64 {
	return c.settings.MovementSpeed
}

// Apply returns pos and scale with the camera applied: scale is multiplied by
// zoom*ratio, pos is translated by the pan offset and then scaled by
// zoom/minimum. The inputs are not modified, so repeated draws of the same
// render entry never compound.
func (c *Camera) Apply(pos math.Vec2, scale float64) (math.Vec2, float64) {
	s := c.state
	scale *= s.Zoom * s.ZoomRatio

	x := pos.X + s.PanX
	y := pos.Y + s.PanY

	factor := s.Zoom / s.ZoomMinimum
	return math.NewVec2(x*factor, y*factor), scale
}

// OnScroll adds deltaY to the zoom, clamped at the minimum. There is no upper bound.
func (c *Camera) OnScroll(deltaY float64) {
	c.state.Zoom += deltaY
	c.clampZoom()
}

func (c *Camera) clampZoom() {
	if c.state.Zoom < c.state.ZoomMinimum {
		c.state.Zoom = c.state.ZoomMinimum
	}
}

// OnKeyPress starts panning in d. The last press on an axis wins.
func (c *Camera) OnKeyPress(d Direction) {
	if d < PanLeft || d > PanDown {
		return
	}
	c.held[d] = true
	c.drive(d)
}

// OnKeyRelease stops panning in d. Releasing a direction that is not driving
// its axis leaves the axis alone; if the opposite direction is still held it
// takes the axis back.
func (c *Camera) OnKeyRelease(d Direction) {
	if d < PanLeft || d > PanDown || !c.held[d] {
		return
	}
	c.held[d] = false

	axis := d.Axis()
	if c.driver[axis] != d {
		return
	}
	if other := d.opposite(); c.held[other] {
		c.drive(other)
		return
	}
	c.setVelocity(axis, 0)
}

func (c *Camera) drive(d Direction) {
	axis := d.Axis()
	c.driver[axis] = d
	c.setVelocity(axis, d.sign()*c.settings.MovementSpeed)
}

func (c *Camera) setVelocity(axis Axis, v float64) {
	if axis == AxisX {
		c.state.PanVelocityX = v
		return
	}
	c.state.PanVelocityY = v
}

// Tick advances the pan offset by the current velocity. Called once per
// animation tick, never from draw.
func (c *Camera) Tick() {
	c.state.PanX += c.state.PanVelocityX
	c.state.PanY += c.state.PanVelocityY
}
