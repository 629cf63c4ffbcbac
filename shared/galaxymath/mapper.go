// Package galaxymath converts physical galaxy coordinates into viewport pixels.
// It has no dependencies on ebitengine; positions use donburi's Vec2.
package galaxymath

import (
	"errors"

	"github.com/yohamta/donburi/features/math"
)

// SecondsPerYear is the approximation used to derive a light-year.
const SecondsPerYear = 31_540_000

var (
	ErrInvalidExtent     = errors.New("galaxy extent must be positive")
	ErrInvalidLightSpeed = errors.New("light speed must be positive")
)

// GalaxyExtent is the physical size of the simulated galaxy in light-years.
type GalaxyExtent struct {
	Width  float64
	Height float64
}

// Validate rejects extents that would divide by zero in Map.
func (e GalaxyExtent) Validate() error {
	if e.Width <= 0 || e.Height <= 0 {
		return ErrInvalidExtent
	}
	return nil
}

// PhysicalConstants holds the speed of light and the derived light-year.
type PhysicalConstants struct {
	LightSpeed float64
	LightYear  float64
}

// NewPhysicalConstants derives LightYear from lightSpeed.
func NewPhysicalConstants(lightSpeed float64) (PhysicalConstants, error) {
	if lightSpeed <= 0 {
		return PhysicalConstants{}, ErrInvalidLightSpeed
	}
	return PhysicalConstants{
		LightSpeed: lightSpeed,
		LightYear:  lightSpeed * SecondsPerYear,
	}, nil
}

// Viewport is the drawable area in pixels.
type Viewport struct {
	Width  float64
	Height float64
}

// RawPosition is a physical-space coordinate taken from a snapshot record.
type RawPosition struct {
	X float64
	Y float64
}

// Map converts a raw position to viewport pixels.
//
// Both axes are scaled against the viewport height. Only x is shifted to
// centre non-square viewports; y is left as is.
func Map(raw RawPosition, extent GalaxyExtent, constants PhysicalConstants, viewport Viewport) math.Vec2 {
	x := raw.X / constants.LightYear
	y := raw.Y / constants.LightYear

	x *= viewport.Height / extent.Width
	y *= viewport.Height / extent.Height

	x -= (viewport.Height - viewport.Width) / 2

	return math.NewVec2(x, y)
}

// Mapper bundles the immutable inputs of Map that are fixed at startup.
type Mapper struct {
	Extent    GalaxyExtent
	Constants PhysicalConstants
}

// NewMapper validates extent and light speed once so Map never divides by zero.
func NewMapper(extent GalaxyExtent, lightSpeed float64) (Mapper, error) {
	if err := extent.Validate(); err != nil {
		return Mapper{}, err
	}
	constants, err := NewPhysicalConstants(lightSpeed)
	if err != nil {
		return Mapper{}, err
	}
	return Mapper{Extent: extent, Constants: constants}, nil
}

// Map maps raw into the given viewport.
func (m Mapper) Map(raw RawPosition, viewport Viewport) math.Vec2 {
	return Map(raw, m.Extent, m.Constants, viewport)
}

// ToLightYears returns raw expressed in light-years.
func (m Mapper) ToLightYears(raw RawPosition) (x, y float64) {
	return raw.X / m.Constants.LightYear, raw.Y / m.Constants.LightYear
}
