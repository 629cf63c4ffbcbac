package components

import (
	"github.com/automoto/orbitview/shared/galaxymath"
	"github.com/yohamta/donburi"
)

// ViewportData is the current drawable size, updated from Layout.
type ViewportData struct {
	Width  int
	Height int
}

// Viewport converts the size for the coordinate mapper.
func (v ViewportData) Viewport() galaxymath.Viewport {
	return galaxymath.Viewport{Width: float64(v.Width), Height: float64(v.Height)}
}

var Viewport = donburi.NewComponentType[ViewportData]()
