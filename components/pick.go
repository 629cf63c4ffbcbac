package components

import (
	"github.com/automoto/orbitview/shared/playback"
	"github.com/yohamta/donburi"
)

// PickData is the orbital object under the mouse cursor, if any.
type PickData struct {
	Hovered bool
	Index   int
	Entry   playback.Entry
	// Position of the hovered object in light-years
	LightYearsX float64
	LightYearsY float64
}

var Pick = donburi.NewComponentType[PickData]()
