package components

import (
	"github.com/automoto/orbitview/shared/playback"
	"github.com/yohamta/donburi"
)

// PlaybackData holds the snapshot driver. The driver's current render set is
// what the renderers read.
type PlaybackData struct {
	Driver    *playback.Driver
	LastError error // Most recent tick failure, nil after a good tick
	Failures  int   // Total failed ticks since start
}

var Playback = donburi.NewComponentType[PlaybackData]()
