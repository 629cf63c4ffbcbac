package tags

import "github.com/yohamta/donburi"

var (
	Viewer = donburi.NewTag().SetName("Viewer")
)

// Resolv tags for cursor picking
const (
	ResolvOrbital = "orbital"
	ResolvCursor  = "cursor"
)
