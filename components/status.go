package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// StatusData is a transient banner message that fades out.
type StatusData struct {
	Message string
	Alpha   float32      // 0 = hidden, 1 = fully visible
	Fade    *gween.Tween // nil when no message is showing
}

var Status = donburi.NewComponentType[StatusData]()
