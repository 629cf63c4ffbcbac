package playback

import (
	"iter"

	"github.com/automoto/orbitview/shared/galaxymath"
	"github.com/yohamta/donburi/features/math"
)

// Sprite is an opaque handle to whatever the renderer draws for an entry.
// The renderer anchors it at its centre.
type Sprite any

// Entry is one object of a render set, mapped into viewport pixels but not
// yet passed through the camera.
type Entry struct {
	Raw      galaxymath.RawPosition
	Position math.Vec2
	Scale    float64
	Sprite   Sprite
}

// RenderSet is the immutable set of entries for one step. A new one is built
// on every successful tick.
type RenderSet struct {
	Step int
	ID   string

	entries []Entry
}

// Len returns the number of entries.
func (s *RenderSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// At returns entry i.
func (s *RenderSet) At(i int) Entry {
	return s.entries[i]
}

// All iterates the entries in snapshot order.
func (s *RenderSet) All() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		if s == nil {
			return
		}
		for i, e := range s.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}
