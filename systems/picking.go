package systems

import (
	"math"

	"github.com/automoto/orbitview/components"
	cfg "github.com/automoto/orbitview/config"
	"github.com/automoto/orbitview/shared/playback"
	"github.com/automoto/orbitview/shared/viewcamera"
	"github.com/automoto/orbitview/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

const pickCellSize = 32

// UpdatePicking finds the orbital object under the mouse cursor.
func UpdatePicking(ecs *ecs.ECS) {
	entry, ok := tags.Viewer.First(ecs.World)
	if !ok {
		return
	}
	pick := components.Pick.Get(entry)
	*pick = components.PickData{}

	camera := components.Camera.Get(entry).Camera
	driver := components.Playback.Get(entry).Driver
	viewport := components.Viewport.Get(entry)
	input := getOrCreateInput(ecs)

	set := driver.Current()
	index, ok := PickAt(camera, set, *viewport, float64(input.CursorX), float64(input.CursorY))
	if !ok {
		return
	}

	e := set.At(index)
	lyX, lyY := driver.Mapper().ToLightYears(e.Raw)
	*pick = components.PickData{
		Hovered:     true,
		Index:       index,
		Entry:       e,
		LightYearsX: lyX,
		LightYearsY: lyY,
	}
}

// PickAt returns the index of the visible entry closest to the cursor whose
// drawn bounds, grown by the pick radius, contain it.
func PickAt(camera *viewcamera.Camera, set *playback.RenderSet, viewport components.ViewportData, cursorX, cursorY float64) (int, bool) {
	if set.Len() == 0 || viewport.Width <= 0 || viewport.Height <= 0 {
		return 0, false
	}
	width, height := float64(viewport.Width), float64(viewport.Height)
	if cursorX < 0 || cursorY < 0 || cursorX > width || cursorY > height {
		return 0, false
	}

	space := resolv.NewSpace(viewport.Width, viewport.Height, pickCellSize, pickCellSize)
	r := cfg.HUD.PickRadius

	for i, e := range set.All() {
		x, y, scale := projectEntry(camera, e, height)
		half := math.Max(spriteHalfSize(e)*scale, r)
		if x+half < 0 || x-half > width || y+half < 0 || y-half > height {
			continue
		}
		obj := resolv.NewObject(x-half, y-half, 2*half, 2*half, tags.ResolvOrbital)
		obj.Data = i
		space.Add(obj)
	}

	cursor := resolv.NewObject(cursorX-r, cursorY-r, 2*r, 2*r, tags.ResolvCursor)
	space.Add(cursor)

	check := cursor.Check(0, 0, tags.ResolvOrbital)
	if check == nil {
		return 0, false
	}

	// Check works on shared cells, so confirm the overlap before picking.
	best, bestDist := -1, math.Inf(1)
	for _, obj := range check.ObjectsByTags(tags.ResolvOrbital) {
		cx, cy := obj.X+obj.W/2, obj.Y+obj.H/2
		dx, dy := math.Abs(cx-cursorX), math.Abs(cy-cursorY)
		if dx > obj.W/2+r || dy > obj.H/2+r {
			continue
		}
		index := obj.Data.(int)
		d := math.Hypot(dx, dy)
		if d < bestDist || (d == bestDist && index < best) {
			best, bestDist = index, d
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}
