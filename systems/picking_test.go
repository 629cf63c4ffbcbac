package systems

import (
	"testing"
	"testing/fstest"

	"github.com/automoto/orbitview/components"
	"github.com/automoto/orbitview/shared/viewcamera"
)

// 1000 and 10000 light-years in metres.
func pickSnapshots() fstest.MapFS {
	return fstest.MapFS{
		"0.json": {Data: []byte(`[
			{"x":0,"y":0},
			{"x":0,"y":0},
			{"x":9.455454125320e18,"y":9.455454125320e19}
		]`)},
	}
}

func pickCamera() viewcamera.Settings {
	return viewcamera.Settings{Zoom: 1, ZoomRatio: 1, ZoomMinimum: 1, PanY: 100, MovementSpeed: 5}
}

func TestPickAt(t *testing.T) {
	_, entry := newTestViewer(t, pickSnapshots(), []string{"0.json"}, pickCamera())
	camera := components.Camera.Get(entry).Camera
	set := components.Playback.Get(entry).Driver.Current()
	viewport := *components.Viewport.Get(entry)

	x0, y0, _ := projectEntry(camera, set.At(0), testHeight)
	x2, y2, _ := projectEntry(camera, set.At(2), testHeight)

	tests := []struct {
		name      string
		x, y      float64
		wantIndex int
		wantOK    bool
	}{
		{"exact hit", x2, y2, 2, true},
		{"inside pick radius", x2 + 2, y2 - 2, 2, true},
		{"overlapping entries pick the lower index", x0 + 1, y0, 0, true},
		{"miss", x2 + 40, y2 + 40, 0, false},
		{"cursor outside window", -5, y0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			index, ok := PickAt(camera, set, viewport, tt.x, tt.y)
			if ok != tt.wantOK || (ok && index != tt.wantIndex) {
				t.Errorf("PickAt(%v, %v) = %d, %v; want %d, %v", tt.x, tt.y, index, ok, tt.wantIndex, tt.wantOK)
			}
		})
	}
}

func TestPickAtEmpty(t *testing.T) {
	camera := viewcamera.New(pickCamera())
	if _, ok := PickAt(camera, nil, components.ViewportData{Width: testWidth, Height: testHeight}, 10, 10); ok {
		t.Error("picked from a nil render set")
	}
}

func TestUpdatePicking(t *testing.T) {
	e, entry := newTestViewer(t, pickSnapshots(), []string{"0.json"}, pickCamera())
	camera := components.Camera.Get(entry).Camera
	set := components.Playback.Get(entry).Driver.Current()
	x, y, _ := projectEntry(camera, set.At(2), testHeight)

	recordInput(getOrCreateInput(e), pressed(), 0, int(x), int(y))
	UpdatePicking(e)

	pick := components.Pick.Get(entry)
	if !pick.Hovered || pick.Index != 2 {
		t.Fatalf("pick = %+v, want entry 2", pick)
	}
	if !approx(pick.LightYearsX, 1000) || !approx(pick.LightYearsY, 10000) {
		t.Errorf("light-years = %v, %v", pick.LightYearsX, pick.LightYearsY)
	}

	recordInput(getOrCreateInput(e), pressed(), 0, 0, 0)
	UpdatePicking(e)
	if pick.Hovered {
		t.Errorf("pick not cleared: %+v", pick)
	}
}

func approx(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-6*max(1, b)
}
