package playback

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/automoto/orbitview/shared/galaxymath"
	"github.com/automoto/orbitview/shared/snapshot"
)

const lightSpeed = 299792458

var viewport = galaxymath.Viewport{Width: 1024, Height: 768}

func newTestDriver(t *testing.T, fsys fstest.MapFS, sequence []string) *Driver {
	t.Helper()
	d, err := New(Options{
		Sequence:   sequence,
		Loader:     snapshot.NewDirLoader(fsys),
		Extent:     galaxymath.GalaxyExtent{Width: 52000, Height: 52000},
		LightSpeed: lightSpeed,
		Sprite:     "star",
		BaseScale:  4,
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return d
}

func threeSteps() fstest.MapFS {
	return fstest.MapFS{
		"0.json": {Data: []byte(`[{"x":0,"y":0}]`)},
		"1.json": {Data: []byte(`[{"x":0,"y":0},{"x":1,"y":1},{"x":2,"y":2}]`)},
		"2.json": {Data: []byte(`[{"x":0,"y":0},{"x":5,"y":5}]`)},
	}
}

func TestNewConfigErrors(t *testing.T) {
	loader := snapshot.NewDirLoader(fstest.MapFS{})
	extent := galaxymath.GalaxyExtent{Width: 1, Height: 1}

	tests := []struct {
		name string
		opts Options
		want error
	}{
		{"empty sequence", Options{Loader: loader, Extent: extent, LightSpeed: 1}, ErrEmptySequence},
		{"nil loader", Options{Sequence: []string{"a"}, Extent: extent, LightSpeed: 1}, ErrNilLoader},
		{"zero extent", Options{Sequence: []string{"a"}, Loader: loader, LightSpeed: 1}, galaxymath.ErrInvalidExtent},
		{"negative light speed", Options{Sequence: []string{"a"}, Loader: loader, Extent: extent, LightSpeed: -1}, galaxymath.ErrInvalidLightSpeed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts)
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("got %v, want *ConfigError", err)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestInitializeBuildsStepZero(t *testing.T) {
	d := newTestDriver(t, threeSteps(), []string{"0.json", "1.json", "2.json"})

	if d.Running() {
		t.Fatal("driver running before Initialize")
	}
	if err := d.Tick(viewport); !errors.Is(err, ErrNotInitialized) {
		t.Errorf("Tick before Initialize: got %v, want ErrNotInitialized", err)
	}

	if err := d.Initialize(viewport); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	set := d.Current()
	if d.Step() != 0 || set.Step != 0 || set.ID != "0.json" {
		t.Errorf("step = %d, set = %d/%s", d.Step(), set.Step, set.ID)
	}
	if set.Len() != 1 {
		t.Fatalf("entries = %d, want 1", set.Len())
	}

	e := set.At(0)
	if e.Position.X != 128 || e.Position.Y != 0 {
		t.Errorf("position = %v, want (128, 0)", e.Position)
	}
	if e.Scale != 4 || e.Sprite != "star" {
		t.Errorf("scale = %v, sprite = %v", e.Scale, e.Sprite)
	}
}

func TestTickWrapsAfterSequence(t *testing.T) {
	sequence := []string{"0.json", "1.json", "2.json"}
	d := newTestDriver(t, threeSteps(), sequence)
	if err := d.Initialize(viewport); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	for i := 1; i <= len(sequence); i++ {
		if err := d.Tick(viewport); err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		if want := i % len(sequence); d.Step() != want {
			t.Errorf("after tick %d: step = %d, want %d", i, d.Step(), want)
		}
	}
	if d.Step() != 0 {
		t.Errorf("step = %d after a full cycle, want 0", d.Step())
	}
}

func TestTickReplacesRenderSet(t *testing.T) {
	d := newTestDriver(t, threeSteps(), []string{"0.json", "1.json", "2.json"})
	if err := d.Initialize(viewport); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	before := d.Current()

	if err := d.Tick(viewport); err != nil {
		t.Fatalf("Tick failed: %v", err)
	}
	if got := d.Current().Len(); got != 3 {
		t.Errorf("entries after step 1 = %d, want 3", got)
	}
	if before.Len() != 1 {
		t.Errorf("previous render set was modified: %d entries", before.Len())
	}

	if err := d.Tick(viewport); err != nil {
		t.Fatalf("Tick failed: %v", err)
	}
	if got := d.Current().Len(); got != 2 {
		t.Errorf("entries after step 2 = %d, want 2", got)
	}
}

func TestTickKeepsPreviousSetOnLoadError(t *testing.T) {
	fsys := threeSteps()
	delete(fsys, "1.json")
	d := newTestDriver(t, fsys, []string{"0.json", "1.json", "2.json"})
	if err := d.Initialize(viewport); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	before := d.Current()

	err := d.Tick(viewport)
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("got %v, want *LoadError", err)
	}
	if loadErr.Step != 1 || loadErr.ID != "1.json" {
		t.Errorf("load error = %+v", loadErr)
	}
	if !errors.Is(err, snapshot.ErrNotFound) {
		t.Errorf("load error should wrap ErrNotFound: %v", err)
	}
	if d.Current() != before {
		t.Error("render set replaced after failed load")
	}
	if d.Step() != 1 {
		t.Errorf("step = %d, want 1", d.Step())
	}

	// The timer keeps going and the next good step loads normally.
	if err := d.Tick(viewport); err != nil {
		t.Fatalf("Tick failed: %v", err)
	}
	if d.Current().ID != "2.json" {
		t.Errorf("current = %s, want 2.json", d.Current().ID)
	}
}

func TestInitializeFailure(t *testing.T) {
	d := newTestDriver(t, fstest.MapFS{}, []string{"0.json"})

	err := d.Initialize(viewport)
	var loadErr *LoadError
	if !errors.As(err, &loadErr) {
		t.Fatalf("got %v, want *LoadError", err)
	}
	if d.Running() || d.Current() != nil {
		t.Error("driver should stay uninitialized")
	}
}

func TestTickRereadsViewport(t *testing.T) {
	d := newTestDriver(t, threeSteps(), []string{"0.json", "2.json"})
	if err := d.Initialize(viewport); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	square := galaxymath.Viewport{Width: 768, Height: 768}
	if err := d.Tick(square); err != nil {
		t.Fatalf("Tick failed: %v", err)
	}
	if got := d.Current().At(0).Position.X; got != 0 {
		t.Errorf("origin on square viewport X = %v, want 0", got)
	}
}

func TestRenderSetAll(t *testing.T) {
	d := newTestDriver(t, threeSteps(), []string{"1.json"})
	if err := d.Initialize(viewport); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	count := 0
	for i, e := range d.Current().All() {
		if e.Raw.X != float64(i) {
			t.Errorf("entry %d raw x = %v", i, e.Raw.X)
		}
		count++
	}
	if count != 3 {
		t.Errorf("iterated %d entries, want 3", count)
	}

	var empty *RenderSet
	if empty.Len() != 0 {
		t.Error("nil render set should be empty")
	}
	for range empty.All() {
		t.Error("nil render set should yield nothing")
	}
}
