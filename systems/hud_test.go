package systems

import (
	"strings"
	"testing"

	"github.com/automoto/orbitview/components"
	"github.com/automoto/orbitview/shared/viewcamera"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestHUDStatsLines(t *testing.T) {
	stats := HUDStats{
		Step:    0,
		Steps:   3,
		ID:      "0.json",
		Objects: 2,
		Camera:  viewcamera.State{Zoom: 1, PanX: 2, PanY: 2},
	}

	lines := stats.Lines()
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4: %q", len(lines), lines)
	}
	if lines[0] != "step 1/3  0.json" {
		t.Errorf("step line = %q", lines[0])
	}
	if lines[2] != "zoom 1.00  pan 2.0, 2.0" {
		t.Errorf("camera line = %q", lines[2])
	}

	stats.Failures = 2
	stats.Pick = components.PickData{Hovered: true, Index: 1, LightYearsX: 10, LightYearsY: 20}
	lines = stats.Lines()
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6: %q", len(lines), lines)
	}
	if lines[4] != "load failures 2" {
		t.Errorf("failure line = %q", lines[4])
	}
	if !strings.HasPrefix(lines[5], "#1") {
		t.Errorf("pick line = %q", lines[5])
	}
}

func TestCollectStats(t *testing.T) {
	e, entry := newTestViewer(t, testSnapshots(), []string{"0.json", "1.json"}, defaultTestCamera())

	UpdateAnimation(e)
	components.Playback.Get(entry).Failures = 3

	stats, ok := CollectStats(e)
	if !ok {
		t.Fatal("no stats from a viewer world")
	}
	if stats.Step != 1 || stats.Steps != 2 || stats.ID != "1.json" {
		t.Errorf("step stats = %d/%d %s", stats.Step, stats.Steps, stats.ID)
	}
	if stats.Objects != 2 || stats.Failures != 3 {
		t.Errorf("objects = %d, failures = %d", stats.Objects, stats.Failures)
	}
	if stats.Camera.Zoom != 1 {
		t.Errorf("zoom = %v", stats.Camera.Zoom)
	}

	if _, ok := CollectStats(ecs.NewECS(donburi.NewWorld())); ok {
		t.Error("stats from an empty world")
	}
}

func TestCollectStatsAfterFailedTick(t *testing.T) {
	e, entry := newTestViewer(t, testSnapshots(), []string{"0.json", "missing.json", "1.json"}, defaultTestCamera())

	UpdateAnimation(e)
	if components.Playback.Get(entry).Driver.Step() != 1 {
		t.Fatal("driver did not advance past the failed step")
	}

	stats, ok := CollectStats(e)
	if !ok {
		t.Fatal("no stats from a viewer world")
	}
	if stats.Step != 0 || stats.ID != "0.json" {
		t.Errorf("stats show step %d with %s, want the retained step 0 with 0.json", stats.Step, stats.ID)
	}
	if stats.LastErr == nil {
		t.Fatal("last error not reported")
	}

	lines := stats.Lines()
	if lines[0] != "step 1/3  0.json" {
		t.Errorf("step line = %q", lines[0])
	}
	if last := lines[len(lines)-1]; last != stats.LastErr.Error() {
		t.Errorf("last line = %q, want the load error", last)
	}

	UpdateAnimation(e)
	stats, _ = CollectStats(e)
	if stats.LastErr != nil || stats.Step != 2 || stats.ID != "1.json" {
		t.Errorf("after recovery: step %d %s, err %v", stats.Step, stats.ID, stats.LastErr)
	}
}
