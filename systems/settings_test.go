package systems

import (
	"testing"

	"github.com/automoto/orbitview/components"
	cfg "github.com/automoto/orbitview/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestApplyToggles(t *testing.T) {
	tests := []struct {
		name        string
		current     [cfg.ActionCount]bool
		previous    [cfg.ActionCount]bool
		wantChanged bool
		want        components.SettingsData
	}{
		{
			name: "nothing pressed",
			want: components.SettingsData{ShowHUD: true},
		},
		{
			name:        "hud",
			current:     pressed(cfg.ActionToggleHUD),
			wantChanged: true,
			want:        components.SettingsData{},
		},
		{
			name:        "info and fullscreen",
			current:     pressed(cfg.ActionToggleInfo, cfg.ActionToggleFullscreen),
			wantChanged: true,
			want:        components.SettingsData{ShowHUD: true, ShowInfo: true, Fullscreen: true},
		},
		{
			name:        "cycle resolution",
			current:     pressed(cfg.ActionCycleResolution),
			wantChanged: true,
			want:        components.SettingsData{ShowHUD: true, ResolutionIndex: 1},
		},
		{
			name:     "held key toggles once",
			current:  pressed(cfg.ActionToggleHUD),
			previous: pressed(cfg.ActionToggleHUD),
			want:     components.SettingsData{ShowHUD: true},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			settings := components.SettingsData{ShowHUD: true}
			input := &components.InputData{Current: tt.current, Previous: tt.previous}

			changed := applyToggles(&settings, input)
			if changed != tt.wantChanged {
				t.Errorf("changed = %v, want %v", changed, tt.wantChanged)
			}
			if settings != tt.want {
				t.Errorf("settings = %+v, want %+v", settings, tt.want)
			}
		})
	}
}

func TestCycleResolutionWraps(t *testing.T) {
	last := len(cfg.Settings.Resolutions) - 1
	settings := components.SettingsData{ResolutionIndex: last}
	input := &components.InputData{Current: pressed(cfg.ActionCycleResolution)}

	if !applyToggles(&settings, input) {
		t.Fatal("cycle not reported as a change")
	}
	if settings.ResolutionIndex != 0 {
		t.Errorf("index = %d after the last preset, want 0", settings.ResolutionIndex)
	}

	saved := savedFrom(&settings)
	if saved.ResolutionIndex != 0 {
		t.Errorf("saved index = %d, want 0", saved.ResolutionIndex)
	}
}

func TestGetOrCreateSettingsDefaults(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())

	settings := GetOrCreateSettings(e)
	if *settings != DefaultSettings() {
		t.Errorf("settings = %+v, want defaults", settings)
	}

	settings.ShowInfo = true
	if !GetOrCreateSettings(e).ShowInfo {
		t.Error("second call created a new settings entity")
	}
}

func TestDecodeSettings(t *testing.T) {
	saved, err := decodeSettings([]byte(`{"showHud":false,"showInfo":true,"fullscreen":true,"resolutionIndex":2}`))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	want := SavedSettings{ShowInfo: true, Fullscreen: true, ResolutionIndex: 2}
	if *saved != want {
		t.Errorf("saved = %+v, want %+v", *saved, want)
	}

	saved, err = decodeSettings([]byte(`{"resolutionIndex":99}`))
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if saved.ResolutionIndex != cfg.Settings.DefaultResolutionIndex {
		t.Errorf("out of range index kept: %d", saved.ResolutionIndex)
	}

	if _, err := decodeSettings([]byte(`{not json`)); err == nil {
		t.Error("expected an error for malformed data")
	}
}

func TestSavedFromRoundTripsToggles(t *testing.T) {
	s := &components.SettingsData{ShowHUD: false, ShowInfo: true, ResolutionIndex: 1}
	saved := savedFrom(s)
	if saved.ShowHUD || !saved.ShowInfo || saved.Fullscreen || saved.ResolutionIndex != 1 {
		t.Errorf("saved = %+v", saved)
	}
}
