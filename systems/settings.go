package systems

import (
	"github.com/automoto/orbitview/components"
	cfg "github.com/automoto/orbitview/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton settings component, creating it
// with defaults if the scene did not spawn one.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, DefaultSettings())
	}
	return components.Settings.Get(entry)
}

// UpdateViewerActions handles the overlay and window toggles.
func UpdateViewerActions(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	before := *settings
	if applyToggles(settings, input) {
		if settings.Fullscreen != before.Fullscreen {
			ebiten.SetFullscreen(settings.Fullscreen)
		}
		resized := settings.ResolutionIndex != before.ResolutionIndex || before.Fullscreen
		if resized && !settings.Fullscreen {
			applyResolution(settings.ResolutionIndex)
		}
		SaveCurrentSettings(settings)
	}
}

// applyToggles flips the settings whose actions were pressed this frame and
// reports whether anything changed.
func applyToggles(settings *components.SettingsData, input *components.InputData) bool {
	changed := false
	if GetAction(input, cfg.ActionToggleHUD).JustPressed {
		settings.ShowHUD = !settings.ShowHUD
		changed = true
	}
	if GetAction(input, cfg.ActionToggleInfo).JustPressed {
		settings.ShowInfo = !settings.ShowInfo
		changed = true
	}
	if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
		settings.Fullscreen = !settings.Fullscreen
		changed = true
	}
	if n := len(cfg.Settings.Resolutions); n > 0 && GetAction(input, cfg.ActionCycleResolution).JustPressed {
		settings.ResolutionIndex = (settings.ResolutionIndex + 1) % n
		changed = true
	}
	return changed
}
