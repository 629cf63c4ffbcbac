package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/orbitview/components"
	cfg "github.com/automoto/orbitview/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk. Camera state
// is not stored; every run starts from the configured view.
type SavedSettings struct {
	ShowHUD         bool `json:"showHud"`
	ShowInfo        bool `json:"showInfo"`
	Fullscreen      bool `json:"fullscreen"`
	ResolutionIndex int  `json:"resolutionIndex"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Settings.StorageKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	return decodeSettings(data)
}

func decodeSettings(data []byte) (*SavedSettings, error) {
	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	if settings.ResolutionIndex < 0 || settings.ResolutionIndex >= len(cfg.Settings.Resolutions) {
		settings.ResolutionIndex = cfg.Settings.DefaultResolutionIndex
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(cfg.Settings.StorageKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the settings component
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(savedFrom(s))
}

func savedFrom(s *components.SettingsData) *SavedSettings {
	return &SavedSettings{
		ShowHUD:         s.ShowHUD,
		ShowInfo:        s.ShowInfo,
		Fullscreen:      s.Fullscreen,
		ResolutionIndex: s.ResolutionIndex,
	}
}

// DefaultSettings is what a first run starts with.
func DefaultSettings() components.SettingsData {
	return components.SettingsData{
		ShowHUD:         true,
		ResolutionIndex: cfg.Settings.DefaultResolutionIndex,
	}
}

// ApplySavedSettingsGlobal applies window settings before the game starts
// and returns the toggles the scene should start with.
func ApplySavedSettingsGlobal(saved *SavedSettings) components.SettingsData {
	settings := DefaultSettings()
	if saved == nil {
		return settings
	}
	settings.ShowHUD = saved.ShowHUD
	settings.ShowInfo = saved.ShowInfo
	settings.Fullscreen = saved.Fullscreen
	settings.ResolutionIndex = saved.ResolutionIndex

	ebiten.SetFullscreen(saved.Fullscreen)

	if !saved.Fullscreen {
		applyResolution(saved.ResolutionIndex)
	}
	return settings
}

// applyResolution resizes the window to preset index. Out of range indexes
// are ignored.
func applyResolution(index int) {
	if index < 0 || index >= len(cfg.Settings.Resolutions) {
		return
	}
	res := cfg.Settings.Resolutions[index]
	ebiten.SetWindowSize(res.Width, res.Height)
}
