package components

import "github.com/yohamta/donburi"

// SettingsData holds viewer toggles. These are the only values persisted
// between runs; camera state is not.
type SettingsData struct {
	ShowHUD         bool
	ShowInfo        bool
	Fullscreen      bool
	ResolutionIndex int
}

var Settings = donburi.NewComponentType[SettingsData]()
