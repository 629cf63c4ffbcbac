package config

// Resolution represents a window size option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// SettingsConfig contains the options persisted between runs
type SettingsConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
	StorageKey             string // gdata item name
	AppName                string // gdata application name
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		Resolutions: []Resolution{
			{Width: 1024, Height: 768, Label: "1024 x 768"},
			{Width: 1280, Height: 720, Label: "1280 x 720"},
			{Width: 1600, Height: 900, Label: "1600 x 900"},
			{Width: 1920, Height: 1080, Label: "1920 x 1080"},
		},
		DefaultResolutionIndex: 0,
		StorageKey:             "settings",
		AppName:                "orbitview",
	}
}
