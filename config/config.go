package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer the viewer uses.
const Default ecs.LayerID = 0

// GalaxyConfig describes the physical space the snapshots are recorded in
type GalaxyConfig struct {
	Width      float64 `yaml:"width" env:"GALAXY_WIDTH"`             // light-years
	Height     float64 `yaml:"height" env:"GALAXY_HEIGHT"`           // light-years
	LightSpeed float64 `yaml:"light_speed" env:"GALAXY_LIGHT_SPEED"` // metres per second
}

// CameraConfig contains the initial camera state and input tuning
type CameraConfig struct {
	Zoom          float64 `yaml:"zoom" env:"CAMERA_ZOOM"`
	ZoomRatio     float64 `yaml:"zoom_ratio" env:"CAMERA_ZOOM_RATIO"`         // Sprite scale per zoom unit
	ZoomMinimum   float64 `yaml:"zoom_minimum" env:"CAMERA_ZOOM_MINIMUM"`     // Zoom floor
	OffsetX       float64 `yaml:"offset_x" env:"CAMERA_OFFSET_X"`             // Initial pan
	OffsetY       float64 `yaml:"offset_y" env:"CAMERA_OFFSET_Y"`             // Initial pan
	MovementSpeed float64 `yaml:"movement_speed" env:"CAMERA_MOVEMENT_SPEED"` // Pixels per tick while a pan key is held
	KeyZoomStep   float64 `yaml:"key_zoom_step" env:"CAMERA_KEY_ZOOM_STEP"`   // Zoom change for the +/- keys
}

// AnimationConfig controls snapshot playback
type AnimationConfig struct {
	UpdateRate     int     `yaml:"update_rate" env:"ANIMATION_UPDATE_RATE"` // Ticks per second
	DataDir        string  `yaml:"data_dir" env:"DATA_DIR"`
	Preload        bool    `yaml:"preload" env:"ANIMATION_PRELOAD"`                 // Parse every snapshot before starting
	PreloadWorkers int     `yaml:"preload_workers" env:"ANIMATION_PRELOAD_WORKERS"` // Concurrent parses while preloading
	SpriteScale    float64 `yaml:"sprite_scale" env:"ANIMATION_SPRITE_SCALE"`       // Base scale of every orbital sprite
	SpritePath     string  `yaml:"sprite_path" env:"ANIMATION_SPRITE_PATH"`         // Empty = generated dot
	SpriteRadius   int     `yaml:"sprite_radius" env:"ANIMATION_SPRITE_RADIUS"`     // Radius of the generated dot
}

// HUDConfig contains overlay configuration values
type HUDConfig struct {
	Margin        float64
	LineHeight    float64
	TitleHeight   float64 // Baseline offset of the title line
	TextColor     color.RGBA
	StatusColor   color.RGBA
	StatusSeconds float32 // How long a load error stays on screen
	PickRadius    float64 // Cursor hit box half-size in pixels
}

// Config holds general window configuration
type Config struct {
	Width  int    `yaml:"width" env:"WINDOW_WIDTH"`
	Height int    `yaml:"height" env:"WINDOW_HEIGHT"`
	Title  string `yaml:"title" env:"WINDOW_TITLE"`
}

// Global configuration instances
var C *Config
var Galaxy GalaxyConfig
var Camera CameraConfig
var Animation AnimationConfig
var HUD HUDConfig

// Shared RGBA color constants
var (
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	LightBlue   = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	LightRed    = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	SpaceBlack  = color.RGBA{R: 4, G: 6, B: 16, A: 255}
	PanelColor  = color.RGBA{R: 20, G: 20, B: 30, A: 220}
	Orange      = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	LightGray   = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

func init() {
	C = &Config{
		Width:  1024,
		Height: 768,
		Title:  "orbitview",
	}

	Galaxy = GalaxyConfig{
		Width:      52000,
		Height:     52000,
		LightSpeed: 299792458,
	}

	Camera = CameraConfig{
		Zoom:          1,
		ZoomRatio:     0.25,
		ZoomMinimum:   1,
		OffsetX:       2,
		OffsetY:       2,
		MovementSpeed: 5,
		KeyZoomStep:   1,
	}

	Animation = AnimationConfig{
		UpdateRate:     120,
		DataDir:        "data",
		Preload:        false,
		PreloadWorkers: 4,
		SpriteScale:    4,
		SpritePath:     "",
		SpriteRadius:   2,
	}

	HUD = HUDConfig{
		Margin:        10,
		LineHeight:    14,
		TitleHeight:   18,
		TextColor:     White,
		StatusColor:   LightRed,
		StatusSeconds: 3,
		PickRadius:    4,
	}
}
