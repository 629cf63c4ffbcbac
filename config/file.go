package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable name in the config tags.
const EnvPrefix = "ORBITVIEW_"

// fileConfig is the on-disk layout of a config file. Sections that are
// missing keep their defaults.
type fileConfig struct {
	Window    Config          `yaml:"window"`
	Galaxy    GalaxyConfig    `yaml:"galaxy"`
	Camera    CameraConfig    `yaml:"camera"`
	Animation AnimationConfig `yaml:"animation"`
}

// LoadFile overlays the YAML file at path onto the current configuration.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	return loadYAML(data)
}

func loadYAML(data []byte) error {
	doc := fileConfig{
		Window:    *C,
		Galaxy:    Galaxy,
		Camera:    Camera,
		Animation: Animation,
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	*C = doc.Window
	Galaxy = doc.Galaxy
	Camera = doc.Camera
	Animation = doc.Animation
	return nil
}

// ApplyEnv overlays ORBITVIEW_* environment variables onto the current configuration.
func ApplyEnv() error {
	opts := env.Options{Prefix: EnvPrefix}
	targets := []any{C, &Galaxy, &Camera, &Animation}
	for _, target := range targets {
		if err := env.ParseWithOptions(target, opts); err != nil {
			return fmt.Errorf("parse env: %w", err)
		}
	}
	return nil
}

// Validate checks the values the game loop cannot run without. Galaxy
// extents and light speed are validated by the playback driver.
func Validate() error {
	var errs []error
	if C.Width <= 0 || C.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", C.Width, C.Height))
	}
	if Animation.UpdateRate <= 0 {
		errs = append(errs, fmt.Errorf("update rate %d must be positive", Animation.UpdateRate))
	}
	if Animation.DataDir == "" {
		errs = append(errs, errors.New("data directory is empty"))
	}
	if Camera.MovementSpeed < 0 {
		errs = append(errs, fmt.Errorf("movement speed %v must not be negative", Camera.MovementSpeed))
	}
	return errors.Join(errs...)
}
