package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig mirrors the optional config.yaml placed next to the binary.
// Absent fields leave the compiled-in defaults untouched.
type FileConfig struct {
	Window struct {
		Width  int `yaml:"width"`
		Height int `yaml:"height"`
	} `yaml:"window"`
	Player struct {
		MoveSpeed       float64 `yaml:"moveSpeed"`
		LookSensitivity float64 `yaml:"lookSensitivity"`
	} `yaml:"player"`
	Render struct {
		FOVDegrees      float64 `yaml:"fovDegrees"`
		FogDensity      float64 `yaml:"fogDensity"`
		MaxViewDistance float64 `yaml:"maxViewDistance"`
	} `yaml:"render"`
	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

// Load reads the YAML file at path and overlays any values present onto
// the package globals. A missing file is not an error; the defaults
// stand as-is.
func Load(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	fc := &FileConfig{}
	if err := yaml.Unmarshal(data, fc); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	fc.apply()
	return fc, nil
}

func (fc *FileConfig) apply() {
	if fc.Window.Width > 0 {
		C.Width = fc.Window.Width
	}
	if fc.Window.Height > 0 {
		C.Height = fc.Window.Height
	}
	if fc.Player.MoveSpeed > 0 {
		Player.MoveSpeed = fc.Player.MoveSpeed
	}
	if fc.Player.LookSensitivity > 0 {
		Player.LookSensitivity = fc.Player.LookSensitivity
	}
	if fc.Render.FOVDegrees > 0 {
		Render.FOV = fc.Render.FOVDegrees * math.Pi / 180
	}
	if fc.Render.FogDensity > 0 {
		Render.FogDensity = fc.Render.FogDensity
	}
	if fc.Render.MaxViewDistance > 0 {
		Render.MaxViewDistance = fc.Render.MaxViewDistance
	}
}
