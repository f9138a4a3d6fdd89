package config

// Resolution represents a display resolution option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// SettingsConfig contains settings screen configuration and the
// defaults applied when no saved settings exist
type SettingsConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int

	// Look sensitivity is adjusted in discrete steps (multiplier
	// applied on top of Player.LookSensitivity)
	SensitivitySteps        []float64
	DefaultSensitivityIndex int

	DefaultInvertLookY bool
	DefaultHeadBob     bool
	DefaultShowFPS     bool
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		Resolutions: []Resolution{
			{Width: 1280, Height: 720, Label: "1280 x 720"},
			{Width: 1600, Height: 900, Label: "1600 x 900"},
			{Width: 1920, Height: 1080, Label: "1920 x 1080"},
			{Width: 2560, Height: 1440, Label: "2560 x 1440"},
		},
		DefaultResolutionIndex:  0,
		SensitivitySteps:        []float64{0.5, 0.75, 1.0, 1.5, 2.0},
		DefaultSensitivityIndex: 2,
		DefaultInvertLookY:      false,
		DefaultHeadBob:          true,
		DefaultShowFPS:          false,
	}
}
