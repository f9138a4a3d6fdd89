package components

import "github.com/yohamta/donburi"

// SettingsData is the live user settings singleton, read by the look,
// movement and debug systems each frame and written by the settings
// menu. Persisted through gdata between runs.
type SettingsData struct {
	SensitivityIndex int // index into config.Settings.SensitivitySteps
	InvertLookY      bool
	HeadBob          bool
	ShowFPS          bool
}

var Settings = donburi.NewComponentType[SettingsData]()
