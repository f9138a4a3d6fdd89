package components

import (
	"github.com/yohamta/donburi"
)

// SettingsMenuOption represents menu items in the settings menu
type SettingsMenuOption int

const (
	SettingsOptSensitivity SettingsMenuOption = iota
	SettingsOptInvertY
	SettingsOptHeadBob
	SettingsOptShowFPS
	SettingsOptFullscreen
	SettingsOptResolution
	SettingsOptBack
)

// SettingsMenuData stores the current state of the settings menu
// overlay. The adjustable values themselves live on SettingsData;
// fullscreen and resolution are window state mirrored here for display.
type SettingsMenuData struct {
	IsOpen          bool
	SelectedOption  SettingsMenuOption
	OpenedFromPause bool // Track origin for "Back" navigation

	Fullscreen      bool
	ResolutionIndex int
}

// SettingsMenu is the component type for settings menu state
var SettingsMenu = donburi.NewComponentType[SettingsMenuData]()
