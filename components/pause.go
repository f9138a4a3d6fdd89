package components

import "github.com/yohamta/donburi"

// PauseMenuOption represents menu items in the pause menu
type PauseMenuOption int

const (
	MenuResume PauseMenuOption = iota
	MenuSettings
	MenuQuit
)

// PauseData stores the pause state and menu selection. QuitToMenu is
// raised by the pause system and consumed by the room scene, which owns
// the actual transition.
type PauseData struct {
	IsPaused       bool
	SelectedOption PauseMenuOption
	QuitToMenu     bool
}

var Pause = donburi.NewComponentType[PauseData]()
