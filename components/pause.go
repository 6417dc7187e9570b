package components

import "github.com/yohamta/donburi"

// PauseMenuOption represents menu items in the pause menu
type PauseMenuOption int

const (
	MenuResume PauseMenuOption = iota
	MenuMainMenu
	MenuExit
)

// PauseData stores the pause menu selection. Whether the game is paused
// lives in the game store phase.
type PauseData struct {
	SelectedOption PauseMenuOption
}

var Pause = donburi.NewComponentType[PauseData]()
