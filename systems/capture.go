package systems

import (
	"github.com/automoto/parkour/components"
	cfg "github.com/automoto/parkour/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// setCursorMode is swapped out by tests.
var setCursorMode = ebiten.SetCursorMode

func captureCursor() { setCursorMode(ebiten.CursorModeCaptured) }

func releaseCursor() { setCursorMode(ebiten.CursorModeVisible) }

// UpdateCapture asks for pointer capture on a click while playing and pauses
// the game when capture is lost, whether the player pressed the pause key or
// the platform took the pointer away.
func UpdateCapture(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	game := GetOrCreateGame(ecs)

	if handleCaptureLost(ecs, game, input) {
		return
	}
	if game.Phase == cfg.PhasePlaying && !input.Captured &&
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		captureCursor()
	}
}

// handleCaptureLost pauses a playing game whose pointer capture just ended.
func handleCaptureLost(ecs *ecs.ECS, game *components.GameData, input *components.InputData) bool {
	if !input.CaptureLost {
		return false
	}
	if !PauseGame(game) {
		return false
	}
	GetOrCreatePause(ecs).SelectedOption = components.MenuResume
	return true
}
