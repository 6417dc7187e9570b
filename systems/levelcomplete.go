package systems

import (
	"fmt"
	"log"

	"github.com/automoto/parkour/components"
	cfg "github.com/automoto/parkour/config"
	"github.com/automoto/parkour/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// NewUpdateLevelComplete handles the level complete and win overlays.
// Continuing loads the next level in place; the win screen returns to the
// menu through toMenu.
func NewUpdateLevelComplete(toMenu func()) ecs.System {
	return func(e *ecs.ECS) {
		game := GetOrCreateGame(e)
		if game.Phase != cfg.PhaseLevelComplete && game.Phase != cfg.PhaseWin {
			return
		}

		input := getOrCreateInput(e)
		if !GetAction(input, cfg.ActionMenuSelect).JustPressed {
			return
		}
		PlaySFX(e, cfg.SoundMenuSelect)

		if game.Phase == cfg.PhaseWin {
			ResetToMenu(game)
			toMenu()
			return
		}

		NextLevel(game)
		if err := LoadLevel(e, game.Level); err != nil {
			log.Printf("Warning: %v", err)
			ResetToMenu(game)
			toMenu()
			return
		}
		SaveLevelStart(game.Level)
		*GetOrCreateLevelComplete(e) = components.LevelCompleteData{}
		captureCursor()
	}
}

// DrawLevelComplete renders the level complete or win overlay
func DrawLevelComplete(e *ecs.ECS, screen *ebiten.Image) {
	game := GetOrCreateGame(e)
	if game.Phase != cfg.PhaseLevelComplete && game.Phase != cfg.PhaseWin {
		return
	}
	lc := GetOrCreateLevelComplete(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	// Draw semi-transparent overlay
	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.LevelComplete.OverlayColor,
		false,
	)

	title, hint := cfg.LevelComplete.Title, cfg.LevelComplete.ContinueHint
	if game.Phase == cfg.PhaseWin {
		title, hint = cfg.LevelComplete.WinTitle, cfg.LevelComplete.WinHint
	}

	titleFont := fonts.Title.Get()
	text.Draw(screen, title, titleFont, centerTextX(title, titleFont, width), int(cfg.LevelComplete.TitleY), cfg.LevelComplete.TitleColor)

	msgFont := fonts.Bold.Get()
	y := int(cfg.LevelComplete.MessageY)
	for _, msg := range resultLines(game, lc) {
		text.Draw(screen, msg, msgFont, centerTextX(msg, msgFont, width), y, cfg.LevelComplete.TextColor)
		y += 32
	}

	hintFont := fonts.Small.Get()
	hintY := int(cfg.LevelComplete.HintY)
	if hintY > int(height)-12 {
		hintY = int(height) - 12
	}
	text.Draw(screen, hint, hintFont, centerTextX(hint, hintFont, width), hintY, cfg.LevelComplete.HintColor)
}

// resultLines is the overlay text for the finished level or run.
func resultLines(game *components.GameData, lc *components.LevelCompleteData) []string {
	lines := []string{"Time " + FormatTime(lc.LevelTime)}
	switch {
	case lc.NewBest:
		lines = append(lines, "New best time!")
	case lc.BestTime > 0:
		lines = append(lines, "Best "+FormatTime(lc.BestTime))
	}
	if game.Phase == cfg.PhaseWin {
		lines = append(lines, fmt.Sprintf("Total %s over %d levels", FormatTime(game.TotalTime), cfg.LastLevel()))
	}
	return lines
}

// centerTextX calculates the X position to center text on screen
func centerTextX(s string, face font.Face, screenWidth float64) int {
	bounds := text.BoundString(face, s)
	textWidth := bounds.Dx()
	return int((screenWidth - float64(textWidth)) / 2)
}

// GetOrCreateLevelComplete returns the singleton LevelComplete component, creating if needed
func GetOrCreateLevelComplete(e *ecs.ECS) *components.LevelCompleteData {
	if _, ok := components.LevelComplete.First(e.World); !ok {
		e.World.Entry(e.World.Create(components.LevelComplete))
	}

	ent, _ := components.LevelComplete.First(e.World)
	return components.LevelComplete.Get(ent)
}
