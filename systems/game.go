package systems

import (
	"github.com/automoto/parkour/components"
	cfg "github.com/automoto/parkour/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateGame returns the singleton game store, creating if needed.
func GetOrCreateGame(e *ecs.ECS) *components.GameData {
	if _, ok := components.Game.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Game))
		components.Game.SetValue(ent, components.GameData{
			Phase: cfg.PhaseMenu,
			Level: 1,
		})
	}

	ent, _ := components.Game.First(e.World)
	return components.Game.Get(ent)
}

// StartGame begins a fresh run on the given level.
func StartGame(g *components.GameData, level int) {
	*g = components.GameData{
		Phase: cfg.PhasePlaying,
		Level: level,
	}
}

func PauseGame(g *components.GameData) bool {
	if g.Phase != cfg.PhasePlaying {
		return false
	}
	g.Phase = cfg.PhasePaused
	return true
}

func ResumeGame(g *components.GameData) bool {
	if g.Phase != cfg.PhasePaused {
		return false
	}
	g.Phase = cfg.PhasePlaying
	return true
}

// CompleteLevel ends the current level. The last level of the catalogue
// goes to Win, every other one to LevelComplete.
func CompleteLevel(g *components.GameData) bool {
	if g.Phase != cfg.PhasePlaying {
		return false
	}
	g.TotalTime += g.Elapsed
	if g.Level >= cfg.LastLevel() {
		g.Phase = cfg.PhaseWin
	} else {
		g.Phase = cfg.PhaseLevelComplete
	}
	return true
}

// NextLevel moves from LevelComplete to playing the following level. Run
// totals carry over; per level state does not.
func NextLevel(g *components.GameData) bool {
	if g.Phase != cfg.PhaseLevelComplete {
		return false
	}
	g.Level++
	g.Phase = cfg.PhasePlaying
	resetLevelState(g)
	return true
}

// ReachCheckpoint records a checkpoint id. It reports false for an id that
// was already reached on this level.
func ReachCheckpoint(g *components.GameData, id int) bool {
	if g.HasCheckpoint(id) {
		return false
	}
	g.Checkpoints = append(g.Checkpoints, id)
	return true
}

func ResetToMenu(g *components.GameData) {
	*g = components.GameData{
		Phase: cfg.PhaseMenu,
		Level: 1,
	}
}

// Tick advances the level timer. Time only counts while playing.
func Tick(g *components.GameData, dt float64) {
	if g.Phase == cfg.PhasePlaying {
		g.Elapsed += dt
	}
}

func KillMob(g *components.GameData, id string) bool {
	if g.MobKilled(id) {
		return false
	}
	g.MobsKilled = append(g.MobsKilled, id)
	return true
}

func PickUpSword(g *components.GameData) {
	g.HasSword = true
}

func resetLevelState(g *components.GameData) {
	g.Elapsed = 0
	g.Checkpoints = nil
	g.HasSword = false
	g.MobsKilled = nil
}

// IsPlaying reports whether gameplay systems should run this frame.
func IsPlaying(e *ecs.ECS) bool {
	return GetOrCreateGame(e).Phase == cfg.PhasePlaying
}

// WithGameplayChecks wraps a system to skip execution outside the Playing
// phase: paused, in an overlay or back at the menu.
func WithGameplayChecks(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if !IsPlaying(e) {
			return
		}
		system(e)
	}
}
