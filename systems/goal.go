package systems

import (
	"github.com/automoto/parkour/components"
	cfg "github.com/automoto/parkour/config"
	"github.com/automoto/parkour/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGoal completes the level when the player reaches the goal.
func UpdateGoal(ecs *ecs.ECS) {
	game := GetOrCreateGame(ecs)
	if game.Phase != cfg.PhasePlaying {
		return
	}

	pos, ok := PlayerPosition(ecs)
	if !ok {
		return
	}

	for _, entry := range triggerHits(ecs, tags.ResolvGoal) {
		goal := components.Goal.Get(entry)
		if goal.Activated {
			continue
		}
		if pos.Sub(goal.Position).Len() >= cfg.Trigger.GoalRadius {
			continue
		}

		goal.Activated = true
		levelTime := game.Elapsed
		if !CompleteLevel(game) {
			return
		}
		recordLevelComplete(ecs, game.Level, levelTime)
		PlaySFX(ecs, cfg.SoundGoal)
		releaseCursor()
		return
	}
}

// recordLevelComplete stores the best time, unlocks the next level and fills
// the overlay data.
func recordLevelComplete(ecs *ecs.ECS, level int, levelTime float64) {
	best, newBest := RecordLevelTime(level, levelTime)
	UnlockLevel(level + 1)

	lc := GetOrCreateLevelComplete(ecs)
	*lc = components.LevelCompleteData{
		LevelTime: levelTime,
		BestTime:  best,
		NewBest:   newBest,
		Recorded:  true,
	}
}

// UpdateGoalPulse animates the goal beacon.
func UpdateGoalPulse(ecs *ecs.ECS) {
	dt := float32(stepDt())
	tags.Goal.Each(ecs.World, func(e *donburi.Entry) {
		goal := components.Goal.Get(e)
		if goal.Pulse == nil {
			return
		}
		v, _, _ := goal.Pulse.Update(dt)
		goal.Scale = float64(v)
	})
}
