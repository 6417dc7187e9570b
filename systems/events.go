package systems

import (
	"github.com/automoto/parkour/components"
	cfg "github.com/automoto/parkour/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// SubscribeGameEvents wires the game store and feedback to gameplay events.
func SubscribeGameEvents(e *ecs.ECS) {
	components.MobKilled.Subscribe(e.World, func(w donburi.World, ev components.MobKilledEvent) {
		if KillMob(GetOrCreateGame(e), ev.MobID) {
			PlaySFX(e, cfg.SoundMobKill)
		}
		removeMob(e, ev.MobID)
	})
	components.SwordCollected.Subscribe(e.World, func(w donburi.World, ev components.SwordCollectedEvent) {
		PickUpSword(GetOrCreateGame(e))
		PlaySFX(e, cfg.SoundPickup)
	})
	components.CheckpointReached.Subscribe(e.World, func(w donburi.World, ev components.CheckpointReachedEvent) {
		ShowBanner(e)
		PlaySFX(e, cfg.SoundCheckpoint)
	})
}

// ProcessEvents delivers the events queued this frame.
func ProcessEvents(e *ecs.ECS) {
	events.ProcessAllEvents(e.World)
}
