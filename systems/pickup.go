package systems

import (
	"github.com/automoto/parkour/components"
	cfg "github.com/automoto/parkour/config"
	"github.com/automoto/parkour/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const pickupSword = "sword"

// UpdatePickups collects a pickup when the player walks into it.
func UpdatePickups(ecs *ecs.ECS) {
	pos, ok := PlayerPosition(ecs)
	if !ok {
		return
	}

	for _, entry := range triggerHits(ecs, tags.ResolvPickup) {
		pickup := components.Pickup.Get(entry)
		if pickup.Collected {
			continue
		}
		if pos.Sub(pickup.Position).Len() >= cfg.Trigger.PickupRadius {
			continue
		}
		pickup.Collected = true
		removeFootprint(ecs, entry)

		if pickup.Kind == pickupSword {
			components.SwordCollected.Publish(ecs.World, components.SwordCollectedEvent{})
		}
	}
}

// UpdatePickupBob floats uncollected pickups up and down.
func UpdatePickupBob(ecs *ecs.ECS) {
	dt := float32(stepDt())
	tags.Pickup.Each(ecs.World, func(e *donburi.Entry) {
		pickup := components.Pickup.Get(e)
		if pickup.Collected || pickup.Bob == nil {
			return
		}
		v, _, _ := pickup.Bob.Update(dt)
		pickup.Offset = float64(v)
	})
}
