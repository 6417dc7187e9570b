package factory

import (
	"github.com/automoto/parkour/archetypes"
	"github.com/automoto/parkour/components"
	cfg "github.com/automoto/parkour/config"
	"github.com/automoto/parkour/levels"
	"github.com/automoto/parkour/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePickup(ecs *ecs.ECS, p levels.Pickup) *donburi.Entry {
	pickup := archetypes.Pickup.Spawn(ecs)

	r := cfg.Trigger.PickupRadius
	obj := components.NewFootprint(p.Position, r, r, tags.ResolvPickup)
	obj.Data = pickup
	components.Object.SetValue(pickup, components.ObjectData{Object: obj})

	h := float32(cfg.Trigger.PickupBobHeight)
	half := float32(cfg.Trigger.PickupBobPeriod / 2)
	bob := gween.NewSequence(
		gween.New(0, h, half, ease.InOutSine),
		gween.New(h, 0, half, ease.InOutSine),
	)
	bob.SetLoop(-1)

	components.Pickup.SetValue(pickup, components.PickupData{
		Kind:     p.Kind,
		Position: p.Position,
		Bob:      bob,
	})

	addToSpace(ecs, obj)
	return pickup
}
