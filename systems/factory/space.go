package factory

import (
	"math"

	"github.com/automoto/parkour/archetypes"
	"github.com/automoto/parkour/components"
	cfg "github.com/automoto/parkour/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace creates the trigger space covering the whole physics extent.
func CreateSpace(ecs *ecs.ECS) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	size := int(math.Ceil(2 * cfg.Physics.Extent * components.SpaceScale))
	cell := int(cfg.Physics.CellSize * components.SpaceScale)
	components.Space.Set(space, resolv.NewSpace(size, size, cell, cell))
	return space
}

func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}
