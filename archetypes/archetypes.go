package archetypes

import (
	"github.com/automoto/parkour/components"
	cfg "github.com/automoto/parkour/config"
	"github.com/automoto/parkour/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Session = newArchetype(
		components.Session,
	)
	Space = newArchetype(
		components.Space,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Body,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Body,
	)
	MovingPlatform = newArchetype(
		tags.MovingPlatform,
		components.MovingPlatform,
		components.Body,
	)
	Checkpoint = newArchetype(
		tags.Checkpoint,
		components.Checkpoint,
		components.Object,
	)
	Goal = newArchetype(
		tags.Goal,
		components.Goal,
		components.Object,
	)
	KillZone = newArchetype(
		tags.KillZone,
		components.KillZone,
		components.Object,
	)
	Pickup = newArchetype(
		tags.Pickup,
		components.Pickup,
		components.Object,
	)
	Mob = newArchetype(
		tags.Mob,
		components.Mob,
		components.Object,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
