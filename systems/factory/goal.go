package factory

import (
	"github.com/automoto/parkour/archetypes"
	"github.com/automoto/parkour/components"
	cfg "github.com/automoto/parkour/config"
	"github.com/automoto/parkour/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateGoal(ecs *ecs.ECS, pos mgl64.Vec3) *donburi.Entry {
	goal := archetypes.Goal.Spawn(ecs)

	r := cfg.Trigger.GoalRadius
	obj := components.NewFootprint(pos, r, r, tags.ResolvGoal)
	obj.Data = goal
	components.Object.SetValue(goal, components.ObjectData{Object: obj})

	// The beacon breathes between two scales forever.
	pulse := gween.NewSequence(
		gween.New(0.85, 1.15, 0.9, ease.InOutSine),
		gween.New(1.15, 0.85, 0.9, ease.InOutSine),
	)
	pulse.SetLoop(-1)

	components.Goal.SetValue(goal, components.GoalData{
		Position: pos,
		Pulse:    pulse,
		Scale:    1,
	})

	addToSpace(ecs, obj)
	return goal
}
