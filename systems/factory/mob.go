package factory

import (
	"math"

	"github.com/automoto/parkour/archetypes"
	"github.com/automoto/parkour/components"
	cfg "github.com/automoto/parkour/config"
	"github.com/automoto/parkour/levels"
	"github.com/automoto/parkour/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMob creates a patrolling mob. Its footprint covers the larger of the
// touch and sword ranges so the broadphase sees both.
func CreateMob(ecs *ecs.ECS, m levels.Mob) *donburi.Entry {
	mob := archetypes.Mob.Spawn(ecs)

	start := m.A.Add(m.B).Mul(0.5)
	r := math.Max(cfg.Mob.TouchRadius, cfg.Mob.SwordReach)
	obj := components.NewFootprint(start, r, r, tags.ResolvMob)
	obj.Data = mob
	components.Object.SetValue(mob, components.ObjectData{Object: obj})

	components.Mob.SetValue(mob, components.MobData{
		ID:       m.ID,
		A:        m.A,
		B:        m.B,
		Speed:    m.Speed,
		Position: start,
		Alive:    true,
	})

	addToSpace(ecs, obj)
	return mob
}
