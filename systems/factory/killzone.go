package factory

import (
	"github.com/automoto/parkour/archetypes"
	"github.com/automoto/parkour/components"
	"github.com/automoto/parkour/levels"
	"github.com/automoto/parkour/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateKillZone creates an invisible hazard volume that respawns the player
func CreateKillZone(ecs *ecs.ECS, kz levels.KillZone) *donburi.Entry {
	zone := archetypes.KillZone.Spawn(ecs)

	half := kz.HalfSize()
	obj := components.NewFootprint(kz.Center, half.X(), half.Z(), tags.ResolvKillZone)
	obj.Data = zone
	components.Object.SetValue(zone, components.ObjectData{Object: obj})

	components.KillZone.SetValue(zone, components.KillZoneData{
		Center:   kz.Center,
		HalfSize: half,
	})

	addToSpace(ecs, obj)
	return zone
}
