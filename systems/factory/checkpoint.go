package factory

import (
	"github.com/automoto/parkour/archetypes"
	"github.com/automoto/parkour/components"
	cfg "github.com/automoto/parkour/config"
	"github.com/automoto/parkour/levels"
	"github.com/automoto/parkour/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCheckpoint creates a checkpoint entity with a trigger footprint
func CreateCheckpoint(ecs *ecs.ECS, cp levels.Checkpoint) *donburi.Entry {
	checkpoint := archetypes.Checkpoint.Spawn(ecs)

	r := cfg.Trigger.CheckpointRadius
	obj := components.NewFootprint(cp.Position, r, r, tags.ResolvCheckpoint)
	obj.Data = checkpoint
	components.Object.SetValue(checkpoint, components.ObjectData{Object: obj})

	components.Checkpoint.SetValue(checkpoint, components.CheckpointData{
		ID:       cp.ID,
		Position: cp.Position,
	})

	addToSpace(ecs, obj)
	return checkpoint
}
