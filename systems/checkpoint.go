package systems

import (
	"github.com/automoto/parkour/components"
	cfg "github.com/automoto/parkour/config"
	"github.com/automoto/parkour/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCheckpoints activates a checkpoint the first time the player comes
// within range and moves the respawn point onto it.
func UpdateCheckpoints(ecs *ecs.ECS) {
	pos, ok := PlayerPosition(ecs)
	if !ok {
		return
	}

	for _, entry := range triggerHits(ecs, tags.ResolvCheckpoint) {
		checkpoint := components.Checkpoint.Get(entry)

		// Only activate if not already activated
		if checkpoint.Activated {
			continue
		}
		if pos.Sub(checkpoint.Position).Len() >= cfg.Trigger.CheckpointRadius {
			continue
		}
		activateCheckpoint(ecs, checkpoint)
	}
}

func activateCheckpoint(ecs *ecs.ECS, checkpoint *components.CheckpointData) {
	checkpoint.Activated = true

	session, ok := GetSession(ecs)
	if !ok {
		return
	}
	session.Respawn.SetPoint(checkpointRespawnPoint(checkpoint.Position))

	game := GetOrCreateGame(ecs)
	if !ReachCheckpoint(game, checkpoint.ID) {
		return
	}
	components.CheckpointReached.Publish(ecs.World, components.CheckpointReachedEvent{ID: checkpoint.ID})
	SaveCheckpoint(game.Level, checkpoint.ID)
}

// RestoreCheckpoint activates a saved checkpoint on the loaded level and
// moves the player there. Unknown ids are ignored.
func RestoreCheckpoint(ecs *ecs.ECS, id int) bool {
	var found *components.CheckpointData
	components.Checkpoint.Each(ecs.World, func(entry *donburi.Entry) {
		if cp := components.Checkpoint.Get(entry); cp.ID == id {
			found = cp
		}
	})
	if found == nil {
		return false
	}
	found.Activated = true
	ReachCheckpoint(GetOrCreateGame(ecs), id)

	session, ok := GetSession(ecs)
	if !ok {
		return false
	}
	session.Respawn.SetPoint(checkpointRespawnPoint(found.Position))
	return session.Respawn.Request()
}

// checkpointRespawnPoint is the respawn point a checkpoint sets, raised off
// the checkpoint marker.
func checkpointRespawnPoint(p mgl64.Vec3) mgl64.Vec3 {
	return p.Add(mgl64.Vec3{0, cfg.Respawn.Checkpoint, 0})
}
