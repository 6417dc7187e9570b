package factory

import (
	"github.com/automoto/parkour/components"
	"github.com/automoto/parkour/levels"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds every entity a level needs: trigger space, session,
// static and moving geometry, triggers, the player and the camera.
func CreateLevel(ecs *ecs.ECS, number int, level *levels.Level) *donburi.Entry {
	CreateSpace(ecs)
	sessionEntry := CreateSession(ecs, number, level)
	session := components.Session.Get(sessionEntry)

	for _, box := range level.Platforms {
		CreatePlatform(ecs, session.World, box)
	}
	for _, mp := range level.MovingPlatforms {
		CreateMovingPlatform(ecs, session, mp)
	}
	for _, kz := range level.KillZones {
		CreateKillZone(ecs, kz)
	}
	for _, cp := range level.Checkpoints {
		CreateCheckpoint(ecs, cp)
	}
	for _, p := range level.Pickups {
		CreatePickup(ecs, p)
	}
	for _, m := range level.Mobs {
		CreateMob(ecs, m)
	}
	CreateGoal(ecs, level.Goal)

	CreatePlayer(ecs, session, level.Spawn)
	CreateCamera(ecs)
	return sessionEntry
}
