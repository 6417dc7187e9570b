package factory

import (
	"github.com/automoto/parkour/archetypes"
	"github.com/automoto/parkour/components"
	"github.com/automoto/parkour/levels"
	"github.com/automoto/parkour/movement"
	"github.com/automoto/parkour/physics"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlatform(ecs *ecs.ECS, world *physics.World, box levels.Box) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	role := components.RoleStatic
	if box.Kind == "ground" {
		role = components.RoleGround
	}
	id := world.AddBox(physics.Static, box.Center, box.Size)
	components.Body.SetValue(platform, components.BodyData{ID: id, Role: role})
	return platform
}

// CreateMovingPlatform adds a kinematic body travelling between two points
// and registers it as carriable.
func CreateMovingPlatform(ecs *ecs.ECS, session *components.SessionData, mp levels.MovingPlatform) *donburi.Entry {
	platform := archetypes.MovingPlatform.Spawn(ecs)

	id := session.World.AddBox(physics.Kinematic, mp.Start, mp.Size)
	components.Body.SetValue(platform, components.BodyData{ID: id, Role: components.RoleMoving})

	mover := movement.NewPingPong(mp.Start, mp.End, mp.Speed)
	components.MovingPlatform.SetValue(platform, components.MovingPlatformData{
		Name:  mp.Name,
		Mover: mover,
	})
	session.Platforms.Register(id, mgl64.Vec3{})
	return platform
}
