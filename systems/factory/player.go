package factory

import (
	"github.com/automoto/parkour/archetypes"
	"github.com/automoto/parkour/components"
	cfg "github.com/automoto/parkour/config"
	"github.com/automoto/parkour/physics"
	"github.com/automoto/parkour/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer adds the player body at spawn and hands it to the controller.
func CreatePlayer(ecs *ecs.ECS, session *components.SessionData, spawn mgl64.Vec3) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	size := mgl64.Vec3{cfg.Player.Width, cfg.Player.Height, cfg.Player.Width}
	id := session.World.AddBox(physics.Dynamic, spawn, size)
	components.Body.SetValue(player, components.BodyData{ID: id, Role: components.RolePlayer})

	session.Controller.Body = id
	session.Signals.PublishBody(id)

	obj := components.NewFootprint(spawn, cfg.Player.Width/2, cfg.Player.Width/2, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Player.SetValue(player, components.PlayerData{})
	return player
}
