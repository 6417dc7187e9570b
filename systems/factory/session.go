package factory

import (
	"github.com/automoto/parkour/archetypes"
	"github.com/automoto/parkour/components"
	cfg "github.com/automoto/parkour/config"
	"github.com/automoto/parkour/levels"
	"github.com/automoto/parkour/movement"
	"github.com/automoto/parkour/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewController builds a controller from the current tuning.
func NewController(platforms movement.CarrySource, respawn *movement.Respawner, signals *movement.Signals) *movement.Controller {
	c := &movement.Controller{
		Jump:      movement.NewJumpArbiter(cfg.Player.JumpBuffer),
		Platforms: platforms,
		Respawn:   respawn,
		Signals:   signals,
	}
	ApplyTuning(c)
	return c
}

// ApplyTuning copies the movement configuration onto a controller.
func ApplyTuning(c *movement.Controller) {
	c.Sensor = movement.GroundSensor{
		RayLength:        cfg.Player.GroundRayLength,
		GroundedDistance: cfg.Player.GroundedDistance,
	}
	c.Resolver = movement.Resolver{
		WalkSpeed:         cfg.Player.WalkSpeed,
		SprintSpeed:       cfg.Player.SprintSpeed,
		JumpVelocity:      cfg.Player.JumpVelocity,
		TerminalFallSpeed: cfg.Player.TerminalFallSpeed,
	}
	c.Jump.Window = cfg.Player.JumpBuffer
	c.FallThreshold = cfg.Respawn.FallThreshold
}

// CreateSession creates the physics world and the movement core for a level.
func CreateSession(ecs *ecs.ECS, number int, level *levels.Level) *donburi.Entry {
	entry := archetypes.Session.Spawn(ecs)

	world := physics.NewWorld(physics.Config{
		Gravity:  cfg.Physics.Gravity,
		Extent:   cfg.Physics.Extent,
		CellSize: cfg.Physics.CellSize,
	})
	signals := &movement.Signals{}
	platforms := movement.NewPlatformRegistry()
	respawn := movement.NewRespawner(world, signals, level.Spawn, cfg.Respawn.Offset)

	components.Session.SetValue(entry, components.SessionData{
		World:       world,
		Platforms:   platforms,
		Signals:     signals,
		Respawn:     respawn,
		Controller:  NewController(platforms, respawn, signals),
		Level:       level,
		LevelNumber: number,
	})
	return entry
}
