package systems

import (
	"github.com/automoto/parkour/components"
	cfg "github.com/automoto/parkour/config"
	"github.com/automoto/parkour/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// One Update tick is one simulation step.
func stepDt() float64 { return cfg.Physics.FixedStep }

// UpdateLook turns the camera by the pointer movement gathered this frame.
// Deltas collected while not playing are dropped.
func UpdateLook(e *ecs.ECS) {
	input := getOrCreateInput(e)
	dx, dy := input.ConsumeLook()
	session, ok := GetSession(e)
	if !ok {
		return
	}
	session.Controller.Look.Apply(dx, dy, cfg.Camera.Sensitivity, cfg.Camera.PitchLimit)
}

// DiscardLook drops pointer movement so it does not pile up behind overlays.
func DiscardLook(e *ecs.ECS) {
	if IsPlaying(e) {
		return
	}
	getOrCreateInput(e).ConsumeLook()
}

// UpdateMovingPlatforms advances every platform along its path and publishes
// its velocity for carriage.
func UpdateMovingPlatforms(e *ecs.ECS) {
	session, ok := GetSession(e)
	if !ok {
		return
	}
	dt := stepDt()
	components.MovingPlatform.Each(e.World, func(entry *donburi.Entry) {
		mp := components.MovingPlatform.Get(entry)
		body := components.Body.Get(entry)
		pos, vel := mp.Mover.Advance(dt)
		session.World.SetNextKinematicPosition(body.ID, pos)
		session.Platforms.Register(body.ID, vel)
	})
}

// UpdateController runs one movement controller step for the player.
func UpdateController(e *ecs.ECS) {
	session, ok := GetSession(e)
	if !ok {
		return
	}
	input := getOrCreateInput(e)

	res := session.Controller.Step(session.World, IntentFrom(input), stepDt())

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if res.Jumped {
		player.Jumps++
		PlaySFX(e, cfg.SoundJump)
	}
	if res.Landed {
		player.LastLanding = session.Clock
		PlaySFX(e, cfg.SoundLand)
	}
	if res.Respawned {
		PlaySFX(e, cfg.SoundRespawn)
	}
}

// UpdatePhysicsWorld integrates the world and advances the level clocks.
func UpdatePhysicsWorld(e *ecs.ECS) {
	session, ok := GetSession(e)
	if !ok {
		return
	}
	dt := stepDt()
	session.World.Step(dt)
	session.Clock += dt
	Tick(GetOrCreateGame(e), dt)
}
