package movement

import (
	"testing"

	"github.com/automoto/parkour/physics"
	"github.com/go-gl/mathgl/mgl64"
)

var playerSize = mgl64.Vec3{0.7, 1.5, 0.7}

func newTestWorld() *physics.World {
	return physics.NewWorld(physics.Config{Gravity: -20, Extent: 64, CellSize: 4})
}

func newTestController(w *physics.World, body physics.BodyID) (*Controller, *PlatformRegistry) {
	signals := &Signals{}
	reg := NewPlatformRegistry()
	return &Controller{
		Body:          body,
		Sensor:        GroundSensor{RayLength: 1.15, GroundedDistance: 1.08},
		Resolver:      newTestResolver(),
		Jump:          NewJumpArbiter(0.2),
		FallThreshold: -20,
		Platforms:     reg,
		Respawn:       NewRespawner(w, signals, mgl64.Vec3{0, 3, -22}, 1),
		Signals:       signals,
	}, reg
}

func TestController_WithoutBodyIsNoop(t *testing.T) {
	w := newTestWorld()
	c, _ := newTestController(w, physics.NoBody)

	if res := c.Step(w, Intent{Forward: 1, Jump: true}, testDt); res != (StepResult{}) {
		t.Fatalf("Step() = %+v, want zero result", res)
	}
	if c.Signals.Body() != physics.NoBody {
		t.Fatalf("published body %d", c.Signals.Body())
	}

	c.Body = 42
	if res := c.Step(w, Intent{}, testDt); res != (StepResult{}) {
		t.Fatalf("Step() on unknown body = %+v", res)
	}
}

func TestController_CarriesPlayerStandingOnPlatform(t *testing.T) {
	w := newTestWorld()
	platform := w.AddBox(physics.Kinematic, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{4, 0.5, 4})
	player := w.AddBox(physics.Dynamic, mgl64.Vec3{0, 1, 0}, playerSize)
	c, reg := newTestController(w, player)
	reg.Register(platform, mgl64.Vec3{3, 0, 1})

	res := c.Step(w, Intent{}, testDt)
	if !res.Contact.Grounded || res.Contact.Body != platform {
		t.Fatalf("contact = %+v, want grounded on platform %d", res.Contact, platform)
	}
	vel, _ := w.Velocity(player)
	approxVec(t, vel, mgl64.Vec3{3, 0, 1}, "velocity")
}

func TestController_NoCarryWhileAirborne(t *testing.T) {
	w := newTestWorld()
	platform := w.AddBox(physics.Kinematic, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{4, 0.5, 4})
	player := w.AddBox(physics.Dynamic, mgl64.Vec3{0, 3, 0}, playerSize)
	c, reg := newTestController(w, player)
	reg.Register(platform, mgl64.Vec3{3, 0, 1})

	c.Step(w, Intent{}, testDt)
	vel, _ := w.Velocity(player)
	approxVec(t, vel, mgl64.Vec3{}, "velocity")
}

func TestController_RecoversFallThrough(t *testing.T) {
	w := newTestWorld()
	player := w.AddBox(physics.Dynamic, mgl64.Vec3{5, -25, 5}, playerSize)
	w.SetVelocity(player, mgl64.Vec3{2, -28, 0})
	c, _ := newTestController(w, player)

	res := c.Step(w, Intent{Forward: 1}, testDt)
	if !res.Respawned {
		t.Fatalf("body below the threshold was not respawned")
	}
	pos, _ := w.Position(player)
	vel, _ := w.Velocity(player)
	approxVec(t, pos, mgl64.Vec3{0, 4, -22}, "position")
	approxVec(t, vel, mgl64.Vec3{}, "velocity")
}

func TestController_JumpCycle(t *testing.T) {
	w := newTestWorld()
	w.AddBox(physics.Static, mgl64.Vec3{0, -0.5, 0}, mgl64.Vec3{20, 1, 20})
	player := w.AddBox(physics.Dynamic, mgl64.Vec3{0, 0.75, 0}, playerSize)
	c, _ := newTestController(w, player)

	jumps := 0
	for i := 0; i < 10; i++ {
		res := c.Step(w, Intent{Jump: true}, testDt)
		if res.Jumped {
			jumps++
			vel, _ := w.Velocity(player)
			approxEqual(t, vel.Y(), 9.5, 1e-12, "jump velocity")
		}
		w.Step(testDt)
	}
	if jumps != 1 {
		t.Fatalf("jumps = %d in the first frames, want 1", jumps)
	}

	landed := 0
	for i := 0; i < 120; i++ {
		if c.Step(w, Intent{}, testDt).Landed {
			landed++
		}
		w.Step(testDt)
	}
	if landed != 1 {
		t.Fatalf("landed = %d, want 1", landed)
	}
	if !c.Contact().Grounded || !c.Jump.CanJump() {
		t.Fatalf("expected to be back on the ground and able to jump")
	}
	pos, _ := w.Position(player)
	approxEqual(t, pos.Y(), 0.75, 1e-9, "position.y")
}

func TestController_PublishesForward(t *testing.T) {
	w := newTestWorld()
	player := w.AddBox(physics.Dynamic, mgl64.Vec3{0, 5, 0}, playerSize)
	c, _ := newTestController(w, player)
	c.Look.Yaw = 0

	c.Step(w, Intent{}, testDt)
	approxVec(t, c.Signals.Forward(), mgl64.Vec3{0, 0, -1}, "forward")
	if c.Signals.Body() != player {
		t.Fatalf("published body = %d, want %d", c.Signals.Body(), player)
	}
}
