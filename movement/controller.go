package movement

import (
	"github.com/automoto/parkour/physics"
)

// Controller drives the player body once per fixed step. The camera
// orientation lives here and nowhere else.
type Controller struct {
	Body          physics.BodyID
	Look          Look
	Sensor        GroundSensor
	Resolver      Resolver
	Jump          *JumpArbiter
	FallThreshold float64

	Platforms CarrySource
	Respawn   *Respawner
	Signals   *Signals

	contact Contact
}

// StepResult reports what happened during one controller step.
type StepResult struct {
	Contact   Contact
	Jumped    bool
	Landed    bool
	Respawned bool
}

// Step samples the ground, arbitrates the jump, writes the body velocity,
// publishes the facing direction and recovers a body that fell below the
// level. It is a no-op until a body is assigned.
func (c *Controller) Step(w World, in Intent, dt float64) StepResult {
	if c.Body == physics.NoBody {
		return StepResult{}
	}
	pos, ok := w.Position(c.Body)
	if !ok {
		return StepResult{}
	}
	c.Signals.PublishBody(c.Body)

	contact := c.Sensor.Probe(w, c.Body, pos)
	res := StepResult{
		Contact: contact,
		Landed:  contact.Grounded && !c.contact.Grounded,
	}
	c.contact = contact

	res.Jumped = c.Jump.Step(in.Jump, contact.Grounded, dt)

	vel, _ := w.Velocity(c.Body)
	v := c.Resolver.Resolve(LocomotionInput{
		Intent:       in,
		Yaw:          c.Look.Yaw,
		FallVelocity: vel.Y(),
		Jumped:       res.Jumped,
		Contact:      contact,
	}, c.Platforms)
	w.SetVelocity(c.Body, v)

	c.Signals.PublishForward(c.Look.Forward())

	if pos.Y() < c.FallThreshold {
		res.Respawned = c.Respawn.Request()
	}
	return res
}

// Contact is the ground contact from the latest step.
func (c *Controller) Contact() Contact { return c.contact }

// Reset forgets contact and jump state, used after a level load.
func (c *Controller) Reset() {
	c.contact = Contact{}
	c.Jump.Reset()
}
