// Package movement is the first-person controller: ground sensing, jump
// arbitration, camera-relative locomotion, moving platform carriage and
// respawning. It only talks to the physics world through small interfaces, so
// every piece can be stepped in isolation.
package movement

import (
	"github.com/automoto/parkour/physics"
	"github.com/go-gl/mathgl/mgl64"
)

// RayCaster is the query half of the physics world.
type RayCaster interface {
	RayCast(origin, dir mgl64.Vec3, maxDist float64, exclude physics.BodyID) (physics.RayHit, bool)
}

// BodyWriter is the command half of the physics world.
type BodyWriter interface {
	SetVelocity(id physics.BodyID, v mgl64.Vec3)
	SetPosition(id physics.BodyID, p mgl64.Vec3)
}

// World is everything the controller needs from the physics world.
type World interface {
	RayCaster
	BodyWriter
	Position(id physics.BodyID) (mgl64.Vec3, bool)
	Velocity(id physics.BodyID) (mgl64.Vec3, bool)
}

var down = mgl64.Vec3{0, -1, 0}

// Contact is the ground sensor result for one step.
type Contact struct {
	Grounded bool
	Body     physics.BodyID // set only when Grounded
	Distance float64
}

// GroundSensor casts a short ray straight down from the body centre.
// RayLength must be a little longer than GroundedDistance so that floor
// clearance on a resting body still counts as contact.
type GroundSensor struct {
	RayLength        float64
	GroundedDistance float64
}

func (s GroundSensor) Probe(w RayCaster, body physics.BodyID, pos mgl64.Vec3) Contact {
	hit, ok := w.RayCast(pos, down, s.RayLength, body)
	if !ok {
		return Contact{}
	}
	if hit.Distance >= s.GroundedDistance {
		return Contact{Distance: hit.Distance}
	}
	return Contact{Grounded: true, Body: hit.Body, Distance: hit.Distance}
}
