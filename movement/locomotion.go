package movement

import (
	"math"

	"github.com/automoto/parkour/physics"
	"github.com/go-gl/mathgl/mgl64"
)

// Intent is the sampled movement input for one step. Forward and Strafe are
// -1, 0 or +1.
type Intent struct {
	Forward float64
	Strafe  float64
	Sprint  bool
	Jump    bool
}

// CarrySource looks up the velocity of a carriable surface.
type CarrySource interface {
	CarryVelocity(id physics.BodyID) (mgl64.Vec3, bool)
}

type Resolver struct {
	WalkSpeed         float64
	SprintSpeed       float64
	JumpVelocity      float64
	TerminalFallSpeed float64
}

// LocomotionInput is everything one resolve needs.
type LocomotionInput struct {
	Intent Intent
	Yaw    float64
	// FallVelocity is the body's current vertical velocity, already
	// integrated by the physics world.
	FallVelocity float64
	Jumped       bool
	Contact      Contact
}

// Horizontal rotates the input pair by yaw and scales it to walk or sprint
// speed. Diagonal input is normalised first.
func (r Resolver) Horizontal(in Intent, yaw float64) mgl64.Vec3 {
	sin, cos := math.Sincos(yaw)
	vx := -sin*in.Forward + cos*in.Strafe
	vz := -cos*in.Forward - sin*in.Strafe

	l := math.Hypot(vx, vz)
	if l == 0 {
		return mgl64.Vec3{}
	}
	speed := r.WalkSpeed
	if in.Sprint {
		speed = r.SprintSpeed
	}
	return mgl64.Vec3{vx / l * speed, 0, vz / l * speed}
}

// Resolve returns the velocity to write to the body this step.
func (r Resolver) Resolve(in LocomotionInput, carry CarrySource) mgl64.Vec3 {
	v := r.Horizontal(in.Intent, in.Yaw)

	if in.Contact.Grounded && carry != nil {
		if cv, ok := carry.CarryVelocity(in.Contact.Body); ok {
			v[0] += cv.X()
			v[2] += cv.Z()
		}
	}

	vy := in.FallVelocity
	if in.Jumped {
		vy = r.JumpVelocity
	}
	v[1] = math.Max(vy, -r.TerminalFallSpeed)
	return v
}
