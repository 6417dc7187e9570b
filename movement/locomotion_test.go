package movement

import (
	"math"
	"testing"

	"github.com/automoto/parkour/physics"
	"github.com/go-gl/mathgl/mgl64"
)

func newTestResolver() Resolver {
	return Resolver{WalkSpeed: 6, SprintSpeed: 10.5, JumpVelocity: 9.5, TerminalFallSpeed: 28}
}

func approxEqual(t *testing.T, got, want, tol float64, field string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s = %.6f, want %.6f (tol=%.6f)", field, got, want, tol)
	}
}

func approxVec(t *testing.T, got, want mgl64.Vec3, field string) {
	t.Helper()
	if !got.ApproxEqualThreshold(want, 1e-9) {
		t.Fatalf("%s = %v, want %v", field, got, want)
	}
}

func TestResolver_Horizontal(t *testing.T) {
	r := newTestResolver()
	tests := []struct {
		name string
		in   Intent
		yaw  float64
		want mgl64.Vec3
	}{
		{"idle", Intent{}, 0, mgl64.Vec3{}},
		{"forward faces -z", Intent{Forward: 1}, 0, mgl64.Vec3{0, 0, -6}},
		{"backward", Intent{Forward: -1}, 0, mgl64.Vec3{0, 0, 6}},
		{"strafe right", Intent{Strafe: 1}, 0, mgl64.Vec3{6, 0, 0}},
		{"forward after turning left", Intent{Forward: 1}, math.Pi / 2, mgl64.Vec3{-6, 0, 0}},
		{"sprint forward", Intent{Forward: 1, Sprint: true}, 0, mgl64.Vec3{0, 0, -10.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			approxVec(t, r.Horizontal(tt.in, tt.yaw), tt.want, "velocity")
		})
	}
}

func TestResolver_DiagonalIsNormalised(t *testing.T) {
	r := newTestResolver()
	for _, yaw := range []float64{0, 0.3, -1.2, math.Pi, 7.5} {
		for _, sprint := range []bool{false, true} {
			for _, f := range []float64{-1, 1} {
				for _, s := range []float64{-1, 1} {
					v := r.Horizontal(Intent{Forward: f, Strafe: s, Sprint: sprint}, yaw)
					want := r.WalkSpeed
					if sprint {
						want = r.SprintSpeed
					}
					approxEqual(t, v.Len(), want, 1e-9, "speed")
				}
			}
		}
	}
}

func TestResolver_VerticalVelocity(t *testing.T) {
	r := newTestResolver()
	tests := []struct {
		name   string
		fall   float64
		jumped bool
		want   float64
	}{
		{"keeps current", -5, false, -5},
		{"jump replaces", -3, true, 9.5},
		{"clamped at terminal speed", -40, false, -28},
		{"rising untouched", 4, false, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := r.Resolve(LocomotionInput{FallVelocity: tt.fall, Jumped: tt.jumped}, nil)
			approxEqual(t, v.Y(), tt.want, 1e-12, "velocity.y")
		})
	}
}

func TestResolver_Carriage(t *testing.T) {
	r := newTestResolver()
	reg := NewPlatformRegistry()
	const platform physics.BodyID = 4
	reg.Register(platform, mgl64.Vec3{2, 5, 1})

	tests := []struct {
		name    string
		contact Contact
		carry   CarrySource
		want    mgl64.Vec3
	}{
		{"grounded on a moving platform", Contact{Grounded: true, Body: platform}, reg, mgl64.Vec3{2, -1, 1}},
		{"airborne", Contact{}, reg, mgl64.Vec3{0, -1, 0}},
		{"grounded on static geometry", Contact{Grounded: true, Body: 9}, reg, mgl64.Vec3{0, -1, 0}},
		{"no registry", Contact{Grounded: true, Body: platform}, nil, mgl64.Vec3{0, -1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := r.Resolve(LocomotionInput{FallVelocity: -1, Contact: tt.contact}, tt.carry)
			approxVec(t, v, tt.want, "velocity")
		})
	}
}
