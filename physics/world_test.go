package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const testDt = 1.0 / 60.0

func newTestWorld() *World {
	return NewWorld(Config{Gravity: -20, Extent: 64, CellSize: 4})
}

func approxEqual(t *testing.T, got, want, tol float64, field string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s = %.6f, want %.6f (tol=%.6f)", field, got, want, tol)
	}
}

func TestStep_DynamicBodyLandsOnFloor(t *testing.T) {
	w := newTestWorld()
	w.AddBox(Static, mgl64.Vec3{0, -0.5, 0}, mgl64.Vec3{20, 1, 20})
	body := w.AddBox(Dynamic, mgl64.Vec3{0, 3, 0}, mgl64.Vec3{0.7, 1.5, 0.7})

	for i := 0; i < 120; i++ {
		w.Step(testDt)
	}

	pos, _ := w.Position(body)
	vel, _ := w.Velocity(body)
	approxEqual(t, pos.Y(), 0.75, 1e-9, "position.y")
	approxEqual(t, vel.Y(), 0, 1e-9, "velocity.y")
}

func TestStep_WallStopsHorizontalMovement(t *testing.T) {
	w := newTestWorld()
	w.AddBox(Static, mgl64.Vec3{0, -0.5, 0}, mgl64.Vec3{20, 1, 20})
	w.AddBox(Static, mgl64.Vec3{3, 2, 0}, mgl64.Vec3{1, 4, 4})
	body := w.AddBox(Dynamic, mgl64.Vec3{0, 0.75, 0}, mgl64.Vec3{0.7, 1.5, 0.7})

	for i := 0; i < 120; i++ {
		w.SetVelocity(body, mgl64.Vec3{6, 0, 0})
		w.Step(testDt)
	}

	pos, _ := w.Position(body)
	approxEqual(t, pos.X(), 2.5-0.35, 1e-9, "position.x")
	approxEqual(t, pos.Y(), 0.75, 1e-9, "position.y")
}

func TestStep_KinematicBodyFollowsTargetAndReportsVelocity(t *testing.T) {
	w := newTestWorld()
	platform := w.AddBox(Kinematic, mgl64.Vec3{0, 5, 0}, mgl64.Vec3{3, 0.5, 3})

	w.SetNextKinematicPosition(platform, mgl64.Vec3{0.1, 5, 0})
	w.Step(testDt)

	pos, _ := w.Position(platform)
	vel, _ := w.Velocity(platform)
	approxEqual(t, pos.X(), 0.1, 1e-9, "position.x")
	approxEqual(t, vel.X(), 6, 1e-9, "velocity.x")

	// no target on the next step: it stays put
	w.Step(testDt)
	vel, _ = w.Velocity(platform)
	approxEqual(t, vel.X(), 0, 1e-9, "velocity.x after idle step")
}

func TestStep_RisingPlatformLiftsRider(t *testing.T) {
	w := newTestWorld()
	platform := w.AddBox(Kinematic, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{4, 0.5, 4})
	rider := w.AddBox(Dynamic, mgl64.Vec3{0, 1.0, 0}, mgl64.Vec3{0.7, 1.5, 0.7})

	y := 0.0
	for i := 0; i < 60; i++ {
		y += 2 * testDt
		w.SetNextKinematicPosition(platform, mgl64.Vec3{0, y, 0})
		w.Step(testDt)
	}

	pos, _ := w.Position(rider)
	approxEqual(t, pos.Y(), y+0.25+0.75, 1e-6, "rider.y")
}

func TestRayCast(t *testing.T) {
	w := newTestWorld()
	floor := w.AddBox(Static, mgl64.Vec3{0, -0.5, 0}, mgl64.Vec3{20, 1, 20})
	player := w.AddBox(Dynamic, mgl64.Vec3{0, 0.75, 0}, mgl64.Vec3{0.7, 1.5, 0.7})
	down := mgl64.Vec3{0, -1, 0}

	tests := []struct {
		name     string
		origin   mgl64.Vec3
		maxDist  float64
		exclude  BodyID
		wantHit  bool
		wantBody BodyID
		wantDist float64
	}{
		{"excluding self hits floor", mgl64.Vec3{0, 0.75, 0}, 1.15, player, true, floor, 0.75},
		{"without exclusion hits self", mgl64.Vec3{0, 0.75, 0}, 1.15, NoBody, true, player, 0},
		{"out of range", mgl64.Vec3{0, 3, 0}, 1.15, player, false, NoBody, 0},
		{"beside the floor", mgl64.Vec3{30, 0.75, 0}, 1.15, player, false, NoBody, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, ok := w.RayCast(tt.origin, down, tt.maxDist, tt.exclude)
			if ok != tt.wantHit {
				t.Fatalf("hit = %v, want %v", ok, tt.wantHit)
			}
			if !ok {
				return
			}
			if hit.Body != tt.wantBody {
				t.Fatalf("body = %d, want %d", hit.Body, tt.wantBody)
			}
			approxEqual(t, hit.Distance, tt.wantDist, 1e-9, "distance")
		})
	}
}

func TestRayCast_PicksClosestBody(t *testing.T) {
	w := newTestWorld()
	w.AddBox(Static, mgl64.Vec3{0, -0.5, 0}, mgl64.Vec3{20, 1, 20})
	ledge := w.AddBox(Static, mgl64.Vec3{0, 2, 0}, mgl64.Vec3{2, 0.5, 2})

	hit, ok := w.RayCast(mgl64.Vec3{0, 5, 0}, mgl64.Vec3{0, -1, 0}, 10, NoBody)
	if !ok || hit.Body != ledge {
		t.Fatalf("hit = %+v (%v), want ledge %d", hit, ok, ledge)
	}
	approxEqual(t, hit.Distance, 2.75, 1e-9, "distance")
	approxEqual(t, hit.Point.Y(), 2.25, 1e-9, "point.y")
}

func TestRemove(t *testing.T) {
	w := newTestWorld()
	floor := w.AddBox(Static, mgl64.Vec3{0, -0.5, 0}, mgl64.Vec3{20, 1, 20})
	w.Remove(floor)
	w.Remove(floor)

	if _, ok := w.RayCast(mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, -1, 0}, 5, NoBody); ok {
		t.Fatalf("ray hit a removed body")
	}
	if w.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", w.Len())
	}
	if _, ok := w.Position(floor); ok {
		t.Fatalf("Position() reported a removed body")
	}
}

func TestSetPosition_KeepsVelocity(t *testing.T) {
	w := newTestWorld()
	body := w.AddBox(Dynamic, mgl64.Vec3{0, 10, 0}, mgl64.Vec3{1, 1, 1})
	w.SetVelocity(body, mgl64.Vec3{1, 2, 3})
	w.SetPosition(body, mgl64.Vec3{5, 5, 5})

	pos, _ := w.Position(body)
	vel, _ := w.Velocity(body)
	if pos != (mgl64.Vec3{5, 5, 5}) {
		t.Fatalf("position = %v", pos)
	}
	if vel != (mgl64.Vec3{1, 2, 3}) {
		t.Fatalf("velocity = %v, SetPosition must not touch it", vel)
	}
}
