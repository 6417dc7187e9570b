package movement

import (
	"math/rand"
	"testing"
)

const testDt = 1.0 / 60.0

func TestJumpArbiter_FiresOnceWhileHeldOnGround(t *testing.T) {
	a := NewJumpArbiter(0.2)

	fires := 0
	for i := 0; i < 120; i++ {
		if a.Step(true, true, testDt) {
			fires++
		}
	}

	if fires != 1 {
		t.Fatalf("fires = %d, want 1", fires)
	}
	if a.State() != JumpLocked {
		t.Fatalf("state = %v, want locked", a.State())
	}
	if a.CanJump() {
		t.Fatalf("CanJump() = true while locked")
	}
}

func TestJumpArbiter_RearmsAfterContactBreaks(t *testing.T) {
	a := NewJumpArbiter(0.2)

	if !a.Step(true, true, testDt) {
		t.Fatalf("first press on ground did not fire")
	}
	// ground still reported right after takeoff
	if a.Step(true, true, testDt) {
		t.Fatalf("fired again before leaving the ground")
	}
	if a.Step(true, false, testDt) {
		t.Fatalf("fired while airborne")
	}
	if a.State() != JumpArmed {
		t.Fatalf("state = %v, want armed", a.State())
	}
	if !a.Step(true, true, testDt) {
		t.Fatalf("did not fire on landing with jump held")
	}
}

func TestJumpArbiter_BufferedPressFiresOnLanding(t *testing.T) {
	tests := []struct {
		name     string
		airSteps int
		wantFire bool
	}{
		{"landing on the next step", 0, true},
		{"landing inside the window", 10, true},
		{"landing after the window", 15, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewJumpArbiter(0.2)
			a.Step(true, false, testDt)
			for i := 0; i < tt.airSteps; i++ {
				if a.Step(false, false, testDt) {
					t.Fatalf("fired while airborne")
				}
			}
			if got := a.Step(false, true, testDt); got != tt.wantFire {
				t.Fatalf("fired = %v, want %v (buffer %.3f)", got, tt.wantFire, a.Buffer())
			}
		})
	}
}

func TestJumpArbiter_StateTransitions(t *testing.T) {
	a := NewJumpArbiter(0.2)
	if a.State() != JumpIdle {
		t.Fatalf("initial state = %v, want idle", a.State())
	}

	a.Step(true, false, testDt)
	if a.State() != JumpArmed {
		t.Fatalf("state after airborne press = %v, want armed", a.State())
	}

	for i := 0; i < 20; i++ {
		a.Step(false, false, testDt)
	}
	if a.State() != JumpIdle || a.Buffer() != 0 {
		t.Fatalf("state = %v buffer = %v, want idle with empty buffer", a.State(), a.Buffer())
	}

	a.Step(false, true, testDt)
	if !a.CanJump() {
		t.Fatalf("CanJump() = false on the ground while idle")
	}

	a.Reset()
	if a.CanJump() || a.State() != JumpIdle {
		t.Fatalf("Reset left state %v", a.State())
	}
}

func TestJumpArbiter_NeverFiresTwiceWithoutLeavingGround(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	a := NewJumpArbiter(0.2)

	firedSinceAirborne := false
	for i := 0; i < 20000; i++ {
		held := rng.Intn(2) == 0
		grounded := rng.Intn(3) != 0

		fired := a.Step(held, grounded, testDt)
		if fired && !grounded {
			t.Fatalf("step %d: fired while airborne", i)
		}
		if fired && firedSinceAirborne {
			t.Fatalf("step %d: second jump without breaking contact", i)
		}
		if fired {
			firedSinceAirborne = true
		}
		if !grounded {
			firedSinceAirborne = false
		}
	}
}
