package movement

import "math"

// JumpState is the jump latch.
type JumpState int

const (
	// JumpIdle can jump, nothing requested.
	JumpIdle JumpState = iota
	// JumpArmed has a buffered request waiting for ground contact.
	JumpArmed
	// JumpLocked has fired and waits for contact to break.
	JumpLocked
)

func (s JumpState) String() string {
	switch s {
	case JumpIdle:
		return "idle"
	case JumpArmed:
		return "armed"
	case JumpLocked:
		return "locked"
	}
	return "unknown"
}

// JumpArbiter decides on which step a jump impulse fires.
//
// Holding jump refreshes a short buffer, so a press just before landing still
// fires on the landing step. Once fired, the arbiter stays locked until the
// ground sensor reports no contact. Re-arming is driven by contact only, never
// by a timer.
type JumpArbiter struct {
	Window float64

	state    JumpState
	buffer   float64
	grounded bool
}

func NewJumpArbiter(window float64) *JumpArbiter {
	return &JumpArbiter{Window: window}
}

// Step advances the latch by dt and reports whether a jump fires this step.
func (a *JumpArbiter) Step(held, grounded bool, dt float64) bool {
	a.grounded = grounded

	if held {
		a.buffer = a.Window
	} else {
		a.buffer = math.Max(0, a.buffer-dt)
	}

	if a.state == JumpLocked && !grounded {
		a.state = JumpIdle
	}
	if a.state != JumpLocked {
		if a.buffer > 0 {
			a.state = JumpArmed
		} else {
			a.state = JumpIdle
		}
	}

	if a.state == JumpArmed && grounded {
		a.buffer = 0
		a.state = JumpLocked
		return true
	}
	return false
}

func (a *JumpArbiter) State() JumpState { return a.state }

func (a *JumpArbiter) Buffer() float64 { return a.buffer }

// CanJump reports whether a jump would fire now if requested: not locked and
// standing on something.
func (a *JumpArbiter) CanJump() bool {
	return a.state != JumpLocked && a.grounded
}

func (a *JumpArbiter) Reset() {
	a.state = JumpIdle
	a.buffer = 0
	a.grounded = false
}
