package movement

import (
	"github.com/automoto/parkour/physics"
	"github.com/go-gl/mathgl/mgl64"
)

// Signals is the controller's published state. The controller is the only
// writer; triggers read it. Times are seconds on the session clock.
type Signals struct {
	body       physics.BodyID
	forward    mgl64.Vec3
	lastAttack float64
	attacked   bool
}

func (s *Signals) Body() physics.BodyID { return s.body }

func (s *Signals) Forward() mgl64.Vec3 { return s.forward }

// LastAttack returns the time of the latest attack and false if the player
// never attacked.
func (s *Signals) LastAttack() (float64, bool) { return s.lastAttack, s.attacked }

// AttackedWithin reports whether an attack happened in the last window
// seconds before now.
func (s *Signals) AttackedWithin(now, window float64) bool {
	return s.attacked && now-s.lastAttack <= window
}

func (s *Signals) PublishBody(id physics.BodyID) { s.body = id }

func (s *Signals) PublishForward(v mgl64.Vec3) { s.forward = v }

func (s *Signals) PublishAttack(now float64) {
	s.lastAttack = now
	s.attacked = true
}

func (s *Signals) Reset() { *s = Signals{} }
