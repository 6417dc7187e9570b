package movement

import (
	"github.com/automoto/parkour/physics"
	"github.com/go-gl/mathgl/mgl64"
)

// PlatformRegistry maps a platform body to its current world velocity. A body
// without an entry is not carriable.
type PlatformRegistry struct {
	entries map[physics.BodyID]mgl64.Vec3
}

func NewPlatformRegistry() *PlatformRegistry {
	return &PlatformRegistry{entries: make(map[physics.BodyID]mgl64.Vec3)}
}

func (r *PlatformRegistry) Register(id physics.BodyID, v mgl64.Vec3) {
	r.entries[id] = v
}

func (r *PlatformRegistry) Unregister(id physics.BodyID) {
	delete(r.entries, id)
}

func (r *PlatformRegistry) CarryVelocity(id physics.BodyID) (mgl64.Vec3, bool) {
	v, ok := r.entries[id]
	return v, ok
}

func (r *PlatformRegistry) Len() int { return len(r.entries) }

// Reset drops every entry.
func (r *PlatformRegistry) Reset() {
	clear(r.entries)
}

// PingPong moves a point back and forth between Start and End. T runs from 0
// to 1 and Dir flips at either bound.
type PingPong struct {
	Start mgl64.Vec3
	End   mgl64.Vec3
	Speed float64
	T     float64
	Dir   float64
}

func NewPingPong(start, end mgl64.Vec3, speed float64) PingPong {
	return PingPong{Start: start, End: end, Speed: speed, Dir: 1}
}

// Advance moves the progress by dt and returns the new position and the
// velocity for the direction of travel after any flip.
func (p *PingPong) Advance(dt float64) (pos, vel mgl64.Vec3) {
	p.T += dt * p.Speed * p.Dir
	if p.T >= 1 {
		p.T = 1
		p.Dir = -1
	}
	if p.T <= 0 {
		p.T = 0
		p.Dir = 1
	}
	delta := p.End.Sub(p.Start)
	return p.Position(), delta.Mul(p.Speed * p.Dir)
}

func (p *PingPong) Position() mgl64.Vec3 {
	return p.Start.Add(p.End.Sub(p.Start).Mul(p.T))
}
