package movement

import (
	"github.com/automoto/parkour/physics"
	"github.com/go-gl/mathgl/mgl64"
)

// Respawner holds the current respawn point and teleports the player body
// there on request. Any trigger may call Request; calling it twice in a row
// leaves the body where one call would.
type Respawner struct {
	world   BodyWriter
	signals *Signals
	point   mgl64.Vec3
	offset  float64
	count   int
}

func NewRespawner(world BodyWriter, signals *Signals, point mgl64.Vec3, offset float64) *Respawner {
	return &Respawner{world: world, signals: signals, point: point, offset: offset}
}

func (r *Respawner) SetPoint(p mgl64.Vec3) { r.point = p }

func (r *Respawner) Point() mgl64.Vec3 { return r.point }

// Target is where the body is placed: the point lifted by the offset.
func (r *Respawner) Target() mgl64.Vec3 {
	return r.point.Add(mgl64.Vec3{0, r.offset, 0})
}

// Request places the player body at Target with zero velocity. It reports
// false when no body has been published yet.
func (r *Respawner) Request() bool {
	id := r.signals.Body()
	if id == physics.NoBody {
		return false
	}
	r.world.SetPosition(id, r.Target())
	r.world.SetVelocity(id, mgl64.Vec3{})
	r.count++
	return true
}

// Count is the number of successful requests.
func (r *Respawner) Count() int { return r.count }
