// Package physics is the rigid body world the movement controller drives.
//
// Every body is an axis-aligned box. Dynamic bodies fall under gravity and are
// pushed out of static and kinematic boxes one axis at a time. Kinematic bodies
// only move to the target set with SetNextKinematicPosition. The broadphase is
// a resolv spatial hash over the XZ plane.
package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// BodyID identifies a body inside a World. The zero value is never handed out.
type BodyID uint32

const NoBody BodyID = 0

type BodyKind int

const (
	Static BodyKind = iota
	Kinematic
	Dynamic
)

// resolv tags for the broadphase space
const (
	tagBody  = "body"
	tagProbe = "probe"
)

const contactEpsilon = 1e-6

// broadphaseScale converts metres to resolv space units. resolv works in
// whole cells, so sub-metre footprints are scaled up before insertion.
const broadphaseScale = 16

// Body is a box collider. Position is the centre of the box.
type Body struct {
	ID       BodyID
	Kind     BodyKind
	Position mgl64.Vec3
	HalfSize mgl64.Vec3
	Velocity mgl64.Vec3

	next    mgl64.Vec3
	hasNext bool
	obj     *resolv.Object
}

// Min returns the lower corner of the box.
func (b *Body) Min() mgl64.Vec3 { return b.Position.Sub(b.HalfSize) }

// Max returns the upper corner of the box.
func (b *Body) Max() mgl64.Vec3 { return b.Position.Add(b.HalfSize) }

// Config holds the world constants.
type Config struct {
	Gravity  float64 // vertical acceleration, negative is down
	Extent   float64 // broadphase covers [-Extent, Extent] on X and Z
	CellSize int
}

// RayHit describes the closest box a ray touched.
type RayHit struct {
	Distance float64
	Point    mgl64.Vec3
	Body     BodyID
}

type World struct {
	cfg    Config
	bodies map[BodyID]*Body
	order  []BodyID
	nextID BodyID
	space  *resolv.Space
	probe  *resolv.Object
}

func NewWorld(cfg Config) *World {
	if cfg.CellSize <= 0 {
		cfg.CellSize = 4
	}
	if cfg.Extent <= 0 {
		cfg.Extent = 128
	}
	size := int(math.Ceil(cfg.Extent * 2 * broadphaseScale))
	cell := cfg.CellSize * broadphaseScale
	space := resolv.NewSpace(size, size, cell, cell)
	probe := resolv.NewObject(0, 0, 1, 1, tagProbe)
	space.Add(probe)

	return &World{
		cfg:    cfg,
		bodies: make(map[BodyID]*Body),
		space:  space,
		probe:  probe,
	}
}

// AddBox creates a body of the given kind centred on center with full extents size.
func (w *World) AddBox(kind BodyKind, center, size mgl64.Vec3) BodyID {
	w.nextID++
	half := size.Mul(0.5)
	b := &Body{
		ID:       w.nextID,
		Kind:     kind,
		Position: center,
		HalfSize: half,
	}
	b.obj = resolv.NewObject(0, 0, size.X()*broadphaseScale, size.Z()*broadphaseScale, tagBody)
	b.obj.Data = b.ID
	w.syncObject(b)
	w.space.Add(b.obj)

	w.bodies[b.ID] = b
	w.order = append(w.order, b.ID)
	return b.ID
}

// Remove deletes a body. Removing an unknown id is a no-op.
func (w *World) Remove(id BodyID) {
	b, ok := w.bodies[id]
	if !ok {
		return
	}
	w.space.Remove(b.obj)
	delete(w.bodies, id)
	for i, oid := range w.order {
		if oid == id {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// Body returns the body for id, or nil.
func (w *World) Body(id BodyID) *Body {
	return w.bodies[id]
}

// Each visits bodies in creation order.
func (w *World) Each(fn func(b *Body)) {
	for _, id := range w.order {
		fn(w.bodies[id])
	}
}

func (w *World) Len() int { return len(w.bodies) }

// SetGravity changes the vertical acceleration applied to dynamic bodies.
func (w *World) SetGravity(g float64) { w.cfg.Gravity = g }

func (w *World) Gravity() float64 { return w.cfg.Gravity }

func (w *World) Position(id BodyID) (mgl64.Vec3, bool) {
	b, ok := w.bodies[id]
	if !ok {
		return mgl64.Vec3{}, false
	}
	return b.Position, true
}

func (w *World) Velocity(id BodyID) (mgl64.Vec3, bool) {
	b, ok := w.bodies[id]
	if !ok {
		return mgl64.Vec3{}, false
	}
	return b.Velocity, true
}

func (w *World) SetVelocity(id BodyID, v mgl64.Vec3) {
	if b, ok := w.bodies[id]; ok {
		b.Velocity = v
	}
}

// SetPosition teleports a body. Kinematic targets are discarded.
func (w *World) SetPosition(id BodyID, p mgl64.Vec3) {
	b, ok := w.bodies[id]
	if !ok {
		return
	}
	b.Position = p
	b.hasNext = false
	w.syncObject(b)
}

// SetNextKinematicPosition sets the position a kinematic body reaches on the
// next Step. Its velocity for that step is derived from the displacement.
func (w *World) SetNextKinematicPosition(id BodyID, p mgl64.Vec3) {
	b, ok := w.bodies[id]
	if !ok || b.Kind != Kinematic {
		return
	}
	b.next = p
	b.hasNext = true
}

// Step advances the simulation by dt seconds.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}

	for _, id := range w.order {
		b := w.bodies[id]
		if b.Kind != Kinematic {
			continue
		}
		if !b.hasNext {
			b.Velocity = mgl64.Vec3{}
			continue
		}
		b.Velocity = b.next.Sub(b.Position).Mul(1 / dt)
		b.Position = b.next
		b.hasNext = false
		w.syncObject(b)
	}

	for _, id := range w.order {
		b := w.bodies[id]
		if b.Kind != Dynamic {
			continue
		}
		w.depenetrate(b)

		b.Velocity[1] += w.cfg.Gravity * dt
		w.moveAxis(b, 1, b.Velocity[1]*dt)
		w.moveAxis(b, 0, b.Velocity[0]*dt)
		w.moveAxis(b, 2, b.Velocity[2]*dt)
		w.syncObject(b)
	}
}

// moveAxis moves b along one axis and stops it at the first face it crosses.
// Boxes b already overlapped on that axis before the move are left to the
// other axes.
func (w *World) moveAxis(b *Body, axis int, delta float64) {
	if delta == 0 {
		return
	}
	prev := b.Position[axis]
	b.Position[axis] += delta

	for _, o := range w.candidates(b.Min(), b.Max(), b.ID) {
		if o.Kind == Dynamic || !overlaps(b, o) {
			continue
		}
		omin, omax := o.Min(), o.Max()
		if delta > 0 {
			if prev+b.HalfSize[axis] > omin[axis]+contactEpsilon {
				continue
			}
			b.Position[axis] = omin[axis] - b.HalfSize[axis]
		} else {
			if prev-b.HalfSize[axis] < omax[axis]-contactEpsilon {
				continue
			}
			b.Position[axis] = omax[axis] + b.HalfSize[axis]
		}
		b.Velocity[axis] = 0
	}
}

// depenetrate pushes a dynamic body out of any kinematic box that moved into
// it, along the axis of least overlap.
func (w *World) depenetrate(b *Body) {
	for _, o := range w.candidates(b.Min(), b.Max(), b.ID) {
		if o.Kind != Kinematic || !overlaps(b, o) {
			continue
		}
		bmin, bmax := b.Min(), b.Max()
		omin, omax := o.Min(), o.Max()

		axis, push := 0, math.Inf(1)
		for i := 0; i < 3; i++ {
			var d float64
			if b.Position[i] >= o.Position[i] {
				d = omax[i] - bmin[i]
			} else {
				d = -(bmax[i] - omin[i])
			}
			if math.Abs(d) < math.Abs(push) {
				axis, push = i, d
			}
		}
		b.Position[axis] += push
		if axis == 1 && push > 0 && b.Velocity[1] < 0 {
			b.Velocity[1] = 0
		}
	}
}

// RayCast returns the closest box hit by the ray within maxDist, skipping the
// body exclude. dir does not need to be normalised.
func (w *World) RayCast(origin, dir mgl64.Vec3, maxDist float64, exclude BodyID) (RayHit, bool) {
	if dir.Len() == 0 || maxDist <= 0 {
		return RayHit{}, false
	}
	dir = dir.Normalize()
	end := origin.Add(dir.Mul(maxDist))

	lo := mgl64.Vec3{math.Min(origin.X(), end.X()), 0, math.Min(origin.Z(), end.Z())}
	hi := mgl64.Vec3{math.Max(origin.X(), end.X()), 0, math.Max(origin.Z(), end.Z())}

	best := RayHit{Distance: math.Inf(1)}
	found := false
	for _, o := range w.candidates(lo, hi, exclude) {
		t, ok := raySlab(origin, dir, o.Min(), o.Max())
		if !ok || t > maxDist || t >= best.Distance {
			continue
		}
		best = RayHit{Distance: t, Point: origin.Add(dir.Mul(t)), Body: o.ID}
		found = true
	}
	return best, found
}

// candidates returns the bodies whose broadphase footprint touches the XZ
// rectangle spanned by lo and hi.
func (w *World) candidates(lo, hi mgl64.Vec3, exclude BodyID) []*Body {
	// padded by one unit on each side so zero-width rays still span a cell
	w.probe.X = (lo.X()+w.cfg.Extent)*broadphaseScale - 1
	w.probe.Y = (lo.Z()+w.cfg.Extent)*broadphaseScale - 1
	w.probe.W = (hi.X()-lo.X())*broadphaseScale + 2
	w.probe.H = (hi.Z()-lo.Z())*broadphaseScale + 2
	w.probe.Update()

	check := w.probe.Check(0, 0, tagBody)
	if check == nil {
		return nil
	}

	objs := check.ObjectsByTags(tagBody)
	out := make([]*Body, 0, len(objs))
	for _, obj := range objs {
		id, ok := obj.Data.(BodyID)
		if !ok || id == exclude {
			continue
		}
		if b, ok := w.bodies[id]; ok {
			out = append(out, b)
		}
	}
	return out
}

func (w *World) syncObject(b *Body) {
	b.obj.X = (b.Position.X() - b.HalfSize.X() + w.cfg.Extent) * broadphaseScale
	b.obj.Y = (b.Position.Z() - b.HalfSize.Z() + w.cfg.Extent) * broadphaseScale
	b.obj.Update()
}

func overlaps(a, b *Body) bool {
	amin, amax := a.Min(), a.Max()
	bmin, bmax := b.Min(), b.Max()
	for i := 0; i < 3; i++ {
		if amin[i] >= bmax[i]-contactEpsilon || amax[i] <= bmin[i]+contactEpsilon {
			return false
		}
	}
	return true
}

// raySlab is the slab test for a ray against an AABB. A ray starting inside
// the box hits at distance 0.
func raySlab(origin, dir, bmin, bmax mgl64.Vec3) (float64, bool) {
	tmin, tmax := math.Inf(-1), math.Inf(1)
	for i := 0; i < 3; i++ {
		if math.Abs(dir[i]) < 1e-12 {
			if origin[i] < bmin[i] || origin[i] > bmax[i] {
				return 0, false
			}
			continue
		}
		inv := 1 / dir[i]
		t1 := (bmin[i] - origin[i]) * inv
		t2 := (bmax[i] - origin[i]) * inv
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tmin = math.Max(tmin, t1)
		tmax = math.Min(tmax, t2)
		if tmin > tmax {
			return 0, false
		}
	}
	if tmax < 0 {
		return 0, false
	}
	return math.Max(tmin, 0), true
}
