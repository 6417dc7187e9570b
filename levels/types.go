// Package levels parses the top-down TMX level maps into world geometry.
// Object x/y in the map are world X/Z, elevation and heights come from object
// properties. It has no dependencies on ebitengine, donburi, or resolv.
package levels

import "github.com/go-gl/mathgl/mgl64"

// PixelsPerMetre is the map scale on both axes.
const PixelsPerMetre = 16.0

// Box is a static collider. Center is the box centre.
type Box struct {
	Kind   string // "ground", "building", "platform", "wall", "tower"
	Center mgl64.Vec3
	Size   mgl64.Vec3
}

type MovingPlatform struct {
	Name  string
	Start mgl64.Vec3
	End   mgl64.Vec3
	Size  mgl64.Vec3
	Speed float64
}

type KillZone struct {
	Center mgl64.Vec3
	Size   mgl64.Vec3
}

// HalfSize is the AABB half extent.
func (k KillZone) HalfSize() mgl64.Vec3 { return k.Size.Mul(0.5) }

type Checkpoint struct {
	ID       int
	Position mgl64.Vec3
}

type Pickup struct {
	Kind     string
	Position mgl64.Vec3
}

type Mob struct {
	ID    string
	A, B  mgl64.Vec3
	Speed float64
}

// Level is everything a map describes.
type Level struct {
	Path            string
	Spawn           mgl64.Vec3
	Platforms       []Box
	MovingPlatforms []MovingPlatform
	KillZones       []KillZone
	Checkpoints     []Checkpoint
	Goal            mgl64.Vec3
	Pickups         []Pickup
	Mobs            []Mob
}

// Defaults fill properties a map leaves out.
type Defaults struct {
	PlatformSpeed float64
	PlatformSize  mgl64.Vec3
	MobSpeed      float64
}
