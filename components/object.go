package components

import (
	cfg "github.com/automoto/parkour/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SpaceScale is trigger space units per metre.
const SpaceScale = 16.0

// ObjectData is a footprint in the trigger space. The resolv X/Y axes are
// world X/Z, offset so the whole level sits at positive coordinates.
type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the trigger broadphase shared by the player and every trigger.
var Space = donburi.NewComponentType[resolv.Space]()

// FootprintRect converts a world XZ rectangle into trigger space.
func FootprintRect(center mgl64.Vec3, halfX, halfZ float64) (x, y, w, h float64) {
	x = (center.X() - halfX + cfg.Physics.Extent) * SpaceScale
	y = (center.Z() - halfZ + cfg.Physics.Extent) * SpaceScale
	return x, y, 2 * halfX * SpaceScale, 2 * halfZ * SpaceScale
}

// NewFootprint creates a trigger space object around a world position.
func NewFootprint(center mgl64.Vec3, halfX, halfZ float64, tags ...string) *resolv.Object {
	x, y, w, h := FootprintRect(center, halfX, halfZ)
	return resolv.NewObject(x, y, w, h, tags...)
}

// Place moves the footprint to a new world position keeping its size.
func (o ObjectData) Place(center mgl64.Vec3) {
	halfX := o.W / SpaceScale / 2
	halfZ := o.H / SpaceScale / 2
	o.X, o.Y, _, _ = FootprintRect(center, halfX, halfZ)
	o.Update()
}
