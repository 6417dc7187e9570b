package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// KillZoneData is an axis aligned hazard. Triggered stays set while the
// player is inside so a single entry respawns once.
type KillZoneData struct {
	Center    mgl64.Vec3
	HalfSize  mgl64.Vec3
	Triggered bool
}

var KillZone = donburi.NewComponentType[KillZoneData]()
