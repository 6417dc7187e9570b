package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type PickupData struct {
	Kind      string
	Position  mgl64.Vec3
	Collected bool
	Bob       *gween.Sequence
	Offset    float64 // current bob height
}

var Pickup = donburi.NewComponentType[PickupData]()
