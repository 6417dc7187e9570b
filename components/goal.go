package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type GoalData struct {
	Position  mgl64.Vec3
	Activated bool
	Pulse     *gween.Sequence // beacon scale
	Scale     float64
}

var Goal = donburi.NewComponentType[GoalData]()
