package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type CheckpointData struct {
	ID        int
	Position  mgl64.Vec3
	Activated bool
}

var Checkpoint = donburi.NewComponentType[CheckpointData]()
