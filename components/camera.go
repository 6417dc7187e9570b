package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CameraData is the first person view rebuilt every frame from the player
// body and the controller's look angles.
type CameraData struct {
	Eye        mgl64.Vec3
	Direction  mgl64.Vec3
	View       mgl64.Mat4
	Projection mgl64.Mat4
}

var Camera = donburi.NewComponentType[CameraData]()
