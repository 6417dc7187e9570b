package systems

import (
	"github.com/automoto/parkour/components"
	"github.com/automoto/parkour/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

var worldUp = mgl64.Vec3{0, 1, 0}

// UpdateCamera places the eye above the player body and rebuilds the view
// and projection from the controller's look angles.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	session, ok := GetSession(e)
	if !ok {
		return
	}
	pos, ok := session.World.Position(session.Signals.Body())
	if !ok {
		return
	}

	look := session.Controller.Look
	camera.Eye = pos.Add(mgl64.Vec3{0, config.Player.EyeHeight, 0})
	camera.Direction = look.Direction()
	camera.View = mgl64.LookAtV(camera.Eye, camera.Eye.Add(camera.Direction), worldUp)

	aspect := float64(config.C.Width) / float64(config.C.Height)
	camera.Projection = mgl64.Perspective(config.Camera.FOV, aspect, config.Camera.Near, config.Camera.Far)
}
