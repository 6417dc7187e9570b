package components

import (
	"github.com/automoto/parkour/physics"
	"github.com/yohamta/donburi"
)

// BoxRole decides how a box is drawn.
type BoxRole int

const (
	RoleGround BoxRole = iota
	RoleStatic
	RoleMoving
	RoleHazard
	RoleMob
	RoleGoal
	RoleCheckpoint
	RolePickup
	RolePlayer
)

// BodyData links an entity to a box in the physics world.
type BodyData struct {
	ID   physics.BodyID
	Role BoxRole
}

var Body = donburi.NewComponentType[BodyData]()
