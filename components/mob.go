package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type MobData struct {
	ID       string
	A, B     mgl64.Vec3
	Speed    float64
	Position mgl64.Vec3

	Alive     bool
	LastTouch float64 // session clock of the last touch respawn
	Touched   bool
}

var Mob = donburi.NewComponentType[MobData]()
