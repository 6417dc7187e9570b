package components

import (
	"github.com/automoto/parkour/movement"
	"github.com/yohamta/donburi"
)

type MovingPlatformData struct {
	Name  string
	Mover movement.PingPong
}

var MovingPlatform = donburi.NewComponentType[MovingPlatformData]()
