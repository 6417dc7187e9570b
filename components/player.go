package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	LastLanding float64
	Jumps       int
}

var Player = donburi.NewComponentType[PlayerData]()
