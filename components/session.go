package components

import (
	"github.com/automoto/parkour/levels"
	"github.com/automoto/parkour/movement"
	"github.com/automoto/parkour/physics"
	"github.com/yohamta/donburi"
)

// SessionData owns the simulation of the loaded level. There is one per
// world scene.
type SessionData struct {
	World      *physics.World
	Platforms  *movement.PlatformRegistry
	Signals    *movement.Signals
	Respawn    *movement.Respawner
	Controller *movement.Controller
	Level      *levels.Level

	LevelNumber int
	Clock       float64 // seconds of simulated play on this level
}

var Session = donburi.NewComponentType[SessionData]()
