package tags

import "github.com/yohamta/donburi"

var (
	Player         = donburi.NewTag().SetName("Player")
	Platform       = donburi.NewTag().SetName("Platform")
	MovingPlatform = donburi.NewTag().SetName("MovingPlatform")
	Checkpoint     = donburi.NewTag().SetName("Checkpoint")
	Goal           = donburi.NewTag().SetName("Goal")
	KillZone       = donburi.NewTag().SetName("KillZone")
	Pickup         = donburi.NewTag().SetName("Pickup")
	Mob            = donburi.NewTag().SetName("Mob")
)

// Resolv tags for the trigger space
const (
	ResolvPlayer     = "Player"
	ResolvCheckpoint = "checkpoint"
	ResolvGoal       = "goal"
	ResolvKillZone   = "killzone"
	ResolvPickup     = "pickup"
	ResolvMob        = "Mob"
)
