package components

import "github.com/yohamta/donburi"

// LevelCompleteData stores the state of the level complete and win overlays
type LevelCompleteData struct {
	LevelTime float64 // time of the level just finished
	BestTime  float64 // stored best time for it, 0 when none
	NewBest   bool
	Recorded  bool // result already written to persistence
}

var LevelComplete = donburi.NewComponentType[LevelCompleteData]()
