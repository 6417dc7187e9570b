package components

import (
	cfg "github.com/automoto/parkour/config"
	"github.com/yohamta/donburi"
)

// GameData is the game store: phase, level progress and timers.
type GameData struct {
	Phase       cfg.GamePhase
	Level       int
	Elapsed     float64 // seconds on the current level, only while playing
	TotalTime   float64 // sum of completed level times this run
	Checkpoints []int   // checkpoint ids reached on this level, in order
	HasSword    bool
	MobsKilled  []string
}

var Game = donburi.NewComponentType[GameData]()

// HasCheckpoint reports whether id was already reached.
func (g *GameData) HasCheckpoint(id int) bool {
	for _, c := range g.Checkpoints {
		if c == id {
			return true
		}
	}
	return false
}

func (g *GameData) MobKilled(id string) bool {
	for _, m := range g.MobsKilled {
		if m == id {
			return true
		}
	}
	return false
}
