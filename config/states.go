package config

// GamePhase is the top level state of a play session.
type GamePhase int

const (
	PhaseMenu GamePhase = iota
	PhasePlaying
	PhasePaused
	PhaseLevelComplete
	PhaseWin
)

func (p GamePhase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseLevelComplete:
		return "level complete"
	case PhaseWin:
		return "win"
	}
	return "unknown"
}
