package components

import (
	cfg "github.com/automoto/parkour/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions, plus the pointer delta accumulated since the last read.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	LastInputMethod InputMethod

	// Pressed state built from key edge events. A press and release landing
	// in the same frame keeps the action held for that frame; the release is
	// applied on the next sample.
	Held        [cfg.ActionCount]bool
	ReleaseNext [cfg.ActionCount]bool

	LookDX, LookDY float64
	Captured       bool
	CaptureLost    bool // capture ended this frame
	lastCursorX    int
	lastCursorY    int
	cursorValid    bool
}

var Input = donburi.NewComponentType[InputData]()

// CursorDelta records a new cursor position and returns the movement since
// the previous one. The first sample after a reset yields zero.
func (d *InputData) CursorDelta(x, y int) (dx, dy float64) {
	if d.cursorValid {
		dx, dy = float64(x-d.lastCursorX), float64(y-d.lastCursorY)
	}
	d.lastCursorX, d.lastCursorY = x, y
	d.cursorValid = true
	return dx, dy
}

// ResetCursor forgets the last cursor position, used when capture changes.
func (d *InputData) ResetCursor() { d.cursorValid = false }

// ConsumeLook returns and clears the accumulated look delta.
func (d *InputData) ConsumeLook() (dx, dy float64) {
	dx, dy = d.LookDX, d.LookDY
	d.LookDX, d.LookDY = 0, 0
	return dx, dy
}
