package systems

import (
	"github.com/automoto/parkour/components"
	cfg "github.com/automoto/parkour/config"
	"github.com/automoto/parkour/movement"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices to avoid allocations
var (
	gamepadIDs   []ebiten.GamepadID
	pressedKeys  []ebiten.Key
	releasedKeys []ebiten.Key
)

// keyActions maps every bound key to the actions it drives.
var keyActions = buildKeyActions()

func buildKeyActions() map[ebiten.Key][]cfg.ActionID {
	m := make(map[ebiten.Key][]cfg.ActionID)
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			m[key] = append(m[key], actionID)
		}
	}
	return m
}

// UpdateInput samples keyboard, mouse and gamepad into the Input component.
// Keys are tracked from press/release edges so OS key repeat never shows up
// as a new press. Must run before every system that reads input.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	pressedKeys = inpututil.AppendJustPressedKeys(pressedKeys[:0])
	releasedKeys = inpututil.AppendJustReleasedKeys(releasedKeys[:0])
	applyKeyEdges(input, pressedKeys, releasedKeys, ebiten.IsKeyPressed)

	// Swap buffers: current becomes previous, then rebuild current
	input.Previous = input.Current
	input.Current = input.Held

	var gamepadUsed bool
	for actionID, binding := range cfg.Input.Bindings {
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				input.Current[actionID] = true
			}
		}
	}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for actionID, binding := range cfg.Input.Bindings {
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
				}
			}
		}
		if pollSticks(input, gpID) {
			gamepadUsed = true
		}
	}

	if gamepadUsed {
		input.LastInputMethod = components.InputGamepad
	} else if len(pressedKeys) > 0 {
		input.LastInputMethod = components.InputKeyboard
	}

	updatePointer(input, ebiten.CursorMode() == ebiten.CursorModeCaptured)
}

// applyKeyEdges folds this frame's key edges into the held state. A release
// only clears an action when no other key bound to it is still down. An
// action pressed and released in the same frame stays held until the next
// call.
func applyKeyEdges(input *components.InputData, pressed, released []ebiten.Key, isDown func(ebiten.Key) bool) {
	for i, pending := range input.ReleaseNext {
		if !pending {
			continue
		}
		a := cfg.ActionID(i)
		input.ReleaseNext[a] = false
		input.Held[a] = anyKeyDown(cfg.Input.Bindings[a].Keys, -1, isDown)
	}

	var pressedNow [cfg.ActionCount]bool
	for _, key := range pressed {
		for _, a := range keyActions[key] {
			input.Held[a] = true
			pressedNow[a] = true
		}
	}
	for _, key := range released {
		for _, a := range keyActions[key] {
			if pressedNow[a] {
				input.ReleaseNext[a] = true
				continue
			}
			input.Held[a] = anyKeyDown(cfg.Input.Bindings[a].Keys, key, isDown)
		}
	}
}

func anyKeyDown(keys []ebiten.Key, except ebiten.Key, isDown func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if k != except && isDown(k) {
			return true
		}
	}
	return false
}

// pollSticks merges the left stick into movement and the right stick into
// the look delta. Returns true when either stick is outside the deadzone.
func pollSticks(input *components.InputData, gpID ebiten.GamepadID) bool {
	deadzone := cfg.Input.AnalogDeadzone
	used := false

	lx := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
	ly := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
	if lx < -deadzone {
		input.Current[cfg.ActionMoveLeft] = true
		used = true
	}
	if lx > deadzone {
		input.Current[cfg.ActionMoveRight] = true
		used = true
	}
	if ly < -deadzone {
		input.Current[cfg.ActionMoveForward] = true
		input.Current[cfg.ActionMenuUp] = true
		used = true
	}
	if ly > deadzone {
		input.Current[cfg.ActionMoveBack] = true
		input.Current[cfg.ActionMenuDown] = true
		used = true
	}

	rx := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickHorizontal)
	ry := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickVertical)
	// Stick look is expressed in pointer pixels so one sensitivity covers both.
	scale := cfg.Input.StickLookSpeed / cfg.Camera.Sensitivity
	if rx < -deadzone || rx > deadzone {
		input.LookDX += rx * scale
		used = true
	}
	if ry < -deadzone || ry > deadzone {
		input.LookDY += ry * scale
		used = true
	}
	return used
}

// updatePointer accumulates pointer movement while the cursor is captured.
func updatePointer(input *components.InputData, captured bool) {
	input.CaptureLost = input.Captured && !captured
	if captured != input.Captured {
		input.ResetCursor()
	}
	input.Captured = captured
	if !captured {
		return
	}
	dx, dy := input.CursorDelta(ebiten.CursorPosition())
	input.LookDX += dx
	input.LookDY += dy
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetInput returns the sampled input of this ECS.
func GetInput(ecs *ecs.ECS) *components.InputData {
	return getOrCreateInput(ecs)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// Axis returns +1, -1 or 0 from a pair of opposing actions.
func Axis(input *components.InputData, positive, negative cfg.ActionID) float64 {
	v := 0.0
	if input.Current[positive] {
		v++
	}
	if input.Current[negative] {
		v--
	}
	return v
}

// IntentFrom turns the sampled actions into a movement intent.
func IntentFrom(input *components.InputData) movement.Intent {
	return movement.Intent{
		Forward: Axis(input, cfg.ActionMoveForward, cfg.ActionMoveBack),
		Strafe:  Axis(input, cfg.ActionMoveRight, cfg.ActionMoveLeft),
		Sprint:  input.Current[cfg.ActionSprint],
		Jump:    input.Current[cfg.ActionJump],
	}
}
