package systems

import (
	cfg "github.com/automoto/parkour/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the settings hotkeys: fullscreen, look
// sensitivity and volume. Changes apply at once and are saved.
func UpdateSettings(e *ecs.ECS) {
	input := getOrCreateInput(e)
	pressed := func(id cfg.ActionID) bool { return GetAction(input, id).JustPressed }

	if !pressed(cfg.ActionFullscreen) &&
		!pressed(cfg.ActionSensitivityDown) && !pressed(cfg.ActionSensitivityUp) &&
		!pressed(cfg.ActionVolumeDown) && !pressed(cfg.ActionVolumeUp) {
		return
	}

	s := activeSettings
	if pressed(cfg.ActionFullscreen) {
		s.Fullscreen = !s.Fullscreen
	}
	n := len(cfg.Settings.SensitivitySteps)
	if pressed(cfg.ActionSensitivityDown) {
		s.SensitivityIndex = stepIndex(s.SensitivityIndex, -1, n)
	}
	if pressed(cfg.ActionSensitivityUp) {
		s.SensitivityIndex = stepIndex(s.SensitivityIndex, 1, n)
	}
	n = len(cfg.Settings.VolumeSteps)
	if pressed(cfg.ActionVolumeDown) {
		s.VolumeIndex = stepIndex(s.VolumeIndex, -1, n)
	}
	if pressed(cfg.ActionVolumeUp) {
		s.VolumeIndex = stepIndex(s.VolumeIndex, 1, n)
	}

	ApplySettings(&s)
	SetSFXVolume(e, globalSFXVolume)
	_ = SaveSettings(&s)
	PlaySFX(e, cfg.SoundMenuNavigate)
}

// stepIndex moves i by delta, clamped to [0, n).
func stepIndex(i, delta, n int) int {
	i += delta
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
