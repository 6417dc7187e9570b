package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning is an optional override file for movement and camera feel. Fields
// left at zero keep the built-in value.
type Tuning struct {
	Player PlayerTuning `yaml:"player"`
	Camera CameraTuning `yaml:"camera"`
}

type PlayerTuning struct {
	WalkSpeed         float64 `yaml:"walk_speed"`
	SprintSpeed       float64 `yaml:"sprint_speed"`
	JumpVelocity      float64 `yaml:"jump_velocity"`
	JumpBuffer        float64 `yaml:"jump_buffer"`
	TerminalFallSpeed float64 `yaml:"terminal_fall_speed"`
	Gravity           float64 `yaml:"gravity"`
}

type CameraTuning struct {
	Sensitivity float64 `yaml:"sensitivity"`
	FOVDegrees  float64 `yaml:"fov_degrees"`
}

// LoadTuning reads a YAML tuning file.
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tuning %s: %w", path, err)
	}
	return ParseTuning(data)
}

func ParseTuning(data []byte) (*Tuning, error) {
	t := &Tuning{}
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("parse tuning: %w", err)
	}
	if err := t.validate(); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Tuning) validate() error {
	if t.Player.Gravity > 0 {
		return fmt.Errorf("gravity must point down, got %v", t.Player.Gravity)
	}
	for name, v := range map[string]float64{
		"walk_speed":          t.Player.WalkSpeed,
		"sprint_speed":        t.Player.SprintSpeed,
		"jump_velocity":       t.Player.JumpVelocity,
		"jump_buffer":         t.Player.JumpBuffer,
		"terminal_fall_speed": t.Player.TerminalFallSpeed,
		"sensitivity":         t.Camera.Sensitivity,
		"fov_degrees":         t.Camera.FOVDegrees,
	} {
		if v < 0 {
			return fmt.Errorf("%s must not be negative, got %v", name, v)
		}
	}
	if t.Camera.FOVDegrees >= 180 {
		return fmt.Errorf("fov_degrees must be below 180, got %v", t.Camera.FOVDegrees)
	}
	return nil
}

// Apply copies the set fields onto the global configuration.
func (t *Tuning) Apply() {
	setIf(&Player.WalkSpeed, t.Player.WalkSpeed)
	setIf(&Player.SprintSpeed, t.Player.SprintSpeed)
	setIf(&Player.JumpVelocity, t.Player.JumpVelocity)
	setIf(&Player.JumpBuffer, t.Player.JumpBuffer)
	setIf(&Player.TerminalFallSpeed, t.Player.TerminalFallSpeed)
	setIf(&Physics.Gravity, t.Player.Gravity)
	setIf(&Camera.Sensitivity, t.Camera.Sensitivity)
	if t.Camera.FOVDegrees != 0 {
		Camera.FOV = t.Camera.FOVDegrees * math.Pi / 180
	}
}

func setIf(dst *float64, v float64) {
	if v != 0 {
		*dst = v
	}
}
