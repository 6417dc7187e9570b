package config

import (
	"image/color"
	"math"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer every renderer draws on.
const Default ecs.LayerID = 0

// PlayerConfig contains the movement tuning. Distances are metres, times are
// seconds.
type PlayerConfig struct {
	// Movement
	WalkSpeed         float64
	SprintSpeed       float64
	JumpVelocity      float64
	JumpBuffer        float64 // Seconds a jump press is remembered
	TerminalFallSpeed float64

	// Ground sensor
	GroundRayLength  float64 // Length of the downward probe from the body centre
	GroundedDistance float64 // Hits closer than this count as contact

	// Body (box approximating the capsule)
	Width     float64
	Height    float64
	EyeHeight float64 // Camera offset above the body centre

	Spawn [3]float64
}

// CameraConfig contains first person camera configuration
type CameraConfig struct {
	Sensitivity float64 // Radians per pixel of pointer movement
	PitchLimit  float64 // Radians either side of the horizon
	FOV         float64 // Vertical field of view in radians
	Near        float64
	Far         float64
}

// PhysicsConfig contains physics world configuration values
type PhysicsConfig struct {
	Gravity   float64
	FixedStep float64 // Seconds per simulation step
	Extent    float64 // Half size of the broadphase on X and Z
	CellSize  int // Broadphase cell edge in metres
}

// RespawnConfig contains respawn mediator configuration
type RespawnConfig struct {
	FallThreshold float64 // World Y below which the player is recovered
	Offset        float64 // Lift applied above the respawn point
	Checkpoint    float64 // Height above a checkpoint its respawn point sits
}

// PlatformConfig contains moving platform defaults
type PlatformConfig struct {
	DefaultSpeed float64 // Fraction of the path per second
	DefaultSize  [3]float64
}

// MobConfig contains patrolling mob configuration
type MobConfig struct {
	DefaultSpeed  float64
	BobSpeed      float64
	BobHeight     float64
	TouchRadius   float64
	TouchCooldown float64 // Seconds between two touch respawns
	SwordReach    float64
	SwordDot      float64 // Minimum facing dot for a sword hit
	AttackWindow  float64 // Seconds an attack stays live
	Size          [3]float64
}

// TriggerConfig contains trigger radii
type TriggerConfig struct {
	CheckpointRadius float64
	GoalRadius       float64
	PickupRadius     float64
	BannerDuration   float64 // Seconds the checkpoint banner stays visible
	PickupBobHeight  float64
	PickupBobPeriod  float64
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TextColorDisabled color.RGBA
	Title             string
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// LevelCompleteConfig contains level complete and win overlay configuration
type LevelCompleteConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	TextColor    color.RGBA
	HintColor    color.RGBA
	TitleY       float64
	MessageY     float64
	HintY        float64
	Title        string
	WinTitle     string
	ContinueHint string
	WinHint      string
}

// HUDConfig contains in-game HUD configuration
type HUDConfig struct {
	TextColor       color.RGBA
	PanelColor      color.RGBA
	CrosshairColor  color.RGBA
	CrosshairSize   float32
	Margin          float64
	BannerColor     color.RGBA
	BannerText      string
	SwordColor      color.RGBA
	PlayerMarkColor color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu   bool   // Skip menu and go directly to game
	StartLevel int    // Level number used with SkipMenu
	Overlay    bool   // Show the debug overlay from the start
	TuningPath string // Optional YAML tuning file, watched for changes
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Camera CameraConfig
var Physics PhysicsConfig
var Respawn RespawnConfig
var Platform PlatformConfig
var Mob MobConfig
var Trigger TriggerConfig
var Pause PauseConfig
var Menu MenuConfig
var LevelComplete LevelCompleteConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Grey         = color.RGBA{R: 130, G: 130, B: 140, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Gold         = color.RGBA{R: 255, G: 200, B: 60, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	Cyan         = color.RGBA{R: 80, G: 220, B: 255, A: 255}
	Purple       = color.RGBA{R: 140, G: 60, B: 200, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 540,
	}

	Physics = PhysicsConfig{
		Gravity:   -20,
		FixedStep: 1.0 / 60.0,
		Extent:    128,
		CellSize:  4,
	}

	Player = PlayerConfig{
		WalkSpeed:         6,
		SprintSpeed:       10.5,
		JumpVelocity:      9.5,
		JumpBuffer:        0.2,
		TerminalFallSpeed: 28,

		GroundRayLength:  1.15,
		GroundedDistance: 1.08,

		// 0.35 radius, 0.4 half height capsule
		Width:     0.7,
		Height:    1.5,
		EyeHeight: 0.75,

		Spawn: [3]float64{0, 3, -22},
	}

	Camera = CameraConfig{
		Sensitivity: 0.0022,
		PitchLimit:  math.Pi / 2.1,
		FOV:         75 * math.Pi / 180,
		Near:        0.1,
		Far:         400,
	}

	Respawn = RespawnConfig{
		FallThreshold: -20,
		Offset:        1,
		Checkpoint:    1,
	}

	Platform = PlatformConfig{
		DefaultSpeed: 1.2,
		DefaultSize:  [3]float64{3, 0.5, 3},
	}

	Mob = MobConfig{
		DefaultSpeed:  0.7,
		BobSpeed:      3,
		BobHeight:     0.04,
		TouchRadius:   1.5,
		TouchCooldown: 2,
		SwordReach:    3.5,
		SwordDot:      0.35,
		AttackWindow:  0.6,
		Size:          [3]float64{1, 1.2, 1},
	}

	Trigger = TriggerConfig{
		CheckpointRadius: 3,
		GoalRadius:       2.8,
		PickupRadius:     2.2,
		BannerDuration:   2,
		PickupBobHeight:  0.25,
		PickupBobPeriod:  1.2,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Main Menu", "Exit"},
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TextColorDisabled: Grey,
		Title:             "PARKOUR",
		TitleY:            110,
		MenuStartY:        200,
		MenuItemHeight:    30,
		MenuItemGap:       12,
		MenuOptions:       []string{"Start", "Continue", "Level Select", "Exit"},
	}

	LevelComplete = LevelCompleteConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   BrightGreen,
		TextColor:    White,
		HintColor:    White,
		TitleY:       160,
		MessageY:     230,
		HintY:        380,
		Title:        "Level Complete!",
		WinTitle:     "You Win!",
		ContinueHint: "Press ENTER to continue",
		WinHint:      "Press ENTER to return to the menu",
	}

	HUD = HUDConfig{
		TextColor:       White,
		PanelColor:      color.RGBA{R: 0, G: 0, B: 0, A: 140},
		CrosshairColor:  color.RGBA{R: 255, G: 255, B: 255, A: 200},
		CrosshairSize:   6,
		Margin:          12,
		BannerColor:     Gold,
		BannerText:      "Checkpoint reached",
		SwordColor:      Cyan,
		PlayerMarkColor: BrightOrange,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu:   false,
		StartLevel: 1,
	}
}
