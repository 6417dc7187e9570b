package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Movement sounds
	SoundJump
	SoundLand
	SoundRespawn
	// Trigger sounds
	SoundCheckpoint
	SoundPickup
	SoundGoal
	// Combat sounds
	SoundSwing
	SoundMobKill
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// Tone describes a synthesised blip: a frequency sweep with an exponential
// decay envelope.
type Tone struct {
	StartHz  float64
	EndHz    float64
	Duration float64 // seconds
	Decay    float64 // envelope falloff per second
	Square   bool    // square wave instead of sine
	Volume   float64
}

// SoundConfig maps sound IDs to their tones
type SoundConfig struct {
	Tones map[SoundID]Tone
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.6,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundJump:         {StartHz: 320, EndHz: 620, Duration: 0.12, Decay: 14, Volume: 0.5},
			SoundLand:         {StartHz: 160, EndHz: 90, Duration: 0.08, Decay: 30, Volume: 0.5},
			SoundRespawn:      {StartHz: 700, EndHz: 180, Duration: 0.35, Decay: 6, Volume: 0.5},
			SoundCheckpoint:   {StartHz: 660, EndHz: 990, Duration: 0.3, Decay: 5, Volume: 0.6},
			SoundPickup:       {StartHz: 880, EndHz: 1320, Duration: 0.25, Decay: 7, Volume: 0.6},
			SoundGoal:         {StartHz: 520, EndHz: 1040, Duration: 0.6, Decay: 3, Volume: 0.7},
			SoundSwing:        {StartHz: 900, EndHz: 250, Duration: 0.1, Decay: 20, Square: true, Volume: 0.3},
			SoundMobKill:      {StartHz: 240, EndHz: 60, Duration: 0.3, Decay: 8, Square: true, Volume: 0.5},
			SoundMenuNavigate: {StartHz: 600, EndHz: 600, Duration: 0.05, Decay: 40, Volume: 0.4},
			SoundMenuSelect:   {StartHz: 700, EndHz: 1050, Duration: 0.1, Decay: 18, Volume: 0.5},
		},
	}
}
