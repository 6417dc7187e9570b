package config

// SettingsConfig contains the ranges for user adjustable settings
type SettingsConfig struct {
	SensitivitySteps   []float64
	DefaultSensitivity int // index into SensitivitySteps
	VolumeSteps        []float64
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		SensitivitySteps:   []float64{0.0012, 0.0017, 0.0022, 0.003, 0.004},
		DefaultSensitivity: 2,
		VolumeSteps:        []float64{0, 0.25, 0.5, 0.75, 1.0},
	}
}
