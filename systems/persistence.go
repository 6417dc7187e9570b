package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/parkour/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

const (
	progressKey = "progress"
	settingsKey = "settings"
)

// itemStore is the part of the gdata manager persistence needs.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store itemStore

// activeSettings is the last applied settings.
var activeSettings = defaultSettings()

// SavedProgress is the run progress stored on disk
type SavedProgress struct {
	Unlocked      int             `json:"unlocked"` // highest selectable level
	Level         int             `json:"level"`    // level the last run was on
	Checkpoint    int             `json:"checkpoint"`
	HasCheckpoint bool            `json:"hasCheckpoint"`
	BestTimes     map[int]float64 `json:"bestTimes"`
}

// HasProgress reports whether there is anything to continue.
func (p *SavedProgress) HasProgress() bool {
	return p.Unlocked > 1 || p.Level > 1 || p.HasCheckpoint
}

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SensitivityIndex int  `json:"sensitivityIndex"`
	VolumeIndex      int  `json:"volumeIndex"`
	Fullscreen       bool `json:"fullscreen"`
}

// InitPersistence initializes the gdata manager for progress and settings
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "parkour",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	store = m
	return nil
}

func defaultProgress() *SavedProgress {
	return &SavedProgress{
		Unlocked:  1,
		Level:     1,
		BestTimes: map[int]float64{},
	}
}

// LoadProgress returns the stored progress, or a fresh one when nothing is
// stored or persistence is unavailable.
func LoadProgress() *SavedProgress {
	p := defaultProgress()
	if !loadJSON(progressKey, p) {
		return defaultProgress()
	}
	if p.BestTimes == nil {
		p.BestTimes = map[int]float64{}
	}
	if p.Unlocked < 1 {
		p.Unlocked = 1
	}
	if p.Level < 1 {
		p.Level = 1
	}
	return p
}

// SaveProgress writes p to disk
func SaveProgress(p *SavedProgress) error {
	return saveJSON(progressKey, p)
}

// SaveLevelStart records that a run entered level. Any stored checkpoint
// belongs to another level and is dropped.
func SaveLevelStart(level int) {
	p := LoadProgress()
	p.Level = level
	p.HasCheckpoint = false
	p.Checkpoint = 0
	_ = SaveProgress(p)
}

// SaveCheckpoint stores the checkpoint reached on level for Continue.
func SaveCheckpoint(level, id int) {
	p := LoadProgress()
	p.Level = level
	p.Checkpoint = id
	p.HasCheckpoint = true
	_ = SaveProgress(p)
}

// RecordLevelTime keeps the best time for level. It returns the best time
// stored before this run and whether levelTime beat it.
func RecordLevelTime(level int, levelTime float64) (float64, bool) {
	p := LoadProgress()
	best, ok := p.BestTimes[level]
	if ok && best <= levelTime {
		return best, false
	}
	p.BestTimes[level] = levelTime
	_ = SaveProgress(p)
	return best, true
}

// UnlockLevel makes level selectable. Levels past the catalogue are ignored.
func UnlockLevel(level int) {
	if level > cfg.LastLevel() {
		return
	}
	p := LoadProgress()
	if level <= p.Unlocked {
		return
	}
	p.Unlocked = level
	_ = SaveProgress(p)
}

func defaultSettings() SavedSettings {
	return SavedSettings{
		SensitivityIndex: cfg.Settings.DefaultSensitivity,
		VolumeIndex:      volumeIndex(cfg.Audio.DefaultSFXVol),
	}
}

// LoadSettings loads settings from disk, falling back to the defaults.
func LoadSettings() *SavedSettings {
	s := defaultSettings()
	loadJSON(settingsKey, &s)
	return &s
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	return saveJSON(settingsKey, s)
}

// ApplySettings pushes saved settings into the camera, audio and window.
// Out of range indices leave the current value alone.
func ApplySettings(s *SavedSettings) {
	if s == nil {
		return
	}
	activeSettings = *s
	if i := s.SensitivityIndex; i >= 0 && i < len(cfg.Settings.SensitivitySteps) {
		cfg.Camera.Sensitivity = cfg.Settings.SensitivitySteps[i]
	}
	if i := s.VolumeIndex; i >= 0 && i < len(cfg.Settings.VolumeSteps) {
		globalSFXVolume = cfg.Settings.VolumeSteps[i]
	}
	ebiten.SetFullscreen(s.Fullscreen)
}

// volumeIndex returns the step closest to v.
func volumeIndex(v float64) int {
	best := 0
	for i, step := range cfg.Settings.VolumeSteps {
		if abs(step-v) < abs(cfg.Settings.VolumeSteps[best]-v) {
			best = i
		}
	}
	return best
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// loadJSON decodes the item at key into v. It reports false when there is
// no usable item.
func loadJSON(key string, v any) bool {
	if store == nil {
		return false
	}

	data, err := store.LoadItem(key)
	if err != nil {
		log.Printf("Warning: Could not load %s: %v", key, err)
		return false
	}
	if len(data) == 0 {
		return false
	}

	if err := json.Unmarshal(data, v); err != nil {
		log.Printf("Warning: Could not parse saved %s: %v", key, err)
		return false
	}
	return true
}

func saveJSON(key string, v any) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("Warning: Could not serialize %s: %v", key, err)
		return err
	}

	if err := store.SaveItem(key, data); err != nil {
		log.Printf("Warning: Could not save %s: %v", key, err)
		return err
	}
	return nil
}
