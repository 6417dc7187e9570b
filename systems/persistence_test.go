package systems

import (
	"encoding/json"
	"testing"

	cfg "github.com/automoto/parkour/config"
)

// mapStore keeps items in memory.
type mapStore map[string][]byte

func (m mapStore) LoadItem(key string) ([]byte, error) { return m[key], nil }

func (m mapStore) SaveItem(key string, data []byte) error {
	m[key] = data
	return nil
}

func useMemoryStore(t *testing.T) mapStore {
	t.Helper()
	prev := store
	m := mapStore{}
	store = m
	t.Cleanup(func() { store = prev })
	return m
}

func TestLoadProgress_Defaults(t *testing.T) {
	useMemoryStore(t)

	p := LoadProgress()
	if p.Unlocked != 1 || p.Level != 1 || p.HasCheckpoint || len(p.BestTimes) != 0 {
		t.Fatalf("fresh progress = %+v", p)
	}
	if p.HasProgress() {
		t.Fatal("fresh progress should have nothing to continue")
	}
}

func TestLoadProgress_WithoutStore(t *testing.T) {
	prev := store
	store = nil
	t.Cleanup(func() { store = prev })

	SaveCheckpoint(2, 4)
	if p := LoadProgress(); p.HasCheckpoint || p.Level != 1 {
		t.Fatalf("progress without a store = %+v", p)
	}
}

func TestLoadProgress_CorruptItem(t *testing.T) {
	m := useMemoryStore(t)
	m[progressKey] = []byte("{not json")

	if p := LoadProgress(); p.Unlocked != 1 || p.BestTimes == nil {
		t.Fatalf("corrupt progress = %+v, want defaults", p)
	}
}

func TestSaveCheckpointAndLevelStart(t *testing.T) {
	m := useMemoryStore(t)

	SaveCheckpoint(2, 0)
	p := LoadProgress()
	if !p.HasCheckpoint || p.Checkpoint != 0 || p.Level != 2 || !p.HasProgress() {
		t.Fatalf("after SaveCheckpoint: %+v", p)
	}

	var raw map[string]any
	if err := json.Unmarshal(m[progressKey], &raw); err != nil {
		t.Fatalf("stored progress is not JSON: %v", err)
	}

	SaveLevelStart(3)
	p = LoadProgress()
	if p.HasCheckpoint || p.Level != 3 {
		t.Fatalf("after SaveLevelStart: %+v", p)
	}
}

func TestRecordLevelTime(t *testing.T) {
	useMemoryStore(t)

	best, newBest := RecordLevelTime(1, 42)
	if !newBest || best != 0 {
		t.Fatalf("first time: best=%v newBest=%v", best, newBest)
	}
	best, newBest = RecordLevelTime(1, 50)
	if newBest || best != 42 {
		t.Fatalf("slower time: best=%v newBest=%v", best, newBest)
	}
	best, newBest = RecordLevelTime(1, 30.5)
	if !newBest || best != 42 {
		t.Fatalf("faster time: best=%v newBest=%v", best, newBest)
	}
	if got := LoadProgress().BestTimes[1]; got != 30.5 {
		t.Fatalf("stored best = %v, want 30.5", got)
	}
}

func TestUnlockLevel(t *testing.T) {
	useMemoryStore(t)

	UnlockLevel(2)
	UnlockLevel(1)
	if got := LoadProgress().Unlocked; got != 2 {
		t.Fatalf("Unlocked = %d, want 2", got)
	}
	UnlockLevel(cfg.LastLevel() + 1)
	if got := LoadProgress().Unlocked; got != 2 {
		t.Fatalf("Unlocked = %d after unlocking past the catalogue", got)
	}
}

func TestLoadSettings(t *testing.T) {
	useMemoryStore(t)

	s := LoadSettings()
	if s.SensitivityIndex != cfg.Settings.DefaultSensitivity {
		t.Fatalf("default sensitivity index = %d", s.SensitivityIndex)
	}
	if got := cfg.Settings.VolumeSteps[s.VolumeIndex]; got != 0.5 {
		t.Fatalf("default volume step = %v, want the one closest to %v", got, cfg.Audio.DefaultSFXVol)
	}

	s.SensitivityIndex = 4
	s.Fullscreen = true
	if err := SaveSettings(s); err != nil {
		t.Fatal(err)
	}
	if got := LoadSettings(); *got != *s {
		t.Fatalf("round trip = %+v, want %+v", got, s)
	}
}

func TestStepIndex(t *testing.T) {
	tests := []struct{ i, delta, n, want int }{
		{2, 1, 5, 3},
		{4, 1, 5, 4},
		{0, -1, 5, 0},
	}
	for _, tt := range tests {
		if got := stepIndex(tt.i, tt.delta, tt.n); got != tt.want {
			t.Errorf("stepIndex(%d, %d, %d) = %d, want %d", tt.i, tt.delta, tt.n, got, tt.want)
		}
	}
}
