package systems

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/automoto/parkour/components"
	cfg "github.com/automoto/parkour/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalSFXVolume    = cfg.Audio.DefaultSFXVol
	globalSamples      map[cfg.SoundID][]byte
	audioInitOnce      sync.Once
)

// initGlobalAudio creates the audio context and renders every tone once.
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalSamples = make(map[cfg.SoundID][]byte, len(cfg.Sound.Tones))
		for id, tone := range cfg.Sound.Tones {
			globalSamples[id] = synthesize(tone, cfg.Audio.SampleRate)
		}
	})
}

// synthesize renders a tone as 16 bit little endian stereo PCM, the format
// the audio context plays.
func synthesize(tone cfg.Tone, sampleRate int) []byte {
	n := int(tone.Duration * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	buf := make([]byte, n*4)

	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		progress := float64(i) / float64(n)
		freq := tone.StartHz + (tone.EndHz-tone.StartHz)*progress
		phase += 2 * math.Pi * freq / float64(sampleRate)

		v := math.Sin(phase)
		if tone.Square {
			if v >= 0 {
				v = 1
			} else {
				v = -1
			}
		}
		v *= tone.Volume * math.Exp(-tone.Decay*t)

		s := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], s)
		binary.LittleEndian.PutUint16(buf[i*4+2:], s)
	}
	return buf
}

// UpdateAudio plays the sounds queued this frame
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if audioData.Context == nil {
		audioData.Context = globalAudioContext
		audioData.Samples = globalSamples
	}
	for _, soundID := range audioData.PendingSFX {
		playSFX(audioData, soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(audioData *components.AudioData, soundID cfg.SoundID) {
	if globalSFXVolume <= 0 || audioData.Context == nil {
		return
	}

	// Restart a sound that is still playing instead of stacking players
	player, ok := audioData.Players[soundID]
	if !ok {
		samples, ok := audioData.Samples[soundID]
		if !ok || len(samples) == 0 {
			return
		}
		player = audioData.Context.NewPlayerFromBytes(samples)
		audioData.Players[soundID] = player
	}

	player.SetVolume(globalSFXVolume)
	if err := player.Rewind(); err != nil {
		return
	}
	player.Play()
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// SetSFXVolume changes the SFX volume (0.0 - 1.0)
func SetSFXVolume(e *ecs.ECS, volume float64) {
	globalSFXVolume = volume
	if entry, ok := components.Audio.First(e.World); ok {
		components.Audio.Get(entry).SFXVolume = volume
	}
}

// GetSFXVolume returns the current SFX volume (0.0 - 1.0)
func GetSFXVolume() float64 {
	return globalSFXVolume
}

// GetOrCreateAudio returns the singleton Audio component for this ECS,
// creating it if needed. The context is attached on the first UpdateAudio.
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			SFXVolume:  globalSFXVolume,
			Players:    make(map[cfg.SoundID]*audio.Player),
			PendingSFX: make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
