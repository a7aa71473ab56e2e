// Package audio plays short chirps when the pointer starts and stops
// pulling particles. Audio is optional: every call is safe without a device.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	chirpLength    = 90 * time.Millisecond
	chirpAmplitude = 0.25
)

// Press rises, release falls
const (
	pressFrom   = 440.0
	pressTo     = 880.0
	releaseFrom = 660.0
	releaseTo   = 330.0
)

// SoundManager owns the speaker mixer
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      *effects.Volume
	initialized bool
	muted       bool
}

// NewSoundManager creates an uninitialized manager
func NewSoundManager() *SoundManager {
	mixer := &beep.Mixer{}
	return &SoundManager{
		mixer: mixer,
		volume: &effects.Volume{
			Streamer: mixer,
			Base:     2,
			Volume:   0,
		},
	}
}

// Initialize opens the speaker, safe to call twice
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(sm.volume)
	sm.initialized = true
	return nil
}

// Cleanup silences and detaches every queued sound
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	sm.initialized = false
}

// PlayPress queues the rising chirp
func (sm *SoundManager) PlayPress() bool {
	return sm.play(pressFrom, pressTo)
}

// PlayRelease queues the falling chirp
func (sm *SoundManager) PlayRelease() bool {
	return sm.play(releaseFrom, releaseTo)
}

func (sm *SoundManager) play(from, to float64) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(NewChirpGenerator(sampleRate, from, to, chirpLength, chirpAmplitude))
	speaker.Unlock()
	return true
}

// ToggleMute flips the mute state and returns the new value
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	if sm.initialized {
		speaker.Lock()
		sm.volume.Silent = sm.muted
		speaker.Unlock()
	} else {
		sm.volume.Silent = sm.muted
	}
	return sm.muted
}

// IsMuted reports the mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// IsRunning reports whether the speaker is open
func (sm *SoundManager) IsRunning() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}
