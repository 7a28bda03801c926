package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/troff/constants"
	"github.com/lixenwraith/troff/vmath"
)

const sampleRate = beep.SampleRate(constants.AudioSampleRate)

// SoundManager synthesizes and plays the game's sound effects
// All operations are safe before Initialize and after Cleanup; they simply do nothing
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rng         *vmath.FastRand
	initialized bool
	muted       bool
	played      [soundTypeCount]int
}

// NewSoundManager creates a new sound manager
func NewSoundManager(seed uint64) *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		rng:   vmath.NewFastRand(seed),
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.SpeakerBuffer)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences all playing effects and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// Play starts an effect, returns false when nothing was queued
func (sm *SoundManager) Play(st SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return false
	}

	// Each effect gets its own generator state; streamers run on the speaker goroutine
	s := Effect(st, sampleRate, vmath.NewFastRand(sm.rng.Next()))
	if s == nil {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()

	sm.played[st]++
	return true
}

// SetMuted enables or disables playback
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	sm.muted = muted
	sm.mu.Unlock()
}

// ToggleMute flips the mute state, returns true if sound is now on
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	return !sm.muted
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// PlayedCount returns how many times st was queued
func (sm *SoundManager) PlayedCount(st SoundType) int {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if st < 0 || st >= soundTypeCount {
		return 0
	}
	return sm.played[st]
}
