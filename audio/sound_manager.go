package audio

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/vi-countdown/parameter"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)
)

// SoundManager owns the speaker and plays the time-up chime
// Every method is safe without a working audio device
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	chime       floatBuffer
	initialized bool
	muted       atomic.Bool
	plays       atomic.Int64
}

// NewSoundManager creates a sound manager with the chime pre-rendered
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
		chime: generateChimeSound(),
	}
}

// Initialize sets up the audio system, a second call is a no-op
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// SetMuted toggles playback without releasing the device
func (sm *SoundManager) SetMuted(muted bool) {
	sm.muted.Store(muted)
}

// Muted reports the mute state
func (sm *SoundManager) Muted() bool {
	return sm.muted.Load()
}

// Plays returns how many chimes were queued to the speaker
func (sm *SoundManager) Plays() int64 {
	return sm.plays.Load()
}

// PlayChime queues the chime, overlapping any chime still playing
func (sm *SoundManager) PlayChime() {
	if sm.muted.Load() {
		return
	}

	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Add(newBufferStreamer(sm.chime))
	speaker.Unlock()
	sm.plays.Add(1)
}

// Cleanup stops all sounds and releases the mixer
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	// Note: speaker stays open for the process lifetime; clearing the mixer silences it
	sm.initialized = false
}
