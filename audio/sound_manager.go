package audio

import (
	"fmt"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/pixel-wall/constants"
	"github.com/lixenwraith/pixel-wall/core"
)

// SoundManager plays wall cues through a single speaker mixer
type SoundManager struct {
	mu          sync.Mutex
	config      *AudioConfig
	mixer       *beep.Mixer
	initialized bool
	speaker     bool // Mixer is being drained by the speaker goroutine
	muted       bool
}

// NewSoundManager creates a sound manager; nil config uses defaults
func NewSoundManager(cfg *AudioConfig) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		config: cfg,
		mixer:  &beep.Mixer{},
	}
}

// Initialize sets up the speaker. Returns ErrAudioDisabled when turned off by configuration
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.config.Enabled {
		return ErrAudioDisabled
	}
	if sm.initialized {
		return nil
	}

	rate := beep.SampleRate(sm.config.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.SpeakerBufferDuration)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.speaker = true
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds and releases the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	if sm.speaker {
		speaker.Clear()
		speaker.Close()
		sm.speaker = false
	}
	sm.mixer.Clear()
	sm.initialized = false
}

// Play starts a cue; no-op when uninitialized or muted
func (sm *SoundManager) Play(cue core.SoundCue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}

	s := GetCueStreamer(cue, sm.config)
	if s == nil {
		return
	}

	if sm.speaker {
		speaker.Lock()
		defer speaker.Unlock()
	}
	sm.mixer.Add(s)
}

// ToggleMute flips mute and returns the new state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = !sm.muted
	return sm.muted
}

// SetMuted sets mute explicitly
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.muted = muted
}

// IsMuted reports the mute state
func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	return sm.muted
}

// Active returns the number of cues still playing
func (sm *SoundManager) Active() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.speaker {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return sm.mixer.Len()
}
