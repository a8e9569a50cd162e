package audio

import (
	"errors"

	"github.com/lixenwraith/pixel-wall/constants"
	"github.com/lixenwraith/pixel-wall/core"
)

// AudioConfig holds sound output settings
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0
	CueVolumes   map[core.SoundCue]float64
	SampleRate   int
}

// DefaultAudioConfig returns the configuration used when no environment overrides are set
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.5,
		CueVolumes: map[core.SoundCue]float64{
			core.CueRed:    0.6,
			core.CueWhite:  0.8,
			core.CueBlack:  0.8,
			core.CueYellow: 0.7,
			core.CueBlue:   0.8,
			core.CuePress:  0.5,
		},
		SampleRate: constants.DefaultSampleRate,
	}
}

// cueVolume returns the effective volume of a cue, master volume applied
func (c *AudioConfig) cueVolume(cue core.SoundCue) float64 {
	v, ok := c.CueVolumes[cue]
	if !ok {
		v = 1.0
	}
	return v * c.MasterVolume
}

// Sentinel errors
var (
	ErrAudioDisabled = errors.New("audio disabled by configuration")
)
