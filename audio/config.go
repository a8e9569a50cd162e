package audio

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/lixenwraith/pixel-wall/core"
)

// Environment variables read by LoadAudioConfig
const (
	EnvAudioEnabled = "PIXEL_WALL_AUDIO_ENABLED"
	EnvMasterVolume = "PIXEL_WALL_MASTER_VOLUME"
	EnvCueVolumes   = "PIXEL_WALL_CUE_VOLUMES"
	EnvSampleRate   = "PIXEL_WALL_SAMPLE_RATE"
)

// LoadAudioConfig loads audio configuration from environment variables
// Unparsable values are ignored and the default is kept
func LoadAudioConfig() *AudioConfig {
	cfg := DefaultAudioConfig()

	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Enabled = val
		}
	}

	// Master volume is 0-100, stored as 0.0-1.0
	if volume := os.Getenv(EnvMasterVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = clampVolume(float64(val) / 100.0)
		}
	}

	// Cue volumes are a JSON object keyed by cue id, e.g. {"ui.button.press": 0.3}
	if cueVols := os.Getenv(EnvCueVolumes); cueVols != "" {
		var volumes map[string]float64
		if err := json.Unmarshal([]byte(cueVols), &volumes); err == nil {
			for cue := core.SoundCue(0); cue < core.SoundCueCount; cue++ {
				if v, ok := volumes[cue.String()]; ok {
					cfg.CueVolumes[cue] = clampVolume(v)
				}
			}
		}
	}

	if sampleRate := os.Getenv(EnvSampleRate); sampleRate != "" {
		if val, err := strconv.Atoi(sampleRate); err == nil && val > 0 {
			cfg.SampleRate = val
		}
	}

	return cfg
}

func clampVolume(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
