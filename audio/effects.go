package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/pixel-wall/constants"
	"github.com/lixenwraith/pixel-wall/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a mono oscillator of fixed duration
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates a linear attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear volume; math.Log2(0) is -Inf, so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// note is one shaped tone of a cue
type note struct {
	freq    float64
	wave    WaveType
	dur     time.Duration
	attack  time.Duration
	release time.Duration
}

func (n note) streamer(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(n.freq, n.dur, n.wave, rate)
	return NewEnvelope(osc, n.dur, n.attack, n.release, rate)
}

// cueNotes are the synthesized voices of each cue, played in sequence
var cueNotes = [core.SoundCueCount][]note{
	core.CueRed: {
		{1046.50, WaveSine, constants.BlipSoundDuration, constants.BlipSoundAttack, constants.BlipSoundRelease},
	},
	core.CueWhite: {
		{783.99, WaveSine, constants.PopupNoteDuration, constants.PopupNoteAttack, constants.PopupNoteRelease},
		{1174.66, WaveSine, constants.PopupNoteDuration, constants.PopupNoteAttack, constants.PopupNoteRelease},
	},
	core.CueBlack: {
		{1174.66, WaveSine, constants.PopupNoteDuration, constants.PopupNoteAttack, constants.PopupNoteRelease},
		{783.99, WaveSine, constants.PopupNoteDuration, constants.PopupNoteAttack, constants.PopupNoteRelease},
	},
	core.CueYellow: {
		{150.0, WaveSaw, constants.DenySoundDuration, constants.DenySoundAttack, constants.DenySoundRelease},
	},
	core.CueBlue: {
		{659.25, WaveSquare, constants.ForwardNoteDuration, constants.ForwardNoteAttack, constants.ForwardNoteRelease},
		{880.00, WaveSquare, constants.ForwardNoteDuration, constants.ForwardNoteAttack, constants.ForwardNoteRelease},
	},
	core.CuePress: {
		{0, WaveNoise, constants.PressSoundDuration, constants.PressSoundAttack, constants.PressSoundRelease},
	},
}

// CueDuration returns the total length of a cue, zero for unknown cues
func CueDuration(cue core.SoundCue) time.Duration {
	if cue < 0 || cue >= core.SoundCueCount {
		return 0
	}
	var d time.Duration
	for _, n := range cueNotes[cue] {
		d += n.dur
	}
	return d
}

// GetCueStreamer returns a fresh streamer for the cue, nil for unknown cues
func GetCueStreamer(cue core.SoundCue, cfg *AudioConfig) beep.Streamer {
	if cue < 0 || cue >= core.SoundCueCount {
		return nil
	}
	rate := beep.SampleRate(cfg.SampleRate)

	notes := cueNotes[cue]
	parts := make([]beep.Streamer, len(notes))
	for i, n := range notes {
		parts[i] = n.streamer(rate)
	}

	return newVolume(beep.Seq(parts...), cfg.cueVolume(cue))
}
