package constants

import "time"

// Audio
const (
	// DefaultSampleRate is used when no sample rate is configured
	DefaultSampleRate = 44100

	// SpeakerBufferDuration is the speaker buffer length
	SpeakerBufferDuration = 100 * time.Millisecond
)

// Hover blip (red)
const (
	BlipSoundDuration = 60 * time.Millisecond
	BlipSoundAttack   = 3 * time.Millisecond
	BlipSoundRelease  = 40 * time.Millisecond
)

// Popup chimes (white opens, black closes)
const (
	PopupNoteDuration = 90 * time.Millisecond
	PopupNoteAttack   = 5 * time.Millisecond
	PopupNoteRelease  = 60 * time.Millisecond
)

// Deny buzz (yellow)
const (
	DenySoundDuration = 120 * time.Millisecond
	DenySoundAttack   = 5 * time.Millisecond
	DenySoundRelease  = 30 * time.Millisecond
)

// Forward sweep (blue)
const (
	ForwardNoteDuration = 70 * time.Millisecond
	ForwardNoteAttack   = 4 * time.Millisecond
	ForwardNoteRelease  = 50 * time.Millisecond
)

// Press click (any other color)
const (
	PressSoundDuration = 35 * time.Millisecond
	PressSoundAttack   = 1 * time.Millisecond
	PressSoundRelease  = 25 * time.Millisecond
)
