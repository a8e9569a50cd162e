package core

// SoundCue identifies the notification played when a cell is set
type SoundCue int

const (
	CueRed    SoundCue = iota // Cell set to red
	CueWhite                  // Cell set to white
	CueBlack                  // Cell set to black
	CueYellow                 // Cell set to yellow
	CueBlue                   // Cell set to blue
	CuePress                  // Any other color
	SoundCueCount
)

var cueIDs = [SoundCueCount]string{
	CueRed:    "ui.button.over",
	CueWhite:  "ui.popup.message.open",
	CueBlack:  "ui.popup.message.close",
	CueYellow: "ui.navigate.deny",
	CueBlue:   "ui.navigate.forward",
	CuePress:  "ui.button.press",
}

// String returns the cue id
func (c SoundCue) String() string {
	if c < 0 || c >= SoundCueCount {
		return "unknown"
	}
	return cueIDs[c]
}

// cueByColor matches exact colors only, alpha included
var cueByColor = map[Color]SoundCue{
	ColorRed:    CueRed,
	ColorWhite:  CueWhite,
	ColorBlack:  CueBlack,
	ColorYellow: CueYellow,
	ColorBlue:   CueBlue,
}

// CueForColor returns the cue bucket for a cell color, CuePress when no bucket matches
func CueForColor(c Color) SoundCue {
	if cue, ok := cueByColor[c]; ok {
		return cue
	}
	return CuePress
}
