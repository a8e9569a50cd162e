package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit        // Ctrl+Q, Ctrl+C
	IntentToggleMute  // Ctrl+S
	IntentTogglePanel // Tab
	IntentResize      // Terminal resize event

	// Text entry
	IntentTextEdit  // Printable character or Backspace changed the line
	IntentTextClear // ESC dropped the line
	IntentSubmit    // Enter with a non-empty line
)

// Intent is the result of one input event
type Intent struct {
	Type IntentType
	Text string // Submitted line for IntentSubmit
}
