package input

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Prompt is the local single-line chat input
type Prompt struct {
	buf    []rune
	maxLen int
}

// NewPrompt creates an empty prompt accepting up to maxLen runes
func NewPrompt(maxLen int) *Prompt {
	return &Prompt{
		buf:    make([]rune, 0, maxLen),
		maxLen: maxLen,
	}
}

// Text returns the line typed so far
func (p *Prompt) Text() string {
	return string(p.buf)
}

// Reset clears the line
func (p *Prompt) Reset() {
	p.buf = p.buf[:0]
}

// Process translates a terminal event into an intent, editing the line as a side effect
func (p *Prompt) Process(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	case *tcell.EventKey:
		return p.processKey(ev)
	}
	return Intent{Type: IntentNone}
}

func (p *Prompt) processKey(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyCtrlQ:
		return Intent{Type: IntentQuit}

	case tcell.KeyCtrlS:
		return Intent{Type: IntentToggleMute}

	case tcell.KeyTab:
		return Intent{Type: IntentTogglePanel}

	case tcell.KeyEscape:
		p.Reset()
		return Intent{Type: IntentTextClear}

	case tcell.KeyEnter:
		line := strings.TrimSpace(string(p.buf))
		p.Reset()
		if line == "" {
			return Intent{Type: IntentNone}
		}
		return Intent{Type: IntentSubmit, Text: line}

	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(p.buf) == 0 {
			return Intent{Type: IntentNone}
		}
		p.buf = p.buf[:len(p.buf)-1]
		return Intent{Type: IntentTextEdit}

	case tcell.KeyRune:
		if len(p.buf) >= p.maxLen {
			return Intent{Type: IntentNone}
		}
		p.buf = append(p.buf, ev.Rune())
		return Intent{Type: IntentTextEdit}
	}

	return Intent{Type: IntentNone}
}
