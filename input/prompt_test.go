package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func typeString(p *Prompt, s string) {
	for _, r := range s {
		p.Process(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func TestPromptSubmit(t *testing.T) {
	p := NewPrompt(200)
	typeString(p, "  set 1 1 red ")
	assert.Equal(t, "  set 1 1 red ", p.Text())

	intent := p.Process(key(tcell.KeyEnter))
	assert.Equal(t, Intent{Type: IntentSubmit, Text: "set 1 1 red"}, intent)
	assert.Empty(t, p.Text())
}

func TestPromptEmptySubmitIgnored(t *testing.T) {
	p := NewPrompt(200)
	typeString(p, "   ")
	assert.Equal(t, IntentNone, p.Process(key(tcell.KeyEnter)).Type)
	assert.Empty(t, p.Text())
}

func TestPromptEditing(t *testing.T) {
	p := NewPrompt(200)
	typeString(p, "héllo")

	assert.Equal(t, IntentTextEdit, p.Process(key(tcell.KeyBackspace2)).Type)
	assert.Equal(t, "héll", p.Text())

	assert.Equal(t, IntentTextClear, p.Process(key(tcell.KeyEscape)).Type)
	assert.Empty(t, p.Text())

	assert.Equal(t, IntentNone, p.Process(key(tcell.KeyBackspace)).Type, "nothing to delete")
}

func TestPromptMaxLength(t *testing.T) {
	p := NewPrompt(3)
	typeString(p, "abcdef")
	assert.Equal(t, "abc", p.Text())
}

func TestPromptSystemKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   tcell.Event
		want IntentType
	}{
		{"ctrl-c quits", key(tcell.KeyCtrlC), IntentQuit},
		{"ctrl-q quits", key(tcell.KeyCtrlQ), IntentQuit},
		{"ctrl-s mutes", key(tcell.KeyCtrlS), IntentToggleMute},
		{"tab toggles panel", key(tcell.KeyTab), IntentTogglePanel},
		{"resize", tcell.NewEventResize(80, 24), IntentResize},
		{"unbound key", key(tcell.KeyF5), IntentNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPrompt(10)
			typeString(p, "ab")
			assert.Equal(t, tt.want, p.Process(tt.ev).Type)
			assert.Equal(t, "ab", p.Text(), "system keys keep the line")
		})
	}
}
