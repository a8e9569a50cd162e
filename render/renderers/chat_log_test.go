package renderers

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pixel-wall/chat"
	"github.com/lixenwraith/pixel-wall/constants"
	"github.com/lixenwraith/pixel-wall/core"
	"github.com/lixenwraith/pixel-wall/render"
)

func TestChatLogRendererEntries(t *testing.T) {
	log := chat.NewLog(constants.ChatLogCapacity, nil)
	log.AddEntry("Eve", "hello world", "#00ff00")
	log.AddEntry("Bob", "hi", "not a color")

	layout := core.DefaultLayout()
	r := NewChatLogRenderer(log, layout)
	rec := render.NewRecorder()
	r.Render(render.Context{}, rec)

	texts := rec.Filter(render.DrawText)
	require.Len(t, texts, 4)

	cs := layout.CellSize()
	x := layout.Board().Right() + 2*cs

	assert.Equal(t, "Eve", texts[0].Text)
	assert.Equal(t, core.Color{R: 0, G: 255, B: 0, A: 1}, texts[0].Color)
	assert.InDelta(t, x, texts[0].Point.X, 1e-9)
	assert.InDelta(t, layout.OffsetTop, texts[0].Point.Y, 1e-9)

	assert.Equal(t, ": hello world", texts[1].Text)
	assert.Equal(t, core.ColorWhite, texts[1].Color)
	assert.InDelta(t, x+3*cs/2, texts[1].Point.X, 1e-9)

	assert.Equal(t, "Bob", texts[2].Text)
	assert.Equal(t, core.ColorWhite, texts[2].Color, "unparsable sender color falls back to white")
	assert.InDelta(t, layout.OffsetTop+cs, texts[2].Point.Y, 1e-9)
}

func TestChatLogRendererTruncatesAndLimitsLines(t *testing.T) {
	log := chat.NewLog(constants.ChatLogCapacity, nil)
	for i := 0; i < 40; i++ {
		log.AddEntry("viewer", strings.Repeat("a", 80), "")
	}

	r := NewChatLogRenderer(log, core.DefaultLayout())
	rec := render.NewRecorder()
	r.Render(render.Context{}, rec)

	texts := rec.Filter(render.DrawText)
	require.Len(t, texts, 2*32, "one line per board row")

	line := texts[0].Text + texts[1].Text
	assert.LessOrEqual(t, runewidth.StringWidth(line), constants.ChatPanelWidth)
	assert.True(t, strings.HasSuffix(texts[1].Text, chatEllipsis))
}

func TestChatLogRendererToggle(t *testing.T) {
	r := NewChatLogRenderer(chat.NewLog(1, nil), core.DefaultLayout())
	assert.True(t, r.IsVisible())
	r.Toggle()
	assert.False(t, r.IsVisible())
}
