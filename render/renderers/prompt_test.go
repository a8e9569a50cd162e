package renderers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/pixel-wall/core"
	"github.com/lixenwraith/pixel-wall/render"
)

type staticPrompt string

func (s staticPrompt) Text() string { return string(s) }

func TestPromptRenderer(t *testing.T) {
	layout := core.DefaultLayout()
	r := NewPromptRenderer(staticPrompt("set 1 1 red"), layout, "host", core.ColorYellow)

	rec := render.NewRecorder()
	r.Render(render.Context{}, rec)

	texts := rec.Filter(render.DrawText)
	require.Len(t, texts, 1)
	assert.Equal(t, "host> set 1 1 red_", texts[0].Text)
	assert.Equal(t, core.ColorYellow, texts[0].Color)
	assert.InDelta(t, layout.OffsetLeft, texts[0].Point.X, 1e-9)
	assert.InDelta(t, layout.Board().Bottom()+2*layout.CellSize(), texts[0].Point.Y, 1e-9)
}

func TestPromptRendererKeepsTail(t *testing.T) {
	layout := core.DefaultLayout()
	long := strings.Repeat("x", 100) + "end"
	r := NewPromptRenderer(staticPrompt(long), layout, "host", core.ColorWhite)

	rec := render.NewRecorder()
	r.Render(render.Context{}, rec)

	got := rec.Calls[0].Text
	assert.Len(t, got, layout.Columns*2)
	assert.True(t, strings.HasSuffix(got, "end_"))
}

func TestTailByWidth(t *testing.T) {
	assert.Equal(t, "cd", tailByWidth("abcd", 2))
	assert.Equal(t, "abcd", tailByWidth("abcd", 10))
	assert.Equal(t, "世", tailByWidth("a世", 2))
	assert.Equal(t, "a世", tailByWidth("a世", 3))
	assert.Equal(t, "", tailByWidth("世", 1))
}
