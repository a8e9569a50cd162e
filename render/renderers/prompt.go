package renderers

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/pixel-wall/core"
	"github.com/lixenwraith/pixel-wall/render"
	"github.com/lixenwraith/pixel-wall/vmath"
)

const promptCursor = "_"

// PromptSource provides the line being typed
type PromptSource interface {
	Text() string
}

// PromptRenderer draws the local input line under the board
type PromptRenderer struct {
	source PromptSource
	layout core.Layout
	prefix string
	color  core.Color
	width  int // Terminal columns available for the line
}

// NewPromptRenderer creates a prompt showing "name> text_" in the local viewer color
func NewPromptRenderer(source PromptSource, layout core.Layout, name string, color core.Color) *PromptRenderer {
	return &PromptRenderer{
		source: source,
		layout: layout,
		prefix: name + "> ",
		color:  color,
		width:  layout.Columns * 2,
	}
}

// Render implements SystemRenderer
func (p *PromptRenderer) Render(ctx render.Context, canvas render.Canvas) {
	board := p.layout.Board()
	pos := vmath.Vec2{X: board.Left(), Y: board.Bottom() + 2*p.layout.CellSize()}

	line := p.prefix + p.source.Text() + promptCursor
	// Keep the tail visible while typing past the width
	if over := runewidth.StringWidth(line) - p.width; over > 0 {
		line = tailByWidth(line, p.width)
	}
	canvas.Text(pos, p.color, line)
}

// tailByWidth returns the longest suffix of s that fits in width columns
func tailByWidth(s string, width int) string {
	runes := []rune(s)
	w := 0
	i := len(runes)
	for i > 0 {
		rw := runewidth.RuneWidth(runes[i-1])
		if w+rw > width {
			break
		}
		w += rw
		i--
	}
	return string(runes[i:])
}
