package renderers

import (
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/pixel-wall/chat"
	"github.com/lixenwraith/pixel-wall/constants"
	"github.com/lixenwraith/pixel-wall/core"
	"github.com/lixenwraith/pixel-wall/render"
	"github.com/lixenwraith/pixel-wall/vmath"
)

const (
	chatNameSeparator = ": "
	chatEllipsis      = "…"
)

// ChatSource provides the newest chat entries
type ChatSource interface {
	Recent(n int) []chat.Entry
}

// ChatLogRenderer draws the newest forwarded chat messages beside the board
type ChatLogRenderer struct {
	source  ChatSource
	layout  core.Layout
	lines   int
	width   int // Terminal columns
	visible bool
}

// NewChatLogRenderer creates a visible chat panel showing one line per board row
func NewChatLogRenderer(source ChatSource, layout core.Layout) *ChatLogRenderer {
	return &ChatLogRenderer{
		source:  source,
		layout:  layout,
		lines:   layout.Columns,
		width:   constants.ChatPanelWidth,
		visible: true,
	}
}

// IsVisible implements VisibilityToggle
func (c *ChatLogRenderer) IsVisible() bool {
	return c.visible
}

// Toggle flips panel visibility
func (c *ChatLogRenderer) Toggle() {
	c.visible = !c.visible
}

// Render implements SystemRenderer
func (c *ChatLogRenderer) Render(ctx render.Context, canvas render.Canvas) {
	cs := c.layout.CellSize()
	// One board cell spans two terminal columns
	colUnits := cs / 2
	board := c.layout.Board()
	x := board.Right() + 2*cs

	for i, e := range c.source.Recent(c.lines) {
		y := board.Top() + float64(i)*cs

		name := runewidth.Truncate(e.Name, c.width/2, chatEllipsis)
		nameColor := core.ParseColorOr(e.Color, core.ColorWhite)
		canvas.Text(vmath.Vec2{X: x, Y: y}, nameColor, name)

		used := runewidth.StringWidth(name)
		remaining := c.width - used - len(chatNameSeparator)
		if remaining <= 0 {
			continue
		}
		msg := chatNameSeparator + runewidth.Truncate(e.Message, remaining, chatEllipsis)
		canvas.Text(vmath.Vec2{X: x + float64(used)*colUnits, Y: y}, core.ColorWhite, msg)
	}
}
