package renderers

import (
	"github.com/lixenwraith/pixel-wall/constants"
	"github.com/lixenwraith/pixel-wall/core"
	"github.com/lixenwraith/pixel-wall/engine"
	"github.com/lixenwraith/pixel-wall/render"
)

// GridRenderer draws every board cell, viewer colors over the cycling rainbow
type GridRenderer struct {
	wall *engine.Wall
}

// NewGridRenderer creates a grid renderer reading the wall's board
func NewGridRenderer(wall *engine.Wall) *GridRenderer {
	return &GridRenderer{wall: wall}
}

// Render implements SystemRenderer
func (g *GridRenderer) Render(ctx render.Context, canvas render.Canvas) {
	layout := g.wall.Layout()
	board := g.wall.Board()
	n := board.Size()

	for x := 1; x <= n; x++ {
		for y := 1; y <= n; y++ {
			cell := core.Cell{Col: x, Row: y}
			canvas.Box(layout.CellRect(cell), board.ColorAt(cell, ctx.Elapsed), constants.CellRadius)
		}
	}
}
