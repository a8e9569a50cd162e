package renderers

import (
	"strconv"

	"github.com/lixenwraith/pixel-wall/constants"
	"github.com/lixenwraith/pixel-wall/core"
	"github.com/lixenwraith/pixel-wall/engine"
	"github.com/lixenwraith/pixel-wall/render"
	"github.com/lixenwraith/pixel-wall/vmath"
)

// AxisLabelRenderer draws 1..N on all four edges of the board
type AxisLabelRenderer struct {
	wall   *engine.Wall
	labels []string // Cached, labels never change
	color  core.Color
}

// NewAxisLabelRenderer creates an axis label renderer
func NewAxisLabelRenderer(wall *engine.Wall) *AxisLabelRenderer {
	n := wall.Board().Size()
	labels := make([]string, n)
	for i := range labels {
		labels[i] = strconv.Itoa(i + 1)
	}
	return &AxisLabelRenderer{
		wall:   wall,
		labels: labels,
		color:  core.ColorWhite.WithAlpha(constants.AxisLabelAlpha),
	}
}

// Render implements SystemRenderer
func (a *AxisLabelRenderer) Render(ctx render.Context, canvas render.Canvas) {
	layout := a.wall.Layout()
	board := layout.Board()
	cs := layout.CellSize()

	for i, label := range a.labels {
		offset := float64(i) * cs

		rowY := board.Top() + offset + constants.AxisLabelInset
		canvas.Text(vmath.Vec2{X: layout.OffsetLeft - constants.AxisLabelLeftGap, Y: rowY}, a.color, label)
		canvas.Text(vmath.Vec2{X: board.Right() + constants.AxisLabelGap, Y: rowY}, a.color, label)

		colX := board.Left() + offset + constants.AxisLabelColInset
		canvas.Text(vmath.Vec2{X: colX, Y: constants.AxisLabelTopY}, a.color, label)
		canvas.Text(vmath.Vec2{X: colX, Y: board.Bottom() + constants.AxisLabelGap}, a.color, label)
	}
}
