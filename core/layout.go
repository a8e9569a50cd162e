package core

import "github.com/lixenwraith/pixel-wall/vmath"

// Label anchor offsets in cell sizes, relative to the cell's top-left corner
const (
	labelOriginX   = 0.9
	labelPositionX = 2.5
	labelAnchorY   = 0.5
)

// Layout is the board geometry in layout units
// Canvas implementations project layout units onto their own surface
type Layout struct {
	OffsetLeft      float64
	OffsetTop       float64
	BoardSize       float64
	Columns         int
	HighlightBorder float64
	CellSpacing     float64
}

// DefaultLayout returns the reference wall geometry
func DefaultLayout() Layout {
	return Layout{
		OffsetLeft:      200,
		OffsetTop:       50,
		BoardSize:       950,
		Columns:         32,
		HighlightBorder: 10,
		CellSpacing:     0.3,
	}
}

// CellSize is the slot width of one cell, spacing included
func (l Layout) CellSize() float64 {
	return l.BoardSize / float64(l.Columns)
}

// Board returns the full board rect
func (l Layout) Board() vmath.Rect {
	return vmath.Rect{X: l.OffsetLeft, Y: l.OffsetTop, Width: l.BoardSize, Height: l.BoardSize}
}

// CellCorner returns the top-left corner of the cell's slot
func (l Layout) CellCorner(c Cell) vmath.Vec2 {
	cs := l.CellSize()
	return vmath.Vec2{
		X: l.OffsetLeft + float64(c.Col-1)*cs,
		Y: l.OffsetTop + float64(c.Row-1)*cs,
	}
}

// CellRect returns the drawn square of a cell, inset by CellSpacing
func (l Layout) CellRect(c Cell) vmath.Rect {
	cs := l.CellSize()
	p := l.CellCorner(c)
	return vmath.Rect{
		X:      p.X + l.CellSpacing,
		Y:      p.Y + l.CellSpacing,
		Width:  cs - l.CellSpacing,
		Height: cs - l.CellSpacing,
	}
}

// HighlightRect returns the cell slot expanded by HighlightBorder
func (l Layout) HighlightRect(c Cell) vmath.Rect {
	cs := l.CellSize()
	p := l.CellCorner(c)
	return vmath.Rect{X: p.X, Y: p.Y, Width: cs, Height: cs}.Expand(l.HighlightBorder)
}

// LabelOrigin is the fixed anchor of a label's dot trail, just inside the cell
func (l Layout) LabelOrigin(c Cell) vmath.Vec2 {
	cs := l.CellSize()
	return l.CellCorner(c).Add(vmath.Vec2{X: cs * labelOriginX, Y: cs * labelAnchorY})
}

// LabelPosition is the initial settled position of a label, right of the cell
func (l Layout) LabelPosition(c Cell) vmath.Vec2 {
	cs := l.CellSize()
	return l.CellCorner(c).Add(vmath.Vec2{X: cs * labelPositionX, Y: cs * labelAnchorY})
}
