package render

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/pixel-wall/core"
	"github.com/lixenwraith/pixel-wall/vmath"
)

// DotGlyph stands in for boxes smaller than one terminal cell
const DotGlyph = '·'

// Projection maps layout units onto terminal cells
type Projection struct {
	UnitsPerCol float64
	UnitsPerRow float64
}

// ProjectionFor maps one board cell to two terminal columns and one row
func ProjectionFor(l core.Layout) Projection {
	cs := l.CellSize()
	return Projection{UnitsPerCol: cs / 2, UnitsPerRow: cs}
}

// Nearest returns the terminal cell whose corner is nearest to p
func (p Projection) Nearest(v vmath.Vec2) (int, int) {
	return int(math.Round(v.X / p.UnitsPerCol)), int(math.Round(v.Y / p.UnitsPerRow))
}

// Containing returns the terminal cell that contains p
func (p Projection) Containing(v vmath.Vec2) (int, int) {
	return int(math.Floor(v.X / p.UnitsPerCol)), int(math.Floor(v.Y / p.UnitsPerRow))
}

// Span returns the half-open cell range [x0,x1) x [y0,y1) whose cell centers lie inside r
func (p Projection) Span(r vmath.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Ceil(r.Left()/p.UnitsPerCol - 0.5))
	x1 = int(math.Ceil(r.Right()/p.UnitsPerCol - 0.5))
	y0 = int(math.Ceil(r.Top()/p.UnitsPerRow - 0.5))
	y1 = int(math.Ceil(r.Bottom()/p.UnitsPerRow - 0.5))
	return x0, y0, x1, y1
}

// TerminalCanvas draws layout-unit primitives into a Buffer and presents it on a tcell.Screen
// Corner radius is ignored, terminal cells have no sub-cell geometry
type TerminalCanvas struct {
	buf    *Buffer
	proj   Projection
	screen tcell.Screen
}

// NewTerminalCanvas creates a canvas over buf; screen may be nil when only the buffer is inspected
func NewTerminalCanvas(buf *Buffer, proj Projection, screen tcell.Screen) *TerminalCanvas {
	return &TerminalCanvas{buf: buf, proj: proj, screen: screen}
}

// Buffer returns the backing cell buffer
func (c *TerminalCanvas) Buffer() *Buffer {
	return c.buf
}

// Projection returns the layout-to-cell mapping
func (c *TerminalCanvas) Projection() Projection {
	return c.proj
}

// Resize follows a terminal resize
func (c *TerminalCanvas) Resize(width, height int) {
	c.buf.Resize(width, height)
	if c.screen != nil {
		c.screen.Sync()
	}
}

// Clear resets the buffer for a new frame
func (c *TerminalCanvas) Clear() {
	c.buf.Clear()
}

// Show flushes the buffer to the screen
func (c *TerminalCanvas) Show() {
	if c.screen == nil {
		return
	}
	c.buf.Flush(c.screen)
}

// Box fills every cell whose center lies in r; a box too small to cover a cell center becomes a dot
func (c *TerminalCanvas) Box(r vmath.Rect, col core.Color, radius float64) {
	if col.A <= 0 || r.Width <= 0 || r.Height <= 0 {
		return
	}

	x0, y0, x1, y1 := c.proj.Span(r)
	if x1 <= x0 || y1 <= y0 {
		x, y := c.proj.Containing(vmath.Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2})
		c.buf.SetFg(x, y, DotGlyph, FromColor(col), col.A, tcell.AttrNone)
		return
	}

	bg := FromColor(col)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			c.buf.BlendBg(x, y, bg, col.A)
		}
	}
}

// BorderBox paints the ring of cells between r and r shrunk by width
// Any positive width yields a ring at least one cell thick on every side
func (c *TerminalCanvas) BorderBox(r vmath.Rect, width float64, col core.Color, radius float64) {
	if col.A <= 0 || width <= 0 || r.Width <= 0 || r.Height <= 0 {
		return
	}

	x0, y0, x1, y1 := c.proj.Span(r)
	ix0, iy0, ix1, iy1 := c.proj.Span(r.Expand(-width))
	if ix1 > ix0 && iy1 > iy0 {
		x0, y0 = min(x0, ix0-1), min(y0, iy0-1)
		x1, y1 = max(x1, ix1+1), max(y1, iy1+1)
	}

	bg := FromColor(col)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if x >= ix0 && x < ix1 && y >= iy0 && y < iy1 {
				continue
			}
			c.buf.BlendBg(x, y, bg, col.A)
		}
	}
}

// Text writes s starting at the cell nearest to p, advancing by display width
func (c *TerminalCanvas) Text(p vmath.Vec2, col core.Color, s string) {
	if col.A <= 0 || s == "" {
		return
	}

	x, y := c.proj.Nearest(p)
	fg := FromColor(col)
	for _, r := range s {
		switch runewidth.RuneWidth(r) {
		case 0:
			continue
		case 2:
			c.buf.SetWide(x, y, r, fg, col.A, tcell.AttrNone)
			x += 2
		default:
			c.buf.SetFg(x, y, r, fg, col.A, tcell.AttrNone)
			x++
		}
	}
}
