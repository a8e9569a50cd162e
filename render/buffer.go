package render

import "github.com/gdamore/tcell/v2"

// Buffer is a cell compositor sized to the terminal, flushed to a tcell.Screen once per frame
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a cleared buffer with the specified dimensions
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]Cell, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Bounds returns the buffer dimensions in cells
func (b *Buffer) Bounds() (int, int) {
	return b.width, b.height
}

// Clear resets all cells to empty using exponential copy
func (b *Buffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = emptyCell
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// inBounds returns true if in screen bounds
func (b *Buffer) inBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at x,y, or an empty cell when out of bounds
func (b *Buffer) Get(x, y int) Cell {
	if !b.inBounds(x, y) {
		return emptyCell
	}
	return b.cells[y*b.width+x]
}

// BlendBg composites bg over the existing background, clearing any glyph underneath
func (b *Buffer) BlendBg(x, y int, bg RGB, alpha float64) {
	if !b.inBounds(x, y) {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Bg = Blend(dst.Bg, bg, alpha)
	if alpha >= 1 {
		dst.Rune = ' '
		dst.Wide = false
	}
}

// SetFg writes a glyph whose color is blended against the cell background
// Existing background is preserved so text reads over whatever is underneath
func (b *Buffer) SetFg(x, y int, r rune, fg RGB, alpha float64, attrs tcell.AttrMask) {
	if !b.inBounds(x, y) || alpha <= 0 {
		return
	}
	dst := &b.cells[y*b.width+x]
	dst.Rune = r
	dst.Fg = Blend(dst.Bg, fg, alpha)
	dst.Attrs = attrs
	dst.Wide = false
}

// SetWide writes a double-width glyph at x and reserves x+1
func (b *Buffer) SetWide(x, y int, r rune, fg RGB, alpha float64, attrs tcell.AttrMask) {
	if !b.inBounds(x+1, y) {
		return
	}
	b.SetFg(x, y, r, fg, alpha, attrs)
	if alpha <= 0 {
		return
	}
	next := &b.cells[y*b.width+x+1]
	next.Rune = 0
	next.Wide = true
}

// Flush writes every cell to the screen and shows it
func (b *Buffer) Flush(screen tcell.Screen) {
	for y := 0; y < b.height; y++ {
		row := b.cells[y*b.width : (y+1)*b.width]
		for x, c := range row {
			if c.Wide {
				continue
			}
			screen.SetContent(x, y, c.Rune, nil, c.Style())
		}
	}
	screen.Show()
}
