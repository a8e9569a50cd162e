package render

import "github.com/gdamore/tcell/v2"

// Cell is one terminal cell of the render buffer
type Cell struct {
	Rune  rune
	Fg    RGB
	Bg    RGB
	Attrs tcell.AttrMask
	// Wide marks the trailing half of a double-width rune; flush skips it
	Wide bool
}

var emptyCell = Cell{Rune: ' ', Fg: RGBWhite, Bg: RgbBackground}

// Style converts the cell colors to a tcell style
func (c Cell) Style() tcell.Style {
	return tcell.StyleDefault.
		Foreground(RGBToTcell(c.Fg)).
		Background(RGBToTcell(c.Bg)).
		Attributes(c.Attrs)
}
