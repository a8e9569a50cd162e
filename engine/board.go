package engine

import (
	"math"

	"github.com/lixenwraith/pixel-wall/constants"
	"github.com/lixenwraith/pixel-wall/core"
)

// Board is the sparse color override map of an n×n wall
// A cell without an entry shows the rainbow default
type Board struct {
	size  int
	cells map[core.Cell]core.Color
}

// NewBoard creates an empty board with the given side length
func NewBoard(size int) *Board {
	return &Board{
		size:  size,
		cells: make(map[core.Cell]core.Color),
	}
}

// Size returns the side length
func (b *Board) Size() int {
	return b.size
}

// TrySetColor applies toggle semantics: the cell's own color clears it, any other color replaces it
// Out-of-range cells are ignored; the result reports whether the board changed
func (b *Board) TrySetColor(cell core.Cell, color core.Color) bool {
	if !cell.InBounds(b.size) {
		return false
	}

	if current, ok := b.cells[cell]; ok && current == color {
		delete(b.cells, cell)
		return true
	}

	b.cells[cell] = color
	return true
}

// Lookup returns the stored override, if any
func (b *Board) Lookup(cell core.Cell) (core.Color, bool) {
	c, ok := b.cells[cell]
	return c, ok
}

// ColorAt returns the displayed color of a cell at elapsed seconds of wall time
func (b *Board) ColorAt(cell core.Cell, elapsed float64) core.Color {
	if c, ok := b.cells[cell]; ok {
		return c
	}
	return RainbowColor(cell, elapsed)
}

// Len returns the number of overridden cells
func (b *Board) Len() int {
	return len(b.cells)
}

// RainbowColor is the default for unset cells, a diagonal hue gradient rotating over time
func RainbowColor(cell core.Cell, elapsed float64) core.Color {
	diagonal := float64(cell.Col - 1 + cell.Row - 1)
	hue := math.Mod(diagonal*constants.RainbowHueStep+elapsed*constants.RainbowHuePerSecond, 360)
	return core.HSV(hue, constants.RainbowSaturation, constants.RainbowValue)
}
