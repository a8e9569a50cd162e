package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/pixel-wall/constants"
	"github.com/lixenwraith/pixel-wall/core"
)

func TestBoardToggle(t *testing.T) {
	b := NewBoard(constants.GridSize)
	elapsed := 1.25

	for col := 1; col <= constants.GridSize; col += 7 {
		for row := 1; row <= constants.GridSize; row += 5 {
			cell := core.Cell{Col: col, Row: row}

			assert.True(t, b.TrySetColor(cell, core.ColorRed))
			assert.Equal(t, core.ColorRed, b.ColorAt(cell, elapsed))

			assert.True(t, b.TrySetColor(cell, core.ColorRed))
			_, ok := b.Lookup(cell)
			assert.False(t, ok, "second identical set clears %v", cell)
			assert.Equal(t, RainbowColor(cell, elapsed), b.ColorAt(cell, elapsed))
		}
	}
	assert.Equal(t, 0, b.Len())
}

func TestBoardOverwrite(t *testing.T) {
	b := NewBoard(constants.GridSize)
	cell := core.Cell{Col: 4, Row: 9}

	b.TrySetColor(cell, core.ColorRed)
	assert.True(t, b.TrySetColor(cell, core.ColorBlue))

	got, ok := b.Lookup(cell)
	assert.True(t, ok)
	assert.Equal(t, core.ColorBlue, got)
	assert.Equal(t, 1, b.Len())
}

func TestBoardSetToRainbowValueStillStores(t *testing.T) {
	b := NewBoard(constants.GridSize)
	cell := core.Cell{Col: 1, Row: 1}
	rainbow := RainbowColor(cell, 0)

	assert.True(t, b.TrySetColor(cell, rainbow))
	assert.Equal(t, 1, b.Len())
	assert.Equal(t, rainbow, b.ColorAt(cell, 0))
}

func TestBoardOutOfRange(t *testing.T) {
	b := NewBoard(constants.GridSize)

	for _, cell := range []core.Cell{{Col: 0, Row: 1}, {Col: 1, Row: 0}, {Col: 33, Row: 1}, {Col: 1, Row: 33}, {Col: -1, Row: -1}, {Col: 99, Row: 99}} {
		assert.False(t, b.TrySetColor(cell, core.ColorRed), "cell %v", cell)
	}
	assert.Equal(t, 0, b.Len())
}

func TestRainbowColor(t *testing.T) {
	// Hue ((x+y)*20 + t*100) mod 360 over zero-based indices
	assert.Equal(t, core.HSV(0, 0.9, 0.8), RainbowColor(core.Cell{Col: 1, Row: 1}, 0))
	assert.Equal(t, core.HSV(40, 0.9, 0.8), RainbowColor(core.Cell{Col: 2, Row: 2}, 0))
	assert.Equal(t, core.HSV(140, 0.9, 0.8), RainbowColor(core.Cell{Col: 2, Row: 2}, 1))

	// Eighteen diagonal steps wrap the hue
	a := RainbowColor(core.Cell{Col: 1, Row: 1}, 0)
	b := RainbowColor(core.Cell{Col: 10, Row: 10}, 0)
	assert.Equal(t, a, b)
}
