// @focus: #vfx { label, highlight } #lifecycle { timer }
package components

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/pixel-wall/core"
	"github.com/lixenwraith/pixel-wall/vmath"
)

// LabelEffect is the floating viewer name, dot trail and highlight outline
// spawned by an accepted board command
type LabelEffect struct {
	ID    uuid.UUID
	Text  string     // Viewer display name
	Color core.Color // Label color, white when the sender color did not parse
	Cell  core.Cell  // Cell the command targeted

	// Origin is the fixed start of the dot trail and the per-entry noise key
	Origin vmath.Vec2
	// Position is where the label text settles; drifts every frame
	Position vmath.Vec2
	// Highlight is the cell slot expanded by the highlight border
	Highlight vmath.Rect

	CreatedAt time.Time
}

// NewLabelEffect creates an effect for a cell at age zero
func NewLabelEffect(layout core.Layout, cell core.Cell, text string, color core.Color, now time.Time) LabelEffect {
	return LabelEffect{
		ID:        uuid.New(),
		Text:      text,
		Color:     color,
		Cell:      cell,
		Origin:    layout.LabelOrigin(cell),
		Position:  layout.LabelPosition(cell),
		Highlight: layout.HighlightRect(cell),
		CreatedAt: now,
	}
}

// Age returns seconds since creation, never negative
func (e *LabelEffect) Age(now time.Time) float64 {
	age := now.Sub(e.CreatedAt).Seconds()
	if age < 0 {
		return 0
	}
	return age
}
