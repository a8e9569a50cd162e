// @focus: #vfx { label, highlight, trail } #lifecycle { fade }
package renderers

import (
	"math/rand"

	"github.com/lixenwraith/pixel-wall/components"
	"github.com/lixenwraith/pixel-wall/constants"
	"github.com/lixenwraith/pixel-wall/core"
	"github.com/lixenwraith/pixel-wall/engine"
	"github.com/lixenwraith/pixel-wall/render"
	"github.com/lixenwraith/pixel-wall/vmath"
)

// shadowOffsets are drawn in order before the label itself
var shadowOffsets = [2]vmath.Vec2{
	{X: constants.ShadowOffset, Y: constants.ShadowOffset},
	{X: -constants.ShadowOffset, Y: -constants.ShadowOffset},
}

// EffectsRenderer draws label effects: highlight outline, dot trail, shadowed name
type EffectsRenderer struct {
	wall *engine.Wall
	rng  *rand.Rand
}

// NewEffectsRenderer creates an effects renderer; rng picks the highlight colors
func NewEffectsRenderer(wall *engine.Wall, rng *rand.Rand) *EffectsRenderer {
	return &EffectsRenderer{wall: wall, rng: rng}
}

// Render implements SystemRenderer
func (r *EffectsRenderer) Render(ctx render.Context, canvas render.Canvas) {
	border := r.wall.Layout().HighlightBorder
	entries := r.wall.Effects().Entries()
	for i := range entries {
		r.renderEffect(ctx, canvas, &entries[i], border)
	}
}

func (r *EffectsRenderer) renderEffect(ctx render.Context, canvas render.Canvas, e *components.LabelEffect, border float64) {
	age := e.Age(ctx.Now)

	// Highlight shrinks to zero width over HighlightDuration
	if h := vmath.LerpInverse(age, constants.HighlightDuration, 0); h > 0 {
		canvas.BorderBox(e.Highlight, border*vmath.EaseOut(h), r.highlightColor(), constants.HighlightRadius)
	}

	fade := vmath.LerpInverse(age, constants.EffectLifetime, constants.FadeStart)
	if fade <= 0 {
		return
	}

	end := e.Position.Sub(vmath.Vec2{Y: constants.LabelRise})
	dot := core.ColorWhite.WithAlpha(fade)
	for i := 0; i < constants.TrailDotCount; i++ {
		p := e.Origin.Lerp(end, float64(i)/constants.TrailDotCount)
		canvas.Box(vmath.Rect{X: p.X, Y: p.Y, Width: constants.TrailDotSize, Height: constants.TrailDotSize}, dot, constants.TrailDotRadius)
	}

	shadow := core.ColorBlack.WithAlpha(fade)
	for _, off := range shadowOffsets {
		canvas.Text(e.Position.Add(off), shadow, e.Text)
	}
	canvas.Text(e.Position, e.Color.WithAlpha(e.Color.A*fade), e.Text)
}

func (r *EffectsRenderer) highlightColor() core.Color {
	return core.HSV(r.rng.Float64()*360, 1, 1)
}
