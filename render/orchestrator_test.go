package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/pixel-wall/core"
	"github.com/lixenwraith/pixel-wall/vmath"
)

type namedRenderer struct {
	name    string
	visible bool
}

func (r *namedRenderer) Render(ctx Context, canvas Canvas) {
	canvas.Text(vmath.Vec2{X: ctx.Elapsed}, core.ColorWhite, r.name)
}

func (r *namedRenderer) IsVisible() bool {
	return r.visible
}

func drawnNames(rec *Recorder) []string {
	var names []string
	for _, c := range rec.Filter(DrawText) {
		names = append(names, c.Text)
	}
	return names
}

func TestOrchestratorPriorityOrder(t *testing.T) {
	o := NewOrchestrator()
	o.Register(&namedRenderer{name: "overlay", visible: true}, PriorityOverlay)
	o.Register(&namedRenderer{name: "grid", visible: true}, PriorityGrid)
	o.Register(&namedRenderer{name: "effects", visible: true}, PriorityEffects)
	o.Register(&namedRenderer{name: "labels", visible: true}, PriorityLabels)
	o.Register(&namedRenderer{name: "effects-2", visible: true}, PriorityEffects)
	assert.Equal(t, 5, o.Len())

	rec := NewRecorder()
	o.RenderFrame(Context{Elapsed: 1}, rec)

	assert.Equal(t, []string{"grid", "labels", "effects", "effects-2", "overlay"}, drawnNames(rec))
	assert.Equal(t, 1, rec.Frames)
}

func TestOrchestratorSkipsHidden(t *testing.T) {
	o := NewOrchestrator()
	hidden := &namedRenderer{name: "panel", visible: false}
	o.Register(&namedRenderer{name: "grid", visible: true}, PriorityGrid)
	o.Register(hidden, PriorityOverlay)

	rec := NewRecorder()
	o.RenderFrame(Context{}, rec)
	assert.Equal(t, []string{"grid"}, drawnNames(rec))

	hidden.visible = true
	o.RenderFrame(Context{}, rec)
	assert.Equal(t, []string{"grid", "panel"}, drawnNames(rec), "calls reset each frame")
	assert.Equal(t, 2, rec.Frames)
}
