package renderers

import (
	"time"

	"github.com/lixenwraith/pixel-wall/core"
	"github.com/lixenwraith/pixel-wall/engine"
	"github.com/lixenwraith/pixel-wall/render"
)

var testStart = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

type zeroNoise struct{}

func (zeroNoise) Noise3D(x, y, z float64) float64 { return 0 }

func newTestWall() (*engine.Wall, *engine.MockTimeProvider) {
	clock := engine.NewMockTimeProvider(testStart)
	w := engine.NewWall(engine.WallConfig{
		Layout: core.DefaultLayout(),
		Clock:  clock,
		Noise:  zeroNoise{},
	})
	return w, clock
}

// renderOnce runs one renderer against a fresh recorder at the wall's current frame
func renderOnce(w *engine.Wall, r render.SystemRenderer) *render.Recorder {
	rec := render.NewRecorder()
	r.Render(render.NewContext(w.Frame()), rec)
	return rec
}
