package render

import (
	"time"

	"github.com/lixenwraith/pixel-wall/engine"
)

// Context provides frame state for renderers, passed by value
type Context struct {
	Now     time.Time
	Elapsed float64 // Seconds since the wall started
	Delta   float64 // Seconds since the previous frame
}

// NewContext creates a Context from the wall's frame timing
func NewContext(f engine.Frame) Context {
	return Context{
		Now:     f.Now,
		Elapsed: f.Elapsed,
		Delta:   f.Delta,
	}
}
