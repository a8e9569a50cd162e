package render

import (
	"github.com/lixenwraith/pixel-wall/core"
	"github.com/lixenwraith/pixel-wall/vmath"
)

// Canvas is the drawing surface renderers target, in layout units
type Canvas interface {
	// Box fills r with c, corners rounded by radius where the surface supports it
	Box(r vmath.Rect, c core.Color, radius float64)
	// BorderBox strokes the inside of r with a border of the given width
	BorderBox(r vmath.Rect, width float64, c core.Color, radius float64)
	// Text draws s with its top-left corner at p
	Text(p vmath.Vec2, c core.Color, s string)
}

// Surface is a canvas with a frame lifecycle
type Surface interface {
	Canvas
	Clear()
	Show()
}

// SystemRenderer is implemented by anything with visual output
type SystemRenderer interface {
	Render(ctx Context, canvas Canvas)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
