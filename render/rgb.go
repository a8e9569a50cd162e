package render

import "github.com/lixenwraith/pixel-wall/core"

// RGB is an opaque 8-bit terminal color
type RGB struct {
	R, G, B uint8
}

// Predefined terminal colors
var (
	RGBBlack      = RGB{0, 0, 0}
	RGBWhite      = RGB{255, 255, 255}
	RgbBackground = RGB{18, 18, 26}
)

// FromColor drops the opacity of a wall color
func FromColor(c core.Color) RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// clamp converts float to uint8 with rounding
func clamp(v float64) uint8 {
	if v >= 255.0 {
		return 255
	}
	if v <= 0.0 {
		return 0
	}
	return uint8(v + 0.5)
}

// Blend composites src over c at the given opacity
func Blend(c, src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return c
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: clamp(float64(c.R)*inv + float64(src.R)*alpha),
		G: clamp(float64(c.G)*inv + float64(src.G)*alpha),
		B: clamp(float64(c.B)*inv + float64(src.B)*alpha),
	}
}

// Scale multiplies every channel by factor
func Scale(c RGB, factor float64) RGB {
	return RGB{
		R: clamp(float64(c.R) * factor),
		G: clamp(float64(c.G) * factor),
		B: clamp(float64(c.B) * factor),
	}
}
