package core

import (
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color is an 8-bit RGB color with a float opacity in [0, 1]
// Comparable, so it is usable as a map key and with ==
type Color struct {
	R, G, B uint8
	A       float64
}

// Predefined colors
var (
	ColorRed         = Color{255, 0, 0, 1}
	ColorWhite       = Color{255, 255, 255, 1}
	ColorBlack       = Color{0, 0, 0, 1}
	ColorYellow      = Color{255, 255, 0, 1}
	ColorBlue        = Color{0, 0, 255, 1}
	ColorTransparent = Color{0, 0, 0, 0}
)

// WithAlpha returns the color with opacity replaced, clamped to [0, 1]
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// Hex returns #rrggbb, opacity is not encoded
func (c Color) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// HSV builds an opaque color from hue in degrees and saturation/value in [0, 1]
// Hue wraps, so any finite value is accepted
func HSV(h, s, v float64) Color {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	r, g, b := colorful.Hsv(h, clamp01(s), clamp01(v)).Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: 1}
}

// ParseColor resolves a color name (SVG names, case-insensitive) or a hex literal
// in #rgb, #rrggbb or #rrggbbaa form. Unknown input returns false
func ParseColor(s string) (Color, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Color{}, false
	}

	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}

	rgba, ok := colornames.Map[s]
	if !ok {
		return Color{}, false
	}
	return Color{R: rgba.R, G: rgba.G, B: rgba.B, A: float64(rgba.A) / 255}, true
}

// ParseColorOr is ParseColor with a fallback for unknown input
func ParseColorOr(s string, fallback Color) Color {
	if c, ok := ParseColor(s); ok {
		return c
	}
	return fallback
}

func parseHex(s string) (Color, bool) {
	alpha := 1.0
	switch len(s) {
	case 4, 7:
	case 9:
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, false
		}
		alpha = float64(a) / 255
		s = s[:7]
	default:
		return Color{}, false
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, false
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, A: alpha}, true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
