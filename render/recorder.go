package render

import (
	"github.com/lixenwraith/pixel-wall/core"
	"github.com/lixenwraith/pixel-wall/vmath"
)

// DrawKind identifies a canvas primitive
type DrawKind int

const (
	DrawBox DrawKind = iota
	DrawBorderBox
	DrawText
)

func (k DrawKind) String() string {
	switch k {
	case DrawBox:
		return "box"
	case DrawBorderBox:
		return "border"
	case DrawText:
		return "text"
	default:
		return "unknown"
	}
}

// DrawCall is one recorded canvas call; unused fields are zero
type DrawCall struct {
	Kind   DrawKind
	Rect   vmath.Rect
	Point  vmath.Vec2
	Width  float64
	Radius float64
	Color  core.Color
	Text   string
}

// Recorder is a Surface that captures draw calls instead of drawing
type Recorder struct {
	Calls  []DrawCall
	Frames int
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Box(rect vmath.Rect, c core.Color, radius float64) {
	r.Calls = append(r.Calls, DrawCall{Kind: DrawBox, Rect: rect, Color: c, Radius: radius})
}

func (r *Recorder) BorderBox(rect vmath.Rect, width float64, c core.Color, radius float64) {
	r.Calls = append(r.Calls, DrawCall{Kind: DrawBorderBox, Rect: rect, Width: width, Color: c, Radius: radius})
}

func (r *Recorder) Text(p vmath.Vec2, c core.Color, s string) {
	r.Calls = append(r.Calls, DrawCall{Kind: DrawText, Point: p, Color: c, Text: s})
}

// Clear drops the calls of the previous frame
func (r *Recorder) Clear() {
	r.Calls = r.Calls[:0]
}

// Show counts completed frames
func (r *Recorder) Show() {
	r.Frames++
}

// Filter returns the calls of one kind, in draw order
func (r *Recorder) Filter(kind DrawKind) []DrawCall {
	var out []DrawCall
	for _, c := range r.Calls {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}
