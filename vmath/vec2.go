package vmath

// Vec2 is a point or offset in layout units
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }
func (v Vec2) Swap() Vec2 { return Vec2{v.Y, v.X} }
func (v Vec2) Lerp(o Vec2, t float64) Vec2 { return Vec2{Lerp(v.X, o.X, t), Lerp(v.Y, o.Y, t)} }

// Rect is an axis-aligned rectangle, top-left origin
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func (r Rect) Left() float64 { return r.X }
func (r Rect) Top() float64 { return r.Y }
func (r Rect) Right() float64 { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Expand grows the rect by d on every side
func (r Rect) Expand(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, Width: r.Width + 2*d, Height: r.Height + 2*d}
}

// Contains reports whether p lies inside r, right/bottom edges exclusive
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}
