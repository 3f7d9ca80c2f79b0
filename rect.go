package drafter

import "math"

// Rect represents an axis-aligned rectangle.
// Min is the top-left corner (minimum coordinates).
// Max is the bottom-right corner (maximum coordinates).
type Rect struct {
	Min, Max Point
}

// NewRect creates a rectangle from two points.
// The points are normalized so Min <= Max.
func NewRect(p1, p2 Point) Rect {
	return Rect{
		Min: Point{X: math.Min(p1.X, p2.X), Y: math.Min(p1.Y, p2.Y)},
		Max: Point{X: math.Max(p1.X, p2.X), Y: math.Max(p1.Y, p2.Y)},
	}
}

// XYWH creates a rectangle from an origin and a size.
func XYWH(x, y, w, h float64) Rect {
	return NewRect(Pt(x, y), Pt(x+w, y+h))
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Mid returns the center of the rectangle.
func (r Rect) Mid() Point {
	return r.Min.Lerp(r.Max, 0.5)
}

// Size returns the extent on the given axis.
func (r Rect) Size(axis Axis) float64 {
	if axis == AxisX {
		return r.Width()
	}
	return r.Height()
}

// At returns the point at fractional position f inside the rectangle,
// where (0,0) is Min and (1,1) is Max.
func (r Rect) At(f Point) Point {
	return Point{
		X: r.Min.X + r.Width()*f.X,
		Y: r.Min.Y + r.Height()*f.Y,
	}
}

// Points returns the min, mid and max corners used for alignment.
func (r Rect) Points() [3]Point {
	return [3]Point{r.Min, r.Mid(), r.Max}
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect) Union(other Rect) Rect {
	return Rect{
		Min: Point{X: math.Min(r.Min.X, other.Min.X), Y: math.Min(r.Min.Y, other.Min.Y)},
		Max: Point{X: math.Max(r.Max.X, other.Max.X), Y: math.Max(r.Max.Y, other.Max.Y)},
	}
}

// Extend returns the smallest rectangle containing r and p.
func (r Rect) Extend(p Point) Rect {
	return r.Union(Rect{Min: p, Max: p})
}

// Inset returns r grown by d on every side (shrunk when d is negative).
func (r Rect) Inset(d float64) Rect {
	return Rect{
		Min: Point{X: r.Min.X - d, Y: r.Min.Y - d},
		Max: Point{X: r.Max.X + d, Y: r.Max.Y + d},
	}
}

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// ContainsRect returns true if other lies entirely inside r.
func (r Rect) ContainsRect(other Rect) bool {
	return r.Contains(other.Min) && r.Contains(other.Max)
}

// IsEmpty reports whether the rectangle has zero width or height.
func (r Rect) IsEmpty() bool {
	return r.Width() == 0 || r.Height() == 0
}

// Axis selects the horizontal or vertical direction.
type Axis int

const (
	// AxisX is the horizontal axis.
	AxisX Axis = iota
	// AxisY is the vertical axis.
	AxisY
)

// String returns the axis name.
func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}
