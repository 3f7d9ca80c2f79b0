package drafter

import "math"

// Element represents a single element in a path.
type Element interface {
	isElement()
}

// MoveTo starts a new subpath at a point.
type MoveTo struct {
	Point Point
}

func (MoveTo) isElement() {}

// CubicTo draws a cubic Bezier curve from the current point.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isElement() {}

// Path represents an editable vector path made of cubic segments.
// Straight lines are stored as cubics whose control points coincide
// with the segment end.
type Path struct {
	elements []Element
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]Element, 0, 16),
	}
}

// MoveTo starts a new subpath at p.
func (p *Path) MoveTo(pt Point) {
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// CubicTo draws a cubic Bezier curve to pt.
func (p *Path) CubicTo(c1, c2, pt Point) {
	p.elements = append(p.elements, CubicTo{
		Control1: c1,
		Control2: c2,
		Point:    pt,
	})
	p.current = pt
}

// LineTo draws a straight segment to pt.
func (p *Path) LineTo(pt Point) {
	p.CubicTo(pt, pt, pt)
}

// QuadTo draws a quadratic Bezier curve to pt, elevated to a cubic.
func (p *Path) QuadTo(ctrl, pt Point) {
	c1 := p.current.Lerp(ctrl, 2.0/3.0)
	c2 := pt.Lerp(ctrl, 2.0/3.0)
	p.CubicTo(c1, c2, pt)
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.elements = p.elements[:0]
	p.start = Point{}
	p.current = Point{}
}

// Elements returns the path elements.
func (p *Path) Elements() []Element {
	return p.elements
}

// Len returns the number of elements.
func (p *Path) Len() int {
	return len(p.elements)
}

// IsEmpty reports whether the path has no elements.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.elements) == 0
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// Append adds all elements of other to the path.
func (p *Path) Append(other *Path) {
	if other.IsEmpty() {
		return
	}
	p.elements = append(p.elements, other.elements...)
	p.start = other.start
	p.current = other.current
}

// Transform returns a copy of the path with m applied to every point.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			result.MoveTo(m.Apply(e.Point))
		case CubicTo:
			result.CubicTo(
				m.Apply(e.Control1),
				m.Apply(e.Control2),
				m.Apply(e.Point))
		case Close:
			result.Close()
		}
	}
	return result
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	result := NewPath()
	result.elements = make([]Element, len(p.elements))
	copy(result.elements, p.elements)
	result.start = p.start
	result.current = p.current
	return result
}

// Bounds returns the union of every anchor and control point. It is a
// hull approximation rather than the tight curve extent.
func (p *Path) Bounds() Rect {
	var r Rect
	first := true
	add := func(pt Point) {
		if first {
			r = Rect{Min: pt, Max: pt}
			first = false
			return
		}
		r = r.Extend(pt)
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			add(e.Point)
		case CubicTo:
			add(e.Control1)
			add(e.Control2)
			add(e.Point)
		}
	}
	return r
}

// Ellipse adds an ellipse inscribed in r as four cubic segments starting
// at the rightmost point.
func (p *Path) Ellipse(r Rect) {
	const k = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)
	c := r.Mid()
	rx := r.Width() / 2
	ry := r.Height() / 2
	ox := rx * k
	oy := ry * k

	p.MoveTo(Pt(c.X+rx, c.Y))
	p.CubicTo(Pt(c.X+rx, c.Y+oy), Pt(c.X+ox, c.Y+ry), Pt(c.X, c.Y+ry))
	p.CubicTo(Pt(c.X-ox, c.Y+ry), Pt(c.X-rx, c.Y+oy), Pt(c.X-rx, c.Y))
	p.CubicTo(Pt(c.X-rx, c.Y-oy), Pt(c.X-ox, c.Y-ry), Pt(c.X, c.Y-ry))
	p.CubicTo(Pt(c.X+ox, c.Y-ry), Pt(c.X+rx, c.Y-oy), Pt(c.X+rx, c.Y))
	p.Close()
}

// Arc adds a circular arc around center from angle1 to angle2 (radians).
// The arc starts at the current point, which callers place on the circle.
func (p *Path) Arc(center Point, r, angle1, angle2 float64) {
	const twoPi = 2 * math.Pi
	for angle2 < angle1 {
		angle2 += twoPi
	}

	// At most 90 degrees per segment.
	const maxAngle = math.Pi / 2
	n := int(math.Ceil((angle2 - angle1) / maxAngle))
	if n == 0 {
		return
	}
	step := (angle2 - angle1) / float64(n)
	for i := 0; i < n; i++ {
		a1 := angle1 + float64(i)*step
		p.arcSegment(center, r, a1, a1+step)
	}
}

func (p *Path) arcSegment(c Point, r, a1, a2 float64) {
	t := math.Tan((a2 - a1) / 2)
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*t*t) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1, y1 := c.X+r*cos1, c.Y+r*sin1
	x2, y2 := c.X+r*cos2, c.Y+r*sin2

	if len(p.elements) == 0 {
		p.MoveTo(Pt(x1, y1))
	}
	p.CubicTo(
		Pt(x1-alpha*r*sin1, y1+alpha*r*cos1),
		Pt(x2+alpha*r*sin2, y2-alpha*r*cos2),
		Pt(x2, y2))
}
