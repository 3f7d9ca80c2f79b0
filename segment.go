package drafter

// Segment is one cubic piece of a path together with its start point.
type Segment struct {
	// Index is the position of the segment among all cubic segments of
	// the path, counted across subpaths.
	Index int

	Start, Control1, Control2, End Point
}

// Eval returns the point at parameter t in [0,1].
func (s Segment) Eval(t float64) Point {
	return fromCurve(s.bez().Eval(t))
}

// Hull returns the bounding rectangle of the control polygon.
func (s Segment) Hull() Rect {
	return NewRect(s.Start, s.End).Extend(s.Control1).Extend(s.Control2)
}

// Segments returns every cubic segment in path order.
func (p *Path) Segments() []Segment {
	var segs []Segment
	var cur Point
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			cur = e.Point
		case CubicTo:
			segs = append(segs, Segment{
				Index:    len(segs),
				Start:    cur,
				Control1: e.Control1,
				Control2: e.Control2,
				End:      e.Point,
			})
			cur = e.Point
		}
	}
	return segs
}

// PointOnSegment evaluates segment seg at parameter t. It reports false
// when seg is out of range.
func (p *Path) PointOnSegment(seg int, t float64) (Point, bool) {
	segs := p.Segments()
	if seg < 0 || seg >= len(segs) {
		return Point{}, false
	}
	return segs[seg].Eval(t), true
}

// FindSegment returns the first segment, in path order, whose control
// polygon rectangle padded by tol contains q. The match is a coarse
// rectangle test, not a projection onto the curve.
func (p *Path) FindSegment(q Point, tol float64) (Segment, bool) {
	for _, s := range p.Segments() {
		if s.Hull().Inset(tol).Contains(q) {
			return s, true
		}
	}
	return Segment{}, false
}

// InsertAnchor returns a copy of the path in which segment seg, running
// S to E with controls c1 and c2, is replaced by S to at (c1, at) and
// at to E (at, c2). The new anchor keeps the neighbouring control
// coordinates instead of subdividing the curve exactly.
func (p *Path) InsertAnchor(seg int, at Point) *Path {
	result := p.Clone()
	idx := p.segmentElement(seg)
	if idx < 0 {
		return result
	}
	old := p.elements[idx].(CubicTo)

	elems := make([]Element, 0, len(p.elements)+1)
	elems = append(elems, p.elements[:idx]...)
	elems = append(elems,
		CubicTo{Control1: old.Control1, Control2: at, Point: at},
		CubicTo{Control1: at, Control2: old.Control2, Point: old.Point})
	elems = append(elems, p.elements[idx+1:]...)
	result.elements = elems
	return result
}

// segmentElement returns the element index of cubic segment seg, or -1.
func (p *Path) segmentElement(seg int) int {
	n := 0
	for i, elem := range p.elements {
		if _, ok := elem.(CubicTo); ok {
			if n == seg {
				return i
			}
			n++
		}
	}
	return -1
}
