package drafter

// ControlPoint is the editable view of one anchor of a path together
// with its outgoing (Handle1) and incoming (Handle2) handles.
//
// Control point k of a subpath sits at the start of its k-th cubic
// segment. Handle1 is that segment's first control, Handle2 the previous
// segment's second control. The first anchor of a closed subpath takes
// Handle2 from the last segment; an open subpath gets one extra trailing
// control point at the end of its last segment. Handles that have no
// segment to live in read back as the anchor itself.
type ControlPoint struct {
	Anchor  Point
	Handle1 Point
	Handle2 Point
}

// Part identifies one of the three points of a ControlPoint.
type Part int

const (
	// PartAnchor is the on-curve point.
	PartAnchor Part = iota
	// PartHandle1 is the outgoing handle.
	PartHandle1
	// PartHandle2 is the incoming handle.
	PartHandle2
)

// Get returns the point selected by part.
func (cp ControlPoint) Get(part Part) Point {
	switch part {
	case PartHandle1:
		return cp.Handle1
	case PartHandle2:
		return cp.Handle2
	default:
		return cp.Anchor
	}
}

// Translate returns cp moved by d.
func (cp ControlPoint) Translate(d Point) ControlPoint {
	return ControlPoint{
		Anchor:  cp.Anchor.Add(d),
		Handle1: cp.Handle1.Add(d),
		Handle2: cp.Handle2.Add(d),
	}
}

const (
	fieldControl1 = iota
	fieldControl2
	fieldPoint
)

// slot addresses one coordinate stored in the path.
type slot struct {
	elem, field int
}

var noSlot = slot{elem: -1}

type controlSlots struct {
	anchor  []slot
	handle1 slot
	handle2 slot
}

type subpath struct {
	move   int
	segs   []int
	closed bool
	first  int // index of the subpath's first control point
}

func (p *Path) subpaths() []subpath {
	var out []subpath
	n := 0
	for i := 0; i < len(p.elements); {
		mv, ok := p.elements[i].(MoveTo)
		if !ok {
			i++
			continue
		}
		sp := subpath{move: i, first: n}
		for i++; i < len(p.elements); i++ {
			if _, ok := p.elements[i].(MoveTo); ok {
				break
			}
			if _, ok := p.elements[i].(CubicTo); ok {
				sp.segs = append(sp.segs, i)
			}
		}
		m := len(sp.segs)
		if m == 0 {
			continue
		}
		sp.closed = p.elements[sp.segs[m-1]].(CubicTo).Point == mv.Point
		n += m
		if !sp.closed {
			n++
		}
		out = append(out, sp)
	}
	return out
}

func (sp subpath) count() int {
	if sp.closed {
		return len(sp.segs)
	}
	return len(sp.segs) + 1
}

func (p *Path) controlSlots() []controlSlots {
	var out []controlSlots
	for _, sp := range p.subpaths() {
		m := len(sp.segs)
		for k := 0; k < m; k++ {
			cs := controlSlots{
				handle1: slot{sp.segs[k], fieldControl1},
				handle2: noSlot,
			}
			switch {
			case k > 0:
				cs.anchor = []slot{{sp.segs[k-1], fieldPoint}}
				cs.handle2 = slot{sp.segs[k-1], fieldControl2}
			case sp.closed:
				cs.anchor = []slot{{sp.move, fieldPoint}, {sp.segs[m-1], fieldPoint}}
				cs.handle2 = slot{sp.segs[m-1], fieldControl2}
			default:
				cs.anchor = []slot{{sp.move, fieldPoint}}
			}
			out = append(out, cs)
		}
		if !sp.closed {
			out = append(out, controlSlots{
				anchor:  []slot{{sp.segs[m-1], fieldPoint}},
				handle1: noSlot,
				handle2: slot{sp.segs[m-1], fieldControl2},
			})
		}
	}
	return out
}

func (p *Path) get(s slot) (Point, bool) {
	if s.elem < 0 {
		return Point{}, false
	}
	switch e := p.elements[s.elem].(type) {
	case MoveTo:
		return e.Point, true
	case CubicTo:
		switch s.field {
		case fieldControl1:
			return e.Control1, true
		case fieldControl2:
			return e.Control2, true
		default:
			return e.Point, true
		}
	}
	return Point{}, false
}

func (p *Path) set(s slot, pt Point) {
	if s.elem < 0 {
		return
	}
	switch e := p.elements[s.elem].(type) {
	case MoveTo:
		e.Point = pt
		p.elements[s.elem] = e
	case CubicTo:
		switch s.field {
		case fieldControl1:
			e.Control1 = pt
		case fieldControl2:
			e.Control2 = pt
		default:
			e.Point = pt
		}
		p.elements[s.elem] = e
	}
}

// ControlPoints derives the control point list from the path.
func (p *Path) ControlPoints() []ControlPoint {
	slots := p.controlSlots()
	cps := make([]ControlPoint, len(slots))
	for i, cs := range slots {
		anchor, _ := p.get(cs.anchor[0])
		cp := ControlPoint{Anchor: anchor, Handle1: anchor, Handle2: anchor}
		if h, ok := p.get(cs.handle1); ok {
			cp.Handle1 = h
		}
		if h, ok := p.get(cs.handle2); ok {
			cp.Handle2 = h
		}
		cps[i] = cp
	}
	return cps
}

// NumControlPoints returns the number of control points of the path.
func (p *Path) NumControlPoints() int {
	n := 0
	for _, sp := range p.subpaths() {
		n += sp.count()
	}
	return n
}

// SetControlPoint writes cp back into every path coordinate that control
// point i aliases. Out of range indices are ignored.
func (p *Path) SetControlPoint(i int, cp ControlPoint) {
	slots := p.controlSlots()
	if i < 0 || i >= len(slots) {
		return
	}
	for _, s := range slots[i].anchor {
		p.set(s, cp.Anchor)
	}
	p.set(slots[i].handle1, cp.Handle1)
	p.set(slots[i].handle2, cp.Handle2)
}

// SegmentControlIndex returns the index of the control point at the start
// of cubic segment seg, or -1.
func (p *Path) SegmentControlIndex(seg int) int {
	elem := p.segmentElement(seg)
	if elem < 0 {
		return -1
	}
	for i, cs := range p.controlSlots() {
		if cs.handle1.elem == elem {
			return i
		}
	}
	return -1
}

// RemoveControlPoint returns a copy of the path without control point i.
// The two segments meeting at the anchor are merged into one that keeps
// the outer handles.
func (p *Path) RemoveControlPoint(i int) *Path {
	result := p.Clone()
	for _, sp := range p.subpaths() {
		if i < sp.first || i >= sp.first+sp.count() {
			continue
		}
		k := i - sp.first
		m := len(sp.segs)
		drop := -1
		switch {
		case k == m:
			drop = sp.segs[m-1]
		case k > 0:
			prev := p.elements[sp.segs[k-1]].(CubicTo)
			next := p.elements[sp.segs[k]].(CubicTo)
			result.elements[sp.segs[k-1]] = CubicTo{
				Control1: prev.Control1,
				Control2: next.Control2,
				Point:    next.Point,
			}
			drop = sp.segs[k]
		default:
			first := p.elements[sp.segs[0]].(CubicTo)
			result.elements[sp.move] = MoveTo{Point: first.Point}
			if sp.closed && m > 1 {
				last := p.elements[sp.segs[m-1]].(CubicTo)
				result.elements[sp.segs[m-1]] = CubicTo{
					Control1: last.Control1,
					Control2: first.Control2,
					Point:    first.Point,
				}
			}
			drop = sp.segs[0]
		}
		result.elements = append(result.elements[:drop:drop], result.elements[drop+1:]...)
		break
	}
	return result
}
