package drafter

import (
	"math"
	"testing"
)

// straightPath builds a closed polygon of straight cubic segments.
func straightPath(pts ...Point) *Path {
	p := NewPath()
	p.MoveTo(pts[0])
	for _, pt := range pts[1:] {
		p.LineTo(pt)
	}
	p.LineTo(pts[0])
	p.Close()
	return p
}

func TestPathBounds(t *testing.T) {
	p := NewPath()
	p.MoveTo(Pt(0, 0))
	p.CubicTo(Pt(10, -20), Pt(30, 40), Pt(50, 10))

	got := p.Bounds()
	want := Rect{Min: Pt(0, -20), Max: Pt(50, 40)}
	if got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestPathBoundsEmpty(t *testing.T) {
	if got := NewPath().Bounds(); got != (Rect{}) {
		t.Errorf("empty Bounds() = %v, want zero rect", got)
	}
}

func TestPointOnSegment(t *testing.T) {
	p := NewPath()
	p.MoveTo(Pt(0, 0))
	p.CubicTo(Pt(0, 10), Pt(10, 10), Pt(10, 0))
	p.LineTo(Pt(20, 0))

	tests := []struct {
		name string
		seg  int
		t    float64
		want Point
		ok   bool
	}{
		{"start", 0, 0, Pt(0, 0), true},
		{"end", 0, 1, Pt(10, 0), true},
		{"middle", 0, 0.5, Pt(5, 7.5), true},
		{"second segment", 1, 1, Pt(20, 0), true},
		{"out of range", 2, 0.5, Point{}, false},
		{"negative", -1, 0.5, Point{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := p.PointOnSegment(tt.seg, tt.t)
			if ok != tt.ok {
				t.Fatalf("PointOnSegment(%d, %v) ok = %v, want %v", tt.seg, tt.t, ok, tt.ok)
			}
			if ok && !nearPt(got, tt.want) {
				t.Errorf("PointOnSegment(%d, %v) = %v, want %v", tt.seg, tt.t, got, tt.want)
			}
		})
	}
}

func TestFindSegment(t *testing.T) {
	p := straightPath(Pt(0, 0), Pt(100, 0), Pt(100, 50), Pt(0, 50))

	tests := []struct {
		name string
		q    Point
		seg  int
		ok   bool
	}{
		{"top edge", Pt(50, 2), 0, true},
		{"right edge", Pt(98, 25), 1, true},
		{"corner hits first segment", Pt(100, 0), 0, true},
		{"inside far from edges", Pt(50, 25), 0, false},
		{"outside", Pt(200, 200), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg, ok := p.FindSegment(tt.q, 4)
			if ok != tt.ok {
				t.Fatalf("FindSegment(%v) ok = %v, want %v", tt.q, ok, tt.ok)
			}
			if ok && seg.Index != tt.seg {
				t.Errorf("FindSegment(%v) = segment %d, want %d", tt.q, seg.Index, tt.seg)
			}
		})
	}
}

func TestInsertAnchor(t *testing.T) {
	p := NewPath()
	p.MoveTo(Pt(0, 0))
	p.CubicTo(Pt(10, 10), Pt(20, 10), Pt(30, 0))

	at := Pt(15, 6)
	got := p.InsertAnchor(0, at)

	segs := got.Segments()
	if len(segs) != 2 {
		t.Fatalf("segments = %d, want 2", len(segs))
	}
	first, second := segs[0], segs[1]
	if first.Control1 != Pt(10, 10) || first.Control2 != at || first.End != at {
		t.Errorf("first segment = %+v", first)
	}
	if second.Start != at || second.Control1 != at || second.Control2 != Pt(20, 10) || second.End != Pt(30, 0) {
		t.Errorf("second segment = %+v", second)
	}
	if len(p.Segments()) != 1 {
		t.Error("InsertAnchor modified the receiver")
	}
}

func TestInsertAnchorOutOfRange(t *testing.T) {
	p := straightPath(Pt(0, 0), Pt(10, 0), Pt(10, 10))
	got := p.InsertAnchor(10, Pt(1, 1))
	if got.Len() != p.Len() {
		t.Errorf("Len() = %d, want %d", got.Len(), p.Len())
	}
}

func TestPathTransformKeepsStructure(t *testing.T) {
	p := straightPath(Pt(0, 0), Pt(10, 0), Pt(10, 10))
	q := p.Transform(Rotate(math.Pi / 3))
	if q.Len() != p.Len() {
		t.Fatalf("Len() = %d, want %d", q.Len(), p.Len())
	}
	if q.NumControlPoints() != p.NumControlPoints() {
		t.Errorf("NumControlPoints() = %d, want %d", q.NumControlPoints(), p.NumControlPoints())
	}
}

func TestEllipse(t *testing.T) {
	p := NewPath()
	p.Ellipse(XYWH(0, 0, 100, 50))

	if n := len(p.Segments()); n != 4 {
		t.Fatalf("segments = %d, want 4", n)
	}
	b := p.Bounds()
	if !nearPt(b.Min, Pt(0, 0)) || !nearPt(b.Max, Pt(100, 50)) {
		t.Errorf("Bounds() = %v, want {0,0}-{100,50}", b)
	}
	cps := p.ControlPoints()
	if len(cps) != 4 {
		t.Fatalf("control points = %d, want 4", len(cps))
	}
	if !nearPt(cps[0].Anchor, Pt(100, 25)) {
		t.Errorf("first anchor = %v, want (100,25)", cps[0].Anchor)
	}
}

func TestArc(t *testing.T) {
	p := NewPath()
	p.Arc(Pt(0, 0), 10, 0, math.Pi)
	segs := p.Segments()
	if len(segs) != 2 {
		t.Fatalf("segments = %d, want 2", len(segs))
	}
	if !nearPt(segs[0].Start, Pt(10, 0)) || !nearPt(segs[1].End, Pt(-10, 0)) {
		t.Errorf("arc runs %v to %v, want (10,0) to (-10,0)", segs[0].Start, segs[1].End)
	}
	mid := segs[0].End
	if math.Abs(mid.Length()-10) > 1e-6 {
		t.Errorf("arc midpoint %v is not on the circle", mid)
	}
}
