package drafter

import "testing"

func TestControlPointsOpen(t *testing.T) {
	p := NewPath()
	p.MoveTo(Pt(0, 0))
	p.CubicTo(Pt(1, 1), Pt(2, 2), Pt(3, 0))
	p.CubicTo(Pt(4, -1), Pt(5, -2), Pt(6, 0))

	want := []ControlPoint{
		{Anchor: Pt(0, 0), Handle1: Pt(1, 1), Handle2: Pt(0, 0)},
		{Anchor: Pt(3, 0), Handle1: Pt(4, -1), Handle2: Pt(2, 2)},
		{Anchor: Pt(6, 0), Handle1: Pt(6, 0), Handle2: Pt(5, -2)},
	}
	got := p.ControlPoints()
	if len(got) != len(want) {
		t.Fatalf("ControlPoints() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ControlPoints()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestControlPointsClosed(t *testing.T) {
	p := NewPath()
	p.MoveTo(Pt(0, 0))
	p.CubicTo(Pt(1, -1), Pt(9, -1), Pt(10, 0))
	p.CubicTo(Pt(11, 5), Pt(-1, 5), Pt(0, 0))
	p.Close()

	got := p.ControlPoints()
	if len(got) != 2 {
		t.Fatalf("ControlPoints() len = %d, want 2", len(got))
	}
	if got[0].Handle2 != Pt(-1, 5) {
		t.Errorf("first Handle2 = %v, want last segment control (-1,5)", got[0].Handle2)
	}
	if got[1].Handle1 != Pt(11, 5) || got[1].Handle2 != Pt(9, -1) {
		t.Errorf("second control point = %+v", got[1])
	}
}

func TestControlPointsSubpaths(t *testing.T) {
	p := straightPath(Pt(0, 0), Pt(10, 0), Pt(10, 10))
	p.Append(straightPath(Pt(20, 0), Pt(30, 0), Pt(30, 10), Pt(20, 10)))
	if n := p.NumControlPoints(); n != 7 {
		t.Errorf("NumControlPoints() = %d, want 7", n)
	}
	if n := len(p.ControlPoints()); n != 7 {
		t.Errorf("len(ControlPoints()) = %d, want 7", n)
	}
}

func TestSetControlPointMovesAliases(t *testing.T) {
	p := straightPath(Pt(0, 0), Pt(10, 0), Pt(10, 10))
	cp := p.ControlPoints()[0].Translate(Pt(5, 5))
	p.SetControlPoint(0, cp)

	if got := p.Elements()[0].(MoveTo).Point; got != Pt(5, 5) {
		t.Errorf("MoveTo = %v, want (5,5)", got)
	}
	segs := p.Segments()
	if got := segs[len(segs)-1].End; got != Pt(5, 5) {
		t.Errorf("closing segment end = %v, want (5,5)", got)
	}
	if got := p.ControlPoints(); len(got) != 3 || got[0].Anchor != Pt(5, 5) {
		t.Errorf("ControlPoints() after move = %+v", got)
	}
}

func TestSetControlPointOutOfRange(t *testing.T) {
	p := straightPath(Pt(0, 0), Pt(10, 0), Pt(10, 10))
	before := p.Clone()
	p.SetControlPoint(42, ControlPoint{})
	p.SetControlPoint(-1, ControlPoint{})
	if p.Bounds() != before.Bounds() {
		t.Error("out of range SetControlPoint changed the path")
	}
}

func TestSegmentControlIndex(t *testing.T) {
	p := straightPath(Pt(0, 0), Pt(10, 0), Pt(10, 10))
	for seg := 0; seg < 3; seg++ {
		if got := p.SegmentControlIndex(seg); got != seg {
			t.Errorf("SegmentControlIndex(%d) = %d, want %d", seg, got, seg)
		}
	}
	if got := p.SegmentControlIndex(9); got != -1 {
		t.Errorf("SegmentControlIndex(9) = %d, want -1", got)
	}
}

func TestInsertAnchorAddsControlPoint(t *testing.T) {
	p := straightPath(Pt(0, 0), Pt(100, 0), Pt(100, 50), Pt(0, 50))
	before := p.ControlPoints()

	q := p.InsertAnchor(0, Pt(40, 0))
	after := q.ControlPoints()
	if len(after) != len(before)+1 {
		t.Fatalf("control points = %d, want %d", len(after), len(before)+1)
	}
	if after[1].Anchor != Pt(40, 0) {
		t.Errorf("inserted anchor = %v, want (40,0)", after[1].Anchor)
	}
	for i, j := 0, 0; i < len(after); i++ {
		if i == 1 {
			continue
		}
		if after[i].Anchor != before[j].Anchor {
			t.Errorf("anchor %d = %v, want %v", i, after[i].Anchor, before[j].Anchor)
		}
		j++
	}
}

func TestRemoveControlPoint(t *testing.T) {
	square := func() *Path {
		return straightPath(Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10))
	}
	tests := []struct {
		name  string
		index int
		want  []Point
	}{
		{"first", 0, []Point{Pt(10, 0), Pt(10, 10), Pt(0, 10)}},
		{"middle", 2, []Point{Pt(0, 0), Pt(10, 0), Pt(0, 10)}},
		{"last", 3, []Point{Pt(0, 0), Pt(10, 0), Pt(10, 10)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := square()
			got := p.RemoveControlPoint(tt.index).ControlPoints()
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i, w := range tt.want {
				if got[i].Anchor != w {
					t.Errorf("anchor %d = %v, want %v", i, got[i].Anchor, w)
				}
			}
			if p.NumControlPoints() != 4 {
				t.Error("RemoveControlPoint modified the receiver")
			}
		})
	}
}

func TestRemoveControlPointOpenEnd(t *testing.T) {
	p := NewPath()
	p.MoveTo(Pt(0, 0))
	p.LineTo(Pt(10, 0))
	p.LineTo(Pt(20, 0))

	got := p.RemoveControlPoint(2).ControlPoints()
	if len(got) != 2 || got[1].Anchor != Pt(10, 0) {
		t.Errorf("ControlPoints() = %+v, want anchors (0,0) (10,0)", got)
	}
}
