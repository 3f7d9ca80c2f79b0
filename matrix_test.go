package drafter

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func nearPt(a, b Point) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

func TestMatrixApply(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"translate", Translate(10, -5), Pt(3, 4), Pt(13, -1)},
		{"zero translate", Translate(0, 0), Pt(3, 4), Pt(3, 4)},
		{"grow right", ScaleAbout(Pt(10, 10), 2, 1), Pt(110, 60), Pt(210, 60)},
		{"grow up from bottom", ScaleAbout(Pt(0, 60), 1, 2), Pt(5, 10), Pt(5, -40)},
		{"flip x", ScaleAbout(Pt(50, 0), -1, 1), Pt(60, 7), Pt(40, 7)},
		{"flip y", ScaleAbout(Pt(0, 20), 1, -1), Pt(3, 25), Pt(3, 15)},
		{"half turn", RotateAbout(Pt(5, 5), math.Pi), Pt(6, 5), Pt(4, 5)},
		{"quarter turn is clockwise", RotateAbout(Pt(0, 0), math.Pi/2), Pt(1, 0), Pt(0, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Apply(tt.in); !nearPt(got, tt.want) {
				t.Errorf("Apply(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrixKeepsOrigin(t *testing.T) {
	origin := Pt(37, -12)
	for _, m := range []Matrix{
		ScaleAbout(origin, 3, 0.5),
		ScaleAbout(origin, -1, -1),
		RotateAbout(origin, 0.001),
		RotateAbout(origin, -2.5),
	} {
		if got := m.Apply(origin); !nearPt(got, origin) {
			t.Errorf("%+v moved the origin to %v", m, got)
		}
	}
}

func TestRotateAboutKeepsDistance(t *testing.T) {
	mid := Pt(60, 35)
	p := Pt(110, 60)
	want := p.Sub(mid).Length()
	for _, a := range []float64{0.2, 1, -math.Pi / 3, math.Pi} {
		if got := RotateAbout(mid, a).Apply(p).Sub(mid).Length(); !near(got, want) {
			t.Errorf("angle %v: distance %v, want %v", a, got, want)
		}
	}
}
