package drafter

import (
	"math"

	"honnef.co/go/curve"
)

// flattenTolerance is the maximum distance between a curve and the
// polyline that replaces it.
const flattenTolerance = 0.25

func toCurve(p Point) curve.Point {
	return curve.Pt(p.X, p.Y)
}

func fromCurve(p curve.Point) Point {
	return Point{X: p.X, Y: p.Y}
}

func (s Segment) bez() curve.CubicBez {
	return curve.CubicBez{
		P0: toCurve(s.Start),
		P1: toCurve(s.Control1),
		P2: toCurve(s.Control2),
		P3: toCurve(s.End),
	}
}

// Nearest returns the distance from q to the closest point of the
// segment and the curve parameter of that point.
func (s Segment) Nearest(q Point) (dist, t float64) {
	d2, t := s.bez().Nearest(toCurve(q), 1e-6)
	return math.Sqrt(d2), t
}

// bezPath converts p to a curve.BezPath. A cubic that follows a close
// starts again from the closed subpath's first point.
func (p *Path) bezPath() curve.BezPath {
	bp := make(curve.BezPath, 0, len(p.elements))
	var (
		start  Point
		closed bool
	)
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			bp.MoveTo(toCurve(e.Point))
			start, closed = e.Point, false
		case CubicTo:
			if closed {
				bp.MoveTo(toCurve(start))
				closed = false
			}
			bp.CubicTo(toCurve(e.Control1), toCurve(e.Control2), toCurve(e.Point))
		case Close:
			bp.ClosePath()
			closed = true
		}
	}
	return bp
}

// TightBounds returns the exact extent of the curves of p. Unlike Bounds
// it ignores control points that lie off the curve.
func (p *Path) TightBounds() Rect {
	if len(p.Segments()) == 0 {
		return p.Bounds()
	}
	r := p.bezPath().BoundingBox()
	return Rect{Min: Point{X: r.X0, Y: r.Y0}, Max: Point{X: r.X1, Y: r.Y1}}
}

// Flatten approximates every subpath of p with a polyline. Subpaths with
// fewer than two points are dropped.
func (p *Path) Flatten() [][]Point {
	var (
		out  [][]Point
		poly []Point
	)
	flush := func() {
		if len(poly) > 1 {
			out = append(out, poly)
		}
		poly = nil
	}
	for el := range p.bezPath().Flatten(flattenTolerance) {
		switch el.Kind {
		case curve.MoveToKind:
			flush()
			poly = append(poly, fromCurve(el.P0))
		case curve.LineToKind:
			poly = append(poly, fromCurve(el.P0))
		}
	}
	flush()
	return out
}
