package drafter

import "math"

// Point represents a 2D point or vector in canvas coordinates.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Angle returns the direction from p to q in radians, in (-π, π].
func (p Point) Angle(q Point) float64 {
	return math.Atan2(q.Y-p.Y, q.X-p.X)
}

// Mirror returns the reflection of p through center.
func (p Point) Mirror(center Point) Point {
	return Point{X: 2*center.X - p.X, Y: 2*center.Y - p.Y}
}

// Near reports whether p lies strictly inside the circle of the given
// radius around center.
func (p Point) Near(center Point, radius float64) bool {
	dx := p.X - center.X
	dy := p.Y - center.Y
	return dx*dx+dy*dy < radius*radius
}

// Clamp limits v to the closed interval [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampAngle limits a rotation angle to [-π, π].
func ClampAngle(a float64) float64 {
	return Clamp(a, -math.Pi, math.Pi)
}

// ShiftAngle constrains end so that the direction from start to end is a
// multiple of 45 degrees, keeping the distance between them. Directions
// that fall exactly on a sector boundary are left unchanged.
func ShiftAngle(start, end Point) Point {
	angle := start.Angle(end)
	sign := 1.0
	if angle <= 0 {
		sign = -1
	}
	angle = math.Abs(angle)
	hyp := start.Distance(end)

	const (
		pi8 = math.Pi / 8
		pi4 = math.Pi / 4
		pi2 = math.Pi / 2
	)

	var snapped float64
	switch {
	case angle < pi8:
		snapped = 0
	case angle > pi8 && angle < pi4+pi8:
		snapped = sign * pi4
	case angle > pi4+pi8 && angle < pi2+pi8:
		snapped = sign * pi2
	case angle > pi2+pi8 && angle < pi2+pi4+pi8:
		snapped = sign * (pi2 + pi4)
	case angle > pi2+pi4+pi8 && angle <= math.Pi:
		snapped = sign * math.Pi
	default:
		return end
	}
	return Point{
		X: start.X + math.Cos(snapped)*hyp,
		Y: start.Y + math.Sin(snapped)*hyp,
	}
}
