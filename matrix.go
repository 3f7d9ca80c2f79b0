package drafter

import "math"

// Matrix is a 2D affine map applied to every point of a path when a curve
// is moved, resized, rotated or flipped:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// Translate moves points by (dx, dy).
func Translate(dx, dy float64) Matrix {
	return Matrix{A: 1, C: dx, E: 1, F: dy}
}

// ScaleAbout scales by (sx, sy) with origin held fixed. A factor of -1
// mirrors across origin on that axis.
func ScaleAbout(origin Point, sx, sy float64) Matrix {
	return Matrix{
		A: sx, C: origin.X * (1 - sx),
		E: sy, F: origin.Y * (1 - sy),
	}
}

// RotateAbout turns points by angle radians around origin. With y growing
// down, positive angles turn clockwise on screen.
func RotateAbout(origin Point, angle float64) Matrix {
	sin, cos := math.Sincos(angle)
	return Matrix{
		A: cos, B: -sin, C: origin.X - cos*origin.X + sin*origin.Y,
		D: sin, E: cos, F: origin.Y - sin*origin.X - cos*origin.Y,
	}
}

// Apply maps p.
func (m Matrix) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}
