// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tool

import (
	"math"

	"github.com/gogpu/drafter"
)

// line draws a single straight segment from a to b.
func line(p *drafter.Path, a, b drafter.Point) {
	p.MoveTo(a)
	p.LineTo(b)
}

// straight draws a closed polyline through pts.
func straight(p *drafter.Path, pts []drafter.Point) {
	if len(pts) == 0 {
		return
	}
	p.MoveTo(pts[0])
	for i := range pts {
		p.LineTo(pts[(i+1)%len(pts)])
	}
}

// doubled draws a closed polyline through pts where every vertex appears
// twice, giving each corner a pair of control points that corner rounding
// pulls apart.
func doubled(p *drafter.Path, pts []drafter.Point) {
	if len(pts) == 0 {
		return
	}
	p.MoveTo(pts[0])
	for i, pt := range pts {
		p.LineTo(pt)
		p.LineTo(pts[(i+1)%len(pts)])
	}
}

func appendRect(p *drafter.Path, r drafter.Rect) {
	p.MoveTo(r.Min)
	p.LineTo(drafter.Pt(r.Max.X, r.Min.Y))
	p.LineTo(r.Max)
	p.LineTo(drafter.Pt(r.Min.X, r.Max.Y))
	p.Close()
}

// polygon returns the vertices of a regular polygon whose radius is half
// the smaller drag extent. The polygon grows from a in the drag direction
// and its first vertex points away from the drag.
func polygon(a, b drafter.Point, sides int, step float64) []drafter.Point {
	w, h := b.X-a.X, b.Y-a.Y
	r := math.Min(math.Abs(w), math.Abs(h)) / 2
	if r <= 0 || sides <= 0 {
		return nil
	}

	cx := a.X - r
	if w > 0 {
		cx = a.X + r
	}
	cy := a.Y - r
	turn90 := -math.Pi / 2
	if h > 0 {
		cy = a.Y + r
		turn90 = math.Pi / 2
	}

	rad := step * math.Pi / 180
	pts := make([]drafter.Point, sides)
	for i := range pts {
		angle := turn90 + float64(i)*rad
		pts[i] = drafter.Pt(cx+math.Cos(angle)*r, cy-math.Sin(angle)*r)
	}
	return pts
}

// rectangle returns the four corners of the rectangle dragged from a to
// b: (minX,maxY), (minX,minY), (maxX,minY), (maxX,maxY). With square set
// the longer side wins and the square grows away from a.
func rectangle(a, b drafter.Point, square bool) []drafter.Point {
	var lo, hi drafter.Point
	switch {
	case a.X < b.X && a.Y > b.Y:
		lo, hi = drafter.Pt(a.X, b.Y), drafter.Pt(b.X, a.Y)
	case a.X < b.X && a.Y < b.Y:
		lo, hi = a, b
	case a.X > b.X && a.Y > b.Y:
		lo, hi = b, a
	default:
		lo, hi = drafter.Pt(b.X, a.Y), drafter.Pt(a.X, b.Y)
	}
	w, h := hi.X-lo.X, hi.Y-lo.Y

	if square {
		side := math.Max(math.Abs(w), math.Abs(h))
		w, h = side, side
		switch {
		case a.X < b.X && a.Y > b.Y:
			lo.Y = hi.Y - h
		case a.X > b.X && a.Y < b.Y:
			lo.X = hi.X - w
		case a.X > b.X && a.Y > b.Y:
			lo.X = hi.X - w
			lo.Y = hi.Y - h
		}
	}

	return []drafter.Point{
		drafter.Pt(lo.X, lo.Y+h),
		drafter.Pt(lo.X, lo.Y),
		drafter.Pt(lo.X+w, lo.Y),
		drafter.Pt(lo.X+w, lo.Y+h),
	}
}

// arc draws a pie slice centred on a. The radius is the horizontal drag
// extent and half the vertical extent, taken as degrees and reduced
// modulo 360, is the half sweep.
func arc(p *drafter.Path, a, b drafter.Point) {
	r := b.X - a.X
	delta := math.Remainder(math.Abs((b.Y-a.Y)/2), 360) * math.Pi / 180

	p.MoveTo(a)
	p.LineTo(drafter.Pt(a.X+r*math.Cos(-delta), a.Y+r*math.Sin(-delta)))
	p.Arc(a, r, -delta, delta)
	end := p.CurrentPoint()
	p.CubicTo(end, end, a)
}

// oval draws the ellipse inscribed in the rectangle dragged from a to b.
// With circle set the longer side wins and the signs of the extent are
// kept.
func oval(p *drafter.Path, a, b drafter.Point, circle bool) {
	w, h := b.X-a.X, b.Y-a.Y
	if circle {
		side := math.Max(math.Abs(w), math.Abs(h))
		w = math.Copysign(side, w)
		h = math.Copysign(side, h)
	}
	p.Ellipse(drafter.NewRect(a, drafter.Pt(a.X+w, a.Y+h)))
}
