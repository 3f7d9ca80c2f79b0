// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package snap computes alignment guides and the correction that snaps
// moving points onto the edges and centres of other curves.
//
// Each axis is handled independently: the candidate coordinate closest to
// a moving point wins as long as it lies strictly within the tolerance.
// A forced query keeps the nearest candidate whatever the distance.
//
//	e := snap.New(cfg)
//	res := e.Snap(snap.Query{Points: []drafter.Point{pos}, Rects: others})
//	pos = res.Apply(pos)
package snap

import (
	"math"

	"github.com/gogpu/drafter"
)

// Engine snaps points against candidate geometry.
type Engine struct {
	// Tolerance is the exclusive distance below which a candidate snaps.
	Tolerance float64

	// ReadoutMin is the smallest guide length that gets a distance
	// readout.
	ReadoutMin float64
}

// New returns an engine using the snapping settings of cfg.
func New(cfg drafter.Config) Engine {
	return Engine{Tolerance: cfg.SnapTolerance, ReadoutMin: cfg.ReadoutMin}
}

// Query describes one snapping request.
type Query struct {
	// Points are the moving points, usually the min/mid/max points of the
	// selection bounds.
	Points []drafter.Point

	// Rects are the bounds of the candidate curves. Each contributes its
	// min, mid and max points.
	Rects []drafter.Rect

	// CurvePoints are extra candidates, such as the anchors of the curve
	// being drawn.
	CurvePoints []drafter.Point

	// Force keeps the nearest candidate on each axis regardless of the
	// tolerance.
	Force bool
}

// Guide is an alignment line between a moving point and the candidate it
// snapped to.
type Guide struct {
	// Axis is the coordinate that was aligned. An AxisX guide is vertical.
	Axis drafter.Axis

	// Position is the aligned coordinate.
	Position float64

	From drafter.Point
	To   drafter.Point

	// Distance is the gap between the aligned points along the guide.
	Distance float64

	// Readout reports whether Distance should be displayed.
	Readout bool

	// Custom marks a free guide, such as the angle line of a shift drag.
	Custom bool
}

// Custom returns a free guide drawn from one point to another.
func Custom(from, to drafter.Point) Guide {
	return Guide{From: from, To: to, Distance: from.Distance(to), Custom: true}
}

// Result is the outcome of a snap query.
type Result struct {
	// Delta is the correction to subtract from the moving points.
	Delta drafter.Point

	X *Guide
	Y *Guide
}

// Snapped reports whether any axis found a candidate.
func (r Result) Snapped() bool {
	return r.X != nil || r.Y != nil
}

// Apply subtracts the correction from p.
func (r Result) Apply(p drafter.Point) drafter.Point {
	return p.Sub(r.Delta)
}

// Guides returns the guides of the result, x first.
func (r Result) Guides() []Guide {
	var g []Guide
	if r.X != nil {
		g = append(g, *r.X)
	}
	if r.Y != nil {
		g = append(g, *r.Y)
	}
	return g
}

type match struct {
	d     float64
	query drafter.Point
	cand  drafter.Point
	found bool
}

// consider records d for the axis when it beats the best so far. Points
// that are already aligned contribute nothing. Ties keep the earlier
// candidate.
func (m *match) consider(d float64, q, c drafter.Point, limit float64) {
	if d == 0 {
		return
	}
	best := limit
	if m.found {
		best = math.Abs(m.d)
	}
	if math.Abs(d) < best {
		*m = match{d: d, query: q, cand: c, found: true}
	}
}

// Candidates returns the points a query snaps against, in search order.
func (q Query) Candidates() []drafter.Point {
	pts := make([]drafter.Point, 0, 3*len(q.Rects)+len(q.CurvePoints))
	for _, r := range q.Rects {
		p := r.Points()
		pts = append(pts, p[:]...)
	}
	return append(pts, q.CurvePoints...)
}

// Snap runs a query.
func (e Engine) Snap(q Query) Result {
	limit := e.Tolerance
	if q.Force {
		limit = math.Inf(1)
	}
	var mx, my match
	cands := q.Candidates()
	for _, p := range q.Points {
		for _, c := range cands {
			mx.consider(p.X-c.X, p, c, limit)
			my.consider(p.Y-c.Y, p, c, limit)
		}
	}

	var res Result
	if mx.found {
		res.Delta.X = mx.d
		from := drafter.Pt(mx.cand.X, mx.query.Y)
		res.X = e.guide(drafter.AxisX, mx.cand.X, from, mx.cand, math.Abs(mx.query.Y-mx.cand.Y), q.Force)
	}
	if my.found {
		res.Delta.Y = my.d
		from := drafter.Pt(my.query.X, my.cand.Y)
		res.Y = e.guide(drafter.AxisY, my.cand.Y, from, my.cand, math.Abs(my.query.X-my.cand.X), q.Force)
	}
	return res
}

func (e Engine) guide(axis drafter.Axis, pos float64, from, to drafter.Point, dist float64, force bool) *Guide {
	return &Guide{
		Axis:     axis,
		Position: pos,
		From:     from,
		To:       to,
		Distance: dist,
		Readout:  force || dist >= e.ReadoutMin,
	}
}
