// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shape

import "github.com/gogpu/drafter"

// Rectangles are generated with every corner doubled, so control points
// 2k and 2k+1 share a corner. The rounding tables below address those
// points by index; any other generation order breaks them.
var (
	roundLeftX  = []int{0, 3}
	roundRightX = []int{4, 7}
)

var allParts = []drafter.Part{drafter.PartAnchor, drafter.PartHandle1, drafter.PartHandle2}

// RoundCorner moves the corner points of a rectangle curve by delta along
// axis. The rounding fraction changes by delta over the half extent and is
// clamped to [0,1]. Curves that are not rectangles are left untouched.
func (c *Curve) RoundCorner(axis drafter.Axis, delta float64) error {
	rounded := c.Style.Rounded
	if rounded == nil {
		return drafter.ErrNotApplicable
	}
	b := c.Path.Bounds()
	halfW := b.Width() / 2
	halfH := b.Height() / 2
	if c.Path.NumControlPoints() < 8 {
		return drafter.ErrNotApplicable
	}

	if axis == drafter.AxisX {
		if halfW == 0 {
			return drafter.ErrDegenerateBounds
		}
		x := drafter.Clamp(rounded.X-delta/halfW, 0, 1)
		rounded.X = x
		c.moveControls(roundRightX, allParts, drafter.AxisX, b.Max.X-x*halfW)
		c.moveControls(roundLeftX, allParts, drafter.AxisX, b.Min.X+x*halfW)
	} else {
		if halfH == 0 {
			return drafter.ErrDegenerateBounds
		}
		y := drafter.Clamp(rounded.Y+delta/halfH, 0, 1)
		rounded.Y = y
		outgoing := []drafter.Part{drafter.PartAnchor, drafter.PartHandle1}
		incoming := []drafter.Part{drafter.PartAnchor, drafter.PartHandle2}
		bottom := b.Max.Y - y*halfH
		top := b.Min.Y + y*halfH
		c.moveControls([]int{1}, outgoing, drafter.AxisY, bottom)
		c.moveControls([]int{6}, incoming, drafter.AxisY, bottom)
		c.moveControls([]int{2}, incoming, drafter.AxisY, top)
		c.moveControls([]int{5}, outgoing, drafter.AxisY, top)
	}
	c.refresh()
	return nil
}

// moveControls sets one coordinate of the given parts of control points
// indices to v.
func (c *Curve) moveControls(indices []int, parts []drafter.Part, axis drafter.Axis, v float64) {
	cps := c.Path.ControlPoints()
	for _, i := range indices {
		if i >= len(cps) {
			continue
		}
		cp := cps[i]
		for _, part := range parts {
			var pt *drafter.Point
			switch part {
			case drafter.PartAnchor:
				pt = &cp.Anchor
			case drafter.PartHandle1:
				pt = &cp.Handle1
			case drafter.PartHandle2:
				pt = &cp.Handle2
			}
			if axis == drafter.AxisX {
				pt.X = v
			} else {
				pt.Y = v
			}
		}
		c.Path.SetControlPoint(i, cp)
	}
}

// MoveGradientDirection shifts gradient direction point i by a pointer
// delta, expressed as a fraction of the bounds and clamped to [0,1].
func (c *Curve) MoveGradientDirection(i int, delta drafter.Point) error {
	if i < 0 || i >= len(c.Style.GradientDirection) {
		return drafter.ErrNotApplicable
	}
	b := c.Path.Bounds()
	if b.IsEmpty() {
		return drafter.ErrDegenerateBounds
	}
	old := c.Style.GradientDirection[i]
	c.Style.GradientDirection[i] = drafter.Point{
		X: drafter.Clamp(old.X+delta.X/b.Width(), 0, 1),
		Y: drafter.Clamp(old.Y+delta.Y/b.Height(), 0, 1),
	}
	return nil
}

// MoveGradientStop shifts gradient stop i by dx, expressed as a fraction
// of the bounds width and clamped to [0,1].
func (c *Curve) MoveGradientStop(i int, dx float64) error {
	if i < 0 || i >= len(c.Style.GradientLocation) {
		return drafter.ErrNotApplicable
	}
	w := c.Path.Bounds().Width()
	if w == 0 {
		return drafter.ErrDegenerateBounds
	}
	c.Style.GradientLocation[i] = drafter.Clamp(c.Style.GradientLocation[i]+dx/w, 0, 1)
	return nil
}
