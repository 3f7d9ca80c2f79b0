// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"math"

	"github.com/gogpu/drafter"
	"github.com/gogpu/drafter/shape"
	"github.com/gogpu/drafter/snap"
)

// Rotation nudge applied to curves whose bounds collapsed on the resized
// axis, so that the next resize has an extent to scale.
const degenerateNudge = 0.001

// Largest rotation step taken by one rotate-handle drag frame.
const maxRotateStep = 0.2

// Align is a position along one axis of the board.
type Align int

// Board alignments, left or top first.
const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// transform applies m to every target.
func (c *Canvas) transform(targets []*shape.Curve, m drafter.Matrix) {
	for _, t := range targets {
		t.Transform(m)
		c.changed(GeometryChanged, t.ID)
	}
}

// Move translates the selection.
func (c *Canvas) Move(dx, dy float64) error {
	defer c.batch()()
	ts, err := c.targets()
	if err != nil {
		return c.skip("move", err)
	}
	c.transform(ts, drafter.Translate(dx, dy))
	return nil
}

// DragSelection moves the selection by a pointer delta, snapping its
// bounds onto the other curves. With force the nearest candidate wins
// whatever the distance.
func (c *Canvas) DragSelection(dx, dy float64, force bool) error {
	defer c.batch()()
	ts, err := c.targets()
	if err != nil {
		return c.skip("drag", err)
	}
	d := drafter.Pt(dx, dy)
	pts := shape.Union(ts, true).Points()
	for i := range pts {
		pts[i] = pts[i].Add(d)
	}
	res := c.snapper.Snap(snap.Query{
		Points: pts[:],
		Rects:  c.others(c.roots()),
		Force:  force,
	})
	c.guides = res.Guides()
	d = d.Sub(res.Delta)
	c.transform(ts, drafter.Translate(d.X, d.Y))
	return nil
}

// SetPosition moves the selection so that the centre of its bounds lies
// at value on axis.
func (c *Canvas) SetPosition(axis drafter.Axis, value float64) error {
	defer c.batch()()
	ts, err := c.targets()
	if err != nil {
		return c.skip("position", err)
	}
	mid := shape.Union(ts, true).Mid()
	if axis == drafter.AxisX {
		c.transform(ts, drafter.Translate(value-mid.X, 0))
	} else {
		c.transform(ts, drafter.Translate(0, value-mid.Y))
	}
	return nil
}

// AlignHorizontal moves the selection to the left edge, the centre or the
// right edge of the board.
func (c *Canvas) AlignHorizontal(a Align) error {
	return c.align(drafter.AxisX, a)
}

// AlignVertical moves the selection to the top edge, the centre or the
// bottom edge of the board.
func (c *Canvas) AlignVertical(a Align) error {
	return c.align(drafter.AxisY, a)
}

func (c *Canvas) align(axis drafter.Axis, a Align) error {
	defer c.batch()()
	ts, err := c.targets()
	if err != nil {
		return c.skip("align", err)
	}
	board := drafter.XYWH(0, 0, c.cfg.Width, c.cfg.Height)
	half := shape.Union(ts, true).Size(axis) / 2
	lo, mid, hi := board.Min.X, board.Mid().X, board.Max.X
	if axis == drafter.AxisY {
		lo, mid, hi = board.Min.Y, board.Mid().Y, board.Max.Y
	}
	switch a {
	case AlignStart:
		return c.SetPosition(axis, lo+half)
	case AlignEnd:
		return c.SetPosition(axis, hi-half)
	}
	return c.SetPosition(axis, mid)
}

// Resize scales the selection so that its bounds, stroke excluded, get
// length on axis. anchor is the bounds fraction that stays in place. With
// lockAspect the other axis gets the same factor and the anchor comes from
// handle.
//
// When the bounds have no extent on axis the curves are rotated by a tiny
// angle instead, so the next resize has something to scale, and
// drafter.ErrDegenerateBounds is returned.
func (c *Canvas) Resize(axis drafter.Axis, length float64, anchor drafter.Point, handle shape.Handle, lockAspect bool) error {
	defer c.batch()()
	ts, err := c.targets()
	if err != nil {
		return c.skip("resize", err)
	}
	r := shape.Union(ts, false)
	size := r.Size(axis)
	if size == 0 {
		c.transform(ts, drafter.RotateAbout(r.Mid(), degenerateNudge))
		for _, t := range ts {
			t.Angle = 0
		}
		return c.skip("resize", drafter.ErrDegenerateBounds)
	}

	f := length / size
	sx, sy := f, 1.0
	if axis == drafter.AxisY {
		sx, sy = 1, f
	}
	if lockAspect {
		sx, sy = f, f
		if handle != shape.NoHandle {
			anchor = handle.LockedAnchor(axis, anchor)
		}
	}
	c.transform(ts, drafter.ScaleAbout(r.At(anchor), sx, sy))
	return nil
}

// Rotate turns the selection by delta radians.
func (c *Canvas) Rotate(delta float64) error {
	defer c.batch()()
	ts, err := c.targets()
	if err != nil {
		return c.skip("rotate", err)
	}
	return c.SetRotation(ts[0].Angle + delta)
}

// SetRotation turns the selection about the centre of its bounds, stroke
// excluded, so that its angle becomes angle clamped to [-π, π].
func (c *Canvas) SetRotation(angle float64) error {
	defer c.batch()()
	ts, err := c.targets()
	if err != nil {
		return c.skip("rotate", err)
	}
	a := drafter.ClampAngle(angle)
	mid := shape.Union(ts, false).Mid()
	for _, t := range ts {
		t.Transform(drafter.RotateAbout(mid, a-t.Angle))
		t.Angle = a
		c.changed(GeometryChanged, t.ID)
	}
	return nil
}

// RotateByDrag rotates the selection following the rotate handle. The
// step taken per frame is folded into (-0.2, 0.2) radians.
func (c *Canvas) RotateByDrag(pointer drafter.Point) error {
	defer c.batch()()
	sel := c.Selected()
	if sel == nil {
		return c.skip("rotate", drafter.ErrNoSelection)
	}
	if sel.Locked {
		return c.skip("rotate", drafter.ErrLocked)
	}
	mid := sel.Bounds().Mid()
	rot := math.Atan2(pointer.Y-mid.Y, pointer.X-mid.X)
	dt := rot - sel.FrameAngle
	if math.Abs(dt) > maxRotateStep {
		dt = math.Mod(dt, maxRotateStep)
	}
	err := c.SetRotation(sel.Angle + dt)
	sel.FrameAngle = rot
	return err
}

// Flip mirrors the selection about the centre of its bounds on axis.
func (c *Canvas) Flip(axis drafter.Axis) error {
	defer c.batch()()
	ts, err := c.targets()
	if err != nil {
		return c.skip("flip", err)
	}
	sx, sy := -1.0, 1.0
	if axis == drafter.AxisY {
		sx, sy = 1, -1
	}
	c.transform(ts, drafter.ScaleAbout(shape.Union(ts, true).Mid(), sx, sy))
	return nil
}

// RoundCorner changes the corner rounding of the selected rectangle by a
// pointer delta along axis.
func (c *Canvas) RoundCorner(axis drafter.Axis, delta float64) error {
	defer c.batch()()
	sel, err := c.selectedUnlocked()
	if err != nil {
		return c.skip("round", err)
	}
	if err := sel.RoundCorner(axis, delta); err != nil {
		return c.skip("round", err)
	}
	c.changed(GeometryChanged, sel.ID)
	return nil
}

// DragHandle applies a drag of frame handle h by delta, pos being the
// pointer. Resize handles move the dragged edge with the pointer, snap it
// onto the other curves and resize one or both axes to reach it; shift
// locks the aspect ratio.
func (c *Canvas) DragHandle(h shape.Handle, pos, delta drafter.Point, mods drafter.Mods) error {
	defer c.batch()()
	sel, err := c.selectedUnlocked()
	if err != nil {
		return c.skip("handle", err)
	}
	switch {
	case h.IsResize():
		ts, err := c.targets()
		if err != nil {
			return c.skip("handle", err)
		}
		plain := shape.Union(ts, false)
		if !c.edgeSet {
			c.edge, c.edgeSet = handleAt(plain, h), true
		}
		c.edge = c.edge.Add(delta)
		stroke := handleAt(c.selectionBounds(), h).Sub(handleAt(plain, h))
		res := c.snapper.Snap(snap.Query{
			Points: []drafter.Point{c.edge.Add(stroke)},
			Rects:  c.others(c.roots()),
			Force:  mods.Ctrl,
		})
		c.guides = res.Guides()
		edge := c.edge.Sub(res.Delta)
		for _, step := range h.ResizeSteps() {
			ts, err := c.targets()
			if err != nil {
				return c.skip("handle", err)
			}
			if err := c.Resize(step.Axis, reach(shape.Union(ts, false), step, edge), step.Anchor, h, mods.Shift); err != nil {
				return err
			}
		}
		return nil
	case h == shape.HandleRotate:
		return c.RotateByDrag(pos)
	case h == shape.HandleGradientStart, h == shape.HandleGradientEnd:
		err = sel.MoveGradientDirection(int(h-shape.HandleGradientStart), delta)
	case h >= shape.HandleStop0 && h <= shape.HandleStop2:
		err = sel.MoveGradientStop(int(h-shape.HandleStop0), delta.X)
	case h == shape.HandleRoundX:
		return c.RoundCorner(drafter.AxisX, -delta.X)
	case h == shape.HandleRoundY:
		return c.RoundCorner(drafter.AxisY, delta.Y)
	default:
		return nil
	}
	if err != nil {
		return c.skip("handle", err)
	}
	c.changed(StyleChanged, sel.ID)
	return nil
}

// handleAt returns where handle h sits on r.
func handleAt(r drafter.Rect, h shape.Handle) drafter.Point {
	f := h.Fraction()
	return drafter.Pt(r.Min.X+r.Width()*f.X, r.Min.Y+r.Height()*f.Y)
}

// reach returns the length r needs along the step's axis for its moving
// side to end at edge.
func reach(r drafter.Rect, step shape.ResizeStep, edge drafter.Point) float64 {
	lo, hi, at := r.Min.X, r.Max.X, edge.X
	if step.Axis == drafter.AxisY {
		lo, hi, at = r.Min.Y, r.Max.Y, edge.Y
	}
	if step.Sign > 0 {
		return at - lo
	}
	return hi - at
}

func (c *Canvas) selectedUnlocked() (*shape.Curve, error) {
	sel := c.Selected()
	switch {
	case sel == nil:
		return nil, drafter.ErrNoSelection
	case sel.Locked:
		return nil, drafter.ErrLocked
	}
	return sel, nil
}
