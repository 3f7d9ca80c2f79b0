// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shape

import "github.com/gogpu/drafter"

// Dot identifies one point of one control point picked in edit mode.
type Dot struct {
	Index int
	Part  drafter.Part
}

var noDot = Dot{Index: -1}

// Valid reports whether the dot refers to a control point.
func (d Dot) Valid() bool {
	return d.Index >= 0
}

// Editing reports whether the curve is in edit mode.
func (c *Curve) Editing() bool {
	return c.edit
}

// BeginEdit enters edit mode and builds the control points from the path.
func (c *Curve) BeginEdit() {
	c.edit = true
	c.dot = noDot
	c.points = c.Path.ControlPoints()
}

// EndEdit leaves edit mode and drops the control points.
func (c *Curve) EndEdit() {
	c.edit = false
	c.dot = noDot
	c.points = nil
}

// Points returns the control points shown in edit mode, nil otherwise.
func (c *Curve) Points() []drafter.ControlPoint {
	return c.points
}

// SelectedDot returns the dot picked by the last SelectAt.
func (c *Curve) SelectedDot() Dot {
	return c.dot
}

func (c *Curve) refresh() {
	if c.edit {
		c.points = c.Path.ControlPoints()
		if c.dot.Index >= len(c.points) {
			c.dot = noDot
		}
	}
}

// PickDot returns the dot within radius of pos. Anchors are tested before
// handles so an anchor wins over a handle lying on top of it.
func (c *Curve) PickDot(pos drafter.Point, radius float64) (Dot, bool) {
	cps := c.Path.ControlPoints()
	for i, cp := range cps {
		if pos.Near(cp.Anchor, radius) {
			return Dot{Index: i, Part: drafter.PartAnchor}, true
		}
	}
	for i, cp := range cps {
		if pos.Near(cp.Handle1, radius) {
			return Dot{Index: i, Part: drafter.PartHandle1}, true
		}
		if pos.Near(cp.Handle2, radius) {
			return Dot{Index: i, Part: drafter.PartHandle2}, true
		}
	}
	return noDot, false
}

// InsertionSegment returns the segment a click at pos would split. The
// path rectangle padded by pad must contain pos first.
func (c *Curve) InsertionSegment(pos drafter.Point, pad float64) (drafter.Segment, bool) {
	if c.Path.IsEmpty() || !c.Bounds().Inset(pad).Contains(pos) {
		return drafter.Segment{}, false
	}
	return c.Path.FindSegment(pos, pad)
}

// InsertAnchor splits segment seg at pos and returns the index of the new
// control point.
func (c *Curve) InsertAnchor(seg int, pos drafter.Point) int {
	idx := c.Path.SegmentControlIndex(seg)
	c.Path = c.Path.InsertAnchor(seg, pos)
	c.refresh()
	return idx + 1
}

// SelectAt handles a pointer down in edit mode: it picks the dot under
// pos, or inserts an anchor when pos lies on a segment. It reports whether
// a dot ended up selected.
func (c *Curve) SelectAt(pos drafter.Point, radius, pad float64) bool {
	if d, ok := c.PickDot(pos, radius); ok {
		c.dot = d
		return true
	}
	if seg, ok := c.InsertionSegment(pos, pad); ok {
		idx := c.InsertAnchor(seg.Index, pos)
		c.dot = Dot{Index: idx, Part: drafter.PartAnchor}
		drafter.Logger().Debug("anchor inserted", "curve", c.Name, "segment", seg.Index, "index", idx)
		return true
	}
	c.dot = noDot
	return false
}

// DotAnchor returns the anchor of the control point owning the selected
// dot.
func (c *Curve) DotAnchor() (drafter.Point, bool) {
	cps := c.Path.ControlPoints()
	if !c.dot.Valid() || c.dot.Index >= len(cps) {
		return drafter.Point{}, false
	}
	return cps[c.dot.Index].Anchor, true
}

// DragDot moves the selected dot to pos. An anchor carries its handles
// along unless anchorOnly is set. A handle mirrors the opposite handle
// about the anchor unless independent is set.
func (c *Curve) DragDot(pos drafter.Point, independent, anchorOnly bool) {
	cps := c.Path.ControlPoints()
	i := c.dot.Index
	if !c.dot.Valid() || i >= len(cps) {
		return
	}
	cp := cps[i]
	switch c.dot.Part {
	case drafter.PartAnchor:
		if anchorOnly {
			cp.Anchor = pos
		} else {
			cp = cp.Translate(pos.Sub(cp.Anchor))
		}
	case drafter.PartHandle1:
		cp.Handle1 = pos
		if !independent {
			cp.Handle2 = pos.Mirror(cp.Anchor)
		}
	case drafter.PartHandle2:
		cp.Handle2 = pos
		if !independent {
			cp.Handle1 = pos.Mirror(cp.Anchor)
		}
	}
	c.Path.SetControlPoint(i, cp)
	c.refresh()
}

// RemoveSelectedPoint deletes the control point owning the selected dot.
// At least two control points always remain.
func (c *Curve) RemoveSelectedPoint() error {
	if !c.dot.Valid() {
		return drafter.ErrNoSelection
	}
	if c.Path.NumControlPoints() <= 2 {
		return drafter.ErrNotApplicable
	}
	c.Path = c.Path.RemoveControlPoint(c.dot.Index)
	c.dot = noDot
	c.refresh()
	return nil
}
