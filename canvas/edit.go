// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"github.com/gogpu/drafter"
	"github.com/gogpu/drafter/shape"
	"github.com/gogpu/drafter/snap"
	"github.com/gogpu/drafter/tool"
)

// SetEdit enters or leaves control point editing of the selected curve.
// Entering edit mode switches to the drag tool.
func (c *Canvas) SetEdit(on bool) error {
	defer c.batch()()
	sel := c.Selected()
	if sel == nil {
		return c.skip("edit", drafter.ErrNoSelection)
	}
	if on == sel.Editing() {
		return nil
	}
	if on {
		sel.BeginEdit()
		c.setMulti(nil)
		c.setTool(tool.Drag{})
	} else {
		sel.EndEdit()
		c.session.Preview = nil
		c.emit(ToolChanged, sel.ID)
	}
	c.touch(sel.ID)
	c.logger().Debug("edit mode", "curve", sel.Name, "on", on)
	return nil
}

// Editing returns the curve being edited, or nil.
func (c *Canvas) Editing() *shape.Curve {
	if sel := c.Selected(); sel != nil && sel.Editing() {
		return sel
	}
	return nil
}

func (c *Canvas) editDown(sel *shape.Curve, pos drafter.Point) {
	c.session.Start = pos
	n := sel.Path.NumControlPoints()
	sel.SelectAt(pos, c.cfg.DotSize, c.cfg.DotRadius)
	c.session.Preview = nil
	if sel.Path.NumControlPoints() != n {
		c.changed(GeometryChanged, sel.ID)
	}
}

// editDrag moves the picked dot. The position snaps onto the other
// anchors of the curve and the centre of its bounds; shift constrains the
// angle from the owning anchor, or from the down position when the anchor
// itself is dragged.
func (c *Canvas) editDrag(sel *shape.Curve, pos drafter.Point, mods drafter.Mods) {
	dot := sel.SelectedDot()
	if !dot.Valid() {
		return
	}
	from, skip := c.session.Start, dot
	if a, ok := sel.DotAnchor(); ok && dot.Part != drafter.PartAnchor {
		from, skip = a, shape.Dot{Index: -1}
	}
	if mods.Shift {
		pos = drafter.ShiftAngle(from, pos)
		c.guides = append(c.guides, snap.Custom(from, pos))
	} else {
		pos = c.snapEdit(sel, pos, skip, mods.Ctrl)
	}
	sel.DragDot(pos, mods.Cmd, mods.Alt)
	c.changed(GeometryChanged, sel.ID)
}

// editHover previews the anchor a click at pos would insert.
func (c *Canvas) editHover(sel *shape.Curve, pos drafter.Point, mods drafter.Mods) {
	c.session.Preview = nil
	if _, ok := sel.PickDot(pos, c.cfg.DotSize); ok {
		return
	}
	seg, ok := sel.InsertionSegment(pos, c.cfg.DotRadius)
	if !ok {
		return
	}
	pos = c.snapEdit(sel, pos, shape.Dot{Index: -1}, mods.Ctrl)
	c.session.Preview = sel.Path.InsertAnchor(seg.Index, pos)
}

func (c *Canvas) snapEdit(sel *shape.Curve, pos drafter.Point, skip shape.Dot, force bool) drafter.Point {
	pts := []drafter.Point{sel.Bounds().Mid()}
	for i, cp := range sel.ControlPoints() {
		if i != skip.Index {
			pts = append(pts, cp.Anchor)
		}
	}
	res := c.snapper.Snap(snap.Query{
		Points:      []drafter.Point{pos},
		CurvePoints: pts,
		Force:       force,
	})
	c.guides = append(c.guides, res.Guides()...)
	return res.Apply(pos)
}
