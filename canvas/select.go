// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"slices"

	"github.com/gogpu/drafter"
	"github.com/gogpu/drafter/shape"
	"github.com/gogpu/drafter/tool"
)

// selectAt selects the topmost visible curve whose group bounds contain
// pos. Locked curves are picked only when no unlocked one matches. With
// shift a standalone curve is toggled in the multi-selection; clicking a
// member of the multi-selection keeps it.
func (c *Canvas) selectAt(pos drafter.Point, shift bool) {
	hit, locked := shape.NoID, shape.NoID
	for _, id := range c.order {
		cur := c.curves[id]
		if !cur.Visible || !c.GroupBounds(id).Contains(pos) {
			continue
		}
		if cur.Locked {
			locked = id
		} else {
			hit = id
		}
	}
	if hit == shape.NoID {
		hit = locked
	}
	c.selectID(hit)

	cur := c.Selected()
	switch {
	case cur != nil && shift && !cur.IsGroup():
		multi := slices.Clone(c.multi)
		if i := slices.Index(multi, hit); i >= 0 {
			multi = slices.Delete(multi, i, i+1)
			if len(multi) > 0 {
				c.selectID(multi[0])
			}
		} else {
			multi = append(multi, hit)
		}
		c.setMulti(multi)
	case cur != nil && len(c.multi) > 1 && slices.Contains(c.multi, hit):
	default:
		c.setMulti(nil)
	}
}

// marquee replaces the multi-selection with every visible top-level curve
// lying inside the drag rectangle.
func (c *Canvas) marquee() {
	r := c.session.Marquee()
	var ids []shape.ID
	for _, id := range c.order {
		if c.curves[id].Visible && r.ContainsRect(c.GroupBounds(id)) {
			ids = append(ids, id)
		}
	}
	c.setMulti(ids)
}

// Select makes the top-level curve id the only selection.
func (c *Canvas) Select(id shape.ID) error {
	defer c.batch()()
	if c.indexOf(id) < 0 {
		return c.skip("select", drafter.ErrNotApplicable)
	}
	return c.selectTop(id)
}

// SelectByIndex selects the top-level curve at position i of the layer
// list, bottom first. Hidden curves cannot be selected.
func (c *Canvas) SelectByIndex(i int) error {
	defer c.batch()()
	if i < 0 || i >= len(c.order) {
		return c.skip("select", drafter.ErrNotApplicable)
	}
	return c.selectTop(c.order[i])
}

func (c *Canvas) selectTop(id shape.ID) error {
	if sel := c.Selected(); sel != nil && sel.Editing() {
		return c.skip("select", drafter.ErrEditing)
	}
	if !c.curves[id].Visible {
		return c.skip("select", drafter.ErrNotApplicable)
	}
	c.selectID(id)
	c.setMulti(nil)
	return nil
}

// Deselect clears the selection.
func (c *Canvas) Deselect() {
	defer c.batch()()
	c.selectID(shape.NoID)
	c.setMulti(nil)
}

// grabHandle starts a frame handle drag. The gradient handle toggles the
// gradient right away.
func (c *Canvas) grabHandle(sel *shape.Curve, h shape.Handle) {
	c.handle = h
	if h == shape.HandleGradient {
		sel.Style.Gradient = !sel.Style.Gradient
		c.changed(StyleChanged, sel.ID)
	}
	c.logger().Debug("handle grabbed", "curve", sel.Name, "handle", h)
}

// commit turns finished tool geometry into a selected top-level curve
// styled from the config, and switches back to the drag tool.
func (c *Canvas) commit(p *drafter.Path, filled bool, rounded *drafter.Point, base string) *shape.Curve {
	st := c.cfg.Style.Clone()
	st.Fill = filled
	st.Rounded = nil
	if rounded != nil {
		r := *rounded
		st.Rounded = &r
	}
	if !filled {
		if st.LineWidth == 0 {
			st.LineWidth = 1
		}
		st.Alpha[1] = 0
		base = "line"
	}
	if st.Alpha[0] == 0 && st.Alpha[1] == 0 {
		st.Alpha[0] = 1
	}

	cur := shape.New(shape.ID(len(c.curves)), p, st)
	cur.SetName(base, c.taken)
	c.curves = append(c.curves, cur)
	c.order = append(c.order, cur.ID)
	c.changed(CurveAdded, cur.ID)
	c.emit(OrderChanged, cur.ID)

	c.setTool(tool.Drag{})
	c.setMulti(nil)
	c.selectID(cur.ID)
	c.logger().Debug("curve committed", "curve", cur.Name, "points", p.NumControlPoints())
	return cur
}
