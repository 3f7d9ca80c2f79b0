// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"slices"

	"github.com/gogpu/drafter"
	"github.com/gogpu/drafter/shape"
)

// SendBackward swaps the selected curve with the one below it.
func (c *Canvas) SendBackward() error {
	return c.restack(-1)
}

// BringForward swaps the selected curve with the one above it.
func (c *Canvas) BringForward() error {
	return c.restack(1)
}

func (c *Canvas) restack(dir int) error {
	defer c.batch()()
	sel, err := c.selectedUnlocked()
	if err != nil {
		return c.skip("restack", err)
	}
	i := c.indexOf(sel.ID)
	j := i + dir
	if i < 0 || j < 0 || j >= len(c.order) {
		return c.skip("restack", drafter.ErrNotApplicable)
	}
	c.order[i], c.order[j] = c.order[j], c.order[i]
	c.emit(OrderChanged, sel.ID)
	return nil
}

// Copy puts a copy of the selected curve and its members on the
// clipboard.
func (c *Canvas) Copy() error {
	defer c.batch()()
	sel := c.Selected()
	if sel == nil {
		return c.skip("copy", drafter.ErrNoSelection)
	}
	if sel.Editing() {
		return c.skip("copy", drafter.ErrEditing)
	}
	c.clipboard = c.clipboard[:0]
	for _, m := range c.Members(sel.ID) {
		c.clipboard = append(c.clipboard, m.Clone(shape.NoID))
	}
	return nil
}

// Paste adds the clipboard curves as a new top-level curve centred at
// at, and selects it. The clipboard is kept for further pastes.
func (c *Canvas) Paste(at drafter.Point) error {
	defer c.batch()()
	if len(c.clipboard) == 0 {
		return c.skip("paste", drafter.ErrNotApplicable)
	}
	if c.Editing() != nil {
		return c.skip("paste", drafter.ErrEditing)
	}
	var base *shape.Curve
	pasted := make([]*shape.Curve, 0, len(c.clipboard))
	for _, tpl := range c.clipboard {
		cur := tpl.Clone(shape.ID(len(c.curves)))
		cur.SetName(tpl.BaseName(), c.taken)
		c.curves = append(c.curves, cur)
		pasted = append(pasted, cur)
		if base == nil {
			base = cur
			continue
		}
		cur.Group = base.ID
		base.Members = append(base.Members, cur.ID)
	}
	d := at.Sub(shape.Union(pasted, true).Mid())
	for _, cur := range pasted {
		cur.Translate(d)
		c.changed(CurveAdded, cur.ID)
	}
	c.order = append(c.order, base.ID)
	c.emit(OrderChanged, base.ID)

	c.setMulti(nil)
	c.selectID(base.ID)
	c.logger().Debug("curve pasted", "curve", base.Name, "members", len(pasted))
	return nil
}

// Clone copies the selected curve and pastes it right on top of itself.
func (c *Canvas) Clone() error {
	defer c.batch()()
	if err := c.Copy(); err != nil {
		return err
	}
	return c.Paste(c.GroupBounds(c.selected).Mid())
}

// Delete removes what the selection designates: the picked control point
// in edit mode while more than two remain, every curve of a
// multi-selection, or the selected curve with its members. Nothing is
// removed while a pen path is being drawn.
func (c *Canvas) Delete() error {
	defer c.batch()()
	if c.session.Drawing() {
		return c.skip("delete", drafter.ErrNotApplicable)
	}
	if len(c.multi) > 1 {
		for _, id := range slices.Clone(c.multi) {
			if !c.curves[id].Locked {
				c.remove(id)
			}
		}
		c.setMulti(nil)
		return nil
	}
	sel, err := c.selectedUnlocked()
	if err != nil {
		return c.skip("delete", err)
	}
	if sel.Editing() && sel.Path.NumControlPoints() > 2 {
		if err := sel.RemoveSelectedPoint(); err != nil {
			return c.skip("delete", err)
		}
		c.changed(GeometryChanged, sel.ID)
		return nil
	}
	c.remove(sel.ID)
	return nil
}

// remove drops a top-level curve and its members from the canvas.
func (c *Canvas) remove(id shape.ID) {
	cur := c.curves[id]
	if cur.Editing() {
		cur.EndEdit()
	}
	for _, m := range cur.Members {
		c.cleared = append(c.cleared, c.curves[m].UID)
		c.curves[m] = nil
		c.emit(CurveRemoved, m)
	}
	c.order = slices.DeleteFunc(c.order, func(x shape.ID) bool { return x == id })
	c.multi = slices.DeleteFunc(c.multi, func(x shape.ID) bool { return x == id })
	c.emit(OrderChanged, id)
	if c.selected == id {
		c.selected = shape.NoID
		c.emit(SelectionChanged, shape.NoID)
	}
	c.logger().Debug("curve removed", "curve", cur.Name)
}

// ToggleLock locks or unlocks the top-level curve id and its members.
func (c *Canvas) ToggleLock(id shape.ID) error {
	defer c.batch()()
	if c.indexOf(id) < 0 {
		return c.skip("lock", drafter.ErrNotApplicable)
	}
	for _, m := range c.Members(id) {
		m.Locked = !m.Locked
		c.emit(StyleChanged, m.ID)
	}
	return nil
}

// ToggleVisible hides or shows the top-level curve id and its members.
// Hiding the selected curve deselects it.
func (c *Canvas) ToggleVisible(id shape.ID) error {
	defer c.batch()()
	if c.Editing() != nil {
		return c.skip("visibility", drafter.ErrEditing)
	}
	if c.indexOf(id) < 0 {
		return c.skip("visibility", drafter.ErrNotApplicable)
	}
	for _, m := range c.Members(id) {
		m.Visible = !m.Visible
		c.changed(StyleChanged, m.ID)
	}
	if !c.curves[id].Visible {
		if c.selected == id {
			c.selectID(shape.NoID)
		}
		c.setMulti(slices.DeleteFunc(slices.Clone(c.multi), func(x shape.ID) bool { return x == id }))
	}
	return nil
}
