// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"slices"

	"github.com/gogpu/drafter"
	"github.com/gogpu/drafter/shape"
)

// Group merges the multi-selection into one group. The curve that comes
// first in the layer list becomes the base and takes the members of every
// other selected curve; the others leave the top-level list.
func (c *Canvas) Group() error {
	defer c.batch()()
	if len(c.multi) < 2 {
		return c.skip("group", drafter.ErrTooFewCurves)
	}
	ids := slices.Clone(c.multi)
	slices.SortFunc(ids, func(a, b shape.ID) int {
		return c.indexOf(a) - c.indexOf(b)
	})

	base := c.curves[ids[0]]
	for _, id := range ids[1:] {
		cur := c.curves[id]
		for _, m := range cur.Members {
			c.curves[m].Group = base.ID
			base.Members = append(base.Members, m)
		}
		cur.Members = []shape.ID{cur.ID}
		c.order = slices.DeleteFunc(c.order, func(x shape.ID) bool { return x == id })
	}
	base.SetName("group", c.taken)
	c.emit(OrderChanged, base.ID)
	c.emit(StyleChanged, base.ID)

	c.setMulti(nil)
	c.selectID(base.ID)
	c.logger().Debug("curves grouped", "group", base.Name, "members", len(base.Members))
	return nil
}

// Ungroup splits the selected group. Its members return to the top-level
// list right above the base, which gets its previous name back.
func (c *Canvas) Ungroup() error {
	defer c.batch()()
	base := c.Selected()
	if base == nil {
		return c.skip("ungroup", drafter.ErrNoSelection)
	}
	if !base.IsGroup() {
		return c.skip("ungroup", drafter.ErrTooFewCurves)
	}
	members := base.Members[1:]
	for _, m := range members {
		c.curves[m].Group = m
	}
	at := c.indexOf(base.ID) + 1
	c.order = slices.Insert(c.order, at, members...)
	base.Members = []shape.ID{base.ID}
	base.RestoreName(c.taken)
	c.emit(OrderChanged, base.ID)
	c.emit(StyleChanged, base.ID)

	c.setMulti(nil)
	c.logger().Debug("group split", "curve", base.Name, "members", len(members)+1)
	return nil
}
