// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"slices"
	"strconv"

	"github.com/gogpu/drafter/shape"
)

// ChangeKind classifies a Change.
type ChangeKind int

const (
	// CurveAdded reports a committed, pasted or cloned curve.
	CurveAdded ChangeKind = iota
	// CurveRemoved reports a deleted curve.
	CurveRemoved
	// GeometryChanged reports a path mutation.
	GeometryChanged
	// StyleChanged reports a style, lock or visibility mutation.
	StyleChanged
	// SelectionChanged reports a new selected curve or multi-selection.
	SelectionChanged
	// OrderChanged reports a change of the top-level curve list.
	OrderChanged
	// ToolChanged reports a tool switch or an edit mode toggle.
	ToolChanged
)

var changeNames = [...]string{
	"curve-added", "curve-removed", "geometry", "style", "selection", "order", "tool",
}

func (k ChangeKind) String() string {
	if k < 0 || int(k) >= len(changeNames) {
		return "ChangeKind(" + strconv.Itoa(int(k)) + ")"
	}
	return changeNames[k]
}

// Change is a notification sent to listeners once a call completes.
type Change struct {
	Kind ChangeKind

	// Curve is the curve concerned, or shape.NoID.
	Curve shape.ID
}

// Subscribe registers fn to be called with every change, in emission
// order.
func (c *Canvas) Subscribe(fn func(Change)) {
	c.listeners = append(c.listeners, fn)
}

// batch defers surface updates and notifications until the outermost
// public call returns:
//
//	defer c.batch()()
func (c *Canvas) batch() func() {
	c.depth++
	return func() {
		c.depth--
		if c.depth == 0 {
			c.flush()
		}
	}
}

// touch marks a curve for a surface update.
func (c *Canvas) touch(id shape.ID) {
	if !slices.Contains(c.dirty, id) {
		c.dirty = append(c.dirty, id)
	}
}

func (c *Canvas) emit(kind ChangeKind, id shape.ID) {
	ch := Change{Kind: kind, Curve: id}
	if !slices.Contains(c.pending, ch) {
		c.pending = append(c.pending, ch)
	}
}

// changed marks a curve dirty and records the change.
func (c *Canvas) changed(kind ChangeKind, id shape.ID) {
	c.touch(id)
	c.emit(kind, id)
}

func (c *Canvas) flush() {
	dirty, cleared, pending := c.dirty, c.cleared, c.pending
	c.dirty, c.cleared, c.pending = nil, nil, nil

	if c.surface != nil {
		for _, uid := range cleared {
			c.surface.Clear(uid)
		}
		for _, id := range dirty {
			cur := c.Curve(id)
			switch {
			case cur == nil:
			case cur.Visible:
				c.surface.Update(cur.UID, cur.Path, cur.Style)
			default:
				c.surface.Clear(cur.UID)
			}
		}
	}
	for _, ch := range pending {
		for _, fn := range c.listeners {
			fn(ch)
		}
	}
}
