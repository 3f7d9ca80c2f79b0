// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"github.com/gogpu/drafter"
	"github.com/gogpu/drafter/shape"
	"github.com/gogpu/drafter/snap"
	"github.com/gogpu/drafter/tool"
)

// EventKind is the type of an input event.
type EventKind int

const (
	// EventDown is a primary button press.
	EventDown EventKind = iota
	// EventMove is pointer motion with no button held.
	EventMove
	// EventDrag is pointer motion with the primary button held.
	EventDrag
	// EventUp is a primary button release.
	EventUp
	// EventWheel is a scroll.
	EventWheel
	// EventKey is a key press.
	EventKey
)

// Keys understood by Key besides the tool shortcuts.
const (
	KeyDelete = "delete"
	KeyEscape = "escape"
)

// Event is one input event in canvas coordinates.
type Event struct {
	Kind  EventKind
	Pos   drafter.Point
	Mods  drafter.Mods
	Wheel drafter.Point
	Key   string
}

// Handle dispatches an event to the matching pointer or key method.
func (c *Canvas) Handle(ev Event) {
	switch ev.Kind {
	case EventDown:
		c.PointerDown(ev.Pos, ev.Mods)
	case EventMove:
		c.PointerMove(ev.Pos, ev.Mods)
	case EventDrag:
		c.PointerDrag(ev.Pos, ev.Mods)
	case EventUp:
		c.PointerUp(ev.Pos, ev.Mods)
	case EventWheel:
		c.Wheel(ev.Wheel)
	case EventKey:
		c.Key(ev.Key)
	}
}

func isDrag(t tool.Tool) bool {
	_, ok := t.(tool.Drag)
	return ok
}

// PointerDown starts a gesture: it picks a control point in edit mode,
// grabs a frame handle of the selection, selects with the drag tool or
// starts drawing with any other tool. Alt-down with the drag tool clones
// the curve under the pointer.
func (c *Canvas) PointerDown(pos drafter.Point, mods drafter.Mods) {
	defer c.batch()()
	c.guides = nil
	c.last = pos
	c.moving = false
	c.handle = shape.NoHandle
	c.edgeSet = false

	sel := c.Selected()
	if sel != nil && sel.Editing() {
		c.editDown(sel, pos)
		return
	}
	if sel != nil && !sel.Locked && !c.session.Drawing() {
		if h := sel.HitHandle(c.selectionBounds(), pos, c.cfg.DotSize); h != shape.NoHandle {
			c.grabHandle(sel, h)
			return
		}
	}
	if isDrag(c.tool) {
		c.selectAt(pos, mods.Shift)
		if c.Selected() != nil {
			c.moving = true
			if mods.Alt {
				_ = c.Clone()
			}
		}
		tool.OnDown(c.tool, c.session, pos, mods)
		return
	}
	tool.OnDown(c.tool, c.session, c.snapPointer(pos, mods, c.session.Drawing()), mods)
}

// PointerMove handles hover: the insertion preview in edit mode, and the
// snapped pen preview while drawing.
func (c *Canvas) PointerMove(pos drafter.Point, mods drafter.Mods) {
	defer c.batch()()
	c.guides = nil
	c.last = pos

	if sel := c.Selected(); sel != nil && sel.Editing() {
		c.editHover(sel, pos, mods)
		return
	}
	if isDrag(c.tool) {
		return
	}
	tool.OnMove(c.tool, c.session, c.snapPointer(pos, mods, c.session.Drawing()), mods)
}

// PointerDrag continues a gesture. Guides are recomputed on every frame.
func (c *Canvas) PointerDrag(pos drafter.Point, mods drafter.Mods) {
	defer c.batch()()
	c.guides = nil
	delta := pos.Sub(c.last)
	c.last = pos

	sel := c.Selected()
	switch {
	case sel != nil && sel.Editing():
		c.editDrag(sel, pos, mods)
	case c.handle != shape.NoHandle:
		_ = c.DragHandle(c.handle, pos, delta, mods)
	case isDrag(c.tool):
		if c.moving && sel != nil && !sel.Locked {
			_ = c.DragSelection(delta.X, delta.Y, mods.Ctrl)
			return
		}
		tool.OnDrag(c.tool, c.session, pos, mods)
		c.marquee()
	default:
		tool.OnDrag(c.tool, c.session, c.snapPointer(pos, mods, true), mods)
	}
}

// PointerUp ends a gesture and commits the shape the tool built, if any.
func (c *Canvas) PointerUp(pos drafter.Point, mods drafter.Mods) {
	defer c.batch()()
	c.guides = nil
	c.last = pos
	c.moving = false

	sel := c.Selected()
	if sel != nil {
		sel.FrameAngle = 0
	}
	c.edgeSet = false
	if c.handle != shape.NoHandle {
		c.handle = shape.NoHandle
		return
	}
	if sel != nil && sel.Editing() {
		return
	}
	if isDrag(c.tool) && c.selected == shape.NoID && len(c.multi) > 0 {
		c.selectID(c.multi[0])
	}
	if tool.OnUp(c.tool, c.session) {
		s := c.session
		c.commit(s.Path, s.Filled, s.Rounded, tool.Name(c.tool))
	}
	c.session.EndGesture()
}

// Wheel handles a scroll. The view is not the canvas's concern; scrolling
// only drops the guides of the last gesture.
func (c *Canvas) Wheel(delta drafter.Point) {
	defer c.batch()()
	c.guides = nil
}

// Key handles a key press: tool shortcuts, delete, and escape to leave
// edit mode or drop an unfinished pen path. It reports whether the key
// was used.
func (c *Canvas) Key(key string) bool {
	defer c.batch()()
	c.guides = nil
	switch key {
	case KeyDelete:
		_ = c.Delete()
		return true
	case KeyEscape:
		if sel := c.Selected(); sel != nil && sel.Editing() {
			_ = c.SetEdit(false)
			return true
		}
		if c.session.Drawing() {
			c.session.Reset()
			c.emit(ToolChanged, shape.NoID)
			return true
		}
		return false
	}
	t, ok := tool.ForKey(key, c.cfg)
	if !ok {
		return false
	}
	c.SetTool(t)
	return true
}

// SetTool switches the active tool and drops the selection. While a curve
// is being edited only the drag tool is available.
func (c *Canvas) SetTool(t tool.Tool) {
	defer c.batch()()
	if sel := c.Selected(); sel != nil && sel.Editing() {
		t = tool.Drag{}
	} else {
		c.selectID(shape.NoID)
		c.setMulti(nil)
	}
	c.setTool(t)
}

func (c *Canvas) setTool(t tool.Tool) {
	c.session.Reset()
	c.tool = t
	c.emit(ToolChanged, shape.NoID)
	c.logger().Debug("tool selected", "tool", tool.Name(t))
}

// snapPointer aligns a drawing position with the other curves and the
// points of the shape being drawn. During a gesture, shift constrains the angle of
// line and pen drags instead.
func (c *Canvas) snapPointer(pos drafter.Point, mods drafter.Mods, gesture bool) drafter.Point {
	if gesture && mods.Shift && tool.LocksAngle(c.tool) {
		from := c.session.Start
		if anchor, _, _, ok := c.session.Handles(); ok {
			from = anchor
		}
		pos = drafter.ShiftAngle(from, pos)
		c.guides = append(c.guides, snap.Custom(from, pos))
		return pos
	}
	if !tool.SnapsDrag(c.tool) {
		return pos
	}
	res := c.snapper.Snap(snap.Query{
		Points:      []drafter.Point{pos},
		Rects:       c.others(nil),
		CurvePoints: c.ownPoints(gesture),
		Force:       mods.Ctrl,
	})
	c.guides = append(c.guides, res.Guides()...)
	return res.Apply(pos)
}

// ownPoints returns the points of the shape in progress that the pointer
// may snap to. The pen offers every anchor placed so far; the other tools
// only the start of the gesture, since the rest of their shape follows the
// pointer.
func (c *Canvas) ownPoints(gesture bool) []drafter.Point {
	if _, ok := c.tool.(tool.Pen); ok {
		return c.session.Anchors()
	}
	if gesture {
		return []drafter.Point{c.session.Start}
	}
	return nil
}
