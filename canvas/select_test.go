// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/drafter"
	"github.com/gogpu/drafter/shape"
)

func ids(curves []*shape.Curve) []shape.ID {
	out := make([]shape.ID, 0, len(curves))
	for _, c := range curves {
		out = append(out, c.ID)
	}
	return out
}

var shift = drafter.Mods{Shift: true}

func TestSelectTopmost(t *testing.T) {
	c := New(drafter.DefaultConfig())
	a := addRect(c, 0, 0, 100, 100)
	b := addRect(c, 50, 50, 100, 100)

	click(c, drafter.Pt(75, 75), none)
	if c.Selected() != b {
		t.Fatalf("Selected() = %v, want the top curve", c.Selected())
	}

	c.ToggleLock(b.ID)
	click(c, drafter.Pt(75, 75), none)
	if c.Selected() != a {
		t.Errorf("Selected() = %v, want the unlocked curve", c.Selected())
	}
	click(c, drafter.Pt(140, 140), none)
	if c.Selected() != b {
		t.Errorf("Selected() = %v, want the locked curve when nothing else matches", c.Selected())
	}

	c.ToggleVisible(b.ID)
	if c.Selected() != nil {
		t.Error("hiding the selected curve kept it selected")
	}
	click(c, drafter.Pt(140, 140), none)
	if c.Selected() != nil {
		t.Error("hidden curve was selected")
	}
}

func TestMultiSelection(t *testing.T) {
	c := New(drafter.DefaultConfig())
	a := addRect(c, 0, 0, 50, 50)
	b := addRect(c, 100, 0, 50, 50)
	addRect(c, 200, 0, 50, 50)
	c.Deselect()

	click(c, drafter.Pt(25, 25), shift)
	click(c, drafter.Pt(125, 25), shift)
	if got, want := ids(c.MultiSelection()), []shape.ID{a.ID, b.ID}; !slices.Equal(got, want) {
		t.Fatalf("MultiSelection() = %v, want %v", got, want)
	}

	click(c, drafter.Pt(25, 25), none)
	if len(c.MultiSelection()) != 2 || c.Selected() != a {
		t.Errorf("click inside the multi-selection: multi=%v selected=%v", ids(c.MultiSelection()), c.Selected())
	}

	click(c, drafter.Pt(125, 25), shift)
	if got := ids(c.MultiSelection()); !slices.Equal(got, []shape.ID{a.ID}) {
		t.Errorf("shift-click toggled multi to %v, want [%d]", got, a.ID)
	}
	if c.Selected() != a {
		t.Errorf("Selected() = %v, want the remaining curve", c.Selected())
	}

	click(c, drafter.Pt(125, 25), shift)
	click(c, drafter.Pt(400, 400), none)
	if len(c.MultiSelection()) != 0 || c.Selected() != nil {
		t.Error("click on empty board kept the selection")
	}
}

func TestMarquee(t *testing.T) {
	c := New(drafter.DefaultConfig())
	a := addRect(c, 10, 10, 50, 50)
	b := addRect(c, 100, 10, 50, 50)
	addRect(c, 300, 300, 50, 50)
	c.Deselect()

	c.PointerDown(drafter.Pt(0, 0), none)
	c.PointerDrag(drafter.Pt(200, 100), none)
	if c.Session().Preview == nil {
		t.Error("no marquee preview while dragging")
	}
	c.PointerUp(drafter.Pt(200, 100), none)

	if got, want := ids(c.MultiSelection()), []shape.ID{a.ID, b.ID}; !slices.Equal(got, want) {
		t.Errorf("MultiSelection() = %v, want %v", got, want)
	}
	if c.Selected() != a {
		t.Errorf("Selected() = %v, want the first marquee curve", c.Selected())
	}
	if c.Session().Preview != nil {
		t.Error("marquee preview survived the up event")
	}
}

func TestSelectByIndex(t *testing.T) {
	c := New(drafter.DefaultConfig())
	a := addRect(c, 0, 0, 10, 10)
	b := addRect(c, 20, 0, 10, 10)

	if err := c.SelectByIndex(0); err != nil || c.Selected() != a {
		t.Errorf("SelectByIndex(0) = %v, selected %v", err, c.Selected())
	}
	if err := c.SelectByIndex(5); !errors.Is(err, drafter.ErrNotApplicable) {
		t.Errorf("SelectByIndex(5) = %v, want ErrNotApplicable", err)
	}
	c.ToggleVisible(b.ID)
	if err := c.SelectByIndex(1); !errors.Is(err, drafter.ErrNotApplicable) {
		t.Errorf("SelectByIndex on a hidden curve = %v, want ErrNotApplicable", err)
	}

	c.SetEdit(true)
	if err := c.Select(b.ID); !errors.Is(err, drafter.ErrEditing) {
		t.Errorf("Select() while editing = %v, want ErrEditing", err)
	}
}

func TestGroupUngroupRoundTrip(t *testing.T) {
	c := New(drafter.DefaultConfig())
	a := addRect(c, 0, 0, 50, 50)
	b := addRect(c, 100, 0, 50, 50)
	cc := addRect(c, 200, 0, 50, 50)
	c.Deselect()
	for _, p := range []drafter.Point{{X: 25, Y: 25}, {X: 125, Y: 25}, {X: 225, Y: 25}} {
		click(c, p, shift)
	}

	if err := c.Group(); err != nil {
		t.Fatalf("Group() = %v", err)
	}
	if got := ids(c.Curves()); !slices.Equal(got, []shape.ID{a.ID}) {
		t.Fatalf("top level after Group = %v, want [%d]", got, a.ID)
	}
	if got, want := a.Members, []shape.ID{a.ID, b.ID, cc.ID}; !slices.Equal(got, want) {
		t.Errorf("Members = %v, want %v", got, want)
	}
	if a.Name != "group 1" || c.Selected() != a || len(c.MultiSelection()) != 0 {
		t.Errorf("after Group: name %q selected %v multi %v", a.Name, c.Selected(), c.MultiSelection())
	}
	if b.Group != a.ID || cc.Group != a.ID {
		t.Error("members do not point at the base")
	}
	if got, want := c.GroupBounds(a.ID), drafter.XYWH(-0.5, -0.5, 251, 51); !nearRect(got, want) {
		t.Errorf("GroupBounds() = %v, want %v", got, want)
	}

	if err := c.Move(0, 10); err != nil {
		t.Fatalf("Move() = %v", err)
	}
	if b.Bounds().Min.Y != 10 || cc.Bounds().Min.Y != 10 {
		t.Error("moving the group left members behind")
	}

	if err := c.Ungroup(); err != nil {
		t.Fatalf("Ungroup() = %v", err)
	}
	if got, want := ids(c.Curves()), []shape.ID{a.ID, b.ID, cc.ID}; !slices.Equal(got, want) {
		t.Errorf("top level after Ungroup = %v, want %v", got, want)
	}
	if a.Name != "rectangle 1" || len(a.Members) != 1 || b.Group != b.ID {
		t.Errorf("after Ungroup: name %q members %v", a.Name, a.Members)
	}
	if err := c.Ungroup(); !errors.Is(err, drafter.ErrTooFewCurves) {
		t.Errorf("Ungroup() on a plain curve = %v, want ErrTooFewCurves", err)
	}
}

func TestEditMode(t *testing.T) {
	c := New(drafter.DefaultConfig())
	cur := addRect(c, 10, 10, 100, 50)
	before := cur.ControlPoints()
	if err := c.SetEdit(true); err != nil {
		t.Fatalf("SetEdit(true) = %v", err)
	}
	if c.Frame() != nil {
		t.Error("frame handles shown in edit mode")
	}

	c.PointerDown(drafter.Pt(50, 10), none)
	after := cur.ControlPoints()
	if len(after) != len(before)+1 {
		t.Fatalf("control points = %d, want %d", len(after), len(before)+1)
	}
	dot := cur.SelectedDot()
	j := 0
	for i, cp := range after {
		if i == dot.Index {
			continue
		}
		if cp.Anchor != before[j].Anchor {
			t.Errorf("anchor %d = %v, want %v", i, cp.Anchor, before[j].Anchor)
		}
		j++
	}

	c.PointerDrag(drafter.Pt(50, 0), none)
	c.PointerUp(drafter.Pt(50, 0), none)
	if got := cur.ControlPoints()[dot.Index].Anchor; got != drafter.Pt(50, 0) {
		t.Errorf("dragged anchor = %v, want (50,0)", got)
	}

	if err := c.Delete(); err != nil {
		t.Fatalf("Delete() in edit mode = %v", err)
	}
	if n := len(cur.ControlPoints()); n != len(before) {
		t.Errorf("control points after Delete = %d, want %d", n, len(before))
	}
	if c.Curve(cur.ID) == nil {
		t.Fatal("Delete in edit mode removed the curve")
	}

	c.PointerMove(drafter.Pt(80, 10), none)
	if p := c.Session().Preview; p == nil || p.NumControlPoints() != len(before)+1 {
		t.Error("hover on an edge does not preview the insertion")
	}
	c.PointerMove(drafter.Pt(60, 35), none)
	if c.Session().Preview != nil {
		t.Error("hover away from edges kept a preview")
	}

	if err := c.SetEdit(false); err != nil {
		t.Fatalf("SetEdit(false) = %v", err)
	}
	if cur.Editing() {
		t.Error("curve still in edit mode")
	}
}
