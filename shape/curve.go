// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package shape defines the editable Curve entity and the operations that
// act on a single curve: affine transforms, control point editing, corner
// rounding and gradient handles.
//
// Curves live in an arena owned by the canvas and refer to each other by
// ID. A standalone curve is its own group; a group base lists every member
// ID, itself first.
package shape

import (
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/gogpu/drafter"
)

// ID is the index of a curve in the canvas arena.
type ID int

// NoID marks the absence of a curve.
const NoID ID = -1

// Curve is the editable unit: one styled path plus its state.
type Curve struct {
	// ID is the arena index of the curve.
	ID ID

	// UID is a stable key used by render surfaces and exporters.
	UID string

	Path  *drafter.Path
	Style drafter.Style

	// Angle is the rotation applied since creation, in [-π, π].
	Angle float64

	// FrameAngle is the pointer angle of the last rotate-handle drag.
	FrameAngle float64

	Locked  bool
	Visible bool
	Name    string

	// Group is the ID of the group base; a standalone curve holds its
	// own ID.
	Group ID

	// Members lists the curves the group base represents, itself first.
	// Members of a standalone curve is [ID].
	Members []ID

	oldName string
	edit    bool
	points  []drafter.ControlPoint
	dot     Dot
}

// New creates a visible standalone curve.
func New(id ID, path *drafter.Path, style drafter.Style) *Curve {
	return &Curve{
		ID:      id,
		UID:     uuid.NewString(),
		Path:    path,
		Style:   style.Clone(),
		Visible: true,
		Group:   id,
		Members: []ID{id},
		dot:     noDot,
	}
}

// Clone returns a copy of c with a fresh UID and the given ID. Group
// membership is reset to standalone.
func (c *Curve) Clone(id ID) *Curve {
	dup := New(id, c.Path.Clone(), c.Style)
	dup.Angle = c.Angle
	dup.Locked = c.Locked
	dup.Name = c.Name
	dup.oldName = c.oldName
	return dup
}

// IsGroup reports whether c is the base of a group with other members.
func (c *Curve) IsGroup() bool {
	return len(c.Members) > 1
}

// Bounds returns the path bounds without stroke.
func (c *Curve) Bounds() drafter.Rect {
	return c.Path.Bounds()
}

// StrokeBounds returns the path bounds grown by half the line width.
func (c *Curve) StrokeBounds() drafter.Rect {
	return c.Path.Bounds().Inset(c.Style.LineWidth / 2)
}

// ControlPoints derives the control points from the path.
func (c *Curve) ControlPoints() []drafter.ControlPoint {
	return c.Path.ControlPoints()
}

// Transform applies m to the path. Cached edit points are re-derived from
// the transformed path, never transformed on their own.
func (c *Curve) Transform(m drafter.Matrix) {
	c.Path = c.Path.Transform(m)
	c.refresh()
}

// Translate moves the curve by d.
func (c *Curve) Translate(d drafter.Point) {
	c.Transform(drafter.Translate(d.X, d.Y))
}

// SetName names the curve base followed by a number that makes it unique
// among taken. The previous name is kept for RestoreName.
func (c *Curve) SetName(base string, taken func(string) bool) {
	c.oldName = c.Name
	for n := 1; ; n++ {
		name := base + " " + strconv.Itoa(n)
		if !taken(name) {
			c.Name = name
			return
		}
	}
}

// RestoreName gives the curve back its previous name, or a fresh name
// with the same base word when the old one has been taken meanwhile.
func (c *Curve) RestoreName(taken func(string) bool) {
	if c.oldName == "" {
		return
	}
	if !taken(c.oldName) {
		c.Name, c.oldName = c.oldName, c.Name
		return
	}
	base, _, _ := strings.Cut(c.oldName, " ")
	c.SetName(base, taken)
}

// BaseName returns the first word of the name, such as "rectangle" for
// "rectangle 3".
func (c *Curve) BaseName() string {
	base, _, _ := strings.Cut(c.Name, " ")
	return base
}

// Union returns the bounds of all curves. Stroke selects whether half the
// line width is included.
func Union(curves []*Curve, stroke bool) drafter.Rect {
	var r drafter.Rect
	for i, c := range curves {
		b := c.Bounds()
		if stroke {
			b = c.StrokeBounds()
		}
		if i == 0 {
			r = b
			continue
		}
		r = r.Union(b)
	}
	return r
}
