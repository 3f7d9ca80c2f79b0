// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package tool implements the drawing tools of the editor as a closed set
// of variants and the gesture logic that turns pointer input into paths.
//
// A Tool carries no state of its own. Everything a gesture builds lives in
// a Session owned by the caller, and the package functions OnDown, OnMove,
// OnDrag, OnUp and Create dispatch on the variant:
//
//	s := tool.NewSession(cfg.DotSize)
//	t := tool.Rectangle{}
//	tool.OnDown(t, s, start, drafter.Mods{})
//	tool.OnDrag(t, s, end, drafter.Mods{})
//	if tool.OnUp(t, s) {
//		commit(s.Path)
//	}
package tool

import "github.com/gogpu/drafter"

// Tool is one of the drawing tools. The set of variants is closed.
type Tool interface {
	isTool()
}

// Drag selects, moves and marquee-selects curves.
type Drag struct{}

// Line draws a single straight segment.
type Line struct{}

// Polygon draws a regular polygon with Sides vertices spaced Step degrees
// apart.
type Polygon struct {
	Sides int
	Step  float64
}

// Rectangle draws an axis-aligned rectangle with roundable corners.
type Rectangle struct{}

// Arc draws a pie slice centred on the drag start.
type Arc struct{}

// Oval draws the ellipse inscribed in the drag rectangle.
type Oval struct{}

// Freehand appends a segment whenever the pointer has travelled more than
// MinStep on either axis.
type Freehand struct {
	MinStep float64
}

// Pen places anchors one click at a time and pulls handles by dragging.
type Pen struct{}

// Text picks the origin of a text run.
type Text struct{}

func (Drag) isTool()      {}
func (Line) isTool()      {}
func (Polygon) isTool()   {}
func (Rectangle) isTool() {}
func (Arc) isTool()       {}
func (Oval) isTool()      {}
func (Freehand) isTool()  {}
func (Pen) isTool()       {}
func (Text) isTool()      {}

// Regular polygons offered by the toolbar.
var (
	Triangle = Polygon{Sides: 3, Step: 120}
	Pentagon = Polygon{Sides: 5, Step: 72}
	Hexagon  = Polygon{Sides: 6, Step: 60}
)

// ForKey returns the tool bound to a keyboard shortcut.
func ForKey(key string, cfg drafter.Config) (Tool, bool) {
	switch key {
	case "d":
		return Drag{}, true
	case "l":
		return Line{}, true
	case "t":
		return Triangle, true
	case "r":
		return Rectangle{}, true
	case "p":
		return Pentagon, true
	case "h":
		return Hexagon, true
	case "a":
		return Arc{}, true
	case "o":
		return Oval{}, true
	case "s":
		return Freehand{MinStep: cfg.FreehandStep}, true
	case "c":
		return Pen{}, true
	case "f":
		return Text{}, true
	}
	return nil, false
}

// Name returns the display name of a tool, used as the base name of the
// curves it creates.
func Name(t Tool) string {
	switch t := t.(type) {
	case Drag:
		return "drag"
	case Line:
		return "line"
	case Polygon:
		switch t.Sides {
		case 3:
			return "triangle"
		case 5:
			return "pentagon"
		case 6:
			return "hexagon"
		}
		return "polygon"
	case Rectangle:
		return "rectangle"
	case Arc:
		return "arc"
	case Oval:
		return "oval"
	case Freehand:
		return "freehand"
	case Pen:
		return "curve"
	case Text:
		return "text"
	}
	return "shape"
}

// SnapsDrag reports whether pointer drags of the tool snap to guides.
func SnapsDrag(t Tool) bool {
	switch t.(type) {
	case Line, Rectangle, Arc, Oval, Freehand, Pen:
		return true
	}
	return false
}

// LocksAngle reports whether shift constrains the tool's drag direction to
// multiples of 45 degrees.
func LocksAngle(t Tool) bool {
	switch t.(type) {
	case Line, Pen:
		return true
	}
	return false
}
