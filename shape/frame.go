// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package shape

import "github.com/gogpu/drafter"

// Handle identifies a frame control dot around a selected curve.
type Handle int

// Frame handles. The eight resize handles sit on the bounds corners and
// edge midpoints.
const (
	NoHandle Handle = iota - 1
	HandleTopLeft
	HandleLeft
	HandleBottomLeft
	HandleBottom
	HandleBottomRight
	HandleRight
	HandleTopRight
	HandleTop
	HandleRotate
	HandleGradient
	HandleGradientStart
	HandleGradientEnd
	HandleStop0
	HandleStop1
	HandleStop2
	HandleRoundX
	HandleRoundY
)

var handleNames = [...]string{
	"top-left", "left", "bottom-left", "bottom", "bottom-right", "right",
	"top-right", "top", "rotate", "gradient", "gradient-start",
	"gradient-end", "stop-0", "stop-1", "stop-2", "round-x", "round-y",
}

// String returns the handle name.
func (h Handle) String() string {
	if h < 0 || int(h) >= len(handleNames) {
		return "none"
	}
	return handleNames[h]
}

// resizeFractions holds the position of each resize handle as a fraction
// of the bounds.
var resizeFractions = [8]drafter.Point{
	{X: 0, Y: 0},
	{X: 0, Y: 0.5},
	{X: 0, Y: 1},
	{X: 0.5, Y: 1},
	{X: 1, Y: 1},
	{X: 1, Y: 0.5},
	{X: 1, Y: 0},
	{X: 0.5, Y: 0},
}

// IsResize reports whether h is one of the eight resize handles.
func (h Handle) IsResize() bool {
	return h >= HandleTopLeft && h <= HandleTop
}

// Fraction returns the bounds fraction of a resize handle.
func (h Handle) Fraction() drafter.Point {
	if !h.IsResize() {
		return drafter.Point{}
	}
	return resizeFractions[h]
}

// ResizeStep is one axis of a resize handle drag.
type ResizeStep struct {
	Axis drafter.Axis

	// Anchor is the bounds fraction that stays fixed.
	Anchor drafter.Point

	// Sign is +1 when the pointer delta grows the extent, -1 when it
	// shrinks it.
	Sign float64
}

// ResizeSteps returns the axes a resize handle acts on, in the order they
// are applied. Corner handles resize both axes.
func (h Handle) ResizeSteps() []ResizeStep {
	width := func(f drafter.Point) ResizeStep {
		if f.X == 0 {
			return ResizeStep{Axis: drafter.AxisX, Anchor: drafter.Pt(1, 0), Sign: -1}
		}
		return ResizeStep{Axis: drafter.AxisX, Anchor: drafter.Pt(0, 0), Sign: 1}
	}
	height := func(f drafter.Point) ResizeStep {
		if f.Y == 0 {
			return ResizeStep{Axis: drafter.AxisY, Anchor: drafter.Pt(0, 1), Sign: -1}
		}
		return ResizeStep{Axis: drafter.AxisY, Anchor: drafter.Pt(0, 0), Sign: 1}
	}
	f := h.Fraction()
	switch h {
	case HandleTopLeft, HandleBottomRight:
		return []ResizeStep{height(f), width(f)}
	case HandleBottomLeft, HandleTopRight:
		return []ResizeStep{width(f), height(f)}
	case HandleLeft, HandleRight:
		return []ResizeStep{width(f)}
	case HandleTop, HandleBottom:
		return []ResizeStep{height(f)}
	}
	return nil
}

// LockedAnchor adjusts a resize anchor for aspect-locked scaling so that
// corner handles grow away from the opposite corner.
func (h Handle) LockedAnchor(axis drafter.Axis, anchor drafter.Point) drafter.Point {
	switch {
	case h == HandleTopLeft:
		return drafter.Pt(1, 1)
	case h == HandleBottomLeft:
		return drafter.Pt(1, 0)
	case h == HandleTopRight && axis == drafter.AxisX:
		anchor.Y = 1
	case h == HandleBottomRight && axis == drafter.AxisY:
		anchor.X = 0
	}
	return anchor
}

// Frame returns the position of every frame handle of a curve whose
// selection bounds are r. Handles that do not apply to the curve, such
// as corner rounding on an oval, are omitted.
func (c *Curve) Frame(r drafter.Rect, dotSize float64) map[Handle]drafter.Point {
	off := 2 * dotSize
	frame := make(map[Handle]drafter.Point, 17)
	for i, f := range resizeFractions {
		frame[Handle(i)] = r.At(f)
	}
	frame[HandleRotate] = drafter.Pt(r.Max.X+off, r.Min.Y-off)
	frame[HandleGradient] = drafter.Pt(r.Min.X-off, r.Min.Y-off)
	if c.Style.Gradient {
		frame[HandleGradientStart] = r.At(c.Style.GradientDirection[0])
		frame[HandleGradientEnd] = r.At(c.Style.GradientDirection[1])
		for i, loc := range c.Style.GradientLocation {
			frame[HandleStop0+Handle(i)] = drafter.Pt(r.At(drafter.Pt(loc, 1)).X, r.Max.Y+off)
		}
	}
	if rounded := c.Style.Rounded; rounded != nil {
		frame[HandleRoundX] = drafter.Pt(r.Min.X+rounded.X*r.Width()/2, r.Min.Y-off)
		frame[HandleRoundY] = drafter.Pt(r.Min.X-off, r.Min.Y+rounded.Y*r.Height()/2)
	}
	return frame
}

// HitHandle returns the frame handle within dotSize of pos. Lower numbered
// handles win when several overlap.
func (c *Curve) HitHandle(r drafter.Rect, pos drafter.Point, dotSize float64) Handle {
	frame := c.Frame(r, dotSize)
	for h := HandleTopLeft; h <= HandleRoundY; h++ {
		if p, ok := frame[h]; ok && pos.Near(p, dotSize) {
			return h
		}
	}
	return NoHandle
}
