// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tool

import "github.com/gogpu/drafter"

// Session holds the in-progress state of a drawing gesture.
type Session struct {
	// Start is the pointer position of the last down, Fin the latest drag
	// position.
	Start drafter.Point
	Fin   drafter.Point

	// Path is the geometry built so far.
	Path *drafter.Path

	// Preview is transient geometry drawn on top of the canvas: the
	// marquee of the drag tool or the pending segment of the pen.
	Preview *drafter.Path

	// Filled reports whether the committed curve gets a fill.
	Filled bool

	// Done is set once Path holds a shape ready to be committed.
	Done bool

	// Rounded is set by tools whose output supports corner rounding.
	Rounded *drafter.Point

	// Origin is the text origin picked by the text tool.
	Origin  drafter.Point
	Placing bool

	// Radius is the hit radius of pen anchors.
	Radius float64

	pen pen
}

type pen struct {
	active   bool
	closing  bool
	segments int
	first    drafter.Point
	firstIn  drafter.Point
	anchor   drafter.Point
	out      drafter.Point
	in       drafter.Point
}

// NewSession returns an empty session whose pen anchors are hit within
// radius.
func NewSession(radius float64) *Session {
	return &Session{Filled: true, Radius: radius}
}

// Reset discards everything the session holds.
func (s *Session) Reset() {
	*s = Session{Filled: true, Radius: s.Radius}
}

// EndGesture clears the per-gesture state after a pointer up. An open pen
// path survives so the next click can continue it.
func (s *Session) EndGesture() {
	s.Done = false
	s.Filled = true
	s.Rounded = nil
	s.pen.closing = false
	if !s.pen.active {
		s.Path = nil
		s.Preview = nil
	}
}

// Drawing reports whether a pen path is in progress.
func (s *Session) Drawing() bool {
	return s.pen.active
}

// Closing reports whether the pen preview currently ends on the first
// anchor, so that the next click closes the path.
func (s *Session) Closing() bool {
	return s.pen.closing
}

// Handles returns the current pen anchor and its outgoing and incoming
// handles.
func (s *Session) Handles() (anchor, out, in drafter.Point, ok bool) {
	if !s.pen.active {
		return drafter.Point{}, drafter.Point{}, drafter.Point{}, false
	}
	return s.pen.anchor, s.pen.out, s.pen.in, true
}

// Anchors returns the anchors placed so far, the current pen anchor first.
// They are snapping candidates for the next pointer position.
func (s *Session) Anchors() []drafter.Point {
	var pts []drafter.Point
	if s.pen.active {
		pts = append(pts, s.pen.anchor)
	}
	if s.Path.IsEmpty() {
		return pts
	}
	for _, cp := range s.Path.ControlPoints() {
		pts = append(pts, cp.Anchor)
	}
	return pts
}

// Marquee returns the rectangle spanned by the current drag.
func (s *Session) Marquee() drafter.Rect {
	return drafter.NewRect(s.Start, s.Fin)
}
