// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package tool

import (
	"math"

	"github.com/gogpu/drafter"
)

// OnDown starts a gesture at pos.
func OnDown(t Tool, s *Session, pos drafter.Point, mods drafter.Mods) {
	switch t.(type) {
	case Drag:
		s.Start, s.Fin = pos, pos
		s.Preview = nil
	case Freehand:
		s.Start, s.Fin = pos, pos
		s.Path = drafter.NewPath()
		s.Path.MoveTo(pos)
		s.Filled = false
		s.Done = false
	case Pen:
		penDown(s, pos)
	case Text:
		s.Start = pos
		s.Origin = pos
		s.Placing = true
	default:
		s.Start, s.Fin = pos, pos
		s.Path = drafter.NewPath()
		s.Filled = true
		s.Done = false
		s.Rounded = nil
	}
}

// OnMove handles pointer motion without a button held. Only the pen
// reacts, previewing the segment the next click would add.
func OnMove(t Tool, s *Session, pos drafter.Point, mods drafter.Mods) {
	if _, ok := t.(Pen); ok {
		penPreview(s, pos)
	}
}

// OnDrag handles pointer motion with the button held. Shape tools
// regenerate their whole shape from Start to pos.
func OnDrag(t Tool, s *Session, pos drafter.Point, mods drafter.Mods) {
	s.Fin = pos
	switch t.(type) {
	case Drag:
		s.Preview = drafter.NewPath()
		appendRect(s.Preview, s.Marquee())
	case Pen:
		penDrag(s, pos, mods)
	case Text:
		s.Origin = pos
	default:
		Create(t, s, mods)
	}
}

// OnUp ends a gesture and reports whether the session holds a shape ready
// to be committed.
func OnUp(t Tool, s *Session) bool {
	switch t.(type) {
	case Drag, Text:
		return false
	case Freehand:
		if !s.Done {
			s.Path = nil
		}
	}
	return s.Done && !s.Path.IsEmpty()
}

// Create builds the shape of a shape tool from Start to Fin into the
// session path.
func Create(t Tool, s *Session, mods drafter.Mods) {
	switch t := t.(type) {
	case Freehand:
		freehand(t, s)
		return
	case Drag, Pen, Text:
		return
	}

	s.Path = drafter.NewPath()
	s.Filled = true
	s.Rounded = nil
	switch t := t.(type) {
	case Line:
		line(s.Path, s.Start, s.Fin)
		s.Filled = false
	case Polygon:
		step := t.Step
		if step == 0 && t.Sides > 0 {
			step = 360 / float64(t.Sides)
		}
		straight(s.Path, polygon(s.Start, s.Fin, t.Sides, step))
	case Rectangle:
		doubled(s.Path, rectangle(s.Start, s.Fin, mods.Shift))
		s.Rounded = &drafter.Point{}
	case Arc:
		arc(s.Path, s.Start, s.Fin)
	case Oval:
		oval(s.Path, s.Start, s.Fin, mods.Shift)
	}
	if s.Filled && !s.Path.IsEmpty() && !closed(s.Path) {
		s.Path.Close()
	}
	s.Done = true
}

func freehand(t Freehand, s *Session) {
	if s.Path.IsEmpty() {
		return
	}
	if math.Abs(s.Start.X-s.Fin.X) > t.MinStep || math.Abs(s.Start.Y-s.Fin.Y) > t.MinStep {
		s.Path.LineTo(s.Fin)
		s.Start = s.Fin
		s.Done = true
	}
	s.Filled = false
}

func penDown(s *Session, pos drafter.Point) {
	p := &s.pen
	s.Start, s.Fin = pos, pos
	if p.active && p.segments > 0 {
		switch {
		case pos.Near(p.anchor, s.Radius):
			s.Filled = false
			s.finishPen()
			return
		case pos.Near(p.first, s.Radius):
			s.Path.CubicTo(p.out, p.firstIn, p.first)
			s.Path.Close()
			s.Filled = true
			s.finishPen()
			drafter.Logger().Debug("pen path closed", "segments", p.segments+1)
			return
		}
	}

	if p.active {
		s.Path.CubicTo(p.out, pos, pos)
		p.segments++
	} else {
		s.Path = drafter.NewPath()
		s.Path.MoveTo(pos)
		*p = pen{active: true, first: pos, firstIn: pos}
		s.Filled = true
	}
	p.anchor, p.out, p.in = pos, pos, pos
	s.Preview = nil
}

func (s *Session) finishPen() {
	s.Done = true
	s.Preview = nil
	s.pen.active = false
	s.pen.closing = false
}

func penDrag(s *Session, pos drafter.Point, mods drafter.Mods) {
	p := &s.pen
	if !p.active || s.Done {
		return
	}
	p.out = pos
	if !mods.Alt {
		p.in = pos.Mirror(p.anchor)
	}
	if p.segments == 0 {
		p.firstIn = p.in
		return
	}
	n := s.Path.NumControlPoints()
	cp := s.Path.ControlPoints()[n-1]
	cp.Handle2 = p.in
	s.Path.SetControlPoint(n-1, cp)
}

func penPreview(s *Session, pos drafter.Point) {
	p := &s.pen
	if !p.active {
		return
	}
	s.Preview = drafter.NewPath()
	s.Preview.MoveTo(p.anchor)
	p.closing = p.segments > 0 && pos.Near(p.first, s.Radius)
	if p.closing {
		s.Preview.CubicTo(p.out, p.firstIn, p.first)
		return
	}
	s.Preview.CubicTo(p.out, pos, pos)
}

func closed(p *drafter.Path) bool {
	elems := p.Elements()
	if len(elems) == 0 {
		return false
	}
	_, ok := elems[len(elems)-1].(drafter.Close)
	return ok
}
