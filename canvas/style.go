// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import "github.com/gogpu/drafter"

// ColorRole selects one of the colors of a style.
type ColorRole int

// Color roles.
const (
	ColorStroke ColorRole = iota
	ColorFill
	ColorShadow
	ColorGradient0
	ColorGradient1
	ColorGradient2
)

// restyle applies fn to the style of every unlocked selected curve.
func (c *Canvas) restyle(op string, fn func(*drafter.Style)) error {
	defer c.batch()()
	ts, err := c.targets()
	if err != nil {
		return c.skip(op, err)
	}
	for _, t := range ts {
		fn(&t.Style)
		c.changed(StyleChanged, t.ID)
	}
	return nil
}

// SetLineWidth sets the stroke width of the selection.
func (c *Canvas) SetLineWidth(w float64) error {
	if w < 0 {
		return c.skip("line width", drafter.ErrNotApplicable)
	}
	return c.restyle("line width", func(s *drafter.Style) { s.LineWidth = w })
}

// SetCap sets the line cap of the selection.
func (c *Canvas) SetCap(lc drafter.LineCap) error {
	return c.restyle("cap", func(s *drafter.Style) { s.Cap = lc })
}

// SetJoin sets the line join of the selection.
func (c *Canvas) SetJoin(lj drafter.LineJoin) error {
	return c.restyle("join", func(s *drafter.Style) { s.Join = lj })
}

// SetFill turns the fill of the selection on or off.
func (c *Canvas) SetFill(on bool) error {
	return c.restyle("fill", func(s *drafter.Style) { s.Fill = on })
}

// SetDash sets entry i of the dash pattern of the selection.
func (c *Canvas) SetDash(i int, v float64) error {
	if i < 0 || i >= 4 || v < 0 {
		return c.skip("dash", drafter.ErrNotApplicable)
	}
	return c.restyle("dash", func(s *drafter.Style) { s.Dash[i] = v })
}

// SetAlpha sets the stroke (0) or fill (1) opacity of the selection,
// clamped to [0,1].
func (c *Canvas) SetAlpha(i int, v float64) error {
	if i < 0 || i >= 2 {
		return c.skip("alpha", drafter.ErrNotApplicable)
	}
	v = drafter.Clamp(v, 0, 1)
	return c.restyle("alpha", func(s *drafter.Style) { s.Alpha[i] = v })
}

// SetShadow sets the shadow radius (0) or offset (1, 2) of the selection.
func (c *Canvas) SetShadow(i int, v float64) error {
	if i < 0 || i >= 3 {
		return c.skip("shadow", drafter.ErrNotApplicable)
	}
	return c.restyle("shadow", func(s *drafter.Style) { s.Shadow[i] = v })
}

// SetColor sets one color of the selection.
func (c *Canvas) SetColor(role ColorRole, col drafter.Color) error {
	if role < ColorStroke || role > ColorGradient2 {
		return c.skip("color", drafter.ErrNotApplicable)
	}
	return c.restyle("color", func(s *drafter.Style) {
		switch role {
		case ColorStroke:
			s.Colors.Stroke = col
		case ColorFill:
			s.Colors.Fill = col
		case ColorShadow:
			s.Colors.Shadow = col
		default:
			s.Colors.Gradient[role-ColorGradient0] = col
		}
	})
}

// SetGradient turns the gradient fill of the selection on or off.
func (c *Canvas) SetGradient(on bool) error {
	return c.restyle("gradient", func(s *drafter.Style) { s.Gradient = on })
}

// SetGradientDirection sets the gradient start (0) or end (1) of the
// selection as a fraction of its bounds, clamped to [0,1].
func (c *Canvas) SetGradientDirection(i int, p drafter.Point) error {
	if i < 0 || i >= 2 {
		return c.skip("gradient direction", drafter.ErrNotApplicable)
	}
	p = drafter.Pt(drafter.Clamp(p.X, 0, 1), drafter.Clamp(p.Y, 0, 1))
	return c.restyle("gradient direction", func(s *drafter.Style) { s.GradientDirection[i] = p })
}

// SetGradientLocation sets the offset of gradient stop i of the selection,
// clamped to [0,1].
func (c *Canvas) SetGradientLocation(i int, v float64) error {
	if i < 0 || i >= 3 {
		return c.skip("gradient location", drafter.ErrNotApplicable)
	}
	v = drafter.Clamp(v, 0, 1)
	return c.restyle("gradient location", func(s *drafter.Style) { s.GradientLocation[i] = v })
}

// SetBlur sets the blur radius of the selection.
func (c *Canvas) SetBlur(v float64) error {
	if v < 0 {
		return c.skip("blur", drafter.ErrNotApplicable)
	}
	return c.restyle("blur", func(s *drafter.Style) { s.Blur = v })
}
