// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/gogpu/gg"

	"github.com/gogpu/drafter"
)

// Paint draws p into dc with st. Shadow and blur are ignored; Raster
// applies them.
func Paint(dc *gg.Context, p *drafter.Path, st drafter.Style) error {
	if p == nil || p.IsEmpty() {
		return nil
	}
	defer dc.ClearPath()
	trace(dc, p, drafter.Point{})

	if st.Fill && st.Alpha[1] > 0 {
		if st.Gradient {
			dc.SetFillBrush(gradient(p.TightBounds(), st))
		} else {
			dc.SetColor(withAlpha(st.Colors.Fill, st.Alpha[1]))
		}
		if err := dc.FillPreserve(); err != nil {
			return fmt.Errorf("render: fill: %w", err)
		}
	}
	if st.LineWidth > 0 && st.Alpha[0] > 0 {
		stroke(dc, st)
		dc.SetColor(withAlpha(st.Colors.Stroke, st.Alpha[0]))
		if err := dc.StrokePreserve(); err != nil {
			return fmt.Errorf("render: stroke: %w", err)
		}
	}
	return nil
}

// paintShadow draws p offset by the shadow offsets in the shadow color.
func paintShadow(dc *gg.Context, p *drafter.Path, st drafter.Style) error {
	defer dc.ClearPath()
	trace(dc, p, drafter.Pt(st.Shadow[1], st.Shadow[2]))
	dc.SetColor(st.Colors.Shadow)
	if st.Fill {
		if err := dc.FillPreserve(); err != nil {
			return fmt.Errorf("render: shadow: %w", err)
		}
	}
	if st.LineWidth > 0 {
		stroke(dc, st)
		if err := dc.StrokePreserve(); err != nil {
			return fmt.Errorf("render: shadow: %w", err)
		}
	}
	return nil
}

func trace(dc *gg.Context, p *drafter.Path, off drafter.Point) {
	dc.ClearPath()
	for _, e := range p.Elements() {
		switch e := e.(type) {
		case drafter.MoveTo:
			pt := e.Point.Add(off)
			dc.MoveTo(pt.X, pt.Y)
		case drafter.CubicTo:
			c1, c2, pt := e.Control1.Add(off), e.Control2.Add(off), e.Point.Add(off)
			dc.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		case drafter.Close:
			dc.ClosePath()
		}
	}
}

func stroke(dc *gg.Context, st drafter.Style) {
	dc.SetLineWidth(st.LineWidth)
	dc.SetLineCap(lineCap(st.Cap))
	dc.SetLineJoin(lineJoin(st.Join))
	dc.SetDash(st.DashPattern()...)
}

// gradient builds the fill brush. Direction points are fractions of the
// path bounds and stops are sorted by location.
func gradient(bounds drafter.Rect, st drafter.Style) *gg.LinearGradientBrush {
	start := bounds.At(st.GradientDirection[0])
	end := bounds.At(st.GradientDirection[1])
	g := gg.NewLinearGradientBrush(start.X, start.Y, end.X, end.Y)

	type stop struct {
		at float64
		c  drafter.Color
	}
	stops := make([]stop, 0, len(st.GradientLocation))
	for i, at := range st.GradientLocation {
		stops = append(stops, stop{at, st.Colors.Gradient[i]})
	}
	slices.SortStableFunc(stops, func(a, b stop) int { return cmp.Compare(a.at, b.at) })
	for _, s := range stops {
		g.AddColorStop(s.at, gg.FromColor(withAlpha(s.c, st.Alpha[1])))
	}
	return g
}

// withAlpha scales the alpha of c by a.
func withAlpha(c drafter.Color, a float64) drafter.Color {
	c.A = uint8(float64(c.A)*drafter.Clamp(a, 0, 1) + 0.5)
	return c
}

func lineCap(c drafter.LineCap) gg.LineCap {
	switch c {
	case drafter.CapRound:
		return gg.LineCapRound
	case drafter.CapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}

func lineJoin(j drafter.LineJoin) gg.LineJoin {
	switch j {
	case drafter.JoinRound:
		return gg.LineJoinRound
	case drafter.JoinBevel:
		return gg.LineJoinBevel
	default:
		return gg.LineJoinMiter
	}
}
