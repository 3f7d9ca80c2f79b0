// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package export

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"github.com/jung-kurt/gofpdf"

	"github.com/gogpu/drafter"
)

// PDF writes b as a single-page PDF the size of the board, one point per
// board unit.
func PDF(w io.Writer, b Board, opts ...Option) error {
	o := apply(opts)
	cfg := b.Config()

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: cfg.Width, Ht: cfg.Height},
	})
	pdf.SetCompression(o.compress)
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("drafter", true)
	if o.title != "" {
		pdf.SetTitle(o.title, true)
	}
	pdf.AddPage()

	if o.background.A > 0 {
		setFill(pdf, o.background, 1)
		pdf.Rect(0, 0, cfg.Width, cfg.Height, "F")
	}

	var drawn int
	for _, l := range layers(b) {
		if !l.visible && !o.hidden {
			continue
		}
		id := pdf.AddLayer(l.name, l.visible)
		pdf.BeginLayer(id)
		for _, cur := range l.curves {
			drawCurve(pdf, cur.Path, cur.Style)
			drawn++
		}
		pdf.EndLayer()
	}
	if o.hidden {
		pdf.OpenLayerPane()
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("export: pdf: %w", err)
	}
	drafter.Logger().Debug("pdf encoded", "curves", drawn)
	return nil
}

func drawCurve(pdf *gofpdf.Fpdf, p *drafter.Path, st drafter.Style) {
	if p == nil || p.IsEmpty() {
		return
	}
	if st.Fill && st.Alpha[1] > 0 {
		if st.Gradient {
			fillGradient(pdf, p, st)
		} else {
			setFill(pdf, st.Colors.Fill, st.Alpha[1])
			trace(pdf, p)
			pdf.DrawPath("F")
		}
	}
	if st.LineWidth > 0 && st.Alpha[0] > 0 {
		c := st.Colors.Stroke
		pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
		pdf.SetAlpha(alpha(c, st.Alpha[0]), "Normal")
		pdf.SetLineWidth(st.LineWidth)
		pdf.SetLineCapStyle(st.Cap.String())
		pdf.SetLineJoinStyle(st.Join.String())
		pdf.SetDashPattern(st.DashPattern(), 0)
		trace(pdf, p)
		pdf.DrawPath("D")
	}
	pdf.SetAlpha(1, "Normal")
}

func trace(pdf *gofpdf.Fpdf, p *drafter.Path) {
	for _, e := range p.Elements() {
		switch e := e.(type) {
		case drafter.MoveTo:
			pdf.MoveTo(e.Point.X, e.Point.Y)
		case drafter.CubicTo:
			pdf.CurveBezierCubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case drafter.Close:
			pdf.ClosePath()
		}
	}
}

// fillGradient clips to each subpath and paints a two-color linear
// gradient between the lowest and highest stops.
func fillGradient(pdf *gofpdf.Fpdf, p *drafter.Path, st drafter.Style) {
	lo, hi := gradientEnds(st)
	r := p.TightBounds()
	d := st.GradientDirection
	pdf.SetAlpha(drafter.Clamp(st.Alpha[1], 0, 1), "Normal")
	for _, poly := range polygons(p) {
		pdf.ClipPolygon(poly, false)
		pdf.LinearGradient(r.Min.X, r.Min.Y, r.Width(), r.Height(),
			int(lo.R), int(lo.G), int(lo.B), int(hi.R), int(hi.G), int(hi.B),
			d[0].X, d[0].Y, d[1].X, d[1].Y)
		pdf.ClipEnd()
	}
}

func gradientEnds(st drafter.Style) (lo, hi drafter.Color) {
	idx := []int{0, 1, 2}
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(st.GradientLocation[a], st.GradientLocation[b])
	})
	return st.Colors.Gradient[idx[0]], st.Colors.Gradient[idx[2]]
}

// polygons converts the flattened subpaths of p, dropping any with
// fewer than three points.
func polygons(p *drafter.Path) [][]gofpdf.PointType {
	var out [][]gofpdf.PointType
	for _, line := range p.Flatten() {
		if len(line) < 3 {
			continue
		}
		poly := make([]gofpdf.PointType, len(line))
		for i, q := range line {
			poly[i] = gofpdf.PointType{X: q.X, Y: q.Y}
		}
		out = append(out, poly)
	}
	return out
}

func setFill(pdf *gofpdf.Fpdf, c drafter.Color, a float64) {
	pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
	pdf.SetAlpha(alpha(c, a), "Normal")
}

// alpha combines the color's own alpha with the style opacity.
func alpha(c drafter.Color, a float64) float64 {
	return float64(c.A) / 255 * drafter.Clamp(a, 0, 1)
}
