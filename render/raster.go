// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"errors"
	"image"
	"image/draw"
	"io"
	"math"
	"slices"

	"github.com/gogpu/gg"

	"github.com/gogpu/drafter"
)

// ErrInvalidSize is returned when a raster has no pixels.
var ErrInvalidSize = errors.New("render: invalid size")

type item struct {
	path  *drafter.Path
	style drafter.Style
}

// Raster is a retained surface of curves keyed by UID.
//
// Curves are painted in the order they were first updated unless Reorder
// says otherwise. Raster is not safe for concurrent use.
type Raster struct {
	width, height int
	background    drafter.Color

	order []string
	items map[string]item
}

// NewRaster creates an empty raster of the given pixel size.
func NewRaster(width, height int) *Raster {
	return &Raster{
		width:  width,
		height: height,
		items:  make(map[string]item),
	}
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int { return r.width }

// Height returns the raster height in pixels.
func (r *Raster) Height() int { return r.height }

// SetBackground sets the color the raster is cleared to before drawing.
// The zero Color leaves it transparent.
func (r *Raster) SetBackground(c drafter.Color) {
	r.background = c
}

// Update stores a copy of p and st for uid.
func (r *Raster) Update(uid string, p *drafter.Path, st drafter.Style) {
	if _, ok := r.items[uid]; !ok {
		r.order = append(r.order, uid)
	}
	r.items[uid] = item{path: p.Clone(), style: st.Clone()}
}

// Clear forgets uid.
func (r *Raster) Clear(uid string) {
	if _, ok := r.items[uid]; !ok {
		return
	}
	delete(r.items, uid)
	r.order = slices.DeleteFunc(r.order, func(s string) bool { return s == uid })
}

// Reorder moves the listed UIDs to the top of the stack in the given
// order. Unknown UIDs are ignored; unlisted curves keep their relative
// order below the listed ones.
func (r *Raster) Reorder(uids []string) {
	listed := make(map[string]bool, len(uids))
	top := make([]string, 0, len(uids))
	for _, uid := range uids {
		if _, ok := r.items[uid]; ok && !listed[uid] {
			listed[uid] = true
			top = append(top, uid)
		}
	}
	rest := slices.DeleteFunc(r.order, func(s string) bool { return listed[s] })
	r.order = append(rest, top...)
}

// UIDs returns the stored UIDs, bottom first.
func (r *Raster) UIDs() []string {
	return slices.Clone(r.order)
}

// Len returns the number of stored curves.
func (r *Raster) Len() int {
	return len(r.order)
}

// Draw paints every stored curve into dc, bottom first.
func (r *Raster) Draw(dc *gg.Context) error {
	for _, uid := range r.order {
		it := r.items[uid]
		if err := paintItem(dc, it.path, it.style); err != nil {
			return err
		}
	}
	return nil
}

// Image renders the raster into a new image.
func (r *Raster) Image() (image.Image, error) {
	var img image.Image
	err := r.render(func(dc *gg.Context) error {
		img = dc.Image()
		return nil
	})
	return img, err
}

// EncodePNG renders the raster and writes it to w as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	return r.render(func(dc *gg.Context) error {
		return dc.EncodePNG(w)
	})
}

// SavePNG renders the raster to a PNG file.
func (r *Raster) SavePNG(path string) error {
	return r.render(func(dc *gg.Context) error {
		return dc.SavePNG(path)
	})
}

func (r *Raster) render(out func(dc *gg.Context) error) error {
	if r.width <= 0 || r.height <= 0 {
		return ErrInvalidSize
	}
	dc := gg.NewContext(r.width, r.height)
	defer dc.Close()
	if r.background.A > 0 {
		dc.ClearWithColor(gg.FromColor(r.background))
	}
	if err := r.Draw(dc); err != nil {
		return err
	}
	return out(dc)
}

// paintItem paints one curve, routing shadow and blur through a layer.
func paintItem(dc *gg.Context, p *drafter.Path, st drafter.Style) error {
	if hasShadow(st) {
		off := drafter.Pt(st.Shadow[1], st.Shadow[2])
		area := p.Bounds().Inset(st.LineWidth / 2)
		area = drafter.Rect{Min: area.Min.Add(off), Max: area.Max.Add(off)}
		err := layered(dc, area, st.Shadow[0], func(l *gg.Context) error {
			return paintShadow(l, p, st)
		})
		if err != nil {
			return err
		}
	}
	if st.Blur <= 0 {
		return Paint(dc, p, st)
	}
	return layered(dc, p.Bounds().Inset(st.LineWidth/2), st.Blur, func(l *gg.Context) error {
		return Paint(l, p, st)
	})
}

func hasShadow(st drafter.Style) bool {
	if st.Colors.Shadow.A == 0 || (!st.Fill && st.LineWidth <= 0) {
		return false
	}
	return st.Shadow[0] > 0 || st.Shadow[1] != 0 || st.Shadow[2] != 0
}

// layered runs paint on a scratch context the size of dc, blurs the
// affected area by radius and composites the result onto dc.
func layered(dc *gg.Context, area drafter.Rect, radius float64, paint func(*gg.Context) error) error {
	layer := gg.NewContext(dc.Width(), dc.Height())
	defer layer.Close()
	if err := paint(layer); err != nil {
		return err
	}
	img := toRGBA(layer.Image())
	blur(img, pixelRect(area.Inset(float64(blurSpread(radius)))), radius)
	dc.DrawImage(gg.ImageBufFromImage(img), 0, 0)
	return nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	out := image.NewRGBA(img.Bounds())
	draw.Draw(out, out.Bounds(), img, img.Bounds().Min, draw.Src)
	return out
}

func pixelRect(r drafter.Rect) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.Min.X)), int(math.Floor(r.Min.Y)),
		int(math.Ceil(r.Max.X)), int(math.Ceil(r.Max.Y)),
	)
}
