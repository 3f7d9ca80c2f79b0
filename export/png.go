// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package export

import (
	"fmt"
	"io"
	"math"

	"github.com/gogpu/drafter/render"
)

// PNG rasterises the visible curves of b and writes them to w.
func PNG(w io.Writer, b Board, opts ...Option) error {
	r := Raster(b, opts...)
	if err := r.EncodePNG(w); err != nil {
		return fmt.Errorf("export: png: %w", err)
	}
	return nil
}

// Raster returns a raster holding the visible curves of b in stacking
// order, sized to the board.
func Raster(b Board, opts ...Option) *render.Raster {
	o := apply(opts)
	cfg := b.Config()
	r := render.NewRaster(int(math.Ceil(cfg.Width)), int(math.Ceil(cfg.Height)))
	r.SetBackground(o.background)
	for _, l := range layers(b) {
		if !l.visible {
			continue
		}
		for _, cur := range l.curves {
			r.Update(cur.UID, cur.Path, cur.Style)
		}
	}
	return r
}
