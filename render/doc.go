// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render rasterises drafter curves with gg.
//
// Raster is the surface a canvas pushes its curves to. It keeps the latest
// path and style for every curve UID and paints them, bottom first, into a
// gg.Context on demand:
//
//	r := render.NewRaster(800, 600)
//	c := canvas.New(cfg, canvas.WithSurface(r))
//	// ... drive the canvas ...
//	if err := r.SavePNG("board.png"); err != nil {
//	    log.Fatal(err)
//	}
//
// Paint draws a single curve and can be used with any gg.Context.
//
// # Effects
//
// Curves with a shadow or a blur radius are painted into a scratch layer,
// blurred with a separable Gaussian kernel and composited back. Everything
// else is drawn straight into the target context.
package render
