// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import "log/slog"

// Option configures a Canvas during creation.
//
// Example:
//
//	// Headless canvas, nothing drawn
//	c := canvas.New(cfg)
//
//	// Canvas drawing into a raster surface with text support
//	c := canvas.New(cfg, canvas.WithSurface(raster), canvas.WithGlyphs(outliner))
type Option func(*options)

type options struct {
	surface Surface
	glyphs  GlyphProvider
	logger  *slog.Logger
}

func defaultOptions() options {
	return options{}
}

// WithSurface sets the surface that receives curve geometry after every
// change.
func WithSurface(s Surface) Option {
	return func(o *options) {
		o.surface = s
	}
}

// WithGlyphs sets the glyph provider used by the text tool. Without one,
// CommitText reports drafter.ErrNotApplicable.
func WithGlyphs(g GlyphProvider) Option {
	return func(o *options) {
		o.glyphs = g
	}
}

// WithLogger sets a logger for this canvas only. By default the canvas
// logs through drafter.Logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
