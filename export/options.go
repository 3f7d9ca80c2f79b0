// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package export

import "github.com/gogpu/drafter"

// Option configures an export.
type Option func(*options)

type options struct {
	title      string
	background drafter.Color
	hidden     bool
	compress   bool
}

func defaultOptions() options {
	return options{compress: true}
}

func apply(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithTitle sets the PDF document title.
func WithTitle(title string) Option {
	return func(o *options) {
		o.title = title
	}
}

// WithBackground fills the page with c before drawing curves.
func WithBackground(c drafter.Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithHidden includes hidden curves in PDF output as layers that are off
// by default. PNG output never draws hidden curves.
func WithHidden(on bool) Option {
	return func(o *options) {
		o.hidden = on
	}
}

// WithCompression toggles PDF stream compression. It is on by default.
func WithCompression(on bool) Option {
	return func(o *options) {
		o.compress = on
	}
}
