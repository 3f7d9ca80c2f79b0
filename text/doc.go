// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package text turns strings into filled vector outlines.
//
// An Outliner walks the glyphs of a parsed OpenType or TrueType font and
// emits their contours as a single drafter.Path, one subpath per glyph
// contour. The path is what the text tool commits as a curve, so text stays
// editable like any other shape once placed.
//
//	o, err := text.Default()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p, err := o.Outline("Hello", 24, drafter.Pt(40, 80))
//
// The origin is the left end of the baseline. Input is normalized to NFC
// before glyph lookup, so decomposed accents outline the same as their
// precomposed forms.
package text
