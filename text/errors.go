// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import (
	"errors"
	"fmt"
)

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrMissingGlyph is returned when the font has no glyph for a rune.
	ErrMissingGlyph = errors.New("text: missing glyph")

	// ErrInvalidSize is returned for a non-positive font size.
	ErrInvalidSize = errors.New("text: invalid size")
)

// GlyphError reports the rune whose outline could not be produced.
type GlyphError struct {
	Rune   rune
	Offset int // byte offset in the normalized string
	Err    error
}

func (e *GlyphError) Error() string {
	return fmt.Sprintf("text: glyph %q at offset %d: %v", e.Rune, e.Offset, e.Err)
}

func (e *GlyphError) Unwrap() error {
	return e.Err
}
