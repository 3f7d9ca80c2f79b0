// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package text

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/drafter"
)

// Outliner converts strings to glyph outlines of one font.
//
// Outliner is safe for concurrent use.
type Outliner struct {
	font *sfnt.Font

	mu  sync.Mutex
	buf sfnt.Buffer
}

// New parses font data and returns an Outliner for it.
func New(data []byte) (*Outliner, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("text: parse font: %w", err)
	}
	return &Outliner{font: f}, nil
}

// Default returns an Outliner for the Go Regular font.
func Default() (*Outliner, error) {
	return New(goregular.TTF)
}

// Load reads and parses the font file at path.
func Load(path string) (*Outliner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("text: read font: %w", err)
	}
	return New(data)
}

// Name returns the full font name, or "" if the font does not record one.
func (o *Outliner) Name() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	name, err := o.font.Name(&o.buf, sfnt.NameIDFull)
	if err != nil {
		return ""
	}
	return name
}

// Outline returns the outline of s set at size with its baseline starting
// at origin. Control characters are skipped. Pair kerning is applied when
// the font has a kern table.
func (o *Outliner) Outline(s string, size float64, origin drafter.Point) (*drafter.Path, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	o.mu.Lock()
	defer o.mu.Unlock()

	ppem := fixed.Int26_6(size * 64)
	p := drafter.NewPath()
	pen := origin
	var prev sfnt.GlyphIndex
	for i, r := range norm.NFC.String(s) {
		if unicode.IsControl(r) {
			continue
		}
		gid, err := o.font.GlyphIndex(&o.buf, r)
		if err == nil && gid == 0 {
			err = ErrMissingGlyph
		}
		if err != nil {
			return nil, &GlyphError{Rune: r, Offset: i, Err: err}
		}
		if prev != 0 {
			kern, err := o.font.Kern(&o.buf, prev, gid, ppem, font.HintingNone)
			if err == nil {
				pen.X += unfix(kern)
			} else if !errors.Is(err, sfnt.ErrNotFound) {
				return nil, &GlyphError{Rune: r, Offset: i, Err: err}
			}
		}

		segs, err := o.font.LoadGlyph(&o.buf, gid, ppem, nil)
		if err != nil {
			return nil, &GlyphError{Rune: r, Offset: i, Err: err}
		}
		appendSegments(p, segs, pen)

		adv, err := o.font.GlyphAdvance(&o.buf, gid, ppem, font.HintingNone)
		if err != nil {
			return nil, &GlyphError{Rune: r, Offset: i, Err: err}
		}
		pen.X += unfix(adv)
		prev = gid
	}
	return p, nil
}

// Advance returns the horizontal advance of s at size, kerning included.
func (o *Outliner) Advance(s string, size float64) (float64, error) {
	if size <= 0 {
		return 0, ErrInvalidSize
	}
	o.mu.Lock()
	defer o.mu.Unlock()

	ppem := fixed.Int26_6(size * 64)
	var w float64
	var prev sfnt.GlyphIndex
	for i, r := range norm.NFC.String(s) {
		if unicode.IsControl(r) {
			continue
		}
		gid, err := o.font.GlyphIndex(&o.buf, r)
		if err == nil && gid == 0 {
			err = ErrMissingGlyph
		}
		if err != nil {
			return 0, &GlyphError{Rune: r, Offset: i, Err: err}
		}
		if prev != 0 {
			if kern, err := o.font.Kern(&o.buf, prev, gid, ppem, font.HintingNone); err == nil {
				w += unfix(kern)
			}
		}
		adv, err := o.font.GlyphAdvance(&o.buf, gid, ppem, font.HintingNone)
		if err != nil {
			return 0, &GlyphError{Rune: r, Offset: i, Err: err}
		}
		w += unfix(adv)
		prev = gid
	}
	return w, nil
}

// appendSegments adds the contours of one glyph to p. sfnt reports y
// growing downwards, which matches board coordinates.
func appendSegments(p *drafter.Path, segs sfnt.Segments, at drafter.Point) {
	open := false
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				p.Close()
			}
			p.MoveTo(toPoint(seg.Args[0], at))
			open = true
		case sfnt.SegmentOpLineTo:
			p.LineTo(toPoint(seg.Args[0], at))
		case sfnt.SegmentOpQuadTo:
			p.QuadTo(toPoint(seg.Args[0], at), toPoint(seg.Args[1], at))
		case sfnt.SegmentOpCubeTo:
			p.CubicTo(toPoint(seg.Args[0], at), toPoint(seg.Args[1], at), toPoint(seg.Args[2], at))
		}
	}
	if open {
		p.Close()
	}
}

func toPoint(v fixed.Point26_6, at drafter.Point) drafter.Point {
	return drafter.Pt(at.X+unfix(v.X), at.Y+unfix(v.Y))
}

func unfix(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
