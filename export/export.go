// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/drafter"
	"github.com/gogpu/drafter/shape"
)

// ErrUnknownFormat is returned for a file extension with no exporter.
var ErrUnknownFormat = errors.New("export: unknown format")

// Board is the read side of a canvas.
type Board interface {
	Config() drafter.Config
	Curves() []*shape.Curve
	Members(id shape.ID) []*shape.Curve
}

// Format selects an output encoding.
type Format int

const (
	// FormatPDF writes vector curves with gofpdf.
	FormatPDF Format = iota
	// FormatPNG writes a raster snapshot.
	FormatPNG
)

func (f Format) String() string {
	switch f {
	case FormatPDF:
		return "pdf"
	case FormatPNG:
		return "png"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatOf returns the format matching the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return FormatPDF, nil
	case ".png":
		return FormatPNG, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, filepath.Ext(path))
	}
}

// WriteFile exports b to path in the format named by its extension.
func WriteFile(path string, b Board, opts ...Option) (err error) {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("export: %w", cerr)
		}
	}()

	switch format {
	case FormatPNG:
		err = PNG(f, b, opts...)
	default:
		err = PDF(f, b, opts...)
	}
	if err != nil {
		return err
	}
	drafter.Logger().Info("export written", "format", format, "path", path)
	return nil
}

// layer is one top-level curve with its members, bottom first.
type layer struct {
	name    string
	visible bool
	curves  []*shape.Curve
}

func layers(b Board) []layer {
	var out []layer
	for _, top := range b.Curves() {
		out = append(out, layer{
			name:    top.Name,
			visible: top.Visible,
			curves:  b.Members(top.ID),
		})
	}
	return out
}
