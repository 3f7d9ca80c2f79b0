// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package export writes a board of curves to PDF or PNG.
//
// PDF output keeps the curves as vectors: every top-level curve becomes an
// optional content layer named after it, so a viewer can toggle curves and
// groups the way the editor's layer list does. PNG output rasterises the
// visible curves with package render.
//
//	if err := export.WriteFile("board.pdf", c, export.WithTitle("Sketch")); err != nil {
//	    log.Fatal(err)
//	}
package export
