// Package drafter is the geometry core of an interactive vector-shape
// editor.
//
// # Overview
//
// The root package holds the value types shared by the editor: points,
// rectangles and affine matrices, the cubic [Path] model with its derived
// [ControlPoint] view, curve [Style], editor [Config] and the skip reasons
// returned when an editing operation does not apply.
//
// Interaction lives in sub-packages:
//   - shape: the Curve entity and its per-curve transforms
//   - snap: alignment guides and snapping deltas
//   - tool: drawing tools and the in-progress session
//   - canvas: the controller owning curves, selection and groups
//   - text, render, export: glyph outlines, raster output and PDF output
//
// # Quick Start
//
//	c := canvas.New(drafter.DefaultConfig())
//	c.SetTool(tool.Rectangle{})
//	c.PointerDown(drafter.Pt(10, 10), drafter.Mods{})
//	c.PointerDrag(drafter.Pt(110, 60), drafter.Mods{})
//	c.PointerUp(drafter.Pt(110, 60), drafter.Mods{})
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
//
// # Control Points
//
// Control points are never stored next to the path. They are derived from
// it on demand and written back into it, so handles can not drift away
// from the geometry they describe.
package drafter
