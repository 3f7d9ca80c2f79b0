// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package canvas is the editing controller. It owns every curve, the
// selection and the active tool, turns pointer events into tool gestures
// and transforms, and pushes the curves that changed to a render Surface
// once each call completes.
//
// A Canvas is not safe for concurrent use. Surface and listeners are
// invoked synchronously at the end of the public call that changed
// something, never in the middle of it.
//
//	c := canvas.New(drafter.DefaultConfig(), canvas.WithSurface(raster))
//	c.SetTool(tool.Rectangle{})
//	c.PointerDown(drafter.Pt(10, 10), drafter.Mods{})
//	c.PointerDrag(drafter.Pt(110, 60), drafter.Mods{})
//	c.PointerUp(drafter.Pt(110, 60), drafter.Mods{})
package canvas

import (
	"log/slog"
	"slices"

	"github.com/gogpu/drafter"
	"github.com/gogpu/drafter/shape"
	"github.com/gogpu/drafter/snap"
	"github.com/gogpu/drafter/tool"
)

// Surface receives the geometry of curves to draw. Curves are keyed by
// their UID.
type Surface interface {
	Update(uid string, p *drafter.Path, st drafter.Style)
	Clear(uid string)
}

// GlyphProvider turns text into outline geometry for the text tool.
type GlyphProvider interface {
	Outline(s string, size float64, origin drafter.Point) (*drafter.Path, error)
}

// Canvas holds the curves of a board and the editing state around them.
type Canvas struct {
	cfg     drafter.Config
	log     *slog.Logger
	surface Surface
	glyphs  GlyphProvider
	snapper snap.Engine

	// curves is the arena indexed by shape.ID; removed curves leave nil.
	curves []*shape.Curve

	// order lists the top-level curves, bottom first.
	order []shape.ID

	selected shape.ID
	multi    []shape.ID

	tool    tool.Tool
	session *tool.Session
	guides  []snap.Guide

	// handle is the frame handle grabbed by the last down. edge follows
	// the pointer from the handle's position, before snapping.
	handle  shape.Handle
	edge    drafter.Point
	edgeSet bool

	// moving is set when the last down hit the selection with the drag
	// tool.
	moving    bool
	last      drafter.Point
	clipboard []*shape.Curve

	depth     int
	dirty     []shape.ID
	cleared   []string
	pending   []Change
	listeners []func(Change)
}

// New creates an empty canvas with the drag tool active.
func New(cfg drafter.Config, opts ...Option) *Canvas {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Canvas{
		cfg:      cfg,
		log:      o.logger,
		surface:  o.surface,
		glyphs:   o.glyphs,
		snapper:  snap.New(cfg),
		selected: shape.NoID,
		tool:     tool.Drag{},
		session:  tool.NewSession(cfg.DotSize),
		handle:   shape.NoHandle,
	}
}

// Config returns the settings the canvas was created with.
func (c *Canvas) Config() drafter.Config {
	return c.cfg
}

func (c *Canvas) logger() *slog.Logger {
	if c.log != nil {
		return c.log
	}
	return drafter.Logger()
}

// Tool returns the active tool.
func (c *Canvas) Tool() tool.Tool {
	return c.tool
}

// Session returns the in-progress gesture state, for drawing previews.
func (c *Canvas) Session() *tool.Session {
	return c.session
}

// Guides returns the alignment guides of the current drag.
func (c *Canvas) Guides() []snap.Guide {
	return slices.Clone(c.guides)
}

// Curves returns the top-level curves, bottom first.
func (c *Canvas) Curves() []*shape.Curve {
	out := make([]*shape.Curve, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.curves[id])
	}
	return out
}

// Curve returns the curve with the given ID, or nil.
func (c *Canvas) Curve(id shape.ID) *shape.Curve {
	if id < 0 || int(id) >= len(c.curves) {
		return nil
	}
	return c.curves[id]
}

// Selected returns the selected curve, or nil.
func (c *Canvas) Selected() *shape.Curve {
	return c.Curve(c.selected)
}

// MultiSelection returns the curves selected together.
func (c *Canvas) MultiSelection() []*shape.Curve {
	out := make([]*shape.Curve, 0, len(c.multi))
	for _, id := range c.multi {
		out = append(out, c.curves[id])
	}
	return out
}

// Members returns the curves a top-level curve stands for, itself first.
func (c *Canvas) Members(id shape.ID) []*shape.Curve {
	cur := c.Curve(id)
	if cur == nil {
		return nil
	}
	out := make([]*shape.Curve, 0, len(cur.Members))
	for _, m := range cur.Members {
		out = append(out, c.curves[m])
	}
	return out
}

// GroupBounds returns the bounds of every member of id, stroke included.
func (c *Canvas) GroupBounds(id shape.ID) drafter.Rect {
	return shape.Union(c.Members(id), true)
}

// Frame returns the frame handles of the selection, or nil when nothing
// is selected or the selected curve is being edited.
func (c *Canvas) Frame() map[shape.Handle]drafter.Point {
	sel := c.Selected()
	if sel == nil || sel.Editing() {
		return nil
	}
	return sel.Frame(c.selectionBounds(), c.cfg.DotSize)
}

// selectionBounds returns the stroke bounds of everything selected,
// locked curves included.
func (c *Canvas) selectionBounds() drafter.Rect {
	var all []*shape.Curve
	for _, id := range c.roots() {
		all = append(all, c.Members(id)...)
	}
	return shape.Union(all, true)
}

// roots returns the top-level curves the selection acts on.
func (c *Canvas) roots() []shape.ID {
	switch {
	case len(c.multi) >= 2:
		return c.multi
	case c.selected != shape.NoID:
		return []shape.ID{c.selected}
	}
	return nil
}

// targets returns the unlocked members of the selection.
func (c *Canvas) targets() ([]*shape.Curve, error) {
	roots := c.roots()
	if len(roots) == 0 {
		return nil, drafter.ErrNoSelection
	}
	var out []*shape.Curve
	for _, id := range roots {
		for _, m := range c.Members(id) {
			if !m.Locked {
				out = append(out, m)
			}
		}
	}
	if len(out) == 0 {
		return nil, drafter.ErrLocked
	}
	return out, nil
}

// others returns the group bounds of every visible top-level curve that
// is not in exclude.
func (c *Canvas) others(exclude []shape.ID) []drafter.Rect {
	var rects []drafter.Rect
	for _, id := range c.order {
		if slices.Contains(exclude, id) || !c.curves[id].Visible {
			continue
		}
		rects = append(rects, c.GroupBounds(id))
	}
	return rects
}

// taken reports whether a live curve already uses name.
func (c *Canvas) taken(name string) bool {
	for _, cur := range c.curves {
		if cur != nil && cur.Name == name {
			return true
		}
	}
	return false
}

func (c *Canvas) indexOf(id shape.ID) int {
	return slices.Index(c.order, id)
}

// selectID makes id the selected curve. Leaving a curve ends its edit
// mode.
func (c *Canvas) selectID(id shape.ID) {
	if id == c.selected {
		return
	}
	if prev := c.Selected(); prev != nil && prev.Editing() {
		prev.EndEdit()
		c.touch(prev.ID)
	}
	c.selected = id
	c.emit(SelectionChanged, id)
}

func (c *Canvas) setMulti(ids []shape.ID) {
	if slices.Equal(ids, c.multi) {
		return
	}
	c.multi = ids
	c.emit(SelectionChanged, c.selected)
}

func (c *Canvas) skip(op string, err error) error {
	c.logger().Debug("operation skipped", "op", op, "reason", err)
	return err
}
