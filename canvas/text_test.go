// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package canvas

import (
	"errors"
	"testing"

	"github.com/gogpu/drafter"
	"github.com/gogpu/drafter/tool"
)

var errNoFont = errors.New("no font")

type glyphStub struct {
	err    error
	origin drafter.Point
	size   float64
}

func (g *glyphStub) Outline(s string, size float64, origin drafter.Point) (*drafter.Path, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.origin, g.size = origin, size
	return rectPath(origin.X, origin.Y-size, size*float64(len(s)), size), nil
}

func TestCommitText(t *testing.T) {
	g := &glyphStub{}
	c := New(drafter.DefaultConfig(), WithGlyphs(g))
	c.SetTool(tool.Text{})
	c.PointerDown(drafter.Pt(20, 30), none)
	c.PointerDrag(drafter.Pt(40, 50), none)
	c.PointerUp(drafter.Pt(40, 50), none)
	if len(c.Curves()) != 0 {
		t.Fatal("placing text committed a curve")
	}

	if err := c.CommitText("hi"); err != nil {
		t.Fatalf("CommitText() = %v", err)
	}
	if g.origin != drafter.Pt(40, 50) || g.size != c.Config().FontSize {
		t.Errorf("outline asked at %v size %v", g.origin, g.size)
	}
	cur := c.Selected()
	if cur == nil || cur.Name != "text 1" || !cur.Style.Fill {
		t.Fatalf("Selected() = %+v, want filled text 1", cur)
	}
	if _, ok := c.Tool().(tool.Drag); !ok {
		t.Errorf("Tool() = %T after commit, want tool.Drag", c.Tool())
	}
}

func TestCommitTextFailure(t *testing.T) {
	c := New(drafter.DefaultConfig(), WithGlyphs(&glyphStub{err: errNoFont}))
	c.SetTool(tool.Text{})
	click(c, drafter.Pt(20, 30), none)

	if err := c.CommitText("hi"); !errors.Is(err, errNoFont) {
		t.Errorf("CommitText() = %v, want errNoFont", err)
	}
	if len(c.Curves()) != 0 {
		t.Error("failed outline committed a curve")
	}
	if _, ok := c.Tool().(tool.Text); !ok {
		t.Error("failed commit left the text tool")
	}
}
