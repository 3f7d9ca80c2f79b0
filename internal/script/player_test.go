// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package script

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/gogpu/drafter"
	"github.com/gogpu/drafter/canvas"
	"github.com/gogpu/drafter/tool"
)

func play(t *testing.T, src string) (*canvas.Canvas, *Player, error) {
	t.Helper()
	cmds, err := Parse(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Parse() = %v", err)
	}
	c := canvas.New(drafter.DefaultConfig())
	p := NewPlayer(c, nil)
	return c, p, p.Run(context.Background(), cmds)
}

func nearRect(a, b drafter.Rect) bool {
	const eps = 1e-6
	return math.Abs(a.Min.X-b.Min.X) < eps && math.Abs(a.Min.Y-b.Min.Y) < eps &&
		math.Abs(a.Max.X-b.Max.X) < eps && math.Abs(a.Max.Y-b.Max.Y) < eps
}

func TestPlayRectangle(t *testing.T) {
	c, p, err := play(t, `
tool rectangle
down 10 10
drag 110 60
up 110 60
style color fill #ff0000
style width 3
style cap round
translate 5 5
`)
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}
	cur := c.Selected()
	if cur == nil {
		t.Fatal("no curve selected after the gesture")
	}
	if got, want := cur.Bounds(), drafter.XYWH(15, 15, 100, 50); !nearRect(got, want) {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
	st := cur.Style
	if st.Colors.Fill != (drafter.Color{R: 0xff, A: 0xff}) || st.LineWidth != 3 || st.Cap != drafter.CapRound {
		t.Errorf("Style = %+v", st)
	}
	if p.Skipped() != 0 {
		t.Errorf("Skipped() = %d, want 0", p.Skipped())
	}
}

func TestPlayGroupAndAlign(t *testing.T) {
	c, _, err := play(t, `
tool rectangle
down 0 0
drag 50 50
up 50 50
tool oval
down 100 0
drag 150 50
up 150 50
click 25 25 shift
click 125 25 shift
group
align x start
align y end
`)
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if len(c.Curves()) != 1 {
		t.Fatalf("len(Curves()) = %d, want 1 group", len(c.Curves()))
	}
	g := c.Selected()
	if g == nil || !g.IsGroup() {
		t.Fatalf("Selected() = %+v, want the group", g)
	}
	b := c.GroupBounds(g.ID)
	if math.Abs(b.Min.X) > 1e-6 || math.Abs(b.Max.Y-c.Config().Height) > 1e-6 {
		t.Errorf("GroupBounds() = %v, want left and bottom aligned to the board", b)
	}
}

func TestPlaySkips(t *testing.T) {
	c, p, err := play(t, `
delete
translate 1 1
text "hi"
lock 4
`)
	if err != nil {
		t.Fatalf("Run() = %v", err)
	}
	if p.Skipped() != 4 {
		t.Errorf("Skipped() = %d, want 4", p.Skipped())
	}
	if len(c.Curves()) != 0 {
		t.Error("skipped commands created curves")
	}
}

func TestPlayBadArguments(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"number", "down ten 10"},
		{"modifier", "down 1 1 hyper"},
		{"tool", "tool lasso"},
		{"axis", "flip z"},
		{"style property", "style glow 1"},
		{"style arity", "style dash 1"},
		{"color", "style color fill #zz"},
		{"align", "align x middle"},
		{"edit", "edit maybe"},
		{"resize lock", "resize x 10 free"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := play(t, tt.src)
			var se *SyntaxError
			if !errors.As(err, &se) {
				t.Errorf("Run() = %v, want *SyntaxError", err)
			}
		})
	}
}

func TestPlayOnStep(t *testing.T) {
	cmds, _ := Parse(strings.NewReader("tool oval\nkey escape\ndeselect"))
	p := NewPlayer(canvas.New(drafter.DefaultConfig()), nil)
	var steps []int
	stop := errors.New("stop")
	p.OnStep = func(step int, _ Command) error {
		steps = append(steps, step)
		if step == 1 {
			return stop
		}
		return nil
	}
	if err := p.Run(context.Background(), cmds); !errors.Is(err, stop) {
		t.Errorf("Run() = %v, want the OnStep error", err)
	}
	if len(steps) != 2 {
		t.Errorf("steps = %v, want [0 1]", steps)
	}
}

func TestPlayCanceled(t *testing.T) {
	cmds, _ := Parse(strings.NewReader("deselect"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewPlayer(canvas.New(drafter.DefaultConfig()), nil).Run(ctx, cmds)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() = %v, want context.Canceled", err)
	}
}

func TestToolKeys(t *testing.T) {
	cfg := drafter.DefaultConfig()
	for name, k := range toolKeys {
		tl, ok := tool.ForKey(k, cfg)
		if !ok {
			t.Errorf("toolKeys[%q] = %q has no tool", name, k)
			continue
		}
		if got := tool.Name(tl); got != name && !(name == "pen" && got == "curve") {
			t.Errorf("tool for %q is named %q", name, got)
		}
	}
}
