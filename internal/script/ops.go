// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package script

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gogpu/drafter"
	"github.com/gogpu/drafter/canvas"
	"github.com/gogpu/drafter/shape"
	"github.com/gogpu/drafter/tool"
)

type opSpec struct {
	min, max int
	text     bool
	run      func(c *canvas.Canvas, cmd Command) error
}

func (s opSpec) arity() string {
	if s.min == s.max {
		return strconv.Itoa(s.min)
	}
	return fmt.Sprintf("%d to %d", s.min, s.max)
}

var ops = map[string]opSpec{
	"down":  {2, 3, false, pointer(canvas.EventDown)},
	"move":  {2, 3, false, pointer(canvas.EventMove)},
	"drag":  {2, 3, false, pointer(canvas.EventDrag)},
	"up":    {2, 3, false, pointer(canvas.EventUp)},
	"click": {2, 3, false, click},
	"wheel": {2, 2, false, wheel},
	"key":   {1, 1, false, key},
	"tool":  {1, 1, false, setTool},
	"text":  {0, 0, true, commitText},

	"select":   {1, 1, false, selectIndex},
	"deselect": {0, 0, false, func(c *canvas.Canvas, _ Command) error { c.Deselect(); return nil }},
	"group":    {0, 0, false, func(c *canvas.Canvas, _ Command) error { return c.Group() }},
	"ungroup":  {0, 0, false, func(c *canvas.Canvas, _ Command) error { return c.Ungroup() }},
	"copy":     {0, 0, false, func(c *canvas.Canvas, _ Command) error { return c.Copy() }},
	"paste":    {2, 2, false, paste},
	"clone":    {0, 0, false, func(c *canvas.Canvas, _ Command) error { return c.Clone() }},
	"delete":   {0, 0, false, func(c *canvas.Canvas, _ Command) error { return c.Delete() }},
	"forward":  {0, 0, false, func(c *canvas.Canvas, _ Command) error { return c.BringForward() }},
	"backward": {0, 0, false, func(c *canvas.Canvas, _ Command) error { return c.SendBackward() }},
	"lock":     {1, 1, false, byIndex((*canvas.Canvas).ToggleLock)},
	"visible":  {1, 1, false, byIndex((*canvas.Canvas).ToggleVisible)},
	"edit":     {1, 1, false, edit},

	"translate": {2, 2, false, translate},
	"position":  {2, 2, false, position},
	"align":     {2, 2, false, align},
	"resize":    {2, 3, false, resize},
	"rotate":    {1, 1, false, rotate},
	"rotation":  {1, 1, false, rotation},
	"flip":      {1, 1, false, flip},
	"style":     {2, 4, false, style},
}

// toolKeys maps tool names to their keyboard shortcuts.
var toolKeys = map[string]string{
	"drag":      "d",
	"line":      "l",
	"triangle":  "t",
	"rectangle": "r",
	"pentagon":  "p",
	"hexagon":   "h",
	"arc":       "a",
	"oval":      "o",
	"freehand":  "s",
	"pen":       "c",
	"text":      "f",
}

func syntax(cmd Command, format string, args ...any) error {
	return &SyntaxError{Line: cmd.Line, Op: cmd.Op, Msg: fmt.Sprintf(format, args...)}
}

func number(cmd Command, i int) (float64, error) {
	v, err := strconv.ParseFloat(cmd.Args[i], 64)
	if err != nil {
		return 0, syntax(cmd, "argument %d: %q is not a number", i+1, cmd.Args[i])
	}
	return v, nil
}

func integer(cmd Command, i int) (int, error) {
	v, err := strconv.Atoi(cmd.Args[i])
	if err != nil {
		return 0, syntax(cmd, "argument %d: %q is not an integer", i+1, cmd.Args[i])
	}
	return v, nil
}

func point(cmd Command, i int) (drafter.Point, error) {
	x, err := number(cmd, i)
	if err != nil {
		return drafter.Point{}, err
	}
	y, err := number(cmd, i+1)
	if err != nil {
		return drafter.Point{}, err
	}
	return drafter.Pt(x, y), nil
}

func onOff(cmd Command, i int) (bool, error) {
	switch strings.ToLower(cmd.Args[i]) {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	}
	return false, syntax(cmd, "argument %d: want on or off, got %q", i+1, cmd.Args[i])
}

func axis(cmd Command, i int) (drafter.Axis, error) {
	switch strings.ToLower(cmd.Args[i]) {
	case "x", "h":
		return drafter.AxisX, nil
	case "y", "v":
		return drafter.AxisY, nil
	}
	return 0, syntax(cmd, "argument %d: want x or y, got %q", i+1, cmd.Args[i])
}

// modifiers parses the optional modifier list at position i.
func modifiers(cmd Command, i int) (drafter.Mods, error) {
	var m drafter.Mods
	if i >= len(cmd.Args) {
		return m, nil
	}
	for _, name := range strings.Split(strings.ToLower(cmd.Args[i]), ",") {
		switch name {
		case "shift":
			m.Shift = true
		case "alt":
			m.Alt = true
		case "ctrl":
			m.Ctrl = true
		case "cmd":
			m.Cmd = true
		default:
			return m, syntax(cmd, "unknown modifier %q", name)
		}
	}
	return m, nil
}

func pointer(kind canvas.EventKind) func(*canvas.Canvas, Command) error {
	return func(c *canvas.Canvas, cmd Command) error {
		pos, err := point(cmd, 0)
		if err != nil {
			return err
		}
		mods, err := modifiers(cmd, 2)
		if err != nil {
			return err
		}
		c.Handle(canvas.Event{Kind: kind, Pos: pos, Mods: mods})
		return nil
	}
}

func click(c *canvas.Canvas, cmd Command) error {
	pos, err := point(cmd, 0)
	if err != nil {
		return err
	}
	mods, err := modifiers(cmd, 2)
	if err != nil {
		return err
	}
	c.PointerDown(pos, mods)
	c.PointerUp(pos, mods)
	return nil
}

func wheel(c *canvas.Canvas, cmd Command) error {
	d, err := point(cmd, 0)
	if err != nil {
		return err
	}
	c.Handle(canvas.Event{Kind: canvas.EventWheel, Wheel: d})
	return nil
}

func key(c *canvas.Canvas, cmd Command) error {
	c.Handle(canvas.Event{Kind: canvas.EventKey, Key: strings.ToLower(cmd.Args[0])})
	return nil
}

func setTool(c *canvas.Canvas, cmd Command) error {
	k, ok := toolKeys[strings.ToLower(cmd.Args[0])]
	if !ok {
		return syntax(cmd, "unknown tool %q", cmd.Args[0])
	}
	t, _ := tool.ForKey(k, c.Config())
	c.SetTool(t)
	return nil
}

func commitText(c *canvas.Canvas, cmd Command) error {
	return c.CommitText(strings.Join(cmd.Args, " "))
}

func selectIndex(c *canvas.Canvas, cmd Command) error {
	i, err := integer(cmd, 0)
	if err != nil {
		return err
	}
	return c.SelectByIndex(i)
}

// byIndex adapts a per-curve operation to take a layer index.
func byIndex(fn func(*canvas.Canvas, shape.ID) error) func(*canvas.Canvas, Command) error {
	return func(c *canvas.Canvas, cmd Command) error {
		i, err := integer(cmd, 0)
		if err != nil {
			return err
		}
		curves := c.Curves()
		if i < 0 || i >= len(curves) {
			return drafter.ErrNotApplicable
		}
		return fn(c, curves[i].ID)
	}
}

func paste(c *canvas.Canvas, cmd Command) error {
	at, err := point(cmd, 0)
	if err != nil {
		return err
	}
	return c.Paste(at)
}

func edit(c *canvas.Canvas, cmd Command) error {
	on, err := onOff(cmd, 0)
	if err != nil {
		return err
	}
	return c.SetEdit(on)
}

func translate(c *canvas.Canvas, cmd Command) error {
	d, err := point(cmd, 0)
	if err != nil {
		return err
	}
	return c.Move(d.X, d.Y)
}

func position(c *canvas.Canvas, cmd Command) error {
	a, err := axis(cmd, 0)
	if err != nil {
		return err
	}
	v, err := number(cmd, 1)
	if err != nil {
		return err
	}
	return c.SetPosition(a, v)
}

func align(c *canvas.Canvas, cmd Command) error {
	a, err := axis(cmd, 0)
	if err != nil {
		return err
	}
	var to canvas.Align
	switch strings.ToLower(cmd.Args[1]) {
	case "start":
		to = canvas.AlignStart
	case "center":
		to = canvas.AlignCenter
	case "end":
		to = canvas.AlignEnd
	default:
		return syntax(cmd, "want start, center or end, got %q", cmd.Args[1])
	}
	if a == drafter.AxisX {
		return c.AlignHorizontal(to)
	}
	return c.AlignVertical(to)
}

func resize(c *canvas.Canvas, cmd Command) error {
	a, err := axis(cmd, 0)
	if err != nil {
		return err
	}
	v, err := number(cmd, 1)
	if err != nil {
		return err
	}
	lock := len(cmd.Args) == 3
	if lock && strings.ToLower(cmd.Args[2]) != "lock" {
		return syntax(cmd, "want lock, got %q", cmd.Args[2])
	}
	return c.Resize(a, v, drafter.Point{}, shape.NoHandle, lock)
}

func rotate(c *canvas.Canvas, cmd Command) error {
	v, err := number(cmd, 0)
	if err != nil {
		return err
	}
	return c.Rotate(v)
}

func rotation(c *canvas.Canvas, cmd Command) error {
	v, err := number(cmd, 0)
	if err != nil {
		return err
	}
	return c.SetRotation(v)
}

func flip(c *canvas.Canvas, cmd Command) error {
	a, err := axis(cmd, 0)
	if err != nil {
		return err
	}
	return c.Flip(a)
}
