// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package script

import (
	"strings"

	"github.com/gogpu/drafter"
	"github.com/gogpu/drafter/canvas"
)

var colorRoles = map[string]canvas.ColorRole{
	"stroke":    canvas.ColorStroke,
	"fill":      canvas.ColorFill,
	"shadow":    canvas.ColorShadow,
	"gradient0": canvas.ColorGradient0,
	"gradient1": canvas.ColorGradient1,
	"gradient2": canvas.ColorGradient2,
}

// styleArgs is the argument count of each style property, name included.
var styleArgs = map[string]int{
	"width":     2,
	"cap":       2,
	"join":      2,
	"fill":      2,
	"dash":      3,
	"alpha":     3,
	"shadow":    3,
	"color":     3,
	"gradient":  2,
	"direction": 4,
	"location":  3,
	"blur":      2,
}

func style(c *canvas.Canvas, cmd Command) error {
	prop := strings.ToLower(cmd.Args[0])
	n, ok := styleArgs[prop]
	if !ok {
		return syntax(cmd, "unknown style property %q", cmd.Args[0])
	}
	if len(cmd.Args) != n {
		return syntax(cmd, "%s takes %d values", prop, n-1)
	}

	switch prop {
	case "width", "blur":
		v, err := number(cmd, 1)
		if err != nil {
			return err
		}
		if prop == "blur" {
			return c.SetBlur(v)
		}
		return c.SetLineWidth(v)
	case "cap":
		var lc drafter.LineCap
		if err := lc.UnmarshalText([]byte(cmd.Args[1])); err != nil {
			return syntax(cmd, "%v", err)
		}
		return c.SetCap(lc)
	case "join":
		var lj drafter.LineJoin
		if err := lj.UnmarshalText([]byte(cmd.Args[1])); err != nil {
			return syntax(cmd, "%v", err)
		}
		return c.SetJoin(lj)
	case "fill", "gradient":
		on, err := onOff(cmd, 1)
		if err != nil {
			return err
		}
		if prop == "gradient" {
			return c.SetGradient(on)
		}
		return c.SetFill(on)
	case "color":
		role, ok := colorRoles[strings.ToLower(cmd.Args[1])]
		if !ok {
			return syntax(cmd, "unknown color role %q", cmd.Args[1])
		}
		var col drafter.Color
		if err := col.UnmarshalText([]byte(cmd.Args[2])); err != nil {
			return syntax(cmd, "%v", err)
		}
		return c.SetColor(role, col)
	case "direction":
		i, err := integer(cmd, 1)
		if err != nil {
			return err
		}
		p, err := point(cmd, 2)
		if err != nil {
			return err
		}
		return c.SetGradientDirection(i, p)
	}

	// dash, alpha, shadow and location take an index and a value.
	i, err := integer(cmd, 1)
	if err != nil {
		return err
	}
	v, err := number(cmd, 2)
	if err != nil {
		return err
	}
	switch prop {
	case "dash":
		return c.SetDash(i, v)
	case "alpha":
		return c.SetAlpha(i, v)
	case "shadow":
		return c.SetShadow(i, v)
	default:
		return c.SetGradientLocation(i, v)
	}
}
