// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package script

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gogpu/drafter"
	"github.com/gogpu/drafter/canvas"
)

// Player replays commands on a canvas.
type Player struct {
	canvas *canvas.Canvas
	log    *slog.Logger

	// OnStep, when set, runs after every command. A non-nil error stops
	// the replay.
	OnStep func(step int, cmd Command) error

	skipped int
}

// NewPlayer returns a player for c. A nil logger means drafter.Logger().
func NewPlayer(c *canvas.Canvas, log *slog.Logger) *Player {
	if log == nil {
		log = drafter.Logger()
	}
	return &Player{canvas: c, log: log}
}

// Skipped returns how many commands were skipped so far.
func (p *Player) Skipped() int {
	return p.skipped
}

// Run executes cmds in order. Skip reasons from the canvas are logged and
// the replay continues; malformed arguments and collaborator failures stop
// it.
func (p *Player) Run(ctx context.Context, cmds []Command) error {
	for i, cmd := range cmds {
		if err := ctx.Err(); err != nil {
			return err
		}
		spec, ok := ops[cmd.Op]
		if !ok {
			return &SyntaxError{Line: cmd.Line, Op: cmd.Op, Msg: "unknown operation"}
		}
		err := spec.run(p.canvas, cmd)
		var se *SyntaxError
		switch {
		case err == nil:
		case errors.As(err, &se):
			return err
		case drafter.IsSkip(err):
			p.skipped++
			p.log.Debug("command skipped", "line", cmd.Line, "cmd", cmd.String(), "reason", err)
		default:
			return fmt.Errorf("script: line %d: %w", cmd.Line, err)
		}
		if p.OnStep != nil {
			if err := p.OnStep(i, cmd); err != nil {
				return err
			}
		}
	}
	return nil
}
