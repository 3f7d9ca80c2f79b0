// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package script parses and replays editing sessions written as text.
//
// A script holds one command per line. Blank lines and lines starting with
// '#' are ignored. The first field names the operation and the rest are its
// arguments:
//
//	tool rectangle
//	down 10 10
//	drag 110 60
//	up 110 60
//	style color fill #ff8800
//	down 60 35 shift
//
// Arguments split like shell words, so free text can be quoted:
//
//	text "hello world"
//
// Pointer commands take an optional comma-separated modifier list
// (shift, alt, ctrl, cmd).
package script

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-shellwords"
)

// Command is one parsed script line.
type Command struct {
	Line int
	Op   string
	Args []string

	// Rest is the raw text after the operation.
	Rest string
}

func (c Command) String() string {
	return strings.TrimSpace(c.Op + " " + c.Rest)
}

// SyntaxError reports a malformed script line.
type SyntaxError struct {
	Line int
	Op   string
	Msg  string
}

func (e *SyntaxError) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("script: line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("script: line %d: %s: %s", e.Line, e.Op, e.Msg)
}

// Parse reads every command from r. Operations are checked against the
// known set and their argument counts; argument values are checked when
// the command runs.
func Parse(r io.Reader) ([]Command, error) {
	var cmds []Command
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		op, rest, _ := strings.Cut(text, " ")
		cmd := Command{
			Line: line,
			Op:   strings.ToLower(op),
			Rest: strings.TrimSpace(rest),
		}
		spec, ok := ops[cmd.Op]
		if !ok {
			return nil, &SyntaxError{Line: line, Op: cmd.Op, Msg: "unknown operation"}
		}
		args, err := split(cmd.Rest)
		if err != nil {
			return nil, &SyntaxError{Line: line, Op: cmd.Op, Msg: err.Error()}
		}
		cmd.Args = args
		if n := len(cmd.Args); !spec.text && (n < spec.min || n > spec.max) {
			return nil, &SyntaxError{Line: line, Op: cmd.Op, Msg: fmt.Sprintf("got %d arguments, want %s", n, spec.arity())}
		}
		cmds = append(cmds, cmd)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("script: read: %w", err)
	}
	return cmds, nil
}

var errUnbalanced = errors.New("unbalanced quotes")

// split breaks s into words. Shell operators are not part of the language
// and are rejected.
func split(s string) ([]string, error) {
	p := shellwords.NewParser()
	words, err := p.Parse(s)
	if err != nil {
		return nil, errUnbalanced
	}
	if p.Position >= 0 {
		return nil, fmt.Errorf("unexpected operator after %q", strings.Join(words, " "))
	}
	return words, nil
}
