package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const session = `
tool rectangle
down 10 10
drag 110 60
up 110 60
style color fill #3366ff
tool text
click 200 200
text "Hi"
`

func TestRun(t *testing.T) {
	dir := t.TempDir()
	pdf := filepath.Join(dir, "board.pdf")
	png := filepath.Join(dir, "board.png")
	frames := filepath.Join(dir, "frames")

	var stderr bytes.Buffer
	args := []string{"-o", pdf + "," + png, "-frames", frames, "-background", "#ffffff"}
	if err := run(context.Background(), args, strings.NewReader(session), &stderr); err != nil {
		t.Fatalf("run() = %v\n%s", err, stderr.String())
	}
	for _, path := range []string{pdf, png} {
		if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
			t.Errorf("Stat(%s) = %v", path, err)
		}
	}
	entries, err := os.ReadDir(frames)
	if err != nil || len(entries) != 8 {
		t.Errorf("frames = %d (%v), want 8", len(entries), err)
	}
	if out := stderr.String(); !strings.Contains(out, "curves=2") {
		t.Errorf("log = %q, want the replay summary", out)
	}
}

func TestRunConfig(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "drafter.toml")
	if err := os.WriteFile(cfg, []byte("width = 40\nheight = 30\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "small.png")
	var stderr bytes.Buffer
	if err := run(context.Background(), []string{"-config", cfg, "-o", out}, strings.NewReader(""), &stderr); err != nil {
		t.Fatalf("run() = %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("Stat() = %v", err)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		script string
	}{
		{"bad flag", []string{"-nope"}, ""},
		{"missing config", []string{"-config", "/nonexistent/drafter.toml"}, ""},
		{"bad background", []string{"-background", "blue"}, ""},
		{"missing font", []string{"-font", "/nonexistent/font.ttf"}, ""},
		{"bad script", nil, "fly 1 2"},
		{"bad output", []string{"-o", "board.svg"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			args := append([]string{"-o", filepath.Join(t.TempDir(), "x.pdf")}, tt.args...)
			if err := run(context.Background(), args, strings.NewReader(tt.script), &stderr); err == nil {
				t.Error("run() = nil, want an error")
			}
		})
	}
}
