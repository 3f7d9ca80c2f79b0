// Command drafter replays a scripted editing session and exports the board.
//
// Usage:
//
//	drafter -script session.txt -o board.pdf,board.png
//
// The script format is described in package internal/script. Board size and
// default styles come from a TOML config file when -config is given.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/gogpu/drafter"
	"github.com/gogpu/drafter/canvas"
	"github.com/gogpu/drafter/export"
	"github.com/gogpu/drafter/internal/script"
	"github.com/gogpu/drafter/render"
	"github.com/gogpu/drafter/text"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, os.Args[1:], os.Stdin, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

type flags struct {
	config     string
	script     string
	outputs    string
	font       string
	frames     string
	title      string
	background string
	hidden     bool
	verbose    bool
}

func parseFlags(args []string, stderr io.Writer) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("drafter", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.config, "config", "", "TOML config file")
	fs.StringVar(&f.script, "script", "-", "session script, - for stdin")
	fs.StringVar(&f.outputs, "o", "board.pdf", "comma-separated output files (.pdf, .png)")
	fs.StringVar(&f.font, "font", "", "TrueType/OpenType font for the text tool (default Go Regular)")
	fs.StringVar(&f.frames, "frames", "", "directory to write a PNG after every command")
	fs.StringVar(&f.title, "title", "", "PDF document title")
	fs.StringVar(&f.background, "background", "", "page color as #rrggbb[aa]")
	fs.BoolVar(&f.hidden, "hidden", false, "keep hidden curves as PDF layers")
	fs.BoolVar(&f.verbose, "v", false, "log every event")
	return f, fs.Parse(args)
}

func run(ctx context.Context, args []string, stdin io.Reader, stderr io.Writer) error {
	f, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if f.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	drafter.SetLogger(logger)

	cfg := drafter.DefaultConfig()
	if f.config != "" {
		if cfg, err = drafter.LoadConfig(f.config); err != nil {
			return err
		}
	}

	var opts []export.Option
	if f.title != "" {
		opts = append(opts, export.WithTitle(f.title))
	}
	if f.background != "" {
		var bg drafter.Color
		if err := bg.UnmarshalText([]byte(f.background)); err != nil {
			return err
		}
		opts = append(opts, export.WithBackground(bg))
	}
	opts = append(opts, export.WithHidden(f.hidden))

	glyphs, err := loadFont(f.font)
	if err != nil {
		return err
	}

	cmds, err := readScript(f.script, stdin)
	if err != nil {
		return err
	}

	live := render.NewRaster(int(cfg.Width), int(cfg.Height))
	c := canvas.New(cfg,
		canvas.WithSurface(live),
		canvas.WithGlyphs(glyphs),
		canvas.WithLogger(logger),
	)
	c.Subscribe(func(ch canvas.Change) {
		if ch.Kind == canvas.OrderChanged {
			live.Reorder(stacking(c))
		}
	})

	player := script.NewPlayer(c, logger)
	if f.frames != "" {
		if err := os.MkdirAll(f.frames, 0o755); err != nil {
			return err
		}
		player.OnStep = func(step int, _ script.Command) error {
			return live.SavePNG(filepath.Join(f.frames, fmt.Sprintf("frame-%04d.png", step)))
		}
	}
	if err := player.Run(ctx, cmds); err != nil {
		return err
	}
	logger.Info("session replayed", "commands", len(cmds), "skipped", player.Skipped(), "curves", len(c.Curves()))

	for _, out := range strings.Split(f.outputs, ",") {
		out = strings.TrimSpace(out)
		if out == "" {
			continue
		}
		if err := export.WriteFile(out, c, opts...); err != nil {
			return err
		}
	}
	return nil
}

func loadFont(path string) (*text.Outliner, error) {
	if path == "" {
		return text.Default()
	}
	return text.Load(path)
}

func readScript(path string, stdin io.Reader) ([]script.Command, error) {
	if path == "-" {
		return script.Parse(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return script.Parse(f)
}

// stacking returns the UIDs of every curve on the board, bottom first.
func stacking(c *canvas.Canvas) []string {
	var uids []string
	for _, top := range c.Curves() {
		for _, m := range c.Members(top.ID) {
			uids = append(uids, m.UID)
		}
	}
	return uids
}
