package drafter

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, want nil", err)
	}
}

func TestParseConfigOverridesDefaults(t *testing.T) {
	data := []byte(`
snap_tolerance = 10
dot_size = 12

[style]
line_width = 3
cap = "round"
join = "bevel"
dash = [4, 2, 0, 0]

[style.colors]
stroke = "#ff0000"
fill = "#00ff0080"
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.SnapTolerance != 10 {
		t.Errorf("SnapTolerance = %v, want 10", cfg.SnapTolerance)
	}
	if cfg.DotSize != 12 {
		t.Errorf("DotSize = %v, want 12", cfg.DotSize)
	}
	if cfg.DotRadius != 4 {
		t.Errorf("DotRadius = %v, want default 4", cfg.DotRadius)
	}
	if cfg.Style.LineWidth != 3 {
		t.Errorf("LineWidth = %v, want 3", cfg.Style.LineWidth)
	}
	if cfg.Style.Cap != CapRound {
		t.Errorf("Cap = %v, want round", cfg.Style.Cap)
	}
	if cfg.Style.Join != JoinBevel {
		t.Errorf("Join = %v, want bevel", cfg.Style.Join)
	}
	if got := cfg.Style.DashPattern(); len(got) != 2 || got[0] != 4 || got[1] != 2 {
		t.Errorf("DashPattern() = %v, want [4 2]", got)
	}
	if cfg.Style.Colors.Stroke != (Color{R: 0xff, A: 0xff}) {
		t.Errorf("Stroke = %v, want #ff0000ff", cfg.Style.Colors.Stroke.Hex())
	}
	if cfg.Style.Colors.Fill != (Color{G: 0xff, A: 0x80}) {
		t.Errorf("Fill = %v, want #00ff0080", cfg.Style.Colors.Fill.Hex())
	}
	if !cfg.Style.Fill {
		t.Error("Fill flag lost its default")
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		invalid bool
	}{
		{"syntax", "snap_tolerance = ", false},
		{"unknown key", "zoom = 3", false},
		{"bad color", "[style.colors]\nstroke = \"#12\"", false},
		{"bad cap", "[style]\ncap = \"pointy\"", false},
		{"zero dot size", "dot_size = 0", true},
		{"negative tolerance", "snap_tolerance = -1", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			if err == nil {
				t.Fatal("ParseConfig() error = nil, want error")
			}
			if got := errors.Is(err, ErrInvalidConfig); got != tt.invalid {
				t.Errorf("errors.Is(err, ErrInvalidConfig) = %v, want %v (err = %v)", got, tt.invalid, err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drafter.toml")
	if err := os.WriteFile(path, []byte("width = 1024\nheight = 768\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Width != 1024 || cfg.Height != 768 {
		t.Errorf("board = %vx%v, want 1024x768", cfg.Width, cfg.Height)
	}
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadConfig(missing) error = %v, want os.ErrNotExist", err)
	}
}

func TestConfigMarshalRoundTrip(t *testing.T) {
	want := DefaultConfig()
	want.SnapTolerance = 7
	data, err := want.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	got, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig(Marshal()) error = %v\n%s", err, data)
	}
	if got.SnapTolerance != 7 || got.Style.Colors != want.Style.Colors {
		t.Errorf("round trip lost values: %+v", got)
	}
}

func TestStyleClone(t *testing.T) {
	s := DefaultConfig().Style
	s.Rounded = &Point{X: 0.2, Y: 0.3}
	c := s.Clone()
	c.Rounded.X = 0.9
	if s.Rounded.X != 0.2 {
		t.Error("Clone shares Rounded with the original")
	}
}
