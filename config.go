package drafter

import (
	"bytes"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the editor settings a canvas is created with. It is a
// plain value: a canvas copies it on construction and never mutates it.
type Config struct {
	// Width and Height are the board size.
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`

	// DotSize is the diameter of control point dots and the hit radius
	// used when picking them.
	DotSize float64 `toml:"dot_size"`

	// DotRadius pads path rectangles when hit-testing segments.
	DotRadius float64 `toml:"dot_radius"`

	// SnapTolerance is the distance below which points align.
	SnapTolerance float64 `toml:"snap_tolerance"`

	// ReadoutMin is the smallest guide distance reported for display
	// unless snapping is forced.
	ReadoutMin float64 `toml:"readout_min"`

	// FreehandStep is the displacement a freehand drag must exceed before
	// a new segment is appended.
	FreehandStep float64 `toml:"freehand_step"`

	// FontSize is the text tool glyph size.
	FontSize float64 `toml:"font_size"`

	// Style is applied to newly created curves.
	Style Style `toml:"style"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{
		Width:         800,
		Height:        600,
		DotSize:       8,
		DotRadius:     4,
		SnapTolerance: 5,
		ReadoutMin:    2,
		FreehandStep:  8,
		FontSize:      18,
		Style: Style{
			Fill:      true,
			LineWidth: 1,
			Cap:       CapButt,
			Join:      JoinMiter,
			Alpha:     [2]float64{1, 1},
			Shadow:    [3]float64{2, 8, 8},
			GradientDirection: [2]Point{
				{X: 0, Y: 0},
				{X: 1, Y: 0},
			},
			GradientLocation: [3]float64{0, 0.5, 1},
			Colors: Colors{
				Stroke: Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
				Fill:   Color{R: 0x00, G: 0x7a, B: 0xff, A: 0xff},
				Shadow: Color{A: 0xff},
				Gradient: [3]Color{
					{R: 0xff, G: 0x2d, B: 0x55, A: 0xff},
					{R: 0x00, G: 0x7a, B: 0xff, A: 0xff},
					{R: 0xaf, G: 0x52, B: 0xde, A: 0xff},
				},
			},
		},
	}
}

// ParseConfig decodes TOML data over DefaultConfig. Keys missing from
// data keep their default values; unknown keys are an error.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("drafter: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads a TOML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("drafter: load config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, err
	}
	Logger().Info("config loaded", "path", path)
	return cfg, nil
}

// Marshal encodes the config as TOML.
func (c Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: board size %gx%g", ErrInvalidConfig, c.Width, c.Height)
	case c.DotSize <= 0:
		return fmt.Errorf("%w: dot_size %g", ErrInvalidConfig, c.DotSize)
	case c.DotRadius < 0:
		return fmt.Errorf("%w: dot_radius %g", ErrInvalidConfig, c.DotRadius)
	case c.SnapTolerance < 0:
		return fmt.Errorf("%w: snap_tolerance %g", ErrInvalidConfig, c.SnapTolerance)
	case c.FreehandStep < 0:
		return fmt.Errorf("%w: freehand_step %g", ErrInvalidConfig, c.FreehandStep)
	case c.Style.LineWidth < 0:
		return fmt.Errorf("%w: line_width %g", ErrInvalidConfig, c.Style.LineWidth)
	}
	return nil
}
