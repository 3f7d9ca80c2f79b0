package drafter

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	// CapButt specifies a flat line cap.
	CapButt LineCap = iota
	// CapRound specifies a rounded line cap.
	CapRound
	// CapSquare specifies a square line cap.
	CapSquare
)

var capNames = [...]string{"butt", "round", "square"}

// String returns the cap name.
func (c LineCap) String() string {
	if c < 0 || int(c) >= len(capNames) {
		return "LineCap(" + strconv.Itoa(int(c)) + ")"
	}
	return capNames[c]
}

// MarshalText implements encoding.TextMarshaler.
func (c LineCap) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *LineCap) UnmarshalText(b []byte) error {
	for i, name := range capNames {
		if strings.EqualFold(string(b), name) {
			*c = LineCap(i)
			return nil
		}
	}
	return fmt.Errorf("drafter: unknown line cap %q", b)
}

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	// JoinMiter specifies a sharp (mitered) join.
	JoinMiter LineJoin = iota
	// JoinRound specifies a rounded join.
	JoinRound
	// JoinBevel specifies a beveled join.
	JoinBevel
)

var joinNames = [...]string{"miter", "round", "bevel"}

// String returns the join name.
func (j LineJoin) String() string {
	if j < 0 || int(j) >= len(joinNames) {
		return "LineJoin(" + strconv.Itoa(int(j)) + ")"
	}
	return joinNames[j]
}

// MarshalText implements encoding.TextMarshaler.
func (j LineJoin) MarshalText() ([]byte, error) {
	return []byte(j.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (j *LineJoin) UnmarshalText(b []byte) error {
	for i, name := range joinNames {
		if strings.EqualFold(string(b), name) {
			*j = LineJoin(i)
			return nil
		}
	}
	return fmt.Errorf("drafter: unknown line join %q", b)
}

// Color is a non-premultiplied sRGB color that reads and writes as a
// "#rrggbb" or "#rrggbbaa" hex string.
type Color color.NRGBA

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA(c).RGBA()
}

// Hex returns the color as "#rrggbbaa".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(b []byte) error {
	s := strings.TrimPrefix(string(b), "#")
	if len(s) == 6 {
		s += "ff"
	}
	if len(s) != 8 {
		return fmt.Errorf("drafter: invalid color %q", b)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("drafter: invalid color %q: %w", b, err)
	}
	*c = Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	return nil
}

// Colors holds every color a curve is painted with.
type Colors struct {
	Stroke   Color    `toml:"stroke"`
	Fill     Color    `toml:"fill"`
	Shadow   Color    `toml:"shadow"`
	Gradient [3]Color `toml:"gradient"`
}

// Style describes how a curve is painted.
type Style struct {
	Fill      bool       `toml:"fill"`
	LineWidth float64    `toml:"line_width"`
	Cap       LineCap    `toml:"cap"`
	Join      LineJoin   `toml:"join"`
	Dash      [4]float64 `toml:"dash"`

	// Alpha holds the stroke and fill opacity.
	Alpha [2]float64 `toml:"alpha"`

	// Shadow holds the shadow radius and its x and y offsets.
	Shadow [3]float64 `toml:"shadow"`

	Gradient bool `toml:"gradient"`

	// GradientDirection holds the gradient start and end as fractions of
	// the curve bounds.
	GradientDirection [2]Point `toml:"gradient_direction"`

	// GradientLocation holds the three stop offsets in [0,1].
	GradientLocation [3]float64 `toml:"gradient_location"`

	Colors Colors  `toml:"colors"`
	Blur   float64 `toml:"blur"`

	// Rounded holds the corner rounding fractions of rectangles; nil for
	// every other shape.
	Rounded *Point `toml:"-"`
}

// Clone returns a copy of s that shares no memory with it.
func (s Style) Clone() Style {
	if s.Rounded != nil {
		r := *s.Rounded
		s.Rounded = &r
	}
	return s
}

// DashPattern returns the non-zero dash lengths.
func (s Style) DashPattern() []float64 {
	var out []float64
	for _, d := range s.Dash {
		if d > 0 {
			out = append(out, d)
		}
	}
	return out
}
