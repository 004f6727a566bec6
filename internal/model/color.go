package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	jkerr "github.com/jitterbugs/jitterkit/internal/errors"
)

// Channel bounds for a single RGB component.
const (
	ChannelMin = 0
	ChannelMax = 255
)

var (
	hexPattern       = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
	formattedPattern = regexp.MustCompile(`^rgb\(\s*(\d{1,3})\s+(\d{1,3})\s+(\d{1,3})\s*\)$`)
)

// Color is an RGB color with integer channels in [0, 255].
type Color struct {
	R int `json:"red"`
	G int `json:"green"`
	B int `json:"blue"`
}

// NewColor builds a Color, clamping each channel into range.
func NewColor(r, g, b int) Color {
	return Color{R: ClampChannel(r), G: ClampChannel(g), B: ClampChannel(b)}
}

// ClampChannel limits v to [ChannelMin, ChannelMax].
func ClampChannel(v int) int {
	if v < ChannelMin {
		return ChannelMin
	}
	if v > ChannelMax {
		return ChannelMax
	}
	return v
}

// ParseHex converts a "#RRGGBB" string into a Color.
// Input is case-insensitive; anything else is rejected rather than producing
// partial channel values.
func ParseHex(hex string) (Color, error) {
	if !hexPattern.MatchString(hex) {
		return Color{}, jkerr.InvalidField("hex color", fmt.Sprintf("%q (expected #RRGGBB)", hex))
	}
	c, err := colorful.Hex(strings.ToLower(hex))
	if err != nil {
		return Color{}, jkerr.InvalidField("hex color", err.Error())
	}
	r, g, b := c.RGB255()
	return Color{R: int(r), G: int(g), B: int(b)}, nil
}

// ParseFormatted parses the saved-list form "rgb(R G B)".
func ParseFormatted(s string) (Color, error) {
	m := formattedPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Color{}, jkerr.InvalidField("color", fmt.Sprintf("%q (expected rgb(R G B))", s))
	}
	var ch [3]int
	for i := range ch {
		v, _ := strconv.Atoi(m[i+1])
		if v > ChannelMax {
			return Color{}, jkerr.InvalidField("color", fmt.Sprintf("%q: channel %d out of range", s, v))
		}
		ch[i] = v
	}
	return Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// ParseColor accepts either a hex string or the formatted "rgb(R G B)" form.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return ParseHex(s)
	}
	return ParseFormatted(s)
}

// ParseChannel converts slider text into a channel value.
// Out-of-range integers are clamped; non-integers are rejected.
func ParseChannel(value string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, jkerr.InvalidField("channel", fmt.Sprintf("%q is not an integer", value))
	}
	return ClampChannel(v), nil
}

// Hex returns the lowercase "#rrggbb" form.
func (c Color) Hex() string {
	return c.colorful().Hex()
}

// String returns the saved-list form "rgb(R G B)" (space separated).
func (c Color) String() string {
	return fmt.Sprintf("rgb(%d %d %d)", c.R, c.G, c.B)
}

// CSS returns the comma-separated form used for swatch backgrounds.
func (c Color) CSS() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Readout returns the "R G B" text shown next to the swatch.
func (c Color) Readout() string {
	return fmt.Sprintf("%d %d %d", c.R, c.G, c.B)
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / ChannelMax,
		G: float64(c.G) / ChannelMax,
		B: float64(c.B) / ChannelMax,
	}
}

// ColorDisplay is everything the color tool shows for the current color.
// Swatch, sliders, labels and readout are all derived from one Color so they
// cannot drift apart.
type ColorDisplay struct {
	Swatch  string `json:"swatch"`
	Red     int    `json:"red"`
	Green   int    `json:"green"`
	Blue    int    `json:"blue"`
	Readout string `json:"readout"`
	Hex     string `json:"hex"`
}

// NewColorDisplay computes the display state for c.
func NewColorDisplay(c Color) ColorDisplay {
	return ColorDisplay{
		Swatch:  c.CSS(),
		Red:     c.R,
		Green:   c.G,
		Blue:    c.B,
		Readout: c.Readout(),
		Hex:     c.Hex(),
	}
}
