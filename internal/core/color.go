package core

import (
	"fmt"
	"image/color"
	"strconv"
)

// Color is a 24-bit RGB color. Frontends map it to terminal true-color
// escapes or window pixels.
type Color struct {
	R, G, B uint8
}

// Predefined colors for game elements.
var (
	ColorBlack     = Color{0, 0, 0}
	ColorWhite     = Color{255, 255, 255}
	ColorRed       = Color{255, 0, 0}
	ColorGreen     = Color{0, 255, 0}
	ColorBlue      = Color{0, 0, 255}
	ColorLightBlue = Color{100, 100, 255}
	ColorYellow    = Color{255, 255, 0}
)

// Gray returns a neutral gray with the given brightness.
func Gray(level uint8) Color {
	return Color{level, level, level}
}

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ToRGBA converts the color to an opaque image/color value.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// ParseColor parses a "#rrggbb" string.
func ParseColor(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, fmt.Errorf("invalid color %q: expected #rrggbb", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
