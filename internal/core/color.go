package core

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Predefined pixel colors.
var (
	Transparent = color.RGBA{}
	Black       = color.RGBA{A: 255}
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	NewPath     = color.RGBA{R: 100, G: 200, B: 100, A: 255} // first pixel of a stroke
	Drag        = color.RGBA{R: 255, G: 200, B: 100, A: 255} // line segments while dragging
)

// ParseColor parses "#rrggbb" or "#rrggbbaa" (the leading '#' is optional).
// Colors without an alpha component are opaque.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("core: invalid color %q", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("core: invalid color %q: %w", s, err)
	}

	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}

// FormatColor returns the "#rrggbbaa" form of c.
func FormatColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
