// Package palette provides the color plumbing for display: hex color
// parsing/formatting and HSV-based face palette generation.
package palette

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ParseHex parses a "#rrggbb" or "#rgb" hex color string into a color
// with [0,1]-range channels. The string must begin with '#'.
//
// Channels are divided, not multiplied by a reciprocal: the division
// keeps FormatHex(ParseHex(s)) == s exact for 6-digit strings despite
// the ceil in FormatHex.
func ParseHex(s string) (colorful.Color, error) {
	if !strings.HasPrefix(s, "#") {
		return colorful.Color{}, fmt.Errorf("hex color %q must begin with '#'", s)
	}

	if len(s) != 7 && len(s) != 4 {
		return colorful.Color{}, fmt.Errorf("hex color %q must be #rrggbb or #rgb", s)
	}
	format, div := "#%02x%02x%02x", 255.0
	if len(s) == 4 {
		format, div = "#%1x%1x%1x", 15.0
	}

	var r, g, b uint8
	if n, err := fmt.Sscanf(s, format, &r, &g, &b); err != nil || n != 3 {
		return colorful.Color{}, fmt.Errorf("malformed hex color %q", s)
	}
	return colorful.Color{R: float64(r) / div, G: float64(g) / div, B: float64(b) / div}, nil
}

// FormatHex formats a [0,1]-range color as a lowercase "#rrggbb"
// string, rounding each channel up when converting to 8 bits. Callers
// pass the color explicitly; there is no ambient default.
func FormatHex(c colorful.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

// channel converts a [0,1] channel value to 8 bits with ceil rounding,
// clamped to the representable range.
func channel(v float64) uint8 {
	b := math.Ceil(clamp(v, 0, 1) * 255.0)
	return uint8(b)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FacePalette returns n display colors using HSV generation: hues are
// spread around the wheel with a little jitter, saturation and value
// kept in a band that reads well over a white background.
func FacePalette(r *rand.Rand, n int) []colorful.Color {
	colors := make([]colorful.Color, n)
	for i := range colors {
		hue := float64(i)/float64(n)*360.0 + r.Float64()*20.0
		sat := clamp(0.35+r.Float64()*0.3, 0, 1)
		val := clamp(0.65+r.Float64()*0.3, 0, 1)
		colors[i] = colorful.Hsv(math.Mod(hue, 360.0), sat, val)
	}
	return colors
}
