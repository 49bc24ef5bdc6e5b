package palette_test

import (
	"math/rand"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/irfansharif/polyhedra/internal/palette"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    colorful.Color
		wantErr bool
	}{
		{"#336699", colorful.Color{R: 0.2, G: 0.4, B: 0.6}, false},
		{"#000000", colorful.Color{}, false},
		{"#ffffff", colorful.Color{R: 1, G: 1, B: 1}, false},
		{"#f00", colorful.Color{R: 1}, false},
		{"#fff", colorful.Color{R: 1, G: 1, B: 1}, false},
		{"336699", colorful.Color{}, true},  // missing '#'
		{"#12", colorful.Color{}, true},     // too short
		{"#12345", colorful.Color{}, true},  // bad length
		{"#1234567", colorful.Color{}, true}, // trailing digit
		{"#zzzzzz", colorful.Color{}, true}, // non-hex digits
		{"", colorful.Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := palette.ParseHex(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.want.R, got.R, 1e-12)
			assert.InDelta(t, tt.want.G, got.G, 1e-12)
			assert.InDelta(t, tt.want.B, got.B, 1e-12)
		})
	}
}

func TestFormatHex(t *testing.T) {
	tests := []struct {
		name string
		in   colorful.Color
		want string
	}{
		{"black", colorful.Color{}, "#000000"},
		{"white", colorful.Color{R: 1, G: 1, B: 1}, "#ffffff"},
		{"rounds up", colorful.Color{R: 0.5}, "#800000"}, // 127.5 ceils to 128
		{"clamps", colorful.Color{R: 1.2, G: -0.1, B: 0}, "#ff0000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, palette.FormatHex(tt.in))
		})
	}
}

func TestHexRoundTrip(t *testing.T) {
	// Parse then format must reproduce 6-digit lowercase strings
	// exactly, ceil rounding notwithstanding.
	for _, s := range []string{
		"#000000", "#ffffff", "#336699", "#abcdef",
		"#010203", "#7f8081", "#59b3a1", "#fe01aa",
	} {
		c, err := palette.ParseHex(s)
		require.NoError(t, err)
		assert.Equal(t, s, palette.FormatHex(c))
	}
}

func TestFacePalette(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	colors := palette.FacePalette(r, 12)
	require.Len(t, colors, 12)

	for i, c := range colors {
		assert.True(t, c.IsValid(), "color %d out of range: %v", i, c)
	}

	// Same seed, same palette.
	again := palette.FacePalette(rand.New(rand.NewSource(42)), 12)
	assert.Equal(t, colors, again)
}
