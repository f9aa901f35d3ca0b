package color

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToHSL(t *testing.T) {
	t.Parallel()

	cases := []struct {
		hex  string
		want HSL
	}{
		{"#FF0000", HSL{0, 100, 50}},
		{"00ff00", HSL{120, 100, 50}},
		{"#0052CC", HSL{216, 100, 40}},
		{"#201868", HSL{246, 63, 25}},
		{"#e5f0ff", HSL{215, 100, 95}},
		{"#808080", HSL{0, 0, 50}},
		{"#FFFFFF", HSL{0, 0, 100}},
		{"#000000", HSL{0, 0, 0}},
		{"#ff8000", HSL{30, 100, 50}},
	}

	for _, tc := range cases {
		t.Run(tc.hex, func(t *testing.T) {
			require.Equal(t, tc.want, HexToHSL(tc.hex))
		})
	}
}

func TestHexToHSLFallbackPolicy(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "device", "#12345", "#GGGGGG", "#FF000000"} {
		require.Equal(t, HSL{}, HexToHSL(input), input)
		require.Equal(t, HSL{H: 0, S: 100, L: 50}, Model{Fallback: FallbackVivid}.HexToHSL(input), input)
	}
}

func TestParseFallbackPolicy(t *testing.T) {
	t.Parallel()

	p, err := ParseFallbackPolicy("Vivid")
	require.NoError(t, err)
	require.Equal(t, FallbackVivid, p)

	p, err = ParseFallbackPolicy("")
	require.NoError(t, err)
	require.Equal(t, FallbackBlack, p)

	_, err = ParseFallbackPolicy("pastel")
	require.Error(t, err)
}

func TestHSLToHex(t *testing.T) {
	t.Parallel()

	require.Equal(t, "#ff0000", HSLToHex(0, 100, 50))
	require.Equal(t, "#ff0000", HSLToHex(360, 100, 50))
	require.Equal(t, "#00ff00", HSLToHex(120, 100, 50))
	require.Equal(t, "#000080", HSLToHex(240, 100, 25))
	require.Equal(t, "#ffffff", HSLToHex(200, 40, 100))
	require.Equal(t, "#000000", HSLToHex(200, 40, 0))
	require.Equal(t, "#ff0000", HSLToHex(-360, 150, 50))
}

func TestHexRoundTripWithinTolerance(t *testing.T) {
	t.Parallel()

	// Every color reachable from the picker's integer HSL grid must survive
	// hex -> hsl -> hex within two units per channel.
	for h := 0; h < 360; h += 3 {
		for s := 0; s <= 100; s += 5 {
			for l := 0; l <= 100; l += 5 {
				hex := HSLToHex(h, s, l)
				back := HexToHSL(hex).Hex()
				assertChannelsWithin(t, hex, back, 2)
			}
		}
	}

	for _, hex := range []string{"#0052cc", "#201868", "#e5f0ff", "#ff8000", "#7f7f7f", "#abcdef", "#123456"} {
		assertChannelsWithin(t, hex, HexToHSL(hex).Hex(), 2)
	}
}

func TestHSLRoundTripPreservesLightnessAndHue(t *testing.T) {
	t.Parallel()

	for h := 0; h < 360; h++ {
		for s := 80; s <= 100; s += 4 {
			for l := 40; l <= 60; l += 4 {
				got := HexToHSL(HSLToHex(h, s, l))
				require.Equal(t, l, got.L, "h=%d s=%d l=%d", h, s, l)
				require.LessOrEqual(t, hueDistance(h, got.H), 1, "h=%d s=%d l=%d", h, s, l)
			}
		}
	}
}

func TestHueWrapAround(t *testing.T) {
	t.Parallel()

	require.Equal(t, "#ff0004", HSLToHex(359, 100, 50))
	require.Equal(t, "#ff0400", HSLToHex(1, 100, 50))
	require.Equal(t, 359, HexToHSL(HSLToHex(359, 100, 50)).H)
	require.Equal(t, 1, HexToHSL(HSLToHex(1, 100, 50)).H)
	require.Equal(t, 2, hueDistance(359, 1))
}

func TestNormalizeHex(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"#ff8800":   "#FF8800",
		"ff8800":    "#FF8800",
		"#FF000000": "#000000",
		"FFFFFFFF":  "#FFFFFF",
	}
	for in, want := range cases {
		got, ok := NormalizeHex(in)
		require.True(t, ok, in)
		require.Equal(t, want, got)
	}

	_, ok := NormalizeHex("device")
	require.False(t, ok)
	require.True(t, IsHex("#abcDEF"))
	require.False(t, IsHex("#abcd"))
}

func hueDistance(a, b int) int {
	d := (a - b + 360) % 360
	if d > 180 {
		d = 360 - d
	}
	return d
}

func assertChannelsWithin(t *testing.T, want, got string, tolerance int) {
	t.Helper()
	for i := 1; i < 7; i += 2 {
		w, err := strconv.ParseUint(want[i:i+2], 16, 8)
		require.NoError(t, err)
		g, err := strconv.ParseUint(got[i:i+2], 16, 8)
		require.NoError(t, err)
		diff := int(w) - int(g)
		if diff < 0 {
			diff = -diff
		}
		assert.LessOrEqual(t, diff, tolerance, "%s vs %s", want, got)
	}
}
