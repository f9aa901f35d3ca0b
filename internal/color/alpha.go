package color

import (
	"fmt"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBA is a color with 8-bit channels and an alpha fraction in [0,1].
type RGBA struct {
	R uint8
	G uint8
	B uint8
	A float64
}

// Transparent is the fully transparent color.
var Transparent = RGBA{}

// WithAlpha decomposes a hex color into its channels and attaches alpha.
// Alpha is not clamped; callers bound it through their value ranges.
// Unparseable hex decomposes to black.
func WithAlpha(hex string, alpha float64) RGBA {
	c, ok := parseHex(hex)
	if !ok {
		return RGBA{A: alpha}
	}
	r, g, b := c.RGB255()
	return RGBA{R: r, G: g, B: b, A: alpha}
}

// IsTransparent reports whether the color has zero alpha.
func (c RGBA) IsTransparent() bool {
	return c.A == 0
}

// Hex returns the "#rrggbb" channels, ignoring alpha.
func (c RGBA) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGBA) String() string {
	if c == Transparent {
		return "transparent"
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, strconv.FormatFloat(c.A, 'f', -1, 64))
}

// Over composites c onto an opaque base color and returns the visible hex
// color. Terminals have no alpha channel, so previews flatten through this.
func (c RGBA) Over(base string) string {
	bg, ok := parseHex(base)
	if !ok {
		bg = colorful.Color{}
	}
	fg := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	alpha := c.A
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return bg.BlendRgb(fg, alpha).Clamped().Hex()
}
