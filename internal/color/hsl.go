// Package color converts between the hex and HSL representations used by the
// widget settings and composites colors with an opacity for rendering.
package color

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// DeviceSentinel is the color value meaning "resolve from the host theme".
const DeviceSentinel = "device"

var (
	hexPattern  = regexp.MustCompile(`(?i)^#?([0-9a-f]{6})$`)
	argbPattern = regexp.MustCompile(`(?i)^#?[0-9a-f]{2}([0-9a-f]{6})$`)
)

// HSL is a color with integer components: H in [0,360), S and L in [0,100].
type HSL struct {
	H int
	S int
	L int
}

func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", c.H, c.S, c.L)
}

// FallbackPolicy selects the HSL value returned for unparseable hex input.
type FallbackPolicy int

const (
	// FallbackBlack yields {0,0,0}.
	FallbackBlack FallbackPolicy = iota
	// FallbackVivid yields {0,100,50}, a fully saturated red.
	FallbackVivid
)

// HSL returns the fallback color for the policy.
func (p FallbackPolicy) HSL() HSL {
	if p == FallbackVivid {
		return HSL{H: 0, S: 100, L: 50}
	}
	return HSL{}
}

func (p FallbackPolicy) String() string {
	if p == FallbackVivid {
		return "vivid"
	}
	return "black"
}

// ParseFallbackPolicy maps a configuration value onto a FallbackPolicy.
func ParseFallbackPolicy(value string) (FallbackPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "black":
		return FallbackBlack, nil
	case "vivid":
		return FallbackVivid, nil
	default:
		return FallbackBlack, fmt.Errorf("unknown hsl fallback policy %q", value)
	}
}

// Model performs hex/HSL conversions with a fixed fallback policy.
type Model struct {
	Fallback FallbackPolicy
}

// HexToHSL converts a 6-digit hex string (optional '#', any case) into HSL.
// Unparseable input yields the policy's fallback value.
func (m Model) HexToHSL(hex string) HSL {
	c, ok := parseHex(hex)
	if !ok {
		return m.Fallback.HSL()
	}
	h, s, l := c.Hsl()
	return HSL{
		H: int(math.Round(h)) % 360,
		S: int(math.Round(s * 100)),
		L: int(math.Round(l * 100)),
	}
}

// HexToHSL converts using the black fallback policy.
func HexToHSL(hex string) HSL {
	return Model{}.HexToHSL(hex)
}

// HSLToHex converts HSL components into a lowercase "#rrggbb" string. Hue is
// taken modulo 360; saturation and lightness are clamped to [0,100].
func HSLToHex(h, s, l int) string {
	hue := math.Mod(float64(h), 360)
	if hue < 0 {
		hue += 360
	}
	sat := clampPercent(s)
	light := clampPercent(l)
	return colorful.Hsl(hue, sat, light).Clamped().Hex()
}

// Hex renders the HSL value as a hex string.
func (c HSL) Hex() string {
	return HSLToHex(c.H, c.S, c.L)
}

// IsHex reports whether value is a 6-digit hex color.
func IsHex(value string) bool {
	return hexPattern.MatchString(strings.TrimSpace(value))
}

// NormalizeHex returns the canonical "#RRGGBB" form of value. It accepts
// "RRGGBB", "#RRGGBB" and the "#AARRGGBB" form emitted by the native widget
// host, discarding the alpha byte.
func NormalizeHex(value string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	if m := hexPattern.FindStringSubmatch(trimmed); m != nil {
		return "#" + strings.ToUpper(m[1]), true
	}
	if m := argbPattern.FindStringSubmatch(trimmed); m != nil {
		return "#" + strings.ToUpper(m[1]), true
	}
	return "", false
}

func parseHex(hex string) (colorful.Color, bool) {
	m := hexPattern.FindStringSubmatch(strings.TrimSpace(hex))
	if m == nil {
		return colorful.Color{}, false
	}
	c, err := colorful.Hex("#" + strings.ToLower(m[1]))
	if err != nil {
		return colorful.Color{}, false
	}
	return c, true
}

func clampPercent(v int) float64 {
	switch {
	case v < 0:
		return 0
	case v > 100:
		return 1
	default:
		return float64(v) / 100
	}
}
