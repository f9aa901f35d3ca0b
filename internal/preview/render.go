// Package preview computes the visual description of a widget from its
// settings and renders it to the terminal.
package preview

import (
	"github.com/alexisbeaulieu97/quotewidget/internal/color"
	"github.com/alexisbeaulieu97/quotewidget/internal/domain/widget"
)

// Theme is the host's light or dark appearance.
type Theme int

const (
	ThemeLight Theme = iota
	ThemeDark
)

func (t Theme) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}

// Dark reports whether t is the dark theme.
func (t Theme) Dark() bool {
	return t == ThemeDark
}

// Font weights emitted in a TextStyle.
const (
	WeightNormal = "normal"
	WeightBold   = "bold"
)

// Font families substituted for weights the host cannot vary natively.
const (
	FamilyThin  = "sans-serif-thin"
	FamilyBlack = "sans-serif-black"
)

const (
	authorOpacity   = 0.7
	authorSizeRatio = 0.8
)

// TextStyle describes one line of widget text.
type TextStyle struct {
	Color      color.RGBA
	FontSize   float64
	FontFamily string
	FontWeight string
	Italic     bool
}

// ContainerStyle describes the widget's background box.
type ContainerStyle struct {
	Background   color.RGBA
	BorderRadius int
}

// RenderedStyle is the computed appearance of a widget.
type RenderedStyle struct {
	Theme     Theme
	Container ContainerStyle
	Quote     TextStyle
	Author    TextStyle
}

// Render computes the widget appearance for settings under theme.
func Render(settings widget.Settings, theme Theme) RenderedStyle {
	text := color.Resolve(settings.TextColor, color.RoleText, theme.Dark())
	family, weight := fontFor(settings.FontWeight, settings.FontFamily)

	return RenderedStyle{
		Theme: theme,
		Container: ContainerStyle{
			Background:   background(settings, theme),
			BorderRadius: settings.BorderRadius,
		},
		Quote: TextStyle{
			Color:      color.WithAlpha(text, 1),
			FontSize:   float64(settings.FontSize),
			FontFamily: family,
			FontWeight: weight,
		},
		Author: TextStyle{
			Color:      color.WithAlpha(text, authorOpacity),
			FontSize:   float64(settings.FontSize) * authorSizeRatio,
			FontFamily: settings.FontFamily,
			FontWeight: WeightNormal,
			Italic:     true,
		},
	}
}

func background(settings widget.Settings, theme Theme) color.RGBA {
	if settings.BackgroundType == widget.BackgroundTransparent {
		return color.Transparent
	}
	resolved := color.Resolve(settings.BackgroundColor, color.RoleBackground, theme.Dark())
	return color.WithAlpha(resolved, settings.BackgroundOpacity)
}

// fontFor maps a font weight onto a family/weight pair. The host has no
// variable-weight fonts, so thin and black weights switch family instead.
func fontFor(weight, base string) (string, string) {
	switch weight {
	case widget.WeightThin:
		return FamilyThin, WeightNormal
	case widget.WeightBold:
		return base, WeightBold
	case widget.WeightExtraBold:
		return FamilyBlack, WeightNormal
	default:
		return base, WeightNormal
	}
}
