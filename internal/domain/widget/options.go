package widget

import (
	"fmt"
	"math"
)

// Option is a selectable value with its display label.
type Option[T comparable] struct {
	Label string
	Value T
}

// FontWeights lists the selectable font weights.
var FontWeights = []Option[string]{
	{Label: "Thin", Value: WeightThin},
	{Label: "Medium", Value: WeightMedium},
	{Label: "Bold", Value: WeightBold},
	{Label: "ExtraBold", Value: WeightExtraBold},
}

// RefreshIntervals lists the selectable refresh intervals in minutes.
var RefreshIntervals = []Option[int]{
	{Label: "15 minutes", Value: 15},
	{Label: "30 minutes", Value: 30},
	{Label: "1 hour", Value: 60},
	{Label: "2 hours", Value: 120},
	{Label: "6 hours", Value: 360},
	{Label: "12 hours", Value: 720},
	{Label: "24 hours", Value: 1440},
}

// BorderRadii lists the border radius steps.
var BorderRadii = []Option[int]{
	{Label: "None", Value: 0},
	{Label: "Sm", Value: 8},
	{Label: "Md", Value: 16},
	{Label: "Lg", Value: 24},
	{Label: "XL", Value: 32},
	{Label: "2XL", Value: 40},
	{Label: "3XL", Value: 48},
	{Label: "4XL", Value: 56},
}

// BackgroundTypes lists the background modes.
var BackgroundTypes = []Option[string]{
	{Label: "Solid", Value: BackgroundSolid},
	{Label: "Transparent", Value: BackgroundTransparent},
	{Label: "Translucent", Value: BackgroundTranslucent},
}

// LabelFor returns the label of value in options, or fallback when absent.
func LabelFor[T comparable](options []Option[T], value T, fallback string) string {
	for _, o := range options {
		if o.Value == value {
			return o.Label
		}
	}
	return fallback
}

// Cycle returns the option value n positions away from current, wrapping at
// both ends. An unknown current value starts from the first option.
func Cycle[T comparable](options []Option[T], current T, n int) T {
	if len(options) == 0 {
		return current
	}
	idx := 0
	for i, o := range options {
		if o.Value == current {
			idx = i
			break
		}
	}
	idx = ((idx+n)%len(options) + len(options)) % len(options)
	return options[idx].Value
}

// BorderRadiusLabel returns the size label for a radius, e.g. "Md".
func BorderRadiusLabel(radius int) string {
	return LabelFor(BorderRadii, radius, fmt.Sprintf("%ddp", radius))
}

// FontWeightLabel returns the display name of a font weight.
func FontWeightLabel(weight string) string {
	return LabelFor(FontWeights, weight, weight)
}

// RefreshIntervalLabel returns the display name of a refresh interval.
func RefreshIntervalLabel(minutes int) string {
	return LabelFor(RefreshIntervals, minutes, fmt.Sprintf("%d minutes", minutes))
}

// OpacityLabel renders an opacity fraction as a percentage.
func OpacityLabel(opacity float64) string {
	return fmt.Sprintf("%d%%", int(math.Round(opacity*100)))
}
