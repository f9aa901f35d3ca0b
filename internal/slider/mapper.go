// Package slider maps gesture positions along a track to stepped values.
package slider

import "math"

// snapPrecision bounds float noise introduced by fractional steps such as 0.05.
const snapPrecision = 1e9

// Track describes a slider: its pixel geometry and value range.
type Track struct {
	Length float64
	Thumb  float64
	Min    float64
	Max    float64
	Step   float64
}

// Travel is the distance the thumb can move. It is never negative.
func (t Track) Travel() float64 {
	return math.Max(0, t.Length-t.Thumb)
}

// PositionToValue converts a thumb position into a value using t.
func (t Track) PositionToValue(position float64) float64 {
	return PositionToValue(position, t.Length, t.Thumb, t.Min, t.Max, t.Step)
}

// ValueToPosition converts a value into a thumb position using t.
func (t Track) ValueToPosition(value float64) float64 {
	return ValueToPosition(value, t.Length, t.Thumb, t.Min, t.Max)
}

// Nudge moves value by n steps and clamps the result to the range.
func (t Track) Nudge(value float64, n int) float64 {
	step := t.Step
	if step <= 0 {
		step = (t.Max - t.Min) / 100
	}
	return snap(value+float64(n)*step, t.Min, t.Max, t.Step)
}

// PositionToValue linearly maps position within [0, trackLength-thumbSize]
// onto [min, max], snaps to the nearest multiple of step counted from min and
// clamps the result. A track no longer than its thumb yields min.
func PositionToValue(position, trackLength, thumbSize, min, max, step float64) float64 {
	travel := trackLength - thumbSize
	if travel <= 0 {
		return min
	}
	raw := min + (position/travel)*(max-min)
	return snap(raw, min, max, step)
}

// ValueToPosition is the inverse of PositionToValue, used to place the thumb
// when the value changes programmatically. Values outside the range are
// clamped first.
func ValueToPosition(value, trackLength, thumbSize, min, max float64) float64 {
	travel := trackLength - thumbSize
	if travel <= 0 || max <= min {
		return 0
	}
	clamped := math.Min(max, math.Max(min, value))
	return (clamped - min) / (max - min) * travel
}

func snap(raw, min, max, step float64) float64 {
	v := raw
	if step > 0 {
		steps := math.Round((raw - min) / step)
		v = min + steps*step
	}
	v = math.Min(max, math.Max(min, v))
	return math.Round(v*snapPrecision) / snapPrecision
}
