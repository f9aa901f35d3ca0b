package slider

import "math"

// Drag tracks a single pan gesture over a Track.
//
// Touching the track outside the thumb snaps the thumb under the finger and
// the gesture continues from there. Touching the thumb itself anchors at its
// current position so it does not jump. Movement is always measured from the
// anchor, never from the raw gesture start. Touches while a drag is active
// are ignored until Release.
type Drag struct {
	track    Track
	position float64
	anchor   float64
	active   bool
}

// NewDrag creates a gesture tracker with the thumb placed at value.
func NewDrag(track Track, value float64) *Drag {
	return &Drag{track: track, position: track.ValueToPosition(value)}
}

// Active reports whether a drag is in progress.
func (d *Drag) Active() bool {
	return d.active
}

// Position returns the current thumb position.
func (d *Drag) Position() float64 {
	return d.position
}

// Value returns the stepped value under the thumb.
func (d *Drag) Value() float64 {
	return d.track.PositionToValue(d.position)
}

// SetValue repositions the thumb for a programmatic value change. It is a
// no-op while a drag is active so the gesture keeps control of the thumb.
func (d *Drag) SetValue(value float64) {
	if d.active {
		return
	}
	d.position = d.track.ValueToPosition(value)
}

// Press starts a drag at track coordinate x. It returns the new value and
// false if the press was ignored because a drag is already active.
func (d *Drag) Press(x float64) (float64, bool) {
	if d.active {
		return d.Value(), false
	}
	d.active = true
	if x >= d.position && x <= d.position+d.track.Thumb {
		d.anchor = d.position
		return d.Value(), true
	}
	d.position = d.clamp(x - d.track.Thumb/2)
	d.anchor = d.position
	return d.Value(), true
}

// Move applies a horizontal displacement dx measured from the press point.
func (d *Drag) Move(dx float64) float64 {
	if !d.active {
		return d.Value()
	}
	d.position = d.clamp(d.anchor + dx)
	return d.Value()
}

// Release ends the drag and re-enables press handling.
func (d *Drag) Release() float64 {
	d.active = false
	return d.Value()
}

func (d *Drag) clamp(pos float64) float64 {
	return math.Max(0, math.Min(d.track.Travel(), pos))
}
