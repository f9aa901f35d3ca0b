package components

import (
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/quotewidget/internal/color"
	"github.com/alexisbeaulieu97/quotewidget/internal/slider"
)

// DefaultTrackWidth is the rendered width of a slider track in cells.
const DefaultTrackWidth = 28

// Track renders a slider as a filled bar whose fill ends at the thumb.
type Track struct {
	bar   progress.Model
	track slider.Track
}

// NewTrack creates a track component using the default gradient.
func NewTrack(track slider.Track, width int) Track {
	return newTrack(track, width, progress.WithDefaultGradient())
}

// NewGradientTrack creates a track whose fill runs from one hex color to
// another, e.g. the saturation range of a hue.
func NewGradientTrack(track slider.Track, width int, from, to string) Track {
	return newTrack(track, width, progress.WithGradient(from, to))
}

// NewSolidTrack creates a track filled with a single color.
func NewSolidTrack(track slider.Track, width int, fill string) Track {
	return newTrack(track, width, progress.WithSolidFill(fill))
}

func newTrack(track slider.Track, width int, fill progress.Option) Track {
	if width <= 0 {
		width = DefaultTrackWidth
	}
	bar := progress.New(fill, progress.WithoutPercentage())
	bar.Width = width
	return Track{bar: bar, track: track}
}

// Ratio is the thumb position of value as a fraction of the travel.
func (t Track) Ratio(value float64) float64 {
	return ratio(t.track, value)
}

func ratio(track slider.Track, value float64) float64 {
	travel := track.Travel()
	if travel <= 0 {
		return 0
	}
	return math.Max(0, math.Min(1, track.ValueToPosition(value)/travel))
}

// View renders the bar for value followed by label.
func (t Track) View(value float64, label string) string {
	text := lipgloss.NewStyle().Bold(true).Render(label)
	return lipgloss.JoinHorizontal(lipgloss.Left, t.bar.ViewAs(t.Ratio(value)), " ", text)
}

// HueTrack renders the hue slider over the full color wheel, one stop per
// cell. The fill is solid up to the thumb and shaded after it.
type HueTrack struct {
	track slider.Track
	stops []string
}

// NewHueTrack creates a hue track width cells wide.
func NewHueTrack(track slider.Track, width int) HueTrack {
	if width <= 0 {
		width = DefaultTrackWidth
	}
	return HueTrack{track: track, stops: HueStops(width)}
}

// HueStops returns n colors sweeping the hue wheel from red back to red.
func HueStops(n int) []string {
	stops := make([]string, n)
	for i := range stops {
		h := 0
		if n > 1 {
			h = int(math.Round(float64(i) * 360 / float64(n-1)))
		}
		stops[i] = color.HSLToHex(h, 100, 50)
	}
	return stops
}

// View renders the bar for value followed by label.
func (t HueTrack) View(value float64, label string) string {
	filled := int(math.Round(ratio(t.track, value) * float64(len(t.stops))))
	var b strings.Builder
	for i, stop := range t.stops {
		cell := "░"
		if i < filled {
			cell = "█"
		}
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(stop)).Render(cell))
	}
	text := lipgloss.NewStyle().Bold(true).Render(label)
	return lipgloss.JoinHorizontal(lipgloss.Left, b.String(), " ", text)
}
