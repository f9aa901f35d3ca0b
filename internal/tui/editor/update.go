package editor

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/quotewidget/internal/color"
	"github.com/alexisbeaulieu97/quotewidget/internal/domain/widget"
	"github.com/alexisbeaulieu97/quotewidget/internal/ports"
	"github.com/alexisbeaulieu97/quotewidget/internal/slider"
	"github.com/alexisbeaulieu97/quotewidget/internal/tui/components"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case AlertMsg:
		a := ports.Alert(msg)
		m.alert = &a
		return m, waitForAlert(m.alerts)

	case appliedMsg:
		m.busy = false
		m.syncColors()
		return m, nil

	case reloadedMsg:
		m.busy = false
		m.syncColors()
		return m, nil

	case refreshedMsg:
		m.busy = false
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	if m.busy {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor = (m.cursor + rowCount - 1) % rowCount
	case key.Matches(msg, m.keys.Down):
		m.cursor = (m.cursor + 1) % rowCount
	case key.Matches(msg, m.keys.Left):
		m.adjust(-1)
	case key.Matches(msg, m.keys.Right):
		m.adjust(1)
	case key.Matches(msg, m.keys.FastLeft):
		m.adjust(-10)
	case key.Matches(msg, m.keys.FastRight):
		m.adjust(10)
	case key.Matches(msg, m.keys.Device):
		m.toggleDevice()
	case key.Matches(msg, m.keys.Apply):
		m.busy = true
		m.alert = nil
		return m, tea.Batch(m.spinner.Tick, applyCmd(m.ctx, m.ctrl))
	case key.Matches(msg, m.keys.Reload):
		m.busy = true
		m.alert = nil
		return m, reloadCmd(m.ctx, m.ctrl)
	case key.Matches(msg, m.keys.Refresh):
		m.busy = true
		m.alert = nil
		return m, refreshCmd(m.ctx, m.ctrl)
	}
	return m, nil
}

// adjust moves the selected row n steps. Sliders move along their track,
// option rows cycle and the hue wraps around the color wheel.
func (m *Model) adjust(n int) {
	d := m.ctrl.Drafts().Draft()
	dir := 1
	if n < 0 {
		dir = -1
	}

	switch m.cursor {
	case rowFontSize:
		m.set(widget.FieldFontSize, int(fontSizeTrack.Nudge(float64(d.FontSize), n)))
	case rowFontWeight:
		m.set(widget.FieldFontWeight, widget.Cycle(widget.FontWeights, d.FontWeight, dir))
	case rowTextHue:
		m.textHSL.H = wrapHue(m.textHSL.H + n)
		m.setColor(widget.FieldTextColor, m.textHSL)
	case rowTextSaturation:
		m.textHSL.S = int(percentTrack.Nudge(float64(m.textHSL.S), n))
		m.setColor(widget.FieldTextColor, m.textHSL)
	case rowTextLightness:
		m.textHSL.L = int(percentTrack.Nudge(float64(m.textHSL.L), n))
		m.setColor(widget.FieldTextColor, m.textHSL)
	case rowBackgroundHue:
		m.bgHSL.H = wrapHue(m.bgHSL.H + n)
		m.setColor(widget.FieldBackgroundColor, m.bgHSL)
	case rowBackgroundSaturation:
		m.bgHSL.S = int(percentTrack.Nudge(float64(m.bgHSL.S), n))
		m.setColor(widget.FieldBackgroundColor, m.bgHSL)
	case rowBackgroundLightness:
		m.bgHSL.L = int(percentTrack.Nudge(float64(m.bgHSL.L), n))
		m.setColor(widget.FieldBackgroundColor, m.bgHSL)
	case rowBackgroundType:
		m.set(widget.FieldBackgroundType, widget.Cycle(widget.BackgroundTypes, d.BackgroundType, dir))
	case rowOpacity:
		m.set(widget.FieldBackgroundOpacity, opacityTrack.Nudge(d.BackgroundOpacity, n))
	case rowBorderRadius:
		m.set(widget.FieldBorderRadius, int(radiusTrack.Nudge(float64(d.BorderRadius), dir)))
	case rowRefreshInterval:
		m.set(widget.FieldRefreshInterval, widget.Cycle(widget.RefreshIntervals, d.RefreshInterval, dir))
	case rowAutoTheme:
		m.set(widget.FieldAutoTheme, !d.AutoTheme)
	}
}

// handleMouse drives slider rows with the left button. A press on a bar
// starts a drag there, motion moves the thumb relative to where it was
// grabbed and release ends the drag. Presses during a drag are ignored.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	if m.busy {
		return m
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m
		}
		if m.gesture != nil && m.gesture.drag.Active() {
			return m
		}
		r, ok := m.rowAt(msg.Y)
		if !ok {
			return m
		}
		track, ok := m.sliderTrack(r)
		cell := msg.X - barLeft()
		if !ok || cell < 0 || cell >= components.DefaultTrackWidth {
			return m
		}
		x := cellToTrack(cell, track)
		drag := slider.NewDrag(track, m.sliderValue(r))
		v, _ := drag.Press(x)
		m.cursor = r
		m.gesture = &gesture{row: r, drag: drag, origin: x}
		m.setSlider(r, v)

	case tea.MouseActionMotion:
		if m.gesture == nil {
			return m
		}
		track, _ := m.sliderTrack(m.gesture.row)
		x := cellToTrack(msg.X-barLeft(), track)
		m.setSlider(m.gesture.row, m.gesture.drag.Move(x-m.gesture.origin))

	case tea.MouseActionRelease:
		if m.gesture == nil {
			return m
		}
		m.setSlider(m.gesture.row, m.gesture.drag.Release())
		m.gesture = nil
	}
	return m
}

func (m Model) rowAt(y int) (row, bool) {
	r := row(y - m.rowsTop())
	if r < 0 || r >= rowCount {
		return 0, false
	}
	return r, true
}

// cellToTrack maps the centre of a bar cell onto track coordinates.
func cellToTrack(cell int, track slider.Track) float64 {
	return (float64(cell) + 0.5) * track.Length / components.DefaultTrackWidth
}

// sliderTrack returns the track of a slider row. Color rows showing the
// device sentinel have no bar.
func (m Model) sliderTrack(r row) (slider.Track, bool) {
	d := m.ctrl.Drafts().Draft()
	switch r {
	case rowFontSize:
		return fontSizeTrack, true
	case rowTextHue, rowTextSaturation, rowTextLightness:
		return colorTrack(r == rowTextHue), d.TextColor != color.DeviceSentinel
	case rowBackgroundHue, rowBackgroundSaturation, rowBackgroundLightness:
		return colorTrack(r == rowBackgroundHue), d.BackgroundColor != color.DeviceSentinel
	case rowOpacity:
		return opacityTrack, true
	case rowBorderRadius:
		return radiusTrack, true
	}
	return slider.Track{}, false
}

func colorTrack(hue bool) slider.Track {
	if hue {
		return hueTrack
	}
	return percentTrack
}

func (m Model) sliderValue(r row) float64 {
	d := m.ctrl.Drafts().Draft()
	switch r {
	case rowFontSize:
		return float64(d.FontSize)
	case rowTextHue:
		return float64(m.textHSL.H)
	case rowTextSaturation:
		return float64(m.textHSL.S)
	case rowTextLightness:
		return float64(m.textHSL.L)
	case rowBackgroundHue:
		return float64(m.bgHSL.H)
	case rowBackgroundSaturation:
		return float64(m.bgHSL.S)
	case rowBackgroundLightness:
		return float64(m.bgHSL.L)
	case rowOpacity:
		return d.BackgroundOpacity
	case rowBorderRadius:
		return float64(d.BorderRadius)
	}
	return 0
}

// setSlider stores v for a slider row. An unchanged value is not written, so
// grabbing a thumb never rewrites a color through an HSL round trip.
func (m *Model) setSlider(r row, v float64) {
	if v == m.sliderValue(r) {
		return
	}
	switch r {
	case rowFontSize:
		m.set(widget.FieldFontSize, int(v))
	case rowTextHue:
		m.textHSL.H = int(v)
		m.setColor(widget.FieldTextColor, m.textHSL)
	case rowTextSaturation:
		m.textHSL.S = int(v)
		m.setColor(widget.FieldTextColor, m.textHSL)
	case rowTextLightness:
		m.textHSL.L = int(v)
		m.setColor(widget.FieldTextColor, m.textHSL)
	case rowBackgroundHue:
		m.bgHSL.H = int(v)
		m.setColor(widget.FieldBackgroundColor, m.bgHSL)
	case rowBackgroundSaturation:
		m.bgHSL.S = int(v)
		m.setColor(widget.FieldBackgroundColor, m.bgHSL)
	case rowBackgroundLightness:
		m.bgHSL.L = int(v)
		m.setColor(widget.FieldBackgroundColor, m.bgHSL)
	case rowOpacity:
		m.set(widget.FieldBackgroundOpacity, v)
	case rowBorderRadius:
		m.set(widget.FieldBorderRadius, int(v))
	}
}

// toggleDevice switches the selected color between the device sentinel and
// its HSL value.
func (m *Model) toggleDevice() {
	field, hsl, ok := m.colorRow()
	if !ok {
		return
	}
	current, _ := m.ctrl.Drafts().Draft().Get(field)
	if current == color.DeviceSentinel {
		m.setColor(field, hsl)
		return
	}
	m.set(field, color.DeviceSentinel)
}

func (m *Model) colorRow() (widget.Field, color.HSL, bool) {
	switch m.cursor {
	case rowTextHue, rowTextSaturation, rowTextLightness:
		return widget.FieldTextColor, m.textHSL, true
	case rowBackgroundHue, rowBackgroundSaturation, rowBackgroundLightness:
		return widget.FieldBackgroundColor, m.bgHSL, true
	default:
		return "", color.HSL{}, false
	}
}

func (m *Model) setColor(field widget.Field, hsl color.HSL) {
	hex, _ := color.NormalizeHex(hsl.Hex())
	m.set(field, hex)
}

func (m *Model) set(field widget.Field, value any) {
	if _, err := m.ctrl.Drafts().Set(field, value); err != nil {
		m.alert = &ports.Alert{Kind: ports.AlertError, Title: "Error", Message: err.Error()}
	}
}

func wrapHue(h int) int {
	return ((h % 360) + 360) % 360
}
