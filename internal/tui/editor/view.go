package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/quotewidget/internal/color"
	"github.com/alexisbeaulieu97/quotewidget/internal/domain/widget"
	"github.com/alexisbeaulieu97/quotewidget/internal/preview"
	"github.com/alexisbeaulieu97/quotewidget/internal/tui/components"
)

// View renders the editor.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	title, pv := m.header()
	sections := []string{
		title,
		pv,
		sectionStyle.Render(m.renderRows()),
	}

	status := components.NewStatus(components.StatusData{
		Target: m.ctrl.Identity().String(),
		Dirty:  m.ctrl.Dirty(),
		Busy:   m.busy,
		Alert:  m.alert,
	}).View()
	if m.busy {
		status = m.spinner.View() + " " + status
	}
	sections = append(sections, sectionStyle.Render(status), sectionStyle.Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) header() (string, string) {
	style, _ := m.frame.get()
	title := titleStyle.Render(fmt.Sprintf("Quote Widget • %s", m.ctrl.Identity()))
	return title, preview.Terminal(style, m.quote, m.previewWidth())
}

// rowsTop is the screen line of the first settings row.
func (m Model) rowsTop() int {
	title, pv := m.header()
	return lipgloss.Height(title) + lipgloss.Height(pv) + sectionStyle.GetMarginTop()
}

// barLeft is the screen column where slider bars start.
func barLeft() int {
	return labelStyle.GetWidth()
}

func (m Model) previewWidth() int {
	if m.width > 0 && m.width < 48 {
		return m.width
	}
	return 0
}

func (m Model) renderRows() string {
	d := m.ctrl.Drafts().Draft()
	lines := make([]string, 0, rowCount)
	for r := row(0); r < rowCount; r++ {
		label := labelStyle.Render("  " + rowLabels[r])
		if r == m.cursor {
			label = selectedLabelStyle.Render("▸ " + rowLabels[r])
		}
		lines = append(lines, label+m.renderValue(r, d))
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderValue(r row, d widget.Settings) string {
	switch r {
	case rowFontSize:
		return components.NewTrack(fontSizeTrack, 0).View(float64(d.FontSize), fmt.Sprintf("%dpx", d.FontSize))
	case rowFontWeight:
		return option(widget.FontWeightLabel(d.FontWeight))
	case rowTextHue:
		return m.hueView(d.TextColor, m.textHSL)
	case rowTextSaturation:
		return m.saturationView(d.TextColor, m.textHSL)
	case rowTextLightness:
		return m.lightnessView(d.TextColor, m.textHSL)
	case rowBackgroundHue:
		return m.hueView(d.BackgroundColor, m.bgHSL)
	case rowBackgroundSaturation:
		return m.saturationView(d.BackgroundColor, m.bgHSL)
	case rowBackgroundLightness:
		return m.lightnessView(d.BackgroundColor, m.bgHSL)
	case rowBackgroundType:
		return option(widget.LabelFor(widget.BackgroundTypes, d.BackgroundType, d.BackgroundType))
	case rowOpacity:
		return components.NewTrack(opacityTrack, 0).View(d.BackgroundOpacity, widget.OpacityLabel(d.BackgroundOpacity))
	case rowBorderRadius:
		return components.NewTrack(radiusTrack, 0).View(float64(d.BorderRadius), widget.BorderRadiusLabel(d.BorderRadius))
	case rowRefreshInterval:
		return option(widget.RefreshIntervalLabel(d.RefreshInterval))
	case rowAutoTheme:
		if d.AutoTheme {
			return option("On")
		}
		return option("Off")
	}
	return ""
}

func (m Model) hueView(value string, hsl color.HSL) string {
	if value == color.DeviceSentinel {
		return components.Swatch(value)
	}
	bar := components.NewHueTrack(hueTrack, 0)
	return bar.View(float64(hsl.H), fmt.Sprintf("%d°", hsl.H)) + " " + components.Swatch(value)
}

func (m Model) saturationView(value string, hsl color.HSL) string {
	if value == color.DeviceSentinel {
		return components.Swatch(value)
	}
	from, _ := color.NormalizeHex(color.HSLToHex(hsl.H, 0, 50))
	to, _ := color.NormalizeHex(color.HSLToHex(hsl.H, 100, 50))
	bar := components.NewGradientTrack(percentTrack, 0, from, to)
	return bar.View(float64(hsl.S), fmt.Sprintf("%d%%", hsl.S))
}

func (m Model) lightnessView(value string, hsl color.HSL) string {
	if value == color.DeviceSentinel {
		return components.Swatch(value)
	}
	from, _ := color.NormalizeHex(color.HSLToHex(hsl.H, hsl.S, 0))
	to, _ := color.NormalizeHex(color.HSLToHex(hsl.H, hsl.S, 100))
	bar := components.NewGradientTrack(percentTrack, 0, from, to)
	return bar.View(float64(hsl.L), fmt.Sprintf("%d%%", hsl.L))
}

func option(label string) string {
	return valueStyle.Render("◂ " + label + " ▸")
}
