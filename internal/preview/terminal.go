package preview

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/quotewidget/internal/color"
	"github.com/alexisbeaulieu97/quotewidget/internal/quotes"
)

const defaultWidth = 48

// Terminal draws a RenderedStyle as a lipgloss box. The terminal has no alpha
// channel, so the background is flattened over the host theme's device
// background and the author color over the flattened background. Thin fonts
// render faint, bold and black fonts render bold, and the box corners are
// rounded whenever the border radius is non-zero.
func Terminal(style RenderedStyle, quote quotes.Quote, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	host := color.ResolveDevice(color.RoleBackground, style.Theme.Dark())
	bg := style.Container.Background.Over(host)
	fg := style.Quote.Color.Over(bg)
	author := style.Author.Color.Over(bg)

	quoteStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Width(width - 4).
		Align(lipgloss.Center)
	switch {
	case style.Quote.FontWeight == WeightBold || style.Quote.FontFamily == FamilyBlack:
		quoteStyle = quoteStyle.Bold(true)
	case style.Quote.FontFamily == FamilyThin:
		quoteStyle = quoteStyle.Faint(true)
	}

	authorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(author)).
		Background(lipgloss.Color(bg)).
		Italic(style.Author.Italic).
		Width(width - 4).
		Align(lipgloss.Center)

	body := lipgloss.JoinVertical(lipgloss.Center,
		quoteStyle.Render(quote.Text),
		authorStyle.Render(quote.Byline()),
	)

	border := lipgloss.NormalBorder()
	if style.Container.BorderRadius > 0 {
		border = lipgloss.RoundedBorder()
	}

	box := lipgloss.NewStyle().
		Border(border).
		BorderForeground(lipgloss.Color(author)).
		Background(lipgloss.Color(bg)).
		Padding(verticalPadding(style.Quote.FontSize), 1)

	return box.Render(body)
}

// verticalPadding is one row per 14 points of font size, at least one.
func verticalPadding(fontSize float64) int {
	return int(math.Max(1, math.Round(fontSize/14)))
}
