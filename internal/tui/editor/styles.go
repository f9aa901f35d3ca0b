package editor

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("99")
	accentColor  = lipgloss.Color("212")
	mutedColor   = lipgloss.Color("245")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Width(24)

	selectedLabelStyle = lipgloss.NewStyle().
				Width(24).
				Foreground(accentColor).
				Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	spinnerStyle = lipgloss.NewStyle().Foreground(primaryColor)

	sectionStyle = lipgloss.NewStyle().MarginTop(1)
)
