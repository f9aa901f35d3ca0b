package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/quotewidget/internal/ports"
)

var (
	alertSuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	alertErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

type printAlerter struct {
	w io.Writer
}

func newPrintAlerter(w io.Writer) *printAlerter {
	return &printAlerter{w: w}
}

// Alert implements ports.Alerter.
func (p *printAlerter) Alert(a ports.Alert) {
	style := alertSuccessStyle
	icon := "✓"
	if a.Kind == ports.AlertError {
		style = alertErrorStyle
		icon = "✗"
	}
	fmt.Fprintln(p.w, style.Render(fmt.Sprintf("%s %s: %s", icon, a.Title, a.Message)))
}
