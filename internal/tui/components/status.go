package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/quotewidget/internal/ports"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// StatusData is what the editor footer reports.
type StatusData struct {
	Target string
	Dirty  bool
	Busy   bool
	Alert  *ports.Alert
}

// Status renders the editor footer.
type Status struct {
	data StatusData
}

// NewStatus creates a Status component.
func NewStatus(data StatusData) Status {
	return Status{data: data}
}

// View renders the status lines.
func (s Status) View() string {
	state := "saved"
	switch {
	case s.data.Busy:
		state = "applying…"
	case s.data.Dirty:
		state = "unsaved changes"
	}
	lines := []string{mutedStyle.Render("Editing " + s.data.Target + " • " + state)}

	if a := s.data.Alert; a != nil {
		if a.Kind == ports.AlertError {
			lines = append(lines, failureStyle.Render("✗ "+a.Message))
		} else {
			lines = append(lines, successStyle.Render("✓ "+a.Message))
		}
	}
	return strings.Join(lines, "\n")
}

// Swatch renders a short block filled with hex, or the sentinel label when
// the color follows the device theme.
func Swatch(hex string) string {
	if !strings.HasPrefix(hex, "#") {
		return mutedStyle.Render("[" + hex + "]")
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
}
