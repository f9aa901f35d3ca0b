package editor

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/quotewidget/internal/ports"
)

func waitForAlert(alerts <-chan ports.Alert) tea.Cmd {
	if alerts == nil {
		return nil
	}
	return func() tea.Msg {
		a, ok := <-alerts
		if !ok {
			return nil
		}
		return AlertMsg(a)
	}
}

func applyCmd(ctx context.Context, ctrl Controller) tea.Cmd {
	return func() tea.Msg {
		return appliedMsg{err: ctrl.CommitDraft(ctx)}
	}
}

func reloadCmd(ctx context.Context, ctrl Controller) tea.Cmd {
	return func() tea.Msg {
		return reloadedMsg{err: ctrl.Reload(ctx)}
	}
}

func refreshCmd(ctx context.Context, ctrl Controller) tea.Cmd {
	return func() tea.Msg {
		return refreshedMsg{err: ctrl.ForceRefresh(ctx)}
	}
}
