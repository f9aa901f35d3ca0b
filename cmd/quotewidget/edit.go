package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/quotewidget/internal/quotes"
	"github.com/alexisbeaulieu97/quotewidget/internal/tui/editor"
)

func newEditCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit settings interactively with a live preview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
				return newCommandError("edit", "starting the editor", fmt.Errorf("not running in a terminal"), "Use 'quotewidget set KEY=VALUE' in scripts.")
			}
			return runEdit(cmd, root)
		},
	}

	return cmd
}

func runEdit(cmd *cobra.Command, root *rootFlags) error {
	alerts := editor.NewAlertQueue()
	app, err := newAppContext(cmd, root, alerts)
	if err != nil {
		return err
	}
	if err := app.load("edit"); err != nil {
		return err
	}

	model := editor.New(app.ctx, app.controller, editor.Options{
		Theme:    app.theme,
		Fallback: app.colors.Fallback,
		Quote:    quotes.Default(),
		Alerts:   alerts.C(),
	})
	defer model.Close()

	if _, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(app.ctx)).Run(); err != nil {
		return newCommandError("edit", "running the editor", err, "Try again in a larger terminal window.")
	}
	return nil
}
