package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRefreshCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Ask the host to re-render widgets now",
		Long:  "Re-render the bound widget, or push the defaults to every widget when running standalone.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, root, nil)
			if err != nil {
				return err
			}
			if err := app.load("refresh"); err != nil {
				return err
			}
			if err := app.controller.ForceRefresh(app.ctx); err != nil {
				return newCommandError("refresh", "refreshing "+app.controller.Identity().String(), err, "Run 'quotewidget widgets list' to check the widget still exists.")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Refreshed %s\n", app.controller.Identity())
			return nil
		},
	}

	return cmd
}
