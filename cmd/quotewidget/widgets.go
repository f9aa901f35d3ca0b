package main

import (
	"fmt"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/quotewidget/internal/bridge/filestore"
)

func newWidgetsCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "widgets",
		Short: "Manage widgets placed on the simulated home screen",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List widgets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWidgetsList(cmd, root)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "add [ID]",
		Short: "Place a new widget, allocating an id when none is given",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := 0
			if len(args) == 1 {
				parsed, err := parseWidgetID(args[0])
				if err != nil {
					return newCommandError("add widget", "parsing id", err, "Use a positive integer id.")
				}
				id = parsed
			}
			return runWidgetsAdd(cmd, root, id)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "remove ID",
		Short: "Remove a widget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseWidgetID(args[0])
			if err != nil {
				return newCommandError("remove widget", "parsing id", err, "Use a positive integer id.")
			}
			return runWidgetsRemove(cmd, root, id)
		},
	})

	return cmd
}

func parseWidgetID(raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", raw)
	}
	if id <= 0 {
		return 0, fmt.Errorf("widget id must be positive, got %d", id)
	}
	return id, nil
}

func runWidgetsList(cmd *cobra.Command, root *rootFlags) error {
	app, err := newAppContext(cmd, root, nil)
	if err != nil {
		return err
	}
	instances, err := app.store.Instances(app.ctx)
	if err != nil {
		return newCommandError("list widgets", "reading the widget store", err, "Check the store file and try again.")
	}

	if len(instances) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No widgets placed; settings apply to the defaults (standalone mode).")
		fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'quotewidget widgets add' to place one.")
		return nil
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tSETTINGS\tRENDERS\tLAST RENDER")
	for _, inst := range instances {
		source := "defaults"
		if inst.Settings != nil {
			source = "own"
		}
		fmt.Fprintf(writer, "%d\t%s\t%d\t%s\n", inst.ID, source, inst.Renders, formatRenderedAt(inst))
	}
	return writer.Flush()
}

func runWidgetsAdd(cmd *cobra.Command, root *rootFlags, id int) error {
	app, err := newAppContext(cmd, root, nil)
	if err != nil {
		return err
	}
	added, err := app.store.AddInstance(app.ctx, id)
	if err != nil {
		return newCommandError("add widget", "updating the widget store", err, "Pick an id that is not in use.")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Added widget %d\n", added)
	return nil
}

func runWidgetsRemove(cmd *cobra.Command, root *rootFlags, id int) error {
	app, err := newAppContext(cmd, root, nil)
	if err != nil {
		return err
	}
	if err := app.store.RemoveInstance(app.ctx, id); err != nil {
		return newCommandError("remove widget", "updating the widget store", err, "Run 'quotewidget widgets list' to see existing widgets.")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed widget %d\n", id)
	return nil
}

func formatRenderedAt(inst filestore.Instance) string {
	if inst.RenderedAt == nil {
		return "never"
	}
	return formatRelativeTime(*inst.RenderedAt)
}

func formatRelativeTime(ts time.Time) string {
	delta := time.Since(ts)
	switch {
	case delta < time.Minute:
		return "just now"
	case delta < time.Hour:
		return fmt.Sprintf("%dm ago", int(delta.Minutes()))
	case delta < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(delta.Hours()))
	default:
		return ts.Local().Format("2006-01-02 15:04")
	}
}
