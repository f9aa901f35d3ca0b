package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/quotewidget/internal/domain/widget"
	"github.com/alexisbeaulieu97/quotewidget/internal/preview"
	"github.com/alexisbeaulieu97/quotewidget/internal/quotes"
)

type setOptions struct {
	dryRun bool
}

func newSetCmd(root *rootFlags) *cobra.Command {
	opts := &setOptions{}

	cmd := &cobra.Command{
		Use:   "set KEY=VALUE...",
		Short: "Change settings and apply them to all widgets",
		Long: "Change one or more settings and apply the result to the default configuration and every widget.\n\n" +
			"Keys: " + strings.Join(fieldNames(), ", "),
		Example: "  quotewidget set font_size=18 text_color=#336699\n  quotewidget set background_opacity=40% --dry-run",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(cmd, root, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Preview the result without applying it")

	return cmd
}

type assignment struct {
	field widget.Field
	value any
}

func parseAssignments(args []string) ([]assignment, error) {
	out := make([]assignment, 0, len(args))
	for _, arg := range args {
		key, raw, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("%q is not KEY=VALUE", arg)
		}
		field, err := widget.ParseField(key)
		if err != nil {
			return nil, err
		}
		value, err := widget.ParseValue(field, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, assignment{field: field, value: value})
	}
	return out, nil
}

func runSet(cmd *cobra.Command, root *rootFlags, opts *setOptions, args []string) error {
	assignments, err := parseAssignments(args)
	if err != nil {
		return newCommandError("set", "parsing arguments", err, "Use KEY=VALUE with one of: "+strings.Join(fieldNames(), ", ")+".")
	}

	app, err := newAppContext(cmd, root, nil)
	if err != nil {
		return err
	}
	if err := app.load("set"); err != nil {
		return err
	}

	drafts := app.controller.Drafts()
	for _, a := range assignments {
		if _, err := drafts.Set(a.field, a.value); err != nil {
			return newCommandError("set", "updating "+string(a.field), err, "Check the value type for this key.")
		}
	}

	next := drafts.Draft().Normalize()
	if err := next.Validate(); err != nil {
		return newCommandError("set", "validating settings", err, "Run 'quotewidget set --help' for accepted values.")
	}

	style := preview.Render(drafts.Preview(), app.theme)
	fmt.Fprintln(cmd.OutOrStdout(), preview.Terminal(style, quotes.Default(), 0))
	if err := printSettingsDiff(cmd, app.controller.Committed(), next); err != nil {
		return err
	}

	if opts.dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), "Dry run: nothing applied.")
		return nil
	}

	if err := app.controller.Commit(app.ctx, next); err != nil {
		return newCommandError("set", "applying settings", err, "Fix the widget store and run the command again.")
	}
	return nil
}

func fieldNames() []string {
	fields := widget.Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = string(f)
	}
	return names
}
