package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/quotewidget/internal/domain/widget"
	qwerrors "github.com/alexisbeaulieu97/quotewidget/pkg/errors"
)

func newApplyCmd(root *rootFlags) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "apply FILE",
		Short: "Apply a settings file to all widgets",
		Long:  "Apply a YAML settings file to the default configuration and every widget. Keys missing from the file keep their built-in defaults.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, root, args[0], dryRun)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show the changes without applying them")

	return cmd
}

// readSettingsFile decodes a settings record onto the built-in defaults.
func readSettingsFile(path string) (widget.Settings, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return widget.Settings{}, fmt.Errorf("resolve settings path: %w", err)
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return widget.Settings{}, qwerrors.NewParseError(abs, 0, err)
	}

	settings := widget.DefaultSettings()
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return widget.Settings{}, qwerrors.NewParseError(abs, 0, err)
	}
	return settings, nil
}

func runApply(cmd *cobra.Command, root *rootFlags, path string, dryRun bool) error {
	settings, err := readSettingsFile(path)
	if err != nil {
		return newCommandError("apply", "reading "+path, err, "Provide a YAML file with keys such as font_size and text_color.")
	}
	if err := settings.Validate(); err != nil {
		return newCommandError("apply", "validating "+path, err, "Fix the value shown above and try again.")
	}

	app, err := newAppContext(cmd, root, nil)
	if err != nil {
		return err
	}
	if err := app.load("apply"); err != nil {
		return err
	}

	if err := printSettingsDiff(cmd, app.controller.Committed(), settings); err != nil {
		return err
	}
	if dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), "Dry run: nothing applied.")
		return nil
	}

	if err := app.controller.Commit(app.ctx, settings); err != nil {
		return newCommandError("apply", "applying settings", err, "Fix the widget store and run the command again.")
	}
	return nil
}
