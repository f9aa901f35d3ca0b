package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/quotewidget/internal/domain/widget"
	"github.com/alexisbeaulieu97/quotewidget/pkg/diff"
)

// printSettingsDiff writes the YAML-level difference between the committed
// settings and next, or a note when nothing changes.
func printSettingsDiff(cmd *cobra.Command, committed, next widget.Settings) error {
	before, err := yaml.Marshal(committed)
	if err != nil {
		return err
	}
	after, err := yaml.Marshal(next)
	if err != nil {
		return err
	}

	out := diff.Unified(before, after, "current", "new")
	if out == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "No changes.")
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
