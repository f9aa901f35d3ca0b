package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	storePath  string
	theme      string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "quotewidget",
		Short:         "Configure the look of your quote widgets",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to the configuration file (default ~/.config/quotewidget/config.toml)")
	cmd.PersistentFlags().StringVar(&flags.storePath, "store", "", "Path to the widget store, overriding store_path")
	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "", "Host theme: auto, light or dark")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newShowCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newSetCmd(flags))
	cmd.AddCommand(newApplyCmd(flags))
	cmd.AddCommand(newEditCmd(flags))
	cmd.AddCommand(newRefreshCmd(flags))
	cmd.AddCommand(newWidgetsCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
