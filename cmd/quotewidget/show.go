package main

import (
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/quotewidget/internal/domain/widget"
)

type showOptions struct {
	widgetID int
	output   string
}

func newShowCmd(root *rootFlags) *cobra.Command {
	opts := &showOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the settings of the current widget",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, root, opts)
		},
	}

	cmd.Flags().IntVar(&opts.widgetID, "widget", -1, "Widget id to show (0 for the defaults)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "text", "Output format: text or yaml")

	return cmd
}

func runShow(cmd *cobra.Command, root *rootFlags, opts *showOptions) error {
	if opts.output != "text" && opts.output != "yaml" {
		return newCommandError("show", "selecting output format", fmt.Errorf("unknown format %q", opts.output), "Use --output text or --output yaml.")
	}

	app, err := newAppContext(cmd, root, nil)
	if err != nil {
		return err
	}
	if err := app.load("show"); err != nil {
		return err
	}

	target := app.controller.Identity().String()
	if opts.widgetID >= 0 {
		if err := app.controller.LoadSettings(app.ctx, opts.widgetID); err != nil {
			return newCommandError("show", "loading widget "+strconv.Itoa(opts.widgetID), err, "Run 'quotewidget widgets list' to see existing widgets.")
		}
		target = widget.Bound(opts.widgetID).String()
	}
	settings := app.controller.Committed()

	if opts.output == "yaml" {
		data, err := yaml.Marshal(settings)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Settings for %s\n\n", target)
	return renderSettingsTable(cmd, settings)
}

func renderSettingsTable(cmd *cobra.Command, s widget.Settings) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, field := range widget.Fields() {
		fmt.Fprintf(writer, "%s\t%s\n", fieldTitle(field), describeValue(s, field))
	}
	return writer.Flush()
}

func fieldTitle(field widget.Field) string {
	c := cases.Title(language.English)
	return c.String(strings.ReplaceAll(string(field), "_", " "))
}

func describeValue(s widget.Settings, field widget.Field) string {
	switch field {
	case widget.FieldFontSize:
		return fmt.Sprintf("%dpx", s.FontSize)
	case widget.FieldFontWeight:
		return fmt.Sprintf("%s (%s)", widget.FontWeightLabel(s.FontWeight), s.FontWeight)
	case widget.FieldBackgroundType:
		return widget.LabelFor(widget.BackgroundTypes, s.BackgroundType, s.BackgroundType)
	case widget.FieldBackgroundOpacity:
		return widget.OpacityLabel(s.BackgroundOpacity)
	case widget.FieldBorderRadius:
		return fmt.Sprintf("%s (%d)", widget.BorderRadiusLabel(s.BorderRadius), s.BorderRadius)
	case widget.FieldRefreshInterval:
		return widget.RefreshIntervalLabel(s.RefreshInterval)
	}
	v, err := s.Get(field)
	if err != nil {
		return "?"
	}
	return fmt.Sprint(v)
}
