package main

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/quotewidget/internal/bridge/filestore"
	"github.com/alexisbeaulieu97/quotewidget/internal/color"
	"github.com/alexisbeaulieu97/quotewidget/internal/config"
	"github.com/alexisbeaulieu97/quotewidget/internal/controller"
	"github.com/alexisbeaulieu97/quotewidget/internal/logger"
	"github.com/alexisbeaulieu97/quotewidget/internal/ports"
	"github.com/alexisbeaulieu97/quotewidget/internal/preview"
)

// appContext bundles the services a command needs.
type appContext struct {
	ctx        context.Context
	cfg        config.Config
	log        ports.Logger
	store      *filestore.Store
	controller *controller.Controller
	theme      preview.Theme
	colors     color.Model
}

// newAppContext loads configuration, opens the widget store and initialises
// the controller. A nil alerter prints alerts to the command output.
func newAppContext(cmd *cobra.Command, flags *rootFlags, alerter ports.Alerter) (*appContext, error) {
	cfgPath := flags.configPath
	if cfgPath == "" {
		cfgPath = config.DefaultPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, newCommandError(cmd.Name(), "loading configuration "+cfgPath, err, "Fix the configuration file or pass --config with another path.")
	}
	if flags.storePath != "" {
		cfg.StorePath = config.ExpandHome(flags.storePath)
	}
	if flags.theme != "" {
		cfg.Theme = flags.theme
	}
	if flags.verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, newCommandError(cmd.Name(), "validating options", err, "Use --theme auto, light or dark.")
	}

	log, err := logger.New(logger.Options{
		Level:         cfg.LogLevel,
		HumanReadable: isTerminal(cmd.ErrOrStderr()),
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, newCommandError(cmd.Name(), "creating logger", err, "Set log_level to debug, info, warn or error.")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ports.WithCorrelationID(ctx, ports.GenerateCorrelationID())

	store, err := filestore.Open(cfg.StorePath, filestore.WithLogger(log.With("component", "filestore")))
	if err != nil {
		return nil, newCommandError(cmd.Name(), "opening widget store "+cfg.StorePath, err, "Check the store file or pass --store with another path.")
	}

	if alerter == nil {
		alerter = newPrintAlerter(cmd.OutOrStdout())
	}
	ctrl := controller.New(store, alerter, log)

	app := &appContext{
		ctx:        ctx,
		cfg:        cfg,
		log:        log,
		store:      store,
		controller: ctrl,
		theme:      cfg.ResolveTheme(),
		colors:     color.Model{Fallback: cfg.Fallback()},
	}
	log.Debug(ctx, "command started", "command", cmd.CommandPath(), "store", cfg.StorePath, "theme", app.theme.String())
	return app, nil
}

// load runs the controller's initial load.
func (a *appContext) load(operation string) error {
	if err := a.controller.Init(a.ctx); err != nil {
		return newCommandError(operation, "loading widget settings", err, "Check the widget store and try again.")
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
