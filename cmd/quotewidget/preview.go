package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/quotewidget/internal/preview"
	"github.com/alexisbeaulieu97/quotewidget/internal/quotes"
)

type previewOptions struct {
	watch bool
	quote int
	width int
}

func newPreviewCmd(root *rootFlags) *cobra.Command {
	opts := &previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Render the current widget in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(cmd, root, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Re-render whenever the widget store changes")
	cmd.Flags().IntVar(&opts.quote, "quote", 0, "Index of the sample quote to show")
	cmd.Flags().IntVar(&opts.width, "width", 0, "Preview width in cells")

	return cmd
}

func runPreview(cmd *cobra.Command, root *rootFlags, opts *previewOptions) error {
	app, err := newAppContext(cmd, root, nil)
	if err != nil {
		return err
	}
	if err := app.load("preview"); err != nil {
		return err
	}

	quote := quotes.Pick(opts.quote)
	render := func() {
		style := preview.Render(app.controller.Committed(), app.theme)
		fmt.Fprintln(cmd.OutOrStdout(), preview.Terminal(style, quote, opts.width))
	}
	render()

	if !opts.watch {
		return nil
	}

	ctx, stop := signal.NotifyContext(app.ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return watchStore(ctx, app.store.Path(), cmd.ErrOrStderr(), func() {
		if err := app.controller.Reload(ctx); err != nil {
			app.log.Warn(ctx, "reload after store change failed", "error", err)
			return
		}
		render()
	})
}

// watchStore calls onChange whenever the file at path is written or
// replaced. The parent directory is watched because saves rename a
// temporary file over the store.
func watchStore(ctx context.Context, path string, errOut io.Writer, onChange func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return newCommandError("preview", "starting file watcher", err, "Run without --watch.")
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return newCommandError("preview", "watching "+filepath.Dir(path), err, "Check that the store directory exists.")
	}

	target := filepath.Clean(path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				onChange()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(errOut, "watch error: %v\n", err)
		}
	}
}
