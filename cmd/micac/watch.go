package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch FILE",
		Short: "Re-check a file whenever it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("debounce") {
				debounce = a.cfg.Watch.Debounce.Duration
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			return a.runWatch(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), args[0], debounce)
		},
	}
	cmd.Flags().DurationVar(&debounce, "debounce", 200*time.Millisecond, "delay before re-checking after a change (default from config)")
	return cmd
}

// runWatch checks filename once and again after every change until ctx is
// cancelled.
func (a *app) runWatch(ctx context.Context, stdout, stderr io.Writer, filename string, debounce time.Duration) error {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return err
	}
	if _, err := os.Stat(abs); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Editors often replace files on save, so watch the directory.
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("failed to watch directory: %w", err)
	}

	logger := withSession(a.logger, "watch")
	logger.Info("watching", "file", abs, "debounce", debounce)

	out := a.diagnostics(stdout)
	errOut := a.diagnostics(stderr)
	check := func() {
		a.checkFile(out, errOut, filename, false)
	}

	check()
	watchLoop(ctx, watcher, abs, debounce, logger, check)
	logger.Info("stopped watching", "file", abs)
	return nil
}

// watchLoop calls check once per burst of events on file. A burst ends
// when no event has arrived for the debounce delay.
func watchLoop(ctx context.Context, w *fsnotify.Watcher, file string, debounce time.Duration, logger *slog.Logger, check func()) {
	var fire <-chan time.Time // nil while no change is pending

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != file {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("change detected", "op", event.Op.String())
			fire = time.After(debounce)

		case <-fire:
			fire = nil
			check()

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			logger.Error("watcher error", "error", err)
		}
	}
}
