package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/philipparndt/goaxis/internal/logging"
	"github.com/philipparndt/goaxis/pkg/axisfile"
	"github.com/philipparndt/goaxis/pkg/watcher"
	"github.com/spf13/cobra"
)

func newWatchCmd(a *app) *cobra.Command {
	var local bool

	cmd := &cobra.Command{
		Use:   "watch [file|pattern]...",
		Short: "Regenerate axis systems whenever their files change",
		Long:  "Print the generated segments and print them again after every change, until interrupted.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files, err := axisfile.Glob(args...)
			if err != nil {
				return err
			}

			var mu sync.Mutex
			regenerate := func(file string) {
				mu.Lock()
				defer mu.Unlock()

				sys, err := axisfile.Load(file, a.cfg)
				if err != nil {
					logging.Logger().Error("Failed to regenerate", slog.String("path", file), slog.Any("error", err))
					return
				}
				printTable(cmd.OutOrStdout(), buildRows(sys, local))
			}

			for _, file := range files {
				regenerate(file)
			}

			fw, err := watcher.NewFileWatcher(a.cfg.Watch.Debounce)
			if err != nil {
				return err
			}
			defer fw.Close()

			if err := fw.Watch(files, regenerate); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(cmd.ErrOrStderr(), "Watching %d file(s), press Ctrl+C to stop\n", len(files))
			if err := fw.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&local, "local", false, "Print segments in the local frame, ignoring placement")

	return cmd
}
