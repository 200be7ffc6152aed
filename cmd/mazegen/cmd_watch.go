package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mazegen/internal/watch"
)

func newWatchCmd(a *app) *cobra.Command {
	var debounce = watch.DefaultDebounce
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate whenever the config file changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if _, err := a.generateOnce(); err != nil {
				return err
			}

			w, err := watch.New(a.configPath, debounce, func(context.Context) error {
				return a.regenerate(cmd)
			}, a.logger)
			if err != nil {
				return err
			}
			return w.Run(ctx)
		},
	}
	cmd.Flags().DurationVar(&debounce, "debounce", debounce, "quiet period before regenerating")
	return cmd
}

// regenerate reloads the config and writes a fresh layout. A config that
// fails to load keeps the previous one in effect.
func (a *app) regenerate(cmd *cobra.Command) error {
	if err := a.loadConfig(cmd); err != nil {
		return err
	}
	m, err := a.generateOnce()
	if err != nil {
		return err
	}
	a.logger.Info("scene regenerated",
		zap.Int64("seed", m.Seed()),
		zap.Int("walls", len(m.Walls())))
	return nil
}
