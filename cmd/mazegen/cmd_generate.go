package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newGenerateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "generate",
		Short: "Generate a maze and write it into the scene document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.generateOnce()
			if err != nil {
				return err
			}
			a.logger.Info("scene updated",
				zap.String("scene", a.sceneOutput()),
				zap.Int64("seed", m.Seed()),
				zap.Int("walls", len(m.Walls())))
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d walls to %s (seed %d)\n",
				len(m.Walls()), a.sceneOutput(), m.Seed())
			return nil
		},
	}
}
