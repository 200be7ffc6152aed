package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mazegen/internal/render"
)

func newPreviewCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Show mazes in the terminal; r regenerates, s saves, q quits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := render.LookupTheme(a.cfg.Preview.Theme)
			if err != nil {
				return err
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("screen: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("screen init: %w", err)
			}
			defer screen.Fini()

			// Console output would tear the screen while it is active.
			logger := a.logger
			a.logger = zap.NewNop()
			defer func() { a.logger = logger }()

			p := &render.Preview{
				Screen: screen,
				Theme:  theme,
				Seed:   a.cfg.Seed,
				Build:  a.buildMaze,
				Save:   a.export,
			}
			return p.Run()
		},
	}
}
