package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"mazegen/internal/runlog"
)

func newHistoryCmd(a *app) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history [id-prefix]",
		Short: "List recent runs, or show how to reproduce one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := runlog.Open(a.cfg.History.Dir, a.logger)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				rl, err := store.Find(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "id:          %s\n", rl.ID)
				fmt.Fprintf(out, "time:        %s\n", rl.Timestamp.Format("2006-01-02 15:04:05"))
				fmt.Fprintf(out, "boundary:    %v\n", rl.Boundary)
				fmt.Fprintf(out, "orientation: %s\n", rl.Orientation)
				fmt.Fprintf(out, "walls:       %d\n", rl.Walls)
				fmt.Fprintf(out, "rooms:       %d\n", rl.Rooms)
				fmt.Fprintf(out, "scene:       %s\n", rl.Scene)
				fmt.Fprintf(out, "reproduce:   mazegen generate --seed %d --width %d --orientation %s\n",
					rl.Seed, rl.Width, rl.Orientation)
				if rl.Boundary != a.cfg.Region().Corners {
					fmt.Fprintf(out, "note:        boundary differs from the current config %v\n", a.cfg.Region().Corners)
				}
				return nil
			}

			runs, err := store.List(limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(out, "no runs recorded")
				return nil
			}
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTIME\tSEED\tWIDTH\tWALLS\tSCENE")
			for _, rl := range runs {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\n",
					shortID(rl.ID), rl.Timestamp.Format("2006-01-02 15:04"),
					rl.Seed, rl.Width, rl.Walls, rl.Scene)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of runs to list (0 = all)")
	return cmd
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
