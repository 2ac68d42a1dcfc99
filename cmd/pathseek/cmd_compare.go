package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/pathseek/rover"
)

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare",
		Short: "Run every uninformed strategy on the rover mission concurrently",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.searchContext(cmd.Context())
			defer cancel()

			rows := make([]row, len(allKinds))
			g, gctx := errgroup.WithContext(ctx)
			for i, kind := range allKinds {
				g.Go(func() error {
					rows[i] = a.solve(gctx, kind, rover.ToolActions(), rover.MissionComplete)
					return rows[i].Err
				})
			}
			err := g.Wait()

			renderer{w: cmd.OutOrStdout(), styled: isTerminal(cmd.OutOrStdout())}.render(section{
				Title: "Strategies on the full mission",
				Rows:  rows,
			})
			if err != nil {
				a.logger.Warn("compare: a strategy failed", slog.Any("err", err))
			}

			return err
		},
	}
}
