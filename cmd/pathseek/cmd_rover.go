package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathseek/rover"
)

func newRoverCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rover",
		Short: "Solve the rover mission with BFS, DFS and DLS, whole and decomposed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := a.searchContext(cmd.Context())
			defer cancel()

			basic := section{Title: "Part 3) without tool"}
			for _, kind := range []string{kindBFS, kindDFS} {
				basic.Rows = append(basic.Rows, a.solve(ctx, kind, rover.BasicActions(), rover.MissionComplete))
			}

			full := section{Title: "Part 5) with tool"}
			for _, kind := range []string{kindBFS, kindDFS, kindDLS} {
				full.Rows = append(full.Rows, a.solve(ctx, kind, rover.ToolActions(), rover.MissionComplete))
			}

			sections := []section{basic, full}
			for _, kind := range []string{kindBFS, kindDFS, kindDLS} {
				rows, err := a.decompose(ctx, kind)
				s := section{Title: "Part 6) decomposed, " + kind, Rows: rows}
				if err != nil {
					s.Note = err.Error()
				}
				sections = append(sections, s)
			}

			renderer{w: cmd.OutOrStdout(), styled: isTerminal(cmd.OutOrStdout())}.render(sections...)
			a.logger.Info("rover: report written", slog.Int("sections", len(sections)))

			return nil
		},
	}
}
