package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/pathseek/astar"
	"github.com/katalvlaran/pathseek/cmd/pathseek/internal/config"
	"github.com/katalvlaran/pathseek/graph"
	"github.com/katalvlaran/pathseek/marsmap"
)

func newRouteCmd(a *app) *cobra.Command {
	var mapPath, from, to, heuristic string
	var grid, diagonal bool
	cmd := &cobra.Command{
		Use:   "route",
		Short: "Find the cheapest route across a map with A*",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rc := a.cfg.Route
			if cmd.Flags().Changed("map") {
				rc.Map = mapPath
			}
			if cmd.Flags().Changed("from") {
				rc.Start = from
			}
			if cmd.Flags().Changed("to") {
				rc.Goal = to
			}
			if cmd.Flags().Changed("heuristic") {
				rc.Heuristic = heuristic
			}

			var g *graph.Graph
			var err error
			if grid {
				conn := marsmap.Conn4
				if diagonal {
					conn = marsmap.Conn8
				}
				g, err = marsmap.LoadGrid(rc.Map, conn)
			} else {
				g, err = marsmap.Load(rc.Map)
			}
			if err != nil {
				return err
			}
			goal, err := marsmap.ParseCoord(rc.Goal)
			if err != nil {
				return err
			}
			var h astar.Heuristic
			switch rc.Heuristic {
			case config.HeuristicSLD:
				h = marsmap.StraightLine(goal)
			case config.HeuristicManhattan:
				h = marsmap.Manhattan(goal)
			case config.HeuristicZero:
				h = astar.ZeroHeuristic
			default:
				return fmt.Errorf("unknown heuristic %q", rc.Heuristic)
			}

			ctx, cancel := a.searchContext(cmd.Context())
			defer cancel()
			ctx, run := a.rec.Start(ctx, "astar",
				attribute.String("heuristic", rc.Heuristic),
				attribute.String("map", rc.Map),
			)
			res, err := astar.Search(rc.Start, astar.FromGraph(g), h, marsmap.Goal(goal),
				astar.WithContext(ctx),
				astar.WithLogger(a.logger),
				astar.WithClosedSet(a.cfg.Search.ClosedSet),
				astar.WithMaxExpansions(a.cfg.Search.MaxExpansions),
				astar.WithOnExpand(run.OnExpand),
			)
			if err != nil {
				run.End(false, 0, err)
				return err
			}
			run.End(res.Found, res.Expanded, nil)

			r := renderer{w: cmd.OutOrStdout(), styled: isTerminal(cmd.OutOrStdout())}
			s := section{Title: fmt.Sprintf("A* %s → %s (%s)", rc.Start, rc.Goal, rc.Heuristic)}
			x := row{Label: "astar", Found: res.Found, Expanded: res.Expanded, Depth: len(res.Path) - 1}
			if res.Found {
				x.Plan = res.IDs()
			}
			s.Rows = []row{x}
			r.render(s)
			if res.Found {
				fmt.Fprintf(cmd.OutOrStdout(), "cost = %g\n", res.Cost)
			}
			a.logger.Info("route: done",
				slog.Bool("found", res.Found),
				slog.Int("expanded", res.Expanded),
				slog.String("path", strings.Join(res.IDs(), " ")),
			)

			return nil
		},
	}
	cmd.Flags().StringVar(&mapPath, "map", "", "map file (default from config)")
	cmd.Flags().StringVar(&from, "from", "", "start vertex, e.g. 8,8")
	cmd.Flags().StringVar(&to, "to", "", "goal coordinate, e.g. 1,1")
	cmd.Flags().StringVar(&heuristic, "heuristic", "", "sld|manhattan|zero")
	cmd.Flags().BoolVar(&grid, "grid", false, "read the map as a grid of '.' and '#' cells")
	cmd.Flags().BoolVar(&diagonal, "diagonal", false, "with --grid, allow diagonal moves of cost √2")

	return cmd
}
