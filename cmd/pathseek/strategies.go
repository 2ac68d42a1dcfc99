package main

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/pathseek/bfs"
	"github.com/katalvlaran/pathseek/dfs"
	"github.com/katalvlaran/pathseek/rover"
	"github.com/katalvlaran/pathseek/space"
)

// Strategy names accepted on the command line.
const (
	kindBFS = "bfs"
	kindDFS = "dfs"
	kindDLS = "dls"
	kindIDS = "ids"
)

var allKinds = []string{kindBFS, kindDFS, kindDLS, kindIDS}

// strategy binds the configured options and hook to a rover.Strategy.
func (a *app) strategy(ctx context.Context, kind string, hook func(string, int, int)) (rover.Strategy, error) {
	s := a.cfg.Search
	dopts := []dfs.Option{
		dfs.WithContext(ctx),
		dfs.WithLogger(a.logger),
		dfs.WithClosedSet(s.ClosedSet),
		dfs.WithMaxExpansions(s.MaxExpansions),
		dfs.WithOnExpand(hook),
	}
	switch kind {
	case kindBFS:
		return rover.BFS(
			bfs.WithContext(ctx),
			bfs.WithLogger(a.logger),
			bfs.WithClosedSet(s.ClosedSet),
			bfs.WithMaxExpansions(s.MaxExpansions),
			bfs.WithOnExpand(hook),
		), nil
	case kindDFS:
		return rover.DFS(dopts...), nil
	case kindDLS:
		return rover.DLS(s.DLSLimit, dopts...), nil
	case kindIDS:
		return rover.IDS(s.IDSMaxDepth, dopts...), nil
	default:
		return rover.Strategy{}, fmt.Errorf("unknown strategy %q", kind)
	}
}

// row is one line of a report.
type row struct {
	Label    string
	Found    bool
	Expanded int
	Depth    int
	Plan     []string
	Err      error
}

// solve runs one instrumented search over the rover problem.
func (a *app) solve(ctx context.Context, kind string, actions []space.Action[rover.State], goal space.Goal[rover.State]) row {
	ctx, run := a.rec.Start(ctx, kind, attribute.String("problem", "rover"))
	strat, err := a.strategy(ctx, kind, run.OnExpand)
	if err != nil {
		run.End(false, 0, err)
		return row{Label: kind, Err: err}
	}
	res, err := strat.Search(rover.Start(), actions, goal)
	r := row{Label: strat.Name, Err: err}
	if res != nil {
		r.Found, r.Expanded, r.Depth, r.Plan = res.Found, res.Expanded, res.Depth, res.Actions()
	}
	run.End(r.Found, r.Expanded, err)

	return r
}

// decompose runs the staged mission with one strategy and returns a row per
// stage.
func (a *app) decompose(ctx context.Context, kind string) ([]row, error) {
	ctx, run := a.rec.Start(ctx, kind, attribute.String("problem", "rover-decomposed"))
	strat, err := a.strategy(ctx, kind, run.OnExpand)
	if err != nil {
		run.End(false, 0, err)
		return nil, err
	}
	legs, err := rover.Decompose(rover.Start(), rover.ToolActions(), strat, rover.MissionStages()...)
	run.End(err == nil, rover.Expanded(legs), err)

	rows := make([]row, 0, len(legs))
	for _, l := range legs {
		rows = append(rows, row{
			Label:    l.Stage,
			Found:    l.Result.Found,
			Expanded: l.Result.Expanded,
			Depth:    l.Result.Depth,
			Plan:     l.Result.Actions(),
		})
	}

	return rows, err
}
