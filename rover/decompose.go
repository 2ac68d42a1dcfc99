package rover

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/pathseek/bfs"
	"github.com/katalvlaran/pathseek/dfs"
	"github.com/katalvlaran/pathseek/space"
)

// ErrStageUnreachable is returned by Decompose when a stage's search
// exhausts without reaching its goal.
var ErrStageUnreachable = errors.New("rover: stage unreachable")

// SearchFunc is the common shape of bfs.Search and the dfs searches once
// their strategy-specific parameters are bound.
type SearchFunc func(start State, actions []space.Action[State], goal space.Goal[State]) (*space.Result[State], error)

// Strategy is a named search.
type Strategy struct {
	Name   string
	Search SearchFunc
}

// BFS wraps bfs.Search.
func BFS(opts ...bfs.Option) Strategy {
	return Strategy{
		Name: "bfs",
		Search: func(start State, actions []space.Action[State], goal space.Goal[State]) (*space.Result[State], error) {
			return bfs.Search(start, actions, goal, opts...)
		},
	}
}

// DFS wraps dfs.Search.
func DFS(opts ...dfs.Option) Strategy {
	return Strategy{
		Name: "dfs",
		Search: func(start State, actions []space.Action[State], goal space.Goal[State]) (*space.Result[State], error) {
			return dfs.Search(start, actions, goal, opts...)
		},
	}
}

// DLS wraps dfs.DepthLimited with the given ceiling.
func DLS(limit int, opts ...dfs.Option) Strategy {
	return Strategy{
		Name: "dls(" + strconv.Itoa(limit) + ")",
		Search: func(start State, actions []space.Action[State], goal space.Goal[State]) (*space.Result[State], error) {
			return dfs.DepthLimited(start, actions, goal, limit, opts...)
		},
	}
}

// IDS wraps dfs.IterativeDeepening up to maxDepth.
func IDS(maxDepth int, opts ...dfs.Option) Strategy {
	return Strategy{
		Name: "ids(" + strconv.Itoa(maxDepth) + ")",
		Search: func(start State, actions []space.Action[State], goal space.Goal[State]) (*space.Result[State], error) {
			return dfs.IterativeDeepening(start, actions, goal, maxDepth, opts...)
		},
	}
}

// Stage is one sub-goal of a decomposed mission.
type Stage struct {
	Name string
	Goal space.Goal[State]
}

// MissionStages returns the three-stage breakdown of the full mission:
// reach the sample, remove it, then recharge.
func MissionStages() []Stage {
	return []Stage{
		{Name: "move_to_sample", Goal: AtSample},
		{Name: "remove_sample", Goal: SampleRemoved},
		{Name: "return_to_charger", Goal: Recharged},
	}
}

// Leg is the outcome of one stage.
type Leg struct {
	Stage  string
	Result *space.Result[State]
}

// Decompose runs strategy once per stage, starting each stage from the
// state the previous one reached. It returns the legs completed so far
// together with the first error; an exhausted stage yields
// ErrStageUnreachable and its leg is included.
func Decompose(start State, actions []space.Action[State], strategy Strategy, stages ...Stage) ([]Leg, error) {
	if strategy.Search == nil {
		return nil, fmt.Errorf("rover: strategy %q has no search function", strategy.Name)
	}
	legs := make([]Leg, 0, len(stages))
	cur := start
	for _, st := range stages {
		res, err := strategy.Search(cur, actions, st.Goal)
		if err != nil {
			return legs, fmt.Errorf("rover: stage %s: %w", st.Name, err)
		}
		legs = append(legs, Leg{Stage: st.Name, Result: res})
		if !res.Found {
			return legs, fmt.Errorf("%w: %s (%s, %d expanded)", ErrStageUnreachable, st.Name, strategy.Name, res.Expanded)
		}
		cur = res.State
	}

	return legs, nil
}

// Expanded sums the expansion counters of legs.
func Expanded(legs []Leg) int {
	total := 0
	for _, l := range legs {
		total += l.Result.Expanded
	}

	return total
}
