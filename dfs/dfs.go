// Package dfs implements depth-first search over a state space, with an
// optional depth ceiling (depth-limited search) and iterative deepening on
// top of it.
package dfs

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/pathseek/space"
)

// frame is a stack entry: an arena index plus the depth of that node.
type frame struct {
	node  int
	depth int
}

// dfsWalker encapsulates state during one depth-first search.
type dfsWalker[S space.State] struct {
	opts     Options
	actions  []space.Action[S]
	goal     space.Goal[S]
	tree     *space.Tree[S]
	closed   *space.ClosedSet
	stack    []frame
	expanded int
}

// Search performs depth-first search from start. The most recently pushed
// state is popped first; successors are pushed in action order, so the
// last applicable action is explored first.
//
// With WithLimit(k), states at depth k are goal-tested but never expanded,
// so solutions deeper than k are not found.
func Search[S space.State](start S, actions []space.Action[S], goal space.Goal[S], opts ...Option) (*space.Result[S], error) {
	// 1. Validate input
	if goal == nil {
		return nil, ErrNilGoal
	}

	// 2. Apply options
	o := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 3. Seed stack with the start state and close it
	w := &dfsWalker[S]{
		opts:    o,
		actions: actions,
		goal:    goal,
		tree:    space.NewTree[S](len(actions) + 1),
		closed:  space.NewClosedSet(o.ClosedSet),
	}
	w.stack = append(w.stack, frame{node: w.tree.Root(start)})
	w.closed.Add(start.Key())

	// 4. Run
	res, err := w.run()
	o.Logger.Debug("dfs: search finished",
		slog.String("start", start.Key()),
		slog.Int("limit", o.Limit),
		slog.Bool("found", res.Found),
		slog.Int("expanded", res.Expanded),
		slog.Int("depth", res.Depth),
	)

	return res, err
}

// DepthLimited is Search with a mandatory depth ceiling.
func DepthLimited[S space.State](start S, actions []space.Action[S], goal space.Goal[S], limit int, opts ...Option) (*space.Result[S], error) {
	return Search(start, actions, goal, append(opts, WithLimit(limit))...)
}

// IterativeDeepening runs DepthLimited for every limit from 0 to maxDepth
// inclusive, each pass with a fresh closed set, and returns the first hit.
//
// Result.Expanded is the sum over all passes run; Result.Iterations holds
// each pass's own count. A WithLimit option passed in opts is overridden.
func IterativeDeepening[S space.State](start S, actions []space.Action[S], goal space.Goal[S], maxDepth int, opts ...Option) (*space.Result[S], error) {
	if goal == nil {
		return nil, ErrNilGoal
	}
	if maxDepth < 0 {
		return nil, fmt.Errorf("%w: maxDepth cannot be negative (%d)", ErrOptionViolation, maxDepth)
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	total := 0
	iterations := make([]int, 0, maxDepth+1)
	for depth := 0; depth <= maxDepth; depth++ {
		res, err := DepthLimited(start, actions, goal, depth, opts...)
		if res != nil {
			total += res.Expanded
			iterations = append(iterations, res.Expanded)
		}
		if err != nil {
			out := space.Exhausted[S](total)
			out.Iterations = iterations

			return out, err
		}
		if res.Found {
			res.Expanded = total
			res.Iterations = iterations
			o.Logger.Debug("dfs: iterative deepening finished",
				slog.Int("found_at_limit", depth),
				slog.Int("expanded", total),
			)

			return res, nil
		}
	}

	out := space.Exhausted[S](total)
	out.Iterations = iterations
	o.Logger.Debug("dfs: iterative deepening exhausted",
		slog.Int("max_depth", maxDepth),
		slog.Int("expanded", total),
	)

	return out, nil
}

// run pops frames until a goal, exhaustion, budget or cancellation.
func (w *dfsWalker[S]) run() (*space.Result[S], error) {
	var top frame
	for len(w.stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return space.Exhausted[S](w.expanded), w.opts.Ctx.Err()
		default:
		}

		// 2. Pop
		top = w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]
		node := w.tree.Node(top.node)
		if w.opts.OnPop != nil {
			w.opts.OnPop(node.State.Key(), top.depth)
		}

		// 3. Goal test
		if w.goal(node.State) {
			return space.Resolve(w.tree, top.node, w.expanded), nil
		}

		// 4. Depth ceiling: treat as leaf
		if w.opts.Limit != NoLimit && top.depth >= w.opts.Limit {
			continue
		}

		// 5. Expand, filter, push
		succ := space.Filter(w.closed, space.Expand(node.State, w.actions))
		for _, s := range succ {
			w.stack = append(w.stack, frame{node: w.tree.Add(s.State, s.Action, top.node), depth: top.depth + 1})
		}
		w.expanded += len(succ)
		if w.opts.OnExpand != nil {
			w.opts.OnExpand(node.State.Key(), top.depth, len(succ))
		}

		if w.opts.MaxExpansions > 0 && w.expanded > w.opts.MaxExpansions {
			return space.Exhausted[S](w.expanded), ErrBudgetExceeded
		}
	}

	return space.Exhausted[S](w.expanded), nil
}
