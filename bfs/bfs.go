// Package bfs provides breadth-first search over an action-generated
// state space, returning the shallowest goal state, its trace and the
// number of states enqueued along the way.
package bfs

import (
	"log/slog"

	"github.com/katalvlaran/pathseek/space"
)

// walker encapsulates mutable BFS state for one call.
type walker[S space.State] struct {
	opts     Options
	actions  []space.Action[S]
	goal     space.Goal[S]
	tree     *space.Tree[S]
	closed   *space.ClosedSet
	queue    []int // arena indices
	expanded int
}

// Search runs breadth-first search from start, expanding states with
// actions until goal holds or the frontier is empty.
//
// The start state is closed before the loop begins, so no action sequence
// can return to it. Expanded counts every successor that survived the
// closed-set filter.
//
// A search that exhausts its frontier returns a Result with Found == false
// and a nil error. Errors are ErrNilGoal, ErrOptionViolation,
// ErrBudgetExceeded or the context error; the partial Result is returned
// alongside the last two.
func Search[S space.State](start S, actions []space.Action[S], goal space.Goal[S], opts ...Option) (*space.Result[S], error) {
	if goal == nil {
		return nil, ErrNilGoal
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[S]{
		opts:    o,
		actions: actions,
		goal:    goal,
		tree:    space.NewTree[S](len(actions) + 1),
		closed:  space.NewClosedSet(o.ClosedSet),
	}

	// Seed queue with the start state (no parent)
	w.queue = append(w.queue, w.tree.Root(start))
	w.closed.Add(start.Key())

	res, err := w.loop()
	o.Logger.Debug("bfs: search finished",
		slog.String("start", start.Key()),
		slog.Bool("found", res.Found),
		slog.Int("expanded", res.Expanded),
		slog.Int("depth", res.Depth),
		slog.Bool("closed_set", o.ClosedSet),
	)

	return res, err
}

// loop processes the queue until a goal, exhaustion, budget or cancellation.
func (w *walker[S]) loop() (*space.Result[S], error) {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.opts.Ctx.Done():
			return space.Exhausted[S](w.expanded), w.opts.Ctx.Err()
		default:
		}

		idx := w.dequeue()
		node := w.tree.Node(idx)
		if w.goal(node.State) {
			return space.Resolve(w.tree, idx, w.expanded), nil
		}
		w.enqueueSuccessors(idx, node)

		if w.opts.MaxExpansions > 0 && w.expanded > w.opts.MaxExpansions {
			return space.Exhausted[S](w.expanded), ErrBudgetExceeded
		}
	}

	return space.Exhausted[S](w.expanded), nil
}

// dequeue pops the front index and invokes OnDequeue.
func (w *walker[S]) dequeue() int {
	idx := w.queue[0]
	w.queue = w.queue[1:]
	n := w.tree.Node(idx)
	w.opts.OnDequeue(n.State.Key(), n.Depth)

	return idx
}

// enqueueSuccessors expands node, filters through the closed set and
// appends the survivors to the back of the queue.
func (w *walker[S]) enqueueSuccessors(idx int, node space.Node[S]) {
	succ := space.Filter(w.closed, space.Expand(node.State, w.actions))
	for _, s := range succ {
		w.queue = append(w.queue, w.tree.Add(s.State, s.Action, idx))
	}
	w.expanded += len(succ)
	w.opts.OnExpand(node.State.Key(), node.Depth, len(succ))
}
