// Package bfs provides breadth-first search over an action-generated state
// space described by the space package.
//
// What
//
//   - Explore states in non-decreasing depth (action count) from a start state.
//   - Return the first state that satisfies the goal predicate, together with
//     its full action trace and the number of states enqueued.
//   - Suppress re-expansion with a closed set (on by default, togglable).
//   - Hooks at two stages:
//   - OnDequeue (before goal-testing a state)
//   - OnExpand  (after expansion, with the surviving successor count)
//   - Optional expansion budget and context cancellation.
//
// Why
//
//	With unit-cost actions the first goal state dequeued is reached by a
//	minimum number of actions, because the FIFO frontier never dequeues a
//	deeper state before a shallower one.
//
// Determinism
//
//	space.Expand preserves action order and successors are enqueued in that
//	order, so the dequeue sequence, the terminal state and the expansion
//	count are reproducible for a fixed start, action list and goal.
//
// Complexity (b = branching factor, d = solution depth)
//
//   - Time:   O(b^d)
//   - Memory: O(b^d) for the frontier and the search-tree arena
//
// Usage
//
//	res, err := bfs.Search(start, actions, goal)
//	if err != nil {
//		// ErrNilGoal, ErrOptionViolation, ErrBudgetExceeded or ctx.Err()
//	}
//	if res.Found {
//		fmt.Println(res.Actions(), res.Expanded)
//	}
package bfs
