// Package space defines the state contract shared by every search strategy
// in pathseek, together with the closed set and the search-tree arena used to
// reconstruct paths.
//
// What
//
//   - State: any value exposing a stable Key(). Two states are the same state
//     iff their keys are equal; how a state was reached is never part of it.
//   - Action: a named, total function from state to state. Returning a state
//     with the input's key means "not applicable here".
//   - Expand: applies an ordered action list and keeps only the results that
//     differ from the source state, labelled with the producing action.
//   - ClosedSet: a togglable, monotonic set of already-enqueued keys.
//   - Tree: an append-only arena of search nodes. Predecessors are arena
//     indices, so history lives beside the states instead of inside them.
//   - Result: the terminal node of a search plus its expansion counter, with
//     Path/States/Actions views over the reconstructed trace.
//
// Determinism
//
//	Expand preserves action order and has no side effects, so for a fixed
//	start, action list and goal every strategy in bfs and dfs is reproducible.
//
// Usage
//
//	type cell struct{ x, y int }
//	func (c cell) Key() string { return fmt.Sprintf("%d,%d", c.x, c.y) }
//
//	right := space.NewAction("right", func(c cell) cell {
//		if c.x == 9 {
//			return c // not applicable
//		}
//		return cell{c.x + 1, c.y}
//	})
//	next := space.Expand(cell{0, 0}, []space.Action[cell]{right})
package space
