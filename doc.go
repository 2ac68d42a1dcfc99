// Package pathseek is a small library of state-space search strategies and
// the pieces they share.
//
// A search problem is a start state, an ordered list of actions and a goal
// predicate. States implement space.State by exposing a Key that identifies
// the configuration independent of how it was reached.
//
//	space/     — State, Action, Expand, ClosedSet, path-reconstruction arena, Result
//	bfs/       — breadth-first search (shallowest goal)
//	dfs/       — depth-first, depth-limited and iterative-deepening search
//	graph/     — thread-safe weighted adjacency store
//	astar/     — best-first search on f = g + h (uniform-cost with h = 0)
//	marsmap/   — map and grid loaders, straight-line and Manhattan heuristics
//	rover/     — the sample-return rover domain and staged solving
//	telemetry/ — OpenTelemetry counters, histogram and spans for any search
//
// The cmd/pathseek CLI ties them together:
//
//	pathseek rover
//	pathseek route --map MarsMap --heuristic sld
//	pathseek compare
//
// Every search takes functional options (context, closed set toggle,
// expansion budget, slog logger, hooks) and reports the number of states
// it pushed onto its frontier.
package pathseek
