// Package astar implements best-first search ordered by f = g + h over any
// weighted edge source.
//
// With ZeroHeuristic it is uniform-cost search (Dijkstra's algorithm
// stopped at the first goal); with an admissible heuristic such as straight-
// line distance it is A*. The engine never checks admissibility: a
// heuristic that overestimates still terminates but may return a costlier
// path.
//
// Frontier:
//
//	A container/heap min-heap keyed by f. Entries with equal f pop in
//	insertion order, so results are reproducible for a deterministic edge
//	source (graph.Graph returns neighbors sorted by ID).
//
// Closed set:
//
//	Vertices are closed when first pushed, which suppresses duplicate
//	arrivals. A closed vertex reached again with a strictly lower g is
//	re-opened and the superseded heap entry is skipped when popped
//	("lazy decrease-key"), which keeps the result cost-optimal on graphs
//	with non-uniform weights. With the closed set disabled every arrival is
//	pushed.
//
// Complexity (E = edges relaxed):
//
//	– Time:  O(E log E)
//	– Space: O(E) for the heap and the node arena.
//
// Errors (sentinel):
//
//	– ErrEmptyStart, ErrNilEdges, ErrNilGoal  for invalid input.
//	– ErrEdges           wraps a failing EdgeFunc.
//	– ErrNegativeWeight  if a negative arc is relaxed.
//	– ErrOptionViolation, ErrBudgetExceeded.
//
// Example usage:
//
//	g, _ := marsmap.Load("MarsMap")
//	res, err := astar.Search("8,8", astar.FromGraph(g),
//		marsmap.StraightLine(marsmap.Coord{X: 1, Y: 1}),
//		func(id string) bool { return id == "1,1" })
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(res.IDs(), res.Cost, res.Expanded)
package astar
