// Package graph provides a small, thread-safe, weighted adjacency-map graph
// used as the edge source for best-first search and as the in-memory form of
// parsed map files.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Self-loops (WithLoops)
//   - float64 weights; one edge per ordered vertex pair
//   - A single sync.RWMutex; reads (Neighbors, HasEdge, Vertices) may run
//     concurrently with each other, e.g. several searches over one map.
//
// Determinism:
//
//	Vertices() and Neighbors() return sorted results, so algorithms that
//	iterate them are reproducible regardless of insertion order.
//
// Example:
//
//	g := graph.New()
//	_ = g.AddEdge("1,1", "1,2", 1)
//	edges, _ := g.Neighbors("1,2") // [{1,2 1,1 1}]
package graph
