// Package graph defines the Graph, Edge and option types together with the
// sentinel errors returned by graph mutations and queries.
package graph

import (
	"errors"
	"sync"
)

// Sentinel errors for graph operations.
var (
	// ErrEmptyVertexID indicates that a vertex ID is the empty string.
	ErrEmptyVertexID = errors.New("graph: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")

	// ErrBadWeight indicates a NaN or infinite edge weight.
	ErrBadWeight = errors.New("graph: weight must be a finite number")
)

// Edge is one outgoing connection as seen from its From vertex.
// For undirected graphs the mirror edge is reported from the other endpoint.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// Option configures a Graph before creation.
type Option func(g *Graph)

// WithDirected makes every edge one-way (from→to). Graphs are undirected by default.
func WithDirected() Option {
	return func(g *Graph) { g.directed = true }
}

// WithLoops permits self-loops (edges from a vertex to itself).
func WithLoops() Option {
	return func(g *Graph) { g.allowLoops = true }
}

// Graph is a weighted adjacency map, safe for concurrent use.
//
// At most one edge exists per ordered vertex pair; adding it again replaces
// its weight. Undirected edges are stored in both directions.
type Graph struct {
	mu sync.RWMutex // guards vertices and adj

	directed   bool
	allowLoops bool

	vertices map[string]struct{}
	// adj[from][to] = weight
	adj map[string]map[string]float64
}

// New creates an empty Graph. By default it is undirected without loops.
// Complexity: O(1)
func New(opts ...Option) *Graph {
	g := &Graph{
		vertices: make(map[string]struct{}),
		adj:      make(map[string]map[string]float64),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
