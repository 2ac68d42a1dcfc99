// Package astar defines core types and configuration options for
// best-first search ordered by f = g + h.
package astar

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/pathseek/graph"
)

// Sentinel errors returned by Search.
var (
	// ErrEmptyStart indicates that the start vertex ID is empty.
	ErrEmptyStart = errors.New("astar: start vertex ID is empty")

	// ErrNilEdges indicates that no edge source was supplied.
	ErrNilEdges = errors.New("astar: edge source is nil")

	// ErrNilGoal indicates that no goal predicate was supplied.
	ErrNilGoal = errors.New("astar: goal predicate is nil")

	// ErrNegativeWeight indicates that an edge with negative weight was met.
	ErrNegativeWeight = errors.New("astar: negative edge weight encountered")

	// ErrEdges indicates that the edge source failed for some vertex.
	ErrEdges = errors.New("astar: edge lookup failed")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")

	// ErrBudgetExceeded is returned when MaxExpansions is reached before
	// the search terminates.
	ErrBudgetExceeded = errors.New("astar: expansion budget exceeded")
)

// Arc is a weighted outgoing edge.
type Arc struct {
	To     string
	Weight float64
}

// EdgeFunc returns the outgoing arcs of a vertex.
type EdgeFunc func(id string) ([]Arc, error)

// Heuristic estimates the remaining cost from a vertex to the goal.
// It must never overestimate for Search to return cost-optimal paths;
// this is not checked.
type Heuristic func(id string) float64

// ZeroHeuristic turns Search into uniform-cost search.
func ZeroHeuristic(string) float64 { return 0 }

// FromGraph adapts g's Neighbors to an EdgeFunc. A nil g yields nil.
func FromGraph(g *graph.Graph) EdgeFunc {
	if g == nil {
		return nil
	}

	return func(id string) ([]Arc, error) {
		edges, err := g.Neighbors(id)
		if err != nil {
			return nil, err
		}
		arcs := make([]Arc, len(edges))
		for i, e := range edges {
			arcs[i] = Arc{To: e.To, Weight: e.Weight}
		}

		return arcs, nil
	}
}

// Options configures the behavior of Search.
//
//	ClosedSet     – dedupe by vertex ID (default true). A closed vertex is
//	                re-opened only when reached again with a strictly lower g.
//	MaxExpansions – abort with ErrBudgetExceeded past this many pushes (0 = no cap).
type Options struct {
	Ctx           context.Context
	ClosedSet     bool
	MaxExpansions int
	Logger        *slog.Logger

	// OnPop is invoked for every live entry popped from the frontier.
	OnPop func(id string, g, h float64)

	// OnExpand is invoked after each expansion with the number of pushes.
	OnExpand func(id string, depth, produced int)

	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns the defaults: background context, closed set on,
// no budget, discard logger, no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		ClosedSet: true,
		Logger:    slog.New(slog.DiscardHandler),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithClosedSet toggles the closed set. Disabled, the search may not
// terminate when the goal is unreachable in a cyclic graph.
func WithClosedSet(enabled bool) Option {
	return func(o *Options) { o.ClosedSet = enabled }
}

// WithMaxExpansions bounds the number of pushes; negative values are rejected.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithLogger sets the logger used for the completion record.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnPop registers a callback invoked for every popped entry.
func WithOnPop(fn func(id string, g, h float64)) Option {
	return func(o *Options) { o.OnPop = fn }
}

// WithOnExpand registers a callback invoked after every expansion.
func WithOnExpand(fn func(id string, depth, produced int)) Option {
	return func(o *Options) { o.OnExpand = fn }
}

// Step is one vertex on a returned path.
type Step struct {
	ID string
	G  float64 // cost from the start
	H  float64 // heuristic estimate at this vertex
}

// F returns G + H.
func (s Step) F() float64 { return s.G + s.H }

// Result is the outcome of Search.
type Result struct {
	// Found reports whether a goal vertex was popped.
	Found bool

	// Path lists the vertices from start to goal; nil when not found.
	Path []Step

	// Cost is the total edge weight of Path.
	Cost float64

	// Expanded counts entries pushed onto the frontier after the start.
	Expanded int
}

// IDs returns the vertex IDs along Path.
func (r *Result) IDs() []string {
	if len(r.Path) == 0 {
		return nil
	}
	ids := make([]string, len(r.Path))
	for i, s := range r.Path {
		ids[i] = s.ID
	}

	return ids
}
