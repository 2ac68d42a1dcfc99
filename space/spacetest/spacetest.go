// Package spacetest provides a tiny explicit state graph for exercising
// search strategies in tests.
//
// Each vertex of an adjacency map becomes a Vertex state, and each vertex
// name becomes an action "to <name>" that moves there when an edge from the
// current vertex exists and is a no-op otherwise.
package spacetest

import (
	"sort"
	"strconv"

	"github.com/katalvlaran/pathseek/space"
)

// Vertex is a state identified by its name.
type Vertex string

// Key implements space.State.
func (v Vertex) Key() string { return string(v) }

// Adjacency maps a vertex to its successors.
type Adjacency map[string][]string

// Actions returns one action per vertex appearing in adj, ordered by vertex
// name, so successor order is deterministic.
func Actions(adj Adjacency) []space.Action[Vertex] {
	seen := make(map[string]struct{})
	for from, tos := range adj {
		seen[from] = struct{}{}
		for _, to := range tos {
			seen[to] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)

	actions := make([]space.Action[Vertex], 0, len(names))
	for _, target := range names {
		actions = append(actions, space.NewAction("to "+target, func(v Vertex) Vertex {
			for _, to := range adj[string(v)] {
				if to == target {
					return Vertex(target)
				}
			}

			return v
		}))
	}

	return actions
}

// Goal returns a predicate matching any of the given vertices.
func Goal(ids ...string) space.Goal[Vertex] {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}

	return func(v Vertex) bool {
		_, ok := set[string(v)]

		return ok
	}
}

// Chain returns a linear graph n0 -> n1 -> ... -> n<length>.
func Chain(length int) Adjacency {
	adj := make(Adjacency, length)
	for i := 0; i < length; i++ {
		adj[name(i)] = []string{name(i + 1)}
	}

	return adj
}

func name(i int) string { return "n" + strconv.Itoa(i) }
