package graph

import (
	"math"
	"sort"
)

// AddVertex inserts a vertex if missing (idempotent).
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//
// Complexity: O(1).
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(id)

	return nil
}

func (g *Graph) addVertexLocked(id string) {
	if _, ok := g.vertices[id]; ok {
		return
	}
	g.vertices[id] = struct{}{}
	g.adj[id] = make(map[string]float64)
}

// HasVertex reports whether id exists.
func (g *Graph) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// AddEdge creates the edge from→to with the given weight, adding missing
// endpoints. If the edge already exists its weight is replaced. Undirected
// graphs also store to→from.
//
// Errors:
//   - ErrEmptyVertexID: if from or to is empty.
//   - ErrLoopNotAllowed: if from == to and loops are disabled.
//   - ErrBadWeight: if weight is NaN or ±Inf.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) error {
	// 1) Input validation
	if from == "" || to == "" {
		return ErrEmptyVertexID
	}
	if from == to && !g.allowLoops {
		return ErrLoopNotAllowed
	}
	if math.IsNaN(weight) || math.IsInf(weight, 0) {
		return ErrBadWeight
	}

	// 2) Insert under lock
	g.mu.Lock()
	defer g.mu.Unlock()
	g.addVertexLocked(from)
	g.addVertexLocked(to)
	g.adj[from][to] = weight

	// 3) Mirror undirected
	if !g.directed {
		g.adj[to][from] = weight
	}

	return nil
}

// RemoveEdge deletes from→to (and its mirror in undirected graphs).
//
// Errors:
//   - ErrEdgeNotFound: if the edge does not exist.
func (g *Graph) RemoveEdge(from, to string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.adj[from][to]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.adj[from], to)
	if !g.directed {
		delete(g.adj[to], from)
	}

	return nil
}

// HasEdge reports whether from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adj[from][to]

	return ok
}

// Neighbors returns the outgoing edges of id sorted by destination ID.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Determinism:
//   - Ascending Edge.To order, independent of insertion order.
//
// Complexity: O(d log d), d = out-degree.
func (g *Graph) Neighbors(id string) ([]Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]Edge, 0, len(g.adj[id]))
	for to, w := range g.adj[id] {
		out = append(out, Edge{From: id, To: to, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out, nil
}

// Vertices returns all vertex IDs sorted ascending.
func (g *Graph) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// EdgeCount returns |E|. An undirected edge counts once.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, loops := 0, 0
	for from, m := range g.adj {
		n += len(m)
		if _, ok := m[from]; ok {
			loops++
		}
	}
	if g.directed {
		return n
	}

	// self-loops are stored once, every other undirected edge twice
	return (n-loops)/2 + loops
}

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }
