// Package astar implements best-first search over a weighted edge source,
// ordering the frontier by f = g + h.
package astar

import (
	"container/heap"
	"fmt"
	"log/slog"
	"slices"

	"github.com/katalvlaran/pathseek/space"
)

// Search finds a path from start to the first popped vertex satisfying goal.
//
// Returns:
//
//   - res.Found, res.Path, res.Cost when a goal vertex is popped.
//   - res.Found == false and a nil error when the frontier empties.
//   - err for invalid input, a failing edge source, a negative weight,
//     an exhausted budget or a cancelled context.
//
// A nil h is treated as ZeroHeuristic. With an admissible h and the closed
// set enabled the returned path has minimum total weight.
//
// Complexity (E = edges relaxed):
//
//   - Time:  O(E log E)
//   - Space: O(E) for the heap and the node arena.
func Search(start string, edges EdgeFunc, h Heuristic, goal func(id string) bool, opts ...Option) (*Result, error) {
	// 1) Validate inputs
	if start == "" {
		return nil, ErrEmptyStart
	}
	if edges == nil {
		return nil, ErrNilEdges
	}
	if goal == nil {
		return nil, ErrNilGoal
	}
	if h == nil {
		h = ZeroHeuristic
	}

	// 2) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	// 3) Seed the frontier with the start vertex
	r := &runner{
		options: cfg,
		edges:   edges,
		h:       h,
		goal:    goal,
		closed:  space.NewClosedSet(cfg.ClosedSet),
		best:    make(map[string]float64),
	}
	heap.Init(&r.pq)
	r.push(start, 0, space.NoParent)
	r.closed.Add(start)
	r.best[start] = 0

	// 4) Main loop
	res, err := r.process()
	cfg.Logger.Debug("astar: search finished",
		slog.String("start", start),
		slog.Bool("found", res.Found),
		slog.Float64("cost", res.Cost),
		slog.Int("expanded", res.Expanded),
		slog.Int("path_len", len(res.Path)),
	)

	return res, err
}

// node is an arena record; parent indexes the same arena.
type node struct {
	id     string
	g, h   float64
	depth  int
	parent int
}

// runner holds the mutable state for a single search.
type runner struct {
	options  Options
	edges    EdgeFunc
	h        Heuristic
	goal     func(string) bool
	closed   *space.ClosedSet
	best     map[string]float64 // lowest g pushed per closed vertex
	arena    []node
	pq       frontier
	seq      uint64
	expanded int
}

// push appends an arena node and a matching heap entry.
func (r *runner) push(id string, g float64, parent int) {
	depth := 0
	if parent != space.NoParent {
		depth = r.arena[parent].depth + 1
	}
	r.arena = append(r.arena, node{id: id, g: g, h: r.h(id), depth: depth, parent: parent})
	idx := len(r.arena) - 1
	heap.Push(&r.pq, &item{node: idx, g: g, h: r.arena[idx].h, seq: r.seq})
	r.seq++
}

// process pops entries in (f, seq) order until a goal or exhaustion.
func (r *runner) process() (*Result, error) {
	for r.pq.Len() > 0 {
		select {
		case <-r.options.Ctx.Done():
			return &Result{Expanded: r.expanded}, r.options.Ctx.Err()
		default:
		}

		it := heap.Pop(&r.pq).(*item)
		cur := r.arena[it.node]

		// Skip stale entries superseded by a cheaper arrival.
		if r.closed.Enabled() && it.g > r.best[cur.id] {
			continue
		}
		if r.options.OnPop != nil {
			r.options.OnPop(cur.id, it.g, it.h)
		}

		if r.goal(cur.id) {
			return r.resolve(it.node), nil
		}

		if err := r.relax(it.node); err != nil {
			return &Result{Expanded: r.expanded}, err
		}
		if r.options.MaxExpansions > 0 && r.expanded > r.options.MaxExpansions {
			return &Result{Expanded: r.expanded}, ErrBudgetExceeded
		}
	}

	return &Result{Expanded: r.expanded}, nil
}

// relax pushes every outgoing arc of the arena node at idx that is not
// suppressed by the closed set.
func (r *runner) relax(idx int) error {
	cur := r.arena[idx]
	arcs, err := r.edges(cur.id)
	if err != nil {
		return fmt.Errorf("%w: vertex %q: %v", ErrEdges, cur.id, err)
	}

	produced := 0
	var a Arc
	for _, a = range arcs {
		if a.Weight < 0 {
			return fmt.Errorf("%w: edge %s→%s weight=%g", ErrNegativeWeight, cur.id, a.To, a.Weight)
		}
		g := cur.g + a.Weight
		if r.closed.Enabled() {
			if r.closed.Contains(a.To) && g >= r.best[a.To] {
				continue
			}
			r.closed.Add(a.To)
			r.best[a.To] = g
		}
		r.push(a.To, g, idx)
		produced++
	}
	r.expanded += produced
	if r.options.OnExpand != nil {
		r.options.OnExpand(cur.id, cur.depth, produced)
	}

	return nil
}

// resolve rebuilds the start→goal path from the arena.
func (r *runner) resolve(idx int) *Result {
	var path []Step
	for cur := idx; cur != space.NoParent; cur = r.arena[cur].parent {
		n := r.arena[cur]
		path = append(path, Step{ID: n.id, G: n.g, H: n.h})
	}
	slices.Reverse(path)

	return &Result{
		Found:    true,
		Path:     path,
		Cost:     r.arena[idx].g,
		Expanded: r.expanded,
	}
}

// item is a heap entry. f is derived on demand so it can never go stale.
type item struct {
	node int     // arena index
	g, h float64 // copied from the arena node
	seq  uint64  // insertion order, breaks ties on equal f
}

func (it *item) f() float64 { return it.g + it.h }

// frontier is a min-heap of *item ordered by f, then by insertion order.
// Superseded entries are left in place and skipped when popped.
type frontier []*item

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by f ascending; equal f pops first-in first-out.
func (pq frontier) Less(i, j int) bool {
	fi, fj := pq[i].f(), pq[j].f()
	if fi != fj {
		return fi < fj
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*item)) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]

	return it
}
