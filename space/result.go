package space

// Result is the outcome of an uninformed search.
//
// When Found is false, State is the zero value, Action is empty and Path
// returns nil; Expanded still reports the work done.
type Result[S State] struct {
	// Found reports whether a goal state was reached.
	Found bool

	// State is the terminal (goal) state.
	State S

	// Action names the last action on the path; empty when the start
	// state itself satisfies the goal.
	Action string

	// Depth is the number of actions from the start to State.
	Depth int

	// Expanded counts successors that survived closed-set filtering and
	// were pushed onto the frontier.
	Expanded int

	// Iterations holds the per-pass expansion counts of an iterative
	// deepening search, indexed by depth limit. Nil for other strategies.
	Iterations []int

	trace []Node[S]
}

// Resolve builds a found Result for the arena node at idx.
func Resolve[S State](t *Tree[S], idx, expanded int) *Result[S] {
	n := t.Node(idx)

	return &Result[S]{
		Found:    true,
		State:    n.State,
		Action:   n.Action,
		Depth:    n.Depth,
		Expanded: expanded,
		trace:    t.Path(idx),
	}
}

// Exhausted builds a not-found Result carrying the expansion counter.
func Exhausted[S State](expanded int) *Result[S] {
	return &Result[S]{Expanded: expanded}
}

// Path returns the nodes from the start state to the terminal state.
func (r *Result[S]) Path() []Node[S] {
	return r.trace
}

// States returns the states along the path, start first.
func (r *Result[S]) States() []S {
	if !r.Found {
		return nil
	}
	out := make([]S, len(r.trace))
	for i, n := range r.trace {
		out[i] = n.State
	}

	return out
}

// Actions returns the action names along the path, excluding the root.
func (r *Result[S]) Actions() []string {
	if len(r.trace) < 2 {
		return nil
	}
	out := make([]string, 0, len(r.trace)-1)
	for _, n := range r.trace[1:] {
		out = append(out, n.Action)
	}

	return out
}
