package space

// State is the capability every searchable configuration must provide.
//
// Key must be derived only from the observable attributes of the state and
// must be identical for any two states that should be treated as the same
// configuration. It must not depend on the path that produced the state.
type State interface {
	Key() string
}

// Equal reports whether a and b denote the same configuration.
func Equal(a, b State) bool {
	return a.Key() == b.Key()
}

// Action is a named transition. Apply must be total and must not mutate its
// argument; an inapplicable action returns its input unchanged.
type Action[S State] struct {
	// Name labels successors produced by this action in traces.
	Name string

	// Apply computes the successor of a state.
	Apply func(S) S
}

// NewAction builds an Action from a name and a transition function.
func NewAction[S State](name string, fn func(S) S) Action[S] {
	return Action[S]{Name: name, Apply: fn}
}

// Successor pairs a generated state with the name of the action that produced it.
type Successor[S State] struct {
	State  S
	Action string
}

// Goal is a goal predicate over states.
type Goal[S State] func(S) bool

// Expand applies every action to s in order and returns the results that
// differ from s. Actions with a nil Apply are ignored.
//
// Complexity: O(len(actions)) calls to Apply and Key.
func Expand[S State](s S, actions []Action[S]) []Successor[S] {
	key := s.Key()
	out := make([]Successor[S], 0, len(actions))
	var a Action[S]
	for _, a = range actions {
		if a.Apply == nil {
			continue
		}
		next := a.Apply(s)
		// identity result: the action does not apply here
		if next.Key() == key {
			continue
		}
		out = append(out, Successor[S]{State: next, Action: a.Name})
	}

	return out
}
