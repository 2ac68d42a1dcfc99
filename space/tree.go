package space

import "slices"

// NoParent marks the root of a search tree.
const NoParent = -1

// Node is one entry of a search-tree arena.
type Node[S State] struct {
	// State is the configuration reached at this node.
	State S

	// Action names the transition that produced State; empty at the root.
	Action string

	// Parent is the arena index of the generating node, or NoParent.
	Parent int

	// Depth is the number of actions applied from the root.
	Depth int
}

// Tree is an append-only arena of search nodes for one search call.
// A parent index always refers to an earlier entry, so every chain of
// parents ends at a root.
type Tree[S State] struct {
	nodes []Node[S]
}

// NewTree returns an empty arena with room for capacity nodes.
func NewTree[S State](capacity int) *Tree[S] {
	return &Tree[S]{nodes: make([]Node[S], 0, capacity)}
}

// Root appends a root node for s and returns its index.
func (t *Tree[S]) Root(s S) int {
	t.nodes = append(t.nodes, Node[S]{State: s, Parent: NoParent})

	return len(t.nodes) - 1
}

// Add appends a child of parent reached by action and returns its index.
// It panics if parent is not a valid index.
func (t *Tree[S]) Add(s S, action string, parent int) int {
	depth := t.nodes[parent].Depth + 1
	t.nodes = append(t.nodes, Node[S]{State: s, Action: action, Parent: parent, Depth: depth})

	return len(t.nodes) - 1
}

// Node returns the entry at index i.
func (t *Tree[S]) Node(i int) Node[S] { return t.nodes[i] }

// Len returns the number of nodes in the arena.
func (t *Tree[S]) Len() int { return len(t.nodes) }

// Path returns the nodes from the root to i, inclusive.
//
// Complexity: O(depth of i).
func (t *Tree[S]) Path(i int) []Node[S] {
	path := make([]Node[S], 0, t.nodes[i].Depth+1)
	for cur := i; cur != NoParent; cur = t.nodes[cur].Parent {
		path = append(path, t.nodes[cur])
	}
	slices.Reverse(path)

	return path
}
