package space

// ClosedSet records the keys of states that have already been enqueued
// during one search call. Keys are never removed.
//
// A disabled ClosedSet reports every key as unseen and records nothing,
// which lets a strategy revisit states. On cyclic state spaces this can
// prevent termination.
type ClosedSet struct {
	enabled bool
	keys    map[string]struct{}
}

// NewClosedSet returns an empty closed set; enabled toggles deduplication.
func NewClosedSet(enabled bool) *ClosedSet {
	c := &ClosedSet{enabled: enabled}
	if enabled {
		c.keys = make(map[string]struct{})
	}

	return c
}

// Enabled reports whether the set deduplicates.
func (c *ClosedSet) Enabled() bool { return c.enabled }

// Contains reports whether key was added before. Always false when disabled.
func (c *ClosedSet) Contains(key string) bool {
	if !c.enabled {
		return false
	}
	_, ok := c.keys[key]

	return ok
}

// Add records key. No-op when disabled.
func (c *ClosedSet) Add(key string) {
	if !c.enabled {
		return
	}
	c.keys[key] = struct{}{}
}

// Len returns the number of recorded keys.
func (c *ClosedSet) Len() int { return len(c.keys) }

// Filter drops the successors whose key is already closed, then closes every
// survivor. Survivors sharing a key within the same batch are all kept,
// because the batch is filtered before any of it is recorded.
//
// The input slice is reused for the result.
func Filter[S State](c *ClosedSet, succ []Successor[S]) []Successor[S] {
	if !c.enabled {
		return succ
	}
	kept := succ[:0]
	for _, s := range succ {
		if !c.Contains(s.State.Key()) {
			kept = append(kept, s)
		}
	}
	for _, s := range kept {
		c.Add(s.State.Key())
	}

	return kept
}
