// Package dfs implements depth-first search over an action-generated state
// space, in three flavors sharing one LIFO walker:
//
//   - Search(start, actions, goal, opts...)              unbounded depth-first
//   - DepthLimited(start, actions, goal, limit, opts...) depth-first with a ceiling
//   - IterativeDeepening(start, actions, goal, max, ...) limits 0..max, fresh closed set per pass
//
// Key features:
//   - Closed set (on by default) shared by all three; a state closed at a
//     shallow limit is re-expandable in the next deepening pass because each
//     pass owns its own set.
//   - States at the depth ceiling are goal-tested but never expanded, so a
//     limit bounds time and memory at the price of missing deeper solutions.
//   - Hooks: OnPop (before the goal test) and OnExpand (surviving successors).
//   - Expansion budget and cancellation via context.Context.
//
// Complexity (b = branching factor, m = maximum depth explored):
//
//   - Time:   O(b^m)
//   - Memory: O(b·m) for the stack; the search-tree arena keeps every
//     generated node so traces can be rebuilt.
//
// Errors:
//
//   - ErrNilGoal               if goal is nil.
//   - ErrOptionViolation       for negative limits, depths or budgets.
//   - ErrBudgetExceeded        when MaxExpansions is exceeded.
//   - context.Canceled         if ctx is done.
package dfs
