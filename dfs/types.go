// Package dfs defines types and options for depth-first, depth-limited and
// iterative-deepening search over a state space.
package dfs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrNilGoal is returned when no goal predicate is supplied.
	ErrNilGoal = errors.New("dfs: goal predicate is nil")

	// ErrOptionViolation is returned when an invalid Option or depth bound
	// is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrBudgetExceeded is returned when MaxExpansions is reached before
	// the search terminates.
	ErrBudgetExceeded = errors.New("dfs: expansion budget exceeded")
)

// NoLimit disables the depth ceiling.
const NoLimit = -1

// Option configures optional behavior of a depth-first search.
type Option func(*Options)

// Options holds configurable parameters for depth-first search.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// ClosedSet enables duplicate suppression. Default true.
	ClosedSet bool

	// Limit, if non-negative, stops expansion of states at that depth:
	// such states are goal-tested but treated as leaves. Default NoLimit.
	Limit int

	// MaxExpansions, if > 0, aborts the search with ErrBudgetExceeded once
	// the expansion counter exceeds it. In iterative deepening it applies
	// to each pass separately.
	MaxExpansions int

	// Logger receives a Debug record when a search finishes.
	Logger *slog.Logger

	// OnPop, if non-nil, is invoked for every state popped from the stack,
	// before the goal test.
	OnPop func(key string, depth int)

	// OnExpand, if non-nil, is invoked after a state is expanded with the
	// number of successors pushed.
	OnExpand func(key string, depth, produced int)

	err error
}

// DefaultOptions returns Options with:
//   - Background context
//   - closed set enabled
//   - no depth limit (Limit = NoLimit)
//   - no expansion budget
//   - discard logger and no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		ClosedSet: true,
		Limit:     NoLimit,
		Logger:    slog.New(slog.DiscardHandler),
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithClosedSet toggles the closed set.
func WithClosedSet(enabled bool) Option {
	return func(o *Options) {
		o.ClosedSet = enabled
	}
}

// WithLimit sets the depth ceiling. A limit of 0 goal-tests only the start
// state. Negative limits are rejected with ErrOptionViolation; use
// NoLimit through DefaultOptions for an unbounded search.
func WithLimit(limit int) Option {
	return func(o *Options) {
		if limit < 0 {
			o.err = fmt.Errorf("%w: Limit cannot be negative (%d)", ErrOptionViolation, limit)
			return
		}
		o.Limit = limit
	}
}

// WithMaxExpansions bounds the expansion counter; 0 disables the bound.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithLogger sets the logger used for completion records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnPop installs fn as the pop hook.
func WithOnPop(fn func(key string, depth int)) Option {
	return func(o *Options) {
		o.OnPop = fn
	}
}

// WithOnExpand installs fn as the expansion hook.
func WithOnExpand(fn func(key string, depth, produced int)) Option {
	return func(o *Options) {
		o.OnExpand = fn
	}
}
