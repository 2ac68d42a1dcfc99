// Package bfs provides tunable options and error definitions
// for breadth-first search over a state space.
package bfs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilGoal is returned when no goal predicate is supplied.
	ErrNilGoal = errors.New("bfs: goal predicate is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrBudgetExceeded is returned when MaxExpansions is reached before
	// the search terminates.
	ErrBudgetExceeded = errors.New("bfs: expansion budget exceeded")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative budget), it will be recorded
// internally and surfaced as ErrOptionViolation when Search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// ClosedSet enables duplicate suppression. Disabling it on a cyclic
	// state space may prevent termination.
	ClosedSet bool

	// MaxExpansions, if > 0, aborts the search with ErrBudgetExceeded once
	// the expansion counter exceeds it. 0 means unlimited.
	MaxExpansions int

	// Logger receives a Debug record when the search finishes.
	Logger *slog.Logger

	// OnDequeue is called immediately before a state is goal-tested.
	// Receives the state key and its depth from the start.
	OnDequeue func(key string, depth int)

	// OnExpand is called after a state is expanded with the number of
	// successors that survived the closed-set filter.
	OnExpand func(key string, depth, produced int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - closed set enabled
//   - no expansion budget
//   - discard logger, no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		ClosedSet: true,
		Logger:    slog.New(slog.DiscardHandler),
		OnDequeue: func(string, int) {},
		OnExpand:  func(string, int, int) {},
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

// WithClosedSet toggles the closed set.
func WithClosedSet(enabled bool) Option {
	return func(o *Options) {
		o.ClosedSet = enabled
	}
}

// WithMaxExpansions bounds the expansion counter.
//
//	n > 0:  abort once more than n successors were enqueued
//	n == 0: no budget
//	n < 0:  invalid option → ErrOptionViolation
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

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(key string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnExpand registers a callback to run after each expansion.
func WithOnExpand(fn func(key string, depth, produced int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
