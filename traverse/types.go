// Package traverse: tunable options and error definitions for the
// reachability walk.
package traverse

import (
	"context"
	"errors"
)

// Sentinel errors for traversal execution.
var (
	// ErrNilRelation is returned if a nil relation is passed.
	ErrNilRelation = errors.New("traverse: relation is nil")

	// ErrNilVisitor is returned if a nil visitor callback is passed.
	ErrNilVisitor = errors.New("traverse: visitor is nil")

	// ErrOutOfRange is returned when the start node is outside the
	// relation's node universe.
	ErrOutOfRange = errors.New("traverse: start node out of range")
)

// Options holds parameters and callbacks customizing a walk. Build it
// through the Option functions; zero hooks are no-ops.
type Options[N any] struct {
	// Ctx allows cancellation and deadlines, checked once per visit.
	Ctx context.Context

	// OnPush is called when a node is first discovered and pushed,
	// before it is visited.
	OnPush func(n N)

	// FilterSuccessor can prune edges by returning false.
	// Called for each edge curr→succ.
	FilterSuccessor func(curr, succ N) bool
}

// Option configures traversal behavior via functional arguments.
type Option[N any] func(*Options[N])

// defaultOptions returns Options with sane defaults: background context,
// no-op hook, no filtering.
func defaultOptions[N any]() Options[N] {
	return Options[N]{
		Ctx:             context.Background(),
		OnPush:          func(N) {},
		FilterSuccessor: func(_, _ N) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[N any](ctx context.Context) Option[N] {
	return func(o *Options[N]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnPush registers a callback to run when a node is discovered.
func WithOnPush[N any](fn func(n N)) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.OnPush = fn
		}
	}
}

// WithFilterSuccessor skips successors when fn returns false.
func WithFilterSuccessor[N any](fn func(curr, succ N) bool) Option[N] {
	return func(o *Options[N]) {
		if fn != nil {
			o.FilterSuccessor = fn
		}
	}
}
