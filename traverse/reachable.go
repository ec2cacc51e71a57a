// Package traverse implements the reachability walk over a
// core.Relation.
package traverse

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/gammazero/deque"

	"github.com/katalvlaran/reachrel/core"
)

// walker encapsulates mutable traversal state.
type walker[N core.Idx] struct {
	rel     core.Relation[N]
	opts    Options[N]
	visit   func(N) error
	stack   deque.Deque[N]
	visited mapset.Set[N]
}

// ReachableFrom performs a depth-first walk over rel's successors from
// start, invoking visit exactly once per reachable node (including start
// itself). The visited set is local to the call; rel is not mutated.
//
// Returns ErrNilRelation, ErrNilVisitor, or ErrOutOfRange for invalid
// input, a context error on cancellation, or the first error returned by
// the visitor (which aborts the walk).
//
// rel must not be mutated for the duration of the call.
func ReachableFrom[N core.Idx](rel core.Relation[N], start N, visit func(n N) error, opts ...Option[N]) error {
	if rel == nil {
		return ErrNilRelation
	}
	if visit == nil {
		return ErrNilVisitor
	}
	if int64(start) < 0 || int64(start) >= int64(rel.NumNodes()) {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, int64(start), rel.NumNodes())
	}

	o := defaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}

	w := &walker[N]{
		rel:     rel,
		opts:    o,
		visit:   visit,
		visited: mapset.NewThreadUnsafeSet[N](),
	}
	w.push(start)

	return w.loop()
}

// push marks n discovered, fires OnPush, and stacks it.
func (w *walker[N]) push(n N) {
	w.visited.Add(n)
	w.opts.OnPush(n)
	w.stack.PushBack(n)
}

// loop drains the stack until empty, error, or cancellation.
func (w *walker[N]) loop() error {
	for w.stack.Len() > 0 {
		// cancellation check (once per visit)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		curr := w.stack.PopBack()
		if err := w.visit(curr); err != nil {
			return fmt.Errorf("traverse: visitor error at %d: %w", int64(curr), err)
		}

		for succ := range w.rel.Successors(curr) {
			if !w.opts.FilterSuccessor(curr, succ) {
				continue
			}
			if !w.visited.Contains(succ) {
				w.push(succ)
			}
		}
	}

	return nil
}
