package bitset

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/reachrel/core"
)

// Matrix is a fixed-size indexed sequence of sparse bitset rows. Row r
// holds the set of columns of r; in the matrix-backed relation that is
// the set of direct successors of node r.
//
// Row indices must lie in [0, NumRows); out-of-range access panics
// (programmer error, per the bounds check).
type Matrix[R, C core.Idx] struct {
	rows []Set[C]
}

// NewMatrix creates a numRows × anything matrix, initially empty.
// The column universe is implicit (unbounded in key space).
// Complexity: O(numRows)
func NewMatrix[R, C core.Idx](numRows int) *Matrix[R, C] {
	return &Matrix[R, C]{rows: make([]Set[C], numRows)}
}

// NumRows reports the fixed row count.
func (m *Matrix[R, C]) NumRows() int {
	return len(m.rows)
}

// Add sets the cell (r, c) and reports whether the matrix changed.
func (m *Matrix[R, C]) Add(r R, c C) bool {
	return m.rows[r].Insert(c)
}

// Contains reports whether the cell (r, c) is set.
func (m *Matrix[R, C]) Contains(r R, c C) bool {
	return m.rows[r].Contains(c)
}

// Row borrows row r. The pointer is invalidated by nothing — rows are
// never reallocated — but mutating through it invalidates iterators.
func (m *Matrix[R, C]) Row(r R) *Set[C] {
	return &m.rows[r]
}

// Pick2 borrows two distinct rows simultaneously, the primitive behind
// Merge. It panics when a == b: aliased mutable rows are a programmer
// error.
func (m *Matrix[R, C]) Pick2(a, b R) (*Set[C], *Set[C]) {
	if a == b {
		panic(fmt.Sprintf("bitset: Pick2 with aliased rows %v", a))
	}

	return &m.rows[a], &m.rows[b]
}

// Merge unions the bits of row read into row write without copying the
// source, and reports whether any new bit appeared. Merging a row into
// itself is a no-op returning false.
//
// This is the step used when computing transitive reachability: with an
// edge write → read, write reaches everything read reaches.
func (m *Matrix[R, C]) Merge(read, write R) bool {
	if read == write {
		return false
	}

	src, dst := m.Pick2(read, write)
	changed := false
	for c := range src.Chunks() {
		changed = dst.InsertChunk(c).Any() || changed
	}

	return changed
}

// IsSubset reports whether row sub is a subset of row sup, chunk-wise.
func (m *Matrix[R, C]) IsSubset(sub, sup R) bool {
	if sub == sup {
		return true
	}

	supRow := &m.rows[sup]
	for c := range m.rows[sub].Chunks() {
		if !supRow.ContainsChunk(c).BitsEq(c) {
			return false
		}
	}

	return true
}

// All yields the columns set in row r, in increasing order.
// Invalidated by mutation.
func (m *Matrix[R, C]) All(r R) iter.Seq[C] {
	return m.rows[r].All()
}

// Rows yields every (row index, row) pair in index order.
// Invalidated by mutation.
func (m *Matrix[R, C]) Rows() iter.Seq2[R, *Set[C]] {
	return func(yield func(R, *Set[C]) bool) {
		for i := range m.rows {
			if !yield(R(i), &m.rows[i]) {
				return
			}
		}
	}
}
