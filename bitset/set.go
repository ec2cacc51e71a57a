package bitset

import (
	"cmp"
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/reachrel/core"
)

// Set is a chunked sparse bitset: an ordered-by-key sequence of non-empty
// chunks. The zero value is an empty, ready-to-use set.
//
// Invariant: no stored chunk has a zero word. Chunk-level mutators return
// the delta chunk (bits actually flipped) so callers can detect change
// without re-scanning.
type Set[I core.Idx] struct {
	chunks []Chunk[I] // sorted by Key, every entry non-zero
}

// NewSet returns an empty set.
func NewSet[I core.Idx]() *Set[I] {
	return &Set[I]{}
}

// find locates the entry for key, or the insertion position if absent.
func (s *Set[I]) find(key uint32) (pos int, ok bool) {
	return slices.BinarySearchFunc(s.chunks, key, func(c Chunk[I], k uint32) int {
		return cmp.Compare(c.Key, k)
	})
}

// Contains reports whether i is a member.
// Complexity: O(log chunks)
func (s *Set[I]) Contains(i I) bool {
	return s.ContainsChunk(One(i)).Any()
}

// Insert sets bit i and reports whether it was previously clear.
// Complexity: O(chunks) worst case (entry insertion)
func (s *Set[I]) Insert(i I) bool {
	return s.InsertChunk(One(i)).Any()
}

// Remove clears bit i and reports whether it was previously set.
// The enclosing entry is dropped when it empties out.
// Complexity: O(chunks) worst case (entry deletion)
func (s *Set[I]) Remove(i I) bool {
	return s.RemoveChunk(One(i)).Any()
}

// ContainsChunk returns the chunk with c's key whose bits are the
// intersection of c with the stored chunk. Testing
// s.ContainsChunk(c).BitsEq(c) asks "is c a subset of s".
// Complexity: O(log chunks)
func (s *Set[I]) ContainsChunk(c Chunk[I]) Chunk[I] {
	if pos, ok := s.find(c.Key); ok {
		return Chunk[I]{Key: c.Key, Bits: s.chunks[pos].Bits.And(c.Bits)}
	}

	return Chunk[I]{Key: c.Key}
}

// InsertChunk unions c's bits into the stored chunk at c.Key, creating
// the entry if absent, and returns the chunk of newly added bits.
// A zero chunk is a no-op.
func (s *Set[I]) InsertChunk(c Chunk[I]) Chunk[I] {
	if !c.Bits.Any() {
		return c
	}

	pos, ok := s.find(c.Key)
	if !ok {
		s.chunks = slices.Insert(s.chunks, pos, c)

		return c // every bit is new
	}

	old := s.chunks[pos].Bits
	s.chunks[pos].Bits = old.Or(c.Bits)

	return Chunk[I]{Key: c.Key, Bits: c.Bits.AndNot(old)}
}

// RemoveChunk clears c's bits from the stored chunk at c.Key and returns
// the chunk of newly cleared bits. The entry is dropped when it becomes
// zero. A zero chunk is a no-op.
func (s *Set[I]) RemoveChunk(c Chunk[I]) Chunk[I] {
	if !c.Bits.Any() {
		return c
	}

	pos, ok := s.find(c.Key)
	if !ok {
		return Chunk[I]{Key: c.Key}
	}

	old := s.chunks[pos].Bits
	remaining := old.AndNot(c.Bits)
	if remaining.Any() {
		s.chunks[pos].Bits = remaining
	} else {
		s.chunks = slices.Delete(s.chunks, pos, pos+1)
	}

	return Chunk[I]{Key: c.Key, Bits: old.And(c.Bits)}
}

// InsertSet unions every chunk of o into s and reports whether any new
// bit appeared. Inserting a set into itself is a no-op returning false.
func (s *Set[I]) InsertSet(o *Set[I]) bool {
	if s == o {
		return false
	}

	changed := false
	for _, c := range o.chunks {
		changed = s.InsertChunk(c).Any() || changed
	}

	return changed
}

// RemoveSet clears every chunk of o from s and reports whether any bit
// disappeared. Removing a set from itself clears it.
func (s *Set[I]) RemoveSet(o *Set[I]) bool {
	if s == o {
		changed := !s.IsEmpty()
		s.Clear()

		return changed
	}

	changed := false
	for _, c := range o.chunks {
		changed = s.RemoveChunk(c).Any() || changed
	}

	return changed
}

// Clear removes every member, releasing the chunk storage.
func (s *Set[I]) Clear() {
	s.chunks = nil
}

// IsEmpty reports whether the set has no members.
func (s *Set[I]) IsEmpty() bool {
	return len(s.chunks) == 0
}

// Len is the number of members (sum of chunk popcounts).
// Complexity: O(chunks)
func (s *Set[I]) Len() int {
	n := 0
	for _, c := range s.chunks {
		n += c.Bits.OnesCount()
	}

	return n
}

// Clone returns an independent copy of s.
func (s *Set[I]) Clone() *Set[I] {
	return &Set[I]{chunks: slices.Clone(s.chunks)}
}

// Chunks yields all non-empty chunks in key order. The sequence is
// invalidated by any mutating call on s.
func (s *Set[I]) Chunks() iter.Seq[Chunk[I]] {
	return func(yield func(Chunk[I]) bool) {
		for _, c := range s.chunks {
			if !yield(c) {
				return
			}
		}
	}
}

// All yields the members in increasing order. The sequence is invalidated
// by any mutating call on s.
func (s *Set[I]) All() iter.Seq[I] {
	return func(yield func(I) bool) {
		for _, c := range s.chunks {
			for i := range c.All() {
				if !yield(i) {
					return
				}
			}
		}
	}
}

// String implements fmt.Stringer; members in increasing order.
func (s *Set[I]) String() string {
	return fmt.Sprint(slices.Collect(s.All()))
}
