// Package bitset_test exercises the chunked sparse bitset: bit- and
// chunk-level primitives, delta reporting, and the no-empty-chunk
// invariant.
package bitset_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/reachrel/bitset"
)

type region uint32

func TestSet_InsertContainsRemove(t *testing.T) {
	t.Parallel()

	s := bitset.NewSet[region]()
	require.True(t, s.IsEmpty())

	// Members spread across four different chunks (word width 128).
	members := []region{0, 5, 127, 128, 300, 4096}
	for _, m := range members {
		require.True(t, s.Insert(m), "first insert of %d must report change", m)
		require.False(t, s.Insert(m), "second insert of %d must be a no-op", m)
	}

	require.Equal(t, len(members), s.Len())
	for _, m := range members {
		require.True(t, s.Contains(m))
	}
	require.False(t, s.Contains(1))
	require.False(t, s.Contains(129))

	require.True(t, s.Remove(300))
	require.False(t, s.Remove(300), "removing a clear bit must report no change")
	require.False(t, s.Contains(300))
	require.Equal(t, len(members)-1, s.Len())
}

func TestSet_AllIncreasingOrder(t *testing.T) {
	t.Parallel()

	s := bitset.NewSet[region]()
	for _, m := range []region{4096, 0, 300, 127, 128, 5} {
		s.Insert(m)
	}

	got := slices.Collect(s.All())
	require.Equal(t, []region{0, 5, 127, 128, 300, 4096}, got)
}

func TestSet_ChunkInvariant(t *testing.T) {
	t.Parallel()

	s := bitset.NewSet[region]()
	s.Insert(200)
	s.Insert(201)

	// Emptying a chunk must drop its entry entirely.
	s.Remove(200)
	s.Remove(201)

	for c := range s.Chunks() {
		require.True(t, c.Any(), "stored chunk %v has zero bits", c.Key)
	}
	require.True(t, s.IsEmpty())
}

func TestSet_InsertChunkDelta(t *testing.T) {
	t.Parallel()

	s := bitset.NewSet[region]()
	s.Insert(1)
	s.Insert(3)

	// Insert {1, 2}: only bit 2 is new.
	c := bitset.One(region(1))
	c.Bits = c.Bits.Or(bitset.One(region(2)).Bits)

	added := s.InsertChunk(c)
	require.True(t, added.Any())
	require.Equal(t, []region{2}, slices.Collect(added.All()))

	// Re-inserting the same chunk adds nothing.
	require.False(t, s.InsertChunk(c).Any())
}

func TestSet_RemoveChunkDelta(t *testing.T) {
	t.Parallel()

	s := bitset.NewSet[region]()
	s.Insert(1)
	s.Insert(3)

	// Remove {1, 2}: only bit 1 was present.
	c := bitset.One(region(1))
	c.Bits = c.Bits.Or(bitset.One(region(2)).Bits)

	removed := s.RemoveChunk(c)
	require.Equal(t, []region{1}, slices.Collect(removed.All()))
	require.Equal(t, []region{3}, slices.Collect(s.All()))

	// Removing from an absent chunk reports no change.
	require.False(t, s.RemoveChunk(bitset.One(region(4096))).Any())
}

func TestSet_ContainsChunkSubsetTest(t *testing.T) {
	t.Parallel()

	s := bitset.NewSet[region]()
	s.Insert(10)
	s.Insert(11)

	both := bitset.One(region(10))
	both.Bits = both.Bits.Or(bitset.One(region(11)).Bits)
	require.True(t, s.ContainsChunk(both).BitsEq(both), "chunk fully present")

	wider := both
	wider.Bits = wider.Bits.Or(bitset.One(region(12)).Bits)
	require.False(t, s.ContainsChunk(wider).BitsEq(wider), "bit 12 missing")
}

func TestSet_InsertSetRemoveSet(t *testing.T) {
	t.Parallel()

	a := bitset.NewSet[region]()
	b := bitset.NewSet[region]()
	for _, m := range []region{1, 200, 999} {
		a.Insert(m)
	}
	for _, m := range []region{200, 1000} {
		b.Insert(m)
	}

	require.True(t, a.InsertSet(b), "1000 is new to a")
	require.Equal(t, []region{1, 200, 999, 1000}, slices.Collect(a.All()))
	require.False(t, a.InsertSet(b), "second union adds nothing")

	// Self union is a no-op.
	require.False(t, a.InsertSet(a))

	require.True(t, a.RemoveSet(b))
	require.Equal(t, []region{1, 999}, slices.Collect(a.All()))
	require.False(t, a.RemoveSet(b))

	// Self subtraction clears.
	require.True(t, a.RemoveSet(a))
	require.True(t, a.IsEmpty())
}

func TestSet_CloneIndependent(t *testing.T) {
	t.Parallel()

	a := bitset.NewSet[region]()
	a.Insert(7)

	b := a.Clone()
	b.Insert(8)

	require.False(t, a.Contains(8))
	require.True(t, b.Contains(7))
}

func TestChunk_One(t *testing.T) {
	t.Parallel()

	c := bitset.One(region(130))
	require.Equal(t, uint32(1), c.Key, "130 lives in chunk 1")
	require.Equal(t, []region{130}, slices.Collect(c.All()))
	require.True(t, c.Any())

	require.Equal(t, uint32(0), bitset.One(region(127)).Key)
	require.Equal(t, uint32(1), bitset.One(region(128)).Key)
}
