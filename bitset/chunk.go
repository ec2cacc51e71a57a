package bitset

import (
	"iter"
	"math/bits"

	"github.com/katalvlaran/reachrel/core"
)

// Chunk is a word-sized contiguous run of bits identified by a key: it
// represents the set { Key·WordBits + i | bit i of Bits is 1 }.
//
// Chunks are the unit of set operation. They are plain values — two
// chunks with the same key combine with the Word operations on Bits.
type Chunk[I core.Idx] struct {
	Key  uint32
	Bits Word
}

// One derives the chunk containing only i: Key = i / WordBits and
// Bits = 1 << (i mod WordBits). The index must be non-negative.
// Complexity: O(1)
func One[I core.Idx](i I) Chunk[I] {
	idx := uint64(int64(i))

	return Chunk[I]{
		Key:  uint32(idx / WordBits),
		Bits: wordOne(uint(idx % WordBits)),
	}
}

// Any reports whether the chunk carries at least one bit.
func (c Chunk[I]) Any() bool {
	return c.Bits.Any()
}

// BitsEq reports whether c and o carry exactly the same bits.
// Combined with ContainsChunk it forms the subset test:
// s.ContainsChunk(c).BitsEq(c) holds iff every bit of c is in s.
func (c Chunk[I]) BitsEq(o Chunk[I]) bool {
	return c.Bits == o.Bits
}

// All yields the members of the chunk in increasing order.
// Complexity: O(popcount)
func (c Chunk[I]) All() iter.Seq[I] {
	return func(yield func(I) bool) {
		base := uint64(c.Key) * WordBits
		for wIdx, word := range c.Bits {
			for word != 0 {
				member := base + uint64(wIdx<<6+bits.TrailingZeros64(word))
				if !yield(I(member)) {
					return
				}

				// clear the rightmost set bit
				word &= word - 1
			}
		}
	}
}
