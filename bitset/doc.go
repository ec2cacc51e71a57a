// Package bitset implements chunked sparse bitsets and a sparse bit
// matrix, the storage layer of the matrix-backed relation.
//
// Studied [github.com/bits-and-blooms/bitset] and kin, but the callers
// here need something different from a dense bitset: a mapping from a
// 32-bit chunk key to a fixed 128-bit word, efficient when the set is
// sparse and when two sets have similar chunk populations.
//
// What
//
//   - Word:  a fixed 128-bit unsigned word ([2]uint64)
//   - Chunk: a (key, word) pair representing the set
//     { key·128 + i | bit i of word is 1 }
//   - Set:   an ordered sequence of non-empty chunks, with bit-at-a-time
//     and chunk-at-a-time primitives
//   - Matrix: a fixed-size indexed sequence of Set rows with row-level
//     merge and subset operations
//
// Why deltas
//
//	Every chunk-level mutator (InsertChunk, RemoveChunk) returns the
//	chunk of bits it actually flipped. Callers building worklist-driven
//	fixpoints detect change in O(1) per chunk instead of re-scanning,
//	which is what makes the transitive-preserving node removal in
//	matrixrel affordable.
//
// Invariants
//
//   - No stored chunk has a zero word; entries are removed the moment
//     they empty out.
//   - Chunks are kept sorted by key; member iteration is in increasing
//     order.
//
// Sets and matrices are single-owner: any mutating call invalidates live
// iterators over the same value. Indices must be non-negative; matrix row
// access with an out-of-range row panics (programmer error).
package bitset
