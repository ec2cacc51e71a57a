// Package reachrel maintains the transitive reachability of a directed
// graph while nodes are deleted out from under it.
//
// 🚀 What is reachrel?
//
//	A small, single-owner library built around one guarantee: if edges
//	A → B and B → C exist and B is removed, the edge A → C is left behind.
//	Removing an internal node never loses the connectivity it mediated.
//
// Two interchangeable representations implement that guarantee:
//
//   - matrixrel/ — a row-per-node sparse bitset matrix; deletion rewires
//     all predecessors to all live transitive successors by bitset union,
//     removing whole node sets in one call
//   - listrel/   — an intrusive doubly-indexed adjacency list with an edge
//     free list; deletion is in-place pointer surgery specialized to the
//     0/1/many structural cases, allocation-free in the common ones
//
// ✨ Why choose reachrel?
//
//   - Typed indices — node-identifier kinds are distinguished at compile
//     time via a generic integer constraint, with zero runtime cost
//   - Change-aware  — every chunk-level bitset mutator reports the delta of
//     bits it actually flipped, so fixpoint loops never re-scan
//   - Reusable edges — the list form routes removed edges through a free
//     list, capping heap growth at the lifetime maximum edge count
//
// Package map:
//
//	core/      — Idx constraint, Direction, the shared Relation contract
//	bitset/    — chunked 128-bit-word sparse bitsets and the bit matrix
//	matrixrel/ — matrix-backed relation with bulk node removal
//	listrel/   — adjacency-list relation with single-node removal
//	traverse/  — visitor-style reachability over any Relation
//
// Quick ASCII example:
//
//	A──▶B──▶C      remove B      A──────▶C
//
// Dive into the per-package docs for contracts, invariants, and complexity.
//
//	go get github.com/katalvlaran/reachrel
package reachrel
