// Package matrixrel implements the matrix-backed relation: direct
// adjacency stored in a sparse bit matrix, plus a bulk node-removal
// operation that preserves transitive reachability.
//
// What
//
//   - Relation[R]: construct with a fixed node count, AddEdge, Contains,
//     Successors, and the defining operation RemoveNodes(live, dead).
//   - RemoveNodes rewrites the graph so that for every pair of live nodes
//     (a, b) there is an edge a → b afterwards iff there was a path
//     a → d1 → … → dk → b before, with every interior node dead (k may be
//     0: the direct-edge case). All edges incident to dead nodes vanish.
//   - MergeFrom unions another relation's rows, restricted to live
//     sources, reporting change — the building block for joint fixpoints
//     across several relations.
//
// How
//
//	For each live source the dead targets are found by chunk-wise
//	intersection with the dead set. Each dead target's live frontier —
//	the live nodes reachable from it through an all-dead interior — is
//	computed once per call (memoized) by a worklist search whose queue
//	carries whole chunks of dead nodes; the delta-returning bitset
//	mutators make "newly added and dead" a two-word mask, so nothing is
//	ever revisited.
//
// Complexity
//
//   - Contains: O(log chunks) per call; AddEdge: O(log chunks) search
//     plus O(chunks) worst case when a new chunk entry is inserted.
//   - RemoveNodes: each dead target's frontier is computed once per call,
//     and within one frontier computation each dead node's row is scanned
//     at most once; each live row pays one intersection per dead chunk
//     plus the frontier unions.
//
// Failure semantics
//
//	RemoveNodes is a pure in-memory rewrite with caller obligations:
//	live ∩ dead = ∅ and indices in range. Kill checks the disjointness
//	and returns ErrLiveDeadOverlap when violated.
//
// Not concurrent: single-owner, single-threaded mutation. Mutating calls
// invalidate live iterators.
package matrixrel
