// Package listrel implements the adjacency-list relation: the same
// transitive-reachability-preserving contract as matrixrel, represented
// as intrusive per-node edge lists with an edge free list, optimized for
// localized single-node deletions without bitset scans.
//
// Representation
//
//	Edges live in one flat, index-addressed store; every reference
//	between edges is an index into that store, never a pointer, so there
//	is nothing to dangle. Each node carries "first incoming" and "first
//	outgoing" edge references; each edge carries its (predecessor,
//	successor) pair plus "next outgoing from predecessor" and "next
//	incoming into successor" links. The same edge record threads both
//	singly-linked lists.
//
// Edge slot lifecycle
//
//	FREE ──alloc──▶ ACTIVE ──remove──▶ FREE
//
//	Removed edges migrate to a free-list stack (chained through the
//	outgoing link) and are reused by later AddEdge calls, capping heap
//	growth at the lifetime maximum edge count. A free slot's payload is
//	undefined; free slots are never reachable from any node's first-edge
//	references.
//
// Removal
//
//	RemoveNode dispatches on saturating in/out degree counts (walking at
//	most two steps per list): nodes with an empty side just drop their
//	edges; a single edge on one side is recycled in place by redirecting
//	the other side's edges to the far endpoint (zero allocation; each
//	redirected edge costs one duplicate scan of its other endpoint's list);
//	only the many-in/many-out case materializes the two neighbour sequences
//	and re-adds the cross product. Redirection reverses list order, which
//	is unobservable: edge enumeration order is unspecified.
//
// Out-of-range node identifiers are programmer errors and panic via the
// bounds check; they never corrupt state. Any mutating call invalidates
// live iterators over the same relation. Single-owner, not concurrent.
package listrel
