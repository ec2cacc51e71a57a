// Package core defines the shared vocabulary of the reachrel module:
// the Idx constraint for typed node identifiers, the Direction enum used
// by the adjacency-list representation, and the Relation contract that
// every representation satisfies.
//
// What
//
//   - Idx: a generic constraint over integer kinds. Any named integer type
//     (`type Region uint32`, `type Point int`) satisfies it, which keeps
//     distinct identifier kinds apart at compile time with zero runtime cost.
//   - Direction: Incoming/Outgoing, the two per-node edge lists of the
//     adjacency-list form.
//   - Relation[N]: the public facade — fixed node count, add-edge with a
//     newly-added report, and successor enumeration.
//
// Why
//
//	Both representations (matrixrel, listrel) and every consumer
//	(traverse) speak through this package, so a caller can swap one
//	representation for the other without touching call sites.
//
// Identifiers are dense non-negative integers in [0, NumNodes), fixed at
// construction. Out-of-range identifiers are programmer errors: the
// representations document how they fail, but they never silently corrupt
// state.
package core
