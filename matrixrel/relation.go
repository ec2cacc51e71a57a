// Package matrixrel: matrix-backed relation and its transitive-preserving
// bulk node removal.
package matrixrel

import (
	"errors"
	"fmt"
	"iter"

	"github.com/gammazero/deque"

	"github.com/katalvlaran/reachrel/bitset"
	"github.com/katalvlaran/reachrel/core"
)

// ErrLiveDeadOverlap is returned by Kill when the live and dead node sets
// intersect; RemoveNodes requires a disjoint partition.
var ErrLiveDeadOverlap = errors.New("matrixrel: live and dead node sets overlap")

// Relation is a directed graph that preserves transitive reachability
// under node removal, backed by a sparse bit matrix of direct adjacency.
//
// For example, with edges A → B and B → C, removing B leaves A → C
// behind. The transitive closure is NOT materialized: rows hold direct
// successors only.
type Relation[R core.Idx] struct {
	adjacency *bitset.Matrix[R, R]
}

// New allocates an empty relation with the given fixed node count.
// Complexity: O(numNodes)
func New[R core.Idx](numNodes int) *Relation[R] {
	return &Relation[R]{adjacency: bitset.NewMatrix[R, R](numNodes)}
}

// NumNodes reports the fixed node count.
func (r *Relation[R]) NumNodes() int {
	return r.adjacency.NumRows()
}

// AddEdge inserts the edge (pred, succ) and reports whether it was newly
// added. Self-loops are permitted. An out-of-range pred or succ panics.
func (r *Relation[R]) AddEdge(pred, succ R) bool {
	if int64(succ) < 0 || int64(succ) >= int64(r.NumNodes()) {
		panic(fmt.Sprintf("matrixrel: successor %d not in [0, %d)", int64(succ), r.NumNodes()))
	}

	return r.adjacency.Add(pred, succ)
}

// Contains reports whether the edge (pred, succ) is present.
func (r *Relation[R]) Contains(pred, succ R) bool {
	return r.adjacency.Contains(pred, succ)
}

// Successors yields the direct successors of n in increasing order.
// Invalidated by mutation.
func (r *Relation[R]) Successors(n R) iter.Seq[R] {
	return r.adjacency.All(n)
}

// Kill is the slice-based convenience over RemoveNodes: it builds the
// dead bitset from deadNodes and verifies disjointness with liveNodes,
// returning ErrLiveDeadOverlap on violation.
func (r *Relation[R]) Kill(liveNodes, deadNodes []R) error {
	dead := bitset.NewSet[R]()
	for _, n := range deadNodes {
		dead.Insert(n)
	}
	for _, n := range liveNodes {
		if dead.Contains(n) {
			return fmt.Errorf("%w: node %v", ErrLiveDeadOverlap, n)
		}
	}

	r.RemoveNodes(liveNodes, dead)

	return nil
}

// RemoveNodes removes every node in dead at once, rewiring each live
// source to the live frontier of every dead target it pointed at, so
// that reachability among live nodes through dead interiors survives as
// direct edges. All edges incident to dead nodes are removed.
//
// Precondition (caller obligation): liveNodes and dead are disjoint and
// together cover every node referenced during the call.
func (r *Relation[R]) RemoveNodes(liveNodes []R, dead *bitset.Set[R]) {
	// Frontiers are memoized across the whole call: each dead node's
	// frontier is computed at most once.
	frontiers := make(map[R]*bitset.Set[R])

	for _, src := range liveNodes {
		for deadChunk := range dead.Chunks() {
			deadTargets := r.adjacency.Row(src).ContainsChunk(deadChunk)
			if !deadTargets.Any() {
				continue
			}

			for d := range deadTargets.All() {
				frontier, ok := frontiers[d]
				if !ok {
					frontier = r.liveFrontier(d, dead)
					frontiers[d] = frontier
				}

				r.adjacency.Row(src).InsertSet(frontier)
			}

			// Clear the direct edges into the dead chunk.
			r.adjacency.Row(src).RemoveChunk(deadChunk)
		}
	}

	for d := range dead.All() {
		r.adjacency.Row(d).Clear()
	}
}

// liveFrontier collects the live nodes reachable from the dead node d via
// paths whose interior is entirely dead. The worklist carries chunks;
// invariant: every node in a queued chunk is dead.
func (r *Relation[R]) liveFrontier(d R, dead *bitset.Set[R]) *bitset.Set[R] {
	result := bitset.NewSet[R]()
	result.InsertChunk(bitset.One(d))

	var work deque.Deque[bitset.Chunk[R]]
	work.PushBack(bitset.One(d))

	for work.Len() > 0 {
		deadTargets := work.PopBack()

		for x := range deadTargets.All() {
			for next := range r.adjacency.Row(x).Chunks() {
				// Track only the bits not already present, then queue
				// the newly-added-and-dead ones; skipping bits already
				// seen is what bounds the search.
				added := result.InsertChunk(next)
				newDead := dead.ContainsChunk(added)
				if newDead.Any() {
					work.PushBack(newDead)
				}
			}
		}
	}

	// Only live members remain in the frontier.
	for deadChunk := range dead.Chunks() {
		result.RemoveChunk(deadChunk)
	}

	return result
}

// MergeFrom unions other's rows into r for every listed live source, and
// reports whether any edge appeared. Both relations must share the same
// node universe.
func (r *Relation[R]) MergeFrom(other *Relation[R], liveNodes []R) bool {
	changed := false
	for _, src := range liveNodes {
		changed = r.adjacency.Row(src).InsertSet(other.adjacency.Row(src)) || changed
	}

	return changed
}

// DumpEdges returns a deterministic textual enumeration of all edges in
// node-index order, one "p --> s" line per edge. Testing-only surface;
// stable under equivalent state.
func (r *Relation[R]) DumpEdges() []string {
	var lines []string
	for pred, row := range r.adjacency.Rows() {
		for succ := range row.All() {
			lines = append(lines, fmt.Sprintf("%d --> %d", int64(pred), int64(succ)))
		}
	}

	return lines
}
