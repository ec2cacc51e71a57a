// Package listrel: node removal by in-place pointer surgery.
package listrel

import (
	"fmt"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/reachrel/core"
)

// RemoveNode removes all edges incident to n while preserving transitive
// reachability among the remaining nodes: every path a → n → b collapses
// to a direct edge a → b. n stays a valid identifier with no edges, so
// removing it again is a no-op.
//
// Dispatch is on saturating degree counts (0 / 1 / many per side):
//
//	in == 0 or out == 0  — nothing to preserve, free the edges
//	out == 1             — recycle: redirect every incoming edge to the
//	                       former successor (no allocation; each edge
//	                       costs a duplicate scan of its predecessor's
//	                       outgoing list)
//	in == 1              — symmetric: redirect every outgoing edge to
//	                       originate from the former predecessor
//	otherwise            — materialize both neighbour sequences, free both
//	                       lists, and re-add the in×out cross product
//
// Worst case O(in-degree · out-degree) via unlink traversals.
func (r *Relation[N]) RemoveNode(n N) {
	// A self-loop on n adds nothing to reachability among other nodes
	// once n is gone (a → n → n → b collapses the same as a → n → b),
	// so drop it first; the degree dispatch below then sees genuine
	// neighbours only.
	r.dropSelfLoop(n)

	if r.countSaturating(n, core.Incoming) == 0 {
		r.moveEdgesToFreeList(n, core.Outgoing)

		return
	}

	switch {
	case r.countSaturating(n, core.Outgoing) == 0:
		r.moveEdgesToFreeList(n, core.Incoming)

	case r.countSaturating(n, core.Outgoing) == 1:
		// A --> n --> C becomes A --> C reusing A's edge in place.
		succ := r.detachSole(n, core.Outgoing)
		r.redirect(n, core.Incoming, succ)

	case r.countSaturating(n, core.Incoming) == 1:
		pred := r.detachSole(n, core.Incoming)
		r.redirect(n, core.Outgoing, pred)

	default:
		// Many on both sides: no edge can be reused in place, so pay
		// the O(in·out) re-add.
		preds := slices.Collect(r.Predecessors(n))
		succs := slices.Collect(r.Successors(n))
		r.moveEdgesToFreeList(n, core.Incoming)
		r.moveEdgesToFreeList(n, core.Outgoing)
		for _, p := range preds {
			for _, s := range succs {
				r.AddEdge(p, s)
			}
		}
	}
}

// RemoveNodes removes each listed node in turn. Single-node removal
// preserves transitive reachability among all remaining nodes — removed
// or not yet removed — so the final edge set does not depend on the
// order. Duplicate arguments are skipped (removal is idempotent anyway).
func (r *Relation[N]) RemoveNodes(nodes ...N) {
	seen := mapset.NewThreadUnsafeSet[N]()
	for _, n := range nodes {
		if seen.Add(n) {
			r.RemoveNode(n)
		}
	}
}

// countSaturating walks at most two steps of n's list in the given
// direction and reports 0, 1, or 2 ("two or more").
func (r *Relation[N]) countSaturating(n N, dir core.Direction) int {
	first := r.nodes[n].first[dir]
	if first == noEdge {
		return 0
	}
	if r.edges[first].next[dir] == noEdge {
		return 1
	}

	return 2
}

// unlink walks node's list in dir until it finds e and replaces e's
// position with next. The lists are singly linked per direction, so the
// traversal is unavoidable; this is the only O(deg) subroutine inside
// removal.
func (r *Relation[N]) unlink(node N, dir core.Direction, e, next edgeID) {
	cur := r.nodes[node].first[dir]
	if cur == e {
		r.nodes[node].first[dir] = next

		return
	}

	for cur != noEdge {
		if r.edges[cur].next[dir] == e {
			r.edges[cur].next[dir] = next

			return
		}
		cur = r.edges[cur].next[dir]
	}

	panic(fmt.Sprintf("listrel: edge %d missing from %s list of node %d", e, dir, int64(node)))
}

// moveEdgesToFreeList frees every edge of n's list in dir: each edge is
// first unlinked from the far endpoint's opposite-direction list, then
// pushed onto the free list. n's head in dir is cleared.
func (r *Relation[N]) moveEdgesToFreeList(n N, dir core.Direction) {
	rev := dir.Reverse()
	for e := r.nodes[n].first[dir]; e != noEdge; {
		next := r.edges[e].next[dir]
		other := r.edges[e].nodes[dir]
		r.unlink(other, rev, e, r.edges[e].next[rev])
		r.pushFree(e)
		e = next
	}
	r.nodes[n].first[dir] = noEdge
}

// detachSole frees the single edge of n's list in dir — unlinking it
// from the far endpoint's opposite list — and returns that far endpoint.
// The caller guarantees the list holds exactly one edge.
func (r *Relation[N]) detachSole(n N, dir core.Direction) N {
	e := r.nodes[n].first[dir]
	r.nodes[n].first[dir] = noEdge

	other := r.edges[e].nodes[dir]
	r.unlink(other, dir.Reverse(), e, r.edges[e].next[dir.Reverse()])
	r.pushFree(e)

	return other
}

// redirect splices every edge of n's list in dir onto the head of
// target's list in the same direction, resetting the far endpoint field
// to target, and clears n's head. An edge whose rewrite would duplicate
// an existing edge (its far endpoint already connects to target
// directly) is freed instead — the graph is a set of edges. The spliced
// edges end up in reverse order, which is unobservable: enumeration
// order is unspecified.
func (r *Relation[N]) redirect(n N, dir core.Direction, target N) {
	rev := dir.Reverse()
	for e := r.nodes[n].first[dir]; e != noEdge; {
		next := r.edges[e].next[dir]
		far := r.edges[e].nodes[dir]

		duplicate := false
		if dir == core.Incoming {
			duplicate = r.HasEdge(far, target)
		} else {
			duplicate = r.HasEdge(target, far)
		}
		if duplicate {
			r.unlink(far, rev, e, r.edges[e].next[rev])
			r.pushFree(e)
		} else {
			r.edges[e].nodes[rev] = target
			r.edges[e].next[dir] = r.nodes[target].first[dir]
			r.nodes[target].first[dir] = e
		}
		e = next
	}
	r.nodes[n].first[dir] = noEdge
}

// dropSelfLoop frees the edge n → n if present. By the no-duplicate
// invariant there is at most one.
func (r *Relation[N]) dropSelfLoop(n N) {
	for e := range r.edgeList(n, core.Outgoing) {
		if r.edges[e].nodes[core.Outgoing] == n {
			r.unlink(n, core.Outgoing, e, r.edges[e].next[core.Outgoing])
			r.unlink(n, core.Incoming, e, r.edges[e].next[core.Incoming])
			r.pushFree(e)

			return
		}
	}
}
