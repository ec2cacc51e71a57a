// Package listrel: intrusive adjacency-list relation with an edge free
// list. Construction, allocation, insertion, and enumeration live here;
// the removal surgery is in remove.go.
package listrel

import (
	"iter"

	"github.com/katalvlaran/reachrel/core"
)

// edgeID addresses a slot in the flat edge store. noEdge marks the end
// of a list (and an empty free list).
type edgeID int32

const noEdge edgeID = -1

// nodeData holds the heads of a node's two edge lists, indexed by
// core.Direction.
type nodeData struct {
	first [2]edgeID
}

// edgeData is one edge slot. While ACTIVE, nodes[Incoming] is the
// predecessor and nodes[Outgoing] the successor; next[Outgoing] chains
// the predecessor's outgoing list and next[Incoming] the successor's
// incoming list. While FREE, next[Outgoing] is the free-list link and
// everything else is garbage.
type edgeData[N core.Idx] struct {
	nodes [2]N
	next  [2]edgeID
}

// Relation is the adjacency-list representation of the
// transitive-reachability-preserving directed graph.
type Relation[N core.Idx] struct {
	nodes     []nodeData
	edges     []edgeData[N]
	freeList  edgeID
	numActive int
}

// New allocates an empty relation with the given fixed node count.
// Complexity: O(numNodes)
func New[N core.Idx](numNodes int) *Relation[N] {
	nodes := make([]nodeData, numNodes)
	for i := range nodes {
		nodes[i].first = [2]edgeID{noEdge, noEdge}
	}

	return &Relation[N]{nodes: nodes, freeList: noEdge}
}

// NumNodes reports the fixed node count.
func (r *Relation[N]) NumNodes() int {
	return len(r.nodes)
}

// NumEdges reports the number of ACTIVE edges.
func (r *Relation[N]) NumEdges() int {
	return r.numActive
}

// allocEdge pops a slot from the free list, or appends a fresh one, and
// overwrites it with ed.
func (r *Relation[N]) allocEdge(ed edgeData[N]) edgeID {
	r.numActive++

	if e := r.freeList; e != noEdge {
		r.freeList = r.edges[e].next[core.Outgoing]
		r.edges[e] = ed

		return e
	}

	r.edges = append(r.edges, ed)

	return edgeID(len(r.edges) - 1)
}

// pushFree threads the slot onto the free-list stack through its
// outgoing link. The caller must already have unlinked it from both
// endpoint lists.
func (r *Relation[N]) pushFree(e edgeID) {
	r.edges[e].next[core.Outgoing] = r.freeList
	r.freeList = e
	r.numActive--
}

// AddEdge inserts the edge (pred, succ) at the head of both endpoint
// lists and reports whether it was newly added; a duplicate is rejected
// by a linear scan of pred's outgoing list. Self-loops are permitted.
// Complexity: O(out-degree of pred)
func (r *Relation[N]) AddEdge(pred, succ N) bool {
	for s := range r.Successors(pred) {
		if s == succ {
			return false
		}
	}

	e := r.allocEdge(edgeData[N]{
		nodes: [2]N{pred, succ}, // [Incoming]=pred, [Outgoing]=succ
		next: [2]edgeID{
			r.nodes[succ].first[core.Incoming],
			r.nodes[pred].first[core.Outgoing],
		},
	})
	r.nodes[succ].first[core.Incoming] = e
	r.nodes[pred].first[core.Outgoing] = e

	return true
}

// HasEdge reports whether the edge (pred, succ) is present.
// Complexity: O(out-degree of pred)
func (r *Relation[N]) HasEdge(pred, succ N) bool {
	for s := range r.Successors(pred) {
		if s == succ {
			return true
		}
	}

	return false
}

// edgeList yields the edge slots of n's list in the given direction.
// Invalidated by any mutating call.
func (r *Relation[N]) edgeList(n N, dir core.Direction) iter.Seq[edgeID] {
	return func(yield func(edgeID) bool) {
		for e := r.nodes[n].first[dir]; e != noEdge; {
			next := r.edges[e].next[dir]
			if !yield(e) {
				return
			}
			e = next
		}
	}
}

// Successors yields the direct successors of n in unspecified order,
// without allocation. Invalidated by any mutating call.
func (r *Relation[N]) Successors(n N) iter.Seq[N] {
	return func(yield func(N) bool) {
		for e := range r.edgeList(n, core.Outgoing) {
			if !yield(r.edges[e].nodes[core.Outgoing]) {
				return
			}
		}
	}
}

// Predecessors yields the direct predecessors of n in unspecified order,
// without allocation. Invalidated by any mutating call.
func (r *Relation[N]) Predecessors(n N) iter.Seq[N] {
	return func(yield func(N) bool) {
		for e := range r.edgeList(n, core.Incoming) {
			if !yield(r.edges[e].nodes[core.Incoming]) {
				return
			}
		}
	}
}
