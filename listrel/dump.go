// Package listrel: deterministic debug dump with invariant assertions.
package listrel

import (
	"fmt"

	"github.com/katalvlaran/reachrel/core"
)

// DumpEdges returns a deterministic textual enumeration of the relation:
// every active edge as "N(p) --E(e)--> N(s)" in node-index order (list
// order within a node), followed by the free list as "free edge E(e)"
// entries in stack order. The grammar is stable under equivalent state.
//
// Testing-only surface. While walking, it asserts the structural
// invariants — every slot is visited exactly once across the active
// lists and the free list, the two lists of each edge are mutually
// consistent, and no free slot is reachable from a node — and panics on
// violation, which indicates a bug in this package.
func (r *Relation[N]) DumpEdges() []string {
	activeSeen := make([]bool, len(r.edges))
	inSeen := make([]bool, len(r.edges))

	var lines []string
	for i := range r.nodes {
		n := N(i)
		for e := range r.edgeList(n, core.Outgoing) {
			ed := r.edges[e]
			if ed.nodes[core.Incoming] != n {
				panic(fmt.Sprintf("listrel: edge E(%d) in outgoing list of N(%d) but predecessor is N(%d)",
					e, i, int64(ed.nodes[core.Incoming])))
			}
			if activeSeen[e] {
				panic(fmt.Sprintf("listrel: edge E(%d) appears in two outgoing lists", e))
			}
			activeSeen[e] = true
			lines = append(lines, fmt.Sprintf("N(%d) --E(%d)--> N(%d)", i, e, int64(ed.nodes[core.Outgoing])))
		}
	}

	for i := range r.nodes {
		n := N(i)
		for e := range r.edgeList(n, core.Incoming) {
			if r.edges[e].nodes[core.Outgoing] != n {
				panic(fmt.Sprintf("listrel: edge E(%d) in incoming list of N(%d) but successor is N(%d)",
					e, i, int64(r.edges[e].nodes[core.Outgoing])))
			}
			if inSeen[e] {
				panic(fmt.Sprintf("listrel: edge E(%d) appears in two incoming lists", e))
			}
			inSeen[e] = true
		}
	}

	freeSeen := make([]bool, len(r.edges))
	free := 0
	for e := r.freeList; e != noEdge; e = r.edges[e].next[core.Outgoing] {
		if activeSeen[e] || inSeen[e] {
			panic(fmt.Sprintf("listrel: free edge E(%d) reachable from a node", e))
		}
		if freeSeen[e] {
			panic(fmt.Sprintf("listrel: free list cycles through E(%d)", e))
		}
		freeSeen[e] = true
		free++
		lines = append(lines, fmt.Sprintf("free edge E(%d)", e))
	}

	for e := range r.edges {
		switch {
		case activeSeen[e] && !inSeen[e]:
			panic(fmt.Sprintf("listrel: edge E(%d) active but missing from its incoming list", e))
		case inSeen[e] && !activeSeen[e]:
			panic(fmt.Sprintf("listrel: edge E(%d) active but missing from its outgoing list", e))
		case !activeSeen[e] && !freeSeen[e]:
			panic(fmt.Sprintf("listrel: edge slot E(%d) leaked (neither active nor free)", e))
		}
	}
	if want := len(r.edges) - free; r.numActive != want {
		panic(fmt.Sprintf("listrel: active count %d does not match %d slots minus %d free",
			r.numActive, len(r.edges), free))
	}

	return lines
}
