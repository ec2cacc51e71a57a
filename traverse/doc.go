// Package traverse provides visitor-style reachability over any
// core.Relation, with optional hooks, neighbor filtering, and
// cancellation.
//
// What
//
//   - ReachableFrom(rel, start, visit, opts...): depth-first walk over
//     successors, invoking visit exactly once per reachable node —
//     including start itself — using a local visited set.
//
// Why
//
//	Downstream consumers of a transitive-preserving relation (dataflow
//	passes, liveness propagation) need "for each node reachable from
//	here" without materializing the closure. The relation keeps direct
//	edges only; this package supplies the walk.
//
// Options
//
//   - WithContext(ctx)         cancellation between visits
//   - WithOnPush(fn)           hook when a node is first discovered
//   - WithFilterSuccessor(fn)  skip individual edges; return false to prune
//
// Errors
//
//   - ErrNilRelation  if rel is nil
//   - ErrNilVisitor   if visit is nil
//   - ErrOutOfRange   if start is outside [0, rel.NumNodes())
//   - context errors and any error returned by the visitor
//
// Complexity: O(V + E) over the reachable subgraph; memory O(V) for the
// visited set and stack. The visit order is unspecified (stack-driven);
// callers needing determinism should sort what they collect.
package traverse
