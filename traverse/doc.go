// Package traverse implements breadth-first and depth-first search over a
// core.Graph of any variant, with functional options for cancellation,
// depth limiting, neighbor filtering, and visit hooks.
//
// What:
//   - BFS(g, start, opts...): level-order traversal; Result.Depth holds
//     unweighted shortest-path distances from start.
//   - DFS(g, start, opts...): pre-order traversal with an optional
//     post-order hook; WithForest covers disconnected components.
//
// Both searches follow the container's adjacency convention: on directed
// graphs they walk outgoing arcs, on undirected graphs all incident
// edges. Parallel edges of a multigraph do not revisit a neighbor.
// Neighbor order is the container's per-node edge insertion order, so a
// traversal over an unmodified graph is fully deterministic.
//
// Options:
//
//   - WithContext(ctx)      cancellation and deadlines.
//   - WithMaxDepth(d)       do not explore beyond depth d (0 = no limit).
//   - WithFilter(fn)        skip the edge curr→next when fn returns false.
//   - WithOnVisit(fn)       pre-order hook; a returned error aborts.
//   - WithOnExit(fn)        DFS post-order hook; a returned error aborts.
//   - WithForest()          DFS only: restart from every unvisited node.
//
// Errors:
//
//   - ErrNilGraph       g is nil.
//   - ErrStartNotFound  start is not in g (single-source mode).
//   - ErrBadOption      an option value is invalid (negative depth).
//   - context errors and hook errors propagate wrapped.
//
// Complexity: O(V + E) time, O(V) extra memory, both searches.
package traverse
