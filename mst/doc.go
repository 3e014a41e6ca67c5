// Package mst implements Kruskal's minimum spanning tree on undirected
// simple graphs.
//
// What:
//   - Kruskal(g, opts...): the set of edges forming an MST, plus its
//     total weight. Edge weights follow the attribute convention (name
//     configurable, default "weight", missing attribute counts as 1).
//
// The graph must be undirected and simple; either capability violation
// surfaces core.ErrCapabilityMismatch. Self-loops are skipped: they can
// never belong to a spanning tree. Ties between equal-weight edges are
// broken by the container's edge enumeration order (stable sort), so the
// result is deterministic for a fixed construction order.
//
// Errors:
//
//   - ErrNilGraph                 g is nil.
//   - core.ErrCapabilityMismatch  g is directed or a multigraph.
//   - ErrDisconnected             g has no nodes or is not connected;
//     wraps core.ErrStructural.
//
// Complexity: O(E log E) time for the sort plus near-linear union-find,
// O(V + E) memory.
package mst
