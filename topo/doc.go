// Package topo implements topological ordering and cycle detection on
// directed graphs.
//
// What:
//   - TopologicalSort(g, opts...): a linear order in which every arc u→v
//     places u before v; built from a reverse DFS post-order.
//   - HasCycle(g, opts...): reports whether any directed cycle exists.
//
// Both operations require a directed graph and return the capability
// error from core otherwise. Multigraphs are fine: parallel arcs do not
// change reachability. Nodes are scanned in insertion order, so the
// produced order is deterministic for a fixed construction sequence.
//
// Errors:
//
//   - ErrNilGraph                 g is nil.
//   - core.ErrCapabilityMismatch  g is undirected.
//   - ErrCycle                    a directed cycle exists (sort only);
//     wraps core.ErrStructural, so errors.Is against either matches.
//
// Complexity: O(V + E) time, O(V) memory.
package topo
