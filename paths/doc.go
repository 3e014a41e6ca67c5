// Package paths implements Dijkstra's single-source shortest paths over
// a weighted core.Graph.
//
// Edge weights follow the attribute convention: the weight is read from
// each edge's bag with the configured attribute name (default "weight"),
// and a missing or non-numeric attribute counts as 1. Between two nodes
// of a multigraph the cheapest parallel edge is used. Works on directed
// and undirected graphs alike; directed graphs relax outgoing arcs only.
//
// The priority queue is a binary min-heap (emirpasic/gods) driven with a
// lazy decrease-key: relaxations push duplicates and stale entries are
// skipped on pop.
//
// Options:
//
//   - WithWeightAttr(name)  attribute to read weights from.
//   - WithMaxDistance(x)    do not settle nodes farther than x; panics on
//     negative x (programmer error, mirrors the option-builder rule used
//     across this module).
//
// Errors:
//
//   - ErrNilGraph        g is nil.
//   - ErrSourceNotFound  source is not in g.
//   - ErrNegativeWeight  some edge weight is negative; wraps
//     core.ErrStructural. Detected by an upfront O(E) scan, before any
//     relaxation.
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
package paths
