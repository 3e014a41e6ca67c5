// Package grava is an in-memory attributed-graph toolkit: one generic
// mutable container plus small, independent algorithm packages built on
// its public contract.
//
// What grava gives you:
//
//   - Core container: nodes, edges and the graph itself each carry an open
//     string-keyed attribute bag; directed/undirected and simple/multi
//     variants behind one generic type; insertion-order iteration.
//   - Traversals: BFS, DFS (traverse/)
//   - Ordering: topological sort, cycle detection (topo/)
//   - Shortest paths: Dijkstra with the weight-attribute convention (paths/)
//   - Spanning trees: Kruskal (mst/)
//   - Generators: deterministic and seeded-random topologies (gen/)
//
// Why choose grava?
//
//   - One container, composable flags: no explosion of graph types.
//     Graph[K] is parameterized by the node-ID type; any comparable works.
//   - Predictable semantics: merge-on-re-add attributes, cascade removal,
//     typed sentinel errors, capability gates for algorithm preconditions.
//   - Deterministic iteration: nodes, neighbors and edges enumerate in
//     insertion order, so greedy tie-breaks reproduce run to run.
//
// Subpackages:
//
//	core/     - Graph[K], Attrs, views, conversions, error taxonomy
//	traverse/ - breadth-first and depth-first search
//	topo/     - topological sort and cycle detection (directed graphs)
//	paths/    - Dijkstra shortest paths
//	mst/      - minimum spanning tree (Kruskal)
//	gen/      - graph generators (Path, Cycle, Complete, Star, Gnp)
//
// Quick ASCII example:
//
//	    A───B
//	    │   │
//	    C───D
//
//	g := core.New[string]()
//	g.AddEdge("A", "B")
//	g.AddEdge("A", "C")
//	g.AddEdge("B", "D")
//	g.AddEdge("C", "D")
//
// The container is intentionally single-goroutine: no internal locking,
// no hidden global state. See core/doc.go for the full contract.
package grava
