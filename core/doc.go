// Package core provides a mutable, attributed, in-memory graph container
// with a minimal, composable API surface.
//
// The Graph G = (V,E) is one generic type covering four variants:
//
//   - Undirected simple (default)
//   - Directed simple (WithDirected(true))
//   - Undirected multigraph (WithMultiEdges())
//   - Directed multigraph (both options)
//
// Nodes are identified by any comparable type K. Nodes, edges, and the
// graph itself each carry an open string-keyed attribute bag (Attrs).
// Adjacency is stored as nested maps (adj[u][v] → per-key attribute bags),
// giving O(1) average membership, insertion, and deletion, with explicit
// order slices preserving insertion order for every enumeration surface.
//
// Why use core.Graph?
//
//   - Single type, composable flags: no explosion of separate graph types.
//   - Insertion-order iteration: Nodes(), Edges(), Neighbors() enumerate
//     in the order entities were added, so tie-breaking in greedy consumers
//     reproduces run to run.
//   - Merge-on-re-add: AddNode/AddEdge on an existing entity patches its
//     attribute bag instead of erroring; SetNodeAttrs replaces outright.
//   - Cascade removal: RemoveNode deletes every incident edge; RemoveEdge
//     never deletes endpoints.
//   - Conversions: Copy (deep), Subgraph (induced), ToDirected,
//     ToUndirected, ToMultigraph, ToSimple each produce an independent
//     instance.
//
// Configuration Options (Option):
//
//	– WithDirected(directed bool)
//	    Directed graphs keep successor and predecessor adjacency;
//	    undirected graphs mirror each edge under both endpoints.
//	– WithMultiEdges()
//	    Permits parallel edges between the same endpoints, disambiguated
//	    by an integer key (auto-assigned or explicit).
//	– WithGraphAttrs(attrs Attrs)
//	    Seeds the graph-level attribute bag.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(id K, patches ...Attrs)          // O(1), merge on re-add
//	AddNodesFrom(items ...NodeItem[K])       // eager per item
//	HasNode(id K) bool                       // O(1)
//	RemoveNode(id K) error                   // O(deg(v) + V), cascades
//
//	// Edge lifecycle
//	AddEdge(u, v K, patches ...Attrs) int                  // O(1)†, returns key
//	AddEdgeWithKey(u, v K, key int, patches ...Attrs) error // multigraph only
//	AddEdgesFrom(items ...EdgeItem[K]) error               // eager per item
//	HasEdge(u, v K) bool / HasEdgeKey(u, v K, key int) bool // O(1)
//	RemoveEdge(u, v K) error / RemoveEdgeWithKey(u, v K, key int) error
//
//	// Query
//	Neighbors(id K) ([]K, error)        // insertion order
//	Successors / Predecessors           // directed graphs only
//	Degree / InDegree / OutDegree       // loop-aware counting
//	WeightedDegree(id K, attr string, def float64) // sums an edge attribute
//	Nodes() NodeView[K] / Edges() EdgeView[K] / Degrees() DegreeView[K]
//
//	// Conversion
//	Copy() / Subgraph(ids) / ToDirected() / ToUndirected() /
//	ToMultigraph() / ToSimple()
//
// Errors:
//
//	ErrNodeNotFound       – missing node on a single-item operation
//	ErrEdgeNotFound       – missing edge on a single-item operation
//	ErrCapabilityMismatch – operation unsupported by this variant
//	ErrMalformedItem      – ill-shaped item inside a bulk call
//	ErrStructural         – family anchor for algorithm preconditions
//
// Concurrency model: none. Graph is a plain single-goroutine data
// structure; distinct instances may live on distinct goroutines, but one
// instance must never be touched concurrently. Lazy view sequences are
// bound to live storage and fail fast (panic) if the graph is structurally
// mutated mid-iteration; take a snapshot (IDs(), Slice()) when you need to
// mutate while consuming.
//
// † amortized constant time: nested-map insertion plus order-slice append.
package core
