// File: types.go
// Role: Declares Graph, its storage records, construction options,
//       bulk-item shapes, and the sentinel error taxonomy.
// Determinism:
//   - nodeOrder / adjOrder / keyOrder slices preserve insertion order;
//     every enumeration surface derives from them, never from map ranges.
// Concurrency:
//   - None by contract. A Graph instance belongs to one goroutine.

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrCapabilityMismatch indicates an operation was invoked on a graph
	// variant that does not support it (e.g. Predecessors on an undirected
	// graph, or AddEdgeWithKey on a simple graph). Raised at call entry,
	// before any mutation.
	ErrCapabilityMismatch = errors.New("core: operation not supported by this graph variant")

	// ErrMalformedItem indicates an ill-shaped item inside a bulk call.
	// Items applied before the offending one remain applied.
	ErrMalformedItem = errors.New("core: malformed bulk item")

	// ErrStructural anchors the structural-precondition error family.
	// Algorithm packages wrap it (via %w) when an input graph violates an
	// assumption such as acyclicity or connectivity, so callers can catch
	// the whole family with errors.Is(err, core.ErrStructural).
	ErrStructural = errors.New("core: structural precondition violated")
)

// iterInvalidatedMsg is the panic message raised by view sequences when the
// backing graph is structurally mutated mid-iteration.
const iterInvalidatedMsg = "core: graph structurally mutated during view iteration"

// Option configures a Graph before creation.
type Option func(*config)

// config collects construction-time flags; immutable after New returns.
type config struct {
	directed bool
	multi    bool
	attrs    Attrs
}

// WithDirected sets the orientation of the graph
// (true = directed, false = undirected; undirected is the default).
func WithDirected(directed bool) Option {
	return func(c *config) { c.directed = directed }
}

// WithMultiEdges permits parallel edges between the same endpoints,
// disambiguated by an integer key scoped to the (u,v) pair.
func WithMultiEdges() Option {
	return func(c *config) { c.multi = true }
}

// WithGraphAttrs seeds the graph-level attribute bag. The bag is merged,
// not aliased: later mutation of attrs does not affect the graph.
func WithGraphAttrs(attrs Attrs) Option {
	return func(c *config) { c.attrs.Merge(attrs) }
}

// NodeItem is one element of an AddNodesFrom bulk call: a node ID with an
// optional attribute patch (nil Attrs means "no attributes").
type NodeItem[K comparable] struct {
	ID    K
	Attrs Attrs
}

// EdgeItem is one element of an AddEdgesFrom bulk call. Set HasKey to
// provide an explicit multigraph key; an explicit key on a simple graph is
// a malformed item.
type EdgeItem[K comparable] struct {
	U, V   K
	Key    int
	HasKey bool
	Attrs  Attrs
}

// Edge is the enumeration record produced by EdgeView: endpoint pair, the
// multigraph key (always 0 on simple graphs), and the live attribute bag.
// Mutating Attrs mutates the stored edge; U/V/Key are plain values.
type Edge[K comparable] struct {
	U, V  K
	Key   int
	Attrs Attrs
}

// edgeBucket holds every parallel edge for one (u,v) endpoint pair:
// key → live attribute bag, plus key insertion order. On simple graphs a
// bucket holds exactly the key 0. Undirected graphs share one bucket
// between adj[u][v] and adj[v][u]; directed graphs share it between
// u's successor entry and v's predecessor entry.
type edgeBucket struct {
	attrs    map[int]Attrs
	keyOrder []int
}

// nodeState is the per-node record: the live attribute bag and adjacency.
// adj holds successors (directed) or all neighbors (undirected); pred is
// populated only on directed graphs.
type nodeState[K comparable] struct {
	attrs Attrs

	adj      map[K]*edgeBucket
	adjOrder []K

	pred      map[K]*edgeBucket
	predOrder []K
}

// Graph is the core in-memory attributed graph container.
//
// One generic type covers all four variants; directed and multi are fixed
// at construction. version counts structural mutations and powers the
// fail-fast iteration contract of the view types.
type Graph[K comparable] struct {
	directed bool
	multi    bool

	attrs Attrs // graph-level attribute bag

	nodes     map[K]*nodeState[K]
	nodeOrder []K

	edgeCount int
	version   uint64
}

// New creates an empty Graph with the given options.
// By default the graph is undirected and simple.
// Complexity: O(len(opts)).
func New[K comparable](opts ...Option) *Graph[K] {
	cfg := config{attrs: Attrs{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[K]{
		directed: cfg.directed,
		multi:    cfg.multi,
		attrs:    cfg.attrs,
		nodes:    make(map[K]*nodeState[K]),
	}
}

// NewDirected creates an empty directed Graph; shorthand for
// New(WithDirected(true), opts...).
func NewDirected[K comparable](opts ...Option) *Graph[K] {
	combined := make([]Option, 0, len(opts)+1)
	combined = append(combined, WithDirected(true))
	combined = append(combined, opts...)

	return New[K](combined...)
}

// newNodeState allocates an empty per-node record with a non-nil bag.
func newNodeState[K comparable](directed bool) *nodeState[K] {
	ns := &nodeState[K]{
		attrs: Attrs{},
		adj:   make(map[K]*edgeBucket),
	}
	if directed {
		ns.pred = make(map[K]*edgeBucket)
	}

	return ns
}

// removeFromOrder deletes the first occurrence of x from order, preserving
// the relative order of the remaining elements. O(n).
func removeFromOrder[K comparable](order []K, x K) []K {
	for i, v := range order {
		if v == x {
			return append(order[:i], order[i+1:]...)
		}
	}

	return order
}
