// File: view.go
// Role: Live read-through views over graph state: NodeView, EdgeView,
//       DegreeView, and the lazy neighbor sequence.
// Determinism:
//   - Every sequence follows insertion order (nodes, per-node neighbors,
//     per-pair keys). Undirected edges are enumerated once, anchored at
//     their earlier-inserted endpoint.
// Iteration contract:
//   - Seq sequences are lazy, finite, and restartable, bound to live
//     storage. Structural mutation (add/remove node or edge, Clear) during
//     an active pass invalidates it: the sequence fail-fasts with a panic
//     rather than silently yielding torn state. Attribute mutation is fine.
//   - Snapshot accessors (IDs, Slice) copy first and tolerate mutation.

package core

import "iter"

// NodeView is a live view over the graph's node set.
type NodeView[K comparable] struct {
	g *Graph[K]
}

// Nodes returns a live view over the node set. Complexity: O(1).
func (g *Graph[K]) Nodes() NodeView[K] {
	return NodeView[K]{g: g}
}

// Count returns the current number of nodes. Complexity: O(1).
func (v NodeView[K]) Count() int {
	return len(v.g.nodes)
}

// IDs returns a snapshot of all node IDs in insertion order; the slice is
// independent of graph state. Complexity: O(V).
func (v NodeView[K]) IDs() []K {
	out := make([]K, len(v.g.nodeOrder))
	copy(out, v.g.nodeOrder)

	return out
}

// Seq returns a lazy, restartable sequence of node IDs in insertion order,
// subject to the fail-fast iteration contract. Complexity: O(V) per pass.
func (v NodeView[K]) Seq() iter.Seq[K] {
	return func(yield func(K) bool) {
		guard := v.g.iterGuard()
		for _, id := range v.g.nodeOrder {
			guard()
			if !yield(id) {
				return
			}
		}
	}
}

// SeqAttrs returns a lazy, restartable sequence of (id, live bag) pairs in
// insertion order, subject to the fail-fast iteration contract.
// Complexity: O(V) per pass.
func (v NodeView[K]) SeqAttrs() iter.Seq2[K, Attrs] {
	return func(yield func(K, Attrs) bool) {
		guard := v.g.iterGuard()
		for _, id := range v.g.nodeOrder {
			guard()
			if !yield(id, v.g.nodes[id].attrs) {
				return
			}
		}
	}
}

// EdgeView is a live view over the graph's edge set.
type EdgeView[K comparable] struct {
	g *Graph[K]
}

// Edges returns a live view over the edge set. Complexity: O(1).
func (g *Graph[K]) Edges() EdgeView[K] {
	return EdgeView[K]{g: g}
}

// Count returns the current number of edges. Complexity: O(1).
func (v EdgeView[K]) Count() int {
	return v.g.edgeCount
}

// Seq returns a lazy, restartable sequence of Edge records in insertion
// order (node order, then per-node neighbor order, then per-pair key
// order), subject to the fail-fast iteration contract. Undirected edges
// appear once, U being the endpoint iterated first; directed edges appear
// as (from, to). Edge.Attrs is the live bag. Complexity: O(V+E) per pass.
func (v EdgeView[K]) Seq() iter.Seq[Edge[K]] {
	return func(yield func(Edge[K]) bool) {
		guard := v.g.iterGuard()
		g := v.g

		var seen map[K]bool
		if !g.directed {
			seen = make(map[K]bool, len(g.nodes))
		}
		for _, u := range g.nodeOrder {
			us := g.nodes[u]
			for _, nbr := range us.adjOrder {
				if !g.directed && seen[nbr] {
					continue // mirrored entry; already emitted from the other side
				}
				b := us.adj[nbr]
				for _, key := range b.keyOrder {
					guard()
					if !yield(Edge[K]{U: u, V: nbr, Key: key, Attrs: b.attrs[key]}) {
						return
					}
				}
			}
			if !g.directed {
				seen[u] = true
			}
		}
	}
}

// Slice returns a snapshot of all edges in the Seq order. The slice is
// independent of graph state, but each Edge.Attrs is still the live bag.
// Complexity: O(V+E).
func (v EdgeView[K]) Slice() []Edge[K] {
	out := make([]Edge[K], 0, v.g.edgeCount)
	for e := range v.Seq() {
		out = append(out, e)
	}

	return out
}

// DegreeView is a live view mapping every node to its degree.
type DegreeView[K comparable] struct {
	g *Graph[K]
}

// Degrees returns a live view over node degrees. Complexity: O(1).
func (g *Graph[K]) Degrees() DegreeView[K] {
	return DegreeView[K]{g: g}
}

// Of returns the degree of a single node; see Graph.Degree for the loop
// and direction conventions. Complexity: O(deg).
func (v DegreeView[K]) Of(id K) (int, error) {
	return v.g.Degree(id)
}

// Seq returns a lazy, restartable sequence of (id, degree) pairs in node
// insertion order, subject to the fail-fast iteration contract.
// Complexity: O(V+E) per pass.
func (v DegreeView[K]) Seq() iter.Seq2[K, int] {
	return func(yield func(K, int) bool) {
		guard := v.g.iterGuard()
		for _, id := range v.g.nodeOrder {
			guard()
			if !yield(id, v.g.degreeOf(id, v.g.nodes[id])) {
				return
			}
		}
	}
}

// NeighborSeq returns a lazy, restartable sequence over the neighbors of
// id in insertion order, subject to the fail-fast iteration contract.
// Returns ErrNodeNotFound if id is absent at call time.
// Complexity: O(deg) per pass.
func (g *Graph[K]) NeighborSeq(id K) (iter.Seq[K], error) {
	ns, ok := g.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return func(yield func(K) bool) {
		guard := g.iterGuard()
		for _, nbr := range ns.adjOrder {
			guard()
			if !yield(nbr) {
				return
			}
		}
	}, nil
}

// iterGuard captures the current structural version and returns a check
// that panics if the graph mutated since. Called at the start of each pass
// so that restarted sequences observe post-mutation state cleanly.
func (g *Graph[K]) iterGuard() func() {
	v0 := g.version

	return func() {
		if g.version != v0 {
			panic(iterInvalidatedMsg)
		}
	}
}
