// File: methods_nodes.go
// Role: Node lifecycle & queries: AddNode/AddNodesFrom/HasNode/RemoveNode,
//       attribute access (NodeAttrs/SetNodeAttrs/GraphAttrs), NodeCount.
// Determinism:
//   - nodeOrder records first-insertion order; RemoveNode compacts it
//     without reordering survivors.
// Failure policy:
//   - AddNode never fails; RemoveNode returns ErrNodeNotFound; bulk adds
//     apply eagerly per item.

package core

// AddNode inserts a node if missing and merges the given attribute patches
// into its bag (existing keys overwritten, others preserved). Re-adding an
// existing node is therefore an attribute patch, never an error.
//
// Complexity: O(1) amortized plus O(total patch size).
func (g *Graph[K]) AddNode(id K, patches ...Attrs) {
	ns, exists := g.nodes[id]
	if !exists {
		ns = newNodeState[K](g.directed)
		g.nodes[id] = ns
		g.nodeOrder = append(g.nodeOrder, id)
		g.version++
	}
	for _, p := range patches {
		ns.attrs.Merge(p)
	}
}

// AddNodesFrom bulk-inserts nodes, applying eagerly item by item with
// AddNode semantics (merge on re-add). Typed items cannot be malformed,
// so this call cannot fail.
//
// Complexity: O(len(items)) amortized.
func (g *Graph[K]) AddNodesFrom(items ...NodeItem[K]) {
	for _, it := range items {
		if it.Attrs == nil {
			g.AddNode(it.ID)
			continue
		}
		g.AddNode(it.ID, it.Attrs)
	}
}

// HasNode reports whether the node exists. Pure query, never errors.
// Complexity: O(1).
func (g *Graph[K]) HasNode(id K) bool {
	_, ok := g.nodes[id]

	return ok
}

// RemoveNode deletes the node and every incident edge (outgoing, incoming,
// undirected, and self-loops). Returns ErrNodeNotFound if absent.
// Removing an edge never cascades back to its endpoints; removing a node
// always cascades to its edges.
//
// Complexity: O(V) nodeOrder compaction plus, per incident neighbor, an
// order-slice compaction on that neighbor's side: O(Σ deg(neighbor))
// worst case.
func (g *Graph[K]) RemoveNode(id K) error {
	ns, ok := g.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}

	// Unlink every bucket this node participates in, keeping edgeCount
	// exact: each bucket is counted exactly once (self-loop buckets are
	// stored once under adj[id][id]).
	for _, v := range ns.adjOrder {
		g.edgeCount -= len(ns.adj[v].attrs)
		if v == id {
			continue // self-loop: no other endpoint to unlink
		}
		vs := g.nodes[v]
		if g.directed {
			delete(vs.pred, id)
			vs.predOrder = removeFromOrder(vs.predOrder, id)
		} else {
			delete(vs.adj, id)
			vs.adjOrder = removeFromOrder(vs.adjOrder, id)
		}
	}
	if g.directed {
		// Incoming edges live in the sources' successor maps.
		for _, u := range ns.predOrder {
			if u == id {
				continue // directed self-loop already counted above
			}
			us := g.nodes[u]
			g.edgeCount -= len(us.adj[id].attrs)
			delete(us.adj, id)
			us.adjOrder = removeFromOrder(us.adjOrder, id)
		}
	}

	delete(g.nodes, id)
	g.nodeOrder = removeFromOrder(g.nodeOrder, id)
	g.version++

	return nil
}

// NodeAttrs returns the live attribute bag of the node. Mutations through
// the returned bag are visible to every other holder; there is no
// copy-on-write. Returns ErrNodeNotFound if absent.
// Complexity: O(1).
func (g *Graph[K]) NodeAttrs(id K) (Attrs, error) {
	ns, ok := g.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return ns.attrs, nil
}

// SetNodeAttrs replaces the node's attribute bag contents with attrs
// (the "replace" counterpart to AddNode's merge). The bag object itself
// is preserved, so existing references observe the replacement.
// Returns ErrNodeNotFound if absent.
// Complexity: O(old + new bag size).
func (g *Graph[K]) SetNodeAttrs(id K, attrs Attrs) error {
	ns, ok := g.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	for k := range ns.attrs {
		delete(ns.attrs, k)
	}
	ns.attrs.Merge(attrs)

	return nil
}

// GraphAttrs returns the live graph-level attribute bag.
// Complexity: O(1).
func (g *Graph[K]) GraphAttrs() Attrs {
	return g.attrs
}

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *Graph[K]) NodeCount() int {
	return len(g.nodes)
}
