// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddEdgeWithKey/AddEdgesFrom,
//       RemoveEdge/RemoveEdgeWithKey, HasEdge/HasEdgeKey, attribute and
//       key access, edge counting.
// Determinism:
//   - adjOrder records per-node neighbor insertion order; keyOrder records
//     per-pair key insertion order. Auto-assigned keys are the smallest
//     unused non-negative integer for the pair.
// Failure policy:
//   - Capability checks run at call entry, before any mutation.
//   - AddEdgesFrom applies eagerly per item; a malformed item aborts the
//     call but leaves prior items applied (documented non-atomicity).

package core

import "fmt"

// AddEdge inserts an edge between u and v, creating missing endpoints as
// nodes, and returns the edge key. On a simple graph the key is always 0
// and re-adding an existing edge merges the attribute patches into its bag.
// On a multigraph every call creates a distinct parallel edge whose key is
// the smallest unused non-negative integer for the (u,v) pair.
//
// Self-loops (u == v) are permitted on every variant.
// Complexity: O(1) amortized plus O(total patch size).
func (g *Graph[K]) AddEdge(u, v K, patches ...Attrs) int {
	b := g.ensureBucket(u, v)

	if !g.multi {
		if bag, ok := b.attrs[0]; ok {
			for _, p := range patches {
				bag.Merge(p)
			}
			return 0
		}
		g.storeEdge(b, 0, mergedAttrs(patches))

		return 0
	}

	// Smallest unused key for this pair; probing from zero reclaims holes
	// left by explicit keys or removals.
	key := 0
	for {
		if _, taken := b.attrs[key]; !taken {
			break
		}
		key++
	}
	g.storeEdge(b, key, mergedAttrs(patches))

	return key
}

// AddEdgeWithKey inserts (or patches) the edge (u,v,key) on a multigraph.
// Missing endpoints are created; an existing (u,v,key) edge has the
// patches merged into its bag. On a simple graph the call is rejected with
// ErrCapabilityMismatch before any mutation.
//
// Complexity: O(1) amortized plus O(total patch size).
func (g *Graph[K]) AddEdgeWithKey(u, v K, key int, patches ...Attrs) error {
	if !g.multi {
		return fmt.Errorf("%w: explicit edge keys require a multigraph", ErrCapabilityMismatch)
	}

	b := g.ensureBucket(u, v)
	if bag, ok := b.attrs[key]; ok {
		for _, p := range patches {
			bag.Merge(p)
		}
		return nil
	}
	g.storeEdge(b, key, mergedAttrs(patches))

	return nil
}

// AddEdgesFrom bulk-inserts edges, applying eagerly item by item. An item
// carrying an explicit key on a simple graph is malformed: the call stops
// and returns ErrMalformedItem (wrapped with the item index), with every
// earlier item already applied.
//
// Complexity: O(len(items)) amortized.
func (g *Graph[K]) AddEdgesFrom(items ...EdgeItem[K]) error {
	for i, it := range items {
		if it.HasKey {
			if err := g.AddEdgeWithKey(it.U, it.V, it.Key, it.Attrs); err != nil {
				return fmt.Errorf("%w: item %d carries an explicit key on a simple graph", ErrMalformedItem, i)
			}
			continue
		}
		if it.Attrs == nil {
			g.AddEdge(it.U, it.V)
			continue
		}
		g.AddEdge(it.U, it.V, it.Attrs)
	}

	return nil
}

// RemoveEdge deletes one edge between u and v: the only edge on a simple
// graph, the most recently added key on a multigraph. Returns
// ErrEdgeNotFound if no edge exists. Endpoint nodes are never removed.
// Complexity: O(1) average; O(deg) order-slice compaction when the last
// parallel edge of the pair goes away.
func (g *Graph[K]) RemoveEdge(u, v K) error {
	b := g.bucket(u, v)
	if b == nil {
		return ErrEdgeNotFound
	}

	return g.RemoveEdgeWithKey(u, v, b.keyOrder[len(b.keyOrder)-1])
}

// RemoveEdgeWithKey deletes the edge (u,v,key). Returns ErrEdgeNotFound if
// the pair or the key is absent. On simple graphs the only valid key is 0.
// Complexity: as RemoveEdge.
func (g *Graph[K]) RemoveEdgeWithKey(u, v K, key int) error {
	b := g.bucket(u, v)
	if b == nil {
		return ErrEdgeNotFound
	}
	if _, ok := b.attrs[key]; !ok {
		return ErrEdgeNotFound
	}

	delete(b.attrs, key)
	b.keyOrder = removeFromOrder(b.keyOrder, key)
	g.edgeCount--
	g.version++

	if len(b.attrs) == 0 {
		g.unlinkBucket(u, v)
	}

	return nil
}

// HasEdge reports whether at least one edge joins u and v. On undirected
// graphs adjacency is mirrored, so HasEdge(u,v) == HasEdge(v,u).
// Pure query, never errors. Complexity: O(1).
func (g *Graph[K]) HasEdge(u, v K) bool {
	return g.bucket(u, v) != nil
}

// HasEdgeKey reports whether the edge (u,v,key) exists.
// Complexity: O(1).
func (g *Graph[K]) HasEdgeKey(u, v K, key int) bool {
	b := g.bucket(u, v)
	if b == nil {
		return false
	}
	_, ok := b.attrs[key]

	return ok
}

// EdgeAttrs returns the live attribute bag of the edge between u and v:
// the only edge on a simple graph, the most recently added key on a
// multigraph (use EdgeAttrsKey to address a specific parallel edge).
// Returns ErrEdgeNotFound if no edge exists. Complexity: O(1).
func (g *Graph[K]) EdgeAttrs(u, v K) (Attrs, error) {
	b := g.bucket(u, v)
	if b == nil {
		return nil, ErrEdgeNotFound
	}

	return b.attrs[b.keyOrder[len(b.keyOrder)-1]], nil
}

// EdgeAttrsKey returns the live attribute bag of the edge (u,v,key).
// Returns ErrEdgeNotFound if the pair or the key is absent.
// Complexity: O(1).
func (g *Graph[K]) EdgeAttrsKey(u, v K, key int) (Attrs, error) {
	b := g.bucket(u, v)
	if b == nil {
		return nil, ErrEdgeNotFound
	}
	bag, ok := b.attrs[key]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return bag, nil
}

// EdgeKeys returns the keys of every edge between u and v in insertion
// order ([0] on a simple graph, nil when no edge exists). The slice is a
// copy, safe to retain. Complexity: O(k).
func (g *Graph[K]) EdgeKeys(u, v K) []int {
	b := g.bucket(u, v)
	if b == nil {
		return nil
	}
	out := make([]int, len(b.keyOrder))
	copy(out, b.keyOrder)

	return out
}

// EdgeCountBetween returns the number of parallel edges joining u and v
// (0 or 1 on a simple graph). Complexity: O(1).
func (g *Graph[K]) EdgeCountBetween(u, v K) int {
	b := g.bucket(u, v)
	if b == nil {
		return 0
	}

	return len(b.attrs)
}

// EdgeCount returns the total number of edges. Complexity: O(1).
func (g *Graph[K]) EdgeCount() int {
	return g.edgeCount
}

//–– Internal bucket plumbing –––––––––––––––––––––––––––––––––––––––––––––

// bucket returns the edge bucket for (u,v), or nil when absent. Directed
// lookups follow successor adjacency only.
func (g *Graph[K]) bucket(u, v K) *edgeBucket {
	us, ok := g.nodes[u]
	if !ok {
		return nil
	}

	return us.adj[v]
}

// ensureBucket creates missing endpoints and the (u,v) bucket, linking it
// under both endpoints: successor+predecessor maps on directed graphs,
// mirrored adjacency on undirected ones (self-loops stored once).
func (g *Graph[K]) ensureBucket(u, v K) *edgeBucket {
	g.AddNode(u)
	g.AddNode(v)

	us := g.nodes[u]
	if b := us.adj[v]; b != nil {
		return b
	}

	b := &edgeBucket{attrs: make(map[int]Attrs)}
	us.adj[v] = b
	us.adjOrder = append(us.adjOrder, v)

	vs := g.nodes[v]
	if g.directed {
		vs.pred[u] = b
		vs.predOrder = append(vs.predOrder, u)
	} else if u != v {
		vs.adj[u] = b
		vs.adjOrder = append(vs.adjOrder, u)
	}

	return b
}

// storeEdge records a new key in the bucket and bumps counters.
func (g *Graph[K]) storeEdge(b *edgeBucket, key int, bag Attrs) {
	b.attrs[key] = bag
	b.keyOrder = append(b.keyOrder, key)
	g.edgeCount++
	g.version++
}

// unlinkBucket detaches an emptied (u,v) bucket from both endpoints.
func (g *Graph[K]) unlinkBucket(u, v K) {
	us := g.nodes[u]
	delete(us.adj, v)
	us.adjOrder = removeFromOrder(us.adjOrder, v)

	vs := g.nodes[v]
	if g.directed {
		delete(vs.pred, u)
		vs.predOrder = removeFromOrder(vs.predOrder, u)
	} else if u != v {
		delete(vs.adj, u)
		vs.adjOrder = removeFromOrder(vs.adjOrder, u)
	}
}
