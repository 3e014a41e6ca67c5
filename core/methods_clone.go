// File: methods_clone.go
// Role: Copying, induced subgraphs, variant conversions, and Clear.
// Determinism:
//   - Copy and Subgraph reproduce insertion order exactly (structural
//     copy). Conversions rebuild through AddEdge* in edge-enumeration
//     order; their merge policies are documented per method.
// Aliasing:
//   - Copy and the To* conversions deep-clone every attribute bag.
//   - Subgraph shares bags with the source (read-through on attributes).

package core

// Copy returns a deep copy of the graph: same variant, same insertion
// orders, every attribute bag cloned. Mutating the copy (structure or
// attributes) never affects the source. Complexity: O(V + E).
func (g *Graph[K]) Copy() *Graph[K] {
	return g.copyInto(nil, true)
}

// Subgraph returns the induced subgraph on the given node set: the listed
// nodes that exist (absent IDs are ignored) and every edge whose endpoints
// both remain. Structure is copied (mutating the subgraph never changes
// the source topology) but attribute bags are shared, so attribute writes
// are visible both ways. Use Subgraph(ids).Copy() for full isolation.
// Complexity: O(V + E).
func (g *Graph[K]) Subgraph(ids []K) *Graph[K] {
	keep := make(map[K]bool, len(ids))
	for _, id := range ids {
		if _, ok := g.nodes[id]; ok {
			keep[id] = true
		}
	}

	return g.copyInto(keep, false)
}

// ToDirected returns a directed graph with the same nodes: each undirected
// edge (u,v) becomes the two directed edges (u,v) and (v,u) carrying
// independent clones of the attribute bag (no aliasing between the pair);
// self-loops become a single directed self-loop. Multigraph keys are
// preserved. Calling on an already-directed graph is equivalent to Copy.
// Complexity: O(V + E).
func (g *Graph[K]) ToDirected() *Graph[K] {
	if g.directed {
		return g.Copy()
	}
	out := g.emptyLike(true, g.multi)
	for e := range g.Edges().Seq() {
		out.addConverted(e.U, e.V, e.Key, e.Attrs.Clone())
		if e.U != e.V {
			out.addConverted(e.V, e.U, e.Key, e.Attrs.Clone())
		}
	}

	return out
}

// ToUndirected returns an undirected graph with the same nodes. Each
// directed edge maps to an undirected one; when anti-parallel edges (u,v)
// and (v,u) collapse onto the same undirected edge, their bags merge and
// the edge iterated later wins on conflicting attribute keys. Multigraph
// keys are preserved (anti-parallel edges sharing a key likewise merge).
// Calling on an already-undirected graph is equivalent to Copy.
// Complexity: O(V + E).
func (g *Graph[K]) ToUndirected() *Graph[K] {
	if !g.directed {
		return g.Copy()
	}
	out := g.emptyLike(false, g.multi)
	for e := range g.Edges().Seq() {
		out.addConverted(e.U, e.V, e.Key, e.Attrs.Clone())
	}

	return out
}

// ToMultigraph returns a multigraph of the same directedness; every simple
// edge becomes key 0. Calling on a multigraph is equivalent to Copy.
// Complexity: O(V + E).
func (g *Graph[K]) ToMultigraph() *Graph[K] {
	if g.multi {
		return g.Copy()
	}
	out := g.emptyLike(g.directed, true)
	for e := range g.Edges().Seq() {
		out.addConverted(e.U, e.V, 0, e.Attrs.Clone())
	}

	return out
}

// ToSimple returns a simple graph of the same directedness; parallel edges
// of a pair collapse into one, bags merged in key-insertion order so the
// latest key wins on conflicting attribute keys. Calling on a simple graph
// is equivalent to Copy. Complexity: O(V + E).
func (g *Graph[K]) ToSimple() *Graph[K] {
	if !g.multi {
		return g.Copy()
	}
	out := g.emptyLike(g.directed, false)
	for e := range g.Edges().Seq() {
		out.AddEdge(e.U, e.V, e.Attrs.Clone())
	}

	return out
}

// Clear removes every node, edge, and graph attribute while preserving the
// variant flags. The graph-level bag object is kept (emptied in place) so
// existing references observe the reset. Complexity: O(graph attrs).
func (g *Graph[K]) Clear() {
	g.nodes = make(map[K]*nodeState[K])
	g.nodeOrder = nil
	g.edgeCount = 0
	for k := range g.attrs {
		delete(g.attrs, k)
	}
	g.version++
}

//–– Internal copy plumbing –––––––––––––––––––––––––––––––––––––––––––––––

// copyInto performs a structural copy restricted to keep (nil keep means
// everything), cloning bags when cloneBags is set and sharing them
// otherwise. Shared edge buckets (undirected mirrors, directed adj/pred
// pairs) are de-duplicated through a memo so both sides of the copy point
// at one bucket again.
func (g *Graph[K]) copyInto(keep map[K]bool, cloneBags bool) *Graph[K] {
	kept := func(id K) bool { return keep == nil || keep[id] }

	out := &Graph[K]{
		directed: g.directed,
		multi:    g.multi,
		nodes:    make(map[K]*nodeState[K], len(g.nodes)),
	}
	if cloneBags {
		out.attrs = g.attrs.Clone()
	} else {
		out.attrs = g.attrs
	}

	memo := make(map[*edgeBucket]*edgeBucket)
	copyBucket := func(b *edgeBucket) *edgeBucket {
		if nb, ok := memo[b]; ok {
			return nb
		}
		nb := &edgeBucket{
			attrs:    make(map[int]Attrs, len(b.attrs)),
			keyOrder: append([]int(nil), b.keyOrder...),
		}
		for key, bag := range b.attrs {
			if cloneBags {
				nb.attrs[key] = bag.Clone()
			} else {
				nb.attrs[key] = bag
			}
			out.edgeCount++
		}
		memo[b] = nb

		return nb
	}

	for _, id := range g.nodeOrder {
		if !kept(id) {
			continue
		}
		src := g.nodes[id]
		dst := newNodeState[K](g.directed)
		if cloneBags {
			dst.attrs = src.attrs.Clone()
		} else {
			dst.attrs = src.attrs
		}
		for _, nbr := range src.adjOrder {
			if !kept(nbr) {
				continue
			}
			dst.adj[nbr] = copyBucket(src.adj[nbr])
			dst.adjOrder = append(dst.adjOrder, nbr)
		}
		if g.directed {
			for _, nbr := range src.predOrder {
				if !kept(nbr) {
					continue
				}
				dst.pred[nbr] = copyBucket(src.pred[nbr])
				dst.predOrder = append(dst.predOrder, nbr)
			}
		}
		out.nodes[id] = dst
		out.nodeOrder = append(out.nodeOrder, id)
	}

	// Undirected graphs and directed adj/pred pairs count each bucket once
	// per edge key above only on first sight; edgeCount is already exact
	// because copyBucket increments solely on the memoized first copy.
	return out
}

// emptyLike builds an empty graph with the requested variant, the source's
// graph attributes (cloned), and the source's node set with cloned bags in
// insertion order. Conversion methods add edges on top of it.
func (g *Graph[K]) emptyLike(directed, multi bool) *Graph[K] {
	out := &Graph[K]{
		directed: directed,
		multi:    multi,
		attrs:    g.attrs.Clone(),
		nodes:    make(map[K]*nodeState[K], len(g.nodes)),
	}
	for _, id := range g.nodeOrder {
		ns := newNodeState[K](directed)
		ns.attrs = g.nodes[id].attrs.Clone()
		out.nodes[id] = ns
		out.nodeOrder = append(out.nodeOrder, id)
	}

	return out
}

// addConverted inserts one converted edge, routing through the keyed path
// on multigraphs so source keys survive, and through the merging simple
// path otherwise.
func (g *Graph[K]) addConverted(u, v K, key int, bag Attrs) {
	if g.multi {
		// The receiver is always a multigraph here, so the capability
		// check inside AddEdgeWithKey cannot fire.
		_ = g.AddEdgeWithKey(u, v, key, bag)
		return
	}
	g.AddEdge(u, v, bag)
}
