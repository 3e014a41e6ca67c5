// File: methods_adjacent.go
// Role: Neighborhood & degree APIs: Neighbors/Successors/Predecessors,
//       Degree/InDegree/OutDegree/WeightedDegree.
// Determinism:
//   - All neighbor enumerations follow per-node insertion order.
// Capability policy:
//   - Successors/Predecessors and InDegree/OutDegree are directed-only and
//     reject undirected graphs with ErrCapabilityMismatch at call entry.

package core

import "fmt"

// Neighbors returns the nodes adjacent to id, in insertion order. On a
// directed graph this aliases Successors (outgoing neighbors) by
// convention. Parallel edges do not repeat the neighbor. The slice is a
// copy, safe to retain. Returns ErrNodeNotFound if id is absent.
// Complexity: O(deg).
func (g *Graph[K]) Neighbors(id K) ([]K, error) {
	ns, ok := g.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	out := make([]K, len(ns.adjOrder))
	copy(out, ns.adjOrder)

	return out, nil
}

// Successors returns the outgoing neighbors of id in insertion order.
// Directed graphs only; undirected graphs are rejected with
// ErrCapabilityMismatch. Returns ErrNodeNotFound if id is absent.
// Complexity: O(out-deg).
func (g *Graph[K]) Successors(id K) ([]K, error) {
	if !g.directed {
		return nil, fmt.Errorf("%w: Successors requires a directed graph", ErrCapabilityMismatch)
	}

	return g.Neighbors(id)
}

// Predecessors returns the incoming neighbors of id in insertion order.
// Directed graphs only; undirected graphs are rejected with
// ErrCapabilityMismatch. Returns ErrNodeNotFound if id is absent.
// Complexity: O(in-deg).
func (g *Graph[K]) Predecessors(id K) ([]K, error) {
	if !g.directed {
		return nil, fmt.Errorf("%w: Predecessors requires a directed graph", ErrCapabilityMismatch)
	}
	ns, ok := g.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}
	out := make([]K, len(ns.predOrder))
	copy(out, ns.predOrder)

	return out, nil
}

// Degree returns the number of edges incident to id. Undirected self-loops
// count twice (classic convention); on directed graphs Degree is
// InDegree + OutDegree, so a directed self-loop also contributes 2.
// Parallel edges each count. Returns ErrNodeNotFound if id is absent.
// Complexity: O(deg).
func (g *Graph[K]) Degree(id K) (int, error) {
	ns, ok := g.nodes[id]
	if !ok {
		return 0, ErrNodeNotFound
	}

	return g.degreeOf(id, ns), nil
}

// InDegree returns the number of incoming edges (directed self-loops count
// once). Directed graphs only. Complexity: O(in-deg).
func (g *Graph[K]) InDegree(id K) (int, error) {
	if !g.directed {
		return 0, fmt.Errorf("%w: InDegree requires a directed graph", ErrCapabilityMismatch)
	}
	ns, ok := g.nodes[id]
	if !ok {
		return 0, ErrNodeNotFound
	}
	in := 0
	for _, u := range ns.predOrder {
		in += len(ns.pred[u].attrs)
	}

	return in, nil
}

// OutDegree returns the number of outgoing edges (directed self-loops
// count once). Directed graphs only. Complexity: O(out-deg).
func (g *Graph[K]) OutDegree(id K) (int, error) {
	if !g.directed {
		return 0, fmt.Errorf("%w: OutDegree requires a directed graph", ErrCapabilityMismatch)
	}
	ns, ok := g.nodes[id]
	if !ok {
		return 0, ErrNodeNotFound
	}
	out := 0
	for _, v := range ns.adjOrder {
		out += len(ns.adj[v].attrs)
	}

	return out, nil
}

// WeightedDegree sums the named attribute over the edges incident to id,
// substituting def for edges lacking the attribute (the weight convention:
// pass 1 to make it a weighted edge count). Undirected self-loops count
// their weight twice; on directed graphs incoming and outgoing edges both
// contribute. Returns ErrNodeNotFound if id is absent.
// Complexity: O(deg).
func (g *Graph[K]) WeightedDegree(id K, attr string, def float64) (float64, error) {
	ns, ok := g.nodes[id]
	if !ok {
		return 0, ErrNodeNotFound
	}

	var sum float64
	for _, v := range ns.adjOrder {
		b := ns.adj[v]
		for _, key := range b.keyOrder {
			w := b.attrs[key].Float(attr, def)
			sum += w
			if !g.directed && v == id {
				sum += w // undirected self-loop counts twice
			}
		}
	}
	if g.directed {
		for _, u := range ns.predOrder {
			b := ns.pred[u]
			for _, key := range b.keyOrder {
				sum += b.attrs[key].Float(attr, def)
			}
		}
	}

	return sum, nil
}

// degreeOf counts incident edges for an already-resolved node record.
func (g *Graph[K]) degreeOf(id K, ns *nodeState[K]) int {
	deg := 0
	for _, v := range ns.adjOrder {
		n := len(ns.adj[v].attrs)
		deg += n
		if !g.directed && v == id {
			deg += n // undirected self-loop counts twice
		}
	}
	if g.directed {
		for _, u := range ns.predOrder {
			deg += len(ns.pred[u].attrs)
		}
	}

	return deg
}
