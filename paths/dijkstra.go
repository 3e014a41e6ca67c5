// File: dijkstra.go
// Role: Dijkstra over the container's adjacency, with a lazy-decrease-key
//       binary heap as the priority queue.

package paths

import (
	"fmt"

	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/grava-graph/grava/core"
)

// heapEntry is one (node, tentative distance) pair in the priority
// queue. Stale duplicates are filtered on pop.
type heapEntry[K comparable] struct {
	id   K
	dist float64
}

// Dijkstra computes shortest paths from source to every reachable node
// of g. Returns ErrNilGraph, ErrSourceNotFound, or ErrNegativeWeight;
// otherwise the Result covers exactly the nodes within the distance
// bound.
//
// Complexity: O((V + E) log V). Determinism: distances are always
// deterministic; between equal-cost paths the reported Parent follows
// heap pop order, which is fixed for a fixed construction order.
func Dijkstra[K comparable](g *core.Graph[K], source K, opts ...Option) (*Result[K], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !g.HasNode(source) {
		return nil, ErrSourceNotFound
	}

	// Upfront negative-weight scan: fail before touching the heap.
	for e := range g.Edges().Seq() {
		if w := e.Attrs.Float(o.weightAttr, 1); w < 0 {
			return nil, fmt.Errorf("%w: %v at edge %v-%v", ErrNegativeWeight, w, e.U, e.V)
		}
	}

	n := g.NodeCount()
	res := &Result[K]{
		Dist:   make(map[K]float64, n),
		Parent: make(map[K]K, n),
	}
	settled := make(map[K]bool, n)

	pq := binaryheap.NewWith(func(a, b interface{}) int {
		da, db := a.(heapEntry[K]).dist, b.(heapEntry[K]).dist
		switch {
		case da < db:
			return -1
		case da > db:
			return 1
		default:
			return 0
		}
	})

	res.Dist[source] = 0
	pq.Push(heapEntry[K]{id: source, dist: 0})

	for !pq.Empty() {
		raw, _ := pq.Pop()
		cur := raw.(heapEntry[K])
		if settled[cur.id] || cur.dist != res.Dist[cur.id] {
			continue // stale duplicate from lazy decrease-key
		}
		if cur.dist > o.maxDistance {
			delete(res.Dist, cur.id)
			delete(res.Parent, cur.id)
			continue
		}
		settled[cur.id] = true

		nbrs, err := g.Neighbors(cur.id)
		if err != nil {
			return nil, fmt.Errorf("paths: neighbors of %v: %w", cur.id, err)
		}
		for _, nbr := range nbrs {
			if settled[nbr] {
				continue
			}
			next := cur.dist + cheapestEdge(g, o.weightAttr, cur.id, nbr)
			if best, ok := res.Dist[nbr]; ok && best <= next {
				continue
			}
			res.Dist[nbr] = next
			res.Parent[nbr] = cur.id
			pq.Push(heapEntry[K]{id: nbr, dist: next})
		}
	}

	// Entries relaxed but never settled within the bound are not reachable
	// results; drop them.
	for id := range res.Dist {
		if !settled[id] {
			delete(res.Dist, id)
			delete(res.Parent, id)
		}
	}

	return res, nil
}

// cheapestEdge returns the minimal weight among the parallel edges
// between u and v. On a simple graph this reads the single bag.
func cheapestEdge[K comparable](g *core.Graph[K], attr string, u, v K) float64 {
	keys := g.EdgeKeys(u, v)
	best := 0.0
	for i, key := range keys {
		bag, err := g.EdgeAttrsKey(u, v, key)
		if err != nil {
			continue
		}
		w := bag.Float(attr, 1)
		if i == 0 || w < best {
			best = w
		}
	}

	return best
}
