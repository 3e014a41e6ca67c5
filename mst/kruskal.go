// File: kruskal.go
// Role: Sort-and-union Kruskal with a union-find keyed by node ID.

package mst

import (
	"errors"
	"fmt"
	"sort"

	"github.com/grava-graph/grava/core"
)

// DefaultWeightAttr is the attribute name weights are read from unless
// WithWeightAttr overrides it, matching the convention shared with the
// paths package.
const DefaultWeightAttr = "weight"

var (
	// ErrNilGraph is returned when a nil graph pointer is passed.
	ErrNilGraph = errors.New("mst: graph is nil")

	// ErrDisconnected is returned when no spanning tree covers every
	// node. It wraps core.ErrStructural.
	ErrDisconnected = fmt.Errorf("mst: graph is not connected: %w", core.ErrStructural)
)

// Option configures a spanning-tree run.
type Option func(*options)

type options struct {
	weightAttr string
}

// WithWeightAttr sets the attribute name weights are read from; the
// default is "weight". An empty name is ignored.
func WithWeightAttr(name string) Option {
	return func(o *options) {
		if name != "" {
			o.weightAttr = name
		}
	}
}

// dsu is a union-find over node IDs with path compression and union by
// rank.
type dsu[K comparable] struct {
	parent map[K]K
	rank   map[K]int
}

func newDSU[K comparable](n int) *dsu[K] {
	return &dsu[K]{
		parent: make(map[K]K, n),
		rank:   make(map[K]int, n),
	}
}

func (d *dsu[K]) add(id K) {
	d.parent[id] = id
}

// find walks to the root, halving the path as it goes.
func (d *dsu[K]) find(id K) K {
	for d.parent[id] != id {
		d.parent[id] = d.parent[d.parent[id]]
		id = d.parent[id]
	}

	return id
}

// union merges the sets of u and v; reports whether they were disjoint.
func (d *dsu[K]) union(u, v K) bool {
	ru, rv := d.find(u), d.find(v)
	if ru == rv {
		return false
	}
	if d.rank[ru] < d.rank[rv] {
		ru, rv = rv, ru
	}
	d.parent[rv] = ru
	if d.rank[ru] == d.rank[rv] {
		d.rank[ru]++
	}

	return true
}

// Kruskal computes a minimum spanning tree of g, returning its edges and
// total weight. Requires an undirected simple graph; returns ErrNilGraph,
// core.ErrCapabilityMismatch, or ErrDisconnected.
//
// Complexity: O(E log E). Determinism: equal-weight ties follow edge
// insertion order.
func Kruskal[K comparable](g *core.Graph[K], opts ...Option) ([]core.Edge[K], float64, error) {
	if g == nil {
		return nil, 0, ErrNilGraph
	}
	if err := core.RequireUndirected(g); err != nil {
		return nil, 0, err
	}
	if err := core.RequireSimple(g); err != nil {
		return nil, 0, err
	}
	o := options{weightAttr: DefaultWeightAttr}
	for _, fn := range opts {
		fn(&o)
	}

	n := g.NodeCount()
	if n == 0 {
		return nil, 0, ErrDisconnected
	}
	if n == 1 {
		return []core.Edge[K]{}, 0, nil
	}

	// Self-loops cannot join two components; drop them before sorting.
	candidates := make([]core.Edge[K], 0, g.EdgeCount())
	for e := range g.Edges().Seq() {
		if e.U == e.V {
			continue
		}
		candidates = append(candidates, e)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Attrs.Float(o.weightAttr, 1) < candidates[j].Attrs.Float(o.weightAttr, 1)
	})

	sets := newDSU[K](n)
	for id := range g.Nodes().Seq() {
		sets.add(id)
	}

	tree := make([]core.Edge[K], 0, n-1)
	total := 0.0
	for _, e := range candidates {
		if !sets.union(e.U, e.V) {
			continue
		}
		tree = append(tree, e)
		total += e.Attrs.Float(o.weightAttr, 1)
		if len(tree) == n-1 {
			break
		}
	}
	if len(tree) < n-1 {
		return nil, 0, ErrDisconnected
	}

	return tree, total, nil
}
