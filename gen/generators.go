// File: generators.go
// Role: The topology builders. Nodes are added before edges so node
//       insertion order is always 0, 1, 2, … regardless of shape.

package gen

import (
	"fmt"

	"github.com/grava-graph/grava/core"
)

// newGraph allocates the empty container for a generator run, pre-adding
// nodes 0…n-1 in order.
func newGraph(n int, c config) *core.Graph[int] {
	g := core.New[int](core.WithDirected(c.directed))
	for i := 0; i < n; i++ {
		g.AddNode(i)
	}

	return g
}

// Path returns the path graph 0-1-…-(n-1). n of 0 or 1 yields no edges.
//
// Complexity: O(n).
func Path(n int, opts ...Option) (*core.Graph[int], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: Path(%d)", ErrBadSize, n)
	}
	g := newGraph(n, buildConfig(opts))
	for i := 0; i+1 < n; i++ {
		g.AddEdge(i, i+1)
	}

	return g, nil
}

// Cycle returns the cycle graph on n nodes: Path(n) plus the closing
// edge (n-1, 0). Cycle(1) is a single self-loop; on an undirected graph
// Cycle(2) collapses to one edge.
//
// Complexity: O(n).
func Cycle(n int, opts ...Option) (*core.Graph[int], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: Cycle(%d)", ErrBadSize, n)
	}
	g := newGraph(n, buildConfig(opts))
	for i := 0; i < n; i++ {
		g.AddEdge(i, (i+1)%n)
	}

	return g, nil
}

// Complete returns the complete graph on n nodes: every unordered pair,
// or every ordered pair of distinct nodes when directed.
//
// Complexity: O(n²).
func Complete(n int, opts ...Option) (*core.Graph[int], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: Complete(%d)", ErrBadSize, n)
	}
	c := buildConfig(opts)
	g := newGraph(n, c)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.AddEdge(i, j)
			if c.directed {
				g.AddEdge(j, i)
			}
		}
	}

	return g, nil
}

// Star returns the star graph: hub 0 joined to nodes 1…leaves. When
// directed, arcs point from the hub outward.
//
// Complexity: O(leaves).
func Star(leaves int, opts ...Option) (*core.Graph[int], error) {
	if leaves < 0 {
		return nil, fmt.Errorf("%w: Star(%d)", ErrBadSize, leaves)
	}
	g := newGraph(leaves+1, buildConfig(opts))
	for i := 1; i <= leaves; i++ {
		g.AddEdge(0, i)
	}

	return g, nil
}

// Gnp returns an Erdős–Rényi random graph: each pair of distinct nodes
// is joined independently with probability p. Requires an explicit RNG
// via WithSeed or WithRand; a fixed seed reproduces the same graph.
//
// Complexity: O(n²) draws.
func Gnp(n int, p float64, opts ...Option) (*core.Graph[int], error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: Gnp(%d, %v)", ErrBadSize, n, p)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: Gnp(%d, %v)", ErrBadProbability, n, p)
	}
	c := buildConfig(opts)
	if c.rng == nil {
		return nil, ErrNoRand
	}
	g := newGraph(n, c)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if c.rng.Float64() < p {
				g.AddEdge(i, j)
			}
			if c.directed && c.rng.Float64() < p {
				g.AddEdge(j, i)
			}
		}
	}

	return g, nil
}
