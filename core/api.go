// File: api.go
// Role: Capability predicates, precondition gates for algorithm packages,
//       and the Stats snapshot. No algorithms, no hidden state.
// Policy:
//   - Gates reject at call entry with ErrCapabilityMismatch so consumers
//     can guard an algorithm in one line before doing any work.

package core

import "fmt"

// IsDirected reports whether the graph is directed. Algorithms branch on
// this (and IsMultigraph) to accept "any graph" or reject unsupported
// variants at their boundary. Complexity: O(1).
func (g *Graph[K]) IsDirected() bool {
	return g.directed
}

// IsMultigraph reports whether parallel edges are permitted.
// Complexity: O(1).
func (g *Graph[K]) IsMultigraph() bool {
	return g.multi
}

// RequireDirected returns nil for a directed graph and an
// ErrCapabilityMismatch-wrapped error otherwise. Intended as the first
// line of directed-only algorithms. Complexity: O(1).
func RequireDirected[K comparable](g *Graph[K]) error {
	if !g.directed {
		return fmt.Errorf("%w: requires a directed graph", ErrCapabilityMismatch)
	}

	return nil
}

// RequireUndirected returns nil for an undirected graph and an
// ErrCapabilityMismatch-wrapped error otherwise. Complexity: O(1).
func RequireUndirected[K comparable](g *Graph[K]) error {
	if g.directed {
		return fmt.Errorf("%w: requires an undirected graph", ErrCapabilityMismatch)
	}

	return nil
}

// RequireSimple returns nil for a simple graph and an
// ErrCapabilityMismatch-wrapped error for a multigraph. Complexity: O(1).
func RequireSimple[K comparable](g *Graph[K]) error {
	if g.multi {
		return fmt.Errorf("%w: requires a simple graph", ErrCapabilityMismatch)
	}

	return nil
}

// GraphStats is a read-only snapshot of variant flags and catalog sizes,
// suitable for diagnostics and quick admission checks.
type GraphStats struct {
	Directed   bool
	Multigraph bool

	NodeCount     int
	EdgeCount     int
	SelfLoopCount int
}

// Stats produces a snapshot of flags and counts in one pass over the node
// catalog. SelfLoopCount counts self-loop edges (each parallel self-loop
// key counts once). Complexity: O(V).
func (g *Graph[K]) Stats() GraphStats {
	stats := GraphStats{
		Directed:   g.directed,
		Multigraph: g.multi,
		NodeCount:  len(g.nodes),
		EdgeCount:  g.edgeCount,
	}
	for _, id := range g.nodeOrder {
		if b := g.nodes[id].adj[id]; b != nil {
			stats.SelfLoopCount += len(b.attrs)
		}
	}

	return stats
}
