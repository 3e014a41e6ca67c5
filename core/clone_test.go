// Package core_test verifies copy, subgraph, and variant conversion
// semantics: bag isolation for Copy, bag sharing for Subgraph, and the
// edge-merge policy of the narrowing conversions.

package core_test

import (
	"testing"

	"github.com/grava-graph/grava/core"
)

// TestCopy_DeepIsolation verifies mutating a copy's structure or
// attributes never affects the original.
func TestCopy_DeepIsolation(t *testing.T) {
	g := NewSquare()
	g.AddEdge(NodeA, NodeB, core.Attrs{AttrWeight: Weight3})
	g.GraphAttrs()[AttrLabel] = "original"

	c := g.Copy()
	MustEqualInt(t, c.NodeCount(), g.NodeCount(), "node count carries over")
	MustEqualInt(t, c.EdgeCount(), g.EdgeCount(), "edge count carries over")
	MustEqualStrings(t, c.Nodes().IDs(), g.Nodes().IDs(), "node order carries over")

	// Structural mutation on the copy.
	MustErrorNil(t, c.RemoveNode(NodeA), "RemoveNode on copy")
	MustEqualBool(t, g.HasNode(NodeA), true, "original keeps A")
	MustEqualBool(t, g.HasEdge(NodeA, NodeB), true, "original keeps A-B")

	// Attribute mutation on the copy.
	attrs, err := c.EdgeAttrs(NodeB, NodeD)
	MustErrorNil(t, err, "EdgeAttrs on copy")
	attrs[AttrWeight] = Weight5
	orig, err := g.EdgeAttrs(NodeB, NodeD)
	MustErrorNil(t, err, "EdgeAttrs on original")
	MustEqualBool(t, orig[AttrWeight] == Weight5, false, "edge bags are independent")

	c.GraphAttrs()[AttrLabel] = "copy"
	MustDeepEqual(t, g.GraphAttrs()[AttrLabel], "original", "graph bags are independent")
}

// TestCopy_PreservesNeighborOrder verifies per-node adjacency order,
// which is defined by edge insertion, survives a copy.
func TestCopy_PreservesNeighborOrder(t *testing.T) {
	g := core.New[string]()
	g.AddEdge(NodeB, NodeC)
	g.AddEdge(NodeB, NodeA) // B's neighbors: C then A

	c := g.Copy()
	nbrs, err := c.Neighbors(NodeB)
	MustErrorNil(t, err, "Neighbors(B) on copy")
	MustEqualStrings(t, nbrs, []string{NodeC, NodeA}, "neighbor order survives copy")
}

// TestSubgraph_SharedBags verifies the induced subgraph references the
// same attribute bags as the parent.
func TestSubgraph_SharedBags(t *testing.T) {
	g := NewSquare()
	g.AddEdge(NodeA, NodeB, core.Attrs{AttrWeight: Weight1})
	g.AddNode(NodeA, core.Attrs{AttrColor: "red"})

	s := g.Subgraph([]string{NodeA, NodeB, NodeX}) // X is absent and ignored
	MustEqualInt(t, s.NodeCount(), 2, "induced node count")
	MustEqualInt(t, s.EdgeCount(), 1, "only A-B is induced")
	MustEqualBool(t, s.HasEdge(NodeA, NodeC), false, "C not in subgraph")

	// Mutating a bag through the subgraph is visible in the parent.
	attrs, err := s.NodeAttrs(NodeA)
	MustErrorNil(t, err, "NodeAttrs(A) on subgraph")
	attrs[AttrColor] = "blue"
	parent, err := g.NodeAttrs(NodeA)
	MustErrorNil(t, err, "NodeAttrs(A) on parent")
	MustDeepEqual(t, parent[AttrColor], "blue", "node bags are shared")

	eAttrs, err := s.EdgeAttrs(NodeA, NodeB)
	MustErrorNil(t, err, "EdgeAttrs on subgraph")
	eAttrs[AttrWeight] = Weight5
	pAttrs, err := g.EdgeAttrs(NodeA, NodeB)
	MustErrorNil(t, err, "EdgeAttrs on parent")
	MustDeepEqual(t, pAttrs[AttrWeight], Weight5, "edge bags are shared")

	// Structure is still independent.
	MustErrorNil(t, s.RemoveNode(NodeB), "RemoveNode on subgraph")
	MustEqualBool(t, g.HasNode(NodeB), true, "parent structure untouched")
}

// TestToDirected_RoundTrip verifies undirected -> directed -> undirected
// reconstructs the original edge set.
func TestToDirected_RoundTrip(t *testing.T) {
	g := NewSquare()
	g.AddEdge(NodeA, NodeA) // self-loop

	d := g.ToDirected()
	MustEqualBool(t, d.IsDirected(), true, "result is directed")
	// Each undirected edge becomes two arcs; a self-loop stays one.
	MustEqualInt(t, d.EdgeCount(), 2*4+1, "arc count")
	MustEqualBool(t, d.HasEdge(NodeA, NodeB), true, "forward arc")
	MustEqualBool(t, d.HasEdge(NodeB, NodeA), true, "reverse arc")

	u := d.ToUndirected()
	MustEqualBool(t, u.IsDirected(), false, "round-trip is undirected")
	MustEqualInt(t, u.EdgeCount(), 5, "anti-parallel arcs collapse")
	MustEqualBool(t, u.HasEdge(NodeA, NodeA), true, "self-loop survives")
}

// TestToDirected_IndependentArcBags verifies the two arcs produced from
// one undirected edge carry independent bags.
func TestToDirected_IndependentArcBags(t *testing.T) {
	g := core.New[string]()
	g.AddEdge(NodeA, NodeB, core.Attrs{AttrWeight: Weight3})

	d := g.ToDirected()
	fwd, err := d.EdgeAttrs(NodeA, NodeB)
	MustErrorNil(t, err, "forward arc bag")
	fwd[AttrWeight] = Weight5
	rev, err := d.EdgeAttrs(NodeB, NodeA)
	MustErrorNil(t, err, "reverse arc bag")
	MustDeepEqual(t, rev[AttrWeight], Weight3, "arc bags do not alias")
}

// TestToUndirected_LaterEdgeWins verifies the merge policy when
// anti-parallel arcs collapse: attributes of the later-enumerated arc
// override the earlier one's on key collision.
func TestToUndirected_LaterEdgeWins(t *testing.T) {
	d := core.NewDirected[string]()
	d.AddEdge(NodeA, NodeB, core.Attrs{AttrWeight: Weight1, AttrColor: "red"})
	d.AddEdge(NodeB, NodeA, core.Attrs{AttrWeight: Weight5})

	u := d.ToUndirected()
	MustEqualInt(t, u.EdgeCount(), 1, "arcs collapse to one edge")
	attrs, err := u.EdgeAttrs(NodeA, NodeB)
	MustErrorNil(t, err, "collapsed edge bag")
	MustDeepEqual(t, attrs, core.Attrs{AttrWeight: Weight5, AttrColor: "red"},
		"later arc overrides colliding keys, non-colliding keys survive")
}

// TestToMultigraph verifies widening keeps edges under key 0.
func TestToMultigraph(t *testing.T) {
	g := NewSquare()
	m := g.ToMultigraph()
	MustEqualBool(t, m.IsMultigraph(), true, "result is a multigraph")
	MustEqualInt(t, m.EdgeCount(), 4, "edge count preserved")
	MustEqualBool(t, m.HasEdgeKey(NodeA, NodeB, 0), true, "edges carried under key 0")

	// Widening unlocks parallel edges.
	m.AddEdge(NodeA, NodeB)
	MustEqualInt(t, m.EdgeCountBetween(NodeA, NodeB), 2, "parallel edge accepted after widening")
}

// TestToSimple_MergesParallelEdges verifies narrowing collapses parallel
// edges with later-key-wins attribute merge.
func TestToSimple_MergesParallelEdges(t *testing.T) {
	m := core.New[string](core.WithMultiEdges())
	m.AddEdge(NodeA, NodeB, core.Attrs{AttrWeight: Weight1, AttrLabel: "keep"})
	m.AddEdge(NodeA, NodeB, core.Attrs{AttrWeight: Weight5})

	s := m.ToSimple()
	MustEqualBool(t, s.IsMultigraph(), false, "result is simple")
	MustEqualInt(t, s.EdgeCount(), 1, "parallel edges collapse")
	attrs, err := s.EdgeAttrs(NodeA, NodeB)
	MustErrorNil(t, err, "collapsed edge bag")
	MustDeepEqual(t, attrs, core.Attrs{AttrWeight: Weight5, AttrLabel: "keep"},
		"later key overrides colliding attrs")
}

// TestConversion_AlreadyTarget verifies converting to the variant a graph
// already has degrades to a plain copy.
func TestConversion_AlreadyTarget(t *testing.T) {
	d := core.NewDirected[string]()
	d.AddEdge(NodeA, NodeB)

	d2 := d.ToDirected()
	MustEqualInt(t, d2.EdgeCount(), 1, "no arc doubling on directed->directed")

	MustErrorNil(t, d2.RemoveEdge(NodeA, NodeB), "RemoveEdge on result")
	MustEqualBool(t, d.HasEdge(NodeA, NodeB), true, "result is still an independent copy")
}
