// Package core_test demonstrates typical container usage: building a
// graph, reading attributes, enumerating in insertion order, and
// converting between variants.

package core_test

import (
	"fmt"

	"github.com/grava-graph/grava/core"
)

// ExampleGraph builds a small weighted road network and walks it.
func ExampleGraph() {
	g := core.New[string]()
	g.AddNode("Kyiv", core.Attrs{"population": 2_950_000})
	g.AddEdge("Kyiv", "Lviv", core.Attrs{"km": 540.0})
	g.AddEdge("Kyiv", "Odesa", core.Attrs{"km": 475.0})

	fmt.Println("nodes:", g.NodeCount(), "edges:", g.EdgeCount())
	for e := range g.Edges().Seq() {
		fmt.Printf("%s-%s %v km\n", e.U, e.V, e.Attrs.Float("km", 0))
	}

	nbrs, _ := g.Neighbors("Kyiv")
	fmt.Println("from Kyiv:", nbrs)

	// Output:
	// nodes: 3 edges: 2
	// Kyiv-Lviv 540 km
	// Kyiv-Odesa 475 km
	// from Kyiv: [Lviv Odesa]
}

// ExampleGraph_multigraph shows parallel edges under distinct keys.
func ExampleGraph_multigraph() {
	m := core.New[string](core.WithMultiEdges())
	m.AddEdge("A", "B", core.Attrs{"line": "express"})
	m.AddEdge("A", "B", core.Attrs{"line": "local"})

	fmt.Println("parallel:", m.EdgeCountBetween("A", "B"))
	for e := range m.Edges().Seq() {
		fmt.Printf("key %d: %v\n", e.Key, e.Attrs["line"])
	}

	// Output:
	// parallel: 2
	// key 0: express
	// key 1: local
}

// ExampleGraph_ToDirected shows an undirected edge splitting into two
// independent arcs.
func ExampleGraph_ToDirected() {
	g := core.New[string]()
	g.AddEdge("A", "B")

	d := g.ToDirected()
	fmt.Println("arcs:", d.EdgeCount())
	fmt.Println("A->B:", d.HasEdge("A", "B"), "B->A:", d.HasEdge("B", "A"))

	// Output:
	// arcs: 2
	// A->B: true B->A: true
}

// ExampleGraph_Subgraph shows an induced subgraph sharing attribute bags
// with its parent.
func ExampleGraph_Subgraph() {
	g := core.New[string]()
	g.AddEdge("A", "B", core.Attrs{"weight": 3.0})
	g.AddEdge("B", "C")

	s := g.Subgraph([]string{"A", "B"})
	attrs, _ := s.EdgeAttrs("A", "B")
	attrs["weight"] = 7.0

	parent, _ := g.EdgeAttrs("A", "B")
	fmt.Println("induced edges:", s.EdgeCount())
	fmt.Println("parent sees:", parent["weight"])

	// Output:
	// induced edges: 1
	// parent sees: 7
}
