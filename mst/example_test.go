package mst_test

import (
	"fmt"

	"github.com/grava-graph/grava/core"
	"github.com/grava-graph/grava/mst"
)

// ExampleKruskal picks the cheapest cable layout connecting four sites.
func ExampleKruskal() {
	g := core.New[string]()
	g.AddEdge("hq", "lab", core.Attrs{"weight": 4.0})
	g.AddEdge("hq", "store", core.Attrs{"weight": 2.0})
	g.AddEdge("store", "lab", core.Attrs{"weight": 1.0})
	g.AddEdge("lab", "depot", core.Attrs{"weight": 3.0})

	tree, total, _ := mst.Kruskal(g)
	for _, e := range tree {
		fmt.Printf("%s-%s\n", e.U, e.V)
	}
	fmt.Println("total:", total)

	// Output:
	// lab-store
	// hq-store
	// lab-depot
	// total: 6
}
