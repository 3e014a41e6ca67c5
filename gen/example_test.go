package gen_test

import (
	"fmt"

	"github.com/grava-graph/grava/gen"
)

// ExampleCycle builds a ring and inspects it.
func ExampleCycle() {
	g, _ := gen.Cycle(4)
	fmt.Println("nodes:", g.NodeCount(), "edges:", g.EdgeCount())
	nbrs, _ := g.Neighbors(0)
	fmt.Println("around 0:", nbrs)

	// Output:
	// nodes: 4 edges: 4
	// around 0: [1 3]
}

// ExampleGnp shows a seeded random graph being reproducible.
func ExampleGnp() {
	a, _ := gen.Gnp(8, 0.4, gen.WithSeed(7))
	b, _ := gen.Gnp(8, 0.4, gen.WithSeed(7))
	fmt.Println("same edge count:", a.EdgeCount() == b.EdgeCount())

	// Output:
	// same edge count: true
}
