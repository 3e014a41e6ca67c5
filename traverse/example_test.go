package traverse_test

import (
	"fmt"

	"github.com/grava-graph/grava/core"
	"github.com/grava-graph/grava/traverse"
)

// ExampleBFS finds the hop distance of every station from a hub.
func ExampleBFS() {
	g := core.New[string]()
	g.AddEdge("Hub", "North")
	g.AddEdge("Hub", "South")
	g.AddEdge("North", "Far")

	res, _ := traverse.BFS(g, "Hub")
	for _, id := range res.Order {
		fmt.Printf("%s at %d hops\n", id, res.Depth[id])
	}

	// Output:
	// Hub at 0 hops
	// North at 1 hops
	// South at 1 hops
	// Far at 2 hops
}

// ExampleDFS prints a post-order finish sequence.
func ExampleDFS() {
	g := core.NewDirected[string]()
	g.AddEdge("root", "left")
	g.AddEdge("root", "right")

	_, _ = traverse.DFS(g, "root",
		traverse.WithOnExit(func(id string) error {
			fmt.Println("done:", id)
			return nil
		}))

	// Output:
	// done: left
	// done: right
	// done: root
}

// ExampleResult_PathTo reconstructs a shortest hop path.
func ExampleResult_PathTo() {
	g := core.New[string]()
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("A", "C") // direct shortcut

	res, _ := traverse.BFS(g, "A")
	path, _ := res.PathTo("C")
	fmt.Println(path)

	// Output:
	// [A C]
}
