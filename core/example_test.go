package core_test

import (
	"fmt"

	"github.com/katalvlaran/ontodag/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create a graph with string vertices and string payloads:
	g := core.NewGraph[string, string]()
	g.AddVertex("A")
	g.AddVertex("B")
	g.AddVertex("C")

	// 2) Add edges:
	_ = g.AddEdge("A", "B", "is_a")
	_ = g.AddEdge("B", "C", "part_of")

	// 3) Inspect:
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Children of A:", g.Children("A"))
	fmt.Println("Edge B→A exists?", g.HasEdge("B", "A"))

	// 4) Remove a vertex and its edges:
	_ = g.RemoveVertex("B")
	fmt.Println("After removing B:", g.Vertices(), g.EdgeCount())

	// Output:
	// Vertices: [A B C]
	// Children of A: [B]
	// Edge B→A exists? false
	// After removing B: [A C] 0
}
