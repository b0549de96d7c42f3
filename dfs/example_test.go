package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/ontodag/bfs"
	"github.com/katalvlaran/ontodag/core"
	"github.com/katalvlaran/ontodag/dfs"
)

// ExampleTopologicalOrder orders a tiny build pipeline.
func ExampleTopologicalOrder() {
	g := core.NewGraph[string, struct{}]()
	for _, v := range []string{"test", "compile", "fetch"} {
		g.AddVertex(v)
	}
	_ = g.AddEdge("fetch", "compile", struct{}{})
	_ = g.AddEdge("compile", "test", struct{}{})

	order, err := dfs.TopologicalOrder(g)
	fmt.Println(order, err)

	// Output:
	// [fetch compile test] <nil>
}

// ExampleWalk lists a small hierarchy depth-first, closing each vertex
// after its subtree.
func ExampleWalk() {
	g := core.NewGraph[string, struct{}]()
	for _, v := range []string{"root", "left", "leaf", "right"} {
		g.AddVertex(v)
	}
	_ = g.AddEdge("root", "left", struct{}{})
	_ = g.AddEdge("left", "leaf", struct{}{})
	_ = g.AddEdge("root", "right", struct{}{})

	dfs.Walk([]string{"root"}, bfs.Children(g), func(v string) bfs.Signal {
		fmt.Println("enter", v)
		return bfs.Continue
	}, dfs.WithOnExit(func(v string) {
		fmt.Println("exit", v)
	}))

	// Output:
	// enter root
	// enter left
	// enter leaf
	// exit leaf
	// exit left
	// enter right
	// exit right
	// exit root
}
