package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ontodag/core"
	"github.com/katalvlaran/ontodag/dfs"
)

// position returns index of v in slice or -1 if not found
func position(order []string, v string) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}

	return -1
}

// build creates a graph from vertex and edge lists.
func build(t *testing.T, verts []string, edges [][2]string) *core.Graph[string, struct{}] {
	t.Helper()
	g := core.NewGraph[string, struct{}]()
	for _, v := range verts {
		g.AddVertex(v)
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1], struct{}{}))
	}

	return g
}

// TestTopo_NilGraph verifies that passing a nil graph returns ErrGraphNil.
func TestTopo_NilGraph(t *testing.T) {
	order, err := dfs.TopologicalOrder[string, struct{}](nil)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
}

// TestTopo_EmptyGraph covers a graph with no vertices.
func TestTopo_EmptyGraph(t *testing.T) {
	order, err := dfs.TopologicalOrder(core.NewGraph[string, struct{}]())
	assert.NoError(t, err)
	assert.Empty(t, order)
}

// TestTopo_SimpleChain verifies linear chain A→B→C yields [A,B,C].
func TestTopo_SimpleChain(t *testing.T) {
	g := build(t, []string{"C", "B", "A"}, [][2]string{{"A", "B"}, {"B", "C"}})

	order, err := dfs.TopologicalOrder(g)
	assert.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, order)
}

// TestTopo_Diamond checks every edge is respected on a DAG with shared descendants.
func TestTopo_Diamond(t *testing.T) {
	edges := [][2]string{
		{"root", "a"}, {"root", "b"}, {"root", "c"}, {"a", "b"},
		{"c", "d"}, {"c", "e"}, {"d", "g"}, {"e", "f"}, {"f", "g"},
	}
	g := build(t, []string{"g", "f", "e", "d", "c", "b", "a", "root"}, edges)

	var order []string
	require.NoError(t, dfs.TopologicalSort(g, func(v string) { order = append(order, v) }))
	require.Len(t, order, 8)
	for _, e := range edges {
		assert.Less(t, position(order, e[0]), position(order, e[1]), "%s before %s", e[0], e[1])
	}
}

// TestTopo_Cycle ensures no vertex is visited and the error is ErrCycleDetected.
func TestTopo_Cycle(t *testing.T) {
	g := build(t, []string{"A", "B", "C", "D"},
		[][2]string{{"D", "A"}, {"A", "B"}, {"B", "C"}, {"C", "A"}})

	visited := 0
	err := dfs.TopologicalSort(g, func(string) { visited++ })
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
	assert.Zero(t, visited)
}

// TestTopo_DeepChain runs on a chain deep enough to overflow a naive
// recursive implementation with small stacks.
func TestTopo_DeepChain(t *testing.T) {
	const n = 200000
	g := core.NewGraph[int, struct{}]()
	for i := n - 1; i >= 0; i-- {
		g.AddVertex(i)
	}
	for i := 0; i+1 < n; i++ {
		require.NoError(t, g.AddEdge(i, i+1, struct{}{}))
	}

	order, err := dfs.TopologicalOrder(g)
	require.NoError(t, err)
	require.Len(t, order, n)
	for i := range order {
		if order[i] != i {
			t.Fatalf("order[%d] = %d", i, order[i])
		}
	}
}
