package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ontodag/bfs"
	"github.com/katalvlaran/ontodag/core"
	"github.com/katalvlaran/ontodag/dfs"
)

// diamond builds a→{b,c}, b→d, c→d plus an isolated e.
func diamond(t *testing.T) *core.Graph[string, struct{}] {
	t.Helper()

	return build(t,
		[]string{"a", "b", "c", "d", "e"},
		[][2]string{{"a", "b"}, {"a", "c"}, {"b", "d"}, {"c", "d"}},
	)
}

// TestWalk_PreAndPostOrder checks visit order and the exit hook.
func TestWalk_PreAndPostOrder(t *testing.T) {
	g := diamond(t)
	var pre, post []string
	done := dfs.Walk([]string{"a"}, bfs.Children(g), func(v string) bfs.Signal {
		pre = append(pre, v)
		return bfs.Continue
	}, dfs.WithOnExit(func(v string) {
		post = append(post, v)
	}))

	assert.True(t, done)
	assert.Equal(t, []string{"a", "b", "d", "c"}, pre)
	assert.Equal(t, []string{"d", "b", "c", "a"}, post)
}

// TestWalk_Stop verifies that Stop ends the walk at once.
func TestWalk_Stop(t *testing.T) {
	g := diamond(t)
	var pre, post []string
	done := dfs.Walk([]string{"a"}, bfs.Children(g), func(v string) bfs.Signal {
		pre = append(pre, v)
		if v == "d" {
			return bfs.Stop
		}

		return bfs.Continue
	}, dfs.WithOnExit(func(v string) {
		post = append(post, v)
	}))

	assert.False(t, done)
	assert.Equal(t, []string{"a", "b", "d"}, pre)
	assert.Empty(t, post)
}

// TestWalk_SharedSeenSet covers several starts and unreachable vertices.
func TestWalk_SharedSeenSet(t *testing.T) {
	g := diamond(t)

	assert.Equal(t, []string{"c", "d", "a", "b"}, dfs.Collect([]string{"c", "a"}, bfs.Children(g)))
	assert.Equal(t, []string{"d", "b", "a", "c"}, dfs.Collect([]string{"d"}, bfs.Parents(g)))
	assert.Equal(t, []string{"e"}, dfs.Collect([]string{"e", "e"}, bfs.Children(g)))
	assert.Empty(t, dfs.Collect(nil, bfs.Children(g)))
}

// TestWalk_Options covers depth limits and filtered neighbors.
func TestWalk_Options(t *testing.T) {
	g := diamond(t)

	var shallow []string
	dfs.Walk([]string{"a"}, bfs.Children(g), func(v string) bfs.Signal {
		shallow = append(shallow, v)
		return bfs.Continue
	}, dfs.WithMaxDepth[string](1))
	assert.Equal(t, []string{"a", "b", "c"}, shallow)

	skipB := bfs.Filter(bfs.Children(g), func(_, nbr string) bool { return nbr != "b" })
	assert.Equal(t, []string{"a", "c", "d"}, dfs.Collect([]string{"a"}, skipB))

	assert.True(t, dfs.Walk([]string{"a"}, bfs.Children(g), nil))
}

// TestWalk_DeepChain runs a long chain without recursion.
func TestWalk_DeepChain(t *testing.T) {
	const n = 100000
	g := core.NewGraph[int, struct{}]()
	g.AddVertex(0)
	for i := 1; i < n; i++ {
		g.AddVertex(i)
		require.NoError(t, g.AddEdge(i-1, i, struct{}{}))
	}

	last := -1
	exits := 0
	done := dfs.Walk([]int{0}, bfs.Children(g), func(v int) bfs.Signal {
		last = v
		return bfs.Continue
	}, dfs.WithOnExit(func(int) { exits++ }))

	assert.True(t, done)
	assert.Equal(t, n-1, last)
	assert.Equal(t, n, exits)
}
