package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ontodag/core"
	"github.com/katalvlaran/ontodag/dijkstra"
)

// layeredDAG builds root→{a,b,c}, a→b, c→{d,e}, d→g, e→f, f→g with
// integer payloads used by the weighted tests.
func layeredDAG(t *testing.T) *core.Graph[string, int64] {
	t.Helper()
	g := core.NewGraph[string, int64]()
	for _, v := range []string{"root", "a", "b", "c", "d", "e", "f", "g"} {
		g.AddVertex(v)
	}
	for _, e := range []struct {
		from, to string
		w        int64
	}{
		{"root", "a", 1}, {"root", "b", 5}, {"root", "c", 1}, {"a", "b", 1},
		{"c", "d", 10}, {"c", "e", 1}, {"d", "g", 1}, {"e", "f", 1}, {"f", "g", 1},
	} {
		require.NoError(t, g.AddEdge(e.from, e.to, e.w))
	}

	return g
}

// payload weighs edges by their stored payload.
func payload(e core.Edge[string, int64]) int64 { return e.Data }

// TestShortestPaths_Unweighted checks hop distances with the default weighter.
func TestShortestPaths_Unweighted(t *testing.T) {
	g := layeredDAG(t)

	res, err := dijkstra.ShortestPaths(g, "root", nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{
		"root": 0, "a": 1, "b": 1, "c": 1, "d": 2, "e": 2, "f": 3, "g": 3,
	}, res.Dist)
	assert.Equal(t, "root", res.Order[0])
}

// TestShortestPaths_Weighted follows the payload weights.
func TestShortestPaths_Weighted(t *testing.T) {
	g := layeredDAG(t)

	res, err := dijkstra.ShortestPaths(g, "root", payload)
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Dist["b"])
	assert.Equal(t, int64(4), res.Dist["g"])
	assert.Equal(t, int64(11), res.Dist["d"])

	path, ok := res.PathTo("g")
	require.True(t, ok)
	assert.Equal(t, []string{"root", "c", "e", "f", "g"}, path)
}

// TestShortestPaths_AgainstFlow walks toward the root.
func TestShortestPaths_AgainstFlow(t *testing.T) {
	g := layeredDAG(t)

	res, err := dijkstra.ShortestPaths(g, "g", nil, dijkstra.WithAgainstFlow())
	require.NoError(t, err)
	assert.Equal(t, int64(3), res.Dist["root"])
	assert.Equal(t, int64(2), res.Dist["c"])
	_, reached := res.Dist["a"]
	assert.False(t, reached)
}

// TestShortestPaths_MissingSource returns an empty result without error.
func TestShortestPaths_MissingSource(t *testing.T) {
	g := layeredDAG(t)

	res, err := dijkstra.ShortestPaths(g, "nope", nil)
	require.NoError(t, err)
	assert.Empty(t, res.Dist)
	assert.Empty(t, res.Order)
	_, ok := res.PathTo("root")
	assert.False(t, ok)
}

// TestShortestPaths_Errors covers nil graph, negative weights and bad options.
func TestShortestPaths_Errors(t *testing.T) {
	_, err := dijkstra.ShortestPaths[string, int64](nil, "root", nil)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	g := layeredDAG(t)
	_, err = dijkstra.ShortestPaths(g, "root", func(core.Edge[string, int64]) int64 { return -1 })
	assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)

	_, err = dijkstra.ShortestPaths(g, "root", nil, dijkstra.WithMaxDistance(-1))
	assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)
}

// TestShortestPaths_MaxDistance stops settling past the limit.
func TestShortestPaths_MaxDistance(t *testing.T) {
	g := layeredDAG(t)

	res, err := dijkstra.ShortestPaths(g, "root", nil, dijkstra.WithMaxDistance(1))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"root", "a", "b", "c"}, res.Order)
}
