package closure_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ontodag/bfs"
	"github.com/katalvlaran/ontodag/builder"
	"github.com/katalvlaran/ontodag/closure"
	"github.com/katalvlaran/ontodag/core"
)

// layeredDAG builds root→{a,b,c}, a→b, c→{d,e}, d→g, e→f, f→g.
func layeredDAG(t *testing.T) *core.Graph[string, string] {
	t.Helper()
	g := core.NewGraph[string, string]()
	for _, v := range []string{"root", "a", "b", "c", "d", "e", "f", "g"} {
		g.AddVertex(v)
	}
	for _, e := range [][2]string{
		{"root", "a"}, {"root", "b"}, {"root", "c"}, {"a", "b"},
		{"c", "d"}, {"c", "e"}, {"d", "g"}, {"e", "f"}, {"f", "g"},
	} {
		require.NoError(t, g.AddEdge(e[0], e[1], "is_a"))
	}

	return g
}

func pairs[V comparable, D any](g *core.Graph[V, D]) [][2]V {
	var out [][2]V
	for _, e := range g.Edges() {
		out = append(out, [2]V{e.Source, e.Dest})
	}

	return out
}

// reach returns the strict reachability relation of g as a pair set.
func reach[V comparable, D any](g *core.Graph[V, D]) map[[2]V]bool {
	rel := make(map[[2]V]bool)
	for _, u := range g.Vertices() {
		for v := range bfs.Reachable([]V{u}, bfs.Children(g)) {
			if v != u {
				rel[[2]V{u, v}] = true
			}
		}
	}

	return rel
}

// TestTransitiveClosure_Subset keeps paths through excluded vertices.
func TestTransitiveClosure_Subset(t *testing.T) {
	g := layeredDAG(t)

	c := closure.TransitiveClosure(g, []string{"root", "b", "d", "g", "ghost"})

	assert.Equal(t, []string{"root", "b", "d", "g"}, c.Vertices())
	assert.ElementsMatch(t,
		[][2]string{{"root", "b"}, {"root", "d"}, {"root", "g"}, {"d", "g"}},
		pairs(c))
}

// TestPathMaintainingSubGraph_Subset drops the edge implied by root→d→g.
func TestPathMaintainingSubGraph_Subset(t *testing.T) {
	g := layeredDAG(t)

	r := closure.PathMaintainingSubGraph(g, []string{"root", "b", "d", "g"})

	assert.ElementsMatch(t,
		[][2]string{{"root", "b"}, {"root", "d"}, {"d", "g"}},
		pairs(r))
}

// TestPathMaintainingSubGraph_Whole reduces the full graph.
func TestPathMaintainingSubGraph_Whole(t *testing.T) {
	g := layeredDAG(t)

	r := closure.PathMaintainingSubGraph(g, g.Vertices())

	assert.ElementsMatch(t, [][2]string{
		{"root", "a"}, {"root", "c"}, {"a", "b"}, {"c", "d"},
		{"c", "e"}, {"d", "g"}, {"e", "f"}, {"f", "g"},
	}, pairs(r))
}

// TestPathMaintainingSubGraph_Properties checks reachability equality with
// the closure and minimality for several subsets.
func TestPathMaintainingSubGraph_Properties(t *testing.T) {
	g := layeredDAG(t)
	subsets := [][]string{
		g.Vertices(),
		{"root", "c", "g"},
		{"a", "b", "root", "f"},
		{"e", "g", "d"},
		{"root"},
	}

	for _, s := range subsets {
		c := closure.TransitiveClosure(g, s)
		r := closure.PathMaintainingSubGraph(g, s)

		// Reachability of the reduction equals the closure relation.
		want := make(map[[2]string]bool)
		for _, p := range pairs(c) {
			want[p] = true
		}
		assert.Equal(t, want, reach(r), "subset %v", s)

		// Minimality: removing any surviving edge loses reachability.
		for _, p := range pairs(r) {
			trial := r.Clone()
			require.NoError(t, trial.RemoveEdge(p[0], p[1]))
			assert.False(t, bfs.ExistsPath(trial, p[0], p[1]), "edge %v redundant in %v", p, s)
		}
	}
}

// TestPathMaintainingSubGraph_RandomDAG repeats the property check on
// seeded random DAGs and random subsets.
func TestPathMaintainingSubGraph_RandomDAG(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomDAG(30, 0.15))
		require.NoError(t, err)

		rng := rand.New(rand.NewSource(seed))
		var s []string
		for _, v := range g.Vertices() {
			if rng.Intn(2) == 0 {
				s = append(s, v)
			}
		}

		c := closure.TransitiveClosure(g, s)
		r := closure.PathMaintainingSubGraph(g, s)
		want := make(map[[2]string]bool)
		for _, p := range pairs(c) {
			want[p] = true
		}
		assert.Equal(t, want, reach(r), "seed %d", seed)
		for _, p := range pairs(r) {
			trial := r.Clone()
			require.NoError(t, trial.RemoveEdge(p[0], p[1]))
			assert.False(t, bfs.ExistsPath(trial, p[0], p[1]), "seed %d: edge %v redundant", seed, p)
		}
	}
}
