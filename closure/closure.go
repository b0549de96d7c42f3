package closure

import (
	"github.com/katalvlaran/ontodag/bfs"
	"github.com/katalvlaran/ontodag/core"
)

// TransitiveClosure returns the reachability graph of g restricted to subset.
// Vertices of subset that are absent from g are ignored; duplicates collapse.
// The result keeps subset order.
func TransitiveClosure[V comparable, D any](g *core.Graph[V, D], subset []V) *core.Graph[V, struct{}] {
	out := core.NewGraph[V, struct{}]()
	for _, v := range subset {
		if g.ContainsVertex(v) {
			out.AddVertex(v)
		}
	}

	// One forward BFS per member; every reached member becomes a closure edge.
	for _, u := range out.Vertices() {
		bfs.Walk([]V{u}, bfs.Children(g), func(v V) bfs.Signal {
			if v != u && out.ContainsVertex(v) {
				// each (u, v) is reached once per walk, so AddEdge cannot collide
				_ = out.AddEdge(u, v, struct{}{})
			}

			return bfs.Continue
		})
	}

	return out
}

// PathMaintainingSubGraph returns the transitive reduction of
// TransitiveClosure(g, subset): an edge u→v survives only if no other
// path from u to v exists through members of subset.
func PathMaintainingSubGraph[V comparable, D any](g *core.Graph[V, D], subset []V) *core.Graph[V, struct{}] {
	red := TransitiveClosure(g, subset)

	for changed := true; changed; {
		changed = false
		for _, v := range red.Vertices() {
			parents := red.Parents(v)
			if len(parents) < 2 {
				continue
			}
			full := upperSize(red, parents)
			for i := 0; i < len(parents); {
				others := without(parents, i)
				if upperSize(red, others) != full {
					i++
					continue
				}
				// parents[i] stays reachable through the others: redundant edge.
				_ = red.RemoveEdge(parents[i], v)
				parents = others
				changed = true
			}
		}
	}

	return red
}

// upperSize counts the vertices reachable from seeds against the edge
// direction, seeds included.
func upperSize[V comparable](g *core.Graph[V, struct{}], seeds []V) int {
	n := 0
	bfs.Walk(seeds, bfs.Parents(g), func(V) bfs.Signal {
		n++
		return bfs.Continue
	})

	return n
}

// without returns a copy of s with element i removed.
func without[V comparable](s []V, i int) []V {
	out := make([]V, 0, len(s)-1)
	out = append(out, s[:i]...)

	return append(out, s[i+1:]...)
}
