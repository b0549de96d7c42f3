package bellmanford

import (
	"fmt"

	"github.com/katalvlaran/ontodag/bfs"
	"github.com/katalvlaran/ontodag/core"
)

// arc is an edge already oriented in walk direction with its weight.
type arc[V comparable] struct {
	from, to V
	w        int64
}

// ShortestPaths runs Bellman-Ford from source. weight may be nil for unit
// weights. A missing source yields an empty result, not an error.
func ShortestPaths[V comparable, D any](g *core.Graph[V, D], source V, weight Weighter[V, D], opts ...Option) (*Result[V], error) {
	if weight == nil {
		weight = func(core.Edge[V, D]) int64 { return 1 }
	}

	return run(g, source, weight, opts)
}

// LongestPaths returns, for every vertex reachable from source, the weight of
// the heaviest path to it. weight may be nil for unit weights (path length in
// edges). It is Bellman-Ford on negated weights; distances are reported
// un-negated.
func LongestPaths[V comparable, D any](g *core.Graph[V, D], source V, weight Weighter[V, D], opts ...Option) (*Result[V], error) {
	if weight == nil {
		weight = func(core.Edge[V, D]) int64 { return 1 }
	}
	negated := func(e core.Edge[V, D]) int64 { return -weight(e) }

	res, err := run(g, source, negated, opts)
	if err != nil {
		return nil, err
	}
	for v, d := range res.Dist {
		res.Dist[v] = -d
	}

	return res, nil
}

// run is the shared relaxation loop.
//
// Implementation:
//   - Stage 1: Collect the vertices reachable from source (BFS in walk direction)
//     and the arcs among them.
//   - Stage 2: Relax all arcs up to V times, stopping after a quiet pass.
//   - Stage 3: A change during pass V signals a negative cycle.
func run[V comparable, D any](g *core.Graph[V, D], source V, weight Weighter[V, D], opts []Option) (*Result[V], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := Options{}
	for _, opt := range opts {
		opt(&cfg)
	}
	res := &Result[V]{
		Source: source,
		Dist:   make(map[V]int64),
		Prev:   make(map[V]V),
	}
	if !g.ContainsVertex(source) {
		return res, nil
	}

	// Stage 1: reachable vertices and oriented arcs.
	next := bfs.Children(g)
	if cfg.AgainstFlow {
		next = bfs.Parents(g)
	}
	reached := bfs.Collect([]V{source}, next)
	var arcs []arc[V]
	for _, u := range reached {
		if cfg.AgainstFlow {
			for _, e := range g.InEdges(u) {
				arcs = append(arcs, arc[V]{from: u, to: e.Source, w: weight(e)})
			}
			continue
		}
		for _, e := range g.OutEdges(u) {
			arcs = append(arcs, arc[V]{from: u, to: e.Dest, w: weight(e)})
		}
	}

	// Stage 2: bounded relaxation passes.
	res.Dist[source] = 0
	n := len(reached)
	for pass := 1; pass <= n; pass++ {
		res.Passes = pass
		changed := false
		for _, a := range arcs {
			du, ok := res.Dist[a.from]
			if !ok {
				continue
			}
			cand := du + a.w
			if dv, seen := res.Dist[a.to]; seen && cand >= dv {
				continue
			}
			res.Dist[a.to] = cand
			res.Prev[a.to] = a.from
			changed = true
		}
		if !changed {
			return res, nil
		}
		// Stage 3: still improving on the V-th pass.
		if pass == n {
			return nil, fmt.Errorf("%w: from %v", ErrNegativeCycle, source)
		}
	}

	return res, nil
}
