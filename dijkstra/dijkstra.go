// Package dijkstra implements Dijkstra's shortest-path algorithm on core.Graph.
//
// Notes on implementation choices:
//
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - Weights are produced on demand by a Weighter, so the same graph can be
//     searched with unit weights, relation-dependent weights or edge payloads.
//   - A missing source is not an error: the result is simply empty. Callers
//     that need to tell the difference check core.Graph.ContainsVertex first.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/ontodag/core"
)

// ShortestPaths computes shortest distances from source to every vertex
// reachable in g. weight may be nil for unit weights.
//
// Returns:
//   - *Result: distances, predecessors and settle order. Empty (only Source set)
//     when source is not in g.
//   - error: ErrNilGraph, ErrBadMaxDistance, or ErrNegativeWeight (wrapped with
//     the offending edge).
//
// Complexity:
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPaths[V comparable, D any](g *core.Graph[V, D], source V, weight Weighter[V, D], opts ...Option) (*Result[V], error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if cfg.MaxDistance < 0 {
		return nil, ErrBadMaxDistance
	}
	if weight == nil {
		weight = func(core.Edge[V, D]) int64 { return 1 }
	}

	// 2) Prepare data structures.
	res := &Result[V]{
		Source: source,
		Dist:   make(map[V]int64),
		Prev:   make(map[V]V),
	}
	if !g.ContainsVertex(source) {
		return res, nil
	}

	r := &runner[V, D]{
		g:       g,
		options: cfg,
		weight:  weight,
		res:     res,
		visited: make(map[V]bool),
	}

	// 3) Initialize algorithm state and run main loop.
	r.init(source)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[V comparable, D any] struct {
	g       *core.Graph[V, D] // The input graph; read-only within Dijkstra.
	options Options           // Configuration options.
	weight  Weighter[V, D]    // Edge weight function.
	res     *Result[V]        // Distances, predecessors and order.
	visited map[V]bool        // Tracks if a vertex's distance is finalized.
	pq      nodePQ[V]         // Min-heap of *nodeItem for lazy priority queue.
}

// init sets the source distance to zero and pushes it into the heap.
func (r *runner[V, D]) init(source V) {
	r.res.Dist[source] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem[V]{id: source, dist: 0})
}

// process repeatedly extracts the vertex with the minimum distance and relaxes its edges.
func (r *runner[V, D]) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem[V])

		// 2) Skip stale heap entries.
		if r.visited[item.id] {
			continue
		}

		// 3) Nothing closer than MaxDistance remains.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) Finalize and relax.
		r.visited[item.id] = true
		r.res.Order = append(r.res.Order, item.id)
		if err := r.relax(item.id); err != nil {
			return err
		}
	}

	return nil
}

// relax examines each edge leaving u in the configured direction and
// attempts to improve distances to its neighbors.
func (r *runner[V, D]) relax(u V) error {
	var edges []core.Edge[V, D]
	if r.options.AgainstFlow {
		edges = r.g.InEdges(u)
	} else {
		edges = r.g.OutEdges(u)
	}

	for _, e := range edges {
		v := e.Dest
		if r.options.AgainstFlow {
			v = e.Source
		}
		w := r.weight(e)
		if w < 0 {
			return fmt.Errorf("%w: edge %v→%v weight=%d", ErrNegativeWeight, e.Source, e.Dest, w)
		}

		newDist := r.res.Dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strictly better only; equal distances keep the first predecessor.
		if old, seen := r.res.Dist[v]; seen && newDist >= old {
			continue
		}
		r.res.Dist[v] = newDist
		r.res.Prev[v] = u
		heap.Push(&r.pq, &nodeItem[V]{id: v, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its current distance from the source.
type nodeItem[V comparable] struct {
	id   V     // vertex
	dist int64 // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ[V comparable] []*nodeItem[V]

// Len returns the number of items in the heap.
func (pq nodePQ[V]) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ[V]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ[V]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ[V]) Push(x any) { *pq = append(*pq, x.(*nodeItem[V])) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ[V]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
