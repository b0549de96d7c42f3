// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on core.Graph.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices when every edge weight is non-negative.
//
// Complexity:
//
//	– Time:  O((V + E) log V)   where V = |vertices|, E = |edges|
//	– Space: O(V + E)
//
// Options:
//
//	– AgainstFlow:  follow incoming edges (toward parents) instead of outgoing ones.
//	– MaxDistance:  vertices farther than this are not settled.
//
// Errors (sentinel):
//
//	– ErrNilGraph        if the provided graph pointer is nil.
//	– ErrNegativeWeight  if the weighter returns a negative weight for a traversed edge.
//	– ErrBadMaxDistance  if MaxDistance < 0.
package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/ontodag/core"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to ShortestPaths.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates that a negative edge weight was encountered.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Weighter assigns an integer weight to an edge. The edge is always reported
// in its stored orientation (Source is the parent), also when walking against
// the flow. A nil Weighter weighs every edge 1.
type Weighter[V comparable, D any] func(e core.Edge[V, D]) int64

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	AgainstFlow bool  // Walk incoming edges instead of outgoing edges
	MaxDistance int64 // Maximum distance to settle
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns an Options struct initialized with defaults:
//   - AgainstFlow: false (follow outgoing edges).
//   - MaxDistance: math.MaxInt64 (no distance limit).
func DefaultOptions() Options {
	return Options{
		AgainstFlow: false,
		MaxDistance: math.MaxInt64,
	}
}

// WithAgainstFlow walks edges from child to parent.
func WithAgainstFlow() Option {
	return func(o *Options) {
		o.AgainstFlow = true
	}
}

// WithMaxDistance sets a maximum distance threshold. Vertices whose shortest
// distance would exceed max are not settled. A negative max makes
// ShortestPaths return ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// Result holds the outcome of a single-source shortest-path run:
//   - Dist:  distance of every settled vertex from the source (source → 0).
//     Unreachable vertices are absent.
//   - Prev:  predecessor of every settled vertex except the source.
//   - Order: vertices in the order they were settled (non-decreasing distance).
type Result[V comparable] struct {
	Source V
	Dist   map[V]int64
	Prev   map[V]V
	Order  []V
}

// PathTo reconstructs the path from the source to dest.
// Returns false if dest was not reached.
func (r *Result[V]) PathTo(dest V) ([]V, bool) {
	if _, ok := r.Dist[dest]; !ok {
		return nil, false
	}
	// build reversed path
	path := []V{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Prev[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
