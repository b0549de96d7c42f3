package bellmanford

import (
	"errors"

	"github.com/katalvlaran/ontodag/core"
)

var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrNegativeCycle indicates that distances kept improving after V passes.
	ErrNegativeCycle = errors.New("bellmanford: negative cycle reachable from source")
)

// Weighter assigns an integer weight, possibly negative, to an edge.
// A nil Weighter weighs every edge 1.
type Weighter[V comparable, D any] func(e core.Edge[V, D]) int64

// Option configures ShortestPaths and LongestPaths.
type Option func(*Options)

// Options holds the walk direction.
type Options struct {
	// AgainstFlow follows incoming edges (child → parent) instead of outgoing ones.
	AgainstFlow bool
}

// WithAgainstFlow walks edges from child to parent.
func WithAgainstFlow() Option {
	return func(o *Options) {
		o.AgainstFlow = true
	}
}

// Result holds distances and predecessors of every vertex reachable from
// Source. Unreachable vertices are absent from both maps.
type Result[V comparable] struct {
	Source V
	Dist   map[V]int64
	Prev   map[V]V
	Passes int // relaxation passes actually executed
}

// PathTo reconstructs the path from the source to dest.
// Returns false if dest was not reached.
func (r *Result[V]) PathTo(dest V) ([]V, bool) {
	if _, ok := r.Dist[dest]; !ok {
		return nil, false
	}
	path := []V{dest}
	for cur := dest; ; {
		prev, ok := r.Prev[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
