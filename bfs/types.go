// Package bfs defines the visitor protocol and neighbor selectors
// for breadth-first search over a core.Graph.
package bfs

import "github.com/katalvlaran/ontodag/core"

// Signal tells the walker whether to keep going after a visit.
type Signal int

const (
	// Continue proceeds with the traversal.
	Continue Signal = iota

	// Stop terminates the traversal without visiting further vertices.
	Stop
)

// Visitor is called once per visited vertex.
type Visitor[V comparable] func(v V) Signal

// NeighborSelector returns the vertices to enqueue after visiting v.
// Returning nil means v has no neighbors in this direction.
type NeighborSelector[V comparable] func(v V) []V

// Children selects successors along outgoing edges of g.
func Children[V comparable, D any](g *core.Graph[V, D]) NeighborSelector[V] {
	return g.Children
}

// Parents selects predecessors along incoming edges of g.
func Parents[V comparable, D any](g *core.Graph[V, D]) NeighborSelector[V] {
	return g.Parents
}

// Filter wraps next so that only neighbors accepted by keep(curr, neighbor)
// are enqueued.
func Filter[V comparable](next NeighborSelector[V], keep func(curr, neighbor V) bool) NeighborSelector[V] {
	return func(v V) []V {
		all := next(v)
		out := all[:0:0]
		for _, nbr := range all {
			if keep(v, nbr) {
				out = append(out, nbr)
			}
		}

		return out
	}
}
