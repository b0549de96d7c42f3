// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - The result keeps the source graph's vertex and edge insertion order.

package core

// SubGraph returns a new Graph induced by vertices: it contains exactly the
// listed vertices that exist in g, and only the edges whose endpoints are
// both kept. g is not mutated.
//
// Complexity: O(V + E).
func (g *Graph[V, D]) SubGraph(vertices []V) *Graph[V, D] {
	keep := make(map[V]struct{}, len(vertices))
	for _, v := range vertices {
		if g.ContainsVertex(v) {
			keep[v] = struct{}{}
		}
	}

	out := NewGraph[V, D]()
	// Copy only kept vertices, in source order.
	for _, v := range g.order {
		if _, ok := keep[v]; ok {
			out.AddVertex(v)
		}
	}
	// Copy only edges whose endpoints are both kept.
	for _, v := range out.order {
		for _, child := range g.nodes[v].out {
			if _, ok := keep[child]; ok {
				out.link(v, child, g.edges[pair[V]{from: v, to: child}])
			}
		}
	}

	return out
}
