// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning graph instances.

package core

// Clone returns a deep copy of the Graph structure. Edge payloads are copied
// by value; payloads that are pointers keep pointing at the same objects.
// Complexity: O(V + E).
func (g *Graph[V, D]) Clone() *Graph[V, D] {
	clone := &Graph[V, D]{
		nodes: make(map[V]*node[V], len(g.nodes)),
		edges: make(map[pair[V]]D, len(g.edges)),
		order: make([]V, len(g.order)),
	}
	copy(clone.order, g.order)
	for v, n := range g.nodes {
		cn := &node[V]{out: make([]V, len(n.out)), in: make([]V, len(n.in))}
		copy(cn.out, n.out)
		copy(cn.in, n.in)
		clone.nodes[v] = cn
	}
	for k, d := range g.edges {
		clone.edges[k] = d
	}

	return clone
}
