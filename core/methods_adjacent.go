// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs: Children/Parents, OutEdges/InEdges, degrees.
// Determinism:
//   - All results follow edge insertion order.
// Notes:
//   - Absent vertices yield empty results rather than errors, so traversal
//     code can use these methods directly as neighbor selectors.

package core

// Children returns the vertices reachable from v through one outgoing edge.
// The slice is a copy; nil if v is absent or has no children.
// Complexity: O(out-degree).
func (g *Graph[V, D]) Children(v V) []V {
	n, ok := g.nodes[v]
	if !ok || len(n.out) == 0 {
		return nil
	}
	out := make([]V, len(n.out))
	copy(out, n.out)

	return out
}

// Parents returns the vertices that reach v through one incoming edge.
// The slice is a copy; nil if v is absent or has no parents.
// Complexity: O(in-degree).
func (g *Graph[V, D]) Parents(v V) []V {
	n, ok := g.nodes[v]
	if !ok || len(n.in) == 0 {
		return nil
	}
	out := make([]V, len(n.in))
	copy(out, n.in)

	return out
}

// OutEdges returns the outgoing edges of v with their payloads.
// Complexity: O(out-degree).
func (g *Graph[V, D]) OutEdges(v V) []Edge[V, D] {
	n, ok := g.nodes[v]
	if !ok {
		return nil
	}
	out := make([]Edge[V, D], 0, len(n.out))
	for _, child := range n.out {
		out = append(out, Edge[V, D]{Source: v, Dest: child, Data: g.edges[pair[V]{from: v, to: child}]})
	}

	return out
}

// InEdges returns the incoming edges of v with their payloads.
// Complexity: O(in-degree).
func (g *Graph[V, D]) InEdges(v V) []Edge[V, D] {
	n, ok := g.nodes[v]
	if !ok {
		return nil
	}
	out := make([]Edge[V, D], 0, len(n.in))
	for _, parent := range n.in {
		out = append(out, Edge[V, D]{Source: parent, Dest: v, Data: g.edges[pair[V]{from: parent, to: v}]})
	}

	return out
}

// OutDegree returns the number of children of v (0 if absent).
func (g *Graph[V, D]) OutDegree(v V) int {
	if n, ok := g.nodes[v]; ok {
		return len(n.out)
	}

	return 0
}

// InDegree returns the number of parents of v (0 if absent).
func (g *Graph[V, D]) InDegree(v V) int {
	if n, ok := g.nodes[v]; ok {
		return len(n.in)
	}

	return 0
}
