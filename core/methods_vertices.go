// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Vertex lifecycle and queries: AddVertex/ContainsVertex/RemoveVertex,
//       Vertices/VertexCount and MergeVertices.
// Determinism:
//   - Vertices() reports insertion order.
//   - MergeVertices redirects edges in the order of others, then in adjacency order.

package core

import "fmt"

// AddVertex inserts v into the Graph. If v already exists this is a no-op.
// Complexity: O(1) amortized.
func (g *Graph[V, D]) AddVertex(v V) {
	if _, exists := g.nodes[v]; exists {
		return // idempotent
	}
	g.nodes[v] = &node[V]{}
	g.order = append(g.order, v)
}

// ContainsVertex reports whether v exists in the Graph.
// Complexity: O(1).
func (g *Graph[V, D]) ContainsVertex(v V) bool {
	_, ok := g.nodes[v]

	return ok
}

// RemoveVertex deletes v and every edge incident to it.
// Returns ErrUnknownVertex if v does not exist.
// Complexity: O(V + deg(v)).
func (g *Graph[V, D]) RemoveVertex(v V) error {
	n, ok := g.nodes[v]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownVertex, v)
	}
	// 1) Detach outgoing edges from the children's parent lists.
	for _, child := range n.out {
		delete(g.edges, pair[V]{from: v, to: child})
		c := g.nodes[child]
		c.in = removeValue(c.in, v)
	}
	// 2) Detach incoming edges from the parents' child lists.
	for _, parent := range n.in {
		delete(g.edges, pair[V]{from: parent, to: v})
		p := g.nodes[parent]
		p.out = removeValue(p.out, v)
	}
	// 3) Drop the vertex itself.
	delete(g.nodes, v)
	g.order = removeValue(g.order, v)

	return nil
}

// Vertices returns all vertices in insertion order. The slice is a copy.
// Complexity: O(V).
func (g *Graph[V, D]) Vertices() []V {
	out := make([]V, len(g.order))
	copy(out, g.order)

	return out
}

// VertexCount returns the number of vertices. O(1).
func (g *Graph[V, D]) VertexCount() int {
	return len(g.nodes)
}

// MergeVertices folds every vertex of others into representative.
//
// Implementation:
//   - Stage 1: Validate representative and every vertex of others.
//   - Stage 2: Collect the redirected edges: incoming p→o becomes p→rep and
//     outgoing o→c becomes rep→c, keeping the payload.
//   - Stage 3: Remove the merged vertices together with their original edges.
//   - Stage 4: Link the redirected edges.
//
// Behavior highlights:
//   - Redirected edges that would become self-loops (rep→rep) are skipped.
//   - Redirected edges that duplicate an existing edge are skipped; the edge
//     that was present first keeps its payload.
//   - Edges between two merged vertices collapse onto rep and are therefore dropped.
//   - A representative listed in others is ignored.
//
// Errors:
//   - ErrUnknownVertex if representative or any vertex in others is absent.
//     Validation happens before any mutation, so a failed merge leaves g unchanged.
//
// Complexity:
//   - Time O(V + Σ deg(o)), Space O(Σ deg(o)).
func (g *Graph[V, D]) MergeVertices(representative V, others ...V) error {
	// Stage 1: validate everything up front.
	if !g.ContainsVertex(representative) {
		return fmt.Errorf("%w: representative %v", ErrUnknownVertex, representative)
	}
	merged := make(map[V]struct{}, len(others))
	for _, o := range others {
		if !g.ContainsVertex(o) {
			return fmt.Errorf("%w: merge candidate %v", ErrUnknownVertex, o)
		}
		if o != representative {
			merged[o] = struct{}{}
		}
	}

	// Stage 2: collect redirected edges before touching adjacency.
	var redirected []Edge[V, D]
	for _, o := range others {
		if _, ok := merged[o]; !ok {
			continue
		}
		n := g.nodes[o]
		for _, parent := range n.in {
			redirected = append(redirected, Edge[V, D]{
				Source: parent, Dest: representative, Data: g.edges[pair[V]{from: parent, to: o}],
			})
		}
		for _, child := range n.out {
			redirected = append(redirected, Edge[V, D]{
				Source: representative, Dest: child, Data: g.edges[pair[V]{from: o, to: child}],
			})
		}
	}

	// Stage 3: drop merged vertices with all their edges.
	for o := range merged {
		if err := g.RemoveVertex(o); err != nil {
			return err
		}
	}

	// Stage 4: re-insert redirected edges, skipping loops, duplicates and
	// edges whose other endpoint was merged away as well.
	for _, e := range redirected {
		if e.Source == e.Dest {
			continue
		}
		if !g.ContainsVertex(e.Source) || !g.ContainsVertex(e.Dest) {
			continue
		}
		if g.HasEdge(e.Source, e.Dest) {
			continue
		}
		g.link(e.Source, e.Dest, e.Data)
	}

	return nil
}

// removeValue deletes the first occurrence of v from s, preserving order.
func removeValue[V comparable](s []V, v V) []V {
	for i := range s {
		if s[i] == v {
			return append(s[:i], s[i+1:]...)
		}
	}

	return s
}
