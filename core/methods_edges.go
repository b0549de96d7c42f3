// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle and queries: AddEdge/HasEdge/Edge/RemoveEdge/
//       RemoveConnections/Edges/EdgeCount.
// Determinism:
//   - Edges() reports edges grouped by source in vertex insertion order,
//     then by child insertion order.

package core

import "fmt"

// AddEdge creates the directed edge source → dest carrying data.
//
// Steps:
//  1. Reject self-loops (ErrSelfLoop).
//  2. Both endpoints must exist (ErrUnknownVertex).
//  3. The ordered pair must be free (ErrDuplicateEdge).
//  4. Insert into the catalog and both adjacency lists.
//
// Complexity: O(1) amortized.
func (g *Graph[V, D]) AddEdge(source, dest V, data D) error {
	// 1) Loop constraint
	if source == dest {
		return fmt.Errorf("%w: %v", ErrSelfLoop, source)
	}
	// 2) Endpoint existence
	if !g.ContainsVertex(source) {
		return fmt.Errorf("%w: source %v", ErrUnknownVertex, source)
	}
	if !g.ContainsVertex(dest) {
		return fmt.Errorf("%w: dest %v", ErrUnknownVertex, dest)
	}
	// 3) Simple-graph constraint
	if g.HasEdge(source, dest) {
		return fmt.Errorf("%w: %v → %v", ErrDuplicateEdge, source, dest)
	}
	// 4) Store
	g.link(source, dest, data)

	return nil
}

// HasEdge reports whether the edge source → dest exists. O(1).
func (g *Graph[V, D]) HasEdge(source, dest V) bool {
	_, ok := g.edges[pair[V]{from: source, to: dest}]

	return ok
}

// Edge returns the edge source → dest, if present. O(1).
func (g *Graph[V, D]) Edge(source, dest V) (Edge[V, D], bool) {
	data, ok := g.edges[pair[V]{from: source, to: dest}]
	if !ok {
		return Edge[V, D]{}, false
	}

	return Edge[V, D]{Source: source, Dest: dest, Data: data}, true
}

// RemoveEdge deletes the edge source → dest.
// Returns ErrEdgeNotFound if it does not exist.
// Complexity: O(deg(source) + deg(dest)).
func (g *Graph[V, D]) RemoveEdge(source, dest V) error {
	if !g.HasEdge(source, dest) {
		return fmt.Errorf("%w: %v → %v", ErrEdgeNotFound, source, dest)
	}
	g.unlink(source, dest)

	return nil
}

// RemoveConnections removes any edge between a and b, in either direction,
// and returns how many edges were removed (0, 1 or 2).
//
// The adjacency lists are cross-checked against the catalog: finding more
// than one a→b entry, or an entry the catalog does not know, means the
// indices are corrupt and RemoveConnections panics with ErrInconsistentAdjacency.
//
// Complexity: O(deg(a) + deg(b)).
func (g *Graph[V, D]) RemoveConnections(a, b V) int {
	removed := 0
	if g.countOut(a, b) > 0 {
		g.unlink(a, b)
		removed++
	}
	if g.countOut(b, a) > 0 {
		g.unlink(b, a)
		removed++
	}

	return removed
}

// Edges returns every edge of the Graph as a fresh slice.
// Complexity: O(V + E).
func (g *Graph[V, D]) Edges() []Edge[V, D] {
	out := make([]Edge[V, D], 0, len(g.edges))
	for _, v := range g.order {
		for _, child := range g.nodes[v].out {
			out = append(out, Edge[V, D]{Source: v, Dest: child, Data: g.edges[pair[V]{from: v, to: child}]})
		}
	}

	return out
}

// EdgeCount returns the number of edges. O(1).
func (g *Graph[V, D]) EdgeCount() int {
	return len(g.edges)
}

// Internal helper methods:
////////////////////

// link stores source → dest without validation.
func (g *Graph[V, D]) link(source, dest V, data D) {
	g.edges[pair[V]{from: source, to: dest}] = data
	g.nodes[source].out = append(g.nodes[source].out, dest)
	g.nodes[dest].in = append(g.nodes[dest].in, source)
}

// unlink removes source → dest from the catalog and both adjacency lists.
func (g *Graph[V, D]) unlink(source, dest V) {
	delete(g.edges, pair[V]{from: source, to: dest})
	s, d := g.nodes[source], g.nodes[dest]
	s.out = removeValue(s.out, dest)
	d.in = removeValue(d.in, source)
}

// countOut counts adjacency entries source → dest and verifies them against
// the catalog. Any count other than 0 or 1 is a corrupted index.
func (g *Graph[V, D]) countOut(source, dest V) int {
	s, ok := g.nodes[source]
	if !ok {
		return 0
	}
	found := 0
	for _, child := range s.out {
		if child == dest {
			found++
		}
	}
	_, inCatalog := g.edges[pair[V]{from: source, to: dest}]
	if found > 1 || (found == 1) != inCatalog {
		panic(fmt.Errorf("%w: %d adjacency entries for %v → %v (catalog=%t)",
			ErrInconsistentAdjacency, found, source, dest, inCatalog))
	}

	return found
}
