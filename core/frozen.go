// SPDX-License-Identifier: MIT
//
// File: frozen.go
// Role: Read-optimized arena produced by Graph.Freeze.
// Determinism:
//   - Vertex i is the i-th vertex of Graph.Vertices() at freeze time.
//   - Out(i)/In(i) keep the graph's edge insertion order.
// Concurrency:
//   - Frozen is immutable after construction and safe for concurrent reads.

package core

// Frozen is an immutable snapshot of a Graph with dense vertex indices
// 0..Len()-1 and adjacency stored as index lists.
type Frozen[V comparable, D any] struct {
	vertices []V
	index    map[V]int
	out      [][]int
	in       [][]int
	outData  [][]D // outData[i][k] is the payload of i → out[i][k]
}

// Freeze builds a Frozen snapshot of g. Later mutations of g are not
// observed by the snapshot; freeze again to pick them up.
//
// Implementation:
//   - Stage 1: Assign indices in vertex insertion order.
//   - Stage 2: Translate each adjacency list into index lists, carrying payloads
//     alongside the outgoing lists.
//
// Complexity: Time O(V + E), Space O(V + E).
func (g *Graph[V, D]) Freeze() *Frozen[V, D] {
	n := len(g.order)
	f := &Frozen[V, D]{
		vertices: make([]V, n),
		index:    make(map[V]int, n),
		out:      make([][]int, n),
		in:       make([][]int, n),
		outData:  make([][]D, n),
	}
	// Stage 1: dense indices.
	for i, v := range g.order {
		f.vertices[i] = v
		f.index[v] = i
	}
	// Stage 2: index adjacency.
	for i, v := range g.order {
		nd := g.nodes[v]
		f.out[i] = make([]int, len(nd.out))
		f.outData[i] = make([]D, len(nd.out))
		for k, child := range nd.out {
			f.out[i][k] = f.index[child]
			f.outData[i][k] = g.edges[pair[V]{from: v, to: child}]
		}
		f.in[i] = make([]int, len(nd.in))
		for k, parent := range nd.in {
			f.in[i][k] = f.index[parent]
		}
	}

	return f
}

// Len returns the number of vertices in the arena.
func (f *Frozen[V, D]) Len() int {
	return len(f.vertices)
}

// Index returns the dense index of v.
func (f *Frozen[V, D]) Index(v V) (int, bool) {
	i, ok := f.index[v]

	return i, ok
}

// Vertex returns the vertex stored at index i. It panics if i is out of range.
func (f *Frozen[V, D]) Vertex(i int) V {
	return f.vertices[i]
}

// Out returns the child indices of i. The slice is shared; do not modify it.
func (f *Frozen[V, D]) Out(i int) []int {
	return f.out[i]
}

// In returns the parent indices of i. The slice is shared; do not modify it.
func (f *Frozen[V, D]) In(i int) []int {
	return f.in[i]
}

// EdgeData returns the payload of the edge from → to, if present.
// Complexity: O(out-degree(from)).
func (f *Frozen[V, D]) EdgeData(from, to int) (D, bool) {
	for k, child := range f.out[from] {
		if child == to {
			return f.outData[from][k], true
		}
	}
	var zero D

	return zero, false
}
