// SPDX-License-Identifier: MIT

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrUnknownVertex indicates an operation referenced a vertex that was never added.
	ErrUnknownVertex = errors.New("core: unknown vertex")

	// ErrDuplicateEdge indicates an attempt to add a second edge for the same ordered pair.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrSelfLoop indicates an attempt to add an edge from a vertex to itself.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrEdgeNotFound indicates an operation referenced an edge that does not exist.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrInconsistentAdjacency is the panic value raised when the adjacency
	// indices disagree with each other. It signals a bug in this package, never
	// bad input, and is therefore not returned as an error.
	ErrInconsistentAdjacency = errors.New("core: inconsistent adjacency")
)

// Edge is a directed connection Source → Dest carrying a payload.
type Edge[V comparable, D any] struct {
	// Source is the parent endpoint.
	Source V

	// Dest is the child endpoint.
	Dest V

	// Data is the payload stored with the edge (relation type, weight, ...).
	Data D
}

// pair is the key of the edge catalog: one entry per ordered vertex pair.
type pair[V comparable] struct {
	from, to V
}

// node holds the per-vertex adjacency in insertion order.
type node[V comparable] struct {
	out []V // children
	in  []V // parents
}

// Graph is a simple directed graph over comparable vertices V with edge payload D.
//
// nodes gives O(1) vertex lookup, edges gives O(1) edge lookup, and each node
// keeps ordered out/in slices for deterministic O(deg) iteration. order keeps
// the vertex insertion sequence.
type Graph[V comparable, D any] struct {
	nodes map[V]*node[V]
	edges map[pair[V]]D
	order []V
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph[V comparable, D any]() *Graph[V, D] {
	return &Graph[V, D]{
		nodes: make(map[V]*node[V]),
		edges: make(map[pair[V]]D),
	}
}
