// SPDX-License-Identifier: MIT

// Package core provides the generic directed graph store used by every other
// package of ontodag: a mutable Graph[V, D] for the build phase and a
// read-optimized Frozen[V, D] arena produced by Graph.Freeze.
//
// The Graph G = (V, E) is simple and directed:
//
//   - at most one edge per ordered vertex pair (AddEdge → ErrDuplicateEdge)
//   - no self-loops (AddEdge(v, v, …) → ErrSelfLoop)
//   - both endpoints must already exist (AddEdge → ErrUnknownVertex)
//   - every edge carries a payload of type D (relation data, weights, struct{})
//
// Orientation:
//
//	source ──▶ dest      "dest is a child of source", "source is a parent of dest"
//
// Children(v) follows outgoing edges, Parents(v) follows incoming edges. All
// traversal packages (bfs, dfs, dijkstra, bellmanford, closure) rely on this
// convention.
//
// Determinism:
//
//	Vertices(), Edges(), Children() and Parents() report insertion order, so
//	traversals over the same construction sequence always visit vertices in the
//	same order.
//
// Lifecycle:
//
//	Build      g := core.NewGraph[V, D](); g.AddVertex(…); g.AddEdge(…)
//	Freeze     f := g.Freeze()   // dense 0..n-1 indices, adjacency as []int
//	Query      f.Out(i), f.In(i), f.Index(v), f.Vertex(i)
//
// Concurrency:
//
//	Graph is single-writer and not safe for concurrent mutation. Reads with no
//	concurrent writer, and all Frozen methods, are safe from many goroutines.
//
// Complexity:
//
//	AddVertex, ContainsVertex, HasEdge, Edge      O(1) average
//	AddEdge                                      O(1) amortized
//	RemoveEdge, RemoveConnections                O(deg)
//	RemoveVertex                                 O(V + deg)
//	MergeVertices(rep, k others)                 O(V + Σ deg)
//	SubGraph                                     O(V + E)
//	Freeze                                       O(V + E)
package core
