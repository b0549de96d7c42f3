// Package bfs provides breadth-first traversal with pluggable neighbor
// selection and early-abort visitors.
//
// What
//
//   - Walk explores vertices in non-decreasing distance (edge count) from a set
//     of initial vertices. Each vertex is visited at most once.
//   - The direction of travel is abstracted by a NeighborSelector: Children(g)
//     follows outgoing edges, Parents(g) follows incoming edges, and callers may
//     supply their own (for example relation-filtered parents in an ontology).
//   - A Visitor returns Continue or Stop. Stop ends the walk immediately; the
//     vertices visited so far stay visited.
//
// Why
//
//   - One BFS implementation serves generic reachability (ExistsPath,
//     Reachable) and ontology walks toward the root or toward the leaves.
//
// Determinism
//
//	Initial vertices are visited in caller order (duplicates dropped), then
//	neighbors in the order the selector reports them. core.Graph selectors report
//	edge insertion order, so a walk over the same construction sequence is
//	fully reproducible.
//
// Complexity (V = visited vertices, E = inspected edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V) for the queue and the seen-set
//
// Usage
//
//	bfs.Walk([]string{"root"}, bfs.Children(g), func(v string) bfs.Signal {
//	    fmt.Println(v)
//	    return bfs.Continue
//	})
package bfs
