// Package dfs implements depth-first traversal and ordering on core.Graph.
//
// What:
//
//   - TopologicalSort: Tarjan's DFS post-order, reversed, so that for every edge
//     u→v, u is handed to the visitor before v. The walk is iterative (explicit
//     stack), which keeps deep chains of tens of thousands of vertices off the
//     goroutine stack.
//   - TopologicalOrder: convenience wrapper returning the order as a slice.
//   - Walk: generic depth-first traversal driven by a bfs.NeighborSelector and
//     a bfs.Visitor (pre-order, Continue/Stop), with an optional post-order
//     hook (WithOnExit) and depth limit (WithMaxDepth). Collect returns the
//     pre-order as a slice.
//
// Why:
//   - Determine safe processing orders in DAGs (roots before leaves).
//   - Verify acyclicity before a graph is frozen for querying.
//
// Key Types & Constants:
//
//   - White, Gray, Black: visitation markers
//   - ErrCycleDetected: returned when a back-edge (edge into a Gray vertex) is found
//
// Complexity:
//
//   - TopologicalSort: Time O(V+E), Memory O(V)
//   - Walk: Time O(V+E) over the reachable part, Memory O(V)
//
// Errors:
//
//   - ErrGraphNil if the graph is nil.
//   - ErrCycleDetected (wrapped with the offending edge) if the graph is not acyclic.
//     The visitor is never called in that case: no partial order is produced.
package dfs
