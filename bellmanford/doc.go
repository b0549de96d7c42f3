// Package bellmanford computes single-source shortest and longest paths on
// core.Graph with arbitrary integer edge weights.
//
// What:
//
//   - ShortestPaths: Bellman-Ford relaxation. Negative weights are allowed.
//   - LongestPaths:  the same relaxation on negated weights; on a DAG this
//     yields the maximal path weight from the source (for example the depth
//     of a term counted along its longest chain to the root).
//
// Relaxation runs at most V passes over the edges reachable from the source
// and stops early after the first pass that changes nothing. If the V-th pass
// still relaxes an edge, a negative cycle (a positive one for LongestPaths) is
// reachable and ErrNegativeCycle is returned.
//
// Complexity:
//
//   - Time:   O(V·E) worst case, O(k·E) when the distances settle after k passes
//   - Memory: O(V + E)
package bellmanford
