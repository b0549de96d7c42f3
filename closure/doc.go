// Package closure computes reachability-derived graphs over a vertex subset
// of a core.Graph.
//
// What:
//
//   - TransitiveClosure(g, S): a graph on S with an edge u→v for every pair of
//     distinct vertices of S where v is reachable from u in g. Paths may run
//     through vertices outside S. Edges carry no payload.
//   - PathMaintainingSubGraph(g, S): the transitive reduction of that closure,
//     i.e. the smallest edge set on S whose reachability equals the
//     reachability of g restricted to S.
//
// Algorithm (PathMaintainingSubGraph):
//
//  1. Build the closure restricted to S.
//  2. For every vertex v and every parent p of v, compute the size of v's upper
//     closure from the other parents. If it equals the size with p included,
//     p is still reachable through another parent and p→v is dropped.
//  3. Repeat full passes until a pass removes nothing.
//
// Complexity:
//
//   - TransitiveClosure:       O(|S|·(V + E))
//   - PathMaintainingSubGraph: O(|S|·(V + E)) for the closure plus, per pass,
//     O(Σ_v deg(v)·|S|²) for the upper-closure tests. Intended for the few
//     hundred terms of an enrichment result, not for a whole ontology.
package closure
