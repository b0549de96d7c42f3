// Package builder generates deterministic DAG fixtures for tests and
// benchmarks: chains, random DAGs and layered ontologies.
//
// The package offers the following key components:
//
//   - Constructors (Constructor): Path, RandomDAG, Layered. Each appends
//     vertices and edges to a *core.Graph[string, struct{}]; BuildGraph
//     applies them in order.
//   - Vertex-ID schemes (IDFn): DefaultIDFn ("0","1",…), SymbolIDFn
//     ("A".."Z"), SymbolNumberIDFn(prefix).
//   - Options: WithSeed, WithRand, WithIDScheme.
//   - Terms converts a generated graph into ontology terms linked by is_a,
//     ready for ontology.Build.
//
// Guarantees:
//
//   - Acyclic by construction: every edge goes from a lower to a higher
//     generation index.
//   - Same constructors, options and seed ⇒ identical graphs.
//   - Option constructors panic on nil inputs; constructors return sentinel
//     errors and never panic.
package builder
