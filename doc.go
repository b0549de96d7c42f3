// Package ontodag is an in-memory engine for ontology DAGs such as the Gene
// Ontology: a generic directed-graph store, traversal and path algorithms,
// an ontology layer with typed relations and a single-root invariant,
// annotation propagation and a precomputed ancestor/descendant index.
//
// Packages:
//
//	core/        Graph[V, D] (mutable, simple, directed) and its Frozen index arena
//	bfs/         breadth-first walks with neighbor selectors and Continue/Stop visitors
//	dfs/         iterative topological sort with cycle detection
//	dijkstra/    single-source shortest paths, non-negative weights
//	bellmanford/ shortest paths with negative weights, longest paths
//	closure/     transitive closure and path-maintaining (reduced) subgraphs
//	ontology/    TermID, relation pool, Builder → frozen Ontology, walks
//	annotation/  propagation of item annotations to ancestor terms
//	fastview/    sorted ancestor/descendant index lists per term
//	config/      YAML settings, validation and logger construction
//	builder/     deterministic DAG and ontology fixtures (chains, random, layered)
//
// Typical flow:
//
//	pool := ontology.NewRelationPool()
//	o, err := ontology.Build(terms, pool, ontology.WithLogger(logger))
//	e := annotation.New(o, annotation.WithMode(annotation.ModePropagating))
//	e.PushAll(pairs)
//	v := fastview.Build(o)
//	v.TermIsAncestor(root, term)
//
// Loading terms from OBO files and annotations from GAF files is left to
// the caller; this module starts at parsed Term values and resolved pairs.
package ontodag
