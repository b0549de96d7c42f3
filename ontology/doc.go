// Package ontology layers Gene-Ontology semantics on top of core.Graph:
// typed relation edges, a single-root invariant and relation-filtered walks.
//
// Lifecycle:
//
//	b := ontology.NewBuilder(pool)        // Building
//	b.AddTerm(t); b.AddRelation(c, p, r)  // edit freely
//	o, err := b.Freeze()                  // Frozen: *Ontology, read-only
//
// Orientation:
//
//	A ParentRelation points from a term to its parent. The underlying graph
//	stores the edge as parent → child, so core's Children follow the ontology's
//	children and walking to the source (root) follows incoming edges.
//
// Single root:
//
//	Freeze collects the level-1 terms (terms without a parent). When there is
//	more than one, an artificial root is synthesized with the id
//	<prefix>:0000000 (the first free number counting down from 0) and linked to
//	every level-1 term with the artificial_root relation. This is logged at Info
//	level and recorded in Ontology.Level1Terms; it never fails the freeze.
//
// Concurrency:
//
//	Builder is single-writer. *Ontology never mutates after Freeze and is safe
//	for unsynchronized concurrent reads.
package ontology
