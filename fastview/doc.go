// Package fastview precomputes ancestor and descendant index lists of a
// frozen ontology so that membership tests need no graph traversal.
//
// Terms are addressed by their dense arena index (ontology.Arena). For each
// index the view stores the sorted ancestor list (self included, following
// parent links) and the sorted descendant list (self included). Membership
// is a binary search.
//
// Construction runs synchronously by default; WithWorkers(n > 1) fans the
// per-index closures out over an errgroup. The finished view is immutable
// and safe for concurrent reads. Rebuild it whenever a new Ontology is frozen.
package fastview
