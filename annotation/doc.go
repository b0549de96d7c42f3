// Package annotation propagates item-to-term annotations up an ontology.
//
// Every pushed item is recorded as directly annotated to its terms and as
// totally annotated to those terms and every ancestor reachable over
// eligible relations:
//
//	ModePropagating  only relations with Propagating == true (default)
//	ModeAll          every relation
//
// Total sets are sets: an item reaching an ancestor over several paths, or
// pushed twice, is counted once. There is no retraction; build a new Engine
// to start over.
//
// Term ids are assumed to be resolved, live primary ids. The engine does not
// validate them; an unknown id is treated as a term without parents.
package annotation
