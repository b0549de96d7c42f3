package ontology

import "errors"

// Sentinel errors for ontology construction and parsing.
var (
	// ErrOntologyFrozen is returned by Builder mutations after Freeze.
	ErrOntologyFrozen = errors.New("ontology: frozen, mutation not allowed")

	// ErrUnknownTerm indicates an operation referenced a term that is not part of the DAG.
	ErrUnknownTerm = errors.New("ontology: unknown term")

	// ErrObsoleteTerm indicates an obsolete term was used where a live term is required.
	ErrObsoleteTerm = errors.New("ontology: obsolete term")

	// ErrNilTerm indicates a nil *Term was handed to the builder.
	ErrNilTerm = errors.New("ontology: nil term")

	// ErrNilRelation indicates a relation edge without a relation type.
	ErrNilRelation = errors.New("ontology: nil relation type")

	// ErrBadTermID indicates a malformed textual term id.
	ErrBadTermID = errors.New("ontology: malformed term id")
)
