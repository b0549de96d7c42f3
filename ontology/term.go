package ontology

// ParentRelation is a directed link from a term to one of its parents.
type ParentRelation struct {
	Target   TermID
	Relation *RelationType
}

// Term is a vocabulary entry as delivered by the OBO parser. Terms are
// immutable once handed to a Builder.
type Term struct {
	ID        TermID
	Name      string
	Namespace string // empty when absent
	Parents   []ParentRelation
	AltIDs    []TermID
	Obsolete  bool
	Subsets   []string
}
