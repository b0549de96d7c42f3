package ontology

import (
	"slices"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/ontodag/bellmanford"
	"github.com/katalvlaran/ontodag/core"
	"github.com/katalvlaran/ontodag/dijkstra"
)

// Ontology is a frozen term DAG with a single root (unless empty). All
// methods are read-only; absent ids yield empty results, never errors.
type Ontology struct {
	graph      *core.Graph[TermID, *RelationType] // parent → child
	arena      *core.Frozen[TermID, *RelationType]
	terms      map[TermID]*Term
	alt        map[TermID]TermID
	pool       *RelationPool
	root       TermID
	hasRoot    bool
	artificial bool
	level1     []TermID
	topo       []TermID
	logger     *log.Logger
}

// Get returns the term with the given primary id.
func (o *Ontology) Get(id TermID) (*Term, bool) {
	t, ok := o.terms[id]

	return t, ok
}

// Resolve maps an alternate or merged id to its primary id. Primary ids
// resolve to themselves.
func (o *Ontology) Resolve(id TermID) (TermID, bool) {
	if _, ok := o.terms[id]; ok {
		return id, true
	}
	p, ok := o.alt[id]

	return p, ok
}

// Contains reports whether id is a primary term of the ontology.
func (o *Ontology) Contains(id TermID) bool {
	_, ok := o.terms[id]

	return ok
}

// Terms returns every term in insertion order, the artificial root last.
func (o *Ontology) Terms() []*Term {
	ids := o.graph.Vertices()
	out := make([]*Term, len(ids))
	for i, id := range ids {
		out[i] = o.terms[id]
	}

	return out
}

// TermIDs returns every term id in insertion order.
func (o *Ontology) TermIDs() []TermID {
	return o.graph.Vertices()
}

// TermCount returns the number of terms, the artificial root included.
func (o *Ontology) TermCount() int {
	return o.graph.VertexCount()
}

// Root returns the single root. ok is false for an empty ontology.
func (o *Ontology) Root() (TermID, bool) {
	return o.root, o.hasRoot
}

// IsRoot reports whether id is the root.
func (o *Ontology) IsRoot(id TermID) bool {
	return o.hasRoot && id == o.root
}

// IsArtificialRoot reports whether id is a synthesized root.
func (o *Ontology) IsArtificialRoot(id TermID) bool {
	return o.artificial && id == o.root
}

// HasArtificialRoot reports whether Freeze had to synthesize the root.
func (o *Ontology) HasArtificialRoot() bool {
	return o.artificial
}

// Level1Terms returns the terms that had no parent at freeze time. With an
// artificial root these are its children.
func (o *Ontology) Level1Terms() []TermID {
	return slices.Clone(o.level1)
}

// ParentTerms returns the direct parents of id.
func (o *Ontology) ParentTerms(id TermID) []TermID {
	return o.graph.Parents(id)
}

// ChildTerms returns the direct children of id.
func (o *Ontology) ChildTerms(id TermID) []TermID {
	return o.graph.Children(id)
}

// ParentRelations returns the typed links from id to each of its parents.
func (o *Ontology) ParentRelations(id TermID) []ParentRelation {
	in := o.graph.InEdges(id)
	if in == nil {
		return nil
	}
	out := make([]ParentRelation, len(in))
	for i, e := range in {
		out[i] = ParentRelation{Target: e.Source, Relation: e.Data}
	}

	return out
}

// ParentRelation returns the relation type linking id to parent.
func (o *Ontology) ParentRelation(id, parent TermID) (*RelationType, bool) {
	e, ok := o.graph.Edge(parent, id)
	if !ok {
		return nil, false
	}

	return e.Data, true
}

// Siblings returns the other children of id's parents, deduplicated, in
// discovery order.
func (o *Ontology) Siblings(id TermID) []TermID {
	seen := map[TermID]struct{}{id: {}}
	var out []TermID
	for _, p := range o.graph.Parents(id) {
		for _, c := range o.graph.Children(p) {
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}

	return out
}

// TermsInTopologicalOrder returns every term with parents before children.
func (o *Ontology) TermsInTopologicalOrder() []TermID {
	return slices.Clone(o.topo)
}

// Relations returns the relation pool the ontology was built with.
func (o *Ontology) Relations() *RelationPool {
	return o.pool
}

// Edges returns every parent → child link with its relation type, for
// exporters.
func (o *Ontology) Edges() []core.Edge[TermID, *RelationType] {
	return o.graph.Edges()
}

// Graph returns a copy of the underlying parent → child graph.
func (o *Ontology) Graph() *core.Graph[TermID, *RelationType] {
	return o.graph.Clone()
}

// Arena returns the dense index snapshot taken at freeze.
func (o *Ontology) Arena() *core.Frozen[TermID, *RelationType] {
	return o.arena
}

// Depths returns the length of the shortest root path of every term.
func (o *Ontology) Depths() map[TermID]int64 {
	if !o.hasRoot {
		return map[TermID]int64{}
	}
	res, err := dijkstra.ShortestPaths[TermID, *RelationType](o.graph, o.root, nil)
	if err != nil {
		// unit weights from a present root cannot fail
		o.logger.Error("depth computation failed", "err", err)

		return map[TermID]int64{}
	}

	return res.Dist
}

// MaxDepths returns the length of the longest root path of every term.
func (o *Ontology) MaxDepths() map[TermID]int64 {
	if !o.hasRoot {
		return map[TermID]int64{}
	}
	res, err := bellmanford.LongestPaths[TermID, *RelationType](o.graph, o.root, nil)
	if err != nil {
		o.logger.Error("longest path computation failed", "err", err)

		return map[TermID]int64{}
	}

	return res.Dist
}
