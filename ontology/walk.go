package ontology

import (
	"context"
	"slices"

	"go.opentelemetry.io/otel/attribute"

	"github.com/katalvlaran/ontodag/bfs"
	"github.com/katalvlaran/ontodag/closure"
	"github.com/katalvlaran/ontodag/core"
)

// RelationFilter selects the relation types a walk may cross. A nil filter
// admits every relation.
type RelationFilter func(rel *RelationType) bool

// PropagatingOnly admits relations that carry annotations upward.
func PropagatingOnly(rel *RelationType) bool {
	return rel.Propagating
}

// OnlyRelations admits exactly the listed relation types.
func OnlyRelations(rels ...*RelationType) RelationFilter {
	set := make(map[*RelationType]struct{}, len(rels))
	for _, r := range rels {
		set[r] = struct{}{}
	}

	return func(rel *RelationType) bool {
		_, ok := set[rel]

		return ok
	}
}

// ParentSelector returns a neighbor selector following parent links whose
// relation passes filter.
func (o *Ontology) ParentSelector(filter RelationFilter) bfs.NeighborSelector[TermID] {
	if filter == nil {
		return bfs.Parents(o.graph)
	}

	return func(id TermID) []TermID {
		var out []TermID
		for _, e := range o.graph.InEdges(id) {
			if filter(e.Data) {
				out = append(out, e.Source)
			}
		}

		return out
	}
}

// ChildSelector returns a neighbor selector following child links whose
// relation passes filter.
func (o *Ontology) ChildSelector(filter RelationFilter) bfs.NeighborSelector[TermID] {
	if filter == nil {
		return bfs.Children(o.graph)
	}

	return func(id TermID) []TermID {
		var out []TermID
		for _, e := range o.graph.OutEdges(id) {
			if filter(e.Data) {
				out = append(out, e.Dest)
			}
		}

		return out
	}
}

// WalkToSource visits start and then its ancestors breadth-first, crossing
// only relations accepted by filter. Each term is visited once per call;
// unknown start ids are skipped. It returns false if visit stopped the walk.
func (o *Ontology) WalkToSource(start []TermID, filter RelationFilter, visit bfs.Visitor[TermID]) bool {
	return bfs.Walk(o.known(start), o.ParentSelector(filter), visit)
}

// WalkToSinks is the mirror of WalkToSource, following child links.
func (o *Ontology) WalkToSinks(start []TermID, filter RelationFilter, visit bfs.Visitor[TermID]) bool {
	return bfs.Walk(o.known(start), o.ChildSelector(filter), visit)
}

func (o *Ontology) known(ids []TermID) []TermID {
	out := make([]TermID, 0, len(ids))
	for _, id := range ids {
		if o.graph.ContainsVertex(id) {
			out = append(out, id)
		}
	}

	return out
}

// Ancestors returns the upper induced graph of id: id and every term
// reachable through parent links, in BFS order. Unknown ids yield nil.
func (o *Ontology) Ancestors(id TermID) []TermID {
	if !o.graph.ContainsVertex(id) {
		return nil
	}

	return bfs.Collect([]TermID{id}, bfs.Parents(o.graph))
}

// Descendants returns id and every term below it, in BFS order.
func (o *Ontology) Descendants(id TermID) []TermID {
	if !o.graph.ContainsVertex(id) {
		return nil
	}

	return bfs.Collect([]TermID{id}, bfs.Children(o.graph))
}

// SharedParents returns the intersection of the ancestor sets (self
// included) of t1 and t2, sorted by id.
func (o *Ontology) SharedParents(t1, t2 TermID) []TermID {
	if !o.graph.ContainsVertex(t1) || !o.graph.ContainsVertex(t2) {
		return nil
	}
	up := bfs.Reachable([]TermID{t1}, bfs.Parents(o.graph))
	var out []TermID
	bfs.Walk([]TermID{t2}, bfs.Parents(o.graph), func(id TermID) bfs.Signal {
		if _, ok := up[id]; ok {
			out = append(out, id)
		}

		return bfs.Continue
	})
	slices.SortFunc(out, CompareTermIDs)

	return out
}

// ExistsPath reports whether descendant lies below (or is) ancestor.
func (o *Ontology) ExistsPath(ancestor, descendant TermID) bool {
	return bfs.ExistsPath(o.graph, ancestor, descendant)
}

// TransitiveClosure returns, over the given terms, an edge a → b for every
// pair where b lies below a in the full ontology.
func (o *Ontology) TransitiveClosure(ids []TermID) *core.Graph[TermID, struct{}] {
	return closure.TransitiveClosure(o.graph, o.known(ids))
}

// PathMaintainingSubOntology returns the transitive reduction of the
// ontology restricted to ids: the fewest parent → child edges whose
// reachability equals the full ontology's among ids.
func (o *Ontology) PathMaintainingSubOntology(ids []TermID) *core.Graph[TermID, struct{}] {
	_, span := tracer.Start(context.Background(), "ontology.PathMaintainingSubOntology")
	defer span.End()

	g := closure.PathMaintainingSubGraph(o.graph, o.known(ids))
	span.SetAttributes(
		attribute.Int("terms", g.VertexCount()),
		attribute.Int("edges", g.EdgeCount()),
	)

	return g
}
