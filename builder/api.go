// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/ontodag/core"
	"github.com/katalvlaran/ontodag/ontology"
)

// Constructor appends a topology to g. Vertex ids continue from g's current
// vertex count, so constructors compose without collisions.
type Constructor func(g *core.Graph[string, struct{}], cfg builderConfig) error

// BuildGraph creates an empty graph, resolves bopts and applies cons in order.
// Errors are wrapped with "BuildGraph: %w".
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph[string, struct{}], error) {
	g := core.NewGraph[string, struct{}]()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices appends n fresh vertices and returns their ids in order.
func addVertices(g *core.Graph[string, struct{}], cfg builderConfig, method string, n int) ([]string, error) {
	base := g.VertexCount()
	ids := make([]string, n)
	for i := range ids {
		id := cfg.idFn(base + i)
		if g.ContainsVertex(id) {
			return nil, fmt.Errorf("%s: id %q already present: %w", method, id, ErrConstructFailed)
		}
		g.AddVertex(id)
		ids[i] = id
	}

	return ids, nil
}

// Terms turns a generated graph into ontology terms: vertex v becomes
// prefix:index(v) with an is_a parent relation per incoming edge.
func Terms(g *core.Graph[string, struct{}], prefix string, pool *ontology.RelationPool) []*ontology.Term {
	isA := pool.Intern(ontology.IsA.String())
	ids := g.Vertices()
	number := make(map[string]int, len(ids))
	for i, v := range ids {
		number[v] = i
	}

	terms := make([]*ontology.Term, len(ids))
	for i, v := range ids {
		t := &ontology.Term{ID: ontology.NewTermID(prefix, i), Name: v}
		for _, p := range g.Parents(v) {
			t.Parents = append(t.Parents, ontology.ParentRelation{
				Target:   ontology.NewTermID(prefix, number[p]),
				Relation: isA,
			})
		}
		terms[i] = t
	}

	return terms
}
