package ontology

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/katalvlaran/ontodag/core"
	"github.com/katalvlaran/ontodag/dfs"
)

var tracer = otel.Tracer("ontodag.ontology")

// Builder accumulates terms and relations in the Building state. Freeze
// turns it into an immutable *Ontology; afterwards every mutation returns
// ErrOntologyFrozen.
type Builder struct {
	pool   *RelationPool
	graph  *core.Graph[TermID, *RelationType] // parent → child
	terms  map[TermID]*Term
	merged map[TermID]TermID // absorbed id → representative
	opts   Options
	frozen bool
}

// NewBuilder returns an empty Builder interning relations in pool. A nil
// pool gets a fresh one.
func NewBuilder(pool *RelationPool, opts ...Option) *Builder {
	if pool == nil {
		pool = NewRelationPool()
	}
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Builder{
		pool:   pool,
		graph:  core.NewGraph[TermID, *RelationType](),
		terms:  make(map[TermID]*Term),
		merged: make(map[TermID]TermID),
		opts:   o,
	}
}

// Relations returns the relation pool used by the builder.
func (b *Builder) Relations() *RelationPool {
	return b.pool
}

// TermCount returns the number of terms added so far.
func (b *Builder) TermCount() int {
	return len(b.terms)
}

// AddTerm registers t as a vertex. Re-adding a known id keeps the first
// term. Obsolete terms never become vertices: ErrObsoleteTerm.
// Parent relations listed in t are not linked; use AddRelation or Build.
func (b *Builder) AddTerm(t *Term) error {
	if b.frozen {
		return ErrOntologyFrozen
	}
	if t == nil {
		return ErrNilTerm
	}
	if t.Obsolete {
		return fmt.Errorf("%w: %s", ErrObsoleteTerm, t.ID)
	}
	if _, ok := b.terms[t.ID]; ok {
		return nil
	}
	b.terms[t.ID] = t
	b.graph.AddVertex(t.ID)

	return nil
}

// RemoveTerm drops id and every relation touching it.
func (b *Builder) RemoveTerm(id TermID) error {
	if b.frozen {
		return ErrOntologyFrozen
	}
	if _, ok := b.terms[id]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTerm, id)
	}
	delete(b.terms, id)

	return b.graph.RemoveVertex(id)
}

// AddRelation links child to parent with rel. Both terms must be present;
// a second relation between the same pair fails with core.ErrDuplicateEdge.
func (b *Builder) AddRelation(child, parent TermID, rel *RelationType) error {
	if b.frozen {
		return ErrOntologyFrozen
	}
	if rel == nil {
		return fmt.Errorf("%w: %s → %s", ErrNilRelation, child, parent)
	}
	if _, ok := b.terms[child]; !ok {
		return fmt.Errorf("%w: child %s", ErrUnknownTerm, child)
	}
	if _, ok := b.terms[parent]; !ok {
		return fmt.Errorf("%w: parent %s of %s", ErrUnknownTerm, parent, child)
	}
	if err := b.graph.AddEdge(parent, child, rel); err != nil {
		return fmt.Errorf("ontology: relation %s -%s-> %s: %w", child, rel.Name, parent, err)
	}

	return nil
}

// RemoveRelation unlinks child from parent.
func (b *Builder) RemoveRelation(child, parent TermID) error {
	if b.frozen {
		return ErrOntologyFrozen
	}
	if err := b.graph.RemoveEdge(parent, child); err != nil {
		return fmt.Errorf("ontology: relation %s → %s: %w", child, parent, err)
	}

	return nil
}

// MergeTerms folds others into representative. Relations are redirected
// (first one wins on collision) and the absorbed ids resolve to
// representative through Ontology.Resolve.
func (b *Builder) MergeTerms(representative TermID, others ...TermID) error {
	if b.frozen {
		return ErrOntologyFrozen
	}
	if err := b.graph.MergeVertices(representative, others...); err != nil {
		return fmt.Errorf("ontology: merge into %s: %w", representative, err)
	}
	for _, id := range others {
		if id == representative {
			continue
		}
		delete(b.terms, id)
		b.merged[id] = representative
	}
	// earlier merges pointing at an absorbed id follow it
	for from, to := range b.merged {
		if rep, ok := b.merged[to]; ok {
			b.merged[from] = rep
		}
	}

	return nil
}

// Freeze is FreezeContext with a background context.
func (b *Builder) Freeze() (*Ontology, error) {
	return b.FreezeContext(context.Background())
}

// FreezeContext validates the DAG, enforces a single root and hands back
// the read-only Ontology.
//
// Steps:
//  1. Reject a second freeze with ErrOntologyFrozen.
//  2. Topologically sort; a cycle aborts with dfs.ErrCycleDetected and
//     leaves the builder in the Building state.
//  3. Collect level-1 terms (in-degree zero) in insertion order.
//  4. One level-1 term becomes the root. More than one get an artificial
//     root linked to each of them.
//  5. Build the index arena and alternate-id table.
//
// Complexity: O(V + E).
func (b *Builder) FreezeContext(ctx context.Context) (*Ontology, error) {
	if b.frozen {
		return nil, ErrOntologyFrozen
	}
	ctx, span := tracer.Start(ctx, "ontology.Freeze")
	defer span.End()

	start := time.Now()
	o, err := b.freeze()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		recordFreeze(ctx, start, 0, false, err)

		return nil, err
	}
	span.SetAttributes(
		attribute.Int("terms", o.TermCount()),
		attribute.Int("relations", o.graph.EdgeCount()),
		attribute.Bool("artificial_root", o.artificial),
	)
	recordFreeze(ctx, start, o.TermCount(), o.artificial, nil)
	b.opts.Logger.Debug("ontology frozen", "terms", o.TermCount(), "relations", o.graph.EdgeCount(), "root", o.root)

	return o, nil
}

func (b *Builder) freeze() (*Ontology, error) {
	// 2. acyclicity
	order, err := dfs.TopologicalOrder(b.graph)
	if err != nil {
		return nil, fmt.Errorf("ontology: freeze: %w", err)
	}

	// 3. level-1 terms
	var level1 []TermID
	for _, id := range b.graph.Vertices() {
		if b.graph.InDegree(id) == 0 {
			level1 = append(level1, id)
		}
	}

	o := &Ontology{
		graph:  b.graph,
		terms:  b.terms,
		pool:   b.pool,
		level1: level1,
		logger: b.opts.Logger,
	}

	// 4. single root
	switch len(level1) {
	case 0:
		// empty ontology
	case 1:
		o.root, o.hasRoot = level1[0], true
	default:
		root, err := b.synthesizeRoot(level1)
		if err != nil {
			return nil, err
		}
		o.root, o.hasRoot, o.artificial = root, true, true
		order = append([]TermID{root}, order...)
	}

	// 5. indexes
	o.topo = order
	o.arena = b.graph.Freeze()
	o.alt = b.altIndex()
	b.frozen = true

	return o, nil
}

// synthesizeRoot adds a root above every level-1 term. Its id takes the
// configured prefix (or the first level-1 term's) and the first free
// number counting down from 0.
func (b *Builder) synthesizeRoot(level1 []TermID) (TermID, error) {
	prefix := b.opts.ArtificialRootPrefix
	if prefix == "" {
		prefix = level1[0].Prefix
	}
	id := TermID{Prefix: prefix}
	for b.graph.ContainsVertex(id) {
		id.Number--
	}

	rel := b.pool.Define(ArtificialRootRelation, Unknown, true)
	b.terms[id] = &Term{ID: id, Name: b.opts.ArtificialRootName}
	b.graph.AddVertex(id)
	for _, t := range level1 {
		if err := b.graph.AddEdge(id, t, rel); err != nil {
			return TermID{}, fmt.Errorf("ontology: link artificial root to %s: %w", t, err)
		}
	}
	b.opts.Logger.Info("synthesized artificial root", "id", id, "level1", len(level1), "terms", level1)

	return id, nil
}

// altIndex maps alternate and merged ids to live primary ids. Alternate
// ids that collide with a primary id are ignored.
func (b *Builder) altIndex() map[TermID]TermID {
	alt := make(map[TermID]TermID, len(b.merged))
	for id, t := range b.terms {
		for _, a := range t.AltIDs {
			if _, primary := b.terms[a]; !primary {
				alt[a] = id
			}
		}
	}
	for from, to := range b.merged {
		if _, ok := b.terms[to]; ok {
			alt[from] = to
		}
	}

	return alt
}

// Build creates and freezes an Ontology from parsed terms. Obsolete terms
// are left out; parent relations pointing at absent or obsolete terms, or
// at the term itself, are skipped with a warning, and a repeated relation between the same pair
// keeps the first. Relations with a nil type are interned as is_a.
func Build(terms []*Term, pool *RelationPool, opts ...Option) (*Ontology, error) {
	b := NewBuilder(pool, opts...)
	for _, t := range terms {
		if t == nil || t.Obsolete {
			continue
		}
		if err := b.AddTerm(t); err != nil {
			return nil, err
		}
	}

	skipped := 0
	for _, t := range terms {
		if t == nil || t.Obsolete {
			continue
		}
		for _, pr := range t.Parents {
			rel := pr.Relation
			if rel == nil {
				rel = b.pool.Intern(IsA.String())
			}
			err := b.AddRelation(t.ID, pr.Target, rel)
			switch {
			case err == nil:
			case errors.Is(err, ErrUnknownTerm):
				skipped++
				b.opts.Logger.Warn("skipping relation to unknown term", "term", t.ID, "parent", pr.Target, "relation", rel.Name)
			case errors.Is(err, core.ErrSelfLoop):
				skipped++
				b.opts.Logger.Warn("skipping self relation", "term", t.ID, "relation", rel.Name)
			case errors.Is(err, core.ErrDuplicateEdge):
				b.opts.Logger.Debug("skipping repeated relation", "term", t.ID, "parent", pr.Target, "relation", rel.Name)
			default:
				return nil, err
			}
		}
	}
	recordSkipped(context.Background(), skipped)

	return b.Freeze()
}
