package annotation

import (
	"context"
	"slices"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/katalvlaran/ontodag/bfs"
	"github.com/katalvlaran/ontodag/ontology"
)

var meter = otel.Meter("ontodag.annotation")

// Engine accumulates annotations over a frozen ontology. It is
// single-writer; reads may run concurrently only once pushing is done.
type Engine struct {
	onto    *ontology.Ontology
	opts    Options
	up      bfs.NeighborSelector[ontology.TermID]
	records map[ontology.TermID]*Annotations
	items   map[ItemID]struct{}

	pushed    metric.Int64Counter
	direct    metric.Int64Counter
	propagate metric.Int64Histogram
}

// New returns an empty Engine over o.
func New(o *ontology.Ontology, opts ...Option) *Engine {
	cfg := DefaultOptions()
	for _, fn := range opts {
		fn(&cfg)
	}

	var filter ontology.RelationFilter
	if cfg.Mode == ModePropagating {
		filter = ontology.PropagatingOnly
	}

	e := &Engine{
		onto:    o,
		opts:    cfg,
		up:      o.ParentSelector(filter),
		records: make(map[ontology.TermID]*Annotations),
		items:   make(map[ItemID]struct{}),
	}
	e.initMetrics()

	return e
}

// initMetrics creates the instruments; failures leave them nil and
// recording is skipped.
func (e *Engine) initMetrics() {
	var err error
	if e.pushed, err = meter.Int64Counter(
		"annotation_items_pushed_total",
		metric.WithDescription("Items pushed into the propagation engine"),
	); err != nil {
		e.opts.Logger.Warn("annotation metrics disabled", "err", err)
		return
	}
	if e.direct, err = meter.Int64Counter(
		"annotation_direct_total",
		metric.WithDescription("Direct item-term annotations recorded"),
	); err != nil {
		e.opts.Logger.Warn("annotation metrics disabled", "err", err)
		return
	}
	if e.propagate, err = meter.Int64Histogram(
		"annotation_terms_reached",
		metric.WithDescription("Terms reached by one push"),
	); err != nil {
		e.opts.Logger.Warn("annotation metrics disabled", "err", err)
	}
}

// Mode returns the configured propagation mode.
func (e *Engine) Mode() Mode {
	return e.opts.Mode
}

// Push annotates item directly to terms and propagates it upward.
//
// Steps:
//  1. Deduplicate terms; record item in each term's direct list (once).
//  2. BFS from the seeds over eligible parent links.
//  3. Add item to the total set of every visited term, seeds included.
func (e *Engine) Push(item ItemID, terms ...ontology.TermID) {
	if len(terms) == 0 {
		return
	}
	e.items[item] = struct{}{}

	// 1. seeds
	seeds := make([]ontology.TermID, 0, len(terms))
	seen := make(map[ontology.TermID]struct{}, len(terms))
	added := 0
	for _, t := range terms {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		seeds = append(seeds, t)

		rec := e.record(t)
		if _, ok := rec.directSet[item]; !ok {
			rec.directSet[item] = struct{}{}
			rec.direct = append(rec.direct, item)
			added++
		}
	}

	// 2–3. propagation
	reached := 0
	bfs.Walk(seeds, e.up, func(t ontology.TermID) bfs.Signal {
		e.record(t).total[item] = struct{}{}
		reached++

		return bfs.Continue
	})

	ctx := context.Background()
	attrs := metric.WithAttributes(attribute.String("mode", e.opts.Mode.String()))
	if e.pushed != nil {
		e.pushed.Add(ctx, 1, attrs)
	}
	if e.direct != nil {
		e.direct.Add(ctx, int64(added), attrs)
	}
	if e.propagate != nil {
		e.propagate.Record(ctx, int64(reached), attrs)
	}
	e.opts.Logger.Debug("annotation pushed", "item", item, "direct", len(seeds), "reached", reached)
}

// PushAll groups pairs by item, in first-seen order, and pushes each item once.
func (e *Engine) PushAll(pairs []Pair) {
	var order []ItemID
	byItem := make(map[ItemID][]ontology.TermID)
	for _, p := range pairs {
		if _, ok := byItem[p.Item]; !ok {
			order = append(order, p.Item)
		}
		byItem[p.Item] = append(byItem[p.Item], p.Term)
	}
	for _, it := range order {
		e.Push(it, byItem[it]...)
	}
	e.opts.Logger.Debug("annotations loaded", "pairs", len(pairs), "items", len(order), "terms", len(e.records))
}

func (e *Engine) record(t ontology.TermID) *Annotations {
	rec, ok := e.records[t]
	if !ok {
		rec = newAnnotations()
		e.records[t] = rec
	}

	return rec
}

// Annotated returns the record of term.
func (e *Engine) Annotated(term ontology.TermID) (*Annotations, bool) {
	rec, ok := e.records[term]

	return rec, ok
}

// ItemsAnnotatedTo returns the total set of term, sorted; nil when none.
func (e *Engine) ItemsAnnotatedTo(term ontology.TermID) []ItemID {
	rec, ok := e.records[term]
	if !ok {
		return nil
	}

	return rec.Total()
}

// TotalAnnotatedTermCount returns the number of terms with at least one
// item in their total set.
func (e *Engine) TotalAnnotatedTermCount() int {
	return len(e.records)
}

// AllAnnotatedTerms returns every annotated term, sorted by id.
func (e *Engine) AllAnnotatedTerms() []ontology.TermID {
	out := make([]ontology.TermID, 0, len(e.records))
	for t := range e.records {
		out = append(out, t)
	}
	slices.SortFunc(out, ontology.CompareTermIDs)

	return out
}

// ItemCount returns the number of distinct items pushed.
func (e *Engine) ItemCount() int {
	return len(e.items)
}

// Ontology returns the ontology the engine propagates over.
func (e *Engine) Ontology() *ontology.Ontology {
	return e.onto
}
