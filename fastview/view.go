package fastview

import (
	"context"
	"slices"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/ontodag/bfs"
	"github.com/katalvlaran/ontodag/core"
	"github.com/katalvlaran/ontodag/ontology"
)

var tracer = otel.Tracer("ontodag.fastview")

// View answers ancestor/descendant queries by index lookup.
type View struct {
	onto        *ontology.Ontology
	arena       *core.Frozen[ontology.TermID, *ontology.RelationType]
	ancestors   [][]int
	descendants [][]int
}

// Build is BuildContext with a background context.
func Build(o *ontology.Ontology, opts ...Option) *View {
	v, _ := BuildContext(context.Background(), o, opts...)

	return v
}

// BuildContext computes the closure lists of every term of o.
//
// Implementation:
//   - Stage 1: Split 0..n into contiguous chunks, one per worker. With the
//     default single worker everything runs on the caller's goroutine.
//   - Stage 2: For every index run BFS over In (ancestors) and Out
//     (descendants) of the arena, then sort both lists.
//   - Stage 3: Record build duration and closure sizes.
//
// Returns ctx.Err() if ctx is cancelled before all chunks ran.
//
// Complexity: O(V·(V + E)) time worst case, O(Σ closure sizes) space.
func BuildContext(ctx context.Context, o *ontology.Ontology, opts ...Option) (*View, error) {
	cfg := DefaultOptions()
	for _, fn := range opts {
		fn(&cfg)
	}
	ctx, span := tracer.Start(ctx, "fastview.Build")
	defer span.End()
	start := time.Now()

	arena := o.Arena()
	n := arena.Len()
	v := &View{
		onto:        o,
		arena:       arena,
		ancestors:   make([][]int, n),
		descendants: make([][]int, n),
	}

	// Stage 1–2: each worker owns a disjoint index range.
	workers := max(min(cfg.Workers, n), 1)
	if err := v.fill(ctx, workers); err != nil {
		span.RecordError(err)

		return nil, err
	}

	// Stage 3
	var pairs int
	for i := range v.ancestors {
		pairs += len(v.ancestors[i])
	}
	span.SetAttributes(attribute.Int("terms", n), attribute.Int("ancestor_pairs", pairs))
	recordBuild(ctx, time.Since(start), n, pairs)
	cfg.Logger.Debug("fast view built", "terms", n, "ancestor_pairs", pairs, "workers", workers, "took", time.Since(start))

	return v, nil
}

// fill computes the closure lists, inline for one worker and over an
// errgroup otherwise.
func (v *View) fill(ctx context.Context, workers int) error {
	n := len(v.ancestors)
	chunk := func(ctx context.Context, lo, hi int) error {
		for i := lo; i < hi; i++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			v.ancestors[i] = closureOf(i, v.arena.In)
			v.descendants[i] = closureOf(i, v.arena.Out)
		}

		return nil
	}
	if workers == 1 {
		return chunk(ctx, 0, n)
	}

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo, hi := w*n/workers, (w+1)*n/workers
		g.Go(func() error { return chunk(gctx, lo, hi) })
	}

	return g.Wait()
}

func closureOf(i int, next bfs.NeighborSelector[int]) []int {
	out := bfs.Collect([]int{i}, next)
	slices.Sort(out)

	return out
}

// Len returns the number of indexed terms.
func (v *View) Len() int {
	return len(v.ancestors)
}

// Index returns the dense index of id.
func (v *View) Index(id ontology.TermID) (int, bool) {
	return v.arena.Index(id)
}

// Term returns the id at index i.
func (v *View) Term(i int) ontology.TermID {
	return v.arena.Vertex(i)
}

// Ontology returns the ontology the view was built from.
func (v *View) Ontology() *ontology.Ontology {
	return v.onto
}

func (v *View) valid(i int) bool {
	return i >= 0 && i < len(v.ancestors)
}

// IsAncestor reports whether u is an ancestor of (or equal to) w.
func (v *View) IsAncestor(u, w int) bool {
	if !v.valid(u) || !v.valid(w) {
		return false
	}
	_, ok := slices.BinarySearch(v.ancestors[w], u)

	return ok
}

// IsDescendant reports whether u is a descendant of (or equal to) w.
func (v *View) IsDescendant(u, w int) bool {
	if !v.valid(u) || !v.valid(w) {
		return false
	}
	_, ok := slices.BinarySearch(v.descendants[w], u)

	return ok
}

// Ancestors returns the sorted ancestor indices of i, i included. The
// slice is shared; do not modify it.
func (v *View) Ancestors(i int) []int {
	if !v.valid(i) {
		return nil
	}

	return v.ancestors[i]
}

// Descendants returns the sorted descendant indices of i, i included. The
// slice is shared; do not modify it.
func (v *View) Descendants(i int) []int {
	if !v.valid(i) {
		return nil
	}

	return v.descendants[i]
}

// Parents returns the direct parent indices of i.
func (v *View) Parents(i int) []int {
	if !v.valid(i) {
		return nil
	}

	return v.arena.In(i)
}

// Children returns the direct child indices of i.
func (v *View) Children(i int) []int {
	if !v.valid(i) {
		return nil
	}

	return v.arena.Out(i)
}

// TermIsAncestor is IsAncestor over term ids; unknown ids yield false.
func (v *View) TermIsAncestor(ancestor, term ontology.TermID) bool {
	u, ok1 := v.arena.Index(ancestor)
	w, ok2 := v.arena.Index(term)

	return ok1 && ok2 && v.IsAncestor(u, w)
}

// TermAncestors returns the ancestor ids of id, id included, in index order.
func (v *View) TermAncestors(id ontology.TermID) []ontology.TermID {
	i, ok := v.arena.Index(id)
	if !ok {
		return nil
	}

	return v.terms(v.ancestors[i])
}

// TermDescendants returns the descendant ids of id, id included, in index order.
func (v *View) TermDescendants(id ontology.TermID) []ontology.TermID {
	i, ok := v.arena.Index(id)
	if !ok {
		return nil
	}

	return v.terms(v.descendants[i])
}

func (v *View) terms(idx []int) []ontology.TermID {
	out := make([]ontology.TermID, len(idx))
	for k, i := range idx {
		out[k] = v.arena.Vertex(i)
	}

	return out
}
