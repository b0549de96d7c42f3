package annotation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ontodag/annotation"
	"github.com/katalvlaran/ontodag/ontology"
)

func id(n int) ontology.TermID { return ontology.NewTermID("GO", n) }

// propagationOntology: T1 root, T2 -regulates-> T1, T3 -is_a-> T1.
func propagationOntology(t *testing.T) *ontology.Ontology {
	t.Helper()
	pool := ontology.NewRelationPool()
	o, err := ontology.Build([]*ontology.Term{
		{ID: id(1)},
		{ID: id(2), Parents: []ontology.ParentRelation{{Target: id(1), Relation: pool.Intern("regulates")}}},
		{ID: id(3), Parents: []ontology.ParentRelation{{Target: id(1), Relation: pool.Intern("is_a")}}},
	}, pool)
	require.NoError(t, err)

	return o
}

// diamondOntology: 1 ← {2, 3} ← 4, all is_a.
func diamondOntology(t *testing.T) *ontology.Ontology {
	t.Helper()
	pool := ontology.NewRelationPool()
	isA := pool.Intern("is_a")
	p := func(n int) ontology.ParentRelation { return ontology.ParentRelation{Target: id(n), Relation: isA} }
	o, err := ontology.Build([]*ontology.Term{
		{ID: id(1)},
		{ID: id(2), Parents: []ontology.ParentRelation{p(1)}},
		{ID: id(3), Parents: []ontology.ParentRelation{p(1)}},
		{ID: id(4), Parents: []ontology.ParentRelation{p(2), p(3)}},
	}, pool)
	require.NoError(t, err)

	return o
}

// TestPush_Modes checks that non-propagating relations block items only
// when propagation rules are respected.
func TestPush_Modes(t *testing.T) {
	o := propagationOntology(t)

	tests := []struct {
		name string
		mode annotation.Mode
		want []annotation.ItemID
	}{
		{"all", annotation.ModeAll, []annotation.ItemID{"g1", "g2"}},
		{"propagating", annotation.ModePropagating, []annotation.ItemID{"g2"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := annotation.New(o, annotation.WithMode(tc.mode))
			e.Push("g1", id(2))
			e.Push("g2", id(3))

			rec, ok := e.Annotated(id(1))
			require.True(t, ok)
			assert.Equal(t, tc.want, rec.Total())
			assert.Equal(t, len(tc.want), rec.TotalCount())
			assert.Zero(t, rec.DirectCount())

			rec, ok = e.Annotated(id(2))
			require.True(t, ok)
			assert.Equal(t, []annotation.ItemID{"g1"}, rec.Direct())
			assert.True(t, rec.ContainsDirect("g1"))
			assert.True(t, rec.Contains("g1"))
			assert.Equal(t, tc.mode, e.Mode())
		})
	}
}

// TestPush_DefaultMode respects propagation rules.
func TestPush_DefaultMode(t *testing.T) {
	e := annotation.New(propagationOntology(t))
	e.Push("g1", id(2))

	_, ok := e.Annotated(id(1))
	assert.False(t, ok)
	assert.Equal(t, annotation.ModePropagating, e.Mode())
}

// TestPush_Idempotent pushes the same annotation twice.
func TestPush_Idempotent(t *testing.T) {
	e := annotation.New(diamondOntology(t))

	e.Push("g", id(4), id(4))
	before := map[ontology.TermID]int{}
	for _, term := range e.AllAnnotatedTerms() {
		rec, _ := e.Annotated(term)
		before[term] = rec.TotalCount()
	}
	e.Push("g", id(4))

	for _, term := range e.AllAnnotatedTerms() {
		rec, _ := e.Annotated(term)
		assert.Equal(t, before[term], rec.TotalCount(), "%s", term)
		assert.LessOrEqual(t, rec.DirectCount(), 1)
	}
	rec, ok := e.Annotated(id(4))
	require.True(t, ok)
	assert.Equal(t, []annotation.ItemID{"g"}, rec.Direct())
	assert.Equal(t, 1, e.ItemCount())
}

// TestPush_Diamond records an item reaching the root over two paths once.
func TestPush_Diamond(t *testing.T) {
	e := annotation.New(diamondOntology(t))
	e.PushAll([]annotation.Pair{
		{Item: "a", Term: id(4)},
		{Item: "b", Term: id(2)},
		{Item: "a", Term: id(3)},
	})

	assert.Equal(t, []ontology.TermID{id(1), id(2), id(3), id(4)}, e.AllAnnotatedTerms())
	assert.Equal(t, 4, e.TotalAnnotatedTermCount())
	assert.Equal(t, 2, e.ItemCount())
	assert.Equal(t, []annotation.ItemID{"a", "b"}, e.ItemsAnnotatedTo(id(1)))
	assert.Equal(t, []annotation.ItemID{"a"}, e.ItemsAnnotatedTo(id(4)))
	assert.Nil(t, e.ItemsAnnotatedTo(id(99)))

	rec, _ := e.Annotated(id(3))
	assert.Equal(t, []annotation.ItemID{"a"}, rec.Direct())
	rec, _ = e.Annotated(id(1))
	assert.Equal(t, 2, rec.TotalCount())
	assert.Zero(t, rec.DirectCount())
}

// TestPush_Empty ignores an item without terms.
func TestPush_Empty(t *testing.T) {
	e := annotation.New(diamondOntology(t))
	e.Push("g")

	assert.Zero(t, e.ItemCount())
	assert.Empty(t, e.AllAnnotatedTerms())
}

func TestParseMode(t *testing.T) {
	m, err := annotation.ParseMode("all")
	require.NoError(t, err)
	assert.Equal(t, annotation.ModeAll, m)
	m, err = annotation.ParseMode("propagating")
	require.NoError(t, err)
	assert.Equal(t, annotation.ModePropagating, m)
	_, err = annotation.ParseMode("some")
	assert.ErrorIs(t, err, annotation.ErrBadMode)
	assert.Equal(t, "all", annotation.ModeAll.String())
}
