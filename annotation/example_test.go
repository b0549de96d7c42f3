package annotation_test

import (
	"fmt"

	"github.com/katalvlaran/ontodag/annotation"
	"github.com/katalvlaran/ontodag/ontology"
)

// ExampleEngine_Push shows a regulates link stopping propagation.
func ExampleEngine_Push() {
	pool := ontology.NewRelationPool()
	root := ontology.MustParseTermID("GO:0008150")
	reg := ontology.MustParseTermID("GO:0050789")
	proc := ontology.MustParseTermID("GO:0009987")

	o, _ := ontology.Build([]*ontology.Term{
		{ID: root, Name: "biological_process"},
		{ID: reg, Name: "regulation of biological process",
			Parents: []ontology.ParentRelation{{Target: root, Relation: pool.Intern("regulates")}}},
		{ID: proc, Name: "cellular process",
			Parents: []ontology.ParentRelation{{Target: root, Relation: pool.Intern("is_a")}}},
	}, pool)

	e := annotation.New(o)
	e.Push("BRCA1", reg)
	e.Push("TP53", proc)

	rec, _ := e.Annotated(root)
	fmt.Println(root, rec.Total())
	// Output:
	// GO:0008150 [TP53]
}
