package ontology

import "fmt"

// RelationMeaning classifies a relation type.
type RelationMeaning int

const (
	Unknown RelationMeaning = iota
	IsA
	PartOf
	Regulates
	PositivelyRegulates
	NegativelyRegulates
)

// ArtificialRootRelation names the relation linking level-1 terms to a
// synthesized root.
const ArtificialRootRelation = "artificial_root"

var meaningNames = map[RelationMeaning]string{
	Unknown:             "unknown",
	IsA:                 "is_a",
	PartOf:              "part_of",
	Regulates:           "regulates",
	PositivelyRegulates: "positively_regulates",
	NegativelyRegulates: "negatively_regulates",
}

func (m RelationMeaning) String() string {
	if s, ok := meaningNames[m]; ok {
		return s
	}

	return fmt.Sprintf("RelationMeaning(%d)", int(m))
}

// MeaningOf maps an OBO relation name to its meaning; unrecognized names are Unknown.
func MeaningOf(name string) RelationMeaning {
	for m, s := range meaningNames {
		if m != Unknown && s == name {
			return m
		}
	}

	return Unknown
}

// RelationType is the shared representative of one relation name. Obtain
// it from a RelationPool; two terms using the same relation hold the same
// pointer, so identity comparison is enough.
type RelationType struct {
	Name        string
	Meaning     RelationMeaning
	Propagating bool // annotations are inherited across this relation
	id          uint16
}

// ID returns the dense pool index of the relation type.
func (r *RelationType) ID() int {
	return int(r.id)
}

func (r *RelationType) String() string {
	return r.Name
}

// RelationPool interns relation types: the first definition of a name wins
// and every later lookup returns the same *RelationType.
type RelationPool struct {
	byName map[string]*RelationType
	types  []*RelationType
}

// NewRelationPool creates an empty pool.
func NewRelationPool() *RelationPool {
	return &RelationPool{byName: make(map[string]*RelationType, 8)}
}

// Intern returns the relation type for name, creating it with defaults when
// unseen: the meaning comes from MeaningOf, and only is_a and part_of
// propagate annotations.
func (p *RelationPool) Intern(name string) *RelationType {
	m := MeaningOf(name)

	return p.Define(name, m, m == IsA || m == PartOf)
}

// Define returns the relation type for name, creating it with the given
// meaning and propagation flag when unseen. An existing entry is returned
// unchanged.
func (p *RelationPool) Define(name string, meaning RelationMeaning, propagating bool) *RelationType {
	if r, ok := p.byName[name]; ok {
		return r
	}
	r := &RelationType{Name: name, Meaning: meaning, Propagating: propagating, id: uint16(len(p.types))}
	p.byName[name] = r
	p.types = append(p.types, r)

	return r
}

// Lookup returns the relation type registered under name.
func (p *RelationPool) Lookup(name string) (*RelationType, bool) {
	r, ok := p.byName[name]

	return r, ok
}

// ByID returns the relation type with the given pool index.
func (p *RelationPool) ByID(id int) (*RelationType, bool) {
	if id < 0 || id >= len(p.types) {
		return nil, false
	}

	return p.types[id], true
}

// Len returns the number of interned relation types.
func (p *RelationPool) Len() int {
	return len(p.types)
}

// All returns the relation types in interning order.
func (p *RelationPool) All() []*RelationType {
	out := make([]*RelationType, len(p.types))
	copy(out, p.types)

	return out
}
