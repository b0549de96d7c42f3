package ontology

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// TermID identifies a term by prefix and number, e.g. GO:0008150.
type TermID struct {
	Prefix string
	Number int
}

// NewTermID builds a TermID.
func NewTermID(prefix string, number int) TermID {
	return TermID{Prefix: prefix, Number: number}
}

// ParseTermID parses the "PREFIX:NUMBER" form. The number may carry
// leading zeros.
func ParseTermID(s string) (TermID, error) {
	i := strings.LastIndexByte(s, ':')
	if i <= 0 || i == len(s)-1 {
		return TermID{}, fmt.Errorf("%w: %q", ErrBadTermID, s)
	}
	n, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return TermID{}, fmt.Errorf("%w: %q: %v", ErrBadTermID, s, err)
	}

	return TermID{Prefix: s[:i], Number: n}, nil
}

// MustParseTermID is ParseTermID for constants; it panics on malformed input.
func MustParseTermID(s string) TermID {
	id, err := ParseTermID(s)
	if err != nil {
		panic(err)
	}

	return id
}

// String formats the id with a seven digit zero-padded number.
func (id TermID) String() string {
	if id.Number < 0 {
		return fmt.Sprintf("%s:-%07d", id.Prefix, -id.Number)
	}

	return fmt.Sprintf("%s:%07d", id.Prefix, id.Number)
}

// Compare orders ids by prefix, then number.
func (id TermID) Compare(other TermID) int {
	if c := cmp.Compare(id.Prefix, other.Prefix); c != 0 {
		return c
	}

	return cmp.Compare(id.Number, other.Number)
}

// CompareTermIDs is TermID.Compare in function form, for slices.SortFunc.
func CompareTermIDs(a, b TermID) int {
	return a.Compare(b)
}
