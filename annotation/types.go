package annotation

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/ontodag/ontology"
)

// ItemID identifies an annotated item (gene, protein, ...).
type ItemID string

// Mode selects which relations carry annotations upward.
type Mode int

const (
	// ModePropagating follows only propagating relations.
	ModePropagating Mode = iota
	// ModeAll follows every relation.
	ModeAll
)

// ErrBadMode is returned by ParseMode for unknown names.
var ErrBadMode = errors.New("annotation: unknown propagation mode")

func (m Mode) String() string {
	switch m {
	case ModePropagating:
		return "propagating"
	case ModeAll:
		return "all"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode maps "propagating" and "all" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "propagating":
		return ModePropagating, nil
	case "all":
		return ModeAll, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadMode, s)
	}
}

// Pair is one direct annotation.
type Pair struct {
	Item ItemID
	Term ontology.TermID
}

// Options configures an Engine.
type Options struct {
	Mode   Mode
	Logger *log.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns ModePropagating with a silent logger.
func DefaultOptions() Options {
	return Options{Mode: ModePropagating, Logger: log.New(io.Discard)}
}

// WithMode sets the propagation mode.
func WithMode(m Mode) Option {
	return func(o *Options) { o.Mode = m }
}

// WithLogger routes push diagnostics to l. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Annotations is the record of one term.
type Annotations struct {
	direct    []ItemID
	directSet map[ItemID]struct{}
	total     map[ItemID]struct{}
}

func newAnnotations() *Annotations {
	return &Annotations{
		directSet: make(map[ItemID]struct{}),
		total:     make(map[ItemID]struct{}),
	}
}

// Direct returns the items annotated exactly to the term, in first-push
// order. The list is set-like: pushing an item to the same term again does
// not repeat it.
func (a *Annotations) Direct() []ItemID {
	return slices.Clone(a.direct)
}

// DirectCount returns the number of directly annotated items.
func (a *Annotations) DirectCount() int {
	return len(a.direct)
}

// Total returns the items annotated to the term or below it, sorted.
func (a *Annotations) Total() []ItemID {
	out := make([]ItemID, 0, len(a.total))
	for it := range a.total {
		out = append(out, it)
	}
	slices.Sort(out)

	return out
}

// TotalCount returns the number of totally annotated items.
func (a *Annotations) TotalCount() int {
	return len(a.total)
}

// Contains reports whether item is in the total set.
func (a *Annotations) Contains(item ItemID) bool {
	_, ok := a.total[item]

	return ok
}

// ContainsDirect reports whether item was annotated directly to the term.
func (a *Annotations) ContainsDirect(item ItemID) bool {
	_, ok := a.directSet[item]

	return ok
}
