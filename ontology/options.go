package ontology

import (
	"io"

	"github.com/charmbracelet/log"
)

// DefaultArtificialRootName is the name given to a synthesized root term.
const DefaultArtificialRootName = "artificial root"

// Options configures a Builder.
type Options struct {
	Logger             *log.Logger
	ArtificialRootName string
	// ArtificialRootPrefix overrides the id prefix of a synthesized root.
	// Empty means: take the prefix of the first level-1 term.
	ArtificialRootPrefix string
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a silent logger and the default root name.
func DefaultOptions() Options {
	return Options{
		Logger:             log.New(io.Discard),
		ArtificialRootName: DefaultArtificialRootName,
	}
}

// WithLogger routes builder diagnostics to l. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithArtificialRootName sets the name of a synthesized root.
func WithArtificialRootName(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.ArtificialRootName = name
		}
	}
}

// WithArtificialRootPrefix fixes the id prefix of a synthesized root.
func WithArtificialRootPrefix(prefix string) Option {
	return func(o *Options) {
		o.ArtificialRootPrefix = prefix
	}
}
