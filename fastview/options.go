package fastview

import (
	"io"

	"github.com/charmbracelet/log"
)

// Options configures Build.
type Options struct {
	Logger  *log.Logger
	Workers int // closure goroutines; 1 builds inline on the caller's goroutine
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a silent logger and an inline (single-threaded) build.
func DefaultOptions() Options {
	return Options{Logger: log.New(io.Discard), Workers: 1}
}

// WithLogger routes build diagnostics to l. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithWorkers fans closure computation out over n goroutines. Values
// below 2 keep the build inline.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = max(n, 1)
	}
}
