// Package config loads the YAML settings shared by the ontology builder,
// the annotation engine and the fast view, and builds their loggers.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ontodag/annotation"
	"github.com/katalvlaran/ontodag/fastview"
	"github.com/katalvlaran/ontodag/ontology"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config is the root document.
type Config struct {
	Propagation PropagationConfig `yaml:"propagation"`
	Ontology    OntologyConfig    `yaml:"ontology"`
	FastView    FastViewConfig    `yaml:"fastview"`
	Log         LogConfig         `yaml:"log"`
}

// PropagationConfig selects the annotation propagation mode.
type PropagationConfig struct {
	Mode string `yaml:"mode" validate:"oneof=all propagating"`
}

// OntologyConfig tunes ontology freezing.
type OntologyConfig struct {
	ArtificialRoot ArtificialRootConfig `yaml:"artificial_root"`
}

// ArtificialRootConfig names a synthesized root. An empty prefix takes the
// prefix of the first level-1 term.
type ArtificialRootConfig struct {
	Prefix string `yaml:"prefix" validate:"omitempty,excludes=:"`
	Name   string `yaml:"name" validate:"required"`
}

// FastViewConfig bounds fast view construction. Zero or one worker builds
// inline.
type FastViewConfig struct {
	Workers int `yaml:"workers" validate:"gte=0,lte=1024"`
}

// LogConfig configures the charmbracelet logger.
type LogConfig struct {
	Level     string `yaml:"level" validate:"oneof=debug info warn error"`
	Format    string `yaml:"format" validate:"oneof=text json logfmt"`
	Timestamp bool   `yaml:"timestamp"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Propagation: PropagationConfig{Mode: annotation.ModePropagating.String()},
		Ontology: OntologyConfig{
			ArtificialRoot: ArtificialRootConfig{Name: ontology.DefaultArtificialRootName},
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Load decodes YAML from r over the defaults and validates the result.
// Unknown keys are rejected. An empty document yields the defaults.
func Load(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadFile is Load over the file at path.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	cfg, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks every field constraint.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// NewLogger returns a logger writing to w at the configured level and format.
func (c *Config) NewLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: log level: %v", ErrInvalid, err)
	}
	formatter := log.TextFormatter
	switch c.Log.Format {
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: c.Log.Timestamp,
	}), nil
}

// OntologyOptions translates the ontology section into builder options.
func (c *Config) OntologyOptions(logger *log.Logger) []ontology.Option {
	return []ontology.Option{
		ontology.WithLogger(logger),
		ontology.WithArtificialRootName(c.Ontology.ArtificialRoot.Name),
		ontology.WithArtificialRootPrefix(c.Ontology.ArtificialRoot.Prefix),
	}
}

// AnnotationOptions translates the propagation section into engine options.
func (c *Config) AnnotationOptions(logger *log.Logger) ([]annotation.Option, error) {
	mode, err := annotation.ParseMode(c.Propagation.Mode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return []annotation.Option{annotation.WithMode(mode), annotation.WithLogger(logger)}, nil
}

// FastViewOptions translates the fastview section into build options.
func (c *Config) FastViewOptions(logger *log.Logger) []fastview.Option {
	return []fastview.Option{fastview.WithLogger(logger), fastview.WithWorkers(c.FastView.Workers)}
}
