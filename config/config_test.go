package config_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ontodag/annotation"
	"github.com/katalvlaran/ontodag/config"
	"github.com/katalvlaran/ontodag/ontology"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "propagating", cfg.Propagation.Mode)
	assert.Equal(t, ontology.DefaultArtificialRootName, cfg.Ontology.ArtificialRoot.Name)
	assert.Empty(t, cfg.Ontology.ArtificialRoot.Prefix)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_Empty(t *testing.T) {
	cfg, err := config.Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Partial(t *testing.T) {
	cfg, err := config.Load(strings.NewReader("propagation:\n  mode: all\n"))
	require.NoError(t, err)
	assert.Equal(t, "all", cfg.Propagation.Mode)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoadFile(t *testing.T) {
	cfg, err := config.LoadFile("testdata/ontodag.yaml")
	require.NoError(t, err)
	assert.Equal(t, "all", cfg.Propagation.Mode)
	assert.Equal(t, "HP", cfg.Ontology.ArtificialRoot.Prefix)
	assert.Equal(t, "all", cfg.Ontology.ArtificialRoot.Name)
	assert.Equal(t, 2, cfg.FastView.Workers)
	assert.Equal(t, "json", cfg.Log.Format)

	_, err = config.LoadFile("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"mode", "propagation:\n  mode: sometimes\n"},
		{"level", "log:\n  level: loud\n"},
		{"format", "log:\n  format: xml\n"},
		{"root name", "ontology:\n  artificial_root:\n    name: \"\"\n"},
		{"root prefix", "ontology:\n  artificial_root:\n    prefix: \"GO:\"\n"},
		{"workers", "fastview:\n  workers: -1\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(strings.NewReader(tc.doc))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	_, err := config.Load(strings.NewReader("unknown: 1\n"))
	assert.Error(t, err)
	_, err = config.Load(strings.NewReader("propagation: [\n"))
	assert.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Format = "json"
	var buf bytes.Buffer
	logger, err := cfg.NewLogger(&buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("shown", "terms", 3)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"terms":3`)
}

// TestOptions wires a loaded config into an ontology and an engine.
func TestOptions(t *testing.T) {
	cfg, err := config.LoadFile("testdata/ontodag.yaml")
	require.NoError(t, err)
	var buf bytes.Buffer
	logger, err := cfg.NewLogger(&buf)
	require.NoError(t, err)

	g1, g2 := ontology.NewTermID("GO", 1), ontology.NewTermID("GO", 2)
	o, err := ontology.Build([]*ontology.Term{{ID: g1}, {ID: g2}}, nil, cfg.OntologyOptions(logger)...)
	require.NoError(t, err)
	root, _ := o.Root()
	assert.Equal(t, ontology.NewTermID("HP", 0), root)
	term, _ := o.Get(root)
	assert.Equal(t, "all", term.Name)
	assert.Contains(t, buf.String(), "synthesized artificial root")

	opts, err := cfg.AnnotationOptions(logger)
	require.NoError(t, err)
	e := annotation.New(o, opts...)
	assert.Equal(t, annotation.ModeAll, e.Mode())
	assert.Len(t, cfg.FastViewOptions(logger), 2)
}
