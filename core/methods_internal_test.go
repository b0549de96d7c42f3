// SPDX-License-Identifier: MIT

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRemoveConnections_PanicsOnCorruptAdjacency forces a duplicated
// adjacency entry and expects the consistency check to fire.
func TestRemoveConnections_PanicsOnCorruptAdjacency(t *testing.T) {
	g := NewGraph[string, int]()
	g.AddVertex("a")
	g.AddVertex("b")
	if err := g.AddEdge("a", "b", 1); err != nil {
		t.Fatal(err)
	}
	// Corrupt: a second a → b entry without a catalog counterpart.
	g.nodes["a"].out = append(g.nodes["a"].out, "b")

	assert.Panics(t, func() { g.RemoveConnections("a", "b") })
}

// TestRemoveConnections_PanicsOnCatalogMismatch drops the catalog entry only.
func TestRemoveConnections_PanicsOnCatalogMismatch(t *testing.T) {
	g := NewGraph[string, int]()
	g.AddVertex("a")
	g.AddVertex("b")
	if err := g.AddEdge("a", "b", 1); err != nil {
		t.Fatal(err)
	}
	delete(g.edges, pair[string]{from: "a", to: "b"})

	assert.Panics(t, func() { g.RemoveConnections("b", "a") })
}
