// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/ontodag/core"
)

const (
	methodRandomDAG      = "RandomDAG"
	minRandomDAGVertices = 1
)

// RandomDAG appends n vertices and includes each forward pair i → j (i < j)
// independently with probability p. Vertices 1..n-1 without a sampled
// parent are linked to v0, so the result has a single source.
//
// Determinism: pairs are tried i asc, then j asc.
// Complexity: O(n²) Bernoulli trials.
func RandomDAG(n int, p float64) Constructor {
	return func(g *core.Graph[string, struct{}], cfg builderConfig) error {
		// 1) validate
		if n < minRandomDAGVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomDAG, n, minRandomDAGVertices, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomDAG, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomDAG, ErrNeedRandSource)
		}

		// 2) vertices
		ids, err := addVertices(g, cfg, methodRandomDAG, n)
		if err != nil {
			return err
		}

		// 3) forward edges
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == 1 || (p > 0 && cfg.rng.Float64() < p)
				if !keep {
					continue
				}
				if err := g.AddEdge(ids[i], ids[j], struct{}{}); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodRandomDAG, ids[i], ids[j], err)
				}
			}
		}

		// 4) single source
		for j := 1; j < n; j++ {
			if g.InDegree(ids[j]) == 0 {
				if err := g.AddEdge(ids[0], ids[j], struct{}{}); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodRandomDAG, ids[0], ids[j], err)
				}
			}
		}

		return nil
	}
}
