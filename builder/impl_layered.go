// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/ontodag/core"
)

const (
	methodLayered = "Layered"
	minLayers     = 1
	minWidth      = 1
	minFanIn      = 1
)

// Layered appends an ontology-shaped DAG: one root, then layers-1 levels of
// width vertices each. Every vertex below the root draws min(fanIn, width of
// the level above) distinct parents from the level directly above.
//
// Complexity: O(layers · width · fanIn).
func Layered(layers, width, fanIn int) Constructor {
	return func(g *core.Graph[string, struct{}], cfg builderConfig) error {
		// 1) validate
		switch {
		case layers < minLayers:
			return fmt.Errorf("%s: layers=%d < min=%d: %w", methodLayered, layers, minLayers, ErrTooFewVertices)
		case width < minWidth:
			return fmt.Errorf("%s: width=%d < min=%d: %w", methodLayered, width, minWidth, ErrTooFewVertices)
		case fanIn < minFanIn:
			return fmt.Errorf("%s: fanIn=%d < min=%d: %w", methodLayered, fanIn, minFanIn, ErrTooFewVertices)
		}
		if cfg.rng == nil && layers > 2 && fanIn < width {
			return fmt.Errorf("%s: %w", methodLayered, ErrNeedRandSource)
		}

		// 2) root
		above, err := addVertices(g, cfg, methodLayered, 1)
		if err != nil {
			return err
		}

		// 3) levels
		for l := 1; l < layers; l++ {
			level, err := addVertices(g, cfg, methodLayered, width)
			if err != nil {
				return err
			}
			k := min(fanIn, len(above))
			for _, v := range level {
				for _, pi := range pick(cfg, len(above), k) {
					if err := g.AddEdge(above[pi], v, struct{}{}); err != nil {
						return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodLayered, above[pi], v, err)
					}
				}
			}
			above = level
		}

		return nil
	}
}

// pick returns k distinct indices of [0,n): all of them when k == n,
// otherwise a seeded sample.
func pick(cfg builderConfig, n, k int) []int {
	if k >= n {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	}

	return cfg.rng.Perm(n)[:k]
}
