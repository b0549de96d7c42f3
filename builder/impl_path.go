// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/ontodag/core"
)

const (
	methodPath   = "Path"
	minPathNodes = 1
)

// Path appends a chain v0 → v1 → … → v(n-1).
//
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph[string, struct{}], cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodPath, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := g.AddEdge(ids[i-1], ids[i], struct{}{}); err != nil {
				return fmt.Errorf("%s: AddEdge(%s→%s): %w", methodPath, ids[i-1], ids[i], err)
			}
		}

		return nil
	}
}
