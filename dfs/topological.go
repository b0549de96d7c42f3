// TopologicalSort computes a linear ordering of vertices such that for
// every directed edge u→v, u appears before v in the ordering.
// If the graph contains a cycle, ErrCycleDetected is returned.
//
// Complexity:
//
//   - Time:   O(V + E) (each vertex and edge visited once)
//   - Memory: O(V)     (explicit stack and state map)

package dfs

import (
	"fmt"

	"github.com/katalvlaran/ontodag/core"
)

// frame is one level of the explicit DFS stack: a Gray vertex and the
// position of the next child to explore.
type frame[V comparable] struct {
	id       V
	children []V
	next     int
}

// topoSorter encapsulates state for a topological sort traversal.
type topoSorter[V comparable, D any] struct {
	graph *core.Graph[V, D] // the graph being sorted
	state map[V]int         // visitation state: White (absent), Gray, Black
	order []V               // recorded post-order sequence
}

// TopologicalSort visits every vertex of g in topological order (sources
// first). Either every vertex is visited, or, when g has a cycle, none is and
// an error wrapping ErrCycleDetected is returned.
func TopologicalSort[V comparable, D any](g *core.Graph[V, D], visit func(v V)) error {
	order, err := TopologicalOrder(g)
	if err != nil {
		return err
	}
	if visit == nil {
		return nil
	}
	for _, v := range order {
		visit(v)
	}

	return nil
}

// TopologicalOrder returns the vertices of g in topological order.
// Roots are tried in vertex insertion order, so the result is deterministic.
func TopologicalOrder[V comparable, D any](g *core.Graph[V, D]) ([]V, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Initialize sorter state
	verts := g.Vertices()
	sorter := &topoSorter[V, D]{
		graph: g,
		state: make(map[V]int, len(verts)),
		order: make([]V, 0, len(verts)),
	}
	// 3. Drive DFS from every unvisited vertex
	for _, v := range verts {
		if sorter.state[v] == White {
			if err := sorter.visit(v); err != nil {
				return nil, err
			}
		}
	}
	// 4. Reverse post-order to produce topological order
	for i, j := 0, len(sorter.order)-1; i < j; i, j = i+1, j-1 {
		sorter.order[i], sorter.order[j] = sorter.order[j], sorter.order[i]
	}

	return sorter.order, nil
}

// visit performs an iterative DFS from root, marking states and detecting cycles.
func (t *topoSorter[V, D]) visit(root V) error {
	stack := []frame[V]{t.enter(root)}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		// 1. All children explored: finish the vertex.
		if top.next == len(top.children) {
			t.state[top.id] = Black
			t.order = append(t.order, top.id)
			stack = stack[:len(stack)-1]
			continue
		}
		// 2. Advance to the next child.
		child := top.children[top.next]
		top.next++
		switch t.state[child] {
		case Gray:
			// back-edge: child is on the current path
			return fmt.Errorf("%w: edge %v → %v closes a cycle", ErrCycleDetected, top.id, child)
		case Black:
			continue
		default:
			stack = append(stack, t.enter(child))
		}
	}

	return nil
}

// enter marks id Gray and builds its stack frame.
func (t *topoSorter[V, D]) enter(id V) frame[V] {
	t.state[id] = Gray

	return frame[V]{id: id, children: t.graph.Children(id)}
}
