package dfs

import "github.com/katalvlaran/ontodag/bfs"

// WalkOption configures Walk.
type WalkOption[V comparable] func(*walkOptions[V])

type walkOptions[V comparable] struct {
	onExit   func(v V) // post-order hook
	maxDepth int       // -1 = unlimited
}

// WithOnExit registers fn to run after all of a vertex's neighbors have been
// explored (post-order). It is not called for vertices left open by Stop.
func WithOnExit[V comparable](fn func(v V)) WalkOption[V] {
	return func(o *walkOptions[V]) {
		o.onExit = fn
	}
}

// WithMaxDepth stops descending below depth limit; initial vertices are at
// depth 0. A negative limit means no limit.
func WithMaxDepth[V comparable](limit int) WalkOption[V] {
	return func(o *walkOptions[V]) {
		o.maxDepth = limit
	}
}

// walker holds the state of one depth-first walk.
type walker[V comparable] struct {
	next  bfs.NeighborSelector[V]
	visit bfs.Visitor[V]
	opts  walkOptions[V]
	seen  map[V]struct{}
}

// Walk runs depth-first search from each initial vertex in caller order,
// sharing one seen-set, so every vertex is visited at most once. visit is
// called in pre-order and neighbors are explored in the order next returns
// them.
//
// Returns true if the traversal ran to exhaustion, false if visit returned
// bfs.Stop. A nil visit visits everything.
//
// Complexity: O(V + E) over the part of the graph reachable through next.
// The stack is explicit, so depth is bounded by memory, not goroutine stack.
func Walk[V comparable](initial []V, next bfs.NeighborSelector[V], visit bfs.Visitor[V], opts ...WalkOption[V]) bool {
	if visit == nil {
		visit = func(V) bfs.Signal { return bfs.Continue }
	}
	w := &walker[V]{
		next:  next,
		visit: visit,
		opts:  walkOptions[V]{maxDepth: -1},
		seen:  make(map[V]struct{}, len(initial)),
	}
	for _, opt := range opts {
		opt(&w.opts)
	}
	for _, v := range initial {
		if _, ok := w.seen[v]; ok {
			continue
		}
		if !w.tree(v) {
			return false
		}
	}

	return true
}

// tree explores everything unseen below root.
func (w *walker[V]) tree(root V) bool {
	f, ok := w.enter(root, 0)
	if !ok {
		return false
	}
	stack := []frame[V]{f}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		// 1. Neighbors exhausted: leave the vertex.
		if top.next == len(top.children) {
			if w.opts.onExit != nil {
				w.opts.onExit(top.id)
			}
			stack = stack[:len(stack)-1]
			continue
		}
		// 2. Descend into the next unseen neighbor.
		child := top.children[top.next]
		top.next++
		if _, seen := w.seen[child]; seen {
			continue
		}
		f, ok := w.enter(child, len(stack))
		if !ok {
			return false
		}
		stack = append(stack, f)
	}

	return true
}

// enter marks id seen, visits it and builds its frame. ok is false on Stop.
func (w *walker[V]) enter(id V, depth int) (frame[V], bool) {
	w.seen[id] = struct{}{}
	if w.visit(id) == bfs.Stop {
		return frame[V]{}, false
	}
	f := frame[V]{id: id}
	if w.opts.maxDepth < 0 || depth < w.opts.maxDepth {
		f.children = w.next(id)
	}

	return f, true
}

// Collect returns the vertices reached from initial, in depth-first
// pre-order.
func Collect[V comparable](initial []V, next bfs.NeighborSelector[V]) []V {
	var order []V
	Walk(initial, next, func(v V) bfs.Signal {
		order = append(order, v)
		return bfs.Continue
	})

	return order
}
