// Package bfs provides breadth-first search with an explicit queue,
// a seen-set and Continue/Stop visitors.
package bfs

import "github.com/katalvlaran/ontodag/core"

// walker encapsulates mutable BFS state.
type walker[V comparable] struct {
	next  NeighborSelector[V]
	visit Visitor[V]
	queue []V
	seen  map[V]struct{}
}

// Walk runs breadth-first search from initial, asking next for the neighbors
// of every visited vertex and calling visit once per vertex.
//
// Returns true if the traversal ran to exhaustion, false if visit returned Stop.
// A nil visit visits everything.
func Walk[V comparable](initial []V, next NeighborSelector[V], visit Visitor[V]) bool {
	if visit == nil {
		visit = func(V) Signal { return Continue }
	}
	w := &walker[V]{
		next:  next,
		visit: visit,
		queue: make([]V, 0, len(initial)),
		seen:  make(map[V]struct{}, len(initial)),
	}
	// Seed the queue with the initial vertices in caller order.
	for _, v := range initial {
		w.enqueue(v)
	}

	return w.loop()
}

// enqueue marks v seen and appends it to the queue, once.
func (w *walker[V]) enqueue(v V) {
	if _, ok := w.seen[v]; ok {
		return
	}
	w.seen[v] = struct{}{}
	w.queue = append(w.queue, v)
}

// loop processes the queue until it drains or the visitor stops.
func (w *walker[V]) loop() bool {
	for head := 0; head < len(w.queue); head++ {
		v := w.queue[head]
		if w.visit(v) == Stop {
			return false
		}
		for _, nbr := range w.next(v) {
			w.enqueue(nbr)
		}
	}

	return true
}

// Collect returns the vertices reached from initial, in visit order.
func Collect[V comparable](initial []V, next NeighborSelector[V]) []V {
	var order []V
	Walk(initial, next, func(v V) Signal {
		order = append(order, v)
		return Continue
	})

	return order
}

// Reachable returns the set of vertices reached from initial, initial included.
func Reachable[V comparable](initial []V, next NeighborSelector[V]) map[V]struct{} {
	set := make(map[V]struct{})
	Walk(initial, next, func(v V) Signal {
		set[v] = struct{}{}
		return Continue
	})

	return set
}

// ExistsPath reports whether dest can be reached from source following
// outgoing edges. ExistsPath(v, v) is true for every vertex of g.
// It is false when source is absent.
//
// Complexity: O(V + E) worst case; stops as soon as dest is visited.
func ExistsPath[V comparable, D any](g *core.Graph[V, D], source, dest V) bool {
	if !g.ContainsVertex(source) {
		return false
	}
	found := false
	Walk([]V{source}, Children(g), func(v V) Signal {
		if v == dest {
			found = true
			return Stop
		}

		return Continue
	})

	return found
}
