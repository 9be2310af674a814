// Package bfs provides breadth-first search over implicit graphs,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores nodes in increasing distance from a start node,
// with optional hooks, depth limiting, neighbor filtering and a goal.
package bfs

import (
	"fmt"
)

// queueItem pairs a node with its BFS depth.
type queueItem[N comparable] struct {
	node  N
	depth int
}

// walker encapsulates mutable BFS state.
type walker[N comparable] struct {
	neighbors func(N) []N
	opts      Options[N]
	queue     []queueItem[N]
	res       *Result[N]
}

// Search runs breadth-first search from start, expanding nodes with
// neighbors and applying any number of functional Options.
// Returns ErrNilNeighbors, ErrOptionViolation for bad options, or any
// user-supplied hook error (wrapped).
func Search[N comparable](start N, neighbors func(N) []N, opts ...Option[N]) (*Result[N], error) {
	if neighbors == nil {
		return nil, ErrNilNeighbors
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions[N]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker[N]{
		neighbors: neighbors,
		opts:      o,
		res: &Result[N]{
			Depth:  make(map[N]int),
			Parent: make(map[N]N),
		},
	}

	// Seed queue with start node (no parent)
	w.enqueue(start, 0)
	// Main loop
	return w.res, w.loop()
}

// enqueue records n at depth d, calls OnEnqueue, and adds it to the queue.
func (w *walker[N]) enqueue(n N, d int) {
	w.res.Depth[n] = d
	w.opts.OnEnqueue(n, d)
	w.queue = append(w.queue, queueItem[N]{node: n, depth: d})
}

// loop processes the queue until empty, goal, or hook error.
func (w *walker[N]) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.node)
		if err := w.opts.OnVisit(item.node, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.node, err)
		}
		if w.opts.Goal != nil && w.opts.Goal(item.node) {
			w.res.Goal, w.res.Found = item.node, true
			return nil
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each
// unseen neighbor.
func (w *walker[N]) enqueueNeighbors(item queueItem[N]) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.neighbors(item.node) {
		if !w.opts.FilterNeighbor(item.node, nbr) {
			continue
		}
		// first time seen?
		if _, seen := w.res.Depth[nbr]; !seen {
			w.res.Parent[nbr] = item.node
			w.enqueue(nbr, nextDepth)
		}
	}
}

// Shortest returns the fewest edges from start to a node satisfying goal.
// ok is false when the frontier drains first.
func Shortest[N comparable](start N, neighbors func(N) []N, goal func(N) bool) (dist int, ok bool, err error) {
	res, err := Search(start, neighbors, WithGoal(goal))
	if err != nil || !res.Found {
		return 0, false, err
	}
	return res.Depth[res.Goal], true, nil
}

// ShortestPathNodes returns every node lying on some shortest path from
// start to the first goal node reached, and that path's length.
//
// Steps:
//  1. Run BFS, recording for each node all neighbors one level closer to
//     start that reach it (not only the BFS-tree parent).
//  2. Stop when the first goal node is dequeued; every node at a smaller
//     depth has been expanded, so its predecessor lists are complete.
//  3. Walk the predecessor lists back from the goal with a stack.
func ShortestPathNodes[N comparable](start N, neighbors func(N) []N, goal func(N) bool) (nodes []N, dist int, ok bool, err error) {
	if neighbors == nil {
		return nil, 0, false, ErrNilNeighbors
	}
	if goal == nil {
		return nil, 0, false, fmt.Errorf("%w: nil goal predicate", ErrOptionViolation)
	}
	depth := map[N]int{start: 0}
	preds := map[N][]N{}
	queue := []N{start}
	var target N
	found := false
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if goal(u) {
			target, found = u, true
			break
		}
		du := depth[u]
		for _, v := range neighbors(u) {
			dv, seen := depth[v]
			if !seen {
				depth[v] = du + 1
				queue = append(queue, v)
				dv = du + 1
			}
			if dv == du+1 {
				preds[v] = append(preds[v], u)
			}
		}
	}
	if !found {
		return nil, 0, false, nil
	}

	on := map[N]bool{target: true}
	nodes = []N{target}
	stack := []N{target}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, u := range preds[v] {
			if !on[u] {
				on[u] = true
				nodes = append(nodes, u)
				stack = append(stack, u)
			}
		}
	}
	return nodes, depth[target], true, nil
}
