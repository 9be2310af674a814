// Package bfs provides breadth-first search over implicit graphs, where a
// node is any comparable value and edges come from a neighbor function.
//
// What
//
//   - Search explores nodes in non-decreasing distance (edge count) from a
//     start node and returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (edges) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Goal/Found: the first visited node satisfying WithGoal, if any
//   - Shortest returns only the distance to the first goal node.
//   - ShortestPathNodes returns every node on any shortest path to the
//     first goal node, by walking all same-level predecessors backwards.
//   - GridDistances is a dense, map-free BFS over a grid.Grid.
//
// Determinism
//
//	Neighbors are enqueued in the order the neighbor function returns
//	them, so the visit sequence is fully reproducible.
//
// No path
//
//	A drained frontier is not an error: Found is false, or ok is false.
//
// Complexity (V = reached nodes, E = edges examined)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.Search(start, neighbors,
//	    bfs.WithMaxDepth[geom.Point2](20),
//	    bfs.WithGoal(func(p geom.Point2) bool { return p == end }),
//	)
//
// Options
//
//   - DefaultOptions(): no-op hooks, no depth limit, no filtering, no goal.
//   - WithMaxDepth(d):        stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn): skip edges for which fn(curr,neighbor)==false.
//   - WithGoal(fn):           stop at the first visited node with fn true.
//   - WithOnEnqueue(fn):      hook before a node is enqueued.
//   - WithOnVisit(fn):        hook during visit; returning error aborts.
//
// Errors
//
//   - ErrNilNeighbors     if the neighbor function is nil.
//   - ErrOptionViolation  if an Option is invalid (negative MaxDepth, nil goal).
//   - ErrNoPath           from Result.PathTo for an unreached node.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
