// Package puzzlekit is a toolkit of algorithmic building blocks for grid,
// interval and point-cloud puzzles, plus the small kernels that exercise
// them.
//
// What is inside?
//
//	Building blocks:
//		• geom      – lattice points, directions, (u,v) rotation, bounding boxes
//		• interval  – half-open ranges: merge, overlap, piecewise remapping
//		• grid      – dense byte grids, padded stencils, flood-fill regions
//		• unionfind – disjoint sets by size with path compression
//		• segtree   – max segment tree with a leftmost-fit descent
//		• kdtree    – k-d tree with range queries and a closest-pair stream
//		• trie      – small-alphabet trie with word-break DP
//		• bfs       – BFS on implicit graphs, shortest-path node sets
//		• dijkstra  – oriented maze search with an optimal-cell back-trace
//
//	Kernels built on them:
//		• cluster   – closest-pair linking into union–find components (kdtree, unionfind)
//		• disk      – block and whole-file compaction (segtree)
//		• racetrack – wall-phasing shortcut counting (bfs, kdtree, errgroup)
//		• tower     – falling rocks with cycle detection (deephash)
//		• polygon   – largest rectangle inside a rectilinear polygon
//		• sevenseg  – scrambled seven-segment decoding
//		• vm        – a 3-bit register machine and its quine search
//
// Conventions shared by every package:
//
//   - Sentinel errors are declared as "pkg: message" and wrapped with the
//     offending coordinate, byte or dimension; test them with errors.Is.
//   - "No path" and "empty" are reported by an ok result, never an error.
//   - Options are functional (WithX); invalid values surface as
//     ErrOptionViolation from the consuming call.
//   - Structures are single-owner and not safe for concurrent mutation.
//     The only parallel scan (racetrack) reads shared state and reduces
//     per-worker counts.
//   - Nothing logs; diagnostics travel in errors.
//
//	go get github.com/katalvlaran/puzzlekit
package puzzlekit
