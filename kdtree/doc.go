// Package kdtree provides a median-split k-d tree over integer points of a
// fixed dimension, with lazy orthogonal range queries and a lazy stream of
// point pairs in non-decreasing squared Euclidean distance.
//
// What:
//
//   - New bulk-builds a balanced tree: each level selects the median on axis
//     depth mod D with an in-place three-way quickselect, then recurses on
//     both halves. Runs of equal coordinates do not degrade the select.
//   - Insert adds one point below the existing nodes without rebalancing.
//   - Every node stores the tight bounding box of its subtree.
//   - Range walks the tree with an explicit stack, pruning subtrees whose
//     box misses the query. Every point inside the box is yielded once.
//   - ClosestPairs runs a best-first search over a min-heap of three item
//     kinds, each keyed by a lower bound on the squared distance of the
//     pairs it still represents:
//
//     point–point  the exact distance of one pair; popped items are emitted.
//     point–node   a point against a subtree; bound is box.DistSqPoint.
//     node–node    two subtrees, or one subtree against itself; bound is
//     box.DistSqBox, 0 for a subtree against itself.
//
//     A self node–node item splits into pivot×child, child×child and
//     left×right items. A node–node item over distinct subtrees splits the
//     one with the larger box extent. A point–node item splits into the
//     pair with the node's pivot and one item per child. Child bounds never
//     undercut their parent's, so pops come out in key order and emitted
//     pairs are non-decreasing. Ties are broken by kind (pair first) and
//     then by push order, so the stream is deterministic.
//
// Emitted pairs are normalized so P.ID ≤ Q.ID. Consuming the whole stream
// yields each of the C(n,2) unordered pairs exactly once.
//
// Complexity:
//
//   - New: O(n log n) expected. Insert: O(depth).
//   - Range: O(√n + k) typical for k hits in 2-D.
//   - ClosestPairs: O(log h) per heap operation, h the heap size; taking
//     the first k pairs touches far fewer than n² items on spread-out data.
//
// Errors:
//
//   - ErrBadDim: dimension < 1.
//   - geom.ErrDimension: a point or query box of the wrong dimension
//     (the offending index and sizes are named).
package kdtree
