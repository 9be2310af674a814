// Package grid stores a rectangular lattice of byte cells and provides the
// stencil and flood-fill kernels that run over it.
//
// What:
//
//   - Grid holds Width×Height cells in row-major order; Index and
//     Coordinate convert between geom.Point2 and the linear index r·W + c.
//   - Neighbors yields the in-bounds cardinal neighbors in N, E, S, W order.
//   - Padded is a copy of the live cells with a one-cell zero border so the
//     8-neighborhood sum needs no bounds checks. NeighborSum8 is the
//     bounds-checked equivalent; both give identical results.
//   - Erode repeatedly removes live cells with fewer than threshold live
//     8-neighbors until a full pass removes nothing.
//   - Regions flood-fills maximal equal-label regions and reports area,
//     perimeter (exposed edges) and sides (corner count).
//
// Complexity:
//
//   - FromRows, Clone, Padded: O(W×H) time and memory.
//   - Erode: O(k×W×H) for k passes until the fixed point.
//   - Regions: O(W×H×d), d = 4 or 8, memory O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths (the row is named).
package grid
