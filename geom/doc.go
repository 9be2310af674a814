// Package geom provides the integer lattice primitives shared by the rest of
// puzzlekit: 2-D and 3-D points, cardinal directions, bounds and axis-aligned
// bounding boxes in any fixed dimension.
//
// What:
//
//   - Point2 is a (Row, Col) position in a bounded lattice. Step moves one cell
//     in a Direction and reports false instead of leaving the Bounds.
//   - Point3 is an (X, Y, Z) position with face neighbors and squared distance.
//   - UV is the 45° rotation (u, v) = (r+c, r−c) of a Point2. Manhattan distance
//     between two points equals Chebyshev distance between their UV images,
//     so a Manhattan ball becomes an axis-aligned box.
//   - Box is a D-dimensional axis-aligned bounding box over int64 coordinates
//     with point-to-box and box-to-box squared distances.
//
// Conventions:
//
//   - Coordinates fit in int32; every distance and area is accumulated in
//     64 bits. Square roots are never taken.
//   - Steps use signed deltas and a bounds check afterwards, so stepping off
//     the north or west edge never wraps around.
//
// Errors:
//
//   - ErrInvertedBox: NewBox was given min[i] > max[i] for some axis.
//   - ErrDimension:   two vectors (or a vector and a box) disagree on dimension.
//   - ErrEmptyBox:    BoxOf was given no points.
package geom
