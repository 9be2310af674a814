package kdtree

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/puzzlekit/geom"
)

// ErrBadDim indicates a tree dimension below 1.
var ErrBadDim = errors.New("kdtree: dimension must be at least 1")

// Point is a coordinate vector with a caller-chosen identifier. IDs order
// the two members of an emitted Pair.
type Point struct {
	Coords []int64
	ID     int
}

// Pair is two distinct stored points and their squared distance.
// P.ID ≤ Q.ID.
type Pair struct {
	DistSq uint64
	P, Q   Point
}

// node is one tree vertex; box is the tight bounding box of the pivot and
// both subtrees.
type node struct {
	pivot       Point
	axis        int
	box         geom.Box
	left, right *node
}

func (n *node) children() [2]*node { return [2]*node{n.left, n.right} }

// Tree is a k-d tree of fixed dimension. It owns copies of its points.
type Tree struct {
	dim  int
	root *node
	n    int
}

func checkDim(dim int, p []int64, idx int) error {
	if len(p) != dim {
		return fmt.Errorf("%w: point %d has %d coords, want %d", geom.ErrDimension, idx, len(p), dim)
	}
	return nil
}

func clonePoint(p Point) Point {
	return Point{Coords: append([]int64(nil), p.Coords...), ID: p.ID}
}
