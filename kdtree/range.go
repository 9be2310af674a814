package kdtree

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/puzzlekit/geom"
)

// RangeIter lazily yields the stored points inside a query box. It borrows
// the tree, which must not be modified while the iterator is in use.
type RangeIter struct {
	query geom.Box
	stack []*node
}

// Range starts an orthogonal range query over q (faces inclusive).
// Returns geom.ErrDimension if q does not match the tree dimension.
func (t *Tree) Range(q geom.Box) (*RangeIter, error) {
	if q.Dims() != t.dim {
		return nil, fmt.Errorf("%w: query box has %d dims, want %d", geom.ErrDimension, q.Dims(), t.dim)
	}
	it := &RangeIter{query: q}
	if t.root != nil {
		it.stack = append(it.stack, t.root)
	}
	return it, nil
}

// Next returns the next point in range, or false when exhausted.
func (it *RangeIter) Next() (Point, bool) {
	for len(it.stack) > 0 {
		n := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]
		if !n.box.Intersects(it.query) {
			continue
		}
		split := n.pivot.Coords[n.axis]
		if n.right != nil && it.query.Max[n.axis] >= split {
			it.stack = append(it.stack, n.right)
		}
		if n.left != nil && it.query.Min[n.axis] <= split {
			it.stack = append(it.stack, n.left)
		}
		if it.query.Contains(n.pivot.Coords) {
			return n.pivot, true
		}
	}
	return Point{}, false
}

// All adapts the iterator for range-over-func.
func (it *RangeIter) All() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for {
			p, ok := it.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

// RangeAll collects every point inside q.
func (t *Tree) RangeAll(q geom.Box) ([]Point, error) {
	it, err := t.Range(q)
	if err != nil {
		return nil, err
	}
	var out []Point
	for p := range it.All() {
		out = append(out, p)
	}
	return out, nil
}

// Within returns the points whose Chebyshev distance to center is ≤ dist.
func (t *Tree) Within(center []int64, dist int64) ([]Point, error) {
	if err := checkDim(t.dim, center, 0); err != nil {
		return nil, err
	}
	lo := make([]int64, len(center))
	hi := make([]int64, len(center))
	for i, c := range center {
		lo[i], hi[i] = c-dist, c+dist
	}
	q, err := geom.NewBox(lo, hi)
	if err != nil {
		return nil, err
	}
	return t.RangeAll(q)
}
