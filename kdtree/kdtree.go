package kdtree

import (
	"github.com/katalvlaran/puzzlekit/geom"
)

// New bulk-builds a balanced tree over copies of points.
// Returns ErrBadDim if dim < 1 and geom.ErrDimension if any point has the
// wrong number of coordinates. An empty point list gives an empty tree.
func New(dim int, points []Point) (*Tree, error) {
	if dim < 1 {
		return nil, ErrBadDim
	}
	pts := make([]Point, len(points))
	for i, p := range points {
		if err := checkDim(dim, p.Coords, i); err != nil {
			return nil, err
		}
		pts[i] = clonePoint(p)
	}
	t := &Tree{dim: dim, n: len(pts)}
	t.root = t.build(pts, 0)
	return t, nil
}

// FromCoords builds a tree whose point IDs are the slice indices.
func FromCoords(dim int, coords [][]int64) (*Tree, error) {
	pts := make([]Point, len(coords))
	for i, c := range coords {
		pts[i] = Point{Coords: c, ID: i}
	}
	return New(dim, pts)
}

func (t *Tree) build(pts []Point, depth int) *node {
	if len(pts) == 0 {
		return nil
	}
	axis := depth % t.dim
	m := len(pts) / 2
	selectNth(pts, m, axis)

	box := geom.PointBox(pts[0].Coords)
	for _, p := range pts[1:] {
		box.Extend(p.Coords)
	}
	return &node{
		pivot: pts[m],
		axis:  axis,
		box:   box,
		left:  t.build(pts[:m], depth+1),
		right: t.build(pts[m+1:], depth+1),
	}
}

// selectNth reorders pts so that pts[k] holds the value it would have if
// sorted on axis, with no larger value before it and no smaller one after.
func selectNth(pts []Point, k, axis int) {
	lo, hi := 0, len(pts)-1
	for lo < hi {
		lt, gt := partition(pts, lo, hi, axis)
		switch {
		case k < lt:
			hi = lt - 1
		case k > gt:
			lo = gt + 1
		default:
			return
		}
	}
}

// partition splits pts[lo..hi] three ways around the middle element:
// on return pts[lo:lt] < pivot, pts[lt:gt+1] == pivot, pts[gt+1:hi+1] > pivot.
// Runs of equal coordinates are settled in one pass.
func partition(pts []Point, lo, hi, axis int) (lt, gt int) {
	pv := pts[lo+(hi-lo)/2].Coords[axis]
	lt, gt = lo, hi
	for i := lo; i <= gt; {
		switch v := pts[i].Coords[axis]; {
		case v < pv:
			pts[lt], pts[i] = pts[i], pts[lt]
			lt++
			i++
		case v > pv:
			pts[gt], pts[i] = pts[i], pts[gt]
			gt--
		default:
			i++
		}
	}
	return lt, gt
}

// Insert adds a copy of p without rebalancing. Equal coordinates on the
// split axis go right.
func (t *Tree) Insert(p Point) error {
	if err := checkDim(t.dim, p.Coords, t.n); err != nil {
		return err
	}
	p = clonePoint(p)
	t.n++
	if t.root == nil {
		t.root = &node{pivot: p, box: geom.PointBox(p.Coords)}
		return nil
	}
	cur := t.root
	for {
		cur.box.Extend(p.Coords)
		next := &cur.right
		if p.Coords[cur.axis] < cur.pivot.Coords[cur.axis] {
			next = &cur.left
		}
		if *next == nil {
			*next = &node{pivot: p, axis: (cur.axis + 1) % t.dim, box: geom.PointBox(p.Coords)}
			return nil
		}
		cur = *next
	}
}

// Len returns the number of stored points.
func (t *Tree) Len() int { return t.n }

// Dim returns the tree dimension.
func (t *Tree) Dim() int { return t.dim }

// Points returns every stored point in pre-order.
func (t *Tree) Points() []Point {
	out := make([]Point, 0, t.n)
	stack := []*node{}
	if t.root != nil {
		stack = append(stack, t.root)
	}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, n.pivot)
		if n.right != nil {
			stack = append(stack, n.right)
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}
	}
	return out
}
