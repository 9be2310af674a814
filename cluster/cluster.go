package cluster

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/puzzlekit/geom"
	"github.com/katalvlaran/puzzlekit/kdtree"
	"github.com/katalvlaran/puzzlekit/unionfind"
)

// ErrTooFewComponents indicates LargestProduct asked for more components
// than exist.
var ErrTooFewComponents = errors.New("cluster: fewer components than requested")

func build(points []geom.Point3) (*kdtree.Tree, error) {
	coords := make([][]int64, len(points))
	for i, p := range points {
		coords[i] = p.Coords()
	}
	return kdtree.FromCoords(3, coords)
}

// ConnectClosest unions the endpoints of the k closest pairs and returns
// the resulting forest. Pairs whose endpoints are already joined still
// count toward k.
func ConnectClosest(points []geom.Point3, k int) (*unionfind.UnionFind, error) {
	tr, err := build(points)
	if err != nil {
		return nil, err
	}
	uf := unionfind.New(len(points))
	pairs := tr.ClosestPairs()
	for i := 0; i < k; i++ {
		p, ok := pairs.Next()
		if !ok {
			break
		}
		uf.Union(p.P.ID, p.Q.ID)
	}
	return uf, nil
}

// LargestProduct links the k closest pairs and multiplies the sizes of the
// m largest components.
func LargestProduct(points []geom.Point3, k, m int) (int, error) {
	uf, err := ConnectClosest(points, k)
	if err != nil {
		return 0, err
	}
	sizes := uf.Sizes()
	if len(sizes) < m {
		return 0, fmt.Errorf("%w: have %d, want %d", ErrTooFewComponents, len(sizes), m)
	}
	prod := 1
	for _, s := range sizes[:m] {
		prod *= s
	}
	return prod, nil
}

// LastLink returns the pair whose union first leaves a single component.
// It returns false for fewer than two points.
func LastLink(points []geom.Point3) (kdtree.Pair, bool, error) {
	tr, err := build(points)
	if err != nil {
		return kdtree.Pair{}, false, err
	}
	uf := unionfind.New(len(points))
	for p := range tr.ClosestPairs().All() {
		if uf.Union(p.P.ID, p.Q.ID) && uf.Components() == 1 {
			return p, true, nil
		}
	}
	return kdtree.Pair{}, false, nil
}
