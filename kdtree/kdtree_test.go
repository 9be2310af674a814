package kdtree_test

import (
	"math/rand"
	"slices"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlekit/geom"
	"github.com/katalvlaran/puzzlekit/kdtree"
)

func randomPoints(r *rand.Rand, n, dim int, spread int64) []kdtree.Point {
	pts := make([]kdtree.Point, n)
	for i := range pts {
		c := make([]int64, dim)
		for k := range c {
			c[k] = r.Int63n(2*spread+1) - spread
		}
		pts[i] = kdtree.Point{Coords: c, ID: i}
	}
	return pts
}

func ids(pts []kdtree.Point) []int {
	out := make([]int, len(pts))
	for i, p := range pts {
		out[i] = p.ID
	}
	sort.Ints(out)
	return out
}

func TestNew_Errors(t *testing.T) {
	_, err := kdtree.New(0, nil)
	assert.ErrorIs(t, err, kdtree.ErrBadDim)

	_, err = kdtree.FromCoords(2, [][]int64{{1, 2}, {3}})
	require.ErrorIs(t, err, geom.ErrDimension)
	assert.Contains(t, err.Error(), "point 1")

	tr, err := kdtree.New(2, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, tr.Len())
	assert.ErrorIs(t, tr.Insert(kdtree.Point{Coords: []int64{1, 2, 3}}), geom.ErrDimension)

	q, err := geom.NewBox([]int64{0}, []int64{1})
	require.NoError(t, err)
	_, err = tr.Range(q)
	assert.ErrorIs(t, err, geom.ErrDimension)
}

func TestNew_CopiesInput(t *testing.T) {
	coords := [][]int64{{1, 1}, {2, 2}}
	tr, err := kdtree.FromCoords(2, coords)
	require.NoError(t, err)
	coords[0][0] = 100

	got, err := tr.Within([]int64{100, 1}, 0)
	require.NoError(t, err)
	assert.Empty(t, got, "tree must not alias caller coordinates")
}

// TestRange_MatchesBruteForce compares random box queries against a linear
// filter, for both bulk-built and incrementally built trees.
func TestRange_MatchesBruteForce(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for _, dim := range []int{1, 2, 3} {
		pts := randomPoints(r, 300, dim, 20)
		bulk, err := kdtree.New(dim, pts)
		require.NoError(t, err)
		incr, err := kdtree.New(dim, nil)
		require.NoError(t, err)
		for _, p := range pts {
			require.NoError(t, incr.Insert(p))
		}
		require.Equal(t, len(pts), bulk.Len())
		require.Equal(t, len(pts), incr.Len())
		require.Equal(t, ids(pts), ids(bulk.Points()))

		for q := 0; q < 100; q++ {
			lo := make([]int64, dim)
			hi := make([]int64, dim)
			for k := range lo {
				a, b := r.Int63n(41)-20, r.Int63n(41)-20
				lo[k], hi[k] = min(a, b), max(a, b)
			}
			box, err := geom.NewBox(lo, hi)
			require.NoError(t, err)

			var want []int
			for _, p := range pts {
				if box.Contains(p.Coords) {
					want = append(want, p.ID)
				}
			}
			for _, tr := range []*kdtree.Tree{bulk, incr} {
				got, err := tr.RangeAll(box)
				require.NoError(t, err)
				gotIDs := ids(got)
				if len(want) == 0 {
					require.Empty(t, gotIDs)
				} else {
					require.Equal(t, want, gotIDs, "dim %d query %v", dim, box)
				}
			}
		}
	}
}

func TestNew_EqualCoordinates(t *testing.T) {
	pts := make([]kdtree.Point, 20000)
	for i := range pts {
		pts[i] = kdtree.Point{Coords: []int64{int64(i % 2), 5}, ID: i}
	}
	tr, err := kdtree.New(2, pts)
	require.NoError(t, err)
	require.Equal(t, len(pts), tr.Len())

	box, _ := geom.NewBox([]int64{1, 5}, []int64{1, 5})
	got, err := tr.RangeAll(box)
	require.NoError(t, err)
	assert.Len(t, got, len(pts)/2)

	p, ok := tr.ClosestPairs().Next()
	require.True(t, ok)
	assert.Equal(t, uint64(0), p.DistSq)
}

func TestRange_EarlyStop(t *testing.T) {
	tr, err := kdtree.FromCoords(2, [][]int64{{0, 0}, {1, 1}, {2, 2}, {3, 3}})
	require.NoError(t, err)
	box, _ := geom.NewBox([]int64{0, 0}, []int64{3, 3})
	it, err := tr.Range(box)
	require.NoError(t, err)
	n := 0
	for range it.All() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestClosestPairs_Scenario(t *testing.T) {
	tr, err := kdtree.FromCoords(3, [][]int64{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {10, 10, 10}})
	require.NoError(t, err)

	var dists []uint64
	for p := range tr.ClosestPairs().All() {
		dists = append(dists, p.DistSq)
		assert.LessOrEqual(t, p.P.ID, p.Q.ID)
		if p.Q.ID == 3 {
			assert.GreaterOrEqual(t, p.DistSq, uint64(243))
		}
	}
	assert.Equal(t, []uint64{1, 1, 2, 281, 281, 300}, dists)
}

func TestClosestPairs_Small(t *testing.T) {
	empty, err := kdtree.New(2, nil)
	require.NoError(t, err)
	_, ok := empty.ClosestPairs().Next()
	assert.False(t, ok)

	one, err := kdtree.FromCoords(2, [][]int64{{4, 4}})
	require.NoError(t, err)
	_, ok = one.ClosestPairs().Next()
	assert.False(t, ok)

	dup, err := kdtree.FromCoords(2, [][]int64{{4, 4}, {4, 4}})
	require.NoError(t, err)
	p, ok := dup.ClosestPairs().Next()
	require.True(t, ok)
	assert.Equal(t, uint64(0), p.DistSq)
	assert.Equal(t, [2]int{0, 1}, [2]int{p.P.ID, p.Q.ID})
}

// TestClosestPairs_Exhaustive checks order, uniqueness, count and the
// distance multiset against brute force, with duplicates and collinear
// points mixed in.
func TestClosestPairs_Exhaustive(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for round := 0; round < 12; round++ {
		dim := 1 + round%3
		n := 2 + r.Intn(60)
		pts := randomPoints(r, n, dim, int64(1+r.Intn(10)))

		var tr *kdtree.Tree
		var err error
		if round%2 == 0 {
			tr, err = kdtree.New(dim, pts)
			require.NoError(t, err)
		} else {
			tr, err = kdtree.New(dim, nil)
			require.NoError(t, err)
			for _, p := range pts {
				require.NoError(t, tr.Insert(p))
			}
		}

		var want []uint64
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				want = append(want, geom.SquareDistance(pts[i].Coords, pts[j].Coords))
			}
		}
		slices.Sort(want)

		seen := map[[2]int]bool{}
		var got []uint64
		for p := range tr.ClosestPairs().All() {
			require.Less(t, p.P.ID, p.Q.ID, "round %d: distinct points, normalized", round)
			key := [2]int{p.P.ID, p.Q.ID}
			require.False(t, seen[key], "round %d: pair %v emitted twice", round, key)
			seen[key] = true
			require.Equal(t, geom.SquareDistance(p.P.Coords, p.Q.Coords), p.DistSq)
			if len(got) > 0 {
				require.LessOrEqual(t, got[len(got)-1], p.DistSq, "round %d: non-decreasing", round)
			}
			got = append(got, p.DistSq)
		}
		require.Len(t, got, n*(n-1)/2, "round %d: C(n,2) pairs", round)
		require.Equal(t, want, got, "round %d", round)
	}
}

// TestClosestPairs_Deterministic runs the stream twice over the same tree.
func TestClosestPairs_Deterministic(t *testing.T) {
	r := rand.New(rand.NewSource(3))
	tr, err := kdtree.New(3, randomPoints(r, 80, 3, 5))
	require.NoError(t, err)
	take := func() [][2]int {
		var out [][2]int
		for p := range tr.ClosestPairs().All() {
			out = append(out, [2]int{p.P.ID, p.Q.ID})
			if len(out) == 200 {
				break
			}
		}
		return out
	}
	assert.Equal(t, take(), take())
}
