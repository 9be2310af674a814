package kdtree

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSelectNth_Duplicates checks the order statistic on inputs ranging from
// all-distinct to a single repeated coordinate.
func TestSelectNth_Duplicates(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for _, spread := range []int64{0, 1, 3, 1000} {
		for round := 0; round < 20; round++ {
			n := 1 + r.Intn(200)
			pts := make([]Point, n)
			for i := range pts {
				pts[i] = Point{Coords: []int64{r.Int63n(spread + 1), 0}, ID: i}
			}
			sorted := make([]int64, n)
			for i, p := range pts {
				sorted[i] = p.Coords[0]
			}
			slices.Sort(sorted)

			k := r.Intn(n)
			selectNth(pts, k, 0)
			require.Equal(t, sorted[k], pts[k].Coords[0], "spread %d k %d", spread, k)
			for i := 0; i < k; i++ {
				require.LessOrEqual(t, pts[i].Coords[0], pts[k].Coords[0])
			}
			for i := k + 1; i < n; i++ {
				require.GreaterOrEqual(t, pts[i].Coords[0], pts[k].Coords[0])
			}
		}
	}
}

func TestPartition_ThreeWay(t *testing.T) {
	pts := make([]Point, 9)
	for i, v := range []int64{2, 5, 2, 1, 2, 9, 2, 0, 2} {
		pts[i] = Point{Coords: []int64{v}, ID: i}
	}
	lt, gt := partition(pts, 0, len(pts)-1, 0)
	require.Equal(t, 2, lt)
	require.Equal(t, 6, gt)
	for i, p := range pts {
		switch {
		case i < lt:
			require.Less(t, p.Coords[0], int64(2))
		case i > gt:
			require.Greater(t, p.Coords[0], int64(2))
		default:
			require.Equal(t, int64(2), p.Coords[0])
		}
	}
}
