package segtree_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlekit/segtree"
)

func TestLeftmost_FreeSlots(t *testing.T) {
	tr := segtree.New[struct{}]([]uint64{2, 0, 3, 0, 1, 0, 5})
	require.Equal(t, 7, tr.Len())
	assert.Equal(t, uint64(5), tr.Max())

	idx, ok := tr.LeftmostWithCapacity(3)
	require.True(t, ok)
	assert.Equal(t, 2, idx)

	require.NoError(t, tr.Update(2, 0, struct{}{}))
	idx, ok = tr.LeftmostWithCapacity(3)
	require.True(t, ok)
	assert.Equal(t, 6, idx)

	_, ok = tr.LeftmostWithCapacity(6)
	assert.False(t, ok)

	idx, ok = tr.LeftmostWithCapacity(1)
	require.True(t, ok)
	assert.Equal(t, 0, idx, "ties go left")
}

func TestEmptyAndBounds(t *testing.T) {
	tr := segtree.New[int](nil)
	_, ok := tr.LeftmostWithCapacity(0)
	assert.False(t, ok)
	assert.Equal(t, uint64(0), tr.Max())

	tr = segtree.New[int]([]uint64{4})
	assert.ErrorIs(t, tr.Update(1, 0, 0), segtree.ErrIndexOutOfRange)
	_, err := tr.Get(-1)
	assert.ErrorIs(t, err, segtree.ErrIndexOutOfRange)
}

func TestPayloads(t *testing.T) {
	tr := segtree.NewWithPayloads([]segtree.Slot[string]{{Value: 1, Payload: "a"}, {Value: 9, Payload: "b"}})
	require.NoError(t, tr.Update(0, 7, "c"))
	s, err := tr.Get(0)
	require.NoError(t, err)
	assert.Equal(t, segtree.Slot[string]{Value: 7, Payload: "c"}, s)

	var seen []string
	for i, s := range tr.Slots() {
		seen = append(seen, s.Payload)
		assert.Less(t, i, tr.Len())
	}
	assert.Equal(t, []string{"c", "b"}, seen)
}

// TestLeftmost_MatchesLinearScan checks random updates and queries against
// a linear scan for the first qualifying slot.
func TestLeftmost_MatchesLinearScan(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 20; round++ {
		n := 1 + r.Intn(40)
		vals := make([]uint64, n)
		for i := range vals {
			vals[i] = uint64(r.Intn(10))
		}
		tr := segtree.New[int](vals)

		for step := 0; step < 200; step++ {
			if r.Intn(2) == 0 {
				i, v := r.Intn(n), uint64(r.Intn(10))
				vals[i] = v
				require.NoError(t, tr.Update(i, v, step))
			}
			x := uint64(r.Intn(11))
			want, wantOK := -1, false
			var top uint64
			for i, v := range vals {
				top = max(top, v)
				if !wantOK && v >= x {
					want, wantOK = i, true
				}
			}
			got, ok := tr.LeftmostWithCapacity(x)
			require.Equal(t, wantOK, ok, "round %d step %d x=%d", round, step, x)
			if ok {
				require.Equal(t, want, got, "round %d step %d x=%d", round, step, x)
			}
			require.Equal(t, top, tr.Max())
		}
	}
}
