package racetrack_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlekit/geom"
	"github.com/katalvlaran/puzzlekit/racetrack"
)

var canonical = []string{
	"###############",
	"#...#...#.....#",
	"#.#.#.#.#.###.#",
	"#S#...#.#.#...#",
	"#######.#.#.###",
	"#######.#.#...#",
	"#######.#.###.#",
	"###..E#...#...#",
	"###.#######.###",
	"#...###...#...#",
	"#.#####.#.###.#",
	"#.#...#.#.#...#",
	"#.#.#.#.#.#.###",
	"#...#...#...###",
	"###############",
}

func mustTrack(t testing.TB, rows []string) *racetrack.Track {
	t.Helper()
	tr, err := racetrack.Parse(rows)
	require.NoError(t, err)
	return tr
}

func TestParse_Errors(t *testing.T) {
	_, err := racetrack.Parse([]string{"#.E"})
	assert.ErrorIs(t, err, racetrack.ErrNoStart)
	_, err = racetrack.Parse([]string{"#S."})
	assert.ErrorIs(t, err, racetrack.ErrNoEnd)
	_, err = racetrack.Parse([]string{"S?E"})
	assert.ErrorIs(t, err, racetrack.ErrBadCell)
	_, err = racetrack.Parse([]string{"S#E"})
	assert.ErrorIs(t, err, racetrack.ErrUnreachable)
}

func TestParse_Distances(t *testing.T) {
	tr := mustTrack(t, canonical)
	assert.Equal(t, 84, tr.Length())
	assert.Len(t, tr.Path, 85)
	for i := 1; i < len(tr.Path); i++ {
		require.LessOrEqual(t, tr.DistAt(tr.Path[i-1]), tr.DistAt(tr.Path[i]))
	}
	wall := tr.Path[0].Add(0, -1)
	require.Equal(t, racetrack.Wall, tr.Grid.At(wall))
	assert.Equal(t, -1, tr.DistAt(wall), "walls are unreachable")
	assert.Equal(t, -1, tr.DistAt(geom.P2(-1, 0)), "outside the grid")
}

func TestCountCheats_Canonical(t *testing.T) {
	tr := mustTrack(t, canonical)
	cases := []struct {
		maxCheat, minSaving, want int
	}{
		{2, 64, 1},
		{2, 2, 44},
		{20, 76, 3},
		{20, 50, 285},
	}
	for _, tc := range cases {
		got, err := racetrack.CountCheats(tr, tc.maxCheat, tc.minSaving)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "cheat %d saving ≥ %d", tc.maxCheat, tc.minSaving)
		assert.Equal(t, tc.want, racetrack.CountCheatsBrute(tr, tc.maxCheat, tc.minSaving))
	}
}

func TestCountCheats_Errors(t *testing.T) {
	tr := mustTrack(t, canonical)
	_, err := racetrack.CountCheats(tr, 0, 10)
	assert.ErrorIs(t, err, racetrack.ErrBadCheat)
	_, err = racetrack.CountCheats(tr, 2, 0)
	assert.ErrorIs(t, err, racetrack.ErrBadCheat)
	_, err = racetrack.CountCheats(tr, 2, 10, racetrack.WithWorkers(0))
	assert.ErrorIs(t, err, racetrack.ErrOptionViolation)
}

// TestCountCheats_WorkersAgree checks that the parallel scan gives the same
// count for every worker count, including more workers than path cells.
func TestCountCheats_WorkersAgree(t *testing.T) {
	tr := mustTrack(t, canonical)
	want := racetrack.CountCheatsBrute(tr, 20, 1)
	require.Equal(t, 3081, want)
	for _, w := range []int{1, 2, 3, 7, 16, 200} {
		got, err := racetrack.CountCheats(tr, 20, 1, racetrack.WithWorkers(w))
		require.NoError(t, err)
		assert.Equal(t, want, got, "workers=%d", w)
	}
}

// TestCountCheats_RandomMazes compares the k-d scan with the brute-force
// reference on random open fields.
func TestCountCheats_RandomMazes(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for round := 0; round < 20; round++ {
		rows := randomField(r, 9+r.Intn(8), 9+r.Intn(8))
		tr, err := racetrack.Parse(rows)
		if err != nil {
			continue
		}
		maxCheat, minSaving := 1+r.Intn(6), 1+r.Intn(4)
		got, err := racetrack.CountCheats(tr, maxCheat, minSaving, racetrack.WithWorkers(4))
		require.NoError(t, err)
		require.Equal(t, racetrack.CountCheatsBrute(tr, maxCheat, minSaving), got,
			"round %d\n%s", round, strings.Join(rows, "\n"))
	}
}

// randomField walls about a quarter of the interior and puts S and E in
// opposite corners.
func randomField(r *rand.Rand, h, w int) []string {
	rows := make([]string, h)
	for y := range rows {
		b := make([]byte, w)
		for x := range b {
			switch {
			case y == 0 || x == 0 || y == h-1 || x == w-1:
				b[x] = '#'
			case r.Intn(4) == 0:
				b[x] = '#'
			default:
				b[x] = '.'
			}
		}
		rows[y] = string(b)
	}
	rows[1] = "#S" + rows[1][2:]
	rows[h-2] = rows[h-2][:w-2] + "E#"
	return rows
}
