package dijkstra_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/puzzlekit/dijkstra"
)

// openMaze returns an n×n maze with walls only on the border.
func openMaze(n int) []string {
	rows := make([]string, n)
	rows[0] = strings.Repeat("#", n)
	rows[n-1] = rows[0]
	inner := strings.Repeat(".", n-2)
	for r := 1; r < n-1; r++ {
		rows[r] = "#" + inner + "#"
	}
	rows[n-2] = "#S" + inner[1:] + "#"
	rows[1] = "#" + inner[1:] + "E#"
	return rows
}

func BenchmarkSolve(b *testing.B) {
	m, err := dijkstra.ParseMaze(openMaze(141))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, _, _ := dijkstra.Solve(m)
		_, _ = dijkstra.OptimalCells(m, res)
	}
}
