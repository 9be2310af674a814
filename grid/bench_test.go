package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/puzzlekit/grid"
)

// BenchmarkErode measures the padded fixed-point pass on a 500×500 grid.
func BenchmarkErode(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	g := randomGrid(b, r, 500, 500)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone().Erode('@', '.', 4)
	}
}

// BenchmarkRegions measures flood fill over a 300×300 grid of 4 labels.
func BenchmarkRegions(b *testing.B) {
	r := rand.New(rand.NewSource(42))
	g, err := grid.New(300, 300, 'A')
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	for i := range g.Cells {
		g.Cells[i] = byte('A' + r.Intn(4))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Regions(grid.Conn4)
	}
}
