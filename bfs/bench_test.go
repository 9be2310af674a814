package bfs_test

import (
	"testing"

	"github.com/katalvlaran/puzzlekit/bfs"
	"github.com/katalvlaran/puzzlekit/geom"
	"github.com/katalvlaran/puzzlekit/grid"
)

// BenchmarkSearch_Chain measures map-based BFS on a linear chain of N nodes.
func BenchmarkSearch_Chain(b *testing.B) {
	const N = 10000
	next := func(n int) []int {
		if n+1 < N {
			return []int{n + 1}
		}
		return nil
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Search(0, next)
	}
}

// BenchmarkGridDistances measures the dense BFS over an open 300×300 grid.
func BenchmarkGridDistances(b *testing.B) {
	g, err := grid.New(300, 300, '.')
	if err != nil {
		b.Fatalf("setup failed: %v", err)
	}
	open := func(byte) bool { return true }

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.GridDistances(g, geom.P2(0, 0), open)
	}
}
