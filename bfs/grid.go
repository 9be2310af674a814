package bfs

import (
	"github.com/katalvlaran/puzzlekit/geom"
	"github.com/katalvlaran/puzzlekit/grid"
)

// GridDistances runs BFS over the cardinal moves of g from start, entering
// only cells for which passable returns true. It returns the distance of
// every cell by row-major index (-1 if unreachable) and the cells in visit
// order. The start cell is always visited.
//
// Complexity: O(W×H) time and memory, no maps.
func GridDistances(g *grid.Grid, start geom.Point2, passable func(byte) bool) ([]int, []geom.Point2) {
	dist := make([]int, len(g.Cells))
	for i := range dist {
		dist[i] = -1
	}
	if !g.InBounds(start) {
		return dist, nil
	}
	b := g.Bounds()
	order := []geom.Point2{start}
	dist[g.Index(start)] = 0
	for qi := 0; qi < len(order); qi++ {
		u := order[qi]
		du := dist[g.Index(u)]
		for _, d := range geom.Directions {
			v, ok := u.Step(d, b)
			if !ok {
				continue
			}
			vi := g.Index(v)
			if dist[vi] >= 0 || !passable(g.Cells[vi]) {
				continue
			}
			dist[vi] = du + 1
			order = append(order, v)
		}
	}
	return dist, order
}
