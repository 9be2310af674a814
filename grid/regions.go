package grid

import "github.com/katalvlaran/puzzlekit/geom"

// Regions finds every maximal region of equal-label cells under conn and
// returns them in scan order of their first cell.
//
// Perimeter and Sides are measured on cell edges regardless of conn. Sides
// is computed by corner counting: at each of a cell's four corners, with
// orthogonal neighbors a, c and diagonal b, the corner is convex when
// neither a nor c is in the region, and concave when both are and b is not.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Regions(conn Connectivity) []Region {
	offsets := offsets4
	if conn == Conn8 {
		offsets = offsets8
	}
	seen := make([]bool, len(g.Cells))
	var out []Region

	for i0, label := range g.Cells {
		if seen[i0] {
			continue
		}
		seen[i0] = true
		queue := []int{i0}
		reg := Region{Label: label}

		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			up := g.Coordinate(u)
			for _, d := range offsets {
				vp := up.Add(int32(d[0]), int32(d[1]))
				if !g.InBounds(vp) {
					continue
				}
				vi := g.Index(vp)
				if g.Cells[vi] == label && !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
			reg.Perimeter += g.exposedEdges(up, label)
			reg.Sides += g.corners(up, label)
		}
		reg.Cells = queue
		reg.Area = len(queue)
		out = append(out, reg)
	}
	return out
}

func (g *Grid) same(p geom.Point2, label byte) bool {
	v, ok := g.Get(p)
	return ok && v == label
}

func (g *Grid) exposedEdges(p geom.Point2, label byte) int {
	n := 0
	for _, d := range geom.Directions {
		if !g.same(p.Move(d), label) {
			n++
		}
	}
	return n
}

func (g *Grid) corners(p geom.Point2, label byte) int {
	n := 0
	for _, d := range geom.Directions {
		a := p.Move(d)
		c := p.Move(d.Right())
		b := a.Move(d.Right())
		sa, sb, sc := g.same(a, label), g.same(b, label), g.same(c, label)
		if (!sa && !sc) || (sa && sc && !sb) {
			n++
		}
	}
	return n
}

// FencePrice returns Σ area·perimeter and Σ area·sides over regions.
func FencePrice(regions []Region) (byPerimeter, bySides int) {
	for _, r := range regions {
		byPerimeter += r.Area * r.Perimeter
		bySides += r.Area * r.Sides
	}
	return byPerimeter, bySides
}
