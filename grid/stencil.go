package grid

import "github.com/katalvlaran/puzzlekit/geom"

// Padded holds a 0/1 live mask of a grid surrounded by a one-cell border of
// zeros, so Sum8 reads all eight neighbors without bounds checks.
type Padded struct {
	Width, Height int
	// Mask has (Height+2)×(Width+2) entries, row-major with stride Width+2.
	Mask []uint8
}

// Padded builds the padded live mask of g, where a cell is live when it
// equals live.
func (g *Grid) Padded(live byte) *Padded {
	stride := g.Width + 2
	p := &Padded{Width: g.Width, Height: g.Height, Mask: make([]uint8, stride*(g.Height+2))}
	for r := 0; r < g.Height; r++ {
		row := g.Row(r)
		base := (r+1)*stride + 1
		for c, v := range row {
			if v == live {
				p.Mask[base+c] = 1
			}
		}
	}
	return p
}

// Index returns the padded index of grid point q.
func (p *Padded) Index(q geom.Point2) int {
	return (int(q.Row)+1)*(p.Width+2) + int(q.Col) + 1
}

// Sum8 returns the number of live cells among the eight neighbors of the
// padded index i. i must address an interior (non-border) slot.
func (p *Padded) Sum8(i int) int {
	s := p.Width + 2
	m := p.Mask
	return int(m[i-s-1]) + int(m[i-s]) + int(m[i-s+1]) +
		int(m[i-1]) + int(m[i+1]) +
		int(m[i+s-1]) + int(m[i+s]) + int(m[i+s+1])
}

// NeighborSum8 counts cells equal to live among the in-bounds 8-neighbors
// of q. It agrees with Padded.Sum8 on every cell.
func (g *Grid) NeighborSum8(q geom.Point2, live byte) int {
	n := 0
	for _, d := range offsets8 {
		if v, ok := g.Get(q.Add(int32(d[0]), int32(d[1]))); ok && v == live {
			n++
		}
	}
	return n
}

// Accessible returns the number of live cells that have fewer than
// threshold live 8-neighbors, evaluated on g as it stands.
func (g *Grid) Accessible(live byte, threshold int) int {
	p := g.Padded(live)
	n := 0
	for r := 0; r < g.Height; r++ {
		i := p.Index(geom.P2(r, 0))
		for c := 0; c < g.Width; c, i = c+1, i+1 {
			if p.Mask[i] == 1 && p.Sum8(i) < threshold {
				n++
			}
		}
	}
	return n
}

// Erode removes live cells with fewer than threshold live 8-neighbors,
// repeating full passes until one removes nothing. Removed cells are set to
// dead in g. It returns the number of cells removed.
//
// Removing a cell only lowers its neighbors' counts, so the fixed point does
// not depend on visit order and passes update the mask in place.
func (g *Grid) Erode(live, dead byte, threshold int) int {
	p := g.Padded(live)
	removed := 0
	for changed := true; changed; {
		changed = false
		for r := 0; r < g.Height; r++ {
			i := p.Index(geom.P2(r, 0))
			for c := 0; c < g.Width; c, i = c+1, i+1 {
				if p.Mask[i] == 1 && p.Sum8(i) < threshold {
					p.Mask[i] = 0
					removed++
					changed = true
				}
			}
		}
	}
	for r := 0; r < g.Height; r++ {
		i := p.Index(geom.P2(r, 0))
		row := g.Row(r)
		for c := range row {
			if row[c] == live && p.Mask[i+c] == 0 {
				row[c] = dead
			}
		}
	}
	return removed
}
