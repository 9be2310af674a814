package grid

import (
	"bytes"
	"fmt"

	"github.com/katalvlaran/puzzlekit/geom"
)

// New returns a w×h grid with every cell set to fill.
// Returns ErrEmptyGrid if w or h is not positive.
func New(w, h int, fill byte) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrEmptyGrid, w, h)
	}
	cells := bytes.Repeat([]byte{fill}, w*h)
	return &Grid{Width: w, Height: h, Cells: cells}, nil
}

// FromRows builds a grid from equal-length text rows.
func FromRows(rows []string) (*Grid, error) {
	bs := make([][]byte, len(rows))
	for i, r := range rows {
		bs[i] = []byte(r)
	}
	return FromBytes(bs)
}

// FromBytes builds a grid from a non-empty, rectangular 2D slice.
// It copies the input. Returns ErrEmptyGrid if there are no rows or no
// columns, ErrNonRectangular naming the first row whose length differs.
// Complexity: O(W×H) time and memory.
func FromBytes(rows [][]byte) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([]byte, 0, w*h)
	for r, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
		cells = append(cells, row...)
	}
	return &Grid{Width: w, Height: h, Cells: cells}, nil
}

// Bounds returns the grid extent in geom form.
func (g *Grid) Bounds() geom.Bounds {
	return geom.Bounds{Rows: int32(g.Height), Cols: int32(g.Width)}
}

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p geom.Point2) bool {
	return p.Within(g.Bounds())
}

// Index maps p to its row-major index r·Width + c. p must be in bounds.
// Complexity: O(1).
func (g *Grid) Index(p geom.Point2) int {
	return int(p.Row)*g.Width + int(p.Col)
}

// Coordinate converts a row-major index back to a point.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) geom.Point2 {
	return geom.P2(idx/g.Width, idx%g.Width)
}

// At returns the cell at p, which must be in bounds.
func (g *Grid) At(p geom.Point2) byte { return g.Cells[g.Index(p)] }

// Get returns the cell at p and false when p is outside the grid.
func (g *Grid) Get(p geom.Point2) (byte, bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	return g.At(p), true
}

// Set stores v at p, which must be in bounds.
func (g *Grid) Set(p geom.Point2, v byte) { g.Cells[g.Index(p)] = v }

// Neighbors returns the in-bounds cardinal neighbors of p in N, E, S, W order.
func (g *Grid) Neighbors(p geom.Point2) []geom.Point2 {
	out := make([]geom.Point2, 0, 4)
	b := g.Bounds()
	for _, d := range geom.Directions {
		if q, ok := p.Step(d, b); ok {
			out = append(out, q)
		}
	}
	return out
}

// Find returns the first cell equal to v in row-major order.
func (g *Grid) Find(v byte) (geom.Point2, bool) {
	i := bytes.IndexByte(g.Cells, v)
	if i < 0 {
		return geom.Point2{}, false
	}
	return g.Coordinate(i), true
}

// Count returns the number of cells equal to v.
func (g *Grid) Count(v byte) int {
	return bytes.Count(g.Cells, []byte{v})
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	return &Grid{Width: g.Width, Height: g.Height, Cells: bytes.Clone(g.Cells)}
}

// Map returns a new grid with fn applied to every cell.
func (g *Grid) Map(fn func(p geom.Point2, v byte) byte) *Grid {
	out := g.Clone()
	for i, v := range out.Cells {
		out.Cells[i] = fn(g.Coordinate(i), v)
	}
	return out
}

// Row returns row r as a slice aliasing the grid storage.
func (g *Grid) Row(r int) []byte {
	return g.Cells[r*g.Width : (r+1)*g.Width]
}

// String renders the grid as newline-terminated rows.
func (g *Grid) String() string {
	var sb bytes.Buffer
	for r := 0; r < g.Height; r++ {
		sb.Write(g.Row(r))
		sb.WriteByte('\n')
	}
	return sb.String()
}
