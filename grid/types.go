package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Connectivity selects region connectivity: orthogonal (Conn4) or including
// diagonals (Conn8).
type Connectivity int

const (
	// Conn4 joins cells that share an edge.
	Conn4 Connectivity = iota
	// Conn8 also joins cells that share only a corner.
	Conn8
)

// offsets in N, E, S, W order for Conn4, then the diagonals for Conn8.
var (
	offsets4 = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	offsets8 = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

// Region is a maximal connected set of cells sharing one label.
type Region struct {
	Label byte
	// Cells holds row-major indices in flood-fill order; Cells[0] is the
	// first cell of the region in scan order.
	Cells []int
	// Area is len(Cells).
	Area int
	// Perimeter counts cell edges that border a different label or the
	// outside of the grid.
	Perimeter int
	// Sides counts straight fence segments, equal to the number of corners
	// of the region's outline (holes included).
	Sides int
}

// Grid is a dense rectangular array of byte cells. Cells[r*Width+c] holds
// the cell at row r, column c.
type Grid struct {
	Width, Height int
	Cells         []byte
}
