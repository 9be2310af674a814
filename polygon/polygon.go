package polygon

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/puzzlekit/geom"
)

// Sentinel errors.
var (
	ErrTooFewVertices = errors.New("polygon: too few vertices")
	ErrNotRectilinear = errors.New("polygon: consecutive vertices must share a row or column")
	ErrBadCorner      = errors.New("polygon: malformed corner")
)

// ParseCorners parses "x,y" lines into points with Col = x and Row = y.
// Blank lines are skipped.
func ParseCorners(lines []string) ([]geom.Point2, error) {
	var pts []geom.Point2
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		xs, ys, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("%w: line %d %q", ErrBadCorner, i+1, line)
		}
		x, errX := strconv.ParseInt(strings.TrimSpace(xs), 10, 32)
		y, errY := strconv.ParseInt(strings.TrimSpace(ys), 10, 32)
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("%w: line %d %q", ErrBadCorner, i+1, line)
		}
		pts = append(pts, geom.P2(int(y), int(x)))
	}
	return pts, nil
}

// area returns the tile area of the rectangle spanned by a and b.
func area(a, b geom.Point2) int64 {
	return (geom.AbsDiff(int64(a.Row), int64(b.Row)) + 1) * (geom.AbsDiff(int64(a.Col), int64(b.Col)) + 1)
}

// LargestRectangle returns the largest tile area spanned by any two of
// corners, ignoring the polygon itself.
func LargestRectangle(corners []geom.Point2) (int64, error) {
	if len(corners) < 2 {
		return 0, fmt.Errorf("%w: %d, want at least 2", ErrTooFewVertices, len(corners))
	}
	var best int64
	for i, a := range corners {
		for _, b := range corners[i+1:] {
			best = max(best, area(a, b))
		}
	}
	return best, nil
}

// LargestInside returns the largest tile area of a rectangle with two
// polygon vertices as opposite corners that lies entirely inside the
// polygon, boundary included.
func LargestInside(corners []geom.Point2) (int64, error) {
	if err := validate(corners); err != nil {
		return 0, err
	}
	c := compress(corners)
	filled := c.fill(corners)

	var best int64
	for i, a := range corners {
		for _, b := range corners[i+1:] {
			x1, x2 := minmax(2*c.col(a.Col), 2*c.col(b.Col))
			y1, y2 := minmax(2*c.row(a.Row), 2*c.row(b.Row))
			if filled.sum(x1, y1, x2, y2) == (x2-x1+1)*(y2-y1+1) {
				best = max(best, area(a, b))
			}
		}
	}
	return best, nil
}

func validate(corners []geom.Point2) error {
	if len(corners) < 4 {
		return fmt.Errorf("%w: %d, want at least 4", ErrTooFewVertices, len(corners))
	}
	for i, a := range corners {
		b := corners[(i+1)%len(corners)]
		if a == b || (a.Row != b.Row && a.Col != b.Col) {
			return fmt.Errorf("%w: vertex %d %v to %v", ErrNotRectilinear, i, a, b)
		}
	}
	return nil
}

func minmax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

// compressed holds the distinct vertex columns (xs) and rows (ys).
type compressed struct {
	xs, ys []int32
}

func compress(corners []geom.Point2) compressed {
	var c compressed
	for _, p := range corners {
		c.xs = append(c.xs, p.Col)
		c.ys = append(c.ys, p.Row)
	}
	slices.Sort(c.xs)
	slices.Sort(c.ys)
	c.xs = slices.Compact(c.xs)
	c.ys = slices.Compact(c.ys)
	return c
}

func (c compressed) col(x int32) int {
	i, _ := slices.BinarySearch(c.xs, x)
	return i
}

func (c compressed) row(y int32) int {
	i, _ := slices.BinarySearch(c.ys, y)
	return i
}

// fill classifies the (2W+1)×(2H+1) double-resolution grid and returns its
// prefix sums. A gap cell is filled when the crossing parity says inside or
// when it holds no lattice tile at all; a line segment or a point is filled
// when it touches an inside gap cell.
func (c compressed) fill(corners []geom.Point2) prefix {
	w, h := len(c.xs)-1, len(c.ys)-1

	// 1) Vertical edges by compressed column, as [y1, y2) gap ranges.
	type span struct{ lo, hi int }
	vertical := make([][]span, len(c.xs))
	for i, a := range corners {
		b := corners[(i+1)%len(corners)]
		if a.Col != b.Col {
			continue
		}
		lo, hi := minmax(c.row(a.Row), c.row(b.Row))
		k := c.col(a.Col)
		vertical[k] = append(vertical[k], span{lo, hi})
	}

	// 2) Crossing parity for each gap cell, sweeping each gap row left to right.
	inside := make([]bool, w*h)
	for j := 0; j < h; j++ {
		in := false
		for i := 0; i < w; i++ {
			for _, s := range vertical[i] {
				if s.lo <= j && j < s.hi {
					in = !in
				}
			}
			inside[i*h+j] = in
		}
	}
	at := func(i, j int) bool { return i >= 0 && j >= 0 && i < w && j < h && inside[i*h+j] }

	// 3) Classify the double-resolution grid and accumulate.
	p := newPrefix(2*w+1, 2*h+1)
	for a := 0; a < p.w; a++ {
		for b := 0; b < p.h; b++ {
			i, j := a/2, b/2
			var v bool
			switch {
			case a%2 == 1 && b%2 == 1:
				v = at(i, j) || c.xs[i+1]-c.xs[i] == 1 || c.ys[j+1]-c.ys[j] == 1
			case b%2 == 1:
				v = c.ys[j+1]-c.ys[j] == 1 || at(i-1, j) || at(i, j)
			case a%2 == 1:
				v = c.xs[i+1]-c.xs[i] == 1 || at(i, j-1) || at(i, j)
			default:
				v = at(i-1, j-1) || at(i-1, j) || at(i, j-1) || at(i, j)
			}
			p.add(a, b, v)
		}
	}

	return p
}

// prefix is a 2-D inclusive prefix sum with a zero border.
type prefix struct {
	w, h int
	s    []int
}

func newPrefix(w, h int) prefix {
	return prefix{w: w, h: h, s: make([]int, (w+1)*(h+1))}
}

// add records cell (a, b); cells must be added in row-major order.
func (p prefix) add(a, b int, v bool) {
	stride := p.h + 1
	n := 0
	if v {
		n = 1
	}
	p.s[(a+1)*stride+b+1] = p.s[a*stride+b+1] + p.s[(a+1)*stride+b] - p.s[a*stride+b] + n
}

// sum counts the filled cells in [x1, x2] × [y1, y2].
func (p prefix) sum(x1, y1, x2, y2 int) int {
	stride := p.h + 1
	return p.s[(x2+1)*stride+y2+1] - p.s[x1*stride+y2+1] - p.s[(x2+1)*stride+y1] + p.s[x1*stride+y1]
}
