package racetrack

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/puzzlekit/bfs"
	"github.com/katalvlaran/puzzlekit/geom"
	"github.com/katalvlaran/puzzlekit/grid"
	"github.com/katalvlaran/puzzlekit/kdtree"
)

// Parse builds a Track from text rows of '#', '.', 'S' and 'E' and runs BFS
// from the start. The markers are stored as open cells.
func Parse(rows []string) (*Track, error) {
	g, err := grid.FromRows(rows)
	if err != nil {
		return nil, err
	}

	t := &Track{Grid: g}
	var seenStart, seenEnd bool
	for i, b := range g.Cells {
		p := g.Coordinate(i)
		switch b {
		case Wall, '.':
		case 'S':
			if seenStart {
				return nil, fmt.Errorf("%w: second start at %v", ErrBadCell, p)
			}
			seenStart, t.Start = true, p
			g.Cells[i] = '.'
		case 'E':
			if seenEnd {
				return nil, fmt.Errorf("%w: second end at %v", ErrBadCell, p)
			}
			seenEnd, t.End = true, p
			g.Cells[i] = '.'
		default:
			return nil, fmt.Errorf("%w: %q at %v", ErrBadCell, b, p)
		}
	}
	if !seenStart {
		return nil, ErrNoStart
	}
	if !seenEnd {
		return nil, ErrNoEnd
	}

	t.Dist, t.Path = bfs.GridDistances(g, t.Start, func(b byte) bool { return b != Wall })
	if t.Length() < 0 {
		return nil, fmt.Errorf("%w: from %v to %v", ErrUnreachable, t.Start, t.End)
	}

	points := make([]kdtree.Point, len(t.Path))
	for i, p := range t.Path {
		uv := p.ToUV()
		points[i] = kdtree.Point{Coords: []int64{uv.U, uv.V}, ID: i}
	}
	if t.uv, err = kdtree.New(2, points); err != nil {
		return nil, err
	}

	return t, nil
}

// CountCheats counts ordered pairs (a, b) of track cells with
// manhattan(a, b) ≤ maxCheat whose shortcut saves at least minSaving moves.
//
// Errors: ErrBadCheat if maxCheat < 1 or minSaving < 1, ErrOptionViolation
// for invalid options.
//
// Complexity: O(P·(log P + K)) where P is the path length and K the number
// of cells within reach of a cheat.
func CountCheats(t *Track, maxCheat, minSaving int, opts ...Option) (int, error) {
	// 1) Validate arguments and options.
	if maxCheat < 1 || minSaving < 1 {
		return 0, fmt.Errorf("%w: maxCheat=%d minSaving=%d", ErrBadCheat, maxCheat, minSaving)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return 0, cfg.err
	}

	// 2) Each worker scans a contiguous chunk of the path into its own slot.
	workers := min(cfg.Workers, max(len(t.Path), 1))
	counts := make([]int, workers)
	chunk := (len(t.Path) + workers - 1) / workers

	var eg errgroup.Group
	for w := 0; w < workers; w++ {
		lo, hi := min(w*chunk, len(t.Path)), min((w+1)*chunk, len(t.Path))
		eg.Go(func() error {
			n, err := t.scan(t.Path[lo:hi], maxCheat, minSaving)
			counts[w] = n
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}

	// 3) Reduce.
	total := 0
	for _, n := range counts {
		total += n
	}

	return total, nil
}

// scan counts the cheats starting at each cell of from. It only reads t.
func (t *Track) scan(from []geom.Point2, maxCheat, minSaving int) (int, error) {
	n := 0
	for _, a := range from {
		da := t.DistAt(a)
		uv := a.ToUV()
		near, err := t.uv.Within([]int64{uv.U, uv.V}, int64(maxCheat))
		if err != nil {
			return 0, err
		}
		for _, q := range near {
			b := t.Path[q.ID]
			saving := t.DistAt(b) - da - int(a.Manhattan(b))
			if saving >= minSaving {
				n++
			}
		}
	}
	return n, nil
}

// CountCheatsBrute is the O(P²) reference for CountCheats.
func CountCheatsBrute(t *Track, maxCheat, minSaving int) int {
	n := 0
	for _, a := range t.Path {
		for _, b := range t.Path {
			d := int(a.Manhattan(b))
			if d <= maxCheat && t.DistAt(b)-t.DistAt(a)-d >= minSaving {
				n++
			}
		}
	}
	return n
}
