package racetrack

import (
	"errors"

	"github.com/katalvlaran/puzzlekit/geom"
	"github.com/katalvlaran/puzzlekit/grid"
	"github.com/katalvlaran/puzzlekit/kdtree"
)

// Sentinel errors for track parsing and cheat counting.
var (
	// ErrNoStart is returned when the track has no 'S' cell.
	ErrNoStart = errors.New("racetrack: track has no start cell")
	// ErrNoEnd is returned when the track has no 'E' cell.
	ErrNoEnd = errors.New("racetrack: track has no end cell")
	// ErrBadCell is returned for a byte other than '#', '.', 'S' or 'E', or a repeated marker.
	ErrBadCell = errors.New("racetrack: invalid track cell")
	// ErrUnreachable is returned when the end cannot be reached from the start.
	ErrUnreachable = errors.New("racetrack: end is unreachable")
	// ErrBadCheat is returned for a cheat length < 1 or a minimum saving < 1.
	ErrBadCheat = errors.New("racetrack: cheat length and saving must be positive")
	// ErrOptionViolation is returned when an option carries an invalid value.
	ErrOptionViolation = errors.New("racetrack: invalid option")
)

// Wall is the only blocking cell byte.
const Wall byte = '#'

// Track is a parsed racetrack with the BFS distance of every reachable cell
// from the start.
type Track struct {
	Grid       *grid.Grid
	Start, End geom.Point2

	// Path lists the reachable cells in BFS order, so Dist is non-decreasing along it.
	Path []geom.Point2
	// Dist holds the distance from Start by row-major index, -1 for walls and unreachable cells.
	Dist []int

	// uv indexes Path in rotated coordinates; point IDs are Path indexes.
	uv *kdtree.Tree
}

// Length returns the number of moves from Start to End without cheating.
func (t *Track) Length() int { return t.Dist[t.Grid.Index(t.End)] }

// DistAt returns the distance of p from Start, or -1.
func (t *Track) DistAt(p geom.Point2) int {
	if !t.Grid.InBounds(p) {
		return -1
	}
	return t.Dist[t.Grid.Index(p)]
}

// Options configures CountCheats.
//
// Workers – number of goroutines scanning the path. Must be ≥ 1. Default 1.
type Options struct {
	Workers int

	err error
}

// Option represents a functional option for configuring CountCheats.
type Option func(*Options)

// DefaultOptions returns a single-worker scan.
func DefaultOptions() Options {
	return Options{Workers: 1}
}

// WithWorkers splits the path scan across n goroutines. The count does not
// depend on n.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = ErrOptionViolation
			return
		}
		o.Workers = n
	}
}
