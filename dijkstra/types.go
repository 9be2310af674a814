package dijkstra

import (
	"errors"
	"math"
	"math/rand"

	"github.com/katalvlaran/puzzlekit/geom"
	"github.com/katalvlaran/puzzlekit/grid"
)

// Sentinel errors for maze parsing and option validation.
var (
	// ErrNoStart is returned when a maze has no 'S' cell.
	ErrNoStart = errors.New("dijkstra: maze has no start cell")

	// ErrNoEnd is returned when a maze has no 'E' cell.
	ErrNoEnd = errors.New("dijkstra: maze has no end cell")

	// ErrBadCell is returned when a maze contains a byte other than '#', '.', 'S' or 'E',
	// or a second start or end marker.
	ErrBadCell = errors.New("dijkstra: invalid maze cell")

	// ErrOptionViolation is returned when an option carries an invalid value.
	ErrOptionViolation = errors.New("dijkstra: invalid option")
)

// Cell bytes understood by ParseMaze.
const (
	Wall  byte = '#'
	Space byte = '.'
	Start byte = 'S'
	End   byte = 'E'
)

// Inf marks a (cell, facing) state that was never reached.
const Inf = math.MaxInt64

// Maze is a walled grid with one start and one end cell. The start and end
// cells are stored as Space in Grid.
type Maze struct {
	Grid       *grid.Grid
	Start, End geom.Point2
}

// Open reports whether p is inside the maze and not a wall.
func (m *Maze) Open(p geom.Point2) bool {
	b, ok := m.Grid.Get(p)
	return ok && b != Wall
}

// State is a node of the expanded graph: a cell and the direction the
// walker faces while standing on it.
type State struct {
	Pos    geom.Point2
	Facing geom.Direction
}

// CostTable holds the least cost observed for every (cell, facing) state.
// It is a flat [rows][cols][4] array; unreached states hold Inf.
type CostTable struct {
	bounds geom.Bounds
	cost   []int64
}

func newCostTable(b geom.Bounds) CostTable {
	t := CostTable{bounds: b, cost: make([]int64, int(b.Rows)*int(b.Cols)*4)}
	for i := range t.cost {
		t.cost[i] = Inf
	}
	return t
}

func (t CostTable) index(s State) int {
	return (int(s.Pos.Row)*int(t.bounds.Cols)+int(s.Pos.Col))*4 + int(s.Facing)
}

// At returns the cost of s, or Inf if s is outside the table or unreached.
func (t CostTable) At(s State) int64 {
	if !s.Pos.Within(t.bounds) {
		return Inf
	}
	return t.cost[t.index(s)]
}

func (t CostTable) set(s State, c int64) { t.cost[t.index(s)] = c }

// Result is the outcome of Solve.
type Result struct {
	// Cost is the optimal cost from the start state to the end cell.
	Cost int64
	// Table is the cost table filled by the forward search. Every state with
	// cost at most Cost is final.
	Table CostTable
	// Facings lists, in N, E, S, W order, the facings in which the end cell
	// is reached at Cost.
	Facings []geom.Direction
}

// Options configures Solve.
//
// StepCost    – cost of moving one cell forward. Must be > 0. Default 1.
// TurnCost    – cost of a 90° rotation in place. Must be ≥ 0. Default 1000.
// StartFacing – facing of the initial state. Default East.
// Shuffle     – if non-nil, successor moves are expanded in a random order.
//
//	Used to check that the optimum does not depend on tie order.
type Options struct {
	StepCost    int64
	TurnCost    int64
	StartFacing geom.Direction
	Shuffle     *rand.Rand

	err error
}

// Option represents a functional option for configuring Solve.
type Option func(*Options)

// DefaultOptions returns the canonical maze costs: step 1, turn 1000,
// start facing East.
func DefaultOptions() Options {
	return Options{
		StepCost:    1,
		TurnCost:    1000,
		StartFacing: geom.East,
	}
}

// WithStepCost sets the cost of a forward step. Non-positive costs are
// reported as ErrOptionViolation.
func WithStepCost(c int64) Option {
	return func(o *Options) {
		if c <= 0 {
			o.err = ErrOptionViolation
			return
		}
		o.StepCost = c
	}
}

// WithTurnCost sets the cost of a 90° rotation. Negative costs are
// reported as ErrOptionViolation.
func WithTurnCost(c int64) Option {
	return func(o *Options) {
		if c < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.TurnCost = c
	}
}

// WithStartFacing sets the facing of the initial state.
func WithStartFacing(d geom.Direction) Option {
	return func(o *Options) {
		if d > geom.West {
			o.err = ErrOptionViolation
			return
		}
		o.StartFacing = d
	}
}

// WithShuffle expands successor moves in an order drawn from r.
func WithShuffle(r *rand.Rand) Option {
	return func(o *Options) {
		o.Shuffle = r
	}
}
