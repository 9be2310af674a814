package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/puzzlekit/geom"
	"github.com/katalvlaran/puzzlekit/grid"
)

// ParseMaze builds a Maze from text rows of '#', '.', 'S' and 'E'.
// Exactly one 'S' and one 'E' must be present; both are stored as Space.
//
// Errors: grid.ErrEmptyGrid / grid.ErrNonRectangular for malformed rows,
// ErrBadCell (with coordinate) for an unknown byte or a repeated marker,
// ErrNoStart and ErrNoEnd for missing markers.
func ParseMaze(rows []string) (*Maze, error) {
	g, err := grid.FromRows(rows)
	if err != nil {
		return nil, err
	}

	m := &Maze{Grid: g}
	var seenStart, seenEnd bool
	for i, b := range g.Cells {
		p := g.Coordinate(i)
		switch b {
		case Wall, Space:
		case Start:
			if seenStart {
				return nil, fmt.Errorf("%w: second start at %v", ErrBadCell, p)
			}
			seenStart, m.Start = true, p
			g.Cells[i] = Space
		case End:
			if seenEnd {
				return nil, fmt.Errorf("%w: second end at %v", ErrBadCell, p)
			}
			seenEnd, m.End = true, p
			g.Cells[i] = Space
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

	return m, nil
}

// Solve runs Dijkstra over (cell, facing) states of m. From a state the
// walker may step forward one cell (StepCost) if the destination is open,
// or rotate 90° left or right in place (TurnCost).
//
// The search keeps popping until the heap minimum exceeds the optimum, so
// every state that costs no more than the optimum is final in the returned
// table. ok is false when the end cell is unreachable; that is not an error.
//
// Complexity: O(S log S) time and O(S) space where S = 4·rows·cols.
func Solve(m *Maze, opts ...Option) (*Result, bool, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, false, cfg.err
	}

	// 2) Initialise the runner and seed the start state with cost 0.
	r := &runner{
		maze:    m,
		options: cfg,
		table:   newCostTable(m.Grid.Bounds()),
		best:    Inf,
	}
	r.init()

	// 3) Main loop.
	r.process()
	if r.best == Inf {
		return nil, false, nil
	}

	// 4) Collect the end facings that hit the optimum.
	res := &Result{Cost: r.best, Table: r.table}
	for _, d := range geom.Directions {
		if r.table.At(State{Pos: m.End, Facing: d}) == r.best {
			res.Facings = append(res.Facings, d)
		}
	}

	return res, true, nil
}

// runner holds the mutable state for a single Solve execution.
type runner struct {
	maze    *Maze
	options Options
	table   CostTable
	pq      nodePQ
	best    int64 // least cost seen at the end cell so far
}

func (r *runner) init() {
	s := State{Pos: r.maze.Start, Facing: r.options.StartFacing}
	r.table.set(s, 0)
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{state: s, cost: 0})
}

// process pops states in cost order. A popped entry whose cost is worse
// than the table entry is stale and skipped.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if item.cost > r.table.At(item.state) {
			continue
		}
		if item.cost > r.best {
			break
		}
		if item.state.Pos == r.maze.End {
			r.best = min(r.best, item.cost)
			continue
		}
		r.relax(item)
	}
}

// relax pushes the forward step and both rotations out of item.
func (r *runner) relax(item *nodeItem) {
	s := item.state
	moves := [3]nodeItem{
		{state: State{Pos: s.Pos.Move(s.Facing), Facing: s.Facing}, cost: item.cost + r.options.StepCost},
		{state: State{Pos: s.Pos, Facing: s.Facing.Right()}, cost: item.cost + r.options.TurnCost},
		{state: State{Pos: s.Pos, Facing: s.Facing.Left()}, cost: item.cost + r.options.TurnCost},
	}
	if r.options.Shuffle != nil {
		r.options.Shuffle.Shuffle(len(moves), func(i, j int) { moves[i], moves[j] = moves[j], moves[i] })
	}

	for k := range moves {
		next := moves[k]
		if !r.maze.Open(next.state.Pos) {
			continue
		}
		// Strictly better only: equal-cost entries are already queued.
		if next.cost >= r.table.At(next.state) {
			continue
		}
		r.table.set(next.state, next.cost)
		heap.Push(&r.pq, &next)
	}
}

// OptimalCells returns the cells that lie on at least one optimal path from
// the start to the end, in row-major order. It walks the reversed move rules
// from every end state at res.Cost: a predecessor of (cell, dir) at cost k is
// (cell − dir, dir) at k − StepCost, or (cell, dir±90°) at k − TurnCost.
// The same options as the Solve call that produced res must be passed.
//
// Errors: ErrOptionViolation for invalid options.
func OptimalCells(m *Maze, res *Result, opts ...Option) ([]geom.Point2, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	t := res.Table
	seen := make(map[State]bool)
	stack := make([]State, 0, len(res.Facings))
	for _, d := range res.Facings {
		s := State{Pos: m.End, Facing: d}
		seen[s] = true
		stack = append(stack, s)
	}

	onPath := make([]bool, len(m.Grid.Cells))
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		onPath[m.Grid.Index(s.Pos)] = true

		k := t.At(s)
		preds := [3]struct {
			state State
			cost  int64
		}{
			{State{Pos: s.Pos.Move(s.Facing.Opposite()), Facing: s.Facing}, cfg.StepCost},
			{State{Pos: s.Pos, Facing: s.Facing.Left()}, cfg.TurnCost},
			{State{Pos: s.Pos, Facing: s.Facing.Right()}, cfg.TurnCost},
		}
		for _, p := range preds {
			c := t.At(p.state)
			if c == Inf || seen[p.state] || c+p.cost != k {
				continue
			}
			seen[p.state] = true
			stack = append(stack, p.state)
		}
	}

	var cells []geom.Point2
	for i, on := range onPath {
		if on {
			cells = append(cells, m.Grid.Coordinate(i))
		}
	}

	return cells, nil
}

// nodeItem is a state and the cost at which it was pushed.
type nodeItem struct {
	state State
	cost  int64
}

// nodePQ is a min-heap of *nodeItem ordered by cost, used with lazy
// decrease-key: improved states are pushed again and stale entries are
// skipped on pop.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].cost < pq[j].cost }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
