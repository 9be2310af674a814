// Package dijkstra finds least-cost routes through walled mazes where the
// walker has an orientation.
//
// What:
//
//	The graph is implicit: a node is a State (cell, facing) and the edges are
//	  – step forward one cell in the current facing (StepCost, default 1),
//	    allowed only onto an open cell;
//	  – rotate 90° left or right in place (TurnCost, default 1000).
//	Turning around therefore costs two rotations. The initial state is
//	(Start, StartFacing) with cost 0, and the target is the End cell in any
//	facing.
//
//	Solve fills a flat cost table indexed by row, column and facing. It uses
//	a binary heap with lazy decrease-key: a state is pushed again whenever
//	its cost strictly improves and stale entries are dropped when popped.
//	The loop runs on until the heap minimum exceeds the optimum, so all
//	facings that reach End at the optimum are reported in Result.Facings.
//
//	OptimalCells walks the predecessor graph backwards from those end states
//	and returns every cell that lies on at least one optimal route.
//
// Complexity:
//
//	– Solve:        O(S log S) time, O(S) space, S = 4·rows·cols.
//	– OptimalCells: O(S) time and space.
//
// Errors:
//
//	– ErrNoStart, ErrNoEnd, ErrBadCell from ParseMaze.
//	– ErrOptionViolation from Solve or OptimalCells for a non-positive step
//	  cost, a negative turn cost or an invalid start facing.
//
// An unreachable end is reported by ok == false, never as an error.
package dijkstra
