package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/puzzlekit/dijkstra"
)

// ExampleSolve computes the cheapest route through a small maze where the
// walker starts facing east and every rotation costs 1000.
func ExampleSolve() {
	m, err := dijkstra.ParseMaze([]string{
		"#####",
		"#...#",
		"#S#E#",
		"#...#",
		"#####",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, ok, err := dijkstra.Solve(m)
	if err != nil || !ok {
		fmt.Println("no route", err)
		return
	}
	cells, err := dijkstra.OptimalCells(m, res)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cost:", res.Cost)
	fmt.Println("end facings:", res.Facings)
	fmt.Println("cells on an optimal route:", len(cells))
	// Output:
	// cost: 3004
	// end facings: [N S]
	// cells on an optimal route: 8
}

// ExampleWithTurnCost makes rotations cheap, which turns the search into a
// plain shortest path with a small penalty per corner.
func ExampleWithTurnCost() {
	m, _ := dijkstra.ParseMaze([]string{
		"######",
		"#S...#",
		"####E#",
		"######",
	})
	res, _, _ := dijkstra.Solve(m, dijkstra.WithTurnCost(1))
	fmt.Println(res.Cost)
	// Output: 5
}
