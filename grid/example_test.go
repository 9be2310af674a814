package grid_test

import (
	"fmt"

	"github.com/katalvlaran/puzzlekit/grid"
)

// ExampleGrid_Regions prices the fences of a small garden.
func ExampleGrid_Regions() {
	g, err := grid.FromRows([]string{"AAAA", "BBCD", "BBCC", "EEEC"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range g.Regions(grid.Conn4) {
		fmt.Printf("%c area=%d perimeter=%d sides=%d\n", r.Label, r.Area, r.Perimeter, r.Sides)
	}
	byPerimeter, bySides := grid.FencePrice(g.Regions(grid.Conn4))
	fmt.Println(byPerimeter, bySides)
	// Output:
	// A area=4 perimeter=10 sides=4
	// B area=4 perimeter=8 sides=4
	// C area=4 perimeter=10 sides=8
	// D area=1 perimeter=4 sides=4
	// E area=3 perimeter=8 sides=4
	// 140 80
}

// ExampleGrid_Erode strips cells with fewer than four live neighbors until
// the rest is stable.
func ExampleGrid_Erode() {
	g, _ := grid.FromRows([]string{
		"@@@@..@",
		"@@@@...",
		"@@@@...",
		"@@@@...",
	})
	fmt.Println(g.Erode('@', '.', 4))
	fmt.Print(g)
	// Output:
	// 5
	// .@@....
	// @@@@...
	// @@@@...
	// .@@....
}
