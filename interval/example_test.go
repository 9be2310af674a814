package interval_test

import (
	"fmt"

	"github.com/katalvlaran/puzzlekit/interval"
)

func ExampleMerge() {
	merged, err := interval.Merge([]interval.Interval[int64]{
		{Start: 2, End: 10}, {Start: 10, End: 12}, {Start: 13, End: 18}, {Start: 3, End: 8},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(merged)
	// Output: [[2, 12) [13, 18)]
}

// ExampleApplyConversions sends the seeds 79..92 through one almanac layer.
func ExampleApplyConversions() {
	var layer []interval.Conversion[int64]
	for _, row := range [][3]int64{{50, 98, 2}, {52, 50, 48}} {
		c, err := interval.NewConversion(row[0], row[1], row[2])
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		layer = append(layer, c)
	}
	seeds, _ := interval.Closed[int64](79, 92)
	converted, untouched, _ := interval.ApplyConversions(seeds, layer)
	fmt.Println(converted, len(untouched))
	// Output: [[81, 95)] 0
}
