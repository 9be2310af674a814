package cluster_test

import (
	"fmt"

	"github.com/katalvlaran/puzzlekit/cluster"
	"github.com/katalvlaran/puzzlekit/geom"
)

// five boxes on a line at x = 0, 1, 10, 12 and 30
var line = []geom.Point3{{X: 0}, {X: 1}, {X: 10}, {X: 12}, {X: 30}}

func ExampleConnectClosest() {
	uf, err := cluster.ConnectClosest(line, 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(uf.Sizes())
	// Output: [2 2 1]
}

func ExampleLargestProduct() {
	prod, _ := cluster.LargestProduct(line, 2, 2)
	fmt.Println(prod)
	// Output: 4
}

func ExampleLastLink() {
	p, ok, _ := cluster.LastLink(line)
	fmt.Println(ok, p.P.Coords[0], p.Q.Coords[0], p.DistSq)
	// Output: true 12 30 324
}
