package unionfind_test

import (
	"fmt"

	"github.com/katalvlaran/puzzlekit/unionfind"
)

func ExampleUnionFind() {
	u := unionfind.New(5)
	u.Union(0, 1)
	u.Union(3, 4)
	u.Union(1, 4)
	fmt.Println(u.Components(), u.SizeOf(0), u.Connected(0, 3), u.Sizes())
	// Output: 2 4 true [4 1]
}
