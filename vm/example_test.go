package vm_test

import (
	"fmt"

	"github.com/katalvlaran/puzzlekit/vm"
)

func ExampleExec() {
	prog, _ := vm.ParseProgram("0,1,5,4,3,0")
	out, err := vm.Exec(prog, 729)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(vm.Format(out))
	// Output: 4,6,3,5,6,3,5,2,1,0
}

func ExampleSearch() {
	prog, _ := vm.ParseProgram("0,3,5,4,3,0")
	a, ok, _ := vm.Search(prog)
	fmt.Println(a, ok)
	// Output: 117440 true
}
