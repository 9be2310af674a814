package trie_test

import (
	"fmt"

	"github.com/katalvlaran/puzzlekit/trie"
)

// ExampleTrie_CountDecompositions counts the ways to lay out a pattern from
// a set of towels.
func ExampleTrie_CountDecompositions() {
	a, _ := trie.NewAlphabet("bgruw")
	t := trie.New(a)
	_ = t.InsertAll([]string{"r", "wr", "b", "g", "bwu", "rb", "gb", "br"})

	for _, s := range []string{"gbbr", "rrbgbr", "ubwu"} {
		fmt.Println(s, t.CanDecompose(s), t.CountDecompositions(s))
	}
	// Output:
	// gbbr true 4
	// rrbgbr true 6
	// ubwu false 0
}
