package trie

import (
	"errors"
	"fmt"
)

// Sentinel errors for trie construction.
var (
	// ErrAlphabet indicates an empty, oversized or repeating alphabet.
	ErrAlphabet = errors.New("trie: alphabet must hold 1..26 distinct symbols")
	// ErrNotInAlphabet indicates a word symbol outside the alphabet.
	ErrNotInAlphabet = errors.New("trie: symbol not in alphabet")
	// ErrEmptyWord indicates an attempt to store the empty word.
	ErrEmptyWord = errors.New("trie: empty word")
)

// MaxAlphabet is the largest supported alphabet.
const MaxAlphabet = 26

// Alphabet maps each declared symbol to a slot index 0..K-1. The zero
// Alphabet declares no symbols.
type Alphabet struct {
	symbols string
	index   [256]uint8 // slot+1; 0 means undeclared
}

// NewAlphabet declares the symbols, in slot order.
func NewAlphabet(symbols string) (Alphabet, error) {
	if len(symbols) == 0 || len(symbols) > MaxAlphabet {
		return Alphabet{}, fmt.Errorf("%w: got %d", ErrAlphabet, len(symbols))
	}
	a := Alphabet{symbols: symbols}
	for i := 0; i < len(symbols); i++ {
		c := symbols[i]
		if a.index[c] != 0 {
			return Alphabet{}, fmt.Errorf("%w: %q repeats", ErrAlphabet, c)
		}
		a.index[c] = uint8(i + 1)
	}
	return a, nil
}

// Size returns K.
func (a Alphabet) Size() int { return len(a.symbols) }

// Index returns the slot of c and false if c is not declared.
func (a Alphabet) Index(c byte) (int, bool) {
	i := a.index[c]
	return int(i) - 1, i != 0
}

// Trie is a set of words over an Alphabet.
type Trie struct {
	alpha    Alphabet
	k        int
	children []int32 // node n's slot s is children[n*k+s]; 0 means absent
	terminal []bool
	words    int
}

// New returns an empty trie over alpha.
func New(alpha Alphabet) *Trie {
	k := alpha.Size()
	return &Trie{
		alpha:    alpha,
		k:        k,
		children: make([]int32, k),
		terminal: make([]bool, 1),
	}
}

// Insert stores s. Every symbol is checked before anything is added, so a
// rejected word leaves the trie unchanged.
func (t *Trie) Insert(s string) error {
	if s == "" {
		return ErrEmptyWord
	}
	for i := 0; i < len(s); i++ {
		if _, ok := t.alpha.Index(s[i]); !ok {
			return fmt.Errorf("%w: %q at position %d of %q", ErrNotInAlphabet, s[i], i, s)
		}
	}
	n := int32(0)
	for i := 0; i < len(s); i++ {
		slot, _ := t.alpha.Index(s[i])
		at := int(n)*t.k + slot
		if t.children[at] == 0 {
			t.children[at] = int32(len(t.terminal))
			t.terminal = append(t.terminal, false)
			t.children = append(t.children, make([]int32, t.k)...)
		}
		n = t.children[at]
	}
	if !t.terminal[n] {
		t.terminal[n] = true
		t.words++
	}
	return nil
}

// InsertAll stores every word, stopping at the first error.
func (t *Trie) InsertAll(words []string) error {
	for _, w := range words {
		if err := t.Insert(w); err != nil {
			return err
		}
	}
	return nil
}

// Len returns the number of distinct stored words.
func (t *Trie) Len() int { return t.words }

// walk follows s from the root and calls fn with the length of every
// stored prefix, stopping early when fn returns false.
func (t *Trie) walk(s string, fn func(k int) bool) {
	n := int32(0)
	for i := 0; i < len(s); i++ {
		slot, ok := t.alpha.Index(s[i])
		if !ok {
			return
		}
		n = t.children[int(n)*t.k+slot]
		if n == 0 {
			return
		}
		if t.terminal[n] && !fn(i+1) {
			return
		}
	}
}

// Contains reports whether s was stored.
func (t *Trie) Contains(s string) bool {
	found := false
	t.walk(s, func(k int) bool {
		found = k == len(s)
		return !found
	})
	return found
}

// PrefixesOf returns the lengths of the stored words that prefix s,
// in increasing order.
func (t *Trie) PrefixesOf(s string) []int {
	var out []int
	t.walk(s, func(k int) bool {
		out = append(out, k)
		return true
	})
	return out
}

// PrefixStrings is PrefixesOf with the prefixes themselves.
func (t *Trie) PrefixStrings(s string) []string {
	ks := t.PrefixesOf(s)
	out := make([]string, len(ks))
	for i, k := range ks {
		out[i] = s[:k]
	}
	return out
}

// CanDecompose reports whether s splits into stored words.
// The empty string trivially does.
func (t *Trie) CanDecompose(s string) bool {
	n := len(s)
	reach := make([]bool, n+1)
	reach[0] = true
	for i := 0; i < n; i++ {
		if !reach[i] {
			continue
		}
		done := false
		t.walk(s[i:], func(k int) bool {
			reach[i+k] = true
			done = i+k == n
			return !done
		})
		if done {
			return true
		}
	}
	return reach[n]
}

// CountDecompositions returns the number of ways s splits into stored
// words. The empty string has one (empty) decomposition.
func (t *Trie) CountDecompositions(s string) uint64 {
	n := len(s)
	ways := make([]uint64, n+1)
	ways[0] = 1
	for i := 0; i < n; i++ {
		if ways[i] == 0 {
			continue
		}
		w := ways[i]
		t.walk(s[i:], func(k int) bool {
			ways[i+k] += w
			return true
		})
	}
	return ways[n]
}
