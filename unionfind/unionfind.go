package unionfind

import (
	"slices"
)

// UnionFind is a disjoint-set forest. The zero value is an empty forest;
// use New to allocate elements.
type UnionFind struct {
	parent     []int
	size       []int
	components int
}

// New returns a forest of n singleton sets.
func New(n int) *UnionFind {
	u := &UnionFind{
		parent:     make([]int, n),
		size:       make([]int, n),
		components: n,
	}
	for i := range u.parent {
		u.parent[i] = i
		u.size[i] = 1
	}
	return u
}

// Find returns the representative of x's set.
//
// Steps:
//  1. Walk parent links up to the root.
//  2. Walk the same path again, pointing every node at the root.
func (u *UnionFind) Find(x int) int {
	root := x
	for u.parent[root] != root {
		root = u.parent[root]
	}
	for u.parent[x] != root {
		next := u.parent[x]
		u.parent[x] = root
		x = next
	}
	return root
}

// Union merges the sets of a and b. It returns false when they already
// share a root. On a size tie b's root goes under a's.
func (u *UnionFind) Union(a, b int) bool {
	ra, rb := u.Find(a), u.Find(b)
	if ra == rb {
		return false
	}
	if u.size[ra] < u.size[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	u.size[ra] += u.size[rb]
	u.components--
	return true
}

// Connected reports whether a and b are in the same set.
func (u *UnionFind) Connected(a, b int) bool { return u.Find(a) == u.Find(b) }

// SizeOf returns the number of elements in x's set.
func (u *UnionFind) SizeOf(x int) int { return u.size[u.Find(x)] }

// Components returns the number of disjoint sets.
func (u *UnionFind) Components() int { return u.components }

// Len returns the number of elements.
func (u *UnionFind) Len() int { return len(u.parent) }

// Sizes returns the size of every set, largest first.
func (u *UnionFind) Sizes() []int {
	out := make([]int, 0, u.components)
	for i, p := range u.parent {
		if p == i {
			out = append(out, u.size[i])
		}
	}
	slices.SortFunc(out, func(a, b int) int { return b - a })
	return out
}
