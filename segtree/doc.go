// Package segtree implements an implicit max segment tree over a fixed
// number of slots, answering "leftmost slot whose value is at least x".
//
// Layout: with N the smallest power of two ≥ the slot count, the tree is an
// array of 2·N aggregates. Index 1 is the root, the children of i are 2i and
// 2i+1, and slot k lives at N+k. Padding leaves hold 0.
//
// Tie-break: LeftmostWithCapacity descends into the left child whenever its
// aggregate is ≥ x, so when both subtrees could serve the request the left
// one wins. This is what makes the answer the smallest qualifying index.
//
// Complexity: New O(n); Update and LeftmostWithCapacity O(log n).
package segtree
