// Package unionfind implements a disjoint-set forest over the integers
// 0..n-1 with union by size and full path compression.
//
// What:
//
//   - Find returns the representative of an element and flattens the path
//     it walked.
//   - Union attaches the smaller tree under the larger root and reports
//     whether two distinct sets were merged.
//   - SizeOf, Components and Sizes expose component cardinalities.
//
// Invariants:
//
//   - size[root] equals the number of elements in that set.
//   - Components() equals the number of distinct roots and drops by one
//     exactly when Union returns true.
//
// Complexity: O(α(n)) amortized per operation, O(n) memory.
//
// Indices outside 0..n-1 panic like slice indexing.
package unionfind
