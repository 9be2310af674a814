package interval

import (
	"slices"
	"sort"

	"golang.org/x/exp/constraints"
)

// Merge returns the union of xs as a list of pairwise disjoint,
// non-touching intervals sorted by Start. Empty intervals are dropped.
// The input slice is not modified.
//
// Steps:
//  1. Validate every interval (ErrInverted on the first bad one).
//  2. Copy and sort by Start.
//  3. Sweep once, extending the current run while the next interval
//     starts at or before its End.
//
// Complexity: O(n log n) time, O(n) memory.
func Merge[T constraints.Signed](xs []Interval[T]) ([]Interval[T], error) {
	sorted := make([]Interval[T], 0, len(xs))
	for _, x := range xs {
		if err := x.Validate(); err != nil {
			return nil, err
		}
		if !x.Empty() {
			sorted = append(sorted, x)
		}
	}
	if len(sorted) == 0 {
		return []Interval[T]{}, nil
	}
	slices.SortFunc(sorted, func(a, b Interval[T]) int {
		switch {
		case a.Start < b.Start:
			return -1
		case a.Start > b.Start:
			return 1
		}
		return 0
	})

	merged := make([]Interval[T], 0, len(sorted))
	cur := sorted[0]
	for _, next := range sorted[1:] {
		if next.Start <= cur.End {
			if next.End > cur.End {
				cur.End = next.End
			}
			continue
		}
		merged = append(merged, cur)
		cur = next
	}
	merged = append(merged, cur)
	return merged, nil
}

// Covered returns the number of integers in the union of xs.
func Covered[T constraints.Signed](xs []Interval[T]) (T, error) {
	merged, err := Merge(xs)
	if err != nil {
		return 0, err
	}
	var total T
	for _, m := range merged {
		total += m.Len()
	}
	return total, nil
}

// ContainsAny reports whether x lies in any interval of merged, which must
// be the output of Merge (sorted and disjoint). O(log n).
func ContainsAny[T constraints.Signed](merged []Interval[T], x T) bool {
	// first interval ending after x
	k := sort.Search(len(merged), func(i int) bool { return merged[i].End > x })
	return k < len(merged) && merged[k].Start <= x
}

// MinStart returns the smallest Start among non-empty intervals of xs.
func MinStart[T constraints.Signed](xs []Interval[T]) (T, bool) {
	var best T
	found := false
	for _, x := range xs {
		if x.Empty() {
			continue
		}
		if !found || x.Start < best {
			best, found = x.Start, true
		}
	}
	return best, found
}
