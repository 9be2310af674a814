// Package interval implements integer interval arithmetic: overlap and
// containment tests, sorted merging of arbitrary interval lists, and
// piecewise-linear remapping of ranges through translation tables.
//
// Convention:
//
//	Every Interval is closed-open, [Start, End). An interval with
//	Start == End is empty; Start > End is invalid input and is rejected with
//	ErrInverted by every operation that accepts intervals. Two intervals
//	"touch" when one ends exactly where the other starts; Merge coalesces
//	both overlapping and touching intervals.
//
// Conversions:
//
//	A Conversion pairs a source Domain with a signed Delta. Any part of a
//	range inside the Domain is translated by Delta; the rest passes through
//	unchanged. A conversion layer is an ordered list of Conversions: pieces
//	translated by an earlier entry are not re-examined by later entries of
//	the same layer, while untouched pieces fall through to the next entry.
//
//	   input    |----------------|
//	   domain         |-----|
//	   result   |-----|         |---|   untouched remainders
//	                  |-----|+Δ         translated overlap
//
// Complexity:
//
//   - Merge:            O(n log n) time, O(n) memory.
//   - SplitConversion:  O(1).
//   - ApplyConversions: O(k·m) for k conversions and m live pieces (m ≤ 2k+1).
//
// Errors:
//
//   - ErrInverted: an interval with Start > End was supplied.
package interval
