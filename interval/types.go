package interval

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrInverted indicates an interval whose Start exceeds its End.
var ErrInverted = errors.New("interval: start exceeds end")

// Interval is the closed-open range [Start, End) over a signed integer type.
type Interval[T constraints.Signed] struct {
	Start, End T
}

// Conversion translates the part of a range lying inside Domain by Delta.
type Conversion[T constraints.Signed] struct {
	Domain Interval[T]
	Delta  T
}

// New returns [start, end), or ErrInverted if start > end.
func New[T constraints.Signed](start, end T) (Interval[T], error) {
	i := Interval[T]{Start: start, End: end}
	if err := i.Validate(); err != nil {
		return Interval[T]{}, err
	}
	return i, nil
}

// Closed returns the closed-open equivalent of the closed range [lo, hi].
func Closed[T constraints.Signed](lo, hi T) (Interval[T], error) {
	return New(lo, hi+1)
}

// Validate returns ErrInverted, wrapped with the offending bounds, when
// i.Start > i.End.
func (i Interval[T]) Validate() error {
	if i.Start > i.End {
		return fmt.Errorf("%w: [%d, %d)", ErrInverted, i.Start, i.End)
	}
	return nil
}

// Len returns End − Start.
func (i Interval[T]) Len() T { return i.End - i.Start }

// Empty reports whether i holds no integers.
func (i Interval[T]) Empty() bool { return i.Start >= i.End }

// Contains reports whether Start <= x < End.
func (i Interval[T]) Contains(x T) bool { return x >= i.Start && x < i.End }

// Overlaps reports whether i and o share at least one integer.
func (i Interval[T]) Overlaps(o Interval[T]) bool {
	return max(i.Start, o.Start) < min(i.End, o.End)
}

// Touches reports whether i and o overlap or are adjacent.
func (i Interval[T]) Touches(o Interval[T]) bool {
	return max(i.Start, o.Start) <= min(i.End, o.End)
}

// Covers reports whether o lies entirely within i.
func (i Interval[T]) Covers(o Interval[T]) bool {
	return i.Start <= o.Start && o.End <= i.End
}

// Intersect returns the common part of i and o; ok is false when they do
// not overlap.
func (i Interval[T]) Intersect(o Interval[T]) (Interval[T], bool) {
	s, e := max(i.Start, o.Start), min(i.End, o.End)
	if s >= e {
		return Interval[T]{}, false
	}
	return Interval[T]{Start: s, End: e}, true
}

// Shift returns i translated by d.
func (i Interval[T]) Shift(d T) Interval[T] {
	return Interval[T]{Start: i.Start + d, End: i.End + d}
}

func (i Interval[T]) String() string {
	return fmt.Sprintf("[%d, %d)", i.Start, i.End)
}
