package interval

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// SplitConversion applies c to i.
//
// If i and c.Domain are disjoint the result is (nil, [i]). Otherwise the
// first result is the overlap translated by c.Delta and the second holds the
// zero, one or two untouched remainders of i, left remainder first.
// The translated piece and the remainders partition i.
func SplitConversion[T constraints.Signed](i Interval[T], c Conversion[T]) (*Interval[T], []Interval[T], error) {
	if err := i.Validate(); err != nil {
		return nil, nil, err
	}
	if err := c.Domain.Validate(); err != nil {
		return nil, nil, fmt.Errorf("conversion domain: %w", err)
	}
	overlap, ok := i.Intersect(c.Domain)
	if !ok {
		return nil, []Interval[T]{i}, nil
	}
	var rest []Interval[T]
	if overlap.Start > i.Start {
		rest = append(rest, Interval[T]{Start: i.Start, End: overlap.Start})
	}
	if overlap.End < i.End {
		rest = append(rest, Interval[T]{Start: overlap.End, End: i.End})
	}
	moved := overlap.Shift(c.Delta)
	return &moved, rest, nil
}

// ApplyConversions runs i through one conversion layer in order. Translated
// pieces are collected in converted and never re-examined by later entries;
// pieces no entry touched are returned in untouched.
func ApplyConversions[T constraints.Signed](i Interval[T], cs []Conversion[T]) (converted, untouched []Interval[T], err error) {
	remaining := []Interval[T]{i}
	for _, c := range cs {
		var leftovers []Interval[T]
		for _, piece := range remaining {
			moved, rest, err := SplitConversion(piece, c)
			if err != nil {
				return nil, nil, err
			}
			if moved != nil {
				converted = append(converted, *moved)
			}
			leftovers = append(leftovers, rest...)
		}
		remaining = leftovers
	}
	return converted, remaining, nil
}

// ApplyLayer maps every interval of is through one conversion layer and
// returns the translated and untouched pieces together.
func ApplyLayer[T constraints.Signed](is []Interval[T], cs []Conversion[T]) ([]Interval[T], error) {
	var out, passed []Interval[T]
	for _, i := range is {
		converted, untouched, err := ApplyConversions(i, cs)
		if err != nil {
			return nil, err
		}
		out = append(out, converted...)
		passed = append(passed, untouched...)
	}
	return append(out, passed...), nil
}

// ApplyLayers threads is through every layer in order.
func ApplyLayers[T constraints.Signed](is []Interval[T], layers [][]Conversion[T]) ([]Interval[T], error) {
	cur := is
	for n, layer := range layers {
		next, err := ApplyLayer(cur, layer)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", n, err)
		}
		cur = next
	}
	return cur, nil
}

// ConvertValue maps a single value through one layer: the first conversion
// whose Domain contains x applies, otherwise x passes through.
func ConvertValue[T constraints.Signed](x T, cs []Conversion[T]) T {
	for _, c := range cs {
		if c.Domain.Contains(x) {
			return x + c.Delta
		}
	}
	return x
}

// ConvertValueLayers maps x through every layer in order.
func ConvertValueLayers[T constraints.Signed](x T, layers [][]Conversion[T]) T {
	for _, layer := range layers {
		x = ConvertValue(x, layer)
	}
	return x
}

// FromStartLengths pairs a flat list (start₀, len₀, start₁, len₁, …) into
// intervals. A trailing unpaired value is ignored.
func FromStartLengths[T constraints.Signed](flat []T) ([]Interval[T], error) {
	out := make([]Interval[T], 0, len(flat)/2)
	for k := 0; k+1 < len(flat); k += 2 {
		i, err := New(flat[k], flat[k]+flat[k+1])
		if err != nil {
			return nil, fmt.Errorf("pair %d: %w", k/2, err)
		}
		out = append(out, i)
	}
	return out, nil
}

// NewConversion builds the conversion mapping [src, src+length) onto
// [dst, dst+length), the "destination source length" table form.
func NewConversion[T constraints.Signed](dst, src, length T) (Conversion[T], error) {
	d, err := New(src, src+length)
	if err != nil {
		return Conversion[T]{}, err
	}
	return Conversion[T]{Domain: d, Delta: dst - src}, nil
}
