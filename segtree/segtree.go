package segtree

import (
	"errors"
	"fmt"
	"iter"
)

// ErrIndexOutOfRange indicates a slot index outside 0..Len()-1.
var ErrIndexOutOfRange = errors.New("segtree: slot index out of range")

// Slot is one leaf: its capacity and an opaque payload carried alongside.
type Slot[P any] struct {
	Value   uint64
	Payload P
}

// Tree is a max segment tree over Len() slots carrying payloads of type P.
type Tree[P any] struct {
	n     int
	base  int // N, the first leaf index
	agg   []uint64
	slots []Slot[P]
}

// New builds a tree whose slots hold values and zero payloads.
func New[P any](values []uint64) *Tree[P] {
	slots := make([]Slot[P], len(values))
	for i, v := range values {
		slots[i].Value = v
	}
	return NewWithPayloads(slots)
}

// NewWithPayloads builds a tree over a copy of slots.
// Internal aggregates are filled bottom-up in O(n).
func NewWithPayloads[P any](slots []Slot[P]) *Tree[P] {
	base := 1
	for base < len(slots) {
		base <<= 1
	}
	t := &Tree[P]{
		n:     len(slots),
		base:  base,
		agg:   make([]uint64, 2*base),
		slots: append([]Slot[P](nil), slots...),
	}
	for i, s := range slots {
		t.agg[base+i] = s.Value
	}
	for i := base - 1; i >= 1; i-- {
		t.agg[i] = max(t.agg[2*i], t.agg[2*i+1])
	}
	return t
}

// Len returns the number of slots.
func (t *Tree[P]) Len() int { return t.n }

// Max returns the largest slot value, 0 for an empty tree.
func (t *Tree[P]) Max() uint64 {
	if t.n == 0 {
		return 0
	}
	return t.agg[1]
}

// Get returns slot i.
func (t *Tree[P]) Get(i int) (Slot[P], error) {
	if i < 0 || i >= t.n {
		return Slot[P]{}, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, t.n)
	}
	return t.slots[i], nil
}

// Update replaces the value and payload of slot i and re-aggregates its
// ancestors, stopping at the first one whose aggregate is unchanged.
func (t *Tree[P]) Update(i int, value uint64, payload P) error {
	if i < 0 || i >= t.n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, t.n)
	}
	t.slots[i] = Slot[P]{Value: value, Payload: payload}
	j := t.base + i
	t.agg[j] = value
	for j >>= 1; j >= 1; j >>= 1 {
		m := max(t.agg[2*j], t.agg[2*j+1])
		if t.agg[j] == m {
			break
		}
		t.agg[j] = m
	}
	return nil
}

// LeftmostWithCapacity returns the smallest slot index whose value is ≥ x,
// or false when no slot qualifies.
func (t *Tree[P]) LeftmostWithCapacity(x uint64) (int, bool) {
	if t.n == 0 || t.agg[1] < x {
		return 0, false
	}
	i := 1
	for i < t.base {
		if t.agg[2*i] >= x {
			i = 2 * i
		} else {
			i = 2*i + 1
		}
	}
	return i - t.base, true
}

// Slots iterates over the live slots in index order.
func (t *Tree[P]) Slots() iter.Seq2[int, Slot[P]] {
	return func(yield func(int, Slot[P]) bool) {
		for i, s := range t.slots {
			if !yield(i, s) {
				return
			}
		}
	}
}
