package geom

import "fmt"

// Box is an axis-aligned bounding box in len(Min) dimensions. Both corners
// are inclusive. The invariant Min[i] <= Max[i] holds for boxes built by
// NewBox, BoxOf and Extend.
type Box struct {
	Min, Max []int64
}

// NewBox validates and copies the two corners into a Box.
// Returns ErrDimension if the corners differ in length and ErrInvertedBox
// if min[i] > max[i] on any axis.
func NewBox(min, max []int64) (Box, error) {
	if len(min) != len(max) {
		return Box{}, fmt.Errorf("%w: min has %d coords, max has %d", ErrDimension, len(min), len(max))
	}
	for i := range min {
		if min[i] > max[i] {
			return Box{}, fmt.Errorf("%w: axis %d has min %d > max %d", ErrInvertedBox, i, min[i], max[i])
		}
	}
	b := Box{Min: make([]int64, len(min)), Max: make([]int64, len(max))}
	copy(b.Min, min)
	copy(b.Max, max)
	return b, nil
}

// PointBox returns the degenerate box containing only p.
func PointBox(p []int64) Box {
	b := Box{Min: make([]int64, len(p)), Max: make([]int64, len(p))}
	copy(b.Min, p)
	copy(b.Max, p)
	return b
}

// BoxOf returns the tight bounding box of points. All points must share
// the dimension of the first one.
func BoxOf(points [][]int64) (Box, error) {
	if len(points) == 0 {
		return Box{}, ErrEmptyBox
	}
	b := PointBox(points[0])
	for i, p := range points[1:] {
		if len(p) != b.Dims() {
			return Box{}, fmt.Errorf("%w: point %d has %d coords, want %d", ErrDimension, i+1, len(p), b.Dims())
		}
		b.Extend(p)
	}
	return b, nil
}

// Dims returns the dimension of b.
func (b Box) Dims() int { return len(b.Min) }

// Extend grows b in place so that it contains p.
func (b Box) Extend(p []int64) {
	for i, v := range p {
		if v < b.Min[i] {
			b.Min[i] = v
		}
		if v > b.Max[i] {
			b.Max[i] = v
		}
	}
}

// Union grows b in place so that it contains o.
func (b Box) Union(o Box) {
	b.Extend(o.Min)
	b.Extend(o.Max)
}

// Contains reports whether p lies inside b (faces included).
func (b Box) Contains(p []int64) bool {
	for i, v := range p {
		if v < b.Min[i] || v > b.Max[i] {
			return false
		}
	}
	return true
}

// Intersects reports whether b and o share at least one point.
func (b Box) Intersects(o Box) bool {
	for i := range b.Min {
		if b.Max[i] < o.Min[i] || o.Max[i] < b.Min[i] {
			return false
		}
	}
	return true
}

// DistSqPoint returns 0 if p is inside b, else the squared distance from p
// to the nearest face of b.
func (b Box) DistSqPoint(p []int64) uint64 {
	var sum uint64
	for i, v := range p {
		var d uint64
		switch {
		case v < b.Min[i]:
			d = uint64(b.Min[i] - v)
		case v > b.Max[i]:
			d = uint64(v - b.Max[i])
		}
		sum += d * d
	}
	return sum
}

// DistSqBox returns 0 if b and o overlap, else the squared distance between
// their closest faces.
func (b Box) DistSqBox(o Box) uint64 {
	var sum uint64
	for i := range b.Min {
		var d uint64
		switch {
		case o.Max[i] < b.Min[i]:
			d = uint64(b.Min[i] - o.Max[i])
		case b.Max[i] < o.Min[i]:
			d = uint64(o.Min[i] - b.Max[i])
		}
		sum += d * d
	}
	return sum
}

// Extent returns the sum of the side lengths of b.
func (b Box) Extent() int64 {
	var s int64
	for i := range b.Min {
		s += b.Max[i] - b.Min[i]
	}
	return s
}

// Clone returns a deep copy of b.
func (b Box) Clone() Box {
	return PointBox(b.Min).withMax(b.Max)
}

func (b Box) withMax(max []int64) Box {
	copy(b.Max, max)
	return b
}
