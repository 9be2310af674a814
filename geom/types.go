package geom

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for geom operations.
var (
	// ErrInvertedBox indicates a box whose minimum exceeds its maximum on some axis.
	ErrInvertedBox = errors.New("geom: box minimum exceeds maximum")
	// ErrDimension indicates mismatched vector dimensions.
	ErrDimension = errors.New("geom: dimension mismatch")
	// ErrEmptyBox indicates a bounding box was requested for zero points.
	ErrEmptyBox = errors.New("geom: bounding box of no points")
)

// Direction is one of the four cardinal headings. The numeric values are
// stable and usable as array indices (0..3).
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the cardinal headings in N, E, S, W order.
var Directions = [4]Direction{North, East, South, West}

// dirDelta holds (dRow, dCol) per Direction, indexed by the Direction value.
var dirDelta = [4][2]int32{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Delta returns the signed (row, col) offset of one step in d.
func (d Direction) Delta() (dr, dc int32) {
	return dirDelta[d&3][0], dirDelta[d&3][1]
}

// Opposite returns the heading rotated by 180°.
func (d Direction) Opposite() Direction { return (d + 2) & 3 }

// Right returns the heading rotated 90° clockwise.
func (d Direction) Right() Direction { return (d + 1) & 3 }

// Left returns the heading rotated 90° counter-clockwise.
func (d Direction) Left() Direction { return (d + 3) & 3 }

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return "?"
}

// AbsDiff returns |x - y| without overflow for non-extreme inputs.
func AbsDiff[T constraints.Signed](x, y T) T {
	if x > y {
		return x - y
	}
	return y - x
}
