package geom

// Point2 is a lattice position addressed by row and column.
type Point2 struct {
	Row, Col int32
}

// Bounds describes a Rows×Cols lattice with the origin at (0,0).
type Bounds struct {
	Rows, Cols int32
}

// P2 is shorthand for Point2{Row: r, Col: c}.
func P2(r, c int) Point2 { return Point2{Row: int32(r), Col: int32(c)} }

// Within reports whether p lies inside b.
func (p Point2) Within(b Bounds) bool {
	return p.Row >= 0 && p.Col >= 0 && p.Row < b.Rows && p.Col < b.Cols
}

// Add returns p translated by (dr, dc) with no bounds check.
func (p Point2) Add(dr, dc int32) Point2 {
	return Point2{Row: p.Row + dr, Col: p.Col + dc}
}

// Move returns p moved one cell in d with no bounds check.
func (p Point2) Move(d Direction) Point2 {
	dr, dc := d.Delta()
	return p.Add(dr, dc)
}

// Step moves p one cell in d. It returns false if the destination leaves b.
func (p Point2) Step(d Direction, b Bounds) (Point2, bool) {
	q := p.Move(d)
	if !q.Within(b) {
		return Point2{}, false
	}
	return q, true
}

// Manhattan returns |Δrow| + |Δcol|.
func (p Point2) Manhattan(q Point2) int64 {
	return AbsDiff(int64(p.Row), int64(q.Row)) + AbsDiff(int64(p.Col), int64(q.Col))
}

// ToUV rotates p into (u, v) = (row+col, row−col).
func (p Point2) ToUV() UV {
	r, c := int64(p.Row), int64(p.Col)
	return UV{U: r + c, V: r - c}
}

// UV is a Point2 rotated by 45°. Only points with U and V of equal parity
// have a lattice preimage.
type UV struct {
	U, V int64
}

// Chebyshev returns max(|Δu|, |Δv|), equal to the Manhattan distance of
// the preimages.
func (a UV) Chebyshev(b UV) int64 {
	return max(AbsDiff(a.U, b.U), AbsDiff(a.V, b.V))
}

// Point2 returns the lattice preimage of a. The result is only meaningful
// when U and V share parity.
func (a UV) Point2() Point2 {
	return Point2{Row: int32((a.U + a.V) / 2), Col: int32((a.U - a.V) / 2)}
}

// Point3 is a lattice position in three dimensions.
type Point3 struct {
	X, Y, Z int32
}

// Neighbors returns the six face-adjacent points in ±X, ±Y, ±Z order.
func (p Point3) Neighbors() [6]Point3 {
	return [6]Point3{
		{p.X + 1, p.Y, p.Z}, {p.X - 1, p.Y, p.Z},
		{p.X, p.Y + 1, p.Z}, {p.X, p.Y - 1, p.Z},
		{p.X, p.Y, p.Z + 1}, {p.X, p.Y, p.Z - 1},
	}
}

// SquareDistance returns the squared Euclidean distance to q.
func (p Point3) SquareDistance(q Point3) uint64 {
	dx := uint64(AbsDiff(int64(p.X), int64(q.X)))
	dy := uint64(AbsDiff(int64(p.Y), int64(q.Y)))
	dz := uint64(AbsDiff(int64(p.Z), int64(q.Z)))
	return dx*dx + dy*dy + dz*dz
}

// Less orders points lexicographically by X, then Y, then Z.
func (p Point3) Less(q Point3) bool {
	if p.X != q.X {
		return p.X < q.X
	}
	if p.Y != q.Y {
		return p.Y < q.Y
	}
	return p.Z < q.Z
}

// Coords returns p as a coordinate vector, the form kdtree consumes.
func (p Point3) Coords() []int64 {
	return []int64{int64(p.X), int64(p.Y), int64(p.Z)}
}

// SquareDistance returns the squared Euclidean distance between two
// coordinate vectors of equal length.
func SquareDistance(a, b []int64) uint64 {
	var sum uint64
	for i := range a {
		d := uint64(AbsDiff(a[i], b[i]))
		sum += d * d
	}
	return sum
}
