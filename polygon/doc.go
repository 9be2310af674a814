// Package polygon finds the largest axis-aligned rectangle whose opposite
// corners are two vertices of a rectilinear polygon.
//
// Vertices are lattice tiles given in boundary order; consecutive vertices
// (and the last with the first) share a row or a column. Rectangles are
// measured in tiles, both corners included.
//
// LargestInside keeps only rectangles whose every tile lies inside the
// polygon or on its boundary. Coordinates are compressed to the distinct
// vertex rows and columns at double resolution: even indices are the grid
// lines through vertices and odd indices the gaps between them. A crossing
// parity sweep classifies each gap cell, lines and points inherit from the
// cells they touch, and a 2-D prefix sum answers each candidate rectangle
// in constant time.
//
// Complexity: O(n²) for both functions, n = number of vertices.
package polygon
