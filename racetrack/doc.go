// Package racetrack counts wall-phasing shortcuts on a grid racetrack.
//
// A cheat lets the racer leave the track at cell a and re-enter at cell b
// after at most maxCheat moves that ignore walls. It is worth
// dist(b) − dist(a) − manhattan(a, b) moves, where dist is the BFS
// distance from the start along the track.
//
// CountCheats rotates every track cell into (u, v) = (row+col, row−col).
// The Manhattan ball of radius maxCheat then becomes an axis-aligned square,
// which a k-d tree answers with one orthogonal range query per cell. The
// scan over path cells may be split across goroutines with WithWorkers;
// each worker owns a disjoint slice of the path and the partial counts are
// summed, so the total is the same for any worker count.
//
// CountCheatsBrute checks every ordered pair of track cells and exists as
// a reference.
package racetrack
