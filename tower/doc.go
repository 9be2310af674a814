// Package tower simulates rocks falling into a seven-column chamber while
// jets of gas push them sideways, and extrapolates the tower height to huge
// rock counts by cycle detection.
//
// Rows are bitmasks with the leftmost column as bit 6. Each rock appears
// with its left edge two columns from the wall and its bottom three rows
// above the top of the tower, then alternates between one jet push and one
// fall until it rests. The five shapes and the jets are used in a repeating
// cycle.
//
// Height runs the simulation while remembering, after every rock, the
// state (next shape, next jet, surface profile). The profile is the stack of
// rows from the top down to the lowest cell that air above the tower can
// still reach; everything below it is sealed off and cannot influence later
// rocks. States are keyed by a deephash of the profile. When a state
// repeats, the rocks between the two sightings form a cycle that is skipped
// arithmetically and the remainder is simulated.
package tower
