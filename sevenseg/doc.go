// Package sevenseg decodes seven-segment displays whose wires have been
// scrambled.
//
// Segments are named a..g top to bottom, left to right, and a lit pattern is
// a 7-bit mask with a as the high bit. Given the ten distinct patterns a
// display can show, NewDecoder recovers the wiring from how often each wire
// is lit: b, e and f are lit a unique number of times (6, 4, 9), while the
// pairs a/c (8) and d/g (7) are split by membership in the 4-segment word,
// which is always the digit 4.
//
// Errors:
//
//	ErrBadSignals when the ten patterns are not a wiring of the digits,
//	ErrBadWord when a display word decodes to no digit.
package sevenseg
