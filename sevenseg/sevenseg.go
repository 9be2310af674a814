package sevenseg

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors.
var (
	// ErrBadSignals is returned when the signal patterns are not a scrambling
	// of the ten digits.
	ErrBadSignals = errors.New("sevenseg: signals are not a valid scrambling")
	// ErrBadWord is returned for a word that decodes to no digit.
	ErrBadWord = errors.New("sevenseg: word is not a digit")
)

// Segment bits, a = 1<<6 down to g = 1<<0.
const (
	SegA uint8 = 1 << (6 - iota)
	SegB
	SegC
	SegD
	SegE
	SegF
	SegG
)

// Digits maps a lit pattern to its digit.
var Digits = map[uint8]int{
	0b1110111: 0,
	0b0010010: 1,
	0b1011101: 2,
	0b1011011: 3,
	0b0111010: 4,
	0b1101011: 5,
	0b1101111: 6,
	0b1010010: 7,
	0b1111111: 8,
	0b1111011: 9,
}

// Decoder translates scrambled words using a recovered wiring.
type Decoder struct {
	wiring [7]uint8 // wire letter - 'a' → true segment bit
}

// NewDecoder deduces the wiring from the ten signal patterns of one display,
// given as a whitespace-separated list.
func NewDecoder(signals string) (*Decoder, error) {
	words := strings.Fields(signals)
	if len(words) != 10 {
		return nil, fmt.Errorf("%w: %d patterns, want 10", ErrBadSignals, len(words))
	}

	// 1) Count how often each wire is lit, and find the 4-segment word.
	var freq [7]int
	var four uint8
	for _, w := range words {
		m, err := wireMask(w)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadSignals, err)
		}
		for i := range freq {
			if m&(1<<i) != 0 {
				freq[i]++
			}
		}
		if len(w) == 4 {
			four = m
		}
	}

	// 2) Assign each wire its segment.
	d := &Decoder{}
	for i, f := range freq {
		inFour := four&(1<<i) != 0
		switch {
		case f == 6:
			d.wiring[i] = SegB
		case f == 4:
			d.wiring[i] = SegE
		case f == 9:
			d.wiring[i] = SegF
		case f == 8 && inFour:
			d.wiring[i] = SegC
		case f == 8:
			d.wiring[i] = SegA
		case f == 7 && inFour:
			d.wiring[i] = SegD
		case f == 7:
			d.wiring[i] = SegG
		default:
			return nil, fmt.Errorf("%w: wire %c lit %d times", ErrBadSignals, 'a'+i, f)
		}
	}

	// 3) The wiring must be a permutation that yields all ten digits.
	var used uint8
	for _, s := range d.wiring {
		used |= s
	}
	if used != 0b1111111 {
		return nil, fmt.Errorf("%w: ambiguous wiring", ErrBadSignals)
	}
	seen := make(map[int]bool, 10)
	for _, w := range words {
		n, err := d.Digit(w)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadSignals, err)
		}
		seen[n] = true
	}
	if len(seen) != 10 {
		return nil, fmt.Errorf("%w: only %d distinct digits", ErrBadSignals, len(seen))
	}

	return d, nil
}

// wireMask returns the set of wires in w, indexed from 'a' at bit 0.
func wireMask(w string) (uint8, error) {
	var m uint8
	for i := 0; i < len(w); i++ {
		c := w[i]
		if c < 'a' || c > 'g' {
			return 0, fmt.Errorf("wire %q in %q", c, w)
		}
		if m&(1<<(c-'a')) != 0 {
			return 0, fmt.Errorf("wire %q repeated in %q", c, w)
		}
		m |= 1 << (c - 'a')
	}
	return m, nil
}

// Digit decodes one scrambled word.
func (d *Decoder) Digit(word string) (int, error) {
	m, err := wireMask(word)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadWord, err)
	}
	var lit uint8
	for i, s := range d.wiring {
		if m&(1<<i) != 0 {
			lit |= s
		}
	}
	n, ok := Digits[lit]
	if !ok {
		return 0, fmt.Errorf("%w: %q lights %07b", ErrBadWord, word, lit)
	}
	return n, nil
}

// Decode reads the whitespace-separated words as the decimal digits of one
// number, most significant first.
func (d *Decoder) Decode(words string) (int, error) {
	n := 0
	for _, w := range strings.Fields(words) {
		v, err := d.Digit(w)
		if err != nil {
			return 0, err
		}
		n = n*10 + v
	}
	return n, nil
}
