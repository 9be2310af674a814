package tower

import (
	"errors"
	"fmt"
	"strings"

	"tailscale.com/util/deephash"
)

// Sentinel errors.
var (
	// ErrBadJet is returned for a jet byte other than '<' or '>', or no jets.
	ErrBadJet = errors.New("tower: invalid jet pattern")
	// ErrOptionViolation is returned when an option carries an invalid value.
	ErrOptionViolation = errors.New("tower: invalid option")
)

// Width is the number of columns in the chamber.
const Width = 7

// Jet is a sideways push of one column: -1 left, +1 right.
type Jet int8

const (
	Left  Jet = -1
	Right Jet = 1
)

// Shapes lists the rock shapes bottom row first, already placed two
// columns from the left wall.
var Shapes = [5][]uint8{
	{0b0011110},
	{0b0001000, 0b0011100, 0b0001000},
	{0b0011100, 0b0000100, 0b0000100},
	{0b0010000, 0b0010000, 0b0010000, 0b0010000},
	{0b0011000, 0b0011000},
}

// ParseJets parses a string of '<' and '>' (surrounding space ignored).
func ParseJets(s string) ([]Jet, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: no jets", ErrBadJet)
	}
	jets := make([]Jet, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			jets[i] = Left
		case '>':
			jets[i] = Right
		default:
			return nil, fmt.Errorf("%w: %q at position %d", ErrBadJet, s[i], i)
		}
	}
	return jets, nil
}

// Chamber is the state of one simulation.
type Chamber struct {
	rows  []uint8 // bottom first; never has a trailing empty row
	jets  []Jet
	jet   int // next jet index
	shape int // next shape index
	rocks int64
}

// NewChamber returns an empty chamber driven by jets, which must not be empty.
func NewChamber(jets []Jet) (*Chamber, error) {
	if len(jets) == 0 {
		return nil, fmt.Errorf("%w: no jets", ErrBadJet)
	}
	return &Chamber{jets: jets}, nil
}

// Height returns the number of rows occupied by resting rocks.
func (c *Chamber) Height() int { return len(c.rows) }

// Rocks returns how many rocks have come to rest.
func (c *Chamber) Rocks() int64 { return c.rocks }

// Drop lets the next rock fall until it rests.
func (c *Chamber) Drop() {
	rock := make([]uint8, len(Shapes[c.shape]))
	copy(rock, Shapes[c.shape])
	c.shape = (c.shape + 1) % len(Shapes)

	y := len(c.rows) + 3
	for {
		// 1) Jet push, ignored when blocked by a wall or rock.
		j := c.jets[c.jet]
		c.jet = (c.jet + 1) % len(c.jets)
		if moved, ok := shift(rock, j); ok && !c.collides(moved, y) {
			rock = moved
		}

		// 2) Fall, or rest on the floor or a rock.
		if y == 0 || c.collides(rock, y-1) {
			break
		}
		y--
	}

	for k, r := range rock {
		if y+k < len(c.rows) {
			c.rows[y+k] |= r
		} else {
			c.rows = append(c.rows, r)
		}
	}
	c.rocks++
}

// shift returns rock pushed one column by j, or false at a wall.
func shift(rock []uint8, j Jet) ([]uint8, bool) {
	out := make([]uint8, len(rock))
	for k, r := range rock {
		if j == Left {
			if r&(1<<(Width-1)) != 0 {
				return nil, false
			}
			out[k] = r << 1
		} else {
			if r&1 != 0 {
				return nil, false
			}
			out[k] = r >> 1
		}
	}
	return out, true
}

// collides reports whether rock with its bottom at row y overlaps the tower.
func (c *Chamber) collides(rock []uint8, y int) bool {
	for k, r := range rock {
		if y+k < len(c.rows) && c.rows[y+k]&r != 0 {
			return true
		}
	}
	return false
}

// String draws the tower top row first, '#' for rock and '.' for air.
func (c *Chamber) String() string {
	var sb strings.Builder
	for y := len(c.rows) - 1; y >= 0; y-- {
		for col := Width - 1; col >= 0; col-- {
			if c.rows[y]&(1<<col) != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Simulate drops n rocks and returns the tower height.
func Simulate(jets []Jet, n int64) (int64, error) {
	c, err := NewChamber(jets)
	if err != nil {
		return 0, err
	}
	for c.Rocks() < n {
		c.Drop()
	}
	return int64(c.Height()), nil
}

// Options configures Height.
//
// ProfileRows – deepest the surface profile may reach below the top of the
// tower. Rows below the reachable surface are never part of the key, so the
// cap only matters for towers with a shaft open to the floor. Must be > 0.
// Default 1024.
type Options struct {
	ProfileRows int

	err error
}

// Option represents a functional option for configuring Height.
type Option func(*Options)

// DefaultOptions returns a 1024-row profile cap.
func DefaultOptions() Options { return Options{ProfileRows: 1024} }

// WithProfileRows caps the depth of the surface profile.
func WithProfileRows(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = ErrOptionViolation
			return
		}
		o.ProfileRows = n
	}
}

// surfaceFloor returns the lowest row that air above the tower reaches by
// moving down, left and right, looking at most depth rows below the top.
// Nothing below it can affect future rocks.
func (c *Chamber) surfaceFloor(depth int) int {
	const full = 1<<Width - 1
	h := len(c.rows)
	reach := uint8(full)
	for y := h - 1; y >= max(0, h-depth); y-- {
		free := ^c.rows[y] & full
		reach &= free
		for {
			spread := (reach | reach<<1 | reach>>1) & free
			if spread == reach {
				break
			}
			reach = spread
		}
		if reach == 0 {
			return y + 1
		}
	}
	return max(0, h-depth)
}

// surface identifies the chamber state between rocks.
type surface struct {
	Shape, Jet int
	Top        []uint8
}

var hashSurface = deephash.HasherForType[surface]()

type sighting struct {
	rocks  int64
	height int
}

// Height returns the tower height after n rocks. Once a state repeats,
// whole cycles are skipped without simulation.
func Height(jets []Jet, n int64, opts ...Option) (int64, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return 0, cfg.err
	}

	c, err := NewChamber(jets)
	if err != nil {
		return 0, err
	}

	seen := make(map[deephash.Sum]sighting)
	var skipped int64
	looking := true
	for c.Rocks() < n {
		c.Drop()
		if !looking {
			continue
		}

		top := c.rows[c.surfaceFloor(cfg.ProfileRows):]
		key := hashSurface(&surface{Shape: c.shape, Jet: c.jet, Top: top})
		prev, ok := seen[key]
		if !ok {
			seen[key] = sighting{rocks: c.Rocks(), height: c.Height()}
			continue
		}

		period := c.Rocks() - prev.rocks
		cycles := (n - c.Rocks()) / period
		skipped = cycles * int64(c.Height()-prev.height)
		c.rocks += cycles * period
		looking = false
	}

	return int64(c.Height()) + skipped, nil
}
