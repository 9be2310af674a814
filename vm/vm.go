package vm

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Sentinel errors.
var (
	ErrBadOpcode       = errors.New("vm: value is not a 3-bit number")
	ErrTruncated       = errors.New("vm: program has an opcode without operand")
	ErrReservedOperand = errors.New("vm: combo operand 7 is reserved")
	ErrStepLimit       = errors.New("vm: step limit exceeded")
	ErrOptionViolation = errors.New("vm: invalid option")
)

// Opcodes.
const (
	Adv uint8 = iota
	Bxl
	Bst
	Jnz
	Bxc
	Out
	Bdv
	Cdv
)

// DefaultMaxSteps bounds the instructions executed by one run.
const DefaultMaxSteps = 1 << 20

// Options configures a Machine.
//
// MaxSteps – instruction budget per Run. Must be > 0. Default DefaultMaxSteps.
type Options struct {
	MaxSteps int

	err error
}

// Option represents a functional option for configuring a Machine.
type Option func(*Options)

// DefaultOptions returns the default step budget.
func DefaultOptions() Options { return Options{MaxSteps: DefaultMaxSteps} }

// WithMaxSteps sets the instruction budget of each run.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = ErrOptionViolation
			return
		}
		o.MaxSteps = n
	}
}

// Machine is one run of the register machine. It is not safe for
// concurrent use.
type Machine struct {
	A, B, C uint64
	IP      int
	Out     []uint8

	maxSteps int
}

// New returns a machine with the given initial registers.
func New(a, b, c uint64, opts ...Option) (*Machine, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	return &Machine{A: a, B: b, C: c, maxSteps: cfg.MaxSteps}, nil
}

// ParseProgram parses a comma-separated list of 3-bit values.
func ParseProgram(s string) ([]uint8, error) {
	fields := strings.Split(strings.TrimSpace(s), ",")
	prog := make([]uint8, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseUint(strings.TrimSpace(f), 10, 8)
		if err != nil || v > 7 {
			return nil, fmt.Errorf("%w: %q at position %d", ErrBadOpcode, f, i)
		}
		prog[i] = uint8(v)
	}
	if len(prog)%2 != 0 {
		return nil, fmt.Errorf("%w: length %d", ErrTruncated, len(prog))
	}
	return prog, nil
}

// Run executes program from the current instruction pointer until it halts
// and returns everything emitted so far. The machine halts when the
// instruction pointer leaves the program or lands on its last cell, where no
// operand follows.
func (m *Machine) Run(program []uint8) ([]uint8, error) {
	if len(program)%2 != 0 {
		return nil, fmt.Errorf("%w: length %d", ErrTruncated, len(program))
	}
	for steps := 0; m.IP >= 0 && m.IP+1 < len(program); steps++ {
		if steps >= m.maxSteps {
			return m.Out, fmt.Errorf("%w: %d steps at ip=%d", ErrStepLimit, steps, m.IP)
		}
		if err := m.step(program[m.IP], program[m.IP+1]); err != nil {
			return m.Out, err
		}
	}
	return m.Out, nil
}

func (m *Machine) step(op, arg uint8) error {
	switch op {
	case Bxl:
		m.B ^= uint64(arg)
	case Jnz:
		if m.A != 0 {
			m.IP = int(arg)
			return nil
		}
	case Bxc:
		m.B ^= m.C
	default:
		v, err := m.combo(arg)
		if err != nil {
			return fmt.Errorf("%w: at ip=%d", err, m.IP)
		}
		switch op {
		case Adv:
			m.A = shr(m.A, v)
		case Bst:
			m.B = v & 7
		case Out:
			m.Out = append(m.Out, uint8(v&7))
		case Bdv:
			m.B = shr(m.A, v)
		case Cdv:
			m.C = shr(m.A, v)
		default:
			return fmt.Errorf("%w: opcode %d at ip=%d", ErrBadOpcode, op, m.IP)
		}
	}
	m.IP += 2
	return nil
}

func (m *Machine) combo(arg uint8) (uint64, error) {
	switch {
	case arg <= 3:
		return uint64(arg), nil
	case arg == 4:
		return m.A, nil
	case arg == 5:
		return m.B, nil
	case arg == 6:
		return m.C, nil
	}
	return 0, ErrReservedOperand
}

// shr divides a by 2^k; shifts of 64 or more give 0.
func shr(a, k uint64) uint64 {
	if k >= 64 {
		return 0
	}
	return a >> k
}

// Exec runs program on a fresh machine with A = a and B = C = 0.
func Exec(program []uint8, a uint64, opts ...Option) ([]uint8, error) {
	m, err := New(a, 0, 0, opts...)
	if err != nil {
		return nil, err
	}
	return m.Run(program)
}

// Search returns the smallest A for which program prints itself.
// ok is false when no candidate survives.
func Search(program []uint8, opts ...Option) (uint64, bool, error) {
	current := []uint64{0}
	var next []uint64
	for i := len(program) - 1; i >= 0; i-- {
		next = next[:0]
		for _, prefix := range current {
			for chunk := uint64(0); chunk < 8; chunk++ {
				a := prefix<<3 | chunk
				out, err := Exec(program, a, opts...)
				if err != nil {
					return 0, false, err
				}
				if slices.Equal(out, program[i:]) {
					next = append(next, a)
				}
			}
		}
		current, next = next, current
	}
	if len(current) == 0 {
		return 0, false, nil
	}
	return slices.Min(current), true, nil
}

// Format renders output values as a comma-separated list.
func Format(out []uint8) string {
	var sb strings.Builder
	for i, v := range out {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('0' + v)
	}
	return sb.String()
}
