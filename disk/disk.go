package disk

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/puzzlekit/segtree"
)

// ErrBadDigit indicates a disk map character outside '0'..'9'.
var ErrBadDigit = errors.New("disk: map characters must be decimal digits")

// Run is a contiguous run of blocks.
type Run struct {
	Start, Len uint64
}

// File is a run owned by one file ID.
type File struct {
	ID int
	Run
}

// Map is a parsed disk map. Free[k] is the gap right after Files[k].
type Map struct {
	Files []File
	Free  []Run
}

// ParseMap parses the dense digit form. Surrounding whitespace is ignored.
func ParseMap(s string) (Map, error) {
	s = strings.TrimSpace(s)
	var m Map
	var pos uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return Map{}, fmt.Errorf("%w: %q at position %d", ErrBadDigit, c, i)
		}
		n := uint64(c - '0')
		if i%2 == 0 {
			m.Files = append(m.Files, File{ID: i / 2, Run: Run{Start: pos, Len: n}})
		} else {
			m.Free = append(m.Free, Run{Start: pos, Len: n})
		}
		pos += n
	}
	return m, nil
}

// Checksum returns Σ position·ID over the blocks of files.
func Checksum(files []File) uint64 {
	var sum uint64
	for _, f := range files {
		if f.Len == 0 {
			continue
		}
		// positions Start..Start+Len-1
		sum += uint64(f.ID) * (f.Len*f.Start + f.Len*(f.Len-1)/2)
	}
	return sum
}

// CompactBlocks fills every gap from the left with the rightmost file
// blocks, one block at a time, and returns the checksum.
func CompactBlocks(m Map) uint64 {
	var blocks []int
	for k, f := range m.Files {
		for j := uint64(0); j < f.Len; j++ {
			blocks = append(blocks, f.ID)
		}
		if k < len(m.Free) {
			for j := uint64(0); j < m.Free[k].Len; j++ {
				blocks = append(blocks, -1)
			}
		}
	}
	lo, hi := 0, len(blocks)-1
	for {
		for lo < hi && blocks[lo] >= 0 {
			lo++
		}
		for lo < hi && blocks[hi] < 0 {
			hi--
		}
		if lo >= hi {
			break
		}
		blocks[lo], blocks[hi] = blocks[hi], -1
	}
	var sum uint64
	for pos, id := range blocks {
		if id < 0 {
			break
		}
		sum += uint64(pos * id)
	}
	return sum
}

// CompactFiles moves each file once, highest ID first, into the leftmost
// free run that can hold all of it and lies left of the file, then returns
// the checksum.
func CompactFiles(m Map) uint64 {
	slots := make([]segtree.Slot[uint64], len(m.Free))
	for k, r := range m.Free {
		slots[k] = segtree.Slot[uint64]{Value: r.Len, Payload: r.Start}
	}
	free := segtree.NewWithPayloads(slots)
	files := append([]File(nil), m.Files...)

	for k := len(files) - 1; k >= 0; k-- {
		f := &files[k]
		if f.Len == 0 {
			continue
		}
		idx, ok := free.LeftmostWithCapacity(f.Len)
		// gap k follows file k, so only gaps before k are to its left
		if !ok || idx >= k {
			continue
		}
		// idx came from LeftmostWithCapacity, so it is in range and neither
		// Get nor Update can fail.
		s, _ := free.Get(idx)
		f.Start = s.Payload
		_ = free.Update(idx, s.Value-f.Len, s.Payload+f.Len)
	}
	return Checksum(files)
}
