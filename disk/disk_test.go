package disk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlekit/disk"
)

const sample = "2333133121414131402"

func TestParseMap(t *testing.T) {
	m, err := disk.ParseMap("12345\n")
	require.NoError(t, err)
	assert.Equal(t, []disk.File{
		{ID: 0, Run: disk.Run{Start: 0, Len: 1}},
		{ID: 1, Run: disk.Run{Start: 3, Len: 3}},
		{ID: 2, Run: disk.Run{Start: 10, Len: 5}},
	}, m.Files)
	assert.Equal(t, []disk.Run{{Start: 1, Len: 2}, {Start: 6, Len: 4}}, m.Free)

	_, err = disk.ParseMap("12a4")
	assert.ErrorIs(t, err, disk.ErrBadDigit)
	assert.Contains(t, err.Error(), "position 2")
}

func TestCompact_Sample(t *testing.T) {
	m, err := disk.ParseMap(sample)
	require.NoError(t, err)
	assert.Equal(t, uint64(1928), disk.CompactBlocks(m))
	assert.Equal(t, uint64(2858), disk.CompactFiles(m))
}

func TestCompact_Small(t *testing.T) {
	m, err := disk.ParseMap("12345")
	require.NoError(t, err)
	// 022111222......
	assert.Equal(t, uint64(0*0+1*2+2*2+3*1+4*1+5*1+6*2+7*2+8*2), disk.CompactBlocks(m))
	// nothing fits: files stay put
	assert.Equal(t, disk.Checksum(m.Files), disk.CompactFiles(m))
}

func TestCompactFiles_NeverMovesRight(t *testing.T) {
	// file 2 drops into gap 1; file 1 fits the rest of that gap but the
	// gap lies to its right, so it stays
	m, err := disk.ParseMap("10251")
	require.NoError(t, err)
	assert.Equal(t, uint64(1*(1+2)+2*3), disk.CompactFiles(m))
}
