// Package disk compacts a dense disk map of interleaved file and free runs.
//
// A map such as "12345" alternates file lengths and free lengths: file 0
// has 1 block, then 2 free blocks, file 1 has 3 blocks, 4 free, file 2 has
// 5 blocks. CompactBlocks moves single blocks from the end into the
// leftmost gaps; CompactFiles moves whole files, highest ID first, into the
// leftmost free run that fits and lies left of the file, using a segtree
// over free runs. Both return Σ position·fileID.
package disk
