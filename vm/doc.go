// Package vm runs programs for a tiny three-register machine whose
// instructions and operands are 3-bit numbers.
//
// What:
//
//	Registers A, B and C hold unsigned integers. A program is a list of
//	3-bit values read in (opcode, operand) pairs; the instruction pointer
//	starts at 0 and advances by 2 except after a taken jump. The machine
//	halts when the pointer runs past the end of the program or lands on its
//	last cell, where no operand follows.
//
//	  0 adv  A = A >> combo        4 bxc  B = B ^ C (operand ignored)
//	  1 bxl  B = B ^ literal       5 out  emit combo & 7
//	  2 bst  B = combo & 7         6 bdv  B = A >> combo
//	  3 jnz  if A != 0 jump to literal  7 cdv  C = A >> combo
//
//	A combo operand is the literal 0..3, or A, B, C for 4, 5, 6. Combo
//	operand 7 is reserved and rejected.
//
//	Search finds the smallest A for which a program prints itself. It
//	assumes the program consumes A three bits per output, as quines for this
//	machine do: candidates are grown from the last output backwards, each
//	prefix is extended by every 3-bit chunk, and only those whose run prints
//	the matching suffix of the program are kept.
//
// Errors:
//
//	– ErrBadOpcode       for a value outside 0..7 in ParseProgram.
//	– ErrTruncated       for a program of odd length.
//	– ErrReservedOperand for combo operand 7.
//	– ErrStepLimit       when a run exceeds the step budget.
package vm
