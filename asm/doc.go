// Package asm implements a two-pass RISC-V assembler.
//
// Pass 1 lays out every source line: it binds labels to the address
// cursor, evaluates data directives directly into the memory image, and
// sizes each instruction. Pseudo-instruction sizes are fixed in Pass 1 and
// Pass 2 expands them to exactly that size, so label addresses never go
// stale. Pass 2 encodes every instruction with the isa package.
//
// The assembler output is a Program: the memory image, the start address,
// the encoded instruction list and the symbol tables.
package asm
