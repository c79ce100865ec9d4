// Package isa describes the RV32IM instruction set and its single precision
// floating point subset.
//
// The Table lists every concrete mnemonic together with its encoding format
// and fixed opcode/funct bit patterns. Encode and Decode convert between an
// Instruction and its 32-bit word using that table, and are pure functions.
//
// Immediates are kept in their logical form: branch and jump offsets in
// bytes, I/S immediates sign extended, and U immediates as the 20-bit upper
// field (so `lui x1, 0x12345` carries Imm 0x12345).
package isa
