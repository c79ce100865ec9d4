// Package cpu implements an RV32IM processor with a single precision
// floating point subset.
//
// The CPU has 32 integer registers (x0 reads as zero), 32 float registers
// and a program counter. Each tick in STATE_IDLE fetches, decodes and
// executes one instruction. Loads and stores post a transaction on the
// memory bus and park the CPU in STATE_AWAITING_MEMORY until the response
// arrives; the write-back and the PC advance happen on that later tick.
//
// ECALL dispatches on a7 to a small system call table (print, write, exit).
package cpu
