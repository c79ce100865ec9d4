package cpu

import (
	"math"

	"github.com/ezrec/rvsim/isa"
)

// branch evaluates the condition of a conditional branch.
func branch(op isa.Op, a, b int32) bool {
	switch op {
	case isa.OP_BEQ:
		return a == b
	case isa.OP_BNE:
		return a != b
	case isa.OP_BLT:
		return a < b
	case isa.OP_BGE:
		return a >= b
	case isa.OP_BLTU:
		return uint32(a) < uint32(b)
	case isa.OP_BGEU:
		return uint32(a) >= uint32(b)
	}
	return false
}

func flag(cond bool) int32 {
	if cond {
		return 1
	}
	return 0
}

// alu computes register-register and register-immediate integer results,
// including the M extension.
func alu(op isa.Op, a, b, imm int32) (value int32, err error) {
	switch op {
	case isa.OP_ADD:
		value = a + b
	case isa.OP_SUB:
		value = a - b
	case isa.OP_SLL:
		value = int32(uint32(a) << (uint32(b) & 31))
	case isa.OP_SLT:
		value = flag(a < b)
	case isa.OP_SLTU:
		value = flag(uint32(a) < uint32(b))
	case isa.OP_XOR:
		value = a ^ b
	case isa.OP_SRL:
		value = int32(uint32(a) >> (uint32(b) & 31))
	case isa.OP_SRA:
		value = a >> (uint32(b) & 31)
	case isa.OP_OR:
		value = a | b
	case isa.OP_AND:
		value = a & b

	case isa.OP_MUL:
		value = a * b
	case isa.OP_MULH:
		value = int32((int64(a) * int64(b)) >> 32)
	case isa.OP_MULHSU:
		value = int32((int64(a) * int64(uint32(b))) >> 32)
	case isa.OP_MULHU:
		value = int32((uint64(uint32(a)) * uint64(uint32(b))) >> 32)
	case isa.OP_DIV:
		switch {
		case b == 0:
			value = -1
		case a == math.MinInt32 && b == -1:
			value = math.MinInt32
		default:
			value = a / b
		}
	case isa.OP_DIVU:
		if b == 0 {
			value = -1
		} else {
			value = int32(uint32(a) / uint32(b))
		}
	case isa.OP_REM:
		switch {
		case b == 0:
			value = a
		case a == math.MinInt32 && b == -1:
			value = 0
		default:
			value = a % b
		}
	case isa.OP_REMU:
		if b == 0 {
			value = a
		} else {
			value = int32(uint32(a) % uint32(b))
		}

	case isa.OP_ADDI:
		value = a + imm
	case isa.OP_SLTI:
		value = flag(a < imm)
	case isa.OP_SLTIU:
		value = flag(uint32(a) < uint32(imm))
	case isa.OP_XORI:
		value = a ^ imm
	case isa.OP_ORI:
		value = a | imm
	case isa.OP_ANDI:
		value = a & imm
	case isa.OP_SLLI:
		value = int32(uint32(a) << (uint32(imm) & 31))
	case isa.OP_SRLI:
		value = int32(uint32(a) >> (uint32(imm) & 31))
	case isa.OP_SRAI:
		value = a >> (uint32(imm) & 31)
	default:
		err = isa.ErrFormatInvalid
	}

	return
}
