package asm

import (
	"strings"

	"github.com/ezrec/rvsim/isa"
)

var roundingModes = map[string]uint32{
	"rne": isa.RM_RNE,
	"rtz": isa.RM_RTZ,
	"rdn": isa.RM_RDN,
	"rup": isa.RM_RUP,
	"rmm": isa.RM_RMM,
	"dyn": isa.RM_DYN,
}

// register parses a register operand of the given class.
func register(class isa.RegClass, word string) (index int, err error) {
	if class == isa.REG_FLOAT {
		return isa.ParseFloatRegister(word)
	}
	return isa.ParseRegister(word)
}

// memory splits an `offset(register)` operand. An empty offset is zero.
func memory(word string) (offset string, base string, err error) {
	open := strings.LastIndexByte(word, '(')
	if open < 0 || !strings.HasSuffix(word, ")") {
		err = ErrMemoryOperand
		return
	}
	offset = strings.TrimSpace(word[:open])
	base = strings.TrimSpace(word[open+1 : len(word)-1])
	if len(offset) == 0 {
		offset = "0"
	}
	return
}

// immediate resolves an operand and checks it against the format.
func (asm *Assembler) immediate(format isa.Format, word string) (imm int32, err error) {
	value, err := asm.resolve(word)
	if err != nil {
		return
	}
	err = isa.CheckImmediate(format, value)
	if err != nil {
		return
	}
	imm = int32(value)
	return
}

// instruction parses the operands of a concrete instruction.
func (asm *Assembler) instruction(line *SourceLine) (inst isa.Instruction, err error) {
	op, _ := isa.ParseOp(line.Mnemonic)
	spec := op.Spec()
	ops := line.Operands

	inst.Op = op
	inst.Format = spec.Format
	if spec.Rm {
		inst.Rm = isa.RM_DYN
	}

	count := func(allowed ...int) bool {
		for _, n := range allowed {
			if len(ops) == n {
				return true
			}
		}
		err = ErrOperandCount
		return false
	}
	reg := func(class isa.RegClass, n int) (index int) {
		if err != nil {
			return
		}
		index, err = register(class, ops[n])
		return
	}
	imm := func(format isa.Format, word string) (value int32) {
		if err != nil {
			return
		}
		value, err = asm.immediate(format, word)
		return
	}
	rm := func(n int) {
		if err != nil || n >= len(ops) {
			return
		}
		mode, ok := roundingModes[strings.ToLower(ops[n])]
		if !ok {
			err = ErrRoundingMode(ops[n])
			return
		}
		inst.Rm = mode
	}
	mem := func(n int) (offset int32, base int) {
		if err != nil {
			return
		}
		var word, rs string
		word, rs, err = memory(ops[n])
		if err != nil {
			return
		}
		base, err = register(isa.REG_INT, rs)
		if err != nil {
			return
		}
		offset = imm(isa.FORMAT_I, word)
		return
	}

	switch spec.Format {
	case isa.FORMAT_R, isa.FORMAT_R_FP_CMP:
		if count(3) {
			inst.Rd, inst.Rs1, inst.Rs2 = reg(spec.Rd, 0), reg(spec.Rs1, 1), reg(spec.Rs2Class, 2)
		}
	case isa.FORMAT_R_FP:
		if (spec.Rm && count(3, 4)) || (!spec.Rm && count(3)) {
			inst.Rd, inst.Rs1, inst.Rs2 = reg(spec.Rd, 0), reg(spec.Rs1, 1), reg(spec.Rs2Class, 2)
			rm(3)
		}
	case isa.FORMAT_R_FP_CVT:
		if (spec.Rm && count(2, 3)) || (!spec.Rm && count(2)) {
			inst.Rd, inst.Rs1 = reg(spec.Rd, 0), reg(spec.Rs1, 1)
			rm(2)
		}
	case isa.FORMAT_I:
		switch {
		case spec.Opcode == isa.OPCODE_SYSTEM:
			count(0)
		case spec.IsLoad():
			if count(2) {
				inst.Rd = reg(spec.Rd, 0)
				inst.Imm, inst.Rs1 = mem(1)
			}
		case op == isa.OP_JALR:
			if count(2, 3) {
				inst.Rd = reg(spec.Rd, 0)
				switch {
				case len(ops) == 3:
					inst.Rs1 = reg(spec.Rs1, 1)
					inst.Imm = imm(isa.FORMAT_I, ops[2])
				case strings.Contains(ops[1], "("):
					inst.Imm, inst.Rs1 = mem(1)
				default:
					inst.Rs1 = reg(spec.Rs1, 1)
				}
			}
		default:
			if count(3) {
				inst.Rd, inst.Rs1 = reg(spec.Rd, 0), reg(spec.Rs1, 1)
				inst.Imm = imm(isa.FORMAT_I, ops[2])
			}
		}
	case isa.FORMAT_I_SHAMT:
		if count(3) {
			inst.Rd, inst.Rs1 = reg(spec.Rd, 0), reg(spec.Rs1, 1)
			inst.Imm = imm(isa.FORMAT_I_SHAMT, ops[2])
		}
	case isa.FORMAT_I_FP:
		if count(2) {
			inst.Rd = reg(spec.Rd, 0)
			inst.Imm, inst.Rs1 = mem(1)
		}
	case isa.FORMAT_S, isa.FORMAT_S_FP:
		if count(2) {
			inst.Rs2 = reg(spec.Rs2Class, 0)
			inst.Imm, inst.Rs1 = mem(1)
		}
	case isa.FORMAT_B:
		if count(3) {
			inst.Rs1, inst.Rs2 = reg(spec.Rs1, 0), reg(spec.Rs2Class, 1)
			if err == nil {
				inst.Imm, err = asm.target(ops[2], line.Address)
			}
		}
	case isa.FORMAT_U:
		if count(2) {
			inst.Rd = reg(spec.Rd, 0)
			inst.Imm = imm(isa.FORMAT_U, ops[1])
		}
	case isa.FORMAT_J:
		if count(2) {
			inst.Rd = reg(spec.Rd, 0)
			if err == nil {
				inst.Imm, err = asm.target(ops[1], line.Address)
			}
		}
	default:
		err = isa.ErrFormatInvalid
	}

	return
}
