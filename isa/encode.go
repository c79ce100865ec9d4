package isa

// immRange returns the inclusive range of the logical immediate of a format.
func immRange(format Format) (min, max int64) {
	switch format {
	case FORMAT_I_SHAMT:
		return 0, 31
	case FORMAT_U:
		return 0, 0xFFFFF
	}
	bits := format.ImmBits()
	if bits == 0 {
		return 0, 0
	}
	min = -(int64(1) << (bits - 1))
	max = (int64(1) << (bits - 1)) - 1
	return
}

// CheckImmediate validates an immediate against the range (and, for
// branches and jumps, the alignment) of a format.
func CheckImmediate(format Format, value int64) (err error) {
	min, max := immRange(format)
	if value < min || value > max {
		err = &ErrImmediateRange{Format: format, Value: value, Min: min, Max: max}
		return
	}
	if (format == FORMAT_B || format == FORMAT_J) && value&1 != 0 {
		err = ErrImmediateAlign
		return
	}
	return
}

// twos returns the width-bit two's complement field of value.
func twos(value int64, width int) uint32 {
	if value < 0 {
		value += int64(1) << width
	}
	return uint32(value) & (uint32(1)<<width - 1)
}

// bit extracts bits [hi:lo] of v, shifted down to bit 0.
func bit(v uint32, hi, lo int) uint32 {
	return (v >> lo) & (uint32(1)<<(hi-lo+1) - 1)
}

func checkRegister(class RegClass, index int) (err error) {
	if index < 0 || index > 31 {
		err = ErrRegisterInvalid(RegisterName(class, index))
	}
	return
}

// Encode packs an instruction into its 32-bit word. The Op selects the
// table row; the Format, Funct3 and Funct7 fields of inst are ignored in
// favour of the table, except for Rm on rounding-mode rows.
func Encode(inst Instruction) (word uint32, err error) {
	spec := inst.Op.Spec()
	if spec.Op == OP_INVALID {
		err = ErrFormatInvalid
		return
	}

	hasRd, hasRs1, hasRs2, hasImm := spec.operands()
	var rd, rs1, rs2 uint32
	if hasRd {
		if err = checkRegister(spec.Rd, inst.Rd); err != nil {
			return
		}
		rd = uint32(inst.Rd)
	}
	if hasRs1 {
		if err = checkRegister(spec.Rs1, inst.Rs1); err != nil {
			return
		}
		rs1 = uint32(inst.Rs1)
	}
	if hasRs2 {
		if err = checkRegister(spec.Rs2Class, inst.Rs2); err != nil {
			return
		}
		rs2 = uint32(inst.Rs2)
	}

	imm := int64(inst.Imm)
	if spec.Opcode == OPCODE_SYSTEM {
		imm = int64(spec.Imm)
	} else if hasImm {
		if err = CheckImmediate(spec.Format, imm); err != nil {
			return
		}
	}

	f3 := spec.Funct3
	if spec.Rm {
		f3 = inst.Rm & 0b111
	}

	word = spec.Opcode | f3<<12

	switch spec.Format {
	case FORMAT_R, FORMAT_R_FP, FORMAT_R_FP_CMP:
		word |= spec.Funct7<<25 | rs2<<20 | rs1<<15 | rd<<7
	case FORMAT_R_FP_CVT:
		word |= spec.Funct7<<25 | spec.Rs2<<20 | rs1<<15 | rd<<7
	case FORMAT_I, FORMAT_I_FP:
		word |= twos(imm, 12)<<20 | rs1<<15 | rd<<7
	case FORMAT_I_SHAMT:
		word |= spec.Funct7<<25 | twos(imm, 5)<<20 | rs1<<15 | rd<<7
	case FORMAT_S, FORMAT_S_FP:
		v := twos(imm, 12)
		word |= bit(v, 11, 5)<<25 | rs2<<20 | rs1<<15 | bit(v, 4, 0)<<7
	case FORMAT_B:
		v := twos(imm, 13)
		word |= bit(v, 12, 12)<<31 | bit(v, 10, 5)<<25 | rs2<<20 | rs1<<15 |
			bit(v, 4, 1)<<8 | bit(v, 11, 11)<<7
	case FORMAT_U:
		word = spec.Opcode | twos(imm, 20)<<12 | rd<<7
	case FORMAT_J:
		v := twos(imm, 21)
		word = spec.Opcode | bit(v, 20, 20)<<31 | bit(v, 10, 1)<<21 | bit(v, 11, 11)<<20 |
			bit(v, 19, 12)<<12 | rd<<7
	default:
		word = 0
		err = ErrFormatInvalid
	}

	return
}
