package isa

// signExtend interprets the low width bits of v as two's complement.
func signExtend(v uint32, width int) int32 {
	shift := 32 - width
	return int32(v<<shift) >> shift
}

// matches reports whether a word selects a table row.
func (spec Spec) matches(word uint32) bool {
	if spec.Op == OP_INVALID || word&0x7F != spec.Opcode {
		return false
	}

	f3 := bit(word, 14, 12)
	f7 := bit(word, 31, 25)
	rs2 := bit(word, 24, 20)

	switch spec.Format {
	case FORMAT_R, FORMAT_I_SHAMT:
		return f3 == spec.Funct3 && f7 == spec.Funct7
	case FORMAT_I:
		if spec.Opcode == OPCODE_SYSTEM {
			return f3 == spec.Funct3 && int32(bit(word, 31, 20)) == spec.Imm
		}
		return f3 == spec.Funct3
	case FORMAT_S, FORMAT_B, FORMAT_I_FP, FORMAT_S_FP:
		return f3 == spec.Funct3
	case FORMAT_U, FORMAT_J:
		return true
	case FORMAT_R_FP:
		return f7 == spec.Funct7 && (spec.Rm || f3 == spec.Funct3)
	case FORMAT_R_FP_CVT:
		return f7 == spec.Funct7 && rs2 == spec.Rs2 && (spec.Rm || f3 == spec.Funct3)
	case FORMAT_R_FP_CMP:
		return f7 == spec.Funct7 && f3 == spec.Funct3
	}

	return false
}

// Decode finds the table row of a word and extracts its fields. Fields the
// format does not use are left zero.
func Decode(word uint32) (inst Instruction, err error) {
	var spec Spec
	found := false
	for _, row := range Table {
		if row.matches(word) {
			spec = row
			found = true
			break
		}
	}
	if !found {
		err = ErrDecode(word)
		return
	}

	inst.Op = spec.Op
	inst.Format = spec.Format
	inst.Funct3 = bit(word, 14, 12)
	if spec.Rm {
		inst.Rm = inst.Funct3
	}

	switch spec.Format {
	case FORMAT_R, FORMAT_R_FP, FORMAT_R_FP_CMP, FORMAT_R_FP_CVT, FORMAT_I_SHAMT:
		inst.Funct7 = bit(word, 31, 25)
	}

	hasRd, hasRs1, hasRs2, hasImm := spec.operands()
	if hasRd {
		inst.Rd = int(bit(word, 11, 7))
	}
	if hasRs1 {
		inst.Rs1 = int(bit(word, 19, 15))
	}
	if hasRs2 {
		inst.Rs2 = int(bit(word, 24, 20))
	}
	if !hasImm {
		return
	}

	switch spec.Format {
	case FORMAT_I, FORMAT_I_FP:
		inst.Imm = signExtend(bit(word, 31, 20), 12)
	case FORMAT_I_SHAMT:
		inst.Imm = int32(bit(word, 24, 20))
	case FORMAT_S, FORMAT_S_FP:
		inst.Imm = signExtend(bit(word, 31, 25)<<5|bit(word, 11, 7), 12)
	case FORMAT_B:
		v := bit(word, 31, 31)<<12 | bit(word, 7, 7)<<11 | bit(word, 30, 25)<<5 | bit(word, 11, 8)<<1
		inst.Imm = signExtend(v, 13)
	case FORMAT_U:
		inst.Imm = int32(bit(word, 31, 12))
	case FORMAT_J:
		v := bit(word, 31, 31)<<20 | bit(word, 19, 12)<<12 | bit(word, 20, 20)<<11 | bit(word, 30, 21)<<1
		inst.Imm = signExtend(v, 21)
	}

	return
}
