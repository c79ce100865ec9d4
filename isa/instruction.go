package isa

import (
	"fmt"
)

// Instruction is the structured form of one 32-bit instruction word.
type Instruction struct {
	Op     Op
	Format Format
	Rd     int
	Rs1    int
	Rs2    int
	Funct3 uint32
	Funct7 uint32
	Imm    int32  // Logical immediate; see the package documentation.
	Rm     uint32 // Rounding mode, for rows whose funct3 is a rounding mode.
}

// operands lists which register fields and immediate the format uses.
func (spec Spec) operands() (rd, rs1, rs2, imm bool) {
	switch spec.Format {
	case FORMAT_R, FORMAT_R_FP, FORMAT_R_FP_CMP:
		return true, true, true, false
	case FORMAT_R_FP_CVT:
		return true, true, false, false
	case FORMAT_I:
		if spec.Opcode == OPCODE_SYSTEM {
			return false, false, false, false
		}
		return true, true, false, true
	case FORMAT_I_SHAMT, FORMAT_I_FP:
		return true, true, false, true
	case FORMAT_S, FORMAT_S_FP, FORMAT_B:
		return false, true, true, true
	case FORMAT_U, FORMAT_J:
		return true, false, false, true
	}
	return
}

// String disassembles the instruction using canonical register names.
func (inst Instruction) String() string {
	spec := inst.Op.Spec()
	rd := RegisterName(spec.Rd, inst.Rd)
	rs1 := RegisterName(spec.Rs1, inst.Rs1)
	rs2 := RegisterName(spec.Rs2Class, inst.Rs2)

	switch spec.Format {
	case FORMAT_R, FORMAT_R_FP, FORMAT_R_FP_CMP:
		return fmt.Sprintf("%v %v, %v, %v", inst.Op, rd, rs1, rs2)
	case FORMAT_R_FP_CVT:
		return fmt.Sprintf("%v %v, %v", inst.Op, rd, rs1)
	case FORMAT_I:
		switch {
		case spec.Opcode == OPCODE_SYSTEM:
			return inst.Op.String()
		case spec.IsLoad():
			return fmt.Sprintf("%v %v, %d(%v)", inst.Op, rd, inst.Imm, rs1)
		}
		return fmt.Sprintf("%v %v, %v, %d", inst.Op, rd, rs1, inst.Imm)
	case FORMAT_I_SHAMT:
		return fmt.Sprintf("%v %v, %v, %d", inst.Op, rd, rs1, inst.Imm)
	case FORMAT_I_FP:
		return fmt.Sprintf("%v %v, %d(%v)", inst.Op, rd, inst.Imm, rs1)
	case FORMAT_S, FORMAT_S_FP:
		return fmt.Sprintf("%v %v, %d(%v)", inst.Op, rs2, inst.Imm, rs1)
	case FORMAT_B:
		return fmt.Sprintf("%v %v, %v, %d", inst.Op, rs1, rs2, inst.Imm)
	case FORMAT_U:
		return fmt.Sprintf("%v %v, 0x%x", inst.Op, rd, uint32(inst.Imm))
	case FORMAT_J:
		return fmt.Sprintf("%v %v, %d", inst.Op, rd, inst.Imm)
	}

	return inst.Op.String()
}
