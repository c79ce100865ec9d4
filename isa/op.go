package isa

import (
	"strings"
)

// Op is a concrete (non-pseudo) mnemonic.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_INVALID = Op(iota) // invalid

	OP_ADD  // add
	OP_SUB  // sub
	OP_SLL  // sll
	OP_SLT  // slt
	OP_SLTU // sltu
	OP_XOR  // xor
	OP_SRL  // srl
	OP_SRA  // sra
	OP_OR   // or
	OP_AND  // and

	OP_MUL    // mul
	OP_MULH   // mulh
	OP_MULHSU // mulhsu
	OP_MULHU  // mulhu
	OP_DIV    // div
	OP_DIVU   // divu
	OP_REM    // rem
	OP_REMU   // remu

	OP_ADDI  // addi
	OP_SLTI  // slti
	OP_SLTIU // sltiu
	OP_XORI  // xori
	OP_ORI   // ori
	OP_ANDI  // andi
	OP_SLLI  // slli
	OP_SRLI  // srli
	OP_SRAI  // srai

	OP_LB  // lb
	OP_LH  // lh
	OP_LW  // lw
	OP_LBU // lbu
	OP_LHU // lhu
	OP_SB  // sb
	OP_SH  // sh
	OP_SW  // sw

	OP_BEQ  // beq
	OP_BNE  // bne
	OP_BLT  // blt
	OP_BGE  // bge
	OP_BLTU // bltu
	OP_BGEU // bgeu

	OP_LUI    // lui
	OP_AUIPC  // auipc
	OP_JAL    // jal
	OP_JALR   // jalr
	OP_ECALL  // ecall
	OP_EBREAK // ebreak

	OP_FLW       // flw
	OP_FSW       // fsw
	OP_FADD_S    // fadd.s
	OP_FSUB_S    // fsub.s
	OP_FMUL_S    // fmul.s
	OP_FDIV_S    // fdiv.s
	OP_FSQRT_S   // fsqrt.s
	OP_FSGNJ_S   // fsgnj.s
	OP_FSGNJN_S  // fsgnjn.s
	OP_FSGNJX_S  // fsgnjx.s
	OP_FMIN_S    // fmin.s
	OP_FMAX_S    // fmax.s
	OP_FCVT_W_S  // fcvt.w.s
	OP_FCVT_WU_S // fcvt.wu.s
	OP_FCVT_S_W  // fcvt.s.w
	OP_FCVT_S_WU // fcvt.s.wu
	OP_FMV_X_W   // fmv.x.w
	OP_FMV_W_X   // fmv.w.x
	OP_FCLASS_S  // fclass.s
	OP_FEQ_S     // feq.s
	OP_FLT_S     // flt.s
	OP_FLE_S     // fle.s

	op_count
)

// Ops returns every valid op in table order.
func Ops() (ops []Op) {
	for op := OP_INVALID + 1; op < op_count; op++ {
		ops = append(ops, op)
	}
	return
}

// ParseOp finds the op of a mnemonic, case insensitively.
func ParseOp(mnemonic string) (op Op, ok bool) {
	name := strings.ToLower(mnemonic)
	for op = OP_INVALID + 1; op < op_count; op++ {
		if op.String() == name {
			ok = true
			return
		}
	}
	op = OP_INVALID
	return
}
