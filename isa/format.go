package isa

// Format is an instruction encoding format.
type Format int

//go:generate go tool stringer -linecomment -type=Format
const (
	FORMAT_R        = Format(0)  // R
	FORMAT_I        = Format(1)  // I
	FORMAT_I_SHAMT  = Format(2)  // I-shamt
	FORMAT_S        = Format(3)  // S
	FORMAT_B        = Format(4)  // B
	FORMAT_U        = Format(5)  // U
	FORMAT_J        = Format(6)  // J
	FORMAT_R_FP     = Format(7)  // R-FP
	FORMAT_R_FP_CVT = Format(8)  // R-FP-CVT
	FORMAT_R_FP_CMP = Format(9)  // R-FP-CMP
	FORMAT_I_FP     = Format(10) // I-FP
	FORMAT_S_FP     = Format(11) // S-FP
)

// ImmBits returns the signed width of the logical immediate of the format,
// or 0 if the format carries no immediate.
func (f Format) ImmBits() int {
	switch f {
	case FORMAT_I, FORMAT_S, FORMAT_I_FP, FORMAT_S_FP:
		return 12
	case FORMAT_B:
		return 13
	case FORMAT_U:
		return 20
	case FORMAT_J:
		return 21
	case FORMAT_I_SHAMT:
		return 5
	}
	return 0
}

// RegClass is the register file an operand field refers to.
type RegClass int

//go:generate go tool stringer -linecomment -type=RegClass
const (
	REG_NONE  = RegClass(0) // none
	REG_INT   = RegClass(1) // x
	REG_FLOAT = RegClass(2) // f
)

// Major opcodes.
const (
	OPCODE_LOAD     = uint32(0b0000011)
	OPCODE_LOAD_FP  = uint32(0b0000111)
	OPCODE_OP_IMM   = uint32(0b0010011)
	OPCODE_AUIPC    = uint32(0b0010111)
	OPCODE_STORE    = uint32(0b0100011)
	OPCODE_STORE_FP = uint32(0b0100111)
	OPCODE_OP       = uint32(0b0110011)
	OPCODE_LUI      = uint32(0b0110111)
	OPCODE_OP_FP    = uint32(0b1010011)
	OPCODE_BRANCH   = uint32(0b1100011)
	OPCODE_JALR     = uint32(0b1100111)
	OPCODE_JAL      = uint32(0b1101111)
	OPCODE_SYSTEM   = uint32(0b1110011)
)

// Rounding modes carried in funct3 of floating point arithmetic.
const (
	RM_RNE = uint32(0b000) // Round to nearest, ties to even.
	RM_RTZ = uint32(0b001) // Round towards zero.
	RM_RDN = uint32(0b010) // Round down.
	RM_RUP = uint32(0b011) // Round up.
	RM_RMM = uint32(0b100) // Round to nearest, ties to max magnitude.
	RM_DYN = uint32(0b111) // Dynamic; the simulator treats it as RNE.
)

// Spec is one row of the instruction format table.
type Spec struct {
	Op     Op
	Format Format
	Opcode uint32
	Funct3 uint32
	Funct7 uint32
	Rs2    uint32 // Fixed rs2 field for R-FP-CVT rows.
	Imm    int32  // Fixed immediate for SYSTEM rows.
	Rm     bool   // funct3 carries a rounding mode rather than a fixed value.

	Rd, Rs1, Rs2Class RegClass
}

func r(op Op, f3, f7 uint32) Spec {
	return Spec{Op: op, Format: FORMAT_R, Opcode: OPCODE_OP, Funct3: f3, Funct7: f7,
		Rd: REG_INT, Rs1: REG_INT, Rs2Class: REG_INT}
}

func i(op Op, opcode, f3 uint32) Spec {
	return Spec{Op: op, Format: FORMAT_I, Opcode: opcode, Funct3: f3,
		Rd: REG_INT, Rs1: REG_INT}
}

func shamt(op Op, f3, f7 uint32) Spec {
	return Spec{Op: op, Format: FORMAT_I_SHAMT, Opcode: OPCODE_OP_IMM, Funct3: f3, Funct7: f7,
		Rd: REG_INT, Rs1: REG_INT}
}

func sys(op Op, imm int32) Spec {
	return Spec{Op: op, Format: FORMAT_I, Opcode: OPCODE_SYSTEM, Imm: imm}
}

func s(op Op, f3 uint32) Spec {
	return Spec{Op: op, Format: FORMAT_S, Opcode: OPCODE_STORE, Funct3: f3,
		Rs1: REG_INT, Rs2Class: REG_INT}
}

func b(op Op, f3 uint32) Spec {
	return Spec{Op: op, Format: FORMAT_B, Opcode: OPCODE_BRANCH, Funct3: f3,
		Rs1: REG_INT, Rs2Class: REG_INT}
}

func u(op Op, opcode uint32) Spec {
	return Spec{Op: op, Format: FORMAT_U, Opcode: opcode, Rd: REG_INT}
}

func rfp(op Op, f7, f3 uint32, rm bool) Spec {
	return Spec{Op: op, Format: FORMAT_R_FP, Opcode: OPCODE_OP_FP, Funct3: f3, Funct7: f7, Rm: rm,
		Rd: REG_FLOAT, Rs1: REG_FLOAT, Rs2Class: REG_FLOAT}
}

func cvt(op Op, f7, rs2, f3 uint32, rm bool, rd, rs1 RegClass) Spec {
	return Spec{Op: op, Format: FORMAT_R_FP_CVT, Opcode: OPCODE_OP_FP, Funct3: f3, Funct7: f7, Rs2: rs2, Rm: rm,
		Rd: rd, Rs1: rs1}
}

func cmp(op Op, f3 uint32) Spec {
	return Spec{Op: op, Format: FORMAT_R_FP_CMP, Opcode: OPCODE_OP_FP, Funct3: f3, Funct7: 0b1010000,
		Rd: REG_INT, Rs1: REG_FLOAT, Rs2Class: REG_FLOAT}
}

// Table is the instruction format table, indexed by Op.
var Table = [...]Spec{
	OP_INVALID: {},

	OP_ADD:  r(OP_ADD, 0b000, 0b0000000),
	OP_SUB:  r(OP_SUB, 0b000, 0b0100000),
	OP_SLL:  r(OP_SLL, 0b001, 0b0000000),
	OP_SLT:  r(OP_SLT, 0b010, 0b0000000),
	OP_SLTU: r(OP_SLTU, 0b011, 0b0000000),
	OP_XOR:  r(OP_XOR, 0b100, 0b0000000),
	OP_SRL:  r(OP_SRL, 0b101, 0b0000000),
	OP_SRA:  r(OP_SRA, 0b101, 0b0100000),
	OP_OR:   r(OP_OR, 0b110, 0b0000000),
	OP_AND:  r(OP_AND, 0b111, 0b0000000),

	OP_MUL:    r(OP_MUL, 0b000, 0b0000001),
	OP_MULH:   r(OP_MULH, 0b001, 0b0000001),
	OP_MULHSU: r(OP_MULHSU, 0b010, 0b0000001),
	OP_MULHU:  r(OP_MULHU, 0b011, 0b0000001),
	OP_DIV:    r(OP_DIV, 0b100, 0b0000001),
	OP_DIVU:   r(OP_DIVU, 0b101, 0b0000001),
	OP_REM:    r(OP_REM, 0b110, 0b0000001),
	OP_REMU:   r(OP_REMU, 0b111, 0b0000001),

	OP_ADDI:  i(OP_ADDI, OPCODE_OP_IMM, 0b000),
	OP_SLTI:  i(OP_SLTI, OPCODE_OP_IMM, 0b010),
	OP_SLTIU: i(OP_SLTIU, OPCODE_OP_IMM, 0b011),
	OP_XORI:  i(OP_XORI, OPCODE_OP_IMM, 0b100),
	OP_ORI:   i(OP_ORI, OPCODE_OP_IMM, 0b110),
	OP_ANDI:  i(OP_ANDI, OPCODE_OP_IMM, 0b111),

	OP_SLLI: shamt(OP_SLLI, 0b001, 0b0000000),
	OP_SRLI: shamt(OP_SRLI, 0b101, 0b0000000),
	OP_SRAI: shamt(OP_SRAI, 0b101, 0b0100000),

	OP_LB:  i(OP_LB, OPCODE_LOAD, 0b000),
	OP_LH:  i(OP_LH, OPCODE_LOAD, 0b001),
	OP_LW:  i(OP_LW, OPCODE_LOAD, 0b010),
	OP_LBU: i(OP_LBU, OPCODE_LOAD, 0b100),
	OP_LHU: i(OP_LHU, OPCODE_LOAD, 0b101),

	OP_SB: s(OP_SB, 0b000),
	OP_SH: s(OP_SH, 0b001),
	OP_SW: s(OP_SW, 0b010),

	OP_BEQ:  b(OP_BEQ, 0b000),
	OP_BNE:  b(OP_BNE, 0b001),
	OP_BLT:  b(OP_BLT, 0b100),
	OP_BGE:  b(OP_BGE, 0b101),
	OP_BLTU: b(OP_BLTU, 0b110),
	OP_BGEU: b(OP_BGEU, 0b111),

	OP_LUI:   u(OP_LUI, OPCODE_LUI),
	OP_AUIPC: u(OP_AUIPC, OPCODE_AUIPC),

	OP_JAL:  {Op: OP_JAL, Format: FORMAT_J, Opcode: OPCODE_JAL, Rd: REG_INT},
	OP_JALR: i(OP_JALR, OPCODE_JALR, 0b000),

	OP_ECALL:  sys(OP_ECALL, 0),
	OP_EBREAK: sys(OP_EBREAK, 1),

	OP_FLW: {Op: OP_FLW, Format: FORMAT_I_FP, Opcode: OPCODE_LOAD_FP, Funct3: 0b010, Rd: REG_FLOAT, Rs1: REG_INT},
	OP_FSW: {Op: OP_FSW, Format: FORMAT_S_FP, Opcode: OPCODE_STORE_FP, Funct3: 0b010, Rs1: REG_INT, Rs2Class: REG_FLOAT},

	OP_FADD_S:   rfp(OP_FADD_S, 0b0000000, RM_DYN, true),
	OP_FSUB_S:   rfp(OP_FSUB_S, 0b0000100, RM_DYN, true),
	OP_FMUL_S:   rfp(OP_FMUL_S, 0b0001000, RM_DYN, true),
	OP_FDIV_S:   rfp(OP_FDIV_S, 0b0001100, RM_DYN, true),
	OP_FSGNJ_S:  rfp(OP_FSGNJ_S, 0b0010000, 0b000, false),
	OP_FSGNJN_S: rfp(OP_FSGNJN_S, 0b0010000, 0b001, false),
	OP_FSGNJX_S: rfp(OP_FSGNJX_S, 0b0010000, 0b010, false),
	OP_FMIN_S:   rfp(OP_FMIN_S, 0b0010100, 0b000, false),
	OP_FMAX_S:   rfp(OP_FMAX_S, 0b0010100, 0b001, false),

	OP_FSQRT_S:   cvt(OP_FSQRT_S, 0b0101100, 0, RM_DYN, true, REG_FLOAT, REG_FLOAT),
	OP_FCVT_W_S:  cvt(OP_FCVT_W_S, 0b1100000, 0, RM_DYN, true, REG_INT, REG_FLOAT),
	OP_FCVT_WU_S: cvt(OP_FCVT_WU_S, 0b1100000, 1, RM_DYN, true, REG_INT, REG_FLOAT),
	OP_FCVT_S_W:  cvt(OP_FCVT_S_W, 0b1101000, 0, RM_DYN, true, REG_FLOAT, REG_INT),
	OP_FCVT_S_WU: cvt(OP_FCVT_S_WU, 0b1101000, 1, RM_DYN, true, REG_FLOAT, REG_INT),
	OP_FMV_X_W:   cvt(OP_FMV_X_W, 0b1110000, 0, 0b000, false, REG_INT, REG_FLOAT),
	OP_FCLASS_S:  cvt(OP_FCLASS_S, 0b1110000, 0, 0b001, false, REG_INT, REG_FLOAT),
	OP_FMV_W_X:   cvt(OP_FMV_W_X, 0b1111000, 0, 0b000, false, REG_FLOAT, REG_INT),

	OP_FEQ_S: cmp(OP_FEQ_S, 0b010),
	OP_FLT_S: cmp(OP_FLT_S, 0b001),
	OP_FLE_S: cmp(OP_FLE_S, 0b000),
}

// Lookup finds the table row of a mnemonic, case insensitively.
func Lookup(mnemonic string) (spec Spec, ok bool) {
	op, ok := ParseOp(mnemonic)
	if !ok {
		return
	}
	spec = Table[op]
	return
}

// Spec returns the table row of the op.
func (op Op) Spec() Spec {
	if op <= OP_INVALID || int(op) >= len(Table) {
		return Spec{}
	}
	return Table[op]
}

// IsLoad reports whether the row reads memory.
func (spec Spec) IsLoad() bool {
	return spec.Opcode == OPCODE_LOAD || spec.Opcode == OPCODE_LOAD_FP
}

// IsStore reports whether the row writes memory.
func (spec Spec) IsStore() bool {
	return spec.Opcode == OPCODE_STORE || spec.Opcode == OPCODE_STORE_FP
}
