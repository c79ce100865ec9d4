package asm

import (
	"strings"

	"github.com/ezrec/rvsim/isa"
)

// Pseudo is a pseudo-instruction.
type Pseudo int

//go:generate go tool stringer -linecomment -type=Pseudo
const (
	PSEUDO_NONE   = Pseudo(0)  // none
	PSEUDO_NOP    = Pseudo(1)  // nop
	PSEUDO_LI     = Pseudo(2)  // li
	PSEUDO_LA     = Pseudo(3)  // la
	PSEUDO_CALL   = Pseudo(4)  // call
	PSEUDO_MV     = Pseudo(5)  // mv
	PSEUDO_NOT    = Pseudo(6)  // not
	PSEUDO_NEG    = Pseudo(7)  // neg
	PSEUDO_SEQZ   = Pseudo(8)  // seqz
	PSEUDO_SNEZ   = Pseudo(9)  // snez
	PSEUDO_J      = Pseudo(10) // j
	PSEUDO_JAL    = Pseudo(11) // jal
	PSEUDO_JR     = Pseudo(12) // jr
	PSEUDO_JALR   = Pseudo(13) // jalr
	PSEUDO_RET    = Pseudo(14) // ret
	PSEUDO_BEQZ   = Pseudo(15) // beqz
	PSEUDO_BNEZ   = Pseudo(16) // bnez
	PSEUDO_BGEZ   = Pseudo(17) // bgez
	PSEUDO_BLTZ   = Pseudo(18) // bltz
	PSEUDO_BLEZ   = Pseudo(19) // blez
	PSEUDO_BGTZ   = Pseudo(20) // bgtz
	PSEUDO_BGT    = Pseudo(21) // bgt
	PSEUDO_BLE    = Pseudo(22) // ble
	PSEUDO_BGTU   = Pseudo(23) // bgtu
	PSEUDO_BLEU   = Pseudo(24) // bleu
	PSEUDO_FMV_S  = Pseudo(25) // fmv.s
	PSEUDO_FABS_S = Pseudo(26) // fabs.s
	PSEUDO_FNEG_S = Pseudo(27) // fneg.s
	pseudo_count  = Pseudo(28)
)

// pseudoOperands is the operand count of each pseudo-instruction.
var pseudoOperands = [...]int{
	PSEUDO_NOP:    0,
	PSEUDO_LI:     2,
	PSEUDO_LA:     2,
	PSEUDO_CALL:   1,
	PSEUDO_MV:     2,
	PSEUDO_NOT:    2,
	PSEUDO_NEG:    2,
	PSEUDO_SEQZ:   2,
	PSEUDO_SNEZ:   2,
	PSEUDO_J:      1,
	PSEUDO_JAL:    1,
	PSEUDO_JR:     1,
	PSEUDO_JALR:   1,
	PSEUDO_RET:    0,
	PSEUDO_BEQZ:   2,
	PSEUDO_BNEZ:   2,
	PSEUDO_BGEZ:   2,
	PSEUDO_BLTZ:   2,
	PSEUDO_BLEZ:   2,
	PSEUDO_BGTZ:   2,
	PSEUDO_BGT:    3,
	PSEUDO_BLE:    3,
	PSEUDO_BGTU:   3,
	PSEUDO_BLEU:   3,
	PSEUDO_FMV_S:  2,
	PSEUDO_FABS_S: 2,
	PSEUDO_FNEG_S: 2,
}

// ParsePseudo finds the pseudo-instruction for a mnemonic and operand
// count. `jal` and `jalr` are only pseudo-instructions in their one
// operand forms.
func ParsePseudo(mnemonic string, operands int) (pseudo Pseudo, ok bool) {
	name := strings.ToLower(mnemonic)
	for pseudo = PSEUDO_NONE + 1; pseudo < pseudo_count; pseudo++ {
		if pseudo.String() != name {
			continue
		}
		if _, isOp := isa.ParseOp(name); isOp && operands != pseudoOperands[pseudo] {
			break
		}
		ok = true
		return
	}
	pseudo = PSEUDO_NONE
	return
}

// fitsI reports whether value fits a 12-bit signed immediate.
func fitsI(value int64) bool {
	return value >= -2048 && value <= 2047
}

// hiLo splits value into the U immediate and the sign-extended low 12 bits
// that together rebuild it.
func hiLo(value uint32) (hi int32, lo int32) {
	hi = int32(((value + 0x800) >> 12) & 0xFFFFF)
	lo = int32(value - uint32(hi)<<12)
	return
}

// pseudoSize returns the Pass 1 size of a pseudo-instruction. `li` is the
// only one whose size depends on its operand: 4 bytes when the value is
// already known and fits 12 bits, 8 otherwise.
func (asm *Assembler) pseudoSize(pseudo Pseudo, operands []string) (size uint32) {
	switch pseudo {
	case PSEUDO_LI:
		value, known := asm.known(operands[1])
		if known && fitsI(value) {
			return 4
		}
		return 8
	case PSEUDO_LA, PSEUDO_CALL:
		return 8
	}
	return 4
}

// expand converts a pseudo-instruction into concrete instructions. size is
// the Pass 1 size, which the expansion must honour.
func (asm *Assembler) expand(line *SourceLine) (insts []isa.Instruction, err error) {
	ops := line.Operands
	pc := line.Address

	reg := func(n int) (index int) {
		if err != nil {
			return
		}
		index, err = isa.ParseRegister(ops[n])
		return
	}
	freg := func(n int) (index int) {
		if err != nil {
			return
		}
		index, err = isa.ParseFloatRegister(ops[n])
		return
	}
	target := func(n int) (offset int32) {
		if err != nil {
			return
		}
		offset, err = asm.target(ops[n], pc)
		return
	}
	branch := func(op isa.Op, rs1, rs2 int, offset int32) {
		insts = append(insts, isa.Instruction{Op: op, Rs1: rs1, Rs2: rs2, Imm: offset})
	}

	switch line.Pseudo {
	case PSEUDO_NOP:
		insts = append(insts, isa.Instruction{Op: isa.OP_ADDI})
	case PSEUDO_LI:
		rd := reg(0)
		var value int64
		if err == nil {
			value, err = asm.resolve(ops[1])
		}
		if err != nil {
			return
		}
		if value < -(1<<31) || value > 0xFFFFFFFF {
			err = &ErrValueRange{Value: value, Min: -(1 << 31), Max: 0xFFFFFFFF}
			return
		}
		if line.Size == 4 {
			insts = append(insts, isa.Instruction{Op: isa.OP_ADDI, Rd: rd, Imm: int32(value)})
			break
		}
		hi, lo := hiLo(uint32(value))
		insts = append(insts,
			isa.Instruction{Op: isa.OP_LUI, Rd: rd, Imm: hi},
			isa.Instruction{Op: isa.OP_ADDI, Rd: rd, Rs1: rd, Imm: lo},
		)
	case PSEUDO_LA, PSEUDO_CALL:
		rd := isa.X_RA
		symbol := ops[0]
		if line.Pseudo == PSEUDO_LA {
			rd = reg(0)
			symbol = ops[1]
		}
		var address int64
		if err == nil {
			address, err = asm.resolve(symbol)
		}
		if err != nil {
			return
		}
		hi, lo := hiLo(uint32(address) - pc)
		insts = append(insts, isa.Instruction{Op: isa.OP_AUIPC, Rd: rd, Imm: hi})
		if line.Pseudo == PSEUDO_LA {
			insts = append(insts, isa.Instruction{Op: isa.OP_ADDI, Rd: rd, Rs1: rd, Imm: lo})
		} else {
			insts = append(insts, isa.Instruction{Op: isa.OP_JALR, Rd: rd, Rs1: rd, Imm: lo})
		}
	case PSEUDO_MV:
		insts = append(insts, isa.Instruction{Op: isa.OP_ADDI, Rd: reg(0), Rs1: reg(1)})
	case PSEUDO_NOT:
		insts = append(insts, isa.Instruction{Op: isa.OP_XORI, Rd: reg(0), Rs1: reg(1), Imm: -1})
	case PSEUDO_NEG:
		insts = append(insts, isa.Instruction{Op: isa.OP_SUB, Rd: reg(0), Rs2: reg(1)})
	case PSEUDO_SEQZ:
		insts = append(insts, isa.Instruction{Op: isa.OP_SLTIU, Rd: reg(0), Rs1: reg(1), Imm: 1})
	case PSEUDO_SNEZ:
		insts = append(insts, isa.Instruction{Op: isa.OP_SLTU, Rd: reg(0), Rs2: reg(1)})
	case PSEUDO_J:
		insts = append(insts, isa.Instruction{Op: isa.OP_JAL, Rd: isa.X_ZERO, Imm: target(0)})
	case PSEUDO_JAL:
		insts = append(insts, isa.Instruction{Op: isa.OP_JAL, Rd: isa.X_RA, Imm: target(0)})
	case PSEUDO_JR:
		insts = append(insts, isa.Instruction{Op: isa.OP_JALR, Rd: isa.X_ZERO, Rs1: reg(0)})
	case PSEUDO_JALR:
		insts = append(insts, isa.Instruction{Op: isa.OP_JALR, Rd: isa.X_RA, Rs1: reg(0)})
	case PSEUDO_RET:
		insts = append(insts, isa.Instruction{Op: isa.OP_JALR, Rd: isa.X_ZERO, Rs1: isa.X_RA})
	case PSEUDO_BEQZ:
		branch(isa.OP_BEQ, reg(0), isa.X_ZERO, target(1))
	case PSEUDO_BNEZ:
		branch(isa.OP_BNE, reg(0), isa.X_ZERO, target(1))
	case PSEUDO_BGEZ:
		branch(isa.OP_BGE, reg(0), isa.X_ZERO, target(1))
	case PSEUDO_BLTZ:
		branch(isa.OP_BLT, reg(0), isa.X_ZERO, target(1))
	case PSEUDO_BLEZ:
		branch(isa.OP_BGE, isa.X_ZERO, reg(0), target(1))
	case PSEUDO_BGTZ:
		branch(isa.OP_BLT, isa.X_ZERO, reg(0), target(1))
	case PSEUDO_BGT:
		branch(isa.OP_BLT, reg(1), reg(0), target(2))
	case PSEUDO_BLE:
		branch(isa.OP_BGE, reg(1), reg(0), target(2))
	case PSEUDO_BGTU:
		branch(isa.OP_BLTU, reg(1), reg(0), target(2))
	case PSEUDO_BLEU:
		branch(isa.OP_BGEU, reg(1), reg(0), target(2))
	case PSEUDO_FMV_S:
		rd, rs := freg(0), freg(1)
		insts = append(insts, isa.Instruction{Op: isa.OP_FSGNJ_S, Rd: rd, Rs1: rs, Rs2: rs})
	case PSEUDO_FABS_S:
		rd, rs := freg(0), freg(1)
		insts = append(insts, isa.Instruction{Op: isa.OP_FSGNJX_S, Rd: rd, Rs1: rs, Rs2: rs})
	case PSEUDO_FNEG_S:
		rd, rs := freg(0), freg(1)
		insts = append(insts, isa.Instruction{Op: isa.OP_FSGNJN_S, Rd: rd, Rs1: rs, Rs2: rs})
	default:
		err = ErrMnemonic(line.Mnemonic)
	}

	if err != nil {
		insts = nil
		return
	}

	if uint32(len(insts))*4 != line.Size {
		insts = nil
		err = ErrSizeMismatch
	}

	return
}
