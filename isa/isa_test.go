package isa

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeKnown(t *testing.T) {
	assert := assert.New(t)

	table := [...]struct {
		inst Instruction
		word uint32
		text string
	}{
		{Instruction{Op: OP_ADDI, Rd: 1, Rs1: 0, Imm: 5}, 0x00500093, "addi x1, x0, 5"},
		{Instruction{Op: OP_ADDI, Rd: 2, Rs1: 0, Imm: 10}, 0x00A00113, "addi x2, x0, 10"},
		{Instruction{Op: OP_ADDI, Rd: 1, Rs1: 0, Imm: -1}, 0xFFF00093, "addi x1, x0, -1"},
		{Instruction{Op: OP_ADD, Rd: 3, Rs1: 1, Rs2: 2}, 0x002081B3, "add x3, x1, x2"},
		{Instruction{Op: OP_SW, Rs1: 1, Rs2: 2, Imm: 0}, 0x0020A023, "sw x2, 0(x1)"},
		{Instruction{Op: OP_LW, Rd: 1, Rs1: 2, Imm: 4}, 0x00412083, "lw x1, 4(x2)"},
		{Instruction{Op: OP_SRAI, Rd: 1, Rs1: 1, Imm: 3}, 0x4030D093, "srai x1, x1, 3"},
		{Instruction{Op: OP_BEQ, Rs1: 0, Rs2: 0, Imm: 8}, 0x00000463, "beq x0, x0, 8"},
		{Instruction{Op: OP_JAL, Rd: 1, Imm: -8}, 0xFF9FF0EF, "jal x1, -8"},
		{Instruction{Op: OP_LUI, Rd: 5, Imm: 0x18}, 0x000182B7, "lui x5, 0x18"},
		{Instruction{Op: OP_ADDI, Rd: 5, Rs1: 5, Imm: 1696}, 0x6A028293, "addi x5, x5, 1696"},
		{Instruction{Op: OP_ECALL}, 0x00000073, "ecall"},
		{Instruction{Op: OP_EBREAK}, 0x00100073, "ebreak"},
		{Instruction{Op: OP_FADD_S, Rd: 1, Rs1: 2, Rs2: 3, Rm: RM_DYN}, 0x003170D3, "fadd.s f1, f2, f3"},
	}

	for _, entry := range table {
		word, err := Encode(entry.inst)
		if !assert.NoError(err, entry.text) {
			continue
		}
		assert.Equal(entry.word, word, "%v: 0x%08x", entry.text, word)

		inst, err := Decode(entry.word)
		if !assert.NoError(err, entry.text) {
			continue
		}
		assert.Equal(entry.inst.Op, inst.Op, entry.text)
		assert.Equal(entry.text, inst.String())
	}
}

func TestEncodeImmediateRange(t *testing.T) {
	assert := assert.New(t)

	table := [...]struct {
		op    Op
		imm   int32
		valid bool
		align bool
	}{
		{OP_ADDI, 2047, true, false},
		{OP_ADDI, -2048, true, false},
		{OP_ADDI, 2048, false, false},
		{OP_ADDI, -2049, false, false},
		{OP_SW, 2047, true, false},
		{OP_SW, -2049, false, false},
		{OP_SLLI, 31, true, false},
		{OP_SLLI, 32, false, false},
		{OP_SLLI, -1, false, false},
		{OP_BEQ, 4, true, false},
		{OP_BEQ, -4, true, false},
		{OP_BEQ, 1, false, true},
		{OP_BEQ, 4094, true, false},
		{OP_BEQ, -4096, true, false},
		{OP_BEQ, 4096, false, false},
		{OP_LUI, 0xFFFFF, true, false},
		{OP_LUI, 0x100000, false, false},
		{OP_LUI, -1, false, false},
		{OP_JAL, 1048574, true, false},
		{OP_JAL, -1048576, true, false},
		{OP_JAL, 1048576, false, false},
		{OP_JAL, 3, false, true},
	}

	for _, entry := range table {
		_, err := Encode(Instruction{Op: entry.op, Rd: 1, Rs1: 2, Rs2: 3, Imm: entry.imm})
		switch {
		case entry.valid:
			assert.NoError(err, "%v %v", entry.op, entry.imm)
		case entry.align:
			assert.ErrorIs(err, ErrImmediateAlign, "%v %v", entry.op, entry.imm)
		default:
			var rangeErr *ErrImmediateRange
			assert.True(errors.As(err, &rangeErr), "%v %v: %v", entry.op, entry.imm, err)
		}
	}
}

func TestEncodeRegisterInvalid(t *testing.T) {
	assert := assert.New(t)

	_, err := Encode(Instruction{Op: OP_ADD, Rd: 32, Rs1: 1, Rs2: 2})
	var regErr ErrRegisterInvalid
	assert.True(errors.As(err, &regErr))

	_, err = Encode(Instruction{Op: OP_INVALID})
	assert.ErrorIs(err, ErrFormatInvalid)
}

// sample builds an instruction using every operand the op has.
func sample(op Op) (inst Instruction) {
	spec := op.Spec()
	inst.Op = op
	rd, rs1, rs2, imm := spec.operands()
	if rd {
		inst.Rd = 5
	}
	if rs1 {
		inst.Rs1 = 17
	}
	if rs2 {
		inst.Rs2 = 31
	}
	if imm {
		switch spec.Format {
		case FORMAT_I_SHAMT:
			inst.Imm = 13
		case FORMAT_U:
			inst.Imm = 0xABCDE
		case FORMAT_B:
			inst.Imm = -4094
		case FORMAT_J:
			inst.Imm = 0x7FFFE
		default:
			inst.Imm = -2047
		}
	}
	if spec.Rm {
		inst.Rm = RM_RTZ
	}
	return
}

func TestRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for _, op := range Ops() {
		inst := sample(op)
		word, err := Encode(inst)
		if !assert.NoError(err, op.String()) {
			continue
		}

		decoded, err := Decode(word)
		if !assert.NoError(err, op.String()) {
			continue
		}

		assert.Equal(inst.Op, decoded.Op)
		assert.Equal(op.Spec().Format, decoded.Format, op.String())
		assert.Equal(inst.Rd, decoded.Rd, op.String())
		assert.Equal(inst.Rs1, decoded.Rs1, op.String())
		assert.Equal(inst.Rs2, decoded.Rs2, op.String())
		assert.Equal(inst.Imm, decoded.Imm, op.String())
		assert.Equal(inst.Rm, decoded.Rm, op.String())
	}
}

func TestDecodeUnknown(t *testing.T) {
	assert := assert.New(t)

	for _, word := range []uint32{0x00000000, 0xFFFFFFFF, 0x0000007F} {
		_, err := Decode(word)
		assert.Equal(ErrDecode(word), err)
	}
}

func TestLookup(t *testing.T) {
	assert := assert.New(t)

	spec, ok := Lookup("FCVT.W.S")
	assert.True(ok)
	assert.Equal(OP_FCVT_W_S, spec.Op)
	assert.Equal(FORMAT_R_FP_CVT, spec.Format)

	_, ok = Lookup("li")
	assert.False(ok)

	_, ok = Lookup("invalid")
	assert.False(ok)

	assert.True(OP_LW.Spec().IsLoad())
	assert.True(OP_FSW.Spec().IsStore())
	assert.False(OP_ADD.Spec().IsLoad())
}

func TestParseRegister(t *testing.T) {
	assert := assert.New(t)

	table := [...]struct {
		name  string
		index int
		ok    bool
	}{
		{"x0", 0, true},
		{"x31", 31, true},
		{"zero", 0, true},
		{"ra", 1, true},
		{"sp", 2, true},
		{"fp", 8, true},
		{"s0", 8, true},
		{"a7", 17, true},
		{"t6", 31, true},
		{"$5", 5, true},
		{"$a0", 10, true},
		{"X3", 3, true},
		{"x32", 0, false},
		{"x01", 0, false},
		{"f1", 0, false},
		{"bogus", 0, false},
	}

	for _, entry := range table {
		index, err := ParseRegister(entry.name)
		if entry.ok {
			assert.NoError(err, entry.name)
			assert.Equal(entry.index, index, entry.name)
		} else {
			assert.Equal(ErrRegisterInvalid(entry.name), err, entry.name)
		}
	}

	index, err := ParseFloatRegister("fa0")
	assert.NoError(err)
	assert.Equal(10, index)

	index, err = ParseFloatRegister("$f7")
	assert.NoError(err)
	assert.Equal(7, index)

	_, err = ParseFloatRegister("x1")
	assert.Error(err)
}

func FuzzDecode(f *testing.F) {
	f.Add(uint32(0x00500093))
	f.Add(uint32(0xFF9FF0EF))
	f.Add(uint32(0x003170D3))
	f.Add(uint32(0x00100073))

	f.Fuzz(func(t *testing.T, word uint32) {
		assert := assert.New(t)

		inst, err := Decode(word)
		if err != nil {
			assert.Equal(ErrDecode(word), err)
			return
		}

		again, err := Encode(inst)
		if !assert.NoError(err, "0x%08x %v", word, inst) {
			return
		}

		redecoded, err := Decode(again)
		assert.NoError(err)
		assert.Equal(inst, redecoded, "0x%08x", word)
	})
}
