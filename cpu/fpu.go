package cpu

import (
	"math"

	"github.com/ezrec/rvsim/isa"
)

const (
	signBit      = uint32(1) << 31
	canonicalNaN = uint32(0x7fc00000)
)

func toBits(v float32) uint32 {
	return math.Float32bits(v)
}

func fromBits(v uint32) float32 {
	return math.Float32frombits(v)
}

func isNaN(v float32) bool {
	return v != v
}

// round applies a rounding mode to an integral conversion. The dynamic
// mode rounds to nearest even.
func round(v float64, rm uint32) float64 {
	switch rm {
	case isa.RM_RTZ:
		return math.Trunc(v)
	case isa.RM_RDN:
		return math.Floor(v)
	case isa.RM_RUP:
		return math.Ceil(v)
	case isa.RM_RMM:
		return math.Round(v)
	}
	return math.RoundToEven(v)
}

// toInt32 converts with saturation; NaN converts to the largest value.
func toInt32(v float32, rm uint32) int32 {
	if isNaN(v) {
		return math.MaxInt32
	}
	r := round(float64(v), rm)
	switch {
	case r >= math.MaxInt32:
		return math.MaxInt32
	case r <= math.MinInt32:
		return math.MinInt32
	}
	return int32(r)
}

// toUint32 converts with saturation; NaN converts to the largest value.
func toUint32(v float32, rm uint32) uint32 {
	if isNaN(v) {
		return math.MaxUint32
	}
	r := round(float64(v), rm)
	switch {
	case r >= math.MaxUint32:
		return math.MaxUint32
	case r <= 0:
		return 0
	}
	return uint32(r)
}

// minMax follows the IEEE 754-2019 minimumNumber/maximumNumber rules that
// RISC-V uses: a single NaN operand is ignored, and -0 orders below +0.
func minMax(a, b float32, max bool) float32 {
	switch {
	case isNaN(a) && isNaN(b):
		return fromBits(canonicalNaN)
	case isNaN(a):
		return b
	case isNaN(b):
		return a
	case a == b:
		neg := toBits(a)&signBit != 0
		if neg != max {
			return a
		}
		return b
	case (a < b) != max:
		return a
	}
	return b
}

// classify returns the fclass.s mask of v.
func classify(v float32) int32 {
	bits := toBits(v)
	neg := bits&signBit != 0
	exp := (bits >> 23) & 0xff
	frac := bits & 0x7fffff

	var index uint
	switch {
	case exp == 0xff && frac == 0:
		index = 7
		if neg {
			index = 0
		}
	case exp == 0xff:
		index = 8
		if frac&(1<<22) != 0 {
			index = 9
		}
	case exp == 0 && frac == 0:
		index = 4
		if neg {
			index = 3
		}
	case exp == 0:
		index = 5
		if neg {
			index = 2
		}
	default:
		index = 6
		if neg {
			index = 1
		}
	}

	return int32(1) << index
}

// fpu executes the OP-FP instructions.
func (cpu *Cpu) fpu(inst isa.Instruction) (err error) {
	a := cpu.Float[inst.Rs1]
	b := cpu.Float[inst.Rs2]

	setF := func(v float32) {
		cpu.Float[inst.Rd] = v
	}

	switch inst.Op {
	case isa.OP_FADD_S:
		setF(a + b)
	case isa.OP_FSUB_S:
		setF(a - b)
	case isa.OP_FMUL_S:
		setF(a * b)
	case isa.OP_FDIV_S:
		setF(a / b)
	case isa.OP_FSQRT_S:
		setF(float32(math.Sqrt(float64(a))))
	case isa.OP_FSGNJ_S:
		setF(fromBits(toBits(a)&^signBit | toBits(b)&signBit))
	case isa.OP_FSGNJN_S:
		setF(fromBits(toBits(a)&^signBit | ^toBits(b)&signBit))
	case isa.OP_FSGNJX_S:
		setF(fromBits(toBits(a) ^ toBits(b)&signBit))
	case isa.OP_FMIN_S:
		setF(minMax(a, b, false))
	case isa.OP_FMAX_S:
		setF(minMax(a, b, true))
	case isa.OP_FCVT_W_S:
		cpu.SetX(inst.Rd, toInt32(a, inst.Rm))
	case isa.OP_FCVT_WU_S:
		cpu.SetX(inst.Rd, int32(toUint32(a, inst.Rm)))
	case isa.OP_FCVT_S_W:
		setF(float32(cpu.X(inst.Rs1)))
	case isa.OP_FCVT_S_WU:
		setF(float32(uint32(cpu.X(inst.Rs1))))
	case isa.OP_FMV_X_W:
		cpu.SetX(inst.Rd, int32(toBits(a)))
	case isa.OP_FMV_W_X:
		setF(fromBits(uint32(cpu.X(inst.Rs1))))
	case isa.OP_FCLASS_S:
		cpu.SetX(inst.Rd, classify(a))
	case isa.OP_FEQ_S:
		cpu.SetX(inst.Rd, flag(a == b))
	case isa.OP_FLT_S:
		cpu.SetX(inst.Rd, flag(a < b))
	case isa.OP_FLE_S:
		cpu.SetX(inst.Rd, flag(a <= b))
	default:
		err = isa.ErrFormatInvalid
	}

	return
}
