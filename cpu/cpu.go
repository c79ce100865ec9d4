package cpu

import (
	"fmt"
	"io"
	"iter"
	"maps"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/ezrec/rvsim/isa"
	"github.com/ezrec/rvsim/mem"
)

// State is the transaction cursor of the CPU.
type State int

//go:generate go tool stringer -linecomment -type=State
const (
	STATE_IDLE            = State(iota) // idle
	STATE_AWAITING_MEMORY               // awaiting-memory
)

// System call numbers, selected by a7.
const (
	SYS_PRINT_INT    = 1
	SYS_PRINT_FLOAT  = 2
	SYS_PRINT_STRING = 4
	SYS_EXIT         = 10
	SYS_PRINT_CHAR   = 11
	SYS_WRITE        = 64
	SYS_EXIT2        = 93
)

var _cpu_defines = map[string]string{
	"SYS_PRINT_INT":    fmt.Sprint(SYS_PRINT_INT),
	"SYS_PRINT_FLOAT":  fmt.Sprint(SYS_PRINT_FLOAT),
	"SYS_PRINT_STRING": fmt.Sprint(SYS_PRINT_STRING),
	"SYS_EXIT":         fmt.Sprint(SYS_EXIT),
	"SYS_PRINT_CHAR":   fmt.Sprint(SYS_PRINT_CHAR),
	"SYS_WRITE":        fmt.Sprint(SYS_WRITE),
	"SYS_EXIT2":        fmt.Sprint(SYS_EXIT2),
}

// pending is the load or store the CPU is waiting on.
type pending struct {
	inst isa.Instruction
	word uint32
}

// Cpu is the simulation context for the RV32 processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Pc       uint32      // Program counter.
	Register [32]int32   // Integer register file; x0 always reads zero.
	Float    [32]float32 // Single precision register file.
	State    State       // Transaction cursor.
	Calls    CallStack   // Calls made through ra.

	Stdout io.Writer // System call output; nil discards it.

	Ticks   int // CPU ticks counter.
	Retired int // Instructions completed.

	pending pending
}

// NewCpu creates a CPU in its reset state.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{}
	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset zeros the register files and counters, and sets the PC.
func (cpu *Cpu) Reset(pc uint32) {
	cpu.Pc = pc
	cpu.Register = [32]int32{}
	cpu.Float = [32]float32{}
	cpu.State = STATE_IDLE
	cpu.Calls.Reset()
	cpu.Ticks = 0
	cpu.Retired = 0
	cpu.pending = pending{}
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() string {
	var text strings.Builder

	fmt.Fprintf(&text, "   pc: %08x %v\n", cpu.Pc, cpu.State)
	for n := 0; n < 32; n += 4 {
		for col := n; col < n+4; col++ {
			val := uint32(cpu.Register[col])
			fmt.Fprintf(&text, "% 5s: %04x_%04x ", isa.IntNames[col], val>>16, val&0xffff)
		}
		text.WriteString("\n")
	}
	for n := 0; n < 32; n += 4 {
		for col := n; col < n+4; col++ {
			fmt.Fprintf(&text, "% 5s: %-12g", isa.FloatNames[col], cpu.Float[col])
		}
		text.WriteString("\n")
	}

	return text.String()
}

// X reads an integer register.
func (cpu *Cpu) X(index int) int32 {
	if index == isa.X_ZERO {
		return 0
	}
	return cpu.Register[index]
}

// SetX writes an integer register. Writes to x0 are discarded.
func (cpu *Cpu) SetX(index int, value int32) {
	if index == isa.X_ZERO {
		return
	}
	cpu.Register[index] = value
}

// Tick advances the CPU by one unit of work. While awaiting memory it
// only checks the bus for a response.
func (cpu *Cpu) Tick(bus *mem.Bus) (err error) {
	cpu.Ticks++

	if cpu.State == STATE_AWAITING_MEMORY {
		err = cpu.complete(bus)
		return
	}

	pc := cpu.Pc
	word, err := bus.Fetch(pc)
	if err != nil {
		err = &ErrInstruction{Pc: pc, Err: err}
		return
	}

	inst, err := isa.Decode(word)
	if err != nil {
		err = &ErrInstruction{Pc: pc, Word: word, Err: err}
		return
	}

	err = cpu.Execute(bus, word, inst)
	if err != nil {
		err = &ErrInstruction{Pc: pc, Word: word, Err: err}
		return
	}

	return
}

// complete consumes the response of the outstanding load or store.
func (cpu *Cpu) complete(bus *mem.Bus) (err error) {
	resp, ok := bus.Response()
	if !ok {
		if bus.Idle() {
			err = &ErrInstruction{Pc: cpu.Pc, Word: cpu.pending.word, Err: ErrResponseLost}
		}
		return
	}

	inst := cpu.pending.inst
	if resp.Err != nil {
		// The access failed; stay on the faulting instruction.
		cpu.State = STATE_IDLE
		err = &ErrInstruction{Pc: cpu.Pc, Word: cpu.pending.word, Err: resp.Err}
		return
	}

	switch inst.Op {
	case isa.OP_LB:
		cpu.SetX(inst.Rd, int32(int8(resp.Data)))
	case isa.OP_LH:
		cpu.SetX(inst.Rd, int32(int16(resp.Data)))
	case isa.OP_LW:
		cpu.SetX(inst.Rd, int32(resp.Data))
	case isa.OP_LBU:
		cpu.SetX(inst.Rd, int32(resp.Data&0xff))
	case isa.OP_LHU:
		cpu.SetX(inst.Rd, int32(resp.Data&0xffff))
	case isa.OP_FLW:
		cpu.Float[inst.Rd] = fromBits(resp.Data)
	}

	if cpu.Verbose {
		logrus.WithFields(logrus.Fields{
			"pc":   fmt.Sprintf("%08x", cpu.Pc),
			"op":   inst.Op.String(),
			"data": fmt.Sprintf("%08x", resp.Data),
		}).Debug("cpu: complete")
	}

	cpu.State = STATE_IDLE
	cpu.Pc += 4
	cpu.Retired++
	return
}

// access posts the bus transaction of a load or store.
func (cpu *Cpu) access(bus *mem.Bus, word uint32, inst isa.Instruction) (err error) {
	address := uint32(cpu.X(inst.Rs1) + inst.Imm)

	var tx mem.Transaction
	tx.Address = address
	switch inst.Op {
	case isa.OP_LB, isa.OP_LBU:
		tx.Kind = mem.READ_BYTE
	case isa.OP_LH, isa.OP_LHU:
		tx.Kind = mem.READ_HALF
	case isa.OP_LW, isa.OP_FLW:
		tx.Kind = mem.READ
	case isa.OP_SB:
		tx.Kind = mem.WRITE_BYTE
		tx.Value = uint32(cpu.X(inst.Rs2)) & 0xff
	case isa.OP_SH:
		tx.Kind = mem.WRITE_HALF
		tx.Value = uint32(cpu.X(inst.Rs2)) & 0xffff
	case isa.OP_SW:
		tx.Kind = mem.WRITE
		tx.Value = uint32(cpu.X(inst.Rs2))
	case isa.OP_FSW:
		tx.Kind = mem.WRITE
		tx.Value = toBits(cpu.Float[inst.Rs2])
	}

	err = bus.Request(tx)
	if err != nil {
		return
	}

	cpu.pending = pending{inst: inst, word: word}
	cpu.State = STATE_AWAITING_MEMORY
	return
}

// Execute runs one decoded instruction. Loads and stores only post their
// transaction; every other instruction retires immediately. State is only
// committed when no error is returned.
func (cpu *Cpu) Execute(bus *mem.Bus, word uint32, inst isa.Instruction) (err error) {
	if cpu.Verbose {
		logrus.WithFields(logrus.Fields{
			"pc":   fmt.Sprintf("%08x", cpu.Pc),
			"word": fmt.Sprintf("%08x", word),
		}).Debug(inst.String())
	}

	spec := inst.Op.Spec()
	if spec.IsLoad() || spec.IsStore() {
		err = cpu.access(bus, word, inst)
		return
	}

	pc := cpu.Pc
	next := pc + 4

	rs1 := cpu.X(inst.Rs1)
	rs2 := cpu.X(inst.Rs2)

	switch inst.Op {
	case isa.OP_LUI:
		cpu.SetX(inst.Rd, inst.Imm<<12)
	case isa.OP_AUIPC:
		cpu.SetX(inst.Rd, int32(pc)+inst.Imm<<12)
	case isa.OP_JAL:
		next = pc + uint32(inst.Imm)
		cpu.SetX(inst.Rd, int32(pc+4))
		cpu.trace(inst, pc, next)
	case isa.OP_JALR:
		next = uint32(rs1+inst.Imm) &^ 1
		cpu.SetX(inst.Rd, int32(pc+4))
		cpu.trace(inst, pc, next)
	case isa.OP_BEQ, isa.OP_BNE, isa.OP_BLT, isa.OP_BGE, isa.OP_BLTU, isa.OP_BGEU:
		if branch(inst.Op, rs1, rs2) {
			next = pc + uint32(inst.Imm)
		}
	case isa.OP_ECALL:
		err = cpu.syscall(bus)
		if err != nil {
			return
		}
	case isa.OP_EBREAK:
		err = ErrBreak
		return
	default:
		switch spec.Opcode {
		case isa.OPCODE_OP, isa.OPCODE_OP_IMM:
			var value int32
			value, err = alu(inst.Op, rs1, rs2, inst.Imm)
			if err != nil {
				return
			}
			cpu.SetX(inst.Rd, value)
		case isa.OPCODE_OP_FP:
			err = cpu.fpu(inst)
			if err != nil {
				return
			}
		default:
			err = isa.ErrDecode(word)
			return
		}
	}

	cpu.Pc = next
	cpu.Retired++
	return
}

// trace maintains the call stack across jal and jalr.
func (cpu *Cpu) trace(inst isa.Instruction, pc uint32, target uint32) {
	switch {
	case inst.Rd == isa.X_RA:
		cpu.Calls.Push(Frame{Caller: pc, Target: target})
	case inst.Op == isa.OP_JALR && inst.Rd == isa.X_ZERO && inst.Rs1 == isa.X_RA:
		cpu.Calls.Pop()
	}
}
