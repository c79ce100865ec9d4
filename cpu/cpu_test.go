package cpu

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/rvsim/asm"
	"github.com/ezrec/rvsim/isa"
	"github.com/ezrec/rvsim/mem"
)

// rig couples a CPU to a memory over a bus, the way the emulator does.
type rig struct {
	cpu    *Cpu
	memory *mem.Memory
	bus    *mem.Bus
	out    bytes.Buffer
}

func newRig(t *testing.T, program ...string) (r *rig) {
	assembler := &asm.Assembler{}
	prog, err := assembler.Parse(strings.NewReader(strings.Join(program, "\n")))
	if err != nil {
		t.Fatalf("%v", err)
	}

	r = &rig{
		cpu:    NewCpu(),
		memory: mem.NewMemory(),
	}
	r.bus = &mem.Bus{Port: r.memory}
	r.memory.Load(prog.Image)
	r.cpu.Reset(prog.Start)
	r.cpu.Stdout = &r.out
	return
}

func (r *rig) tick() (err error) {
	err = r.cpu.Tick(r.bus)
	r.memory.Tick(r.bus)
	return
}

// run ticks until an error (including exit) or the tick limit.
func (r *rig) run(limit int) (err error) {
	for range limit {
		err = r.tick()
		if err != nil {
			return
		}
	}
	return
}

func TestCpuEndToEnd(t *testing.T) {
	assert := assert.New(t)

	r := newRig(t,
		"addi x1,x0,5",
		"addi x2,x0,10",
		"add x3,x1,x2",
	)

	for range 3 {
		assert.NoError(r.tick())
	}
	assert.Equal(int32(15), r.cpu.Register[3])
	assert.Equal(uint32(mem.TEXT_BASE+12), r.cpu.Pc)
	assert.Equal(3, r.cpu.Retired)
	assert.Equal(3, r.cpu.Ticks)
}

func TestCpuZeroRegister(t *testing.T) {
	assert := assert.New(t)

	r := newRig(t,
		"addi x1, x0, 7",
		"addi x0, x1, 5",
		"lui x0, 0x12345",
	)

	assert.NoError(r.run(3))
	assert.Equal(int32(0), r.cpu.X(0))
	assert.Equal(int32(0), r.cpu.Register[0])
	assert.Equal(int32(7), r.cpu.X(1))
}

func TestCpuLi(t *testing.T) {
	assert := assert.New(t)

	r := newRig(t,
		"li x5, 100000",
		"li x6, -1",
		"li x7, 0x7FFFF800",
	)

	assert.NoError(r.run(5))
	assert.Equal(int32(100000), r.cpu.X(5))
	assert.Equal(int32(-1), r.cpu.X(6))
	assert.Equal(int32(0x7FFFF800), r.cpu.X(7))
}

func TestCpuLoadAwaitsOneTick(t *testing.T) {
	assert := assert.New(t)

	r := newRig(t,
		".data",
		"value: .word 0x12345678",
		".text",
		"la t0, value",
		"lw t1, 0(t0)",
		"addi t2, t1, 1",
	)

	assert.NoError(r.run(2))
	pc := r.cpu.Pc

	assert.NoError(r.tick())
	assert.Equal(STATE_AWAITING_MEMORY, r.cpu.State)
	assert.Equal(int32(0), r.cpu.X(6))
	assert.Equal(pc, r.cpu.Pc)

	assert.NoError(r.tick())
	assert.Equal(STATE_IDLE, r.cpu.State)
	assert.Equal(int32(0x12345678), r.cpu.X(6))
	assert.Equal(pc+4, r.cpu.Pc)

	assert.NoError(r.tick())
	assert.Equal(int32(0x12345679), r.cpu.X(7))
}

func TestCpuBackPressure(t *testing.T) {
	assert := assert.New(t)

	r := newRig(t,
		"lw t1, 0(zero)",
	)

	assert.NoError(r.bus.Request(mem.Transaction{Kind: mem.READ, Address: 0x100}))

	err := r.cpu.Tick(r.bus)
	assert.ErrorIs(err, mem.ErrBusBusy)
	assert.Equal(STATE_IDLE, r.cpu.State)
	assert.Equal(uint32(mem.TEXT_BASE), r.cpu.Pc)
	assert.Equal(0, r.cpu.Retired)
}

func TestCpuStoreLoad(t *testing.T) {
	assert := assert.New(t)

	r := newRig(t,
		"li t0, 0x10010000",
		"li t1, -2",
		"sw t1, 0(t0)",
		"lb t2, 0(t0)",
		"lbu t3, 1(t0)",
		"lh t4, 2(t0)",
		"lhu t5, 0(t0)",
		"sb zero, 3(t0)",
		"lw t6, 0(t0)",
	)

	// Three li instructions, then seven memory instructions at two ticks each.
	assert.NoError(r.run(3 + 7*2))
	assert.Equal(int32(-2), r.cpu.X(7))
	assert.Equal(int32(0xff), r.cpu.X(28))
	assert.Equal(int32(-1), r.cpu.X(29))
	assert.Equal(int32(0xfffe), r.cpu.X(30))
	assert.Equal(int32(0x00fffffe), r.cpu.X(31))
}

func TestCpuLoadUninitialized(t *testing.T) {
	assert := assert.New(t)

	r := newRig(t,
		"li t0, 0x10010000",
		"lw t1, 0(t0)",
	)

	assert.NoError(r.run(2))
	assert.NoError(r.tick())

	err := r.tick()
	var uninit mem.ErrUninitialized
	assert.True(errors.As(err, &uninit))
	assert.Equal(mem.ErrUninitialized(0x10010000), uninit)
	assert.Equal(STATE_IDLE, r.cpu.State)
	assert.Equal(uint32(mem.TEXT_BASE+8), r.cpu.Pc)
}

func TestCpuBranches(t *testing.T) {
	assert := assert.New(t)

	r := newRig(t,
		"li t0, 0",
		"li t1, 10",
		"loop:",
		"addi t0, t0, 1",
		"blt t0, t1, loop",
		"li a0, 3",
		"li a7, 93",
		"ecall",
	)

	err := r.run(1000)
	var exit ErrExit
	assert.True(errors.As(err, &exit))
	assert.Equal(ErrExit(3), exit)
	assert.Equal(int32(10), r.cpu.X(5))
}

func TestCpuCallStack(t *testing.T) {
	assert := assert.New(t)

	r := newRig(t,
		"main:",
		"call func",
		"li a7, 10",
		"ecall",
		"func:",
		"addi a0, a0, 1",
		"ret",
	)

	// call expands to auipc+jalr.
	assert.NoError(r.run(2))
	frame, ok := r.cpu.Calls.Peek()
	assert.True(ok)
	assert.Equal(uint32(mem.TEXT_BASE+4), frame.Caller)
	assert.Equal(uint32(mem.TEXT_BASE+16), frame.Target)
	assert.Equal(int32(mem.TEXT_BASE+8), r.cpu.X(1))

	assert.NoError(r.run(2))
	assert.True(r.cpu.Calls.Empty())
	assert.Equal(uint32(mem.TEXT_BASE+8), r.cpu.Pc)

	err := r.run(10)
	assert.Equal(ErrExit(0), errors.Unwrap(err))
	assert.Equal(int32(1), r.cpu.X(10))
}

func TestCpuJalrClearsLowBit(t *testing.T) {
	assert := assert.New(t)

	r := newRig(t,
		"auipc t0, 0",
		"addi t0, t0, 13",
		"jalr ra, t0, 0",
		"nop",
		"addi a0, zero, 1",
	)

	assert.NoError(r.run(3))
	assert.Equal(uint32(mem.TEXT_BASE+12), r.cpu.Pc)
	assert.Equal(int32(mem.TEXT_BASE+12), r.cpu.X(1))
}

func TestCpuEbreak(t *testing.T) {
	assert := assert.New(t)

	r := newRig(t,
		"addi a0, zero, 1",
		"ebreak",
	)

	err := r.run(10)
	assert.ErrorIs(err, ErrBreak)
	var inst *ErrInstruction
	assert.True(errors.As(err, &inst))
	assert.Equal(uint32(mem.TEXT_BASE+4), inst.Pc)
	assert.Equal(uint32(0x00100073), inst.Word)
	assert.Equal(uint32(mem.TEXT_BASE+4), r.cpu.Pc)
}

func TestCpuFetchErrors(t *testing.T) {
	assert := assert.New(t)

	r := newRig(t, "nop")
	r.cpu.Pc = mem.TEXT_BASE + 2
	assert.ErrorIs(r.tick(), mem.ErrFetchAlign)

	r.cpu.Pc = mem.TEXT_BASE + 0x100
	var uninit mem.ErrUninitialized
	assert.True(errors.As(r.tick(), &uninit))

	r = newRig(t, "nop")
	r.memory.Image.Store32(mem.TEXT_BASE, 0xFFFFFFFF)
	var decode isa.ErrDecode
	assert.True(errors.As(r.tick(), &decode))
	assert.Equal(isa.ErrDecode(0xFFFFFFFF), decode)
}

func TestCpuReset(t *testing.T) {
	assert := assert.New(t)

	r := newRig(t,
		"li t0, 5",
		"fcvt.s.w ft0, t0",
	)
	assert.NoError(r.run(2))
	assert.NotZero(r.cpu.Float[0])

	r.cpu.Reset(0x1000)
	assert.Equal(uint32(0x1000), r.cpu.Pc)
	assert.Equal([32]int32{}, r.cpu.Register)
	assert.Equal([32]float32{}, r.cpu.Float)
	assert.Equal(0, r.cpu.Ticks)
	assert.Equal(STATE_IDLE, r.cpu.State)
}

func TestCpuString(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Reset(0x400000)
	cpu.Register[10] = -1

	text := cpu.String()
	assert.Contains(text, "pc: 00400000 idle")
	assert.Contains(text, "a0: ffff_ffff")
	assert.Contains(text, "ft0: 0")
}

func TestCpuDefines(t *testing.T) {
	assert := assert.New(t)

	defines := map[string]string{}
	for k, v := range NewCpu().Defines() {
		defines[k] = v
	}
	assert.Equal("93", defines["SYS_EXIT2"])
	assert.Equal("4", defines["SYS_PRINT_STRING"])
}
