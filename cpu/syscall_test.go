package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/rvsim/mem"
)

func TestSyscall(t *testing.T) {
	assert := assert.New(t)

	table := [...]struct {
		name    string
		program []string
		output  string
		a0      int32
	}{
		{"print_int", []string{
			"li a0, -42",
			"li a7, 1",
			"ecall",
		}, "-42", -42},
		{"print_float", []string{
			"li t0, 5",
			"fcvt.s.w fa0, t0",
			"li t0, 2",
			"fcvt.s.w ft0, t0",
			"fdiv.s fa0, fa0, ft0",
			"li a7, 2",
			"ecall",
		}, "2.5", 0},
		{"print_string", []string{
			".data",
			"msg: .asciiz \"hello\\n\"",
			".text",
			"la a0, msg",
			"li a7, 4",
			"ecall",
		}, "hello\n", 0x10010000},
		{"print_char", []string{
			"li a0, 'Z'",
			"li a7, 11",
			"ecall",
		}, "Z", 'Z'},
		{"write", []string{
			".data",
			"msg: .ascii \"abcdef\"",
			".text",
			"li a0, 1",
			"la a1, msg",
			"li a2, 3",
			"li a7, 64",
			"ecall",
		}, "abc", 3},
		{"write_bad_fd", []string{
			".data",
			"msg: .ascii \"abcdef\"",
			".text",
			"li a0, 2",
			"la a1, msg",
			"li a2, 3",
			"li a7, 64",
			"ecall",
		}, "", -1},
	}

	for _, entry := range table {
		r := newRig(t, entry.program...)
		r.cpu.Verbose = true

		// Each program runs off its end into uninitialized memory.
		err := r.run(100)
		var uninit mem.ErrUninitialized
		assert.True(errors.As(err, &uninit), "%v: %v", entry.name, err)

		assert.Equal(entry.output, r.out.String(), entry.name)
		assert.Equal(entry.a0, r.cpu.X(10), entry.name)
	}
}

func TestSyscallExit(t *testing.T) {
	assert := assert.New(t)

	r := newRig(t,
		"li a0, 7",
		"li a7, 10",
		"ecall",
	)
	err := r.run(10)
	var exit ErrExit
	assert.True(errors.As(err, &exit))
	assert.Equal(ErrExit(0), exit)

	r = newRig(t,
		"li a0, 7",
		"li a7, 93",
		"ecall",
	)
	err = r.run(10)
	assert.True(errors.As(err, &exit))
	assert.Equal(ErrExit(7), exit)
	assert.Equal("exit 7", exit.Error())
}

func TestSyscallErrors(t *testing.T) {
	assert := assert.New(t)

	r := newRig(t,
		"li a7, 1234",
		"ecall",
	)
	err := r.run(10)
	var unknown ErrSyscall
	assert.True(errors.As(err, &unknown))
	assert.Equal(ErrSyscall(1234), unknown)

	r = newRig(t,
		"li a0, 0x10010000",
		"li a7, 4",
		"ecall",
	)
	r.memory.Image.Store(0x10010000, 1, 'x')
	err = r.run(10)
	assert.Error(err)
	assert.Empty(r.out.String())
}
