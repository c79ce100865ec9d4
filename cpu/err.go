package cpu

import (
	"errors"

	"github.com/ezrec/rvsim/translate"
)

var f = translate.From

var (
	ErrBreak        = errors.New(f("ebreak"))
	ErrResponseLost = errors.New(f("memory response missing"))
)

// ErrExit is returned when a program exits through a system call.
type ErrExit int32

func (err ErrExit) Error() string {
	return f("exit %d", int32(err))
}

// ErrSyscall reports an unknown system call number.
type ErrSyscall int32

func (err ErrSyscall) Error() string {
	return f("system call %d unknown", int32(err))
}

// ErrInstruction attaches the faulting instruction to an execution error.
type ErrInstruction struct {
	Pc   uint32
	Word uint32
	Err  error
}

func (err *ErrInstruction) Error() string {
	return f("0x%08x: 0x%08x %v", err.Pc, err.Word, err.Err)
}

func (err *ErrInstruction) Unwrap() error {
	return err.Err
}
