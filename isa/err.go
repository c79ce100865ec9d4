package isa

import (
	"errors"

	"github.com/ezrec/rvsim/translate"
)

var f = translate.From

var (
	ErrImmediateAlign = errors.New(f("offset must be even"))
	ErrFormatInvalid  = errors.New(f("format invalid"))
)

// ErrRegisterInvalid names an operand that is not a register.
type ErrRegisterInvalid string

func (err ErrRegisterInvalid) Error() string {
	return f("'%v' is not a valid register", string(err))
}

// ErrImmediateRange reports an immediate outside of the signed (or, for U,
// unsigned) field width of its format.
type ErrImmediateRange struct {
	Format Format
	Value  int64
	Min    int64
	Max    int64
}

func (err *ErrImmediateRange) Error() string {
	return f("immediate %v out of range [%v, %v] for %v-type", err.Value, err.Min, err.Max, err.Format)
}

// ErrDecode reports a word that matches no row of the table.
type ErrDecode uint32

func (err ErrDecode) Error() string {
	return f("cannot decode instruction 0x%08x", uint32(err))
}
