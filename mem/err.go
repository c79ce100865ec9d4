package mem

import (
	"errors"

	"github.com/ezrec/rvsim/translate"
)

var f = translate.From

var (
	ErrBusBusy       = errors.New(f("bus busy"))
	ErrFetchAlign    = errors.New(f("instruction fetch misaligned"))
	ErrAccessInvalid = errors.New(f("access kind invalid"))
)

// ErrUninitialized reports a read of a never-written address.
type ErrUninitialized uint32

func (err ErrUninitialized) Error() string {
	return f("read of uninitialized memory at 0x%08x", uint32(err))
}
