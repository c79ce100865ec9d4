package isa

import (
	"fmt"
	"strconv"
	"strings"
)

// ABI names of the integer registers, by index.
var IntNames = [32]string{
	"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
	"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
	"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
}

// ABI names of the floating point registers, by index.
var FloatNames = [32]string{
	"ft0", "ft1", "ft2", "ft3", "ft4", "ft5", "ft6", "ft7",
	"fs0", "fs1", "fa0", "fa1", "fa2", "fa3", "fa4", "fa5",
	"fa6", "fa7", "fs2", "fs3", "fs4", "fs5", "fs6", "fs7",
	"fs8", "fs9", "fs10", "fs11", "ft8", "ft9", "ft10", "ft11",
}

// Commonly used integer register indexes.
const (
	X_ZERO = 0
	X_RA   = 1
	X_SP   = 2
	X_A0   = 10
	X_A1   = 11
	X_A2   = 12
	X_A7   = 17
)

// numbered parses `<prefix>N` with N in 0..31.
func numbered(name string, prefix string) (index int, ok bool) {
	digits, found := strings.CutPrefix(name, prefix)
	if !found || len(digits) == 0 {
		return
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 || n > 31 || strconv.Itoa(n) != digits {
		return
	}
	return n, true
}

// ParseRegister resolves an integer register name: `xN`, an ABI name,
// `fp`, or the legacy `$N` / `$name` aliases.
func ParseRegister(name string) (index int, err error) {
	word := strings.ToLower(strings.TrimSpace(name))
	legacy, isLegacy := strings.CutPrefix(word, "$")
	if isLegacy {
		word = legacy
		if n, ok := numbered(word, ""); ok {
			return n, nil
		}
	}

	if n, ok := numbered(word, "x"); ok {
		return n, nil
	}

	if word == "fp" {
		return 8, nil
	}

	for n, abi := range IntNames {
		if abi == word {
			return n, nil
		}
	}

	err = ErrRegisterInvalid(name)
	return
}

// ParseFloatRegister resolves a floating point register name: `fN`, an ABI
// name, or the legacy `$fN` alias.
func ParseFloatRegister(name string) (index int, err error) {
	word := strings.ToLower(strings.TrimSpace(name))
	word = strings.TrimPrefix(word, "$")

	if n, ok := numbered(word, "f"); ok {
		return n, nil
	}

	for n, abi := range FloatNames {
		if abi == word {
			return n, nil
		}
	}

	err = ErrRegisterInvalid(name)
	return
}

// RegisterName returns the canonical name of a register.
func RegisterName(class RegClass, index int) string {
	switch class {
	case REG_FLOAT:
		return fmt.Sprintf("f%d", index)
	default:
		return fmt.Sprintf("x%d", index)
	}
}
