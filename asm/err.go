package asm

import (
	"errors"

	"github.com/ezrec/rvsim/isa"
	"github.com/ezrec/rvsim/translate"
)

var f = translate.From

var (
	// Syntax errors
	ErrOperandCount   = errors.New(f("wrong number of operands"))
	ErrLabelInvalid   = errors.New(f("label invalid"))
	ErrStringInvalid  = errors.New(f("string literal invalid"))
	ErrMemoryOperand  = errors.New(f("expected offset(register)"))
	ErrPredefine      = errors.New(f("predefine is not a number"))
	ErrSizeMismatch   = errors.New(f("pseudo-instruction size changed between passes"))
	ErrAlignmentRange = errors.New(f(".align exponent out of range"))
)

// ErrMnemonic reports an unknown instruction mnemonic.
type ErrMnemonic string

func (err ErrMnemonic) Error() string {
	return f("unknown instruction '%v'", string(err))
}

// ErrDirective reports an unknown directive.
type ErrDirective string

func (err ErrDirective) Error() string {
	return f("unknown directive '%v'", string(err))
}

// ErrNumber reports an operand that is not a number.
type ErrNumber string

func (err ErrNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrExpression reports a $(...) expression that does not evaluate to an
// integer.
type ErrExpression string

func (err ErrExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

// ErrRoundingMode reports an unknown rounding mode operand.
type ErrRoundingMode string

func (err ErrRoundingMode) Error() string {
	return f("'%v' is not a rounding mode", string(err))
}

// ErrSymbolMissing reports a reference to an undefined symbol.
type ErrSymbolMissing string

func (err ErrSymbolMissing) Error() string {
	return f("symbol %v undefined", string(err))
}

// ErrSymbolDuplicate reports a second definition of a label or constant.
type ErrSymbolDuplicate string

func (err ErrSymbolDuplicate) Error() string {
	return f("symbol %v duplicated", string(err))
}

// ErrSectionUnknown reports a `.section` operand that names no section.
type ErrSectionUnknown string

func (err ErrSectionUnknown) Error() string {
	return f("section %v unknown", string(err))
}

// ErrSection reports a directive or instruction used in the wrong section.
type ErrSection struct {
	What    string
	Section Section
}

func (err *ErrSection) Error() string {
	return f("%v not allowed in %v section", err.What, err.Section)
}

// ErrValueRange reports a data value that does not fit its directive.
type ErrValueRange struct {
	Value int64
	Min   int64
	Max   int64
}

func (err *ErrValueRange) Error() string {
	return f("value %v out of range [%v, %v]", err.Value, err.Min, err.Max)
}

// ErrLine locates an assembly error in the source.
type ErrLine struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrLine) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrLine) Unwrap() error {
	return err.Err
}

// ClassOf returns the category of an assembly error.
func ClassOf(err error) Class {
	var (
		mnemonic   ErrMnemonic
		directive  ErrDirective
		number     ErrNumber
		expression ErrExpression
		rounding   ErrRoundingMode
		missing    ErrSymbolMissing
		duplicate  ErrSymbolDuplicate
		unknown    ErrSectionUnknown
		section    *ErrSection
		value      *ErrValueRange
		immediate  *isa.ErrImmediateRange
		register   isa.ErrRegisterInvalid
	)

	switch {
	case err == nil:
		return CLASS_NONE
	case errors.As(err, &missing), errors.As(err, &duplicate):
		return CLASS_SYMBOL
	case errors.As(err, &section), errors.As(err, &unknown):
		return CLASS_SECTION
	case errors.As(err, &immediate), errors.As(err, &register), errors.As(err, &value),
		errors.Is(err, isa.ErrImmediateAlign), errors.Is(err, ErrAlignmentRange):
		return CLASS_ENCODING
	case errors.As(err, &mnemonic), errors.As(err, &directive), errors.As(err, &number),
		errors.As(err, &expression), errors.As(err, &rounding):
		return CLASS_SYNTAX
	}

	return CLASS_SYNTAX
}
