package asm

import (
	"strings"
)

// Directive is an assembler directive.
type Directive int

//go:generate go tool stringer -linecomment -type=Directive
const (
	DIRECTIVE_INVALID = Directive(0)  // invalid
	DIRECTIVE_TEXT    = Directive(1)  // .text
	DIRECTIVE_DATA    = Directive(2)  // .data
	DIRECTIVE_SECTION = Directive(3)  // .section
	DIRECTIVE_WORD    = Directive(4)  // .word
	DIRECTIVE_HALF    = Directive(5)  // .half
	DIRECTIVE_BYTE    = Directive(6)  // .byte
	DIRECTIVE_ASCII   = Directive(7)  // .ascii
	DIRECTIVE_ASCIIZ  = Directive(8)  // .asciiz
	DIRECTIVE_STRING  = Directive(9)  // .string
	DIRECTIVE_SPACE   = Directive(10) // .space
	DIRECTIVE_ALIGN   = Directive(11) // .align
	DIRECTIVE_GLOBAL  = Directive(12) // .global
	DIRECTIVE_GLOBL   = Directive(13) // .globl
	DIRECTIVE_EXTERN  = Directive(14) // .extern
	DIRECTIVE_EQU     = Directive(15) // .equ
	DIRECTIVE_EQV     = Directive(16) // .eqv
	DIRECTIVE_ORG     = Directive(17) // .org
	directive_count   = Directive(18)
)

// ParseDirective finds a directive by name, case insensitively.
func ParseDirective(name string) (dir Directive, ok bool) {
	name = strings.ToLower(name)
	for dir = DIRECTIVE_INVALID + 1; dir < directive_count; dir++ {
		if dir.String() == name {
			ok = true
			return
		}
	}
	dir = DIRECTIVE_INVALID
	return
}

// Section is an output section.
type Section int

//go:generate go tool stringer -linecomment -type=Section
const (
	SECTION_TEXT = Section(0) // .text
	SECTION_DATA = Section(1) // .data
)

// sectionNames maps `.section` operands onto sections.
var sectionNames = map[string]Section{
	".text":   SECTION_TEXT,
	".data":   SECTION_DATA,
	".rodata": SECTION_DATA,
	".bss":    SECTION_DATA,
	".sdata":  SECTION_DATA,
}

// LineKind classifies a source line.
type LineKind int

//go:generate go tool stringer -linecomment -type=LineKind
const (
	LINE_EMPTY       = LineKind(0) // empty
	LINE_LABEL       = LineKind(1) // label
	LINE_DIRECTIVE   = LineKind(2) // directive
	LINE_INSTRUCTION = LineKind(3) // instruction
	LINE_PSEUDO      = LineKind(4) // pseudo
)

// SymbolKind tells whether a symbol labels code or data.
type SymbolKind int

//go:generate go tool stringer -linecomment -type=SymbolKind
const (
	SYMBOL_NONE        = SymbolKind(0) // none
	SYMBOL_DATA        = SymbolKind(1) // data
	SYMBOL_INSTRUCTION = SymbolKind(2) // instruction
)

// Class is the category of an assembly error.
type Class int

//go:generate go tool stringer -linecomment -type=Class
const (
	CLASS_NONE     = Class(0) // none
	CLASS_SYNTAX   = Class(1) // syntax
	CLASS_SYMBOL   = Class(2) // symbol
	CLASS_ENCODING = Class(3) // encoding
	CLASS_SECTION  = Class(4) // section
)
