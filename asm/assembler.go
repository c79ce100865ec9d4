// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"maps"
	"regexp"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/rvsim/isa"
	"github.com/ezrec/rvsim/mem"
)

// patch is a data value that named a symbol not yet defined.
type patch struct {
	line    int
	address uint32
	size    int
	name    string
}

// Assembler is a two-pass RISC-V assembler. The zero value is ready to use;
// each Parse starts from a clean state apart from the predefines.
type Assembler struct {
	Verbose bool // If set, verbosely logs the assembler actions.

	Lines     []SourceLine       // Pass 1 output.
	Symbols   map[string]*Symbol // Labels, by name.
	Constants map[string]int32   // Constants from .equ, .eqv and predefines.

	predefine map[string]string
	section   Section
	cursor    [2]uint32
	image     mem.Image
	patches   []patch
}

// Predefine defines a constant for every following Parse.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

func (asm *Assembler) reset() (err error) {
	asm.Lines = nil
	asm.Symbols = map[string]*Symbol{}
	asm.Constants = map[string]int32{}
	asm.section = SECTION_TEXT
	asm.cursor[SECTION_TEXT] = mem.TEXT_BASE
	asm.cursor[SECTION_DATA] = mem.DATA_BASE
	asm.image = mem.Image{}
	asm.patches = nil

	for name, text := range asm.predefine {
		value, perr := parseNumber(text)
		if perr != nil {
			err = errors.Join(err, fmt.Errorf("%v=%v: %w", name, text, ErrPredefine))
			continue
		}
		asm.Constants[name] = int32(value)
	}

	return
}

// Parse assembles a source stream. Any error aborts the assembly; the
// returned error is an *ErrLine locating it.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	err = asm.reset()
	if err != nil {
		return
	}

	scanner := bufio.NewScanner(input)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := SourceLine{LineNo: lineno, Text: scanner.Text()}
		err = asm.layout(&line)
		if err != nil {
			err = &ErrLine{LineNo: lineno, Line: line.Text, Err: err}
			return
		}
		asm.Lines = append(asm.Lines, line)
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	var insts []Instruction
	for n := range asm.Lines {
		line := &asm.Lines[n]
		var encoded []Instruction
		encoded, err = asm.encode(line)
		if err != nil {
			err = &ErrLine{LineNo: line.LineNo, Line: line.Text, Err: err}
			return
		}
		insts = append(insts, encoded...)
	}

	err = asm.applyPatches()
	if err != nil {
		return
	}

	prog = &Program{
		Image:        asm.image,
		Start:        asm.start(insts),
		Instructions: insts,
		Lines:        asm.Lines,
		Symbols:      map[string]Symbol{},
		Constants:    maps.Clone(asm.Constants),
	}
	for name, sym := range asm.Symbols {
		prog.Symbols[name] = *sym
	}

	return
}

// start prefers `_start`, then `main`, then the first instruction.
func (asm *Assembler) start(insts []Instruction) uint32 {
	for _, name := range []string{"_start", "main"} {
		sym, ok := asm.Symbols[name]
		if ok && sym.Resolved && sym.Kind == SYMBOL_INSTRUCTION {
			return sym.Address
		}
	}
	if len(insts) > 0 {
		return insts[0].Address
	}
	return mem.TEXT_BASE
}

// layout performs Pass 1 on one line.
func (asm *Assembler) layout(line *SourceLine) (err error) {
	text := strings.TrimSpace(stripComment(line.Text))

	for {
		label, rest, ok := cutLabel(text)
		if !ok {
			break
		}
		err = asm.defineLabel(label)
		if err != nil {
			return
		}
		line.Labels = append(line.Labels, label)
		text = rest
	}

	line.Section = asm.section
	line.Address = asm.cursor[asm.section]

	if len(text) == 0 {
		if len(line.Labels) > 0 {
			line.Kind = LINE_LABEL
		}
		return
	}

	text, err = asm.substitute(text)
	if err != nil {
		return
	}

	line.Mnemonic, line.Operands = splitMnemonic(text)

	defer func() {
		if asm.Verbose && err == nil {
			logrus.WithFields(logrus.Fields{
				"line":    line.LineNo,
				"kind":    line.Kind.String(),
				"address": fmt.Sprintf("%#08x", line.Address),
				"size":    line.Size,
			}).Debug("asm: " + line.Mnemonic)
		}
	}()

	if strings.HasPrefix(line.Mnemonic, ".") {
		line.Kind = LINE_DIRECTIVE
		dir, ok := ParseDirective(line.Mnemonic)
		if !ok {
			err = ErrDirective(line.Mnemonic)
			return
		}
		line.Directive = dir
		err = asm.directive(line)
		return
	}

	if asm.section != SECTION_TEXT {
		err = &ErrSection{What: line.Mnemonic, Section: asm.section}
		return
	}

	if pseudo, ok := ParsePseudo(line.Mnemonic, len(line.Operands)); ok {
		if len(line.Operands) != pseudoOperands[pseudo] {
			err = ErrOperandCount
			return
		}
		line.Kind = LINE_PSEUDO
		line.Pseudo = pseudo
		line.Size = asm.pseudoSize(pseudo, line.Operands)
	} else if _, ok := isa.ParseOp(line.Mnemonic); ok {
		line.Kind = LINE_INSTRUCTION
		line.Size = 4
	} else {
		err = ErrMnemonic(line.Mnemonic)
		return
	}

	asm.cursor[asm.section] += line.Size

	return
}

// defineLabel binds name to the current cursor.
func (asm *Assembler) defineLabel(name string) (err error) {
	if _, ok := asm.Constants[name]; ok {
		err = ErrSymbolDuplicate(name)
		return
	}

	sym, ok := asm.Symbols[name]
	if ok && sym.Resolved {
		err = ErrSymbolDuplicate(name)
		return
	}
	if !ok {
		sym = &Symbol{Name: name}
		asm.Symbols[name] = sym
	}

	sym.Address = asm.cursor[asm.section]
	sym.Resolved = true
	sym.Kind = SYMBOL_DATA
	if asm.section == SECTION_TEXT {
		sym.Kind = SYMBOL_INSTRUCTION
	}

	return
}

// declare returns the symbol of name, creating it unresolved.
func (asm *Assembler) declare(name string) (sym *Symbol, err error) {
	if !isIdent(name) {
		err = fmt.Errorf("%v: %w", name, ErrLabelInvalid)
		return
	}
	sym, ok := asm.Symbols[name]
	if !ok {
		sym = &Symbol{Name: name}
		asm.Symbols[name] = sym
	}
	return
}

// known returns the value of a literal, constant or resolved label.
func (asm *Assembler) known(word string) (value int64, ok bool) {
	if v, err := parseNumber(word); err == nil {
		return v, true
	}
	if c, found := asm.Constants[word]; found {
		return int64(c), true
	}
	if sym, found := asm.Symbols[word]; found && sym.Resolved {
		return int64(sym.Address), true
	}
	return
}

// resolve is known, failing for undefined symbols and malformed numbers.
func (asm *Assembler) resolve(word string) (value int64, err error) {
	value, ok := asm.known(word)
	if ok {
		return
	}
	if isIdent(word) {
		err = ErrSymbolMissing(word)
	} else {
		err = ErrNumber(word)
	}
	return
}

// target returns a branch or jump offset. Labels are relative to pc;
// numbers and constants are taken as the offset itself.
func (asm *Assembler) target(word string, pc uint32) (offset int32, err error) {
	if sym, ok := asm.Symbols[word]; ok && sym.Resolved {
		offset = int32(sym.Address - pc)
		return
	}

	value, err := asm.resolve(word)
	if err != nil {
		return
	}
	if value < -(1<<31) || value >= 1<<31 {
		err = &ErrValueRange{Value: value, Min: -(1 << 31), Max: 1<<31 - 1}
		return
	}
	offset = int32(value)
	return
}

var reExpr = regexp.MustCompile(`\$\((?:[^()]|\([^()]*\))*\)`)

// substitute replaces every $(...) with its decimal value.
func (asm *Assembler) substitute(text string) (out string, err error) {
	out = reExpr.ReplaceAllStringFunc(text, func(match string) string {
		value, eerr := asm.eval(match[2 : len(match)-1])
		if eerr != nil {
			if err == nil {
				err = eerr
			}
			return match
		}
		return strconv.FormatInt(value, 10)
	})
	return
}

// eval evaluates a starlark expression over the constants and the labels
// defined so far.
func (asm *Assembler) eval(expr string) (value int64, err error) {
	predeclared := starlark.StringDict{}
	for name, c := range asm.Constants {
		predeclared[name] = starlark.MakeInt64(int64(c))
	}
	for name, sym := range asm.Symbols {
		if sym.Resolved {
			predeclared[name] = starlark.MakeUint64(uint64(sym.Address))
		}
	}

	thread := &starlark.Thread{Name: "asm"}
	opts := syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(&opts, thread, "expr", "rc = "+expr+"\n", predeclared)
	if err != nil {
		err = errors.Join(ErrExpression(expr), err)
		return
	}

	rc, ok := globals["rc"].(starlark.Int)
	if !ok {
		err = ErrExpression(expr)
		return
	}
	value, ok = rc.Int64()
	if !ok {
		err = ErrExpression(expr)
		return
	}
	return
}

// encode performs Pass 2 on one line.
func (asm *Assembler) encode(line *SourceLine) (out []Instruction, err error) {
	var insts []isa.Instruction

	switch line.Kind {
	case LINE_PSEUDO:
		insts, err = asm.expand(line)
	case LINE_INSTRUCTION:
		var inst isa.Instruction
		inst, err = asm.instruction(line)
		insts = []isa.Instruction{inst}
	default:
		return
	}
	if err != nil {
		return
	}

	for n, inst := range insts {
		address := line.Address + uint32(4*n)

		var word uint32
		word, err = isa.Encode(inst)
		if err != nil {
			out = nil
			return
		}

		decoded, derr := isa.Decode(word)
		if derr != nil {
			out = nil
			err = derr
			return
		}

		asm.image.Store32(address, word)
		out = append(out, Instruction{
			Address: address,
			Word:    word,
			Hex:     fmt.Sprintf("0x%08x", word),
			LineNo:  line.LineNo,
			Inst:    decoded,
		})

		if asm.Verbose {
			logrus.WithFields(logrus.Fields{
				"line":    line.LineNo,
				"address": fmt.Sprintf("%#08x", address),
				"word":    fmt.Sprintf("%#08x", word),
			}).Debug("asm: " + decoded.String())
		}
	}

	return
}

// applyPatches stores the data values that named later labels.
func (asm *Assembler) applyPatches() (err error) {
	for _, p := range asm.patches {
		var value int64
		value, err = asm.resolve(p.name)
		if err == nil {
			err = checkData(value, p.size)
		}
		if err != nil {
			text := ""
			for _, line := range asm.Lines {
				if line.LineNo == p.line {
					text = line.Text
					break
				}
			}
			err = &ErrLine{LineNo: p.line, Line: text, Err: err}
			return
		}
		asm.image.Store(p.address, p.size, uint32(value))
	}
	return
}
