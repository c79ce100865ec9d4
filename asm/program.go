package asm

import (
	"fmt"
	"strings"

	"github.com/ezrec/rvsim/isa"
	"github.com/ezrec/rvsim/mem"
)

// Instruction is one encoded instruction of a program.
type Instruction struct {
	Address uint32
	Word    uint32
	Hex     string
	LineNo  int
	Inst    isa.Instruction
}

// Program is the output of a successful assembly.
type Program struct {
	Image        mem.Image
	Start        uint32
	Instructions []Instruction
	Lines        []SourceLine
	Symbols      map[string]Symbol
	Constants    map[string]int32
}

// Debug relates an address to the instruction and source line there.
type Debug struct {
	*Instruction
	Line *SourceLine
}

// Debug returns the instruction at pc. The result is empty when pc holds
// no assembled instruction.
func (prog *Program) Debug(pc uint32) (dbg Debug) {
	for n := range prog.Instructions {
		inst := &prog.Instructions[n]
		if inst.Address != pc {
			continue
		}
		dbg.Instruction = inst
		for m := range prog.Lines {
			if prog.Lines[m].LineNo == inst.LineNo {
				dbg.Line = &prog.Lines[m]
				break
			}
		}
		break
	}

	return
}

// LineNo returns the source line of the instruction at pc, or 0.
func (prog *Program) LineNo(pc uint32) int {
	dbg := prog.Debug(pc)
	if dbg.Instruction == nil {
		return 0
	}
	return dbg.LineNo
}

// Listing renders the program as `address word disassembly ; source`.
func (prog *Program) Listing() string {
	var sb strings.Builder

	for _, inst := range prog.Instructions {
		source := ""
		if dbg := prog.Debug(inst.Address); dbg.Line != nil {
			source = strings.TrimSpace(dbg.Line.Text)
		}
		fmt.Fprintf(&sb, "%08x: %v  %-24v ; %d: %v\n",
			inst.Address, inst.Hex, inst.Inst.String(), inst.LineNo, source)
	}

	return sb.String()
}
