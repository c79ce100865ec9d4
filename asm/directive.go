package asm

// dataRange is the accepted value range of a data directive of size bytes.
func dataRange(size int) (min, max int64) {
	switch size {
	case 1:
		return -128, 255
	case 2:
		return -32768, 65535
	}
	return -(1 << 31), 1<<32 - 1
}

func checkData(value int64, size int) (err error) {
	min, max := dataRange(size)
	if value < min || value > max {
		err = &ErrValueRange{Value: value, Min: min, Max: max}
	}
	return
}

// requireData fails unless the data section is active.
func (asm *Assembler) requireData(line *SourceLine) (err error) {
	if asm.section != SECTION_DATA {
		err = &ErrSection{What: line.Directive.String(), Section: asm.section}
	}
	return
}

// emit stores bytes at the cursor of the active section.
func (asm *Assembler) emit(data ...byte) {
	for _, b := range data {
		asm.image[asm.cursor[asm.section]] = b
		asm.cursor[asm.section]++
	}
}

// value stores one .word/.half/.byte operand. Names that are not yet
// defined are patched once assembly completes.
func (asm *Assembler) value(line *SourceLine, word string, size int) (err error) {
	value, ok := asm.known(word)
	if !ok {
		if !isIdent(word) {
			err = ErrNumber(word)
			return
		}
		asm.patches = append(asm.patches, patch{
			line:    line.LineNo,
			address: asm.cursor[asm.section],
			size:    size,
			name:    word,
		})
		asm.emit(make([]byte, size)...)
		return
	}

	err = checkData(value, size)
	if err != nil {
		return
	}

	for n := range size {
		asm.emit(byte(value >> (8 * n)))
	}
	return
}

// address resolves an operand that must be a 32-bit address.
func (asm *Assembler) address(word string) (address uint32, err error) {
	value, err := asm.resolve(word)
	if err != nil {
		return
	}
	if value < 0 || value > 0xFFFFFFFF {
		err = &ErrValueRange{Value: value, Min: 0, Max: 0xFFFFFFFF}
		return
	}
	address = uint32(value)
	return
}

// switchSection activates section, optionally moving its cursor.
func (asm *Assembler) switchSection(line *SourceLine, section Section, operands []string) (err error) {
	if len(operands) > 1 {
		err = ErrOperandCount
		return
	}

	if len(operands) == 1 {
		var address uint32
		address, err = asm.address(operands[0])
		if err != nil {
			return
		}
		asm.cursor[section] = address
	}

	asm.section = section
	line.Section = section
	line.Address = asm.cursor[section]
	return
}

// directive applies one directive during Pass 1.
func (asm *Assembler) directive(line *SourceLine) (err error) {
	ops := line.Operands
	start := asm.cursor[asm.section]

	switch line.Directive {
	case DIRECTIVE_TEXT:
		err = asm.switchSection(line, SECTION_TEXT, ops)
		return
	case DIRECTIVE_DATA:
		err = asm.switchSection(line, SECTION_DATA, ops)
		return
	case DIRECTIVE_SECTION:
		if len(ops) < 1 {
			err = ErrOperandCount
			return
		}
		section, ok := sectionNames[ops[0]]
		if !ok {
			err = ErrSectionUnknown(ops[0])
			return
		}
		err = asm.switchSection(line, section, nil)
		return
	case DIRECTIVE_WORD, DIRECTIVE_HALF, DIRECTIVE_BYTE:
		if err = asm.requireData(line); err != nil {
			return
		}
		if len(ops) < 1 {
			err = ErrOperandCount
			return
		}
		size := 4
		switch line.Directive {
		case DIRECTIVE_HALF:
			size = 2
		case DIRECTIVE_BYTE:
			size = 1
		}
		for _, op := range ops {
			err = asm.value(line, op, size)
			if err != nil {
				return
			}
		}
	case DIRECTIVE_ASCII, DIRECTIVE_ASCIIZ, DIRECTIVE_STRING:
		if err = asm.requireData(line); err != nil {
			return
		}
		if len(ops) < 1 {
			err = ErrOperandCount
			return
		}
		for _, op := range ops {
			var data []byte
			data, err = parseString(op)
			if err != nil {
				return
			}
			asm.emit(data...)
			if line.Directive != DIRECTIVE_ASCII {
				asm.emit(0)
			}
		}
	case DIRECTIVE_SPACE:
		if err = asm.requireData(line); err != nil {
			return
		}
		if len(ops) != 1 {
			err = ErrOperandCount
			return
		}
		var count int64
		count, err = asm.resolve(ops[0])
		if err != nil {
			return
		}
		if count < 0 || count > 1<<24 {
			err = &ErrValueRange{Value: count, Min: 0, Max: 1 << 24}
			return
		}
		asm.emit(make([]byte, count)...)
	case DIRECTIVE_ALIGN:
		if len(ops) != 1 {
			err = ErrOperandCount
			return
		}
		var exp int64
		exp, err = asm.resolve(ops[0])
		if err != nil {
			return
		}
		if exp < 0 || exp > 16 {
			err = ErrAlignmentRange
			return
		}
		align := uint32(1) << exp
		pad := (align - asm.cursor[asm.section]%align) % align
		if asm.section == SECTION_DATA {
			asm.emit(make([]byte, pad)...)
		} else {
			asm.cursor[asm.section] += pad
		}
	case DIRECTIVE_GLOBAL, DIRECTIVE_GLOBL:
		if len(ops) < 1 {
			err = ErrOperandCount
			return
		}
		for _, name := range ops {
			var sym *Symbol
			sym, err = asm.declare(name)
			if err != nil {
				return
			}
			sym.Global = true
		}
	case DIRECTIVE_EXTERN:
		if len(ops) < 1 || len(ops) > 2 {
			err = ErrOperandCount
			return
		}
		var sym *Symbol
		sym, err = asm.declare(ops[0])
		if err != nil {
			return
		}
		sym.External = true
	case DIRECTIVE_EQU, DIRECTIVE_EQV:
		if len(ops) != 2 {
			err = ErrOperandCount
			return
		}
		name := ops[0]
		if !isIdent(name) {
			err = ErrLabelInvalid
			return
		}
		if _, ok := asm.Constants[name]; ok {
			err = ErrSymbolDuplicate(name)
			return
		}
		if _, ok := asm.Symbols[name]; ok {
			err = ErrSymbolDuplicate(name)
			return
		}
		var value int64
		value, err = asm.resolve(ops[1])
		if err != nil {
			return
		}
		if err = checkData(value, 4); err != nil {
			return
		}
		asm.Constants[name] = int32(value)
	case DIRECTIVE_ORG:
		if len(ops) != 1 {
			err = ErrOperandCount
			return
		}
		var address uint32
		address, err = asm.address(ops[0])
		if err != nil {
			return
		}
		asm.cursor[asm.section] = address
		line.Address = address
		return
	default:
		err = ErrDirective(line.Mnemonic)
		return
	}

	line.Size = asm.cursor[asm.section] - start
	return
}

