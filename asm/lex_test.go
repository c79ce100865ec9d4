package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripComment(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("addi x1, x0, 1 ", stripComment("addi x1, x0, 1 # one"))
	assert.Equal(`.ascii "a#b" `, stripComment(`.ascii "a#b" # tail`))
	assert.Equal(`li a0, '#' `, stripComment(`li a0, '#' # hash`))
	assert.Equal(`.ascii "q\"#" `, stripComment(`.ascii "q\"#" #`))
	assert.Equal("", stripComment("# all"))
}

func TestCutLabel(t *testing.T) {
	assert := assert.New(t)

	label, rest, ok := cutLabel("loop: addi x1, x1, 1")
	assert.True(ok)
	assert.Equal("loop", label)
	assert.Equal("addi x1, x1, 1", rest)

	label, rest, ok = cutLabel(".L1 :")
	assert.True(ok)
	assert.Equal(".L1", label)
	assert.Equal("", rest)

	_, _, ok = cutLabel(`.ascii "a: b"`)
	assert.False(ok)
}

func TestSplitOperands(t *testing.T) {
	assert := assert.New(t)

	mnemonic, operands := splitMnemonic("  lw x1,  4(x2)")
	assert.Equal("lw", mnemonic)
	assert.Equal([]string{"x1", "4(x2)"}, operands)

	_, operands = splitMnemonic(`.ascii "a, b", "c"`)
	assert.Equal([]string{`"a, b"`, `"c"`}, operands)

	_, operands = splitMnemonic(`li a0, ' '`)
	assert.Equal([]string{"a0", "' '"}, operands)

	mnemonic, operands = splitMnemonic("ret")
	assert.Equal("ret", mnemonic)
	assert.Empty(operands)
}

func TestParseNumber(t *testing.T) {
	assert := assert.New(t)

	table := [...]struct {
		word  string
		value int64
		ok    bool
	}{
		{"0", 0, true},
		{"-12", -12, true},
		{"0x1F", 31, true},
		{"0b101", 5, true},
		{"0o17", 15, true},
		{"'a'", 'a', true},
		{`'\n'`, '\n', true},
		{`'\x41'`, 'A', true},
		{"'ab'", 0, false},
		{"label", 0, false},
		{"", 0, false},
	}

	for _, entry := range table {
		value, err := parseNumber(entry.word)
		if entry.ok {
			assert.NoError(err, entry.word)
			assert.Equal(entry.value, value, entry.word)
		} else {
			assert.Equal(ErrNumber(entry.word), err, entry.word)
		}
	}
}

func TestParseString(t *testing.T) {
	assert := assert.New(t)

	data, err := parseString(`"a\tb\0\\\"\'"`)
	assert.NoError(err)
	assert.Equal([]byte{'a', '\t', 'b', 0, '\\', '"', '\''}, data)

	data, err = parseString(`""`)
	assert.NoError(err)
	assert.Equal([]byte{}, data)

	_, err = parseString(`"\q"`)
	assert.ErrorIs(err, ErrStringInvalid)

	_, err = parseString(`"\x4"`)
	assert.ErrorIs(err, ErrStringInvalid)

	_, err = parseString(`abc`)
	assert.ErrorIs(err, ErrStringInvalid)
}
