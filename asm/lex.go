package asm

import (
	"regexp"
	"strconv"
	"strings"
)

// stripComment removes a `#` comment that is not inside a quoted string or
// character literal.
func stripComment(line string) string {
	var quote byte
	for n := 0; n < len(line); n++ {
		c := line[n]
		switch {
		case quote != 0 && c == '\\':
			n++
		case quote != 0 && c == quote:
			quote = 0
		case quote != 0:
		case c == '"' || c == '\'':
			quote = c
		case c == '#':
			return line[:n]
		}
	}
	return line
}

var reLabel = regexp.MustCompile(`^([A-Za-z_.$][A-Za-z0-9_.$]*)\s*:`)

// cutLabel splits a leading `name:` off of a line.
func cutLabel(line string) (label string, rest string, ok bool) {
	match := reLabel.FindStringSubmatchIndex(line)
	if match == nil {
		return "", line, false
	}
	return line[match[2]:match[3]], strings.TrimSpace(line[match[1]:]), true
}

var reIdent = regexp.MustCompile(`^[A-Za-z_.$][A-Za-z0-9_.$]*$`)

// isIdent reports whether word could name a symbol.
func isIdent(word string) bool {
	return reIdent.MatchString(word)
}

// splitOperands splits on commas and whitespace that are outside of
// quotes and parentheses.
func splitOperands(text string) (operands []string) {
	var quote byte
	depth := 0
	start := -1

	flush := func(end int) {
		if start >= 0 {
			operands = append(operands, text[start:end])
			start = -1
		}
	}

	for n := 0; n < len(text); n++ {
		c := text[n]
		switch {
		case quote != 0 && c == '\\':
			n++
			continue
		case quote != 0 && c == quote:
			quote = 0
		case quote != 0:
		case c == '"' || c == '\'':
			quote = c
		case c == '(':
			depth++
		case c == ')':
			if depth > 0 {
				depth--
			}
		case depth == 0 && (c == ',' || c == ' ' || c == '\t'):
			flush(n)
			continue
		}
		if start < 0 {
			start = n
		}
	}
	flush(len(text))

	return
}

// splitMnemonic separates the first word of a line from its operands.
func splitMnemonic(line string) (mnemonic string, operands []string) {
	line = strings.TrimSpace(line)
	end := strings.IndexAny(line, " \t")
	if end < 0 {
		return line, nil
	}
	return line[:end], splitOperands(line[end+1:])
}

// unescape decodes the escape sequences of a string or character literal
// body.
func unescape(body string) (data []byte, err error) {
	for n := 0; n < len(body); n++ {
		c := body[n]
		if c != '\\' {
			data = append(data, c)
			continue
		}
		n++
		if n >= len(body) {
			err = ErrStringInvalid
			return
		}
		switch body[n] {
		case 'n':
			data = append(data, '\n')
		case 't':
			data = append(data, '\t')
		case 'r':
			data = append(data, '\r')
		case '0':
			data = append(data, 0)
		case '\\', '"', '\'':
			data = append(data, body[n])
		case 'x':
			if n+3 > len(body) {
				err = ErrStringInvalid
				return
			}
			var v uint64
			v, err = strconv.ParseUint(body[n+1:n+3], 16, 8)
			if err != nil {
				err = ErrStringInvalid
				return
			}
			data = append(data, byte(v))
			n += 2
		default:
			err = ErrStringInvalid
			return
		}
	}
	return
}

// parseString decodes a double quoted string literal.
func parseString(word string) (data []byte, err error) {
	if len(word) < 2 || word[0] != '"' || word[len(word)-1] != '"' {
		err = ErrStringInvalid
		return
	}
	data, err = unescape(word[1 : len(word)-1])
	if data == nil && err == nil {
		data = []byte{}
	}
	return
}

// parseNumber parses an integer literal (decimal, 0x, 0o, 0b, optionally
// signed) or a character literal.
func parseNumber(word string) (value int64, err error) {
	if len(word) >= 3 && word[0] == '\'' && word[len(word)-1] == '\'' {
		var data []byte
		data, err = unescape(word[1 : len(word)-1])
		if err != nil || len(data) != 1 {
			err = ErrNumber(word)
			return
		}
		value = int64(data[0])
		return
	}

	value, err = strconv.ParseInt(word, 0, 64)
	if err != nil {
		err = ErrNumber(word)
		return
	}
	return
}
