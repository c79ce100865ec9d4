package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCrlfWriter(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	cw := crlfWriter{w: &buf}

	n, err := cw.Write([]byte("a\nb\n"))
	assert.NoError(err)
	assert.Equal(4, n)
	assert.Equal("a\r\nb\r\n", buf.String())
}
