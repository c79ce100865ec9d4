package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("line 3 'nop' bad", From("line %d '%v' %v", 3, "nop", "bad"))
	assert.Equal("0x00400000", From("0x%08x", uint32(0x400000)))
	assert.NotPanics(func() { _ = Language().String() })
}
