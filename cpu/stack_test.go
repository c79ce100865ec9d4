package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCallStack_Push(t *testing.T) {
	assert := assert.New(t)

	s := &CallStack{}
	assert.True(s.Empty())
	assert.False(s.Full())

	s.Push(Frame{Caller: 0x400000, Target: 0x400100})
	assert.False(s.Empty())
	assert.Equal(1, len(s.Data))
	assert.Equal(Frame{Caller: 0x400000, Target: 0x400100}, s.Data[0])
}

func TestCallStack_Pop(t *testing.T) {
	assert := assert.New(t)

	s := &CallStack{}
	s.Push(Frame{Caller: 1})
	s.Push(Frame{Caller: 2})

	frame, ok := s.Pop()
	assert.True(ok)
	assert.Equal(uint32(2), frame.Caller)

	frame, ok = s.Pop()
	assert.True(ok)
	assert.Equal(uint32(1), frame.Caller)

	frame, ok = s.Pop()
	assert.False(ok)
	assert.Equal(Frame{}, frame)
}

func TestCallStack_Peek(t *testing.T) {
	assert := assert.New(t)

	s := &CallStack{}
	_, ok := s.Peek()
	assert.False(ok)

	s.Push(Frame{Caller: 7})
	frame, ok := s.Peek()
	assert.True(ok)
	assert.Equal(uint32(7), frame.Caller)
	assert.Equal(1, len(s.Data))
}

func TestCallStack_Overflow(t *testing.T) {
	assert := assert.New(t)

	s := &CallStack{}
	for i := 0; i < STACK_LIMIT; i++ {
		assert.False(s.Full())
		s.Push(Frame{Caller: uint32(i)})
	}
	assert.True(s.Full())

	s.Push(Frame{Caller: 1000})
	assert.Equal(STACK_LIMIT, len(s.Data))
	assert.Equal(uint32(1), s.Data[0].Caller)

	frame, _ := s.Peek()
	assert.Equal(uint32(1000), frame.Caller)

	s.Reset()
	assert.True(s.Empty())
}
