package cpu

const (
	STACK_LIMIT = 64 // Maximum tracked call depth
)

// Frame is one call recorded by the call stack.
type Frame struct {
	Caller uint32 // Address of the calling jal/jalr.
	Target uint32 // Address called.
}

// CallStack tracks jal/jalr calls that link through ra, and the returns
// that unwind them. It is a debugging aid; it never affects execution.
type CallStack struct {
	Data []Frame
}

// Push records a call. When the stack is full the oldest frame is dropped.
func (s *CallStack) Push(frame Frame) {
	if s.Full() {
		copy(s.Data, s.Data[1:])
		s.Data = s.Data[:len(s.Data)-1]
	}
	s.Data = append(s.Data, frame)
}

func (s *CallStack) Pop() (frame Frame, ok bool) {
	frame, ok = s.Peek()
	if ok {
		s.Data = s.Data[:len(s.Data)-1]
	}
	return
}

func (s *CallStack) Empty() bool {
	return len(s.Data) == 0
}

func (s *CallStack) Full() bool {
	return len(s.Data) == STACK_LIMIT
}

func (s *CallStack) Peek() (frame Frame, ok bool) {
	if s.Empty() {
		return
	}

	return s.Data[len(s.Data)-1], true
}

func (s *CallStack) Reset() {
	if len(s.Data) > 0 {
		s.Data = s.Data[:0]
	}
}
