package device

import (
	"sync"
)

// Register offsets of the keyboard.
const (
	KEYBOARD_CTRL  = 0x0 // Bit 0 set while a key is buffered.
	KEYBOARD_DATA  = 0x4 // Next buffered key; reading consumes it.
	KEYBOARD_SIZE  = 0x8
	KEYBOARD_READY = 1 << 0
)

// Keyboard buffers key presses from the host. Push may be called from
// another goroutine while the simulator runs.
type Keyboard struct {
	Base uint32

	mutex  sync.Mutex
	buffer []byte
}

// NewKeyboard creates a keyboard at base.
func NewKeyboard(base uint32) *Keyboard {
	return &Keyboard{Base: base}
}

// Push buffers a key press.
func (kb *Keyboard) Push(key byte) {
	kb.mutex.Lock()
	defer kb.mutex.Unlock()

	kb.buffer = append(kb.buffer, key)
}

func (kb *Keyboard) Owns(address uint32) bool {
	return address >= kb.Base && address < kb.Base+KEYBOARD_SIZE
}

func (kb *Keyboard) ReadRegister(address uint32) (value uint32) {
	kb.mutex.Lock()
	defer kb.mutex.Unlock()

	switch address - kb.Base {
	case KEYBOARD_CTRL:
		if len(kb.buffer) > 0 {
			value = KEYBOARD_READY
		}
	case KEYBOARD_DATA:
		if len(kb.buffer) > 0 {
			value = uint32(kb.buffer[0])
			kb.buffer = kb.buffer[1:]
		}
	}
	return
}

// WriteRegister is ignored; the keyboard registers are read only.
func (kb *Keyboard) WriteRegister(address uint32, value uint32) {
}

func (kb *Keyboard) Tick() {
}

func (kb *Keyboard) Reset() {
	kb.mutex.Lock()
	defer kb.mutex.Unlock()

	kb.buffer = nil
}
