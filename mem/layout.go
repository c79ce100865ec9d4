package mem

import (
	"fmt"
	"iter"
	"maps"

	"github.com/ezrec/rvsim/device"
)

const (
	TEXT_BASE     = 0x00400000 // Default start of the code section.
	DATA_BASE     = 0x10010000 // Default start of the data section.
	UART_BASE     = 0x10000000 // UART registers.
	KEYBOARD_BASE = 0xFFFF0000 // Keyboard registers.
	DMA_CONTROL   = 0xFFFF8000 // DMA control word.
)

var _layout_defines = map[string]string{
	"TEXT_BASE":     fmt.Sprintf("%#x", TEXT_BASE),
	"DATA_BASE":     fmt.Sprintf("%#x", DATA_BASE),
	"UART_BASE":     fmt.Sprintf("%#x", UART_BASE),
	"UART_TX":       fmt.Sprintf("%#x", UART_BASE+device.UART_TX),
	"UART_RX":       fmt.Sprintf("%#x", UART_BASE+device.UART_RX),
	"UART_STATUS":   fmt.Sprintf("%#x", UART_BASE+device.UART_STATUS),
	"UART_CTRL":     fmt.Sprintf("%#x", UART_BASE+device.UART_CTRL),
	"KEYBOARD_BASE": fmt.Sprintf("%#x", KEYBOARD_BASE),
	"KEYBOARD_CTRL": fmt.Sprintf("%#x", KEYBOARD_BASE+device.KEYBOARD_CTRL),
	"KEYBOARD_DATA": fmt.Sprintf("%#x", KEYBOARD_BASE+device.KEYBOARD_DATA),
	"DMA_CONTROL":   fmt.Sprintf("%#x", DMA_CONTROL),
}

// Defines returns the address layout as assembler equates.
func Defines() iter.Seq2[string, string] {
	return maps.All(_layout_defines)
}
