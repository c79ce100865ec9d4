package device

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Register offsets of the UART.
const (
	UART_TX     = 0x0 // Transmit data, write only.
	UART_RX     = 0x4 // Receive data, read only.
	UART_STATUS = 0x8 // Status, read only.
	UART_CTRL   = 0xC // Control, read/write.
	UART_SIZE   = 0x10
)

// Bits of UART_STATUS. The interrupt enable bits mirror UART_CTRL.
const (
	UART_STATUS_TX_READY  = 1 << 0
	UART_STATUS_RX_AVAIL  = 1 << 1
	UART_STATUS_TX_IRQ_EN = 1 << 2
	UART_STATUS_RX_IRQ_EN = 1 << 3
)

// Uart is a serial port. Bytes written to UART_TX go to Output; bytes read
// from Input are queued and consumed through UART_RX.
type Uart struct {
	Verbose bool
	Base    uint32
	Input   io.Reader
	Output  io.Writer

	control uint32
	rx      []byte
	eof     bool
}

// NewUart creates a UART at base.
func NewUart(base uint32) *Uart {
	return &Uart{Base: base}
}

// Owns the UART register range.
func (uart *Uart) Owns(address uint32) bool {
	return address >= uart.Base && address < uart.Base+UART_SIZE
}

// Receive queues bytes as if they arrived on the line.
func (uart *Uart) Receive(data ...byte) {
	uart.rx = append(uart.rx, data...)
}

func (uart *Uart) ReadRegister(address uint32) (value uint32) {
	switch address - uart.Base {
	case UART_TX:
		value = 0
	case UART_RX:
		if len(uart.rx) > 0 {
			value = uint32(uart.rx[0])
			uart.rx = uart.rx[1:]
		}
	case UART_STATUS:
		value = UART_STATUS_TX_READY | (uart.control&0x3)<<2
		if len(uart.rx) > 0 {
			value |= UART_STATUS_RX_AVAIL
		}
	case UART_CTRL:
		value = uart.control & 0x3
	default:
		if uart.Verbose {
			logrus.WithField("address", address).Debug("uart: read of unknown register")
		}
	}
	return
}

func (uart *Uart) WriteRegister(address uint32, value uint32) {
	switch address - uart.Base {
	case UART_TX:
		if uart.Output != nil {
			uart.Output.Write([]byte{byte(value)})
		}
	case UART_CTRL:
		uart.control = value & 0x3
	default:
		if uart.Verbose {
			logrus.WithField("address", address).Debug("uart: write to read-only register")
		}
	}
}

// Tick pulls one byte from Input when the receive queue is empty.
func (uart *Uart) Tick() {
	if uart.Input == nil || uart.eof || len(uart.rx) > 0 {
		return
	}

	var one [1]byte
	n, err := uart.Input.Read(one[:])
	if n == 1 {
		uart.rx = append(uart.rx, one[0])
	}
	if err != nil {
		uart.eof = true
	}
}

func (uart *Uart) Reset() {
	uart.control = 0
	uart.rx = nil
	uart.eof = false
}
