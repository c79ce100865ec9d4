package main

import (
	"bytes"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/ezrec/rvsim/emulator"
)

const (
	KEY_INTERRUPT = 0x03 // Ctrl-C
)

// Console puts the host terminal in raw mode and feeds key presses to the
// emulator keyboard.
type Console struct {
	fd    int
	state *term.State
}

// StartConsole switches stdin to raw mode. The returned console must be
// closed to restore the terminal.
func StartConsole(emu *emulator.Emulator) (console *Console, err error) {
	fd := int(os.Stdin.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return
	}

	console = &Console{fd: fd, state: state}

	go func() {
		buf := make([]byte, 1)
		for {
			n, err := os.Stdin.Read(buf)
			if err != nil {
				return
			}
			if n == 0 {
				continue
			}
			key := buf[0]
			switch key {
			case KEY_INTERRUPT:
				emu.Stop()
				return
			case '\r':
				key = '\n'
			case 0x7f:
				key = '\b'
			}
			emu.Keyboard.Push(key)
		}
	}()

	return
}

// Close restores the terminal.
func (console *Console) Close() error {
	return term.Restore(console.fd, console.state)
}

// crlfWriter expands newlines for a terminal in raw mode.
type crlfWriter struct {
	w io.Writer
}

func (cw crlfWriter) Write(data []byte) (n int, err error) {
	_, err = cw.w.Write(bytes.ReplaceAll(data, []byte("\n"), []byte("\r\n")))
	if err != nil {
		return
	}
	n = len(data)
	return
}
