package cpu

import (
	"io"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/ezrec/rvsim/isa"
	"github.com/ezrec/rvsim/mem"
)

const (
	STRING_LIMIT = 1 << 16 // Longest string print_string will scan.
	FD_STDOUT    = 1
)

// ErrStringLimit is returned when print_string finds no terminator.
type ErrStringLimit uint32

func (err ErrStringLimit) Error() string {
	return f("string at 0x%08x is unterminated", uint32(err))
}

func (cpu *Cpu) stdout() io.Writer {
	if cpu.Stdout == nil {
		return io.Discard
	}
	return cpu.Stdout
}

// readBytes collects memory for a system call. A negative count stops at
// the first NUL instead.
func readBytes(bus *mem.Bus, address uint32, count int) (data []byte, err error) {
	for n := 0; count < 0 || n < count; n++ {
		if count < 0 && n >= STRING_LIMIT {
			err = ErrStringLimit(address)
			return
		}
		var value uint32
		value, err = bus.Peek(address+uint32(n), 1)
		if err != nil {
			return
		}
		if count < 0 && value == 0 {
			break
		}
		data = append(data, byte(value))
	}
	return
}

// syscall dispatches ECALL on a7. Output is written only once the
// arguments have been read successfully.
func (cpu *Cpu) syscall(bus *mem.Bus) (err error) {
	id := cpu.X(isa.X_A7)
	a0 := cpu.X(isa.X_A0)

	if cpu.Verbose {
		logrus.WithFields(logrus.Fields{
			"id": id,
			"a0": a0,
		}).Debug("cpu: syscall")
	}

	var out []byte

	switch id {
	case SYS_PRINT_INT:
		out = strconv.AppendInt(out, int64(a0), 10)
	case SYS_PRINT_FLOAT:
		out = strconv.AppendFloat(out, float64(cpu.Float[isa.X_A0]), 'g', -1, 32)
	case SYS_PRINT_STRING:
		out, err = readBytes(bus, uint32(a0), -1)
		if err != nil {
			return
		}
	case SYS_PRINT_CHAR:
		out = []byte{byte(a0)}
	case SYS_EXIT:
		err = ErrExit(0)
		return
	case SYS_EXIT2:
		err = ErrExit(a0)
		return
	case SYS_WRITE:
		if a0 != FD_STDOUT {
			cpu.SetX(isa.X_A0, -1)
			return
		}
		count := cpu.X(isa.X_A2)
		if count < 0 {
			cpu.SetX(isa.X_A0, -1)
			return
		}
		out, err = readBytes(bus, uint32(cpu.X(isa.X_A1)), int(count))
		if err != nil {
			return
		}
		cpu.SetX(isa.X_A0, count)
	default:
		err = ErrSyscall(id)
		return
	}

	_, err = cpu.stdout().Write(out)
	return
}
