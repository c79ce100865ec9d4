package mem

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/rvsim/device"
)

func TestImage(t *testing.T) {
	assert := assert.New(t)

	image := Image{}
	image.Store32(0x100, 0x11223344)
	assert.Equal(uint8(0x44), image[0x100])
	assert.Equal(uint8(0x11), image[0x103])

	value, ok := image.Load32(0x100)
	assert.True(ok)
	assert.Equal(uint32(0x11223344), value)

	value, ok = image.Load(0x102, 2)
	assert.True(ok)
	assert.Equal(uint32(0x1122), value)

	_, ok = image.Load32(0x102)
	assert.False(ok)

	assert.Equal([]uint32{0x100, 0x101, 0x102, 0x103}, image.Addresses())
	assert.Equal([]byte{0x33, 0x22, 0x11, 0, 0}, image.Bytes(0x101, 5))

	clone := image.Clone()
	clone[0x100] = 0
	assert.Equal(uint8(0x44), image[0x100])
}

func TestBus(t *testing.T) {
	assert := assert.New(t)

	bus := &Bus{}
	assert.True(bus.Idle())

	assert.NoError(bus.Request(Transaction{Kind: READ, Address: 4}))
	assert.ErrorIs(bus.Request(Transaction{Kind: READ, Address: 8}), ErrBusBusy)
	assert.False(bus.Idle())

	_, ok := bus.Response()
	assert.False(ok)

	tx, ok := bus.Take()
	assert.True(ok)
	assert.Equal(uint32(4), tx.Address)

	bus.Respond(Response{Data: 7})
	assert.ErrorIs(bus.Request(Transaction{Kind: READ, Address: 8}), ErrBusBusy)

	resp, ok := bus.Response()
	assert.True(ok)
	assert.Equal(uint32(7), resp.Data)
	assert.True(bus.Idle())

	assert.NoError(bus.Request(Transaction{Kind: WRITE}))
	bus.Reset()
	assert.True(bus.Idle())
}

func TestMemory(t *testing.T) {
	assert := assert.New(t)

	memory := NewMemory()
	bus := &Bus{Port: memory}

	_, err := memory.Read(0x1000, 4)
	assert.Equal(ErrUninitialized(0x1000), err)

	assert.NoError(memory.Write(0x1000, 4, 0xDEADBEEF))
	assert.NoError(memory.Write(0x1000, 1, 0x1AA))

	word, err := bus.Fetch(0x1000)
	assert.NoError(err)
	assert.Equal(uint32(0xDEADBEAA), word)

	_, err = bus.Fetch(0x1002)
	assert.ErrorIs(err, ErrFetchAlign)

	value, err := bus.Peek(0x1003, 1)
	assert.NoError(err)
	assert.Equal(uint32(0xDE), value)

	assert.NoError(bus.Request(Transaction{Kind: READ_HALF, Address: 0x1002}))
	memory.Tick(bus)
	resp, ok := bus.Response()
	assert.True(ok)
	assert.NoError(resp.Err)
	assert.Equal(uint32(0xDEAD), resp.Data)

	assert.NoError(bus.Request(Transaction{Kind: WRITE_BYTE, Address: 0x2000, Value: 0x55}))
	memory.Tick(bus)
	resp, ok = bus.Response()
	assert.True(ok)
	assert.NoError(resp.Err)
	assert.Equal(uint8(0x55), memory.Image[0x2000])

	memory.Tick(bus)
	_, ok = bus.Response()
	assert.False(ok)

	memory.Reset()
	assert.Empty(memory.Image)
}

func TestMemoryDevices(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	uart := device.NewUart(UART_BASE)
	uart.Output = output

	memory := NewMemory()
	memory.Map(uart)
	assert.Len(memory.Devices(), 1)

	assert.NoError(memory.Write(UART_BASE+device.UART_TX, 1, 'A'))
	assert.Equal("A", output.String())
	_, found := memory.Image[UART_BASE]
	assert.False(found)

	value, err := memory.Read(UART_BASE+device.UART_STATUS, 4)
	assert.NoError(err)
	assert.Equal(uint32(device.UART_STATUS_TX_READY), value)
}

func TestDma(t *testing.T) {
	assert := assert.New(t)

	memory := NewMemory()
	memory.Image.Store32(DATA_BASE+0x10, 0x04030201)
	snapshot := memory.Image.Bytes(DATA_BASE+0x10, 4)

	var done []Job
	memory.Dma.OnDone = func(job Job) { done = append(done, job) }

	control := Pack(0x10, 0x40, 4)
	job := Unpack(control)
	assert.Equal(uint32(DATA_BASE+0x10), job.Src)
	assert.Equal(uint32(DATA_BASE+0x40), job.Dst)
	assert.Equal(uint32(4), job.Length)

	assert.NoError(memory.Write(DMA_CONTROL, 4, control))
	busy, err := memory.Read(DMA_CONTROL, 4)
	assert.NoError(err)
	assert.Equal(uint32(1), busy)
	_, found := memory.Image[DMA_CONTROL]
	assert.False(found)

	memory.Dma.Tick(memory.Image, false)
	_, ok := memory.Dma.Active()
	assert.False(ok)

	for range 4 {
		assert.Empty(done)
		memory.Dma.Tick(memory.Image, true)
	}

	assert.Equal(snapshot, memory.Image.Bytes(DATA_BASE+0x40, 4))
	assert.Len(done, 1)
	assert.Equal(uint32(4), done[0].Progress)
	assert.False(memory.Dma.Busy())

	busy, err = memory.Read(DMA_CONTROL, 4)
	assert.NoError(err)
	assert.Equal(uint32(0), busy)
}

func TestDmaUninitializedSource(t *testing.T) {
	assert := assert.New(t)

	memory := NewMemory()
	memory.Image[DATA_BASE+0x21] = 9
	memory.Dma.Arm(Pack(0x20, 0x21, 1))
	memory.Dma.Tick(memory.Image, true)

	_, found := memory.Image[DATA_BASE+0x21]
	assert.False(found)
	assert.False(memory.Dma.Busy())
}

func TestDefines(t *testing.T) {
	assert := assert.New(t)

	defines := map[string]string{}
	for name, value := range Defines() {
		defines[name] = value
	}
	assert.Equal("0x400000", defines["TEXT_BASE"])
	assert.Equal("0xffff8000", defines["DMA_CONTROL"])
	assert.Equal("0x10000004", defines["UART_RX"])
}
