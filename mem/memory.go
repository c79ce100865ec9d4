package mem

import (
	"github.com/sirupsen/logrus"

	"github.com/ezrec/rvsim/device"
)

// Memory is the byte store of the simulator, with peripherals mapped over
// their register ranges and the DMA control word at DMA_CONTROL.
type Memory struct {
	Verbose bool
	Image   Image
	Dma     *Dma

	devices []device.Device
}

// NewMemory creates an empty memory with a DMA controller.
func NewMemory() (memory *Memory) {
	memory = &Memory{
		Image: Image{},
		Dma:   &Dma{},
	}
	return
}

// Map attaches peripherals. Earlier devices win on overlapping ranges.
func (memory *Memory) Map(devices ...device.Device) {
	memory.devices = append(memory.devices, devices...)
}

// Devices returns the mapped peripherals.
func (memory *Memory) Devices() []device.Device {
	return memory.devices
}

// Load replaces the byte store with a copy of image.
func (memory *Memory) Load(image Image) {
	memory.Image = image.Clone()
}

// Reset clears the byte store, the DMA controller and every peripheral.
func (memory *Memory) Reset() {
	memory.Image = Image{}
	if memory.Dma != nil {
		memory.Dma.Reset()
	}
	for _, dev := range memory.devices {
		dev.Reset()
	}
}

func (memory *Memory) owner(address uint32) device.Device {
	for _, dev := range memory.devices {
		if dev.Owns(address) {
			return dev
		}
	}
	return nil
}

// Read returns size bytes at address, zero extended.
func (memory *Memory) Read(address uint32, size int) (value uint32, err error) {
	if memory.Dma != nil && address == DMA_CONTROL {
		if memory.Dma.Busy() {
			value = 1
		}
		return
	}

	if dev := memory.owner(address); dev != nil {
		value = dev.ReadRegister(address)
		if size < 4 {
			value &= uint32(1)<<(8*size) - 1
		}
		return
	}

	value, ok := memory.Image.Load(address, size)
	if !ok {
		err = ErrUninitialized(address)
		return
	}
	return
}

// Write stores the low size bytes of value at address.
func (memory *Memory) Write(address uint32, size int, value uint32) (err error) {
	if size < 4 {
		value &= uint32(1)<<(8*size) - 1
	}

	if memory.Dma != nil && address == DMA_CONTROL {
		memory.Dma.Arm(value)
		return
	}

	if dev := memory.owner(address); dev != nil {
		dev.WriteRegister(address, value)
		return
	}

	memory.Image.Store(address, size, value)
	return
}

// Fetch reads the instruction word at address.
func (memory *Memory) Fetch(address uint32) (word uint32, err error) {
	if address&3 != 0 {
		err = ErrFetchAlign
		return
	}
	word, err = memory.Read(address, 4)
	return
}

// Service performs a transaction immediately.
func (memory *Memory) Service(tx Transaction) (resp Response) {
	if memory.Verbose {
		logrus.WithFields(logrus.Fields{
			"kind":    tx.Kind.String(),
			"address": tx.Address,
			"value":   tx.Value,
		}).Debug("memory: service")
	}

	switch tx.Kind {
	case READ, READ_HALF, READ_BYTE:
		resp.Data, resp.Err = memory.Read(tx.Address, tx.Kind.Size())
	case WRITE, WRITE_HALF, WRITE_BYTE:
		resp.Err = memory.Write(tx.Address, tx.Kind.Size(), tx.Value)
	default:
		resp.Err = ErrAccessInvalid
	}
	return
}

// Tick services the pending bus request, if any, and posts its response.
func (memory *Memory) Tick(bus *Bus) {
	tx, ok := bus.Take()
	if !ok {
		return
	}
	bus.Respond(memory.Service(tx))
}
