// Package device provides the memory-mapped peripherals of the simulator.
//
// A peripheral claims a range of the 32-bit address space and is accessed
// one register at a time. Memory routes every access inside a claimed
// range to the owning Device instead of the byte store.
package device

// Device is the contract between Memory and a peripheral.
type Device interface {
	// ReadRegister returns the register at address.
	ReadRegister(address uint32) uint32
	// WriteRegister stores value into the register at address.
	WriteRegister(address uint32, value uint32)
	// Tick advances the peripheral by one simulator tick.
	Tick()
	// Reset returns the peripheral to its power-on state.
	Reset()
	// Owns reports whether address falls in the register range.
	Owns(address uint32) bool
}
