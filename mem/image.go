package mem

import (
	"maps"
	"slices"
)

// Image is a sparse little-endian byte store. Absent addresses are
// uninitialized.
type Image map[uint32]uint8

// Clone returns an independent copy of the image.
func (image Image) Clone() Image {
	if image == nil {
		return Image{}
	}
	return maps.Clone(image)
}

// Addresses returns every initialized address in ascending order.
func (image Image) Addresses() []uint32 {
	return slices.Sorted(maps.Keys(image))
}

// Load reads size bytes (1, 2 or 4) at address. ok is false when any byte
// is uninitialized.
func (image Image) Load(address uint32, size int) (value uint32, ok bool) {
	for n := range size {
		b, found := image[address+uint32(n)]
		if !found {
			return 0, false
		}
		value |= uint32(b) << (8 * n)
	}
	ok = true
	return
}

// Store writes the low size bytes (1, 2 or 4) of value at address.
func (image Image) Store(address uint32, size int, value uint32) {
	for n := range size {
		image[address+uint32(n)] = uint8(value >> (8 * n))
	}
}

// Load32 reads a word.
func (image Image) Load32(address uint32) (uint32, bool) {
	return image.Load(address, 4)
}

// Store32 writes a word.
func (image Image) Store32(address uint32, value uint32) {
	image.Store(address, 4, value)
}

// Bytes returns length bytes from address, zero where uninitialized.
func (image Image) Bytes(address uint32, length int) (data []byte) {
	data = make([]byte, length)
	for n := range length {
		data[n] = image[address+uint32(n)]
	}
	return
}
