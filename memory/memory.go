// Package memory defines a minimal contract for flat, byte-addressable
// storage and a typed, endianness-aware access layer derived from it.
package memory

// Memory is the capability a concrete byte store provides. Get and GetMut
// return windows over the store's backing bytes for the range
// [addr, addr+size); the window returned by Get must not be written through.
// A request fails whole if any byte of the range is out of bounds.
//
// Implementations own a fixed amount of storage for their lifetime; no
// operation resizes, pages or allocates.
type Memory interface {
	Get(addr, size uint64) ([]byte, error)
	GetMut(addr, size uint64) ([]byte, error)
	TryReadByte(addr uint64) (byte, error)
	TryWriteByte(addr uint64, b byte) error
}

// ReadByte reads the byte at addr, panicking if the access fails.
func ReadByte(m Memory, addr uint64) byte {
	b, err := m.TryReadByte(addr)
	if err != nil {
		panic("failed to read from memory")
	}
	return b
}

// WriteByte writes the byte at addr, panicking if the access fails.
func WriteByte(m Memory, addr uint64, b byte) {
	err := m.TryWriteByte(addr, b)
	if err != nil {
		panic("failed to write to memory")
	}
}
