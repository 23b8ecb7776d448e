package memory

import "slices"

// VecMemory is a slice-backed reference store. It satisfies the full Memory
// contract with simple bounds checks and serves as the model for what a
// concrete store must provide; anything fancier (banking, mirroring, MMIO)
// belongs to a collaborator wrapping it.
type VecMemory struct {
	buf []byte
}

var _ Memory = (*VecMemory)(nil)

// NewVecMemory returns a zero-initialized store of the given size.
func NewVecMemory(size uint64) *VecMemory {
	return &VecMemory{buf: make([]byte, size)}
}

// VecMemoryOf returns a store seeded with a copy of data.
func VecMemoryOf(data []byte) *VecMemory {
	return &VecMemory{buf: slices.Clone(data)}
}

func (m *VecMemory) Len() uint64 {
	return uint64(len(m.buf))
}

func (m *VecMemory) Get(addr, size uint64) ([]byte, error) {
	if size > uint64(len(m.buf)) || addr > uint64(len(m.buf))-size {
		return nil, ErrOutOfRange
	}
	return m.buf[addr : addr+size], nil
}

func (m *VecMemory) GetMut(addr, size uint64) ([]byte, error) {
	return m.Get(addr, size)
}

func (m *VecMemory) TryReadByte(addr uint64) (byte, error) {
	if addr >= uint64(len(m.buf)) {
		return 0, ErrOutOfRange
	}
	return m.buf[addr], nil
}

func (m *VecMemory) TryWriteByte(addr uint64, b byte) error {
	if addr >= uint64(len(m.buf)) {
		return ErrOutOfRange
	}
	m.buf[addr] = b
	return nil
}
