package memory_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wnxd/memstore/memory"
)

func TestReadLittleEndian(t *testing.T) {
	mem := memory.VecMemoryOf([]byte{0xBA, 0xCD, 0xAB, 0x00, 0x00})
	require.Equal(t, uint8(0xBA), memory.Read[uint8](mem, 0))
	require.Equal(t, uint32(0x0000ABCD), memory.Read[uint32](mem, 1))
}

func TestReadBigEndian(t *testing.T) {
	mem := memory.VecMemoryOf([]byte{0xBA, 0xCD, 0xAB, 0x00, 0x00})
	require.Equal(t, uint8(0xBA), memory.ReadBE[uint8](mem, 0))
	require.Equal(t, uint32(0xCDAB0000), memory.ReadBE[uint32](mem, 1))
}

func TestWriteLittleEndian(t *testing.T) {
	mem := memory.NewVecMemory(16)

	memory.Write[uint8](mem, 0, 0xFF)
	require.Equal(t, uint8(0xFF), memory.Read[uint8](mem, 0))

	memory.Write[uint32](mem, 4, 0xDDFFEEAA)
	view, err := mem.Get(4, 4)
	require.NoError(t, err)
	require.Equal(t, []byte{0xAA, 0xEE, 0xFF, 0xDD}, view)
	require.Equal(t, uint32(0xDDFFEEAA), memory.Read[uint32](mem, 4))
}

func TestWriteBigEndian(t *testing.T) {
	mem := memory.NewVecMemory(16)

	memory.WriteBE[uint8](mem, 0, 0xFF)
	require.Equal(t, uint8(0xFF), memory.ReadBE[uint8](mem, 0))

	memory.WriteBE[uint32](mem, 4, 0xDDFFEEAA)
	view, err := mem.Get(4, 4)
	require.NoError(t, err)
	require.Equal(t, []byte{0xDD, 0xFF, 0xEE, 0xAA}, view)
	require.Equal(t, uint32(0xDDFFEEAA), memory.ReadBE[uint32](mem, 4))
}

func roundTrip[V memory.Value](t *testing.T, x V) {
	t.Helper()
	mem := memory.NewVecMemory(32)
	memory.Write(mem, 8, x)
	require.Equal(t, x, memory.Read[V](mem, 8))
	memory.WriteBE(mem, 8, x)
	require.Equal(t, x, memory.ReadBE[V](mem, 8))
}

func TestRoundTrip(t *testing.T) {
	roundTrip[uint8](t, 0x5A)
	roundTrip[int8](t, -0x5A)
	roundTrip[uint16](t, 0xBEEF)
	roundTrip[int16](t, -0x1234)
	roundTrip[uint32](t, 0xDEADBEEF)
	roundTrip[int32](t, -0x12345678)
	roundTrip[uint64](t, 0xFEEDFACECAFEBEEF)
	roundTrip[int64](t, -0x123456789ABCDEF0)
	roundTrip(t, memory.Uint128{Lo: 0x0123456789ABCDEF, Hi: 0xFEDCBA9876543210})
	roundTrip(t, memory.Int128{Lo: 0x0123456789ABCDEF, Hi: -0x0FEDCBA987654321})
}

func TestByteOrderDistinction(t *testing.T) {
	mem := memory.NewVecMemory(8)
	memory.Write[uint32](mem, 0, 0x11223344)
	require.Equal(t, uint32(0x44332211), memory.ReadBE[uint32](mem, 0))
}

func TestExactRangeConsumption(t *testing.T) {
	mem := memory.NewVecMemory(16)
	memory.Write[uint32](mem, 4, 0xDDFFEEAA)
	view, err := mem.Get(0, 16)
	require.NoError(t, err)
	require.Equal(t, []byte{
		0, 0, 0, 0,
		0xAA, 0xEE, 0xFF, 0xDD,
		0, 0, 0, 0, 0, 0, 0, 0,
	}, view)
}

func TestAtomicFailure(t *testing.T) {
	mem := memory.VecMemoryOf([]byte{1, 2, 3, 4, 5})
	err := memory.TryWrite[uint32](mem, 3, 0xDDFFEEAA)
	require.ErrorIs(t, err, memory.ErrOutOfRange)
	view, err := mem.Get(0, 5)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3, 4, 5}, view)
}

func TestSingleByteIdentity(t *testing.T) {
	mem := memory.NewVecMemory(4)
	memory.WriteByte(mem, 2, 0x7F)
	require.Equal(t, uint8(0x7F), memory.Read[uint8](mem, 2))
	memory.Write[uint8](mem, 3, 0x80)
	require.Equal(t, byte(0x80), memory.ReadByte(mem, 3))
}

func TestOutOfBounds(t *testing.T) {
	mem := memory.NewVecMemory(4)

	_, err := memory.TryRead[uint64](mem, 0)
	require.ErrorIs(t, err, memory.ErrOutOfRange)
	_, err = memory.TryReadBE[uint32](mem, 1)
	require.ErrorIs(t, err, memory.ErrOutOfRange)
	require.ErrorIs(t, memory.TryWrite[uint64](mem, 0, 1), memory.ErrOutOfRange)
	require.ErrorIs(t, memory.TryWriteBE[uint32](mem, 1, 1), memory.ErrOutOfRange)

	require.PanicsWithValue(t, "failed to read from memory", func() { memory.Read[uint64](mem, 0) })
	require.PanicsWithValue(t, "failed to read from memory", func() { memory.ReadBE[uint64](mem, 0) })
	require.PanicsWithValue(t, "failed to write to memory", func() { memory.Write[uint64](mem, 0, 1) })
	require.PanicsWithValue(t, "failed to write to memory", func() { memory.WriteBE[uint64](mem, 0, 1) })
	require.PanicsWithValue(t, "failed to read from memory", func() { memory.ReadByte(mem, 4) })
	require.PanicsWithValue(t, "failed to write to memory", func() { memory.WriteByte(mem, 4, 0) })
}

type faultMemory struct {
	err error
}

func (m faultMemory) Get(addr, size uint64) ([]byte, error)    { return nil, m.err }
func (m faultMemory) GetMut(addr, size uint64) ([]byte, error) { return nil, m.err }
func (m faultMemory) TryReadByte(addr uint64) (byte, error)    { return 0, m.err }
func (m faultMemory) TryWriteByte(addr uint64, b byte) error   { return m.err }

// Store errors must come back unwrapped, whatever the store defines.
func TestErrorPropagation(t *testing.T) {
	errBusFault := errors.New("bus fault")
	mem := faultMemory{errBusFault}

	_, err := memory.TryRead[uint16](mem, 0)
	require.Equal(t, errBusFault, err)
	_, err = memory.TryReadBE[uint16](mem, 0)
	require.Equal(t, errBusFault, err)
	require.Equal(t, errBusFault, memory.TryWrite[uint16](mem, 0, 1))
	require.Equal(t, errBusFault, memory.TryWriteBE[uint16](mem, 0, 1))
	_, err = mem.TryReadByte(0)
	require.Equal(t, errBusFault, err)
}
