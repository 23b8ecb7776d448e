// Package encoding transfers whole Go values between host structs and a
// memory.Memory using their in-memory representation. It exists for bulk
// seeding and extraction (register files, test fixtures); field-level byte
// order control belongs to the memory package's typed access layer.
package encoding

import "github.com/wnxd/memstore/memory"

type Stream interface {
	Offset() uint64
	Skip(int) error
	Read([]byte) (int, error)
	Write([]byte) (int, error)
}

type memoryStream struct {
	ptr memory.Pointer
}

// MemoryStream returns a Stream that advances through the memory behind ptr.
func MemoryStream(ptr memory.Pointer) Stream {
	return &memoryStream{ptr}
}

func (ms *memoryStream) Offset() uint64 {
	return ms.ptr.Address()
}

func (ms *memoryStream) Skip(n int) error {
	ms.ptr = ms.ptr.Add(uint64(n))
	return nil
}

func (ms *memoryStream) Read(b []byte) (int, error) {
	n, err := ms.ptr.ReadAt(b, 0)
	if err == nil {
		ms.Skip(n)
	}
	return n, err
}

func (ms *memoryStream) Write(b []byte) (int, error) {
	n, err := ms.ptr.WriteAt(b, 0)
	if err == nil {
		ms.Skip(n)
	}
	return n, err
}
