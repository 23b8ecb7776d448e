package memory

// TryRead reads a V from the range [addr, addr+sizeof(V)) in little-endian
// order. A failed range request surfaces the store's error unchanged.
func TryRead[V Value](m Memory, addr uint64) (V, error) {
	view, err := m.Get(addr, sizeOf[V]())
	if err != nil {
		var zero V
		return zero, err
	}
	return decode[V](view), nil
}

// Read reads a V at addr in little-endian order, panicking if the access
// fails.
func Read[V Value](m Memory, addr uint64) V {
	v, err := TryRead[V](m, addr)
	if err != nil {
		panic("failed to read from memory")
	}
	return v
}

// TryReadBE reads a V at addr in big-endian order.
func TryReadBE[V Value](m Memory, addr uint64) (V, error) {
	v, err := TryRead[V](m, addr)
	if err != nil {
		return v, err
	}
	return swap(v), nil
}

// ReadBE reads a V at addr in big-endian order, panicking if the access
// fails.
func ReadBE[V Value](m Memory, addr uint64) V {
	v, err := TryReadBE[V](m, addr)
	if err != nil {
		panic("failed to read from memory")
	}
	return v
}

// TryWrite writes v to the range [addr, addr+sizeof(V)) in little-endian
// order. The whole range is validated before any byte is copied; on failure
// the store is untouched.
func TryWrite[V Value](m Memory, addr uint64, v V) error {
	view, err := m.GetMut(addr, sizeOf[V]())
	if err != nil {
		return err
	}
	encode(view, v)
	return nil
}

// Write writes v at addr in little-endian order, panicking if the access
// fails.
func Write[V Value](m Memory, addr uint64, v V) {
	err := TryWrite(m, addr, v)
	if err != nil {
		panic("failed to write to memory")
	}
}

// TryWriteBE writes v at addr in big-endian order.
func TryWriteBE[V Value](m Memory, addr uint64, v V) error {
	return TryWrite(m, addr, swap(v))
}

// WriteBE writes v at addr in big-endian order, panicking if the access
// fails.
func WriteBE[V Value](m Memory, addr uint64, v V) {
	err := TryWriteBE(m, addr, v)
	if err != nil {
		panic("failed to write to memory")
	}
}
