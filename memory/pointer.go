package memory

// Pointer is a cursor into a Memory. The zero value is a nil pointer.
type Pointer struct {
	mem  Memory
	addr uint64
}

func ToPointer(m Memory, addr uint64) Pointer {
	return Pointer{m, addr}
}

func (p Pointer) IsNil() bool {
	return p.mem == nil
}

func (p Pointer) Address() uint64 {
	return p.addr
}

func (p Pointer) Add(offset uint64) Pointer {
	return Pointer{p.mem, p.addr + offset}
}

func (p Pointer) Sub(offset uint64) Pointer {
	return Pointer{p.mem, p.addr - offset}
}

// Read returns a copy of size bytes starting at the pointer.
func (p Pointer) Read(size uint64) ([]byte, error) {
	view, err := p.mem.Get(p.addr, size)
	if err != nil {
		return nil, err
	}
	data := make([]byte, size)
	copy(data, view)
	return data, nil
}

// Write copies data into memory starting at the pointer. The whole range is
// validated before any byte is copied.
func (p Pointer) Write(data []byte) error {
	view, err := p.mem.GetMut(p.addr, uint64(len(data)))
	if err != nil {
		return err
	}
	copy(view, data)
	return nil
}

// ReadString reads bytes from the pointer up to the first NUL.
func (p Pointer) ReadString() (string, error) {
	var data []byte
	for addr := p.addr; ; addr++ {
		b, err := p.mem.TryReadByte(addr)
		if err != nil {
			return "", err
		} else if b == 0 {
			break
		}
		data = append(data, b)
	}
	return string(data), nil
}

// ReadAt implements io.ReaderAt over the underlying memory.
func (p Pointer) ReadAt(b []byte, off int64) (n int, err error) {
	view, err := p.mem.Get(p.addr+uint64(off), uint64(len(b)))
	if err != nil {
		return 0, err
	}
	return copy(b, view), nil
}

// WriteAt implements io.WriterAt over the underlying memory.
func (p Pointer) WriteAt(b []byte, off int64) (n int, err error) {
	view, err := p.mem.GetMut(p.addr+uint64(off), uint64(len(b)))
	if err != nil {
		return 0, err
	}
	return copy(view, b), nil
}
