package memory

import (
	"encoding/binary"
	"unsafe"
)

// sizeOf reports the byte width of V. The width is a property of the type,
// never of the data.
func sizeOf[V Value]() uint64 {
	var v V
	return uint64(unsafe.Sizeof(v))
}

// decode interprets b as the little-endian representation of V. The view
// must hold exactly sizeOf[V] bytes; a store handing back a window of any
// other length has broken its contract.
func decode[V Value](b []byte) V {
	var v V
	if uintptr(len(b)) != unsafe.Sizeof(v) {
		panic("byte view length mismatch")
	}
	switch p := any(&v).(type) {
	case *uint8:
		*p = b[0]
	case *int8:
		*p = int8(b[0])
	case *uint16:
		*p = binary.LittleEndian.Uint16(b)
	case *int16:
		*p = int16(binary.LittleEndian.Uint16(b))
	case *uint32:
		*p = binary.LittleEndian.Uint32(b)
	case *int32:
		*p = int32(binary.LittleEndian.Uint32(b))
	case *uint64:
		*p = binary.LittleEndian.Uint64(b)
	case *int64:
		*p = int64(binary.LittleEndian.Uint64(b))
	case *Uint128:
		p.Lo = binary.LittleEndian.Uint64(b)
		p.Hi = binary.LittleEndian.Uint64(b[8:])
	case *Int128:
		p.Lo = binary.LittleEndian.Uint64(b)
		p.Hi = int64(binary.LittleEndian.Uint64(b[8:]))
	}
	return v
}

// encode copies the little-endian representation of v into b, which must
// hold exactly sizeOf[V] bytes.
func encode[V Value](b []byte, v V) {
	if uintptr(len(b)) != unsafe.Sizeof(v) {
		panic("byte view length mismatch")
	}
	switch p := any(&v).(type) {
	case *uint8:
		b[0] = *p
	case *int8:
		b[0] = byte(*p)
	case *uint16:
		binary.LittleEndian.PutUint16(b, *p)
	case *int16:
		binary.LittleEndian.PutUint16(b, uint16(*p))
	case *uint32:
		binary.LittleEndian.PutUint32(b, *p)
	case *int32:
		binary.LittleEndian.PutUint32(b, uint32(*p))
	case *uint64:
		binary.LittleEndian.PutUint64(b, *p)
	case *int64:
		binary.LittleEndian.PutUint64(b, uint64(*p))
	case *Uint128:
		binary.LittleEndian.PutUint64(b, p.Lo)
		binary.LittleEndian.PutUint64(b[8:], p.Hi)
	case *Int128:
		binary.LittleEndian.PutUint64(b, p.Lo)
		binary.LittleEndian.PutUint64(b[8:], uint64(p.Hi))
	}
}
