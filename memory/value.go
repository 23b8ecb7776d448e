package memory

import "math/bits"

// Value enumerates the fixed-width integer types that may be stored in a
// Memory through the typed access layer. The union names exact types, so no
// type outside this set can satisfy the constraint.
type Value interface {
	uint8 | int8 | uint16 | int16 | uint32 | int32 | uint64 | int64 | Uint128 | Int128
}

// Uint128 is a 128-bit unsigned integer held as two 64-bit halves.
type Uint128 struct {
	Lo, Hi uint64
}

// Int128 is a 128-bit signed integer held as two 64-bit halves, with the
// sign carried by the high half.
type Int128 struct {
	Lo uint64
	Hi int64
}

// swap reverses the byte order of v's bit pattern. Applying it twice yields
// the original value.
func swap[V Value](v V) V {
	switch p := any(&v).(type) {
	case *uint8, *int8:
	case *uint16:
		*p = bits.ReverseBytes16(*p)
	case *int16:
		*p = int16(bits.ReverseBytes16(uint16(*p)))
	case *uint32:
		*p = bits.ReverseBytes32(*p)
	case *int32:
		*p = int32(bits.ReverseBytes32(uint32(*p)))
	case *uint64:
		*p = bits.ReverseBytes64(*p)
	case *int64:
		*p = int64(bits.ReverseBytes64(uint64(*p)))
	case *Uint128:
		p.Lo, p.Hi = bits.ReverseBytes64(p.Hi), bits.ReverseBytes64(p.Lo)
	case *Int128:
		p.Lo, p.Hi = bits.ReverseBytes64(uint64(p.Hi)), int64(bits.ReverseBytes64(p.Lo))
	}
	return v
}
