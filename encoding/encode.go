package encoding

import (
	"reflect"
	"sync"
	"unsafe"

	"github.com/modern-go/reflect2"
)

var encodeProcess sync.Map

// EncodeSize reports how many bytes of memory Encode consumes for val.
func EncodeSize(val any) int {
	typ := reflect.TypeOf(val)
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	return int(typ.Size())
}

// Encode writes val's in-memory representation through stream. val may be a
// value or a pointer to one. Fields tagged `encoding:"ignore"` are skipped,
// leaving their region of memory untouched. Multi-byte scalars move in host
// byte order.
func Encode(stream Stream, val any) error {
	typ := reflect.TypeOf(val)
	if typ == nil {
		panic("Unsupported Type")
	}
	ptr := reflect2.PtrOf(val)
	if typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	return getMarshal(typ)(stream, ptr)
}

func getMarshal(typ reflect.Type) handler {
	key := reflect2.Type2(typ).RType()
	if v, ok := encodeProcess.Load(key); ok {
		return v.(handler)
	}
	marshal := encode(typ)
	encodeProcess.Store(key, marshal)
	return marshal
}

func encode(typ reflect.Type) handler {
	switch typ.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		size := int(typ.Size())
		return func(stream Stream, ptr unsafe.Pointer) error {
			_, err := stream.Write(unsafe.Slice((*byte)(ptr), size))
			return err
		}
	case reflect.Array:
		return encodeArray(typ)
	case reflect.Struct:
		return encodeStruct(typ)
	}
	panic("Unsupported Type")
}

func encodeArray(typ reflect.Type) handler {
	count := typ.Len()
	elemType := typ.Elem()
	if isPlain(elemType) {
		size := int(typ.Size())
		return func(stream Stream, ptr unsafe.Pointer) error {
			_, err := stream.Write(unsafe.Slice((*byte)(ptr), size))
			return err
		}
	}
	marshal := encode(elemType)
	stride := int(elemType.Size())
	return func(stream Stream, ptr unsafe.Pointer) error {
		for i := 0; i < count; i++ {
			err := marshal(stream, ptr)
			if err != nil {
				return err
			}
			ptr = unsafe.Add(ptr, stride)
		}
		return nil
	}
}

func encodeStruct(typ reflect.Type) handler {
	if isPlain(typ) {
		size := int(typ.Size())
		return func(stream Stream, ptr unsafe.Pointer) error {
			_, err := stream.Write(unsafe.Slice((*byte)(ptr), size))
			return err
		}
	}
	steps, trailing := structLayout(typ, encode)
	return func(stream Stream, ptr unsafe.Pointer) error {
		for _, step := range steps {
			if step.skip > 0 {
				err := stream.Skip(step.skip)
				if err != nil {
					return err
				}
			}
			err := step.handler(stream, unsafe.Add(ptr, step.offset))
			if err != nil {
				return err
			}
		}
		if trailing > 0 {
			return stream.Skip(trailing)
		}
		return nil
	}
}
