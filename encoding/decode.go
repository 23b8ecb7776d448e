package encoding

import (
	"reflect"
	"sync"
	"unsafe"

	"github.com/modern-go/reflect2"
)

var decodeProcess sync.Map

// Decode reads val's in-memory representation back from stream. val must be
// a pointer. Fields tagged `encoding:"ignore"` are skipped in both the
// stream and the target value.
func Decode(stream Stream, val any) error {
	typ := reflect.TypeOf(val)
	if typ == nil || typ.Kind() != reflect.Pointer {
		return ErrDecodeTarget
	}
	return getUnmarshal(typ.Elem())(stream, reflect2.PtrOf(val))
}

func getUnmarshal(typ reflect.Type) handler {
	key := reflect2.Type2(typ).RType()
	if v, ok := decodeProcess.Load(key); ok {
		return v.(handler)
	}
	unmarshal := decode(typ)
	decodeProcess.Store(key, unmarshal)
	return unmarshal
}

func decode(typ reflect.Type) handler {
	switch typ.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		size := int(typ.Size())
		return func(stream Stream, ptr unsafe.Pointer) error {
			_, err := stream.Read(unsafe.Slice((*byte)(ptr), size))
			return err
		}
	case reflect.Array:
		return decodeArray(typ)
	case reflect.Struct:
		return decodeStruct(typ)
	}
	panic("Unsupported Type")
}

func decodeArray(typ reflect.Type) handler {
	count := typ.Len()
	elemType := typ.Elem()
	if isPlain(elemType) {
		size := int(typ.Size())
		return func(stream Stream, ptr unsafe.Pointer) error {
			_, err := stream.Read(unsafe.Slice((*byte)(ptr), size))
			return err
		}
	}
	unmarshal := decode(elemType)
	stride := int(elemType.Size())
	return func(stream Stream, ptr unsafe.Pointer) error {
		for i := 0; i < count; i++ {
			err := unmarshal(stream, ptr)
			if err != nil {
				return err
			}
			ptr = unsafe.Add(ptr, stride)
		}
		return nil
	}
}

func decodeStruct(typ reflect.Type) handler {
	if isPlain(typ) {
		size := int(typ.Size())
		return func(stream Stream, ptr unsafe.Pointer) error {
			_, err := stream.Read(unsafe.Slice((*byte)(ptr), size))
			return err
		}
	}
	steps, trailing := structLayout(typ, decode)
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
