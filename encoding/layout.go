package encoding

import (
	"reflect"
	"unsafe"

	"github.com/modern-go/reflect2"
)

type handler = func(Stream, unsafe.Pointer) error

type structStep struct {
	skip    int
	offset  int
	handler handler
}

// isPlain reports whether a type's representation can move in one raw copy:
// fixed-width scalars and aggregates of them with no ignored fields.
func isPlain(typ reflect.Type) bool {
	switch typ.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return isPlain(typ.Elem())
	case reflect.Struct:
		for i := 0; i < typ.NumField(); i++ {
			field := typ.Field(i)
			if field.Tag.Get("encoding") == "ignore" || !isPlain(field.Type) {
				return false
			}
		}
		return true
	}
	return false
}

// structLayout builds the walk over a struct's retained fields. Gaps from
// padding and ignored fields become stream skips, so the stream layout always
// matches the struct's host layout.
func structLayout(typ reflect.Type, build func(reflect.Type) handler) ([]structStep, int) {
	st := reflect2.Type2(typ).(reflect2.StructType)
	steps := make([]structStep, 0, typ.NumField())
	var off int
	for i := 0; i < typ.NumField(); i++ {
		field := st.Field(i)
		if field.Tag().Get("encoding") == "ignore" {
			continue
		}
		fieldType := field.Type().Type1()
		offset := int(field.Offset())
		steps = append(steps, structStep{
			skip:    offset - off,
			offset:  offset,
			handler: build(fieldType),
		})
		off = offset + int(fieldType.Size())
	}
	return steps, int(typ.Size()) - off
}
