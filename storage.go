package rawmem

import (
	"math"
	"reflect"
	"unsafe"
)

// AcquireSlice returns raw storage for n values of type T, or nil if n <= 0.
//
// Pointer-free types are carved from the arena and their slots hold whatever
// bytes were there before; treat them as raw until constructed. Types that hold
// pointers are allocated on the Go heap instead, zeroed, so the garbage
// collector can see what they reference. Either way the storage is released
// only through the arena.
func AcquireSlice[T any](a *Arena, n int) []T {
	a.panicIfReleased()
	if n <= 0 {
		return nil
	}
	var zero T
	size := unsafe.Sizeof(zero)
	if size == 0 || hasPointers(reflect.TypeFor[T]()) {
		a.heapSlots += n
		a.log.Trace().Str("type", reflect.TypeFor[T]().String()).Int("n", n).Msg("heap storage for pointer type")
		return make([]T, n)
	}
	if n > math.MaxInt/int(size) {
		panic("rawmem: AcquireSlice size overflows int")
	}
	b := a.acquireBytes(int(size)*n, unsafe.Alignof(zero))
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}

// Acquire returns raw storage for a single T.
func Acquire[T any](a *Arena) *T {
	return &AcquireSlice[T](a, 1)[0]
}

// hasPointers reports whether values of t contain anything the garbage
// collector must trace.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	}
	return true
}
