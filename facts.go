package rawmem

import (
	"reflect"
	"unsafe"
)

// Facts records what is known about an element type's lifecycle.
// A false field means "not known to be trivial", never "known to be non-trivial".
type Facts struct {
	TrivialDefault bool // zero value is a valid default construction
	TrivialCopy    bool // copy construction is a plain byte copy
	TrivialAssign  bool // assignment is a plain byte copy
	TrivialDestroy bool // destruction has no side effects
	POD            bool // all of the above; bulk copy and fill are allowed
}

var podFacts = Facts{
	TrivialDefault: true,
	TrivialCopy:    true,
	TrivialAssign:  true,
	TrivialDestroy: true,
	POD:            true,
}

// PODFacts returns the facts of a plain-old-data type, for use by
// FactsProvider implementations.
func PODFacts() Facts { return podFacts }

// FactsProvider lets a type declare its own facts. The method may have a value
// or pointer receiver.
type FactsProvider interface {
	CapabilityFacts() Facts
}

// FactsOf returns the facts for T.
//
// Built-in numeric and boolean types and unsafe.Pointer are POD. A type
// implementing FactsProvider reports its own facts. Any other pointer type is
// POD by its kind, named or not. Every other type, including named types
// declared over a scalar, gets the zero Facts and is handled one element at a
// time.
func FactsOf[T any]() Facts {
	var zero T
	switch any(zero).(type) {
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64, complex64, complex128,
		bool, unsafe.Pointer:
		return podFacts
	}
	if p, ok := any(&zero).(FactsProvider); ok {
		return p.CapabilityFacts()
	}
	if reflect.TypeFor[T]().Kind() == reflect.Pointer {
		return podFacts
	}
	return Facts{}
}
