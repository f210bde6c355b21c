package rawmem

import "reflect"

// Tag is a cursor's traversal capability. Values are ordered by specificity:
// RandomAccess > Bidirectional > Forward > Input. Output is unrelated to the
// others.
type Tag uint8

const (
	Output Tag = iota
	Input
	Forward
	Bidirectional
	RandomAccess
)

var tagNames = [...]string{
	Output:        "output",
	Input:         "input",
	Forward:       "forward",
	Bidirectional: "bidirectional",
	RandomAccess:  "random-access",
}

func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return "unknown"
}

// Satisfies reports whether a cursor tagged t can be used where u is required.
func (t Tag) Satisfies(u Tag) bool {
	if t == Output || u == Output {
		return t == u
	}
	return t >= u
}

// Cursor is the minimal single-step cursor. C is the cursor type itself, so
// cursors are passed and returned by value.
type Cursor[C any] interface {
	Next() C
	Equal(other C) bool
}

// BidiCursor can also step backwards.
type BidiCursor[C any] interface {
	Cursor[C]
	Prev() C
}

// RandomCursor can jump by an offset and subtract positions in O(1).
// c.Sub(o) is the signed number of steps from o to c.
type RandomCursor[C any] interface {
	BidiCursor[C]
	Jump(n int) C
	Sub(other C) int
}

// Categorized cursors declare their tag explicitly. A declaration can only
// narrow what the cursor's method set provides.
type Categorized interface {
	Category() Tag
}

// Source is a cursor that yields values of type T.
type Source[C, T any] interface {
	Cursor[C]
	Value() T
}

// Slot is a Source whose current element is addressable.
type Slot[C, T any] interface {
	Source[C, T]
	Ref() *T
}

// TagOf returns the most specific tag c supports.
func TagOf[C Cursor[C]](c C) Tag {
	tag := Input
	switch any(c).(type) {
	case RandomCursor[C]:
		tag = RandomAccess
	case BidiCursor[C]:
		tag = Bidirectional
	}
	if cc, ok := any(c).(Categorized); ok {
		if d := cc.Category(); d == Output || d < tag {
			return d
		}
	}
	return tag
}

// CursorTraits classifies a cursor type.
type CursorTraits struct {
	Tag      Tag
	Elem     reflect.Type
	Distance reflect.Type
}

// TraitsOf returns the traits of c. Distances are always int, the Go type of
// index and pointer-offset differences.
func TraitsOf[T any, C Source[C, T]](c C) CursorTraits {
	return CursorTraits{
		Tag:      TagOf(c),
		Elem:     reflect.TypeFor[T](),
		Distance: reflect.TypeFor[int](),
	}
}
