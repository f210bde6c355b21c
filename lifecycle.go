package rawmem

// Initializer is implemented by *T when default construction does more than
// produce the zero value.
type Initializer interface {
	Init() error
}

// Copier is implemented by *T when copy construction does more than assign.
type Copier[T any] interface {
	CopyFrom(src *T) error
}

// Mover is implemented by *T when construction can take over src's contents.
// src must be left valid; its value afterwards is up to the implementation.
type Mover[T any] interface {
	MoveFrom(src *T) error
}

// Destroyer is implemented by *T when destruction has side effects. Destroy
// must not fail.
type Destroyer interface {
	Destroy()
}

// Construct default-constructs a value in the raw slot p. On failure, including
// a panic in Init, p is left holding the zero value.
func Construct[T any](p *T) error {
	return lifecycleOf[T]().init(p)
}

// ConstructValue copy-constructs v into the raw slot p.
func ConstructValue[T any](p *T, v T) error {
	return lifecycleOf[T]().copy(p, &v)
}

// ConstructWith constructs into the raw slot p by calling build on it. The
// arguments travel in build's closure, so no intermediate T is created.
//
// If build fails or panics, p is left holding the zero value.
func ConstructWith[T any](p *T, build func(p *T) error) error {
	return constructIn(p, func() error { return build(p) })
}

// Destroy ends the life of the value at p. A nil p is ignored.
func Destroy[T any](p *T) {
	if p == nil {
		return
	}
	lifecycleOf[T]().destroy(p)
}

// DestroyRange destroys every value in s, front to back. Byte and rune
// sequences and trivially destructible types are skipped without visiting a
// single element.
func DestroyRange[T any](s []T) {
	switch any(s).(type) {
	case []byte, []rune:
		return
	}
	destroyRange(lifecycleOf[T](), s)
}
