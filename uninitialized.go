package rawmem

// Range operations over raw storage.
//
// Each operation constructs into dest from the front. dest[:stable] is live and
// dest[stable:] is raw at every step; when a construction fails, or a hook
// panics, dest[:stable] is destroyed again so the caller sees all-raw storage.
// dest must be long enough for the whole source; nothing is allocated.

// stableBoundary tracks how much of dest is live.
type stableBoundary[T any] struct {
	lc     lifecycle[T]
	dest   []T
	stable int
	done   bool
}

// rollback is deferred by every elementwise operation.
func (b *stableBoundary[T]) rollback() {
	if !b.done {
		destroyRange(b.lc, b.dest[:b.stable])
	}
}

func (b *stableBoundary[T]) fail(op string, err error) error {
	return &ConstructionError{Op: op, Index: b.stable, Err: err}
}

func (b *stableBoundary[T]) commit() int {
	b.done = true
	return b.stable
}

func assign[T any](dst, src *T) error {
	*dst = *src
	return nil
}

// contiguous returns the elements of [first, last) when both are unrestricted
// slice cursors.
func contiguous[T any, C any](first, last C) ([]T, bool) {
	f, ok := any(first).(SliceCursor[T])
	if !ok || f.Category() != RandomAccess {
		return nil, false
	}
	return f.span(any(last).(SliceCursor[T])), true
}

func contiguousN[T any, C any](first C, n int) ([]T, bool) {
	f, ok := any(first).(SliceCursor[T])
	if !ok || f.Category() != RandomAccess {
		return nil, false
	}
	return f.span(f.Jump(n)), true
}

// Copy copy-constructs each value of [first, last) into dest and returns the
// number of slots constructed.
//
// For POD types a slice source is copied with a single memmove and any other
// source by plain assignment; neither can fail. Other types go through
// ConstructValue one slot at a time.
func Copy[T any, C Source[C, T]](first, last C, dest []T) (int, error) {
	lc := lifecycleOf[T]()
	step := lc.copy
	if lc.facts.POD {
		if src, ok := contiguous[T](first, last); ok {
			return copy(dest[:len(src)], src), nil
		}
		step = assign[T]
	}

	b := &stableBoundary[T]{lc: lc, dest: dest}
	defer b.rollback()
	for ; !first.Equal(last); first = first.Next() {
		v := first.Value()
		if err := step(&dest[b.stable], &v); err != nil {
			return 0, b.fail("copy", err)
		}
		b.stable++
	}
	return b.commit(), nil
}

// CopyN is Copy driven by a count. The source is advanced only between
// elements, so an input stream is not read past its n-th value.
func CopyN[T any, C Source[C, T]](first C, n int, dest []T) (int, error) {
	if n <= 0 {
		return 0, nil
	}
	lc := lifecycleOf[T]()
	step := lc.copy
	if lc.facts.POD {
		if src, ok := contiguousN[T](first, n); ok {
			return copy(dest[:n], src), nil
		}
		step = assign[T]
	}

	b := &stableBoundary[T]{lc: lc, dest: dest}
	defer b.rollback()
	for {
		v := first.Value()
		if err := step(&dest[b.stable], &v); err != nil {
			return 0, b.fail("copy", err)
		}
		b.stable++
		if b.stable == n {
			break
		}
		first = first.Next()
	}
	return b.commit(), nil
}

// Fill copy-constructs v into every slot of dest.
func Fill[T any](dest []T, v T) error {
	_, err := FillN(dest, len(dest), v)
	return err
}

// FillN copy-constructs v into dest[:n] and returns n.
func FillN[T any](dest []T, n int, v T) (int, error) {
	if n <= 0 {
		return 0, nil
	}
	dest = dest[:n]
	lc := lifecycleOf[T]()
	if lc.facts.POD {
		fillPattern(dest, v)
		return n, nil
	}

	b := &stableBoundary[T]{lc: lc, dest: dest}
	defer b.rollback()
	for b.stable < n {
		if err := lc.copy(&dest[b.stable], &v); err != nil {
			return 0, b.fail("fill", err)
		}
		b.stable++
	}
	return b.commit(), nil
}

// fillPattern writes v once and then doubles the written prefix until dest is
// full.
func fillPattern[T any](dest []T, v T) {
	dest[0] = v
	for filled := 1; filled < len(dest); filled *= 2 {
		copy(dest[filled:], dest[:filled])
	}
}

// Move constructs each slot of dest by taking over the corresponding source
// value. POD types are copied. For other types each consumed source slot is
// left moved-from, and stays so if a later slot fails.
func Move[T any, C Slot[C, T]](first, last C, dest []T) (int, error) {
	lc := lifecycleOf[T]()
	if lc.facts.POD {
		return Copy[T](first, last, dest)
	}

	b := &stableBoundary[T]{lc: lc, dest: dest}
	defer b.rollback()
	for ; !first.Equal(last); first = first.Next() {
		if err := lc.move(&dest[b.stable], first.Ref()); err != nil {
			return 0, b.fail("move", err)
		}
		b.stable++
	}
	return b.commit(), nil
}

// MoveN is Move driven by a count.
func MoveN[T any, C Slot[C, T]](first C, n int, dest []T) (int, error) {
	if n <= 0 {
		return 0, nil
	}
	lc := lifecycleOf[T]()
	if lc.facts.POD {
		return CopyN[T](first, n, dest)
	}

	b := &stableBoundary[T]{lc: lc, dest: dest}
	defer b.rollback()
	for {
		if err := lc.move(&dest[b.stable], first.Ref()); err != nil {
			return 0, b.fail("move", err)
		}
		b.stable++
		if b.stable == n {
			break
		}
		first = first.Next()
	}
	return b.commit(), nil
}

// ConstructRange default-constructs every slot of dest. Types whose zero value
// is their default, and that have no Init hook, are cleared in one pass.
func ConstructRange[T any](dest []T) error {
	lc := lifecycleOf[T]()
	if lc.facts.TrivialDefault && !lc.hasInit {
		clear(dest)
		return nil
	}

	b := &stableBoundary[T]{lc: lc, dest: dest}
	defer b.rollback()
	for b.stable < len(dest) {
		if err := lc.init(&dest[b.stable]); err != nil {
			return b.fail("construct", err)
		}
		b.stable++
	}
	b.commit()
	return nil
}
