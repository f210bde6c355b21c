package rawmem

// Distance returns the number of steps from first to last.
//
// Random-access cursors answer with a single subtraction. Any other cursor is
// stepped forward from first until it equals last, so last must be reachable
// from first; if it is not, Distance does not return. Input cursors are
// consumed by the walk.
func Distance[C Cursor[C]](first, last C) int {
	if TagOf(first) == RandomAccess {
		return any(last).(RandomCursor[C]).Sub(first)
	}
	n := 0
	for ; !first.Equal(last); first = first.Next() {
		n++
	}
	return n
}

// Advance returns c moved by n steps.
//
// Random-access cursors jump directly. Bidirectional cursors step one at a
// time in either direction. Input, forward and output cursors only step
// forward; a negative n for them is a caller error and moves nothing.
func Advance[C Cursor[C]](c C, n int) C {
	switch TagOf(c) {
	case RandomAccess:
		return any(c).(RandomCursor[C]).Jump(n)
	case Bidirectional:
		for ; n < 0; n++ {
			c = any(c).(BidiCursor[C]).Prev()
		}
	}
	for ; n > 0; n-- {
		c = c.Next()
	}
	return c
}
