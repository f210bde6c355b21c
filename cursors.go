package rawmem

import (
	"container/list"
	"iter"
)

// SliceCursor is a random-access cursor over a slice, the analogue of a raw
// element pointer. Two cursors compare equal when they sit at the same index;
// comparing cursors over different slices is meaningless.
type SliceCursor[T any] struct {
	s      []T
	i      int
	limit  Tag
	capped bool
}

// Begin returns a cursor at the first element of s.
func Begin[T any](s []T) SliceCursor[T] { return SliceCursor[T]{s: s} }

// End returns a cursor one past the last element of s.
func End[T any](s []T) SliceCursor[T] { return SliceCursor[T]{s: s, i: len(s)} }

// At returns a cursor at index i of s.
func At[T any](s []T, i int) SliceCursor[T] { return SliceCursor[T]{s: s, i: i} }

// Restrict returns a copy of c that reports tag t, so algorithms treat it as a
// weaker cursor. Cursors derived from the result keep the restriction.
func (c SliceCursor[T]) Restrict(t Tag) SliceCursor[T] {
	c.limit, c.capped = t, true
	return c
}

func (c SliceCursor[T]) Category() Tag {
	if c.capped {
		return c.limit
	}
	return RandomAccess
}

func (c SliceCursor[T]) Next() SliceCursor[T] {
	c.i++
	return c
}

func (c SliceCursor[T]) Prev() SliceCursor[T] {
	c.i--
	return c
}

func (c SliceCursor[T]) Jump(n int) SliceCursor[T] {
	c.i += n
	return c
}

func (c SliceCursor[T]) Sub(o SliceCursor[T]) int { return c.i - o.i }
func (c SliceCursor[T]) Equal(o SliceCursor[T]) bool { return c.i == o.i }
func (c SliceCursor[T]) Value() T { return c.s[c.i] }
func (c SliceCursor[T]) Ref() *T { return &c.s[c.i] }

// Index returns the cursor's position in its slice.
func (c SliceCursor[T]) Index() int { return c.i }

// span returns the elements in [c, last).
func (c SliceCursor[T]) span(last SliceCursor[T]) []T { return c.s[c.i:last.i] }

// ListCursor is a bidirectional cursor over a container/list whose elements
// hold values of type T. The end position is represented by a nil element.
type ListCursor[T any] struct {
	l *list.List
	e *list.Element
}

// ListBegin returns a cursor at the front of l.
func ListBegin[T any](l *list.List) ListCursor[T] { return ListCursor[T]{l: l, e: l.Front()} }

// ListEnd returns a cursor one past the back of l.
func ListEnd[T any](l *list.List) ListCursor[T] { return ListCursor[T]{l: l} }

func (c ListCursor[T]) Next() ListCursor[T] {
	c.e = c.e.Next()
	return c
}

// Prev steps backwards. Stepping back from the end yields the last element.
func (c ListCursor[T]) Prev() ListCursor[T] {
	if c.e == nil {
		c.e = c.l.Back()
	} else {
		c.e = c.e.Prev()
	}
	return c
}

func (c ListCursor[T]) Equal(o ListCursor[T]) bool { return c.e == o.e }
func (c ListCursor[T]) Value() T { return c.e.Value.(T) }

// seqState is shared by every cursor over one pulled sequence.
type seqState[T any] struct {
	next func() (T, bool)
	cur  T
	ok   bool
	pos  int
}

func (st *seqState[T]) pull() {
	st.cur, st.ok = st.next()
}

// SeqCursor is a single-pass input cursor over an iter.Seq. Copies of a
// SeqCursor share the underlying stream; only the most recently produced
// cursor may be advanced or read.
type SeqCursor[T any] struct {
	st  *seqState[T]
	pos int // -1 marks the end sentinel
}

// FromSeq starts pulling seq and returns the first cursor, the end sentinel,
// and a stop function that must be called once the cursors are no longer
// needed.
func FromSeq[T any](seq iter.Seq[T]) (first, last SeqCursor[T], stop func()) {
	next, stop := iter.Pull(seq)
	st := &seqState[T]{next: next}
	st.pull()
	return SeqCursor[T]{st: st}, SeqCursor[T]{st: st, pos: -1}, stop
}

func (c SeqCursor[T]) Category() Tag { return Input }

func (c SeqCursor[T]) Next() SeqCursor[T] {
	c.st.pull()
	c.st.pos++
	c.pos = c.st.pos
	return c
}

func (c SeqCursor[T]) Equal(o SeqCursor[T]) bool {
	switch {
	case c.pos < 0 && o.pos < 0:
		return true
	case c.pos < 0:
		return o.pos == o.st.pos && !o.st.ok
	case o.pos < 0:
		return c.pos == c.st.pos && !c.st.ok
	}
	return c.pos == o.pos
}

func (c SeqCursor[T]) Value() T { return c.st.cur }
