package rawmem

import (
	"container/list"
	"reflect"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagSatisfies(t *testing.T) {
	tests := []struct {
		have, need Tag
		want       bool
	}{
		{RandomAccess, Bidirectional, true},
		{RandomAccess, Input, true},
		{Bidirectional, Forward, true},
		{Forward, Input, true},
		{Input, Forward, false},
		{Forward, Bidirectional, false},
		{Bidirectional, RandomAccess, false},
		{Output, Output, true},
		{Output, Input, false},
		{RandomAccess, Output, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.have.Satisfies(tt.need), "%s satisfies %s", tt.have, tt.need)
	}
}

func TestTagString(t *testing.T) {
	assert.Equal(t, "output", Output.String())
	assert.Equal(t, "random-access", RandomAccess.String())
	assert.Equal(t, "unknown", Tag(42).String())
}

// plainCursor implements only Cursor and declares nothing.
type plainCursor struct{ i int }

func (c plainCursor) Next() plainCursor { return plainCursor{c.i + 1} }
func (c plainCursor) Equal(o plainCursor) bool { return c.i == o.i }

// bragCursor claims random access while only stepping forward.
type bragCursor struct{ plainCursor }

func (bragCursor) Category() Tag { return RandomAccess }
func (c bragCursor) Next() bragCursor { return bragCursor{c.plainCursor.Next()} }
func (c bragCursor) Equal(o bragCursor) bool { return c.i == o.i }

func TestTagOf(t *testing.T) {
	s := []int{1, 2, 3}
	l := list.New()
	first, _, stop := FromSeq(slices.Values(s))
	defer stop()

	assert.Equal(t, RandomAccess, TagOf(Begin(s)))
	assert.Equal(t, Bidirectional, TagOf(Begin(s).Restrict(Bidirectional)))
	assert.Equal(t, Forward, TagOf(Begin(s).Restrict(Forward)))
	assert.Equal(t, Input, TagOf(Begin(s).Restrict(Input)))
	assert.Equal(t, Output, TagOf(Begin(s).Restrict(Output)))
	assert.Equal(t, Bidirectional, TagOf(ListBegin[int](l)))
	assert.Equal(t, Input, TagOf(first))
	assert.Equal(t, Input, TagOf(plainCursor{}))
	assert.Equal(t, Input, TagOf(bragCursor{}), "declarations cannot widen the method set")
}

func TestRestrictSurvivesSteps(t *testing.T) {
	c := Begin([]int{1, 2, 3}).Restrict(Forward)
	assert.Equal(t, Forward, TagOf(c.Next().Next()))
}

func TestTraitsOf(t *testing.T) {
	s := []float64{1, 2}
	got := TraitsOf[float64](Begin(s))
	assert.Equal(t, CursorTraits{
		Tag:      RandomAccess,
		Elem:     reflect.TypeFor[float64](),
		Distance: reflect.TypeFor[int](),
	}, got)

	l := list.New()
	assert.Equal(t, Bidirectional, TraitsOf[string](ListBegin[string](l)).Tag)
}

func TestSliceCursor(t *testing.T) {
	s := []string{"a", "b", "c", "d"}
	c := Begin(s)

	assert.Equal(t, "a", c.Value())
	assert.Equal(t, "c", c.Jump(2).Value())
	assert.Equal(t, "b", c.Jump(2).Prev().Value())
	assert.Equal(t, 3, At(s, 3).Index())
	assert.Equal(t, 4, End(s).Sub(c))
	assert.Equal(t, -4, c.Sub(End(s)))
	assert.True(t, c.Jump(4).Equal(End(s)))

	*c.Next().Ref() = "B"
	assert.Equal(t, "B", s[1])
}

func TestListCursor(t *testing.T) {
	l := list.New()
	for _, v := range []int{10, 20, 30} {
		l.PushBack(v)
	}

	var got []int
	for c := ListBegin[int](l); !c.Equal(ListEnd[int](l)); c = c.Next() {
		got = append(got, c.Value())
	}
	assert.Equal(t, []int{10, 20, 30}, got)

	last := ListEnd[int](l).Prev()
	assert.Equal(t, 30, last.Value())
	assert.Equal(t, 20, last.Prev().Value())
	assert.True(t, ListBegin[int](l).Prev().Equal(ListEnd[int](l)), "before-front is the nil element")
}

func TestSeqCursor(t *testing.T) {
	first, last, stop := FromSeq(slices.Values([]int{4, 5, 6}))
	defer stop()

	var got []int
	for c := first; !c.Equal(last); c = c.Next() {
		got = append(got, c.Value())
	}
	assert.Equal(t, []int{4, 5, 6}, got)
	assert.True(t, last.Equal(last))
}

func TestSeqCursorEmpty(t *testing.T) {
	first, last, stop := FromSeq(slices.Values([]int(nil)))
	defer stop()

	require.True(t, first.Equal(last))
	require.True(t, last.Equal(first))
}
