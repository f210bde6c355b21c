package rawmem

import (
	"container/list"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stepCounter counts single steps so tests can tell O(1) from O(n).
type stepCounter struct {
	i     int
	steps *int
}

func (c stepCounter) Next() stepCounter {
	*c.steps++
	return stepCounter{c.i + 1, c.steps}
}

func (c stepCounter) Prev() stepCounter {
	*c.steps++
	return stepCounter{c.i - 1, c.steps}
}

func (c stepCounter) Jump(n int) stepCounter { return stepCounter{c.i + n, c.steps} }
func (c stepCounter) Sub(o stepCounter) int { return c.i - o.i }
func (c stepCounter) Equal(o stepCounter) bool { return c.i == o.i }

func TestDistance(t *testing.T) {
	const m = 37
	s := make([]int, m)

	for _, tag := range []Tag{RandomAccess, Bidirectional, Forward, Input} {
		t.Run(tag.String(), func(t *testing.T) {
			first, last := Begin(s).Restrict(tag), End(s).Restrict(tag)
			assert.Equal(t, m, Distance(first, last))
		})
	}

	t.Run("seq", func(t *testing.T) {
		first, last, stop := FromSeq(slices.Values(s))
		defer stop()
		assert.Equal(t, m, Distance(first, last))
	})

	t.Run("list", func(t *testing.T) {
		l := list.New()
		for i := 0; i < m; i++ {
			l.PushBack(i)
		}
		assert.Equal(t, m, Distance(ListBegin[int](l), ListEnd[int](l)))
	})
}

func TestDistanceEmptyAndNegative(t *testing.T) {
	s := []int{1, 2, 3}
	assert.Zero(t, Distance(Begin(s), Begin(s)))
	assert.Zero(t, Distance(Begin(s).Restrict(Input), Begin(s).Restrict(Input)))
	assert.Equal(t, -3, Distance(End(s), Begin(s)), "random access subtracts in either order")
}

func TestDistanceRandomAccessTakesNoSteps(t *testing.T) {
	steps := 0
	first := stepCounter{0, &steps}
	assert.Equal(t, 1000, Distance(first, first.Jump(1000)))
	assert.Zero(t, steps)
}

func TestAdvance(t *testing.T) {
	s := make([]int, 20)
	for i := range s {
		s[i] = i
	}

	for _, tag := range []Tag{RandomAccess, Bidirectional, Forward, Input} {
		t.Run(tag.String(), func(t *testing.T) {
			c := Advance(Begin(s).Restrict(tag), 7)
			assert.Equal(t, 7, c.Value())
			assert.Equal(t, 7, Advance(c, 0).Value())
		})
	}
}

func TestAdvanceSymmetry(t *testing.T) {
	s := make([]int, 12)
	l := list.New()
	for i := range s {
		s[i] = i
		l.PushBack(i)
	}

	for _, n := range []int{0, 1, 5} {
		start := At(s, 3).Restrict(Bidirectional)
		back := Advance(Advance(start, n), -n)
		assert.True(t, back.Equal(start), "slice n=%d", n)

		ls := Advance(ListBegin[int](l), 3)
		lback := Advance(Advance(ls, n), -n)
		assert.True(t, lback.Equal(ls), "list n=%d", n)
		assert.Equal(t, 3, lback.Value())
	}
}

func TestAdvanceStepCounts(t *testing.T) {
	steps := 0
	c := stepCounter{0, &steps}

	c = Advance(c, 50)
	assert.Equal(t, 50, c.i)
	assert.Zero(t, steps, "random access jumps")

	s := make([]int, 10)
	b := Advance(End(s).Restrict(Bidirectional), -4)
	assert.Equal(t, 6, b.Index())
}

func TestAdvanceInputIgnoresNegative(t *testing.T) {
	// Negative counts are a caller error for input cursors; the walk never
	// moves backwards.
	s := []int{1, 2, 3}
	c := At(s, 2).Restrict(Input)
	assert.Equal(t, 2, Advance(c, -1).Index())
}

func TestAdvanceSeq(t *testing.T) {
	first, last, stop := FromSeq(slices.Values([]string{"a", "b", "c"}))
	defer stop()

	c := Advance(first, 2)
	assert.Equal(t, "c", c.Value())
	assert.True(t, Advance(c, 1).Equal(last))
}
