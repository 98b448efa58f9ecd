package minicoll_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/staticize/internal/minicoll"
)

func TestSequence(t *testing.T) {
	var s minicoll.Sequence[string]
	s.Append("a", "b", "c")

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, "b", s.At(1))
	assert.Equal(t, []string{"a", "b", "c"}, s.Values())
}

func TestOrderedMap(t *testing.T) {
	var m minicoll.OrderedMap[string, int]
	m.Put("b", 2)
	m.Put("a", 1)
	m.Put("c", 3)
	m.Put("a", 10)

	assert.Equal(t, 3, m.Len())
	assert.Equal(t, []string{"a", "b", "c"}, m.Keys())

	v, ok := m.Get("a")
	require.True(t, ok)
	assert.Equal(t, 10, v)

	_, ok = m.Get("z")
	assert.False(t, ok)
}

func TestOrderedSet(t *testing.T) {
	var s minicoll.OrderedSet[int]
	s.Add(3)
	s.Add(1)
	s.Add(2)
	s.Add(1)

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Has(2))
	assert.False(t, s.Has(9))
	assert.Equal(t, []int{1, 2, 3}, s.Values())
}

func TestPriorityQueue(t *testing.T) {
	var q minicoll.PriorityQueue[int]
	for _, v := range []int{5, 1, 4, 2, 3} {
		q.Push(v)
	}

	assert.Equal(t, 5, q.Len())

	for want := 1; want <= 5; want++ {
		got, ok := q.Pop()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	_, ok := q.Pop()
	assert.False(t, ok)
}

func TestLinkedList(t *testing.T) {
	var l minicoll.LinkedList[string]
	l.PushBack("b")
	l.PushBack("c")
	l.PushFront("a")

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, []string{"a", "b", "c"}, l.Values())
}

func TestDeque(t *testing.T) {
	var d minicoll.Deque[int]
	d.PushBack(2)
	d.PushBack(3)
	d.PushFront(1)

	assert.Equal(t, 3, d.Len())

	front, ok := d.PopFront()
	require.True(t, ok)
	assert.Equal(t, 1, front)

	back, ok := d.PopBack()
	require.True(t, ok)
	assert.Equal(t, 3, back)

	assert.Equal(t, 1, d.Len())
}
