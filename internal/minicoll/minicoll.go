// Package minicoll holds the allocation-only collection bindings used
// when the module is built with the staticize_minimal tag. They carry
// the same type-parameter shapes as the full bindings so the container
// projection rules are unchanged; only the concrete symbols differ.
package minicoll

import (
	"cmp"
	"slices"
)

// Sequence is a growable slice-backed sequence
type Sequence[T comparable] struct {
	items []T
}

// Append adds values to the end of the sequence
func (s *Sequence[T]) Append(values ...T) {
	s.items = append(s.items, values...)
}

// At returns the value at index i
func (s *Sequence[T]) At(i int) T {
	return s.items[i]
}

// Len returns the number of values
func (s *Sequence[T]) Len() int {
	return len(s.items)
}

// Values returns the backing slice
func (s *Sequence[T]) Values() []T {
	return s.items
}

// OrderedMap is a map with keys kept in sorted order
type OrderedMap[K cmp.Ordered, V any] struct {
	keys   []K
	values []V
}

// Put inserts or replaces the value for key
func (m *OrderedMap[K, V]) Put(key K, value V) {
	i, found := slices.BinarySearch(m.keys, key)
	if found {
		m.values[i] = value
		return
	}
	m.keys = slices.Insert(m.keys, i, key)
	m.values = slices.Insert(m.values, i, value)
}

// Get returns the value for key and whether it is present
func (m *OrderedMap[K, V]) Get(key K) (V, bool) {
	i, found := slices.BinarySearch(m.keys, key)
	if !found {
		var zero V
		return zero, false
	}
	return m.values[i], true
}

// Len returns the number of entries
func (m *OrderedMap[K, V]) Len() int {
	return len(m.keys)
}

// Keys returns the keys in sorted order
func (m *OrderedMap[K, V]) Keys() []K {
	return m.keys
}

// OrderedSet is a set with values kept in sorted order
type OrderedSet[T cmp.Ordered] struct {
	items []T
}

// Add inserts a value if not already present
func (s *OrderedSet[T]) Add(value T) {
	i, found := slices.BinarySearch(s.items, value)
	if found {
		return
	}
	s.items = slices.Insert(s.items, i, value)
}

// Has reports whether value is present
func (s *OrderedSet[T]) Has(value T) bool {
	_, found := slices.BinarySearch(s.items, value)
	return found
}

// Len returns the number of values
func (s *OrderedSet[T]) Len() int {
	return len(s.items)
}

// Values returns the values in sorted order
func (s *OrderedSet[T]) Values() []T {
	return s.items
}

// PriorityQueue is a binary min-heap
type PriorityQueue[T cmp.Ordered] struct {
	items []T
}

// Push adds a value to the queue
func (q *PriorityQueue[T]) Push(value T) {
	q.items = append(q.items, value)
	i := len(q.items) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if q.items[parent] <= q.items[i] {
			break
		}
		q.items[parent], q.items[i] = q.items[i], q.items[parent]
		i = parent
	}
}

// Pop removes and returns the smallest value
func (q *PriorityQueue[T]) Pop() (T, bool) {
	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	top := q.items[0]
	last := len(q.items) - 1
	q.items[0] = q.items[last]
	q.items = q.items[:last]
	i := 0
	for {
		left, right := 2*i+1, 2*i+2
		smallest := i
		if left < len(q.items) && q.items[left] < q.items[smallest] {
			smallest = left
		}
		if right < len(q.items) && q.items[right] < q.items[smallest] {
			smallest = right
		}
		if smallest == i {
			break
		}
		q.items[i], q.items[smallest] = q.items[smallest], q.items[i]
		i = smallest
	}
	return top, true
}

// Len returns the number of values
func (q *PriorityQueue[T]) Len() int {
	return len(q.items)
}

type node[T any] struct {
	value T
	prev  *node[T]
	next  *node[T]
}

// LinkedList is a doubly linked list
type LinkedList[T comparable] struct {
	head *node[T]
	tail *node[T]
	size int
}

// PushBack appends a value to the list
func (l *LinkedList[T]) PushBack(value T) {
	n := &node[T]{value: value, prev: l.tail}
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
	l.size++
}

// PushFront prepends a value to the list
func (l *LinkedList[T]) PushFront(value T) {
	n := &node[T]{value: value, next: l.head}
	if l.head != nil {
		l.head.prev = n
	} else {
		l.tail = n
	}
	l.head = n
	l.size++
}

// Len returns the number of values
func (l *LinkedList[T]) Len() int {
	return l.size
}

// Values returns the values front to back
func (l *LinkedList[T]) Values() []T {
	out := make([]T, 0, l.size)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

// Deque is a slice-backed double-ended queue
type Deque[T any] struct {
	items []T
}

// PushBack appends a value
func (d *Deque[T]) PushBack(value T) {
	d.items = append(d.items, value)
}

// PushFront prepends a value
func (d *Deque[T]) PushFront(value T) {
	d.items = append([]T{value}, d.items...)
}

// PopFront removes and returns the first value
func (d *Deque[T]) PopFront() (T, bool) {
	if len(d.items) == 0 {
		var zero T
		return zero, false
	}
	v := d.items[0]
	d.items = d.items[1:]
	return v, true
}

// PopBack removes and returns the last value
func (d *Deque[T]) PopBack() (T, bool) {
	if len(d.items) == 0 {
		var zero T
		return zero, false
	}
	v := d.items[len(d.items)-1]
	d.items = d.items[:len(d.items)-1]
	return v, true
}

// Len returns the number of values
func (d *Deque[T]) Len() int {
	return len(d.items)
}
