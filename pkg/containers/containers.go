// Package containers registers container projections: sequence, ordered
// map, ordered set, priority queue, linked list and double-ended queue.
// Every kind follows the identical component-wise pattern; the
// staticize_minimal build tag selects which concrete collection symbols
// the rules bind to without changing any rule's shape.
package containers

import (
	"cmp"

	"github.com/arthur-debert/staticize/pkg/shape"
	"github.com/arthur-debert/staticize/pkg/staticize"
)

// RegisterSequence registers Sequence[T] as its own counterpart. T must
// be self-contained.
func RegisterSequence[T comparable]() error {
	return RegisterSequenceAs[T, T]()
}

// RegisterSequenceAs registers Static(Sequence[T]) = Sequence[S]
func RegisterSequenceAs[T, S comparable]() error {
	if err := staticize.CheckProjection(staticize.TypeFor[T](), staticize.TypeFor[S]()); err != nil {
		return err
	}
	return staticize.Default.RegisterAs(
		staticize.TypeFor[Sequence[T]](), staticize.TypeFor[Sequence[S]](), shape.Container)
}

// RegisterOrderedMap registers OrderedMap[K, V] as its own counterpart.
// Both parameters must be self-contained.
func RegisterOrderedMap[K cmp.Ordered, V any]() error {
	return RegisterOrderedMapAs[K, K, V, V]()
}

// RegisterOrderedMapAs registers Static(OrderedMap[K, V]) = OrderedMap[SK, SV]
func RegisterOrderedMapAs[K, SK cmp.Ordered, V, SV any]() error {
	if err := staticize.CheckProjection(staticize.TypeFor[K](), staticize.TypeFor[SK]()); err != nil {
		return err
	}
	if err := staticize.CheckProjection(staticize.TypeFor[V](), staticize.TypeFor[SV]()); err != nil {
		return err
	}
	return staticize.Default.RegisterAs(
		staticize.TypeFor[OrderedMap[K, V]](), staticize.TypeFor[OrderedMap[SK, SV]](), shape.Container)
}

// RegisterOrderedSet registers OrderedSet[T] as its own counterpart. T
// must be self-contained.
func RegisterOrderedSet[T cmp.Ordered]() error {
	return RegisterOrderedSetAs[T, T]()
}

// RegisterOrderedSetAs registers Static(OrderedSet[T]) = OrderedSet[S]
func RegisterOrderedSetAs[T, S cmp.Ordered]() error {
	if err := staticize.CheckProjection(staticize.TypeFor[T](), staticize.TypeFor[S]()); err != nil {
		return err
	}
	return staticize.Default.RegisterAs(
		staticize.TypeFor[OrderedSet[T]](), staticize.TypeFor[OrderedSet[S]](), shape.Container)
}

// RegisterPriorityQueue registers PriorityQueue[T] as its own
// counterpart. T must be self-contained.
func RegisterPriorityQueue[T cmp.Ordered]() error {
	return RegisterPriorityQueueAs[T, T]()
}

// RegisterPriorityQueueAs registers Static(PriorityQueue[T]) = PriorityQueue[S]
func RegisterPriorityQueueAs[T, S cmp.Ordered]() error {
	if err := staticize.CheckProjection(staticize.TypeFor[T](), staticize.TypeFor[S]()); err != nil {
		return err
	}
	return staticize.Default.RegisterAs(
		staticize.TypeFor[PriorityQueue[T]](), staticize.TypeFor[PriorityQueue[S]](), shape.Container)
}

// RegisterLinkedList registers LinkedList[T] as its own counterpart. T
// must be self-contained.
func RegisterLinkedList[T comparable]() error {
	return RegisterLinkedListAs[T, T]()
}

// RegisterLinkedListAs registers Static(LinkedList[T]) = LinkedList[S]
func RegisterLinkedListAs[T, S comparable]() error {
	if err := staticize.CheckProjection(staticize.TypeFor[T](), staticize.TypeFor[S]()); err != nil {
		return err
	}
	return staticize.Default.RegisterAs(
		staticize.TypeFor[LinkedList[T]](), staticize.TypeFor[LinkedList[S]](), shape.Container)
}

// RegisterDeque registers Deque[T] as its own counterpart. T must be
// self-contained.
func RegisterDeque[T any]() error {
	return RegisterDequeAs[T, T]()
}

// RegisterDequeAs registers Static(Deque[T]) = Deque[S]
func RegisterDequeAs[T, S any]() error {
	if err := staticize.CheckProjection(staticize.TypeFor[T](), staticize.TypeFor[S]()); err != nil {
		return err
	}
	return staticize.Default.RegisterAs(
		staticize.TypeFor[Deque[T]](), staticize.TypeFor[Deque[S]](), shape.Container)
}
