//go:build !staticize_minimal

package containers

import (
	"cmp"

	"github.com/emirpasic/gods/v2/lists/arraylist"
	"github.com/emirpasic/gods/v2/lists/doublylinkedlist"
	"github.com/emirpasic/gods/v2/maps/treemap"
	"github.com/emirpasic/gods/v2/queues/priorityqueue"
	"github.com/emirpasic/gods/v2/sets/treeset"
	"github.com/gammazero/deque"
)

// Full bindings: the general-purpose collection library. The minimal
// build rebinds these names without touching any rule.

// Sequence is the owned growable sequence binding
type Sequence[T comparable] = arraylist.List[T]

// OrderedMap is the ordered key-value map binding
type OrderedMap[K cmp.Ordered, V any] = treemap.Map[K, V]

// OrderedSet is the ordered set binding
type OrderedSet[T cmp.Ordered] = treeset.Set[T]

// PriorityQueue is the priority queue binding
type PriorityQueue[T cmp.Ordered] = priorityqueue.Queue[T]

// LinkedList is the doubly-linked list binding
type LinkedList[T comparable] = doublylinkedlist.List[T]

// Deque is the double-ended queue binding
type Deque[T any] = deque.Deque[T]
