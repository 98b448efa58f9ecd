//go:build staticize_minimal

package containers

import (
	"cmp"

	"github.com/arthur-debert/staticize/internal/minicoll"
)

// Minimal bindings: allocation-only collections, for builds that must
// not pull in the general-purpose collection library.

// Sequence is the owned growable sequence binding
type Sequence[T comparable] = minicoll.Sequence[T]

// OrderedMap is the ordered key-value map binding
type OrderedMap[K cmp.Ordered, V any] = minicoll.OrderedMap[K, V]

// OrderedSet is the ordered set binding
type OrderedSet[T cmp.Ordered] = minicoll.OrderedSet[T]

// PriorityQueue is the priority queue binding
type PriorityQueue[T cmp.Ordered] = minicoll.PriorityQueue[T]

// LinkedList is the doubly-linked list binding
type LinkedList[T comparable] = minicoll.LinkedList[T]

// Deque is the double-ended queue binding
type Deque[T any] = minicoll.Deque[T]
