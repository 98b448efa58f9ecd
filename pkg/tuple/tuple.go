// Package tuple provides fixed-arity product types T1 through T16 with
// component-wise projections. The declarations are mechanical expansions
// of one template; a wider arity is added by instantiating the same
// template with one more component, there is no arity rule beyond the
// declared types.
package tuple

import (
	"reflect"

	"github.com/arthur-debert/staticize/pkg/shape"
	"github.com/arthur-debert/staticize/pkg/staticize"
)

// T1 is the 1-tuple
type T1[A any] struct {
	A A
}

// T2 is the 2-tuple
type T2[A, B any] struct {
	A A
	B B
}

// T3 is the 3-tuple
type T3[A, B, C any] struct {
	A A
	B B
	C C
}

// T4 is the 4-tuple
type T4[A, B, C, D any] struct {
	A A
	B B
	C C
	D D
}

// T5 is the 5-tuple
type T5[A, B, C, D, E any] struct {
	A A
	B B
	C C
	D D
	E E
}

// T6 is the 6-tuple
type T6[A, B, C, D, E, F any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
}

// T7 is the 7-tuple
type T7[A, B, C, D, E, F, G any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
}

// T8 is the 8-tuple
type T8[A, B, C, D, E, F, G, H any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
}

// T9 is the 9-tuple
type T9[A, B, C, D, E, F, G, H, I any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
	I I
}

// T10 is the 10-tuple
type T10[A, B, C, D, E, F, G, H, I, J any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
	I I
	J J
}

// T11 is the 11-tuple
type T11[A, B, C, D, E, F, G, H, I, J, K any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
	I I
	J J
	K K
}

// T12 is the 12-tuple
type T12[A, B, C, D, E, F, G, H, I, J, K, L any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
	I I
	J J
	K K
	L L
}

// T13 is the 13-tuple
type T13[A, B, C, D, E, F, G, H, I, J, K, L, M any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
	I I
	J J
	K K
	L L
	M M
}

// T14 is the 14-tuple
type T14[A, B, C, D, E, F, G, H, I, J, K, L, M, N any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
	I I
	J J
	K K
	L L
	M M
	N N
}

// T15 is the 15-tuple
type T15[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
	I I
	J J
	K K
	L L
	M M
	N N
	O O
}

// T16 is the 16-tuple
type T16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P any] struct {
	A A
	B B
	C C
	D D
	E E
	F F
	G G
	H H
	I I
	J J
	K K
	L L
	M M
	N N
	O O
	P P
}

func typeFor[T any]() reflect.Type {
	return staticize.TypeFor[T]()
}

// TypeComponents returns the component types of the instantiation
func (T1[A]) TypeComponents() []reflect.Type {
	return []reflect.Type{typeFor[A]()}
}

// TypeComponents returns the component types of the instantiation
func (T2[A, B]) TypeComponents() []reflect.Type {
	return []reflect.Type{typeFor[A](), typeFor[B]()}
}

// TypeComponents returns the component types of the instantiation
func (T3[A, B, C]) TypeComponents() []reflect.Type {
	return []reflect.Type{typeFor[A](), typeFor[B](), typeFor[C]()}
}

// TypeComponents returns the component types of the instantiation
func (T4[A, B, C, D]) TypeComponents() []reflect.Type {
	return []reflect.Type{typeFor[A](), typeFor[B](), typeFor[C](), typeFor[D]()}
}

// TypeComponents returns the component types of the instantiation
func (T5[A, B, C, D, E]) TypeComponents() []reflect.Type {
	return []reflect.Type{typeFor[A](), typeFor[B](), typeFor[C](), typeFor[D](), typeFor[E]()}
}

// TypeComponents returns the component types of the instantiation
func (T6[A, B, C, D, E, F]) TypeComponents() []reflect.Type {
	return []reflect.Type{typeFor[A](), typeFor[B](), typeFor[C](), typeFor[D](), typeFor[E](), typeFor[F]()}
}

// TypeComponents returns the component types of the instantiation
func (T7[A, B, C, D, E, F, G]) TypeComponents() []reflect.Type {
	return []reflect.Type{typeFor[A](), typeFor[B](), typeFor[C](), typeFor[D](), typeFor[E](), typeFor[F](), typeFor[G]()}
}

// TypeComponents returns the component types of the instantiation
func (T8[A, B, C, D, E, F, G, H]) TypeComponents() []reflect.Type {
	return []reflect.Type{typeFor[A](), typeFor[B](), typeFor[C](), typeFor[D](), typeFor[E](), typeFor[F](), typeFor[G](), typeFor[H]()}
}

// TypeComponents returns the component types of the instantiation
func (T9[A, B, C, D, E, F, G, H, I]) TypeComponents() []reflect.Type {
	return []reflect.Type{typeFor[A](), typeFor[B](), typeFor[C](), typeFor[D](), typeFor[E](), typeFor[F](), typeFor[G](), typeFor[H](), typeFor[I]()}
}

// TypeComponents returns the component types of the instantiation
func (T10[A, B, C, D, E, F, G, H, I, J]) TypeComponents() []reflect.Type {
	return []reflect.Type{typeFor[A](), typeFor[B](), typeFor[C](), typeFor[D](), typeFor[E](), typeFor[F](), typeFor[G](), typeFor[H](), typeFor[I](), typeFor[J]()}
}

// TypeComponents returns the component types of the instantiation
func (T11[A, B, C, D, E, F, G, H, I, J, K]) TypeComponents() []reflect.Type {
	return []reflect.Type{typeFor[A](), typeFor[B](), typeFor[C](), typeFor[D](), typeFor[E](), typeFor[F](), typeFor[G](), typeFor[H](), typeFor[I](), typeFor[J](), typeFor[K]()}
}

// TypeComponents returns the component types of the instantiation
func (T12[A, B, C, D, E, F, G, H, I, J, K, L]) TypeComponents() []reflect.Type {
	return []reflect.Type{typeFor[A](), typeFor[B](), typeFor[C](), typeFor[D](), typeFor[E](), typeFor[F](), typeFor[G](), typeFor[H](), typeFor[I](), typeFor[J](), typeFor[K](), typeFor[L]()}
}

// TypeComponents returns the component types of the instantiation
func (T13[A, B, C, D, E, F, G, H, I, J, K, L, M]) TypeComponents() []reflect.Type {
	return []reflect.Type{typeFor[A](), typeFor[B](), typeFor[C](), typeFor[D](), typeFor[E](), typeFor[F](), typeFor[G](), typeFor[H](), typeFor[I](), typeFor[J](), typeFor[K](), typeFor[L](), typeFor[M]()}
}

// TypeComponents returns the component types of the instantiation
func (T14[A, B, C, D, E, F, G, H, I, J, K, L, M, N]) TypeComponents() []reflect.Type {
	return []reflect.Type{typeFor[A](), typeFor[B](), typeFor[C](), typeFor[D](), typeFor[E](), typeFor[F](), typeFor[G](), typeFor[H](), typeFor[I](), typeFor[J](), typeFor[K](), typeFor[L](), typeFor[M](), typeFor[N]()}
}

// TypeComponents returns the component types of the instantiation
func (T15[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O]) TypeComponents() []reflect.Type {
	return []reflect.Type{typeFor[A](), typeFor[B](), typeFor[C](), typeFor[D](), typeFor[E](), typeFor[F](), typeFor[G](), typeFor[H](), typeFor[I](), typeFor[J](), typeFor[K](), typeFor[L](), typeFor[M](), typeFor[N](), typeFor[O]()}
}

// TypeComponents returns the component types of the instantiation
func (T16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P]) TypeComponents() []reflect.Type {
	return []reflect.Type{typeFor[A](), typeFor[B](), typeFor[C](), typeFor[D](), typeFor[E](), typeFor[F](), typeFor[G](), typeFor[H](), typeFor[I](), typeFor[J](), typeFor[K](), typeFor[L](), typeFor[M](), typeFor[N](), typeFor[O](), typeFor[P]()}
}

// ShapeKind reports the tuple shape
func (T1[A]) ShapeKind() shape.Kind { return shape.Tuple }

// ShapeKind reports the tuple shape
func (T2[A, B]) ShapeKind() shape.Kind { return shape.Tuple }

// ShapeKind reports the tuple shape
func (T3[A, B, C]) ShapeKind() shape.Kind { return shape.Tuple }

// ShapeKind reports the tuple shape
func (T4[A, B, C, D]) ShapeKind() shape.Kind { return shape.Tuple }

// ShapeKind reports the tuple shape
func (T5[A, B, C, D, E]) ShapeKind() shape.Kind { return shape.Tuple }

// ShapeKind reports the tuple shape
func (T6[A, B, C, D, E, F]) ShapeKind() shape.Kind { return shape.Tuple }

// ShapeKind reports the tuple shape
func (T7[A, B, C, D, E, F, G]) ShapeKind() shape.Kind { return shape.Tuple }

// ShapeKind reports the tuple shape
func (T8[A, B, C, D, E, F, G, H]) ShapeKind() shape.Kind { return shape.Tuple }

// ShapeKind reports the tuple shape
func (T9[A, B, C, D, E, F, G, H, I]) ShapeKind() shape.Kind { return shape.Tuple }

// ShapeKind reports the tuple shape
func (T10[A, B, C, D, E, F, G, H, I, J]) ShapeKind() shape.Kind { return shape.Tuple }

// ShapeKind reports the tuple shape
func (T11[A, B, C, D, E, F, G, H, I, J, K]) ShapeKind() shape.Kind { return shape.Tuple }

// ShapeKind reports the tuple shape
func (T12[A, B, C, D, E, F, G, H, I, J, K, L]) ShapeKind() shape.Kind { return shape.Tuple }

// ShapeKind reports the tuple shape
func (T13[A, B, C, D, E, F, G, H, I, J, K, L, M]) ShapeKind() shape.Kind { return shape.Tuple }

// ShapeKind reports the tuple shape
func (T14[A, B, C, D, E, F, G, H, I, J, K, L, M, N]) ShapeKind() shape.Kind { return shape.Tuple }

// ShapeKind reports the tuple shape
func (T15[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O]) ShapeKind() shape.Kind { return shape.Tuple }

// ShapeKind reports the tuple shape
func (T16[A, B, C, D, E, F, G, H, I, J, K, L, M, N, O, P]) ShapeKind() shape.Kind { return shape.Tuple }
