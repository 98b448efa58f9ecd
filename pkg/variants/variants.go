// Package variants provides the parametric value shapes the projection
// rules cover beyond containers: optional values, fallible results,
// two-armed early-exit control values, and interval endpoints. Each type
// projects component-wise; an instantiation whose components are all
// self-contained is its own counterpart.
package variants

import (
	"reflect"

	"github.com/arthur-debert/staticize/pkg/shape"
	"github.com/arthur-debert/staticize/pkg/staticize"
)

// Option holds a value or nothing
type Option[T any] struct {
	value T
	ok    bool
}

// Some creates an Option holding v
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None creates an empty Option
func None[T any]() Option[T] {
	return Option[T]{}
}

// Get returns the held value and whether one is present
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSome reports whether a value is present
func (o Option[T]) IsSome() bool {
	return o.ok
}

// TypeComponents returns the component types of the instantiation
func (Option[T]) TypeComponents() []reflect.Type {
	return []reflect.Type{staticize.TypeFor[T]()}
}

// ShapeKind reports the optional shape
func (Option[T]) ShapeKind() shape.Kind {
	return shape.Optional
}

// Result holds either a success value or a failure value
type Result[T, E any] struct {
	value T
	err   E
	ok    bool
}

// Ok creates a successful Result
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v, ok: true}
}

// Err creates a failed Result
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// IsOk reports whether the result is a success
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// Value returns the success value and whether the result is a success
func (r Result[T, E]) Value() (T, bool) {
	return r.value, r.ok
}

// Failure returns the failure value and whether the result is a failure
func (r Result[T, E]) Failure() (E, bool) {
	return r.err, !r.ok
}

// TypeComponents returns the component types of the instantiation
func (Result[T, E]) TypeComponents() []reflect.Type {
	return []reflect.Type{staticize.TypeFor[T](), staticize.TypeFor[E]()}
}

// ShapeKind reports the result shape
func (Result[T, E]) ShapeKind() shape.Kind {
	return shape.Result
}

// Flow is a two-armed control value used to signal an early exit from an
// iteration: Break carries the exit value, Continue the intermediate one
type Flow[B, C any] struct {
	brk     B
	cont    C
	isBreak bool
}

// Break creates a Flow carrying an exit value
func Break[B, C any](b B) Flow[B, C] {
	return Flow[B, C]{brk: b, isBreak: true}
}

// Continue creates a Flow carrying an intermediate value
func Continue[B, C any](c C) Flow[B, C] {
	return Flow[B, C]{cont: c}
}

// IsBreak reports whether the flow is an exit
func (f Flow[B, C]) IsBreak() bool {
	return f.isBreak
}

// BreakValue returns the exit value and whether the flow is an exit
func (f Flow[B, C]) BreakValue() (B, bool) {
	return f.brk, f.isBreak
}

// ContinueValue returns the intermediate value and whether the flow
// continues
func (f Flow[B, C]) ContinueValue() (C, bool) {
	return f.cont, !f.isBreak
}

// TypeComponents returns the component types of the instantiation
func (Flow[B, C]) TypeComponents() []reflect.Type {
	return []reflect.Type{staticize.TypeFor[B](), staticize.TypeFor[C]()}
}

// ShapeKind reports the flow shape
func (Flow[B, C]) ShapeKind() shape.Kind {
	return shape.Flow
}

// BoundKind discriminates the three endpoint forms
type BoundKind uint8

const (
	// Included is an inclusive endpoint
	Included BoundKind = iota
	// Excluded is an exclusive endpoint
	Excluded
	// Unbounded is the absent endpoint
	Unbounded
)

// Bound is an interval endpoint wrapper
type Bound[T any] struct {
	value T
	kind  BoundKind
}

// Include creates an inclusive endpoint
func Include[T any](v T) Bound[T] {
	return Bound[T]{value: v, kind: Included}
}

// Exclude creates an exclusive endpoint
func Exclude[T any](v T) Bound[T] {
	return Bound[T]{value: v, kind: Excluded}
}

// NoBound creates an absent endpoint
func NoBound[T any]() Bound[T] {
	return Bound[T]{kind: Unbounded}
}

// Kind returns the endpoint form
func (b Bound[T]) Kind() BoundKind {
	return b.kind
}

// Endpoint returns the endpoint value and whether one is present
func (b Bound[T]) Endpoint() (T, bool) {
	return b.value, b.kind != Unbounded
}

// TypeComponents returns the component types of the instantiation
func (Bound[T]) TypeComponents() []reflect.Type {
	return []reflect.Type{staticize.TypeFor[T]()}
}

// ShapeKind reports the bound shape
func (Bound[T]) ShapeKind() shape.Kind {
	return shape.Bound
}
