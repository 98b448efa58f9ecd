// Package transient provides explicit view wrappers standing in for
// references whose validity is tied to a bounded scope. Go cannot
// distinguish borrow durations statically, so code that hands out
// short-lived views wraps them in these types; their projections are the
// owned counterparts that are safe to persist.
package transient

import (
	"reflect"

	"github.com/arthur-debert/staticize/pkg/shape"
	"github.com/arthur-debert/staticize/pkg/staticize"
)

// Ref is a borrowed view of a single value. Its counterpart is an owned
// pointer to the counterpart of T.
type Ref[T any] struct {
	ptr *T
}

// Borrow wraps a pointer as a transient view
func Borrow[T any](v *T) Ref[T] {
	return Ref[T]{ptr: v}
}

// Get returns the viewed pointer. The caller must not store it beyond
// the scope that produced the view.
func (r Ref[T]) Get() *T {
	return r.ptr
}

// ProjectStatic projects Ref[T] to *Static(T)
func (Ref[T]) ProjectStatic(resolve staticize.ResolveFunc) (reflect.Type, error) {
	elem, err := resolve(staticize.TypeFor[T]())
	if err != nil {
		return nil, err
	}
	return reflect.PointerTo(elem), nil
}

// ShapeKind reports the transient shape
func (Ref[T]) ShapeKind() shape.Kind {
	return shape.Transient
}

// Slice is a borrowed view of a slice. Its counterpart is an owned
// slice of the counterpart of T.
type Slice[T any] struct {
	view []T
}

// View wraps a slice as a transient view
func View[T any](s []T) Slice[T] {
	return Slice[T]{view: s}
}

// Get returns the viewed slice. The caller must not store it beyond the
// scope that produced the view.
func (s Slice[T]) Get() []T {
	return s.view
}

// ProjectStatic projects Slice[T] to []Static(T)
func (Slice[T]) ProjectStatic(resolve staticize.ResolveFunc) (reflect.Type, error) {
	elem, err := resolve(staticize.TypeFor[T]())
	if err != nil {
		return nil, err
	}
	return reflect.SliceOf(elem), nil
}

// ShapeKind reports the transient shape
func (Slice[T]) ShapeKind() shape.Kind {
	return shape.Transient
}

// Str is a borrowed view of text. Its counterpart is an owned string.
type Str struct {
	view string
}

// Text wraps a string as a transient view
func Text(s string) Str {
	return Str{view: s}
}

// Get returns the viewed text
func (s Str) Get() string {
	return s.view
}

// ProjectStatic projects Str to string
func (Str) ProjectStatic(resolve staticize.ResolveFunc) (reflect.Type, error) {
	return staticize.TypeFor[string](), nil
}

// ShapeKind reports the transient shape
func (Str) ShapeKind() shape.Kind {
	return shape.Transient
}
