package shape

import (
	"reflect"
	"sync/atomic"
)

// Kind classifies a type into the structural shape that selects which
// projection rule applies. Every type the registry handles falls into
// exactly one kind.
type Kind int

const (
	// Opaque is the shape of types with no projection rule
	Opaque Kind = iota
	// Leaf is a primitive or atomic wrapper that is its own counterpart
	Leaf
	// Pointer is a Go pointer, projected element-wise
	Pointer
	// Sequence is a Go slice, the owned-sequence shape
	Sequence
	// Transient is a borrowed view wrapper (Ref, Slice, Str)
	Transient
	// Tuple is a fixed-arity product type
	Tuple
	// Optional is the optional-of shape
	Optional
	// Result is the fallible-result shape
	Result
	// Flow is the two-armed early-exit control shape
	Flow
	// Bound is the interval-endpoint shape
	Bound
	// Container is a parametric collection shape
	Container
)

// String returns the human-readable name of the kind
func (k Kind) String() string {
	switch k {
	case Leaf:
		return "leaf"
	case Pointer:
		return "pointer"
	case Sequence:
		return "sequence"
	case Transient:
		return "transient"
	case Tuple:
		return "tuple"
	case Optional:
		return "optional"
	case Result:
		return "result"
	case Flow:
		return "flow"
	case Bound:
		return "bound"
	case Container:
		return "container"
	default:
		return "opaque"
	}
}

// Classifier is implemented by parametric types that know their own shape
type Classifier interface {
	ShapeKind() Kind
}

var classifierType = reflect.TypeOf((*Classifier)(nil)).Elem()

// leafTypes holds the primitive and atomic wrapper types that are
// unconditionally self-contained
var leafTypes = func() map[reflect.Type]struct{} {
	set := make(map[reflect.Type]struct{})
	for _, v := range []interface{}{
		false,
		int(0), int8(0), int16(0), int32(0), int64(0),
		uint(0), uint8(0), uint16(0), uint32(0), uint64(0), uintptr(0),
		float32(0), float64(0),
		complex64(0), complex128(0),
		"",
		struct{}{},
	} {
		set[reflect.TypeOf(v)] = struct{}{}
	}
	// Atomic wrappers carry an internal noCopy marker, so take their
	// types through a nil pointer instead of a value
	for _, p := range []interface{}{
		(*atomic.Bool)(nil), (*atomic.Int32)(nil), (*atomic.Int64)(nil),
		(*atomic.Uint32)(nil), (*atomic.Uint64)(nil), (*atomic.Uintptr)(nil),
	} {
		set[reflect.TypeOf(p).Elem()] = struct{}{}
	}
	return set
}()

// IsLeaf reports whether t is one of the builtin leaf types
func IsLeaf(t reflect.Type) bool {
	_, ok := leafTypes[t]
	return ok
}

// LeafTypes returns the builtin leaf types in unspecified order
func LeafTypes() []reflect.Type {
	out := make([]reflect.Type, 0, len(leafTypes))
	for t := range leafTypes {
		out = append(out, t)
	}
	return out
}

// Of classifies a type. Types that neither match a builtin leaf, a
// structural Go kind, nor describe their own shape are Opaque.
func Of(t reflect.Type) Kind {
	if t == nil {
		return Opaque
	}
	if IsLeaf(t) {
		return Leaf
	}
	switch t.Kind() {
	case reflect.Pointer:
		return Pointer
	case reflect.Slice:
		return Sequence
	}
	if t.Implements(classifierType) {
		return reflect.New(t).Elem().Interface().(Classifier).ShapeKind()
	}
	return Opaque
}
