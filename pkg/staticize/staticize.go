package staticize

import (
	"fmt"
	"reflect"

	"github.com/arthur-debert/staticize/pkg/errors"
)

// Default is the process-wide registry the generic API operates on
var Default = NewRegistry()

// TypeFor returns the reflect.Type of T, including interface and
// unsized types
func TypeFor[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// RegisterSelfContained registers the identity projection Static(T) = T.
// This is valid only for types that are unconditionally self-contained;
// that precondition is the registrant's responsibility, the registry
// cannot verify it for an opaque type.
func RegisterSelfContained[T any]() error {
	t := TypeFor[T]()
	return Default.Register(t, t)
}

// RegisterProjection registers the explicit pair Static(T) = S. S must
// itself be self-contained.
func RegisterProjection[T, S any]() error {
	return Default.Register(TypeFor[T](), TypeFor[S]())
}

// StaticTypeOf resolves the self-contained counterpart of T
func StaticTypeOf[T any]() (reflect.Type, error) {
	return Default.Resolve(TypeFor[T]())
}

// StaticTypeID returns the stable identifier of Static(T). Two types
// report equal identifiers iff their counterparts are the same type.
func StaticTypeID[T any]() (ID, error) {
	return Default.StaticID(TypeFor[T]())
}

// StaticTypeName returns the display name of Static(T)
func StaticTypeName[T any]() (string, error) {
	return Default.StaticName(TypeFor[T]())
}

// IsSelfContained reports whether T resolves to itself
func IsSelfContained[T any]() bool {
	t := TypeFor[T]()
	s, err := Default.Resolve(t)
	return err == nil && s == t
}

// MustStaticTypeID is StaticTypeID that panics on an unresolvable
// projection. Useful when the projection is known to be registered.
func MustStaticTypeID[T any]() ID {
	id, err := StaticTypeID[T]()
	if err != nil {
		panic(fmt.Sprintf("staticize: %v", err))
	}
	return id
}

// MustStaticTypeName is StaticTypeName that panics on an unresolvable
// projection
func MustStaticTypeName[T any]() string {
	name, err := StaticTypeName[T]()
	if err != nil {
		panic(fmt.Sprintf("staticize: %v", err))
	}
	return name
}

// MustRegister panics if a registration fails. This is useful in init
// functions where a failure is a programming error.
func MustRegister(err error) {
	if err != nil {
		panic(fmt.Sprintf("staticize: registration failed: %v", err))
	}
}

// CheckProjection verifies that src projects to static under the default
// registry. The per-shape registration helpers use it to validate each
// component pair before registering a composite instantiation.
func CheckProjection(src, static reflect.Type) error {
	s, err := Default.Resolve(src)
	if err != nil {
		return err
	}
	if s != static {
		return errors.Newf(errors.ErrComponentMismatch,
			"component %s projects to %s, not %s", src, s, static)
	}
	return nil
}
