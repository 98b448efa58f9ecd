package staticize

import (
	"reflect"

	"github.com/google/uuid"
)

// idNamespace is the fixed UUIDv5 namespace identifiers are derived
// under. Changing it changes every identifier, so it never changes.
var idNamespace = uuid.MustParse("9a1c2f76-7b54-4c2d-8a0e-d1b5c3e47f21")

// ID is the stable identifier of a resolved self-contained type. It is a
// UUIDv5 of the type's canonical name, so it is equal across builds and
// versions for as long as the canonical name is unchanged.
type ID uuid.UUID

// String returns the canonical UUID form of the identifier
func (id ID) String() string {
	return uuid.UUID(id).String()
}

// IDOf returns the identifier of a type as-is, without resolving a
// projection first. Callers almost always want Registry.StaticID instead.
func IDOf(t reflect.Type) ID {
	return ID(uuid.NewSHA1(idNamespace, []byte(CanonicalName(t))))
}

// CanonicalName renders a package-path-qualified name for t. Structural
// pointer and slice types recurse; named types use their full import path
// so the name survives display-name collisions between packages.
func CanonicalName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Pointer:
		return "*" + CanonicalName(t.Elem())
	case reflect.Slice:
		return "[]" + CanonicalName(t.Elem())
	}
	if t.Name() != "" {
		if pkg := t.PkgPath(); pkg != "" {
			return pkg + "." + t.Name()
		}
		return t.Name()
	}
	return t.String()
}

// StaticID resolves the counterpart of t and returns its identifier.
// The identifier belongs to the counterpart, never to t itself, so two
// sources with the same counterpart share it.
func (r *Registry) StaticID(t reflect.Type) (ID, error) {
	s, err := r.Resolve(t)
	if err != nil {
		return ID{}, err
	}
	return IDOf(s), nil
}

// StaticName resolves the counterpart of t and returns its display name
func (r *Registry) StaticName(t reflect.Type) (string, error) {
	s, err := r.Resolve(t)
	if err != nil {
		return "", err
	}
	return s.String(), nil
}
