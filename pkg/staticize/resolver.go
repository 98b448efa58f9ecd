package staticize

import (
	"reflect"

	"github.com/arthur-debert/staticize/pkg/errors"
)

// ResolveFunc resolves the self-contained counterpart of a type. The
// registry passes one to self-projecting types so their rules can recurse
// through the full rule set.
type ResolveFunc func(reflect.Type) (reflect.Type, error)

// Projector is implemented by types that carry their own projection rule.
// The transient view wrappers use this to project to their owned
// counterparts.
type Projector interface {
	ProjectStatic(resolve ResolveFunc) (reflect.Type, error)
}

// Composite is implemented by parametric types (tuples, optionals,
// results, bounds) that expose their component types. A composite whose
// components are all self-contained is its own counterpart; one with a
// transient component must be registered as an explicit pair, because Go
// cannot instantiate a generic type from a reflect.Type at run time.
type Composite interface {
	TypeComponents() []reflect.Type
}

var (
	projectorType = reflect.TypeOf((*Projector)(nil)).Elem()
	compositeType = reflect.TypeOf((*Composite)(nil)).Elem()
)

func implementsProjector(t reflect.Type) bool {
	return t.Implements(projectorType)
}

// Resolve returns the self-contained counterpart of t. Rules apply in
// order: exact registered entry, self-projecting type, structural pointer
// and slice kinds, composite identity. Anything else is an unresolvable
// projection.
func (r *Registry) Resolve(t reflect.Type) (reflect.Type, error) {
	if t == nil {
		return nil, errors.New(errors.ErrInvalidInput, "cannot resolve a nil type")
	}

	r.mu.RLock()
	if rl, ok := r.rules[t]; ok {
		r.mu.RUnlock()
		return rl.static, nil
	}
	if s, ok := r.resolved[t]; ok {
		r.mu.RUnlock()
		return s, nil
	}
	gen := r.gen
	r.mu.RUnlock()

	s, err := r.resolveSlow(t)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	// A registration during the slow path may have changed the outcome;
	// only a resolution from the current rule set is worth memoizing.
	if r.gen == gen {
		r.resolved[t] = s
	}
	r.mu.Unlock()

	r.logger.Debug().
		Str("source", t.String()).
		Str("static", s.String()).
		Msg("Resolved projection")
	return s, nil
}

func (r *Registry) resolveSlow(t reflect.Type) (reflect.Type, error) {
	if t.Implements(projectorType) {
		p := reflect.New(t).Elem().Interface().(Projector)
		s, err := p.ProjectStatic(r.Resolve)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrUnresolvable,
				"projection of %s failed", t)
		}
		return s, nil
	}

	switch t.Kind() {
	case reflect.Pointer:
		elem, err := r.Resolve(t.Elem())
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrUnresolvable,
				"pointee of %s has no projection", t)
		}
		return reflect.PointerTo(elem), nil
	case reflect.Slice:
		elem, err := r.Resolve(t.Elem())
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrUnresolvable,
				"element of %s has no projection", t)
		}
		return reflect.SliceOf(elem), nil
	}

	if t.Implements(compositeType) {
		c := reflect.New(t).Elem().Interface().(Composite)
		for _, comp := range c.TypeComponents() {
			s, err := r.Resolve(comp)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrUnresolvable,
					"component %s of %s has no projection", comp, t)
			}
			if s != comp {
				return nil, errors.Newf(errors.ErrUnresolvable,
					"component %s of %s projects to %s; register the projected instantiation explicitly", comp, t, s).
					WithDetail("component", comp.String()).
					WithDetail("static", s.String())
			}
		}
		return t, nil
	}

	return nil, errors.Newf(errors.ErrUnresolvable,
		"type %s has no projection rule", t).
		WithDetail("kind", t.Kind().String())
}
