package staticize

import (
	"reflect"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/staticize/pkg/errors"
	"github.com/arthur-debert/staticize/pkg/logging"
	"github.com/arthur-debert/staticize/pkg/shape"
)

// Entry is a single projection in a registry snapshot
type Entry struct {
	// Source is the projected type
	Source reflect.Type
	// Static is its self-contained counterpart
	Static reflect.Type
	// Shape is the shape the rule was registered under
	Shape shape.Kind
}

type rule struct {
	static reflect.Type
	kind   shape.Kind
}

// Registry is a thread-safe type-to-type projection table with a
// memoized recursive resolver on top
type Registry struct {
	mu       sync.RWMutex
	rules    map[reflect.Type]rule
	resolved map[reflect.Type]reflect.Type
	gen      uint64
	logger   zerolog.Logger
}

// NewRegistry creates a registry pre-populated with the builtin leaf
// projections (primitives, text, unit, atomic wrappers)
func NewRegistry() *Registry {
	r := &Registry{
		rules:    make(map[reflect.Type]rule),
		resolved: make(map[reflect.Type]reflect.Type),
		logger:   logging.GetLogger("staticize.registry"),
	}
	registerBuiltins(r)
	return r
}

// Register adds a projection from src to static. Registering the same
// pair twice is a no-op; a conflicting pair for an already registered
// source is an error. When src equals static the caller is declaring the
// type self-contained, which the registry trusts; otherwise static must
// itself resolve to itself.
func (r *Registry) Register(src, static reflect.Type) error {
	kind := shape.Of(src)
	if kind == shape.Opaque {
		if src == static {
			kind = shape.Leaf
		} else {
			// An explicit pair whose source has no intrinsic shape is
			// classified by its counterpart, so snapshots stay readable.
			kind = shape.Of(static)
		}
	}
	return r.RegisterAs(src, static, kind)
}

// RegisterAs is Register with an explicit shape, used by the per-shape
// registration helpers
func (r *Registry) RegisterAs(src, static reflect.Type, kind shape.Kind) error {
	if src == nil || static == nil {
		return errors.New(errors.ErrInvalidInput, "registry requires non-nil source and static types")
	}
	if src == static {
		// A self-registration of a type that declares its own projection
		// rule would shadow that rule with a different meaning.
		if implementsProjector(src) {
			return errors.Newf(errors.ErrNotSelfContained,
				"type %s defines its own projection and cannot be registered as self-contained", src)
		}
		// A composite exposes its components, so self-containment is
		// checkable: every component has to be its own counterpart.
		if src.Implements(compositeType) {
			c := reflect.New(src).Elem().Interface().(Composite)
			for _, comp := range c.TypeComponents() {
				s, err := r.Resolve(comp)
				if err != nil {
					return errors.Wrapf(err, errors.ErrNotSelfContained,
						"component %s of %s does not resolve", comp, src)
				}
				if s != comp {
					return errors.Newf(errors.ErrNotSelfContained,
						"component %s projects to %s, so %s cannot be self-contained", comp, s, src)
				}
			}
		}
	} else {
		resolved, err := r.Resolve(static)
		if err != nil {
			return errors.Wrapf(err, errors.ErrNotSelfContained,
				"static counterpart %s does not resolve", static)
		}
		if resolved != static {
			return errors.Newf(errors.ErrNotSelfContained,
				"static counterpart %s is not self-contained, it projects to %s", static, resolved)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.rules[src]; ok {
		if existing.static == static {
			return nil
		}
		return errors.Newf(errors.ErrAlreadyExists,
			"type %s is already registered with counterpart %s", src, existing.static)
	}

	r.rules[src] = rule{static: static, kind: kind}
	// A new rule can change what the structural rules produce for a type
	// that was already resolved, so memoized resolutions are recomputed.
	r.resolved = make(map[reflect.Type]reflect.Type)
	r.gen++
	r.logger.Debug().
		Str("source", src.String()).
		Str("static", static.String()).
		Str("shape", kind.String()).
		Msg("Registered projection")
	return nil
}

// Has checks if a projection is registered for src
func (r *Registry) Has(src reflect.Type) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.rules[src]
	return ok
}

// Lookup finds a registered entry whose source matches name, either by
// canonical or by display name
func (r *Registry) Lookup(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for src, rl := range r.rules {
		if CanonicalName(src) == name || src.String() == name {
			return Entry{Source: src, Static: rl.static, Shape: rl.kind}, true
		}
	}
	return Entry{}, false
}

// Entries returns a snapshot of all registered projections, ordered by
// canonical source name
func (r *Registry) Entries() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, 0, len(r.rules))
	for src, rl := range r.rules {
		entries = append(entries, Entry{Source: src, Static: rl.static, Shape: rl.kind})
	}
	sort.Slice(entries, func(i, j int) bool {
		return CanonicalName(entries[i].Source) < CanonicalName(entries[j].Source)
	})
	return entries
}

// List returns all registered canonical source names in sorted order
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.rules))
	for src := range r.rules {
		names = append(names, CanonicalName(src))
	}
	sort.Strings(names)
	return names
}

// Count returns the number of registered projections
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.rules)
}

// Reset clears the registry back to the builtin projections
func (r *Registry) Reset() {
	r.mu.Lock()
	r.rules = make(map[reflect.Type]rule)
	r.resolved = make(map[reflect.Type]reflect.Type)
	r.gen++
	r.mu.Unlock()

	registerBuiltins(r)
}
