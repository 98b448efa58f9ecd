package staticize

import (
	"github.com/arthur-debert/staticize/pkg/shape"
)

// registerBuiltins installs the identity projections every registry
// starts with: the numeric, boolean, text and unit leaves plus the atomic
// wrappers. These are unconditionally self-contained, so the identity
// rule needs no validation.
func registerBuiltins(r *Registry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range shape.LeafTypes() {
		r.rules[t] = rule{static: t, kind: shape.Leaf}
	}
}
