// Package staticize maintains a registry of type projections: for every
// known type T it resolves a canonical self-contained counterpart Static(T)
// that holds no transient (borrowed) data, and answers two identity queries
// for that counterpart, a stable identifier and a display name.
//
// Go has no associated types, so the projection rules live in an explicit
// type-to-type table keyed by reflect.Type. Leaves map to themselves,
// pointers and slices project element-wise, and parametric types either
// describe their own rule (Projector), expose their components for an
// identity check (Composite), or are registered as explicit pairs. A type
// with no applicable rule is rejected at registration or first use; there
// is no fallback projection.
//
// The registry never transforms values. It only computes what type the
// counterpart would be and reports identity facts about it.
package staticize
