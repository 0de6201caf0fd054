// Package builtins implements the primitive procedures named in §4.4:
// arithmetic, comparison, list/array/map operations, predicates, equal?,
// and I/O helpers. Each primitive type-checks its own arguments, so a
// single lookup-by-name table is sufficient dispatch (§9) — grounded on the
// teacher's builtins/registry.go Registry{funcs map[string]BuiltinFunc}.
package builtins

import "github.com/mongoosemoo/lumisp/types"

// Registry holds every registered primitive procedure, keyed by its
// conventional name.
type Registry struct {
	funcs map[string]types.PrimitiveValue
}

// NewRegistry builds a Registry pre-populated with every primitive this
// package implements. The `eval` primitive is deliberately absent: it needs
// to re-enter the evaluator, and the eval package registers it itself after
// construction to avoid an eval<->builtins import cycle, grounded on the
// teacher's own eval/builtin_eval.go RegisterEvalBuiltin pattern.
func NewRegistry() *Registry {
	r := &Registry{funcs: make(map[string]types.PrimitiveValue)}

	registerArithmetic(r)
	registerLists(r)
	registerArrays(r)
	registerMaps(r)
	registerPredicates(r)
	registerGeneral(r)
	registerCrypto(r)

	return r
}

// Register adds or replaces a primitive under name.
func (r *Registry) Register(name string, fn types.PrimitiveFunc) {
	r.funcs[name] = types.NewPrimitive(name, fn)
}

// Get looks up a primitive by name.
func (r *Registry) Get(name string) (types.PrimitiveValue, bool) {
	p, ok := r.funcs[name]
	return p, ok
}

// Entries returns every registered primitive, for populating a fresh global
// environment.
func (r *Registry) Entries() map[string]types.PrimitiveValue {
	return r.funcs
}
