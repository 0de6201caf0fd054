package builtins

import "github.com/mongoosemoo/lumisp/types"

// registerPredicates wires the type predicates of §4.4, plus `not` (a
// supplement per SPEC_FULL.md §4.3/4.4).
func registerPredicates(r *Registry) {
	r.Register("integer?", typePredicate(types.TYPE_INTEGER))
	r.Register("boolean?", typePredicate(types.TYPE_BOOLEAN))
	r.Register("string?", typePredicate(types.TYPE_STRING))
	r.Register("symbol?", typePredicate(types.TYPE_SYMBOL))
	r.Register("procedure?", builtinProcedureP)
	r.Register("not", builtinNot)
}

func typePredicate(want types.TypeCode) types.PrimitiveFunc {
	return func(args []types.Value) types.Result {
		if len(args) != 1 {
			return types.Fail(types.E_ARITY_MISMATCH, "type predicate requires 1 argument")
		}
		return types.Ok(types.NewBool(args[0].Type() == want))
	}
}

// procedure? is true for both Primitive and Lambda (§4.4).
func builtinProcedureP(args []types.Value) types.Result {
	if len(args) != 1 {
		return types.Fail(types.E_ARITY_MISMATCH, "procedure? requires 1 argument")
	}
	switch args[0].(type) {
	case types.PrimitiveValue, types.LambdaValue:
		return types.Ok(types.True)
	default:
		return types.Ok(types.False)
	}
}

func builtinNot(args []types.Value) types.Result {
	if len(args) != 1 {
		return types.Fail(types.E_ARITY_MISMATCH, "not requires 1 argument")
	}
	return types.Ok(types.NewBool(!args[0].Truthy()))
}
