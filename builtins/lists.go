package builtins

import "github.com/mongoosemoo/lumisp/types"

// registerLists wires cons, car, cdr, list, null?, list? — grounded on the
// teacher's builtins/lists.go per-builtin arity/type checks.
func registerLists(r *Registry) {
	r.Register("cons", builtinCons)
	r.Register("car", builtinCar)
	r.Register("cdr", builtinCdr)
	r.Register("list", builtinList)
	r.Register("null?", builtinNullP)
	r.Register("list?", builtinListP)
}

func builtinCons(args []types.Value) types.Result {
	if len(args) != 2 {
		return types.Fail(types.E_ARITY_MISMATCH, "cons requires 2 arguments")
	}
	return types.Ok(types.NewPair(args[0], args[1]))
}

func builtinCar(args []types.Value) types.Result {
	if len(args) != 1 {
		return types.Fail(types.E_ARITY_MISMATCH, "car requires 1 argument")
	}
	p, ok := args[0].(types.PairValue)
	if !ok {
		return types.Fail(types.E_TYPE_MISMATCH, "car requires a pair")
	}
	return types.Ok(p.Car)
}

func builtinCdr(args []types.Value) types.Result {
	if len(args) != 1 {
		return types.Fail(types.E_ARITY_MISMATCH, "cdr requires 1 argument")
	}
	p, ok := args[0].(types.PairValue)
	if !ok {
		return types.Fail(types.E_TYPE_MISMATCH, "cdr requires a pair")
	}
	return types.Ok(p.Cdr)
}

func builtinList(args []types.Value) types.Result {
	return types.Ok(types.NewList(args...))
}

func builtinNullP(args []types.Value) types.Result {
	if len(args) != 1 {
		return types.Fail(types.E_ARITY_MISMATCH, "null? requires 1 argument")
	}
	_, ok := args[0].(types.NilValue)
	return types.Ok(types.NewBool(ok))
}

// builtinListP: true for Nil or any Pair chain whose final tail is Nil; the
// whole chain is walked, not just the first pair (§4.4).
func builtinListP(args []types.Value) types.Result {
	if len(args) != 1 {
		return types.Fail(types.E_ARITY_MISMATCH, "list? requires 1 argument")
	}
	return types.Ok(types.NewBool(types.IsProperList(args[0])))
}
