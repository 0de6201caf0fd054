package builtins

import "github.com/mongoosemoo/lumisp/types"

// registerArrays wires make-array, array-ref, array-set!, array-length,
// array? on top of ArrayValue's bounds-checked Ref/Set, adapted to the
// handle-shared ArrayValue (§4.4).
func registerArrays(r *Registry) {
	r.Register("make-array", builtinMakeArray)
	r.Register("array-ref", builtinArrayRef)
	r.Register("array-set!", builtinArraySet)
	r.Register("array-length", builtinArrayLength)
	r.Register("array?", builtinArrayP)
}

func builtinMakeArray(args []types.Value) types.Result {
	if len(args) != 2 {
		return types.Fail(types.E_ARITY_MISMATCH, "make-array requires 2 arguments")
	}
	n, ok := asInt(args[0])
	if !ok {
		return types.Fail(types.E_TYPE_MISMATCH, "make-array requires an integer length")
	}
	if n < 0 {
		return types.Fail(types.E_INDEX_OUT_OF_BOUNDS, "make-array length must be non-negative")
	}
	return types.Ok(types.MakeArray(int(n), args[1]))
}

func builtinArrayRef(args []types.Value) types.Result {
	if len(args) != 2 {
		return types.Fail(types.E_ARITY_MISMATCH, "array-ref requires 2 arguments")
	}
	a, ok := args[0].(types.ArrayValue)
	if !ok {
		return types.Fail(types.E_TYPE_MISMATCH, "array-ref requires an array")
	}
	i, ok := asInt(args[1])
	if !ok {
		return types.Fail(types.E_TYPE_MISMATCH, "array-ref requires an integer index")
	}
	v, ok := a.Ref(int(i))
	if !ok {
		return types.Fail(types.E_INDEX_OUT_OF_BOUNDS, "")
	}
	return types.Ok(v)
}

func builtinArraySet(args []types.Value) types.Result {
	if len(args) != 3 {
		return types.Fail(types.E_ARITY_MISMATCH, "array-set! requires 3 arguments")
	}
	a, ok := args[0].(types.ArrayValue)
	if !ok {
		return types.Fail(types.E_TYPE_MISMATCH, "array-set! requires an array")
	}
	i, ok := asInt(args[1])
	if !ok {
		return types.Fail(types.E_TYPE_MISMATCH, "array-set! requires an integer index")
	}
	if !a.Set(int(i), args[2]) {
		return types.Fail(types.E_INDEX_OUT_OF_BOUNDS, "")
	}
	return types.Ok(types.Nil)
}

func builtinArrayLength(args []types.Value) types.Result {
	if len(args) != 1 {
		return types.Fail(types.E_ARITY_MISMATCH, "array-length requires 1 argument")
	}
	a, ok := args[0].(types.ArrayValue)
	if !ok {
		return types.Fail(types.E_TYPE_MISMATCH, "array-length requires an array")
	}
	return types.Ok(types.NewInt(int64(a.Len())))
}

func builtinArrayP(args []types.Value) types.Result {
	if len(args) != 1 {
		return types.Fail(types.E_ARITY_MISMATCH, "array? requires 1 argument")
	}
	_, ok := args[0].(types.ArrayValue)
	return types.Ok(types.NewBool(ok))
}
