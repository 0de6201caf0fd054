package builtins

import "github.com/mongoosemoo/lumisp/types"

// registerArithmetic wires +, *, -, /, =, < — following the same
// builtins/math.go per-type switch plus E_ARGS/E_TYPE error pattern,
// narrowed to the all-integer arithmetic this dialect supports (§4.4).
func registerArithmetic(r *Registry) {
	r.Register("+", builtinAdd)
	r.Register("*", builtinMul)
	r.Register("-", builtinSub)
	r.Register("/", builtinDiv)
	r.Register("=", builtinNumEq)
	r.Register("<", builtinLt)
}

func asInt(v types.Value) (int64, bool) {
	i, ok := v.(types.IntValue)
	return i.Val, ok
}

func builtinAdd(args []types.Value) types.Result {
	var sum int64
	for _, a := range args {
		n, ok := asInt(a)
		if !ok {
			return types.Fail(types.E_TYPE_MISMATCH, "+ expects integers")
		}
		sum += n
	}
	return types.Ok(types.NewInt(sum))
}

func builtinMul(args []types.Value) types.Result {
	product := int64(1)
	for _, a := range args {
		n, ok := asInt(a)
		if !ok {
			return types.Fail(types.E_TYPE_MISMATCH, "* expects integers")
		}
		product *= n
	}
	return types.Ok(types.NewInt(product))
}

// builtinSub: one arg negates, two or more left-folds subtraction (§4.4).
func builtinSub(args []types.Value) types.Result {
	if len(args) == 0 {
		return types.Fail(types.E_ARITY_MISMATCH, "- requires at least 1 argument")
	}
	first, ok := asInt(args[0])
	if !ok {
		return types.Fail(types.E_TYPE_MISMATCH, "- expects integers")
	}
	if len(args) == 1 {
		return types.Ok(types.NewInt(-first))
	}
	acc := first
	for _, a := range args[1:] {
		n, ok := asInt(a)
		if !ok {
			return types.Fail(types.E_TYPE_MISMATCH, "- expects integers")
		}
		acc -= n
	}
	return types.Ok(types.NewInt(acc))
}

// builtinDiv: requires at least one argument, left-folds division; division
// by zero is a fatal error (§4.4).
func builtinDiv(args []types.Value) types.Result {
	if len(args) == 0 {
		return types.Fail(types.E_ARITY_MISMATCH, "/ requires at least 1 argument")
	}
	acc, ok := asInt(args[0])
	if !ok {
		return types.Fail(types.E_TYPE_MISMATCH, "/ expects integers")
	}
	if len(args) == 1 {
		if acc == 0 {
			return types.Fail(types.E_DIVISION_BY_ZERO, "")
		}
		return types.Ok(types.NewInt(1 / acc))
	}
	for _, a := range args[1:] {
		n, ok := asInt(a)
		if !ok {
			return types.Fail(types.E_TYPE_MISMATCH, "/ expects integers")
		}
		if n == 0 {
			return types.Fail(types.E_DIVISION_BY_ZERO, "")
		}
		acc /= n
	}
	return types.Ok(types.NewInt(acc))
}

// builtinNumEq chains pairwise equality across all arguments (§4.4).
func builtinNumEq(args []types.Value) types.Result {
	if len(args) < 2 {
		return types.Fail(types.E_ARITY_MISMATCH, "= requires at least 2 arguments")
	}
	first, ok := asInt(args[0])
	if !ok {
		return types.Fail(types.E_TYPE_MISMATCH, "= expects integers")
	}
	for _, a := range args[1:] {
		n, ok := asInt(a)
		if !ok {
			return types.Fail(types.E_TYPE_MISMATCH, "= expects integers")
		}
		if n != first {
			return types.Ok(types.False)
		}
	}
	return types.Ok(types.True)
}

// builtinLt is strictly increasing across the argument sequence (§4.4).
func builtinLt(args []types.Value) types.Result {
	if len(args) < 2 {
		return types.Fail(types.E_ARITY_MISMATCH, "< requires at least 2 arguments")
	}
	prev, ok := asInt(args[0])
	if !ok {
		return types.Fail(types.E_TYPE_MISMATCH, "< expects integers")
	}
	for _, a := range args[1:] {
		n, ok := asInt(a)
		if !ok {
			return types.Fail(types.E_TYPE_MISMATCH, "< expects integers")
		}
		if !(prev < n) {
			return types.Ok(types.False)
		}
		prev = n
	}
	return types.Ok(types.True)
}
