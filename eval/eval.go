package eval

import (
	"fmt"

	"github.com/mongoosemoo/lumisp/builtins"
	"github.com/mongoosemoo/lumisp/types"
)

// Evaluator ties a primitive Registry to a global Environment and drives
// the trampolined tree-walking interpretation of §4.3.
type Evaluator struct {
	Registry *builtins.Registry
	Global   *Environment
}

// NewEvaluator builds a fresh Evaluator with every primitive from
// builtins.NewRegistry bound in the global environment, then registers the
// `eval` primitive — which must re-enter the Evaluator itself — exactly the
// way a RegisterEvalBuiltin-style helper wires a self-referential builtin
// into its own registry and environment after construction, to avoid a
// builtins<->eval import cycle.
func NewEvaluator() *Evaluator {
	registry := builtins.NewRegistry()
	global := NewEnvironment()
	for name, prim := range registry.Entries() {
		global.Define(name, prim)
	}

	ev := &Evaluator{Registry: registry, Global: global}
	ev.registerEvalPrimitive()
	return ev
}

// registerEvalPrimitive installs `eval`: (eval expr) evaluates expr, a
// quoted datum, in the global environment.
func (ev *Evaluator) registerEvalPrimitive() {
	fn := func(args []types.Value) types.Result {
		if len(args) != 1 {
			return types.Fail(types.E_ARITY_MISMATCH, "eval requires 1 argument")
		}
		return ev.Eval(args[0], ev.Global)
	}
	ev.Registry.Register("eval", fn)
	prim, _ := ev.Registry.Get("eval")
	ev.Global.Define("eval", prim)
}

// Eval reduces expr in env to a final Value, trampolining through tail
// positions (if/begin/and/or/let bodies, lambda application) in an explicit
// loop rather than recursing, so tail-recursive programs run in O(1) native
// stack frames (§8). Non-tail sub-expressions — operator/operand
// positions, operands to special forms — recurse through Eval normally,
// since Go's own call stack backs those, following a recursive evaluator's
// trampoline loop shape generalized to this dialect's special forms.
func (ev *Evaluator) Eval(expr types.Value, env *Environment) types.Result {
	for {
		switch v := expr.(type) {
		case types.SymbolValue:
			val, ok := env.Get(v.Name)
			if !ok {
				return types.Fail(types.E_UNBOUND, v.Name)
			}
			return types.Ok(val)

		case types.PairValue:
			if sym, ok := v.Car.(types.SymbolValue); ok {
				if handled, res, nextExpr, nextEnv, tail := ev.evalSpecialForm(sym.Name, v, env); handled {
					if tail {
						expr, env = nextExpr, nextEnv
						continue
					}
					return res
				}
			}

			opRes := ev.Eval(v.Car, env)
			if opRes.IsError() {
				return opRes
			}

			argExprs, ok := types.ListElements(v.Cdr)
			if !ok {
				return types.Fail(types.E_BAD_SPECIAL_FORM, "improper argument list")
			}
			args := make([]types.Value, len(argExprs))
			for i, ae := range argExprs {
				r := ev.Eval(ae, env)
				if r.IsError() {
					return r
				}
				args[i] = r.Val
			}

			switch proc := opRes.Val.(type) {
			case types.PrimitiveValue:
				res := proc.Fn(args)
				if !res.IsTailCall() {
					return res
				}
				tailEnv, _ := res.TailEnv.(*Environment)
				expr, env = res.TailExpr, tailEnv
				continue

			case types.LambdaValue:
				capturedEnv, _ := proc.Env().(*Environment)
				childEnv, ok := capturedEnv.Extend(proc.Params(), args)
				if !ok {
					return types.Fail(types.E_ARITY_MISMATCH,
						fmt.Sprintf("%s expects %d arguments, got %d", proc.String(), len(proc.Params()), len(args)))
				}
				body := proc.Body()
				for _, e := range body[:len(body)-1] {
					res := ev.Eval(e, childEnv)
					if res.IsError() {
						return res
					}
				}
				expr, env = body[len(body)-1], childEnv
				continue

			default:
				return types.Fail(types.E_NOT_CALLABLE, opRes.Val.String())
			}

		default:
			// Integers, booleans, strings, nil, arrays, maps, primitives,
			// and lambdas are all self-evaluating (§4.3).
			return types.Ok(expr)
		}
	}
}

// evalSpecialForm dispatches a PairValue whose head is a symbol to the
// matching special form, if any. handled is false when name is not a
// special form, in which case the caller falls through to application.
// When tail is true, the trampoline loop should continue with
// (nextExpr, nextEnv) instead of using res.
func (ev *Evaluator) evalSpecialForm(name string, v types.PairValue, env *Environment) (handled bool, res types.Result, nextExpr types.Value, nextEnv *Environment, tail bool) {
	switch name {
	case "quote":
		elements, ok := types.ListElements(v.Cdr)
		if !ok || len(elements) != 1 {
			return true, types.Fail(types.E_BAD_SPECIAL_FORM, "quote requires exactly 1 form"), nil, nil, false
		}
		return true, types.Ok(elements[0]), nil, nil, false

	case "if":
		elements, ok := types.ListElements(v.Cdr)
		if !ok || (len(elements) != 2 && len(elements) != 3) {
			return true, types.Fail(types.E_BAD_SPECIAL_FORM, "if requires a test and 1 or 2 branches"), nil, nil, false
		}
		testRes := ev.Eval(elements[0], env)
		if testRes.IsError() {
			return true, testRes, nil, nil, false
		}
		if testRes.Val.Truthy() {
			return true, types.Result{}, elements[1], env, true
		}
		if len(elements) == 3 {
			return true, types.Result{}, elements[2], env, true
		}
		return true, types.Ok(types.Nil), nil, nil, false

	case "define":
		elements, ok := types.ListElements(v.Cdr)
		if !ok || len(elements) != 2 {
			return true, types.Fail(types.E_BAD_SPECIAL_FORM, "define requires a name and a value form"), nil, nil, false
		}
		sym, ok := elements[0].(types.SymbolValue)
		if !ok {
			return true, types.Fail(types.E_BAD_SPECIAL_FORM, "define requires a symbol name"), nil, nil, false
		}
		valRes := ev.Eval(elements[1], env)
		if valRes.IsError() {
			return true, valRes, nil, nil, false
		}
		env.Define(sym.Name, valRes.Val)
		return true, types.Ok(types.Nil), nil, nil, false

	case "set!":
		elements, ok := types.ListElements(v.Cdr)
		if !ok || len(elements) != 2 {
			return true, types.Fail(types.E_BAD_SPECIAL_FORM, "set! requires a name and a value form"), nil, nil, false
		}
		sym, ok := elements[0].(types.SymbolValue)
		if !ok {
			return true, types.Fail(types.E_BAD_SPECIAL_FORM, "set! requires a symbol name"), nil, nil, false
		}
		valRes := ev.Eval(elements[1], env)
		if valRes.IsError() {
			return true, valRes, nil, nil, false
		}
		if !env.Set(sym.Name, valRes.Val) {
			return true, types.Fail(types.E_UNBOUND, sym.Name), nil, nil, false
		}
		return true, types.Ok(types.Nil), nil, nil, false

	case "lambda":
		elements, ok := types.ListElements(v.Cdr)
		if !ok || len(elements) < 2 {
			return true, types.Fail(types.E_BAD_SPECIAL_FORM, "lambda requires a parameter list and at least 1 body form"), nil, nil, false
		}
		paramElems, ok := types.ListElements(elements[0])
		if !ok {
			return true, types.Fail(types.E_BAD_SPECIAL_FORM, "lambda parameters must be a proper list of symbols"), nil, nil, false
		}
		params := make([]string, len(paramElems))
		for i, p := range paramElems {
			sym, ok := p.(types.SymbolValue)
			if !ok {
				return true, types.Fail(types.E_BAD_SPECIAL_FORM, "lambda parameters must be symbols"), nil, nil, false
			}
			params[i] = sym.Name
		}
		body := append([]types.Value(nil), elements[1:]...)
		return true, types.Ok(types.NewLambda(params, body, env)), nil, nil, false

	case "begin":
		elements, ok := types.ListElements(v.Cdr)
		if !ok {
			return true, types.Fail(types.E_BAD_SPECIAL_FORM, "begin requires a proper list of forms"), nil, nil, false
		}
		if len(elements) == 0 {
			return true, types.Ok(types.Nil), nil, nil, false
		}
		for _, e := range elements[:len(elements)-1] {
			r := ev.Eval(e, env)
			if r.IsError() {
				return true, r, nil, nil, false
			}
		}
		return true, types.Result{}, elements[len(elements)-1], env, true

	case "and":
		elements, ok := types.ListElements(v.Cdr)
		if !ok {
			return true, types.Fail(types.E_BAD_SPECIAL_FORM, "and requires a proper list of forms"), nil, nil, false
		}
		if len(elements) == 0 {
			return true, types.Ok(types.True), nil, nil, false
		}
		for _, e := range elements[:len(elements)-1] {
			r := ev.Eval(e, env)
			if r.IsError() {
				return true, r, nil, nil, false
			}
			if !r.Val.Truthy() {
				return true, types.Ok(r.Val), nil, nil, false
			}
		}
		return true, types.Result{}, elements[len(elements)-1], env, true

	case "or":
		elements, ok := types.ListElements(v.Cdr)
		if !ok {
			return true, types.Fail(types.E_BAD_SPECIAL_FORM, "or requires a proper list of forms"), nil, nil, false
		}
		if len(elements) == 0 {
			return true, types.Ok(types.False), nil, nil, false
		}
		for _, e := range elements[:len(elements)-1] {
			r := ev.Eval(e, env)
			if r.IsError() {
				return true, r, nil, nil, false
			}
			if r.Val.Truthy() {
				return true, types.Ok(r.Val), nil, nil, false
			}
		}
		return true, types.Result{}, elements[len(elements)-1], env, true

	case "let":
		elements, ok := types.ListElements(v.Cdr)
		if !ok || len(elements) < 2 {
			return true, types.Fail(types.E_BAD_SPECIAL_FORM, "let requires a binding list and at least 1 body form"), nil, nil, false
		}
		bindingElems, ok := types.ListElements(elements[0])
		if !ok {
			return true, types.Fail(types.E_BAD_SPECIAL_FORM, "let bindings must be a proper list"), nil, nil, false
		}
		names := make([]string, len(bindingElems))
		values := make([]types.Value, len(bindingElems))
		for i, b := range bindingElems {
			pair, ok := types.ListElements(b)
			if !ok || len(pair) != 2 {
				return true, types.Fail(types.E_BAD_SPECIAL_FORM, "let binding must be (name expr)"), nil, nil, false
			}
			sym, ok := pair[0].(types.SymbolValue)
			if !ok {
				return true, types.Fail(types.E_BAD_SPECIAL_FORM, "let binding name must be a symbol"), nil, nil, false
			}
			valRes := ev.Eval(pair[1], env)
			if valRes.IsError() {
				return true, valRes, nil, nil, false
			}
			names[i] = sym.Name
			values[i] = valRes.Val
		}
		childEnv, _ := env.Extend(names, values)
		body := elements[1:]
		for _, e := range body[:len(body)-1] {
			r := ev.Eval(e, childEnv)
			if r.IsError() {
				return true, r, nil, nil, false
			}
		}
		return true, types.Result{}, body[len(body)-1], childEnv, true

	default:
		return false, types.Result{}, nil, nil, false
	}
}
