package eval

import (
	"testing"

	"github.com/mongoosemoo/lumisp/reader"
	"github.com/mongoosemoo/lumisp/types"
)

func evalString(t *testing.T, ev *Evaluator, env *Environment, src string) types.Result {
	t.Helper()
	v, err := reader.Read(src)
	if err != nil {
		t.Fatalf("Read(%q): %v", src, err)
	}
	return ev.Eval(v, env)
}

func mustValue(t *testing.T, res types.Result) types.Value {
	t.Helper()
	if res.IsError() {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.IsTailCall() {
		t.Fatalf("unexpected unresolved tail call")
	}
	return res.Val
}

func TestSelfEvaluatingForms(t *testing.T) {
	ev := NewEvaluator()
	env := ev.Global
	for _, tc := range []struct{ src, want string }{
		{"42", "42"},
		{`"hi"`, `"hi"`},
		{"#t", "#t"},
		{"#f", "#f"},
	} {
		got := mustValue(t, evalString(t, ev, env, tc.src))
		if got.String() != tc.want {
			t.Errorf("eval(%q) = %q, want %q", tc.src, got.String(), tc.want)
		}
	}
}

func TestQuoteReturnsDatumUnevaluated(t *testing.T) {
	ev := NewEvaluator()
	got := mustValue(t, evalString(t, ev, ev.Global, "(quote (a b c))"))
	if got.String() != "(a b c)" {
		t.Errorf("quote: got %q", got.String())
	}
}

func TestIfBranches(t *testing.T) {
	ev := NewEvaluator()
	if got := mustValue(t, evalString(t, ev, ev.Global, "(if #t 1 2)")); !got.Equal(types.NewInt(1)) {
		t.Errorf("if true branch: got %v", got)
	}
	if got := mustValue(t, evalString(t, ev, ev.Global, "(if #f 1 2)")); !got.Equal(types.NewInt(2)) {
		t.Errorf("if false branch: got %v", got)
	}
	if got := mustValue(t, evalString(t, ev, ev.Global, "(if #f 1)")); !got.Equal(types.Nil) {
		t.Errorf("if with no else branch: got %v", got)
	}
}

func TestDefineAndLookup(t *testing.T) {
	ev := NewEvaluator()
	env := ev.Global.NewChildEnvironment()
	evalString(t, ev, env, "(define x 10)")
	got := mustValue(t, evalString(t, ev, env, "x"))
	if !got.Equal(types.NewInt(10)) {
		t.Errorf("x = %v, want 10", got)
	}
}

func TestSetMutatesEnclosingScope(t *testing.T) {
	ev := NewEvaluator()
	env := ev.Global.NewChildEnvironment()
	evalString(t, ev, env, "(define x 1)")
	inner := env.NewChildEnvironment()
	evalString(t, ev, inner, "(set! x 99)")
	got := mustValue(t, evalString(t, ev, env, "x"))
	if !got.Equal(types.NewInt(99)) {
		t.Errorf("x after set! from inner scope = %v, want 99", got)
	}
}

func TestSetOnUnboundNameFails(t *testing.T) {
	ev := NewEvaluator()
	res := evalString(t, ev, ev.Global.NewChildEnvironment(), "(set! nope 1)")
	if !res.IsError() || res.Err.Code != types.E_UNBOUND {
		t.Errorf("set! on unbound name should be E_UNBOUND, got %+v", res)
	}
}

func TestLambdaApplicationAndClosures(t *testing.T) {
	ev := NewEvaluator()
	env := ev.Global.NewChildEnvironment()
	evalString(t, ev, env, "(define make-adder (lambda (n) (lambda (x) (+ x n))))")
	evalString(t, ev, env, "(define add5 (make-adder 5))")
	got := mustValue(t, evalString(t, ev, env, "(add5 10)"))
	if !got.Equal(types.NewInt(15)) {
		t.Errorf("(add5 10) = %v, want 15", got)
	}
	// add5's captured n must be independent of a second call to make-adder.
	evalString(t, ev, env, "(define add10 (make-adder 10))")
	got = mustValue(t, evalString(t, ev, env, "(add5 1)"))
	if !got.Equal(types.NewInt(6)) {
		t.Errorf("add5 closure was corrupted by a later make-adder call: got %v", got)
	}
	got = mustValue(t, evalString(t, ev, env, "(add10 1)"))
	if !got.Equal(types.NewInt(11)) {
		t.Errorf("(add10 1) = %v, want 11", got)
	}
}

func TestBeginSequencesAndReturnsLast(t *testing.T) {
	ev := NewEvaluator()
	env := ev.Global.NewChildEnvironment()
	got := mustValue(t, evalString(t, ev, env, "(begin (define x 1) (define y 2) (+ x y))"))
	if !got.Equal(types.NewInt(3)) {
		t.Errorf("begin result = %v, want 3", got)
	}
}

func TestAndOrShortCircuit(t *testing.T) {
	ev := NewEvaluator()
	env := ev.Global.NewChildEnvironment()
	if got := mustValue(t, evalString(t, ev, env, "(and 1 2 3)")); !got.Equal(types.NewInt(3)) {
		t.Errorf("(and 1 2 3) = %v, want 3", got)
	}
	if got := mustValue(t, evalString(t, ev, env, "(and 1 #f 3)")); !got.Equal(types.False) {
		t.Errorf("(and 1 #f 3) = %v, want #f", got)
	}
	if got := mustValue(t, evalString(t, ev, env, "(or #f #f 5)")); !got.Equal(types.NewInt(5)) {
		t.Errorf("(or #f #f 5) = %v, want 5", got)
	}
	if got := mustValue(t, evalString(t, ev, env, "(or #f #f)")); !got.Equal(types.False) {
		t.Errorf("(or #f #f) = %v, want #f", got)
	}
	// and/or must not evaluate expressions past the deciding one.
	evalString(t, ev, env, "(define touched 0)")
	evalString(t, ev, env, "(and #f (set! touched 1))")
	got := mustValue(t, evalString(t, ev, env, "touched"))
	if !got.Equal(types.NewInt(0)) {
		t.Errorf("and evaluated past its short-circuit point: touched = %v", got)
	}
}

func TestLetBindsInANewScope(t *testing.T) {
	ev := NewEvaluator()
	env := ev.Global.NewChildEnvironment()
	evalString(t, ev, env, "(define x 1)")
	got := mustValue(t, evalString(t, ev, env, "(let ((x 2) (y 3)) (+ x y))"))
	if !got.Equal(types.NewInt(5)) {
		t.Errorf("let body = %v, want 5", got)
	}
	outerX := mustValue(t, evalString(t, ev, env, "x"))
	if !outerX.Equal(types.NewInt(1)) {
		t.Errorf("let leaked its binding into the enclosing scope: x = %v", outerX)
	}
}

func TestUnboundSymbolIsAnError(t *testing.T) {
	ev := NewEvaluator()
	res := evalString(t, ev, ev.Global.NewChildEnvironment(), "undefined-name")
	if !res.IsError() || res.Err.Code != types.E_UNBOUND {
		t.Errorf("expected E_UNBOUND, got %+v", res)
	}
}

func TestApplyingANonProcedureIsAnError(t *testing.T) {
	ev := NewEvaluator()
	res := evalString(t, ev, ev.Global.NewChildEnvironment(), "(1 2 3)")
	if !res.IsError() || res.Err.Code != types.E_NOT_CALLABLE {
		t.Errorf("expected E_NOT_CALLABLE, got %+v", res)
	}
}

func TestLambdaArityMismatchIsAnError(t *testing.T) {
	ev := NewEvaluator()
	env := ev.Global.NewChildEnvironment()
	evalString(t, ev, env, "(define f (lambda (a b) a))")
	res := evalString(t, ev, env, "(f 1)")
	if !res.IsError() || res.Err.Code != types.E_ARITY_MISMATCH {
		t.Errorf("expected E_ARITY_MISMATCH, got %+v", res)
	}
}

// TestDeepTailRecursionDoesNotOverflowTheStack exercises the TCO bound: a
// tail-recursive countdown to zero over a deep count must not grow Go's
// call stack, since Eval's trampoline loop rewrites (expr, env) instead of
// recursing for a tail call.
func TestDeepTailRecursionDoesNotOverflowTheStack(t *testing.T) {
	ev := NewEvaluator()
	env := ev.Global.NewChildEnvironment()
	evalString(t, ev, env, `
		(define count-down
		  (lambda (n)
		    (if (= n 0)
		        done
		        (count-down (- n 1)))))
	`)
	evalString(t, ev, env, `(define done "done")`)
	got := mustValue(t, evalString(t, ev, env, "(count-down 10000)"))
	if !got.Equal(types.NewStr("done")) {
		t.Errorf("count-down 10000 = %v, want \"done\"", got)
	}
}

func TestEvalPrimitiveReentersTheEvaluator(t *testing.T) {
	ev := NewEvaluator()
	env := ev.Global.NewChildEnvironment()
	got := mustValue(t, evalString(t, ev, env, "(eval (quote (+ 1 2)))"))
	if !got.Equal(types.NewInt(3)) {
		t.Errorf("(eval '(+ 1 2)) = %v, want 3", got)
	}
}
