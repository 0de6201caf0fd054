// Package lumisp is the embedding surface described in §6: read source
// text into values, evaluate values against an environment, and format
// values back into canonical text, without requiring a caller to reach
// into the reader/eval/types/builtins packages directly.
package lumisp

import (
	"errors"

	"github.com/mongoosemoo/lumisp/eval"
	"github.com/mongoosemoo/lumisp/reader"
	"github.com/mongoosemoo/lumisp/types"
)

// Environment is an opaque handle on a lexical scope, re-exported so
// callers never need to import the eval package themselves.
type Environment = eval.Environment

// Value is any datum the reader can produce and the evaluator can return,
// re-exported so callers never need to import the types package themselves.
type Value = types.Value

// Evaluator owns the primitive registry and global environment.
type Evaluator struct {
	inner *eval.Evaluator
}

// NewEvaluator builds an Evaluator with every primitive procedure bound in
// a fresh global environment.
func NewEvaluator() *Evaluator {
	return &Evaluator{inner: eval.NewEvaluator()}
}

// GlobalEnvironment returns the evaluator's top-level environment, the
// parent of every environment a caller builds for isolated evaluation.
func (e *Evaluator) GlobalEnvironment() *Environment {
	return e.inner.Global
}

// NewScope returns a fresh child environment of the global environment,
// so separate top-level evaluations can be isolated from one another
// while still sharing primitives (§6).
func (e *Evaluator) NewScope() *Environment {
	return e.inner.Global.NewChildEnvironment()
}

// Read parses the first datum in text; any text after it is not read.
func Read(text string) (types.Value, error) {
	v, err := reader.Read(text)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// ReadAll parses every top-level datum in text.
func ReadAll(text string) ([]types.Value, error) {
	vs, err := reader.ReadAll(text)
	if err != nil {
		return nil, err
	}
	return vs, nil
}

// Eval evaluates a value in env, returning an error for either a parse-time
// malformed form or a runtime failure (§4.3, §5).
func (e *Evaluator) Eval(v types.Value, env *Environment) (types.Value, error) {
	res := e.inner.Eval(v, env)
	if res.IsError() {
		return nil, res.Err
	}
	return res.Val, nil
}

// EvalSource reads the first datum in text and evaluates it in env; any
// text after that datum is ignored. cmd/lumisp's REPL and the golden test
// runner use it for one datum at a time.
func (e *Evaluator) EvalSource(text string, env *Environment) (types.Value, error) {
	v, err := Read(text)
	if err != nil {
		return nil, err
	}
	return e.Eval(v, env)
}

// IsIncompleteInput reports whether err is solely "ran out of input before a
// datum was complete" rather than a malformed form — the signal a host REPL
// uses to keep accumulating lines instead of reporting a failure.
func IsIncompleteInput(err error) bool {
	var perr *reader.ParseError
	if errors.As(err, &perr) {
		return perr.Unterminated
	}
	return false
}

// Format renders v in the canonical printed form (§4's String() contract).
func Format(v types.Value) string {
	if v == nil {
		return ""
	}
	return v.String()
}
