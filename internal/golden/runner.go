package golden

import (
	"fmt"

	lumisp "github.com/mongoosemoo/lumisp"
	"github.com/mongoosemoo/lumisp/types"
)

// Run evaluates c.Code against a fresh child scope of ev's global
// environment and checks it against c.Expect, returning a non-nil error
// describing any mismatch.
func Run(ev *lumisp.Evaluator, c Case) error {
	env := ev.NewScope()
	result, err := ev.EvalSource(c.Code, env)

	if c.Expect.Error != "" {
		if err == nil {
			return fmt.Errorf("expected error %s, got value %s", c.Expect.Error, lumisp.Format(result))
		}
		evalErr, ok := err.(*types.EvalError)
		if !ok {
			return fmt.Errorf("expected eval error %s, got parse error: %v", c.Expect.Error, err)
		}
		if evalErr.Code.String() != c.Expect.Error {
			return fmt.Errorf("expected error %s, got %s", c.Expect.Error, evalErr.Code.String())
		}
		return nil
	}

	if err != nil {
		return fmt.Errorf("unexpected error: %v", err)
	}
	if got := lumisp.Format(result); got != c.Expect.Value {
		return fmt.Errorf("expected %q, got %q", c.Expect.Value, got)
	}
	return nil
}
