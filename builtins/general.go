package builtins

import (
	"fmt"
	"io"
	"os"

	"github.com/mongoosemoo/lumisp/types"
)

// Stdout is where display/newline write. Tests redirect this to a buffer;
// the host CLI leaves it pointed at os.Stdout.
var Stdout io.Writer = os.Stdout

// registerGeneral wires equal?, display, newline, and the length
// supplement described in SPEC_FULL.md §4.4.
func registerGeneral(r *Registry) {
	r.Register("equal?", builtinEqualP)
	r.Register("display", builtinDisplay)
	r.Register("newline", builtinNewline)
	r.Register("length", builtinLength)
}

func builtinEqualP(args []types.Value) types.Result {
	if len(args) != 2 {
		return types.Fail(types.E_ARITY_MISMATCH, "equal? requires 2 arguments")
	}
	return types.Ok(types.NewBool(types.Equal(args[0], args[1])))
}

// display prints the canonical form without a trailing newline (§4.4).
func builtinDisplay(args []types.Value) types.Result {
	if len(args) != 1 {
		return types.Fail(types.E_ARITY_MISMATCH, "display requires 1 argument")
	}
	fmt.Fprint(Stdout, args[0].String())
	return types.Ok(types.Nil)
}

func builtinNewline(args []types.Value) types.Result {
	if len(args) != 0 {
		return types.Fail(types.E_ARITY_MISMATCH, "newline requires 0 arguments")
	}
	fmt.Fprintln(Stdout)
	return types.Ok(types.Nil)
}

// length generalizes array-length/proper-list length/string byte length
// (SPEC_FULL.md §4.4).
func builtinLength(args []types.Value) types.Result {
	if len(args) != 1 {
		return types.Fail(types.E_ARITY_MISMATCH, "length requires 1 argument")
	}
	switch v := args[0].(type) {
	case types.ArrayValue:
		return types.Ok(types.NewInt(int64(v.Len())))
	case types.StrValue:
		return types.Ok(types.NewInt(int64(len(v.Val))))
	default:
		elements, ok := types.ListElements(v)
		if !ok {
			return types.Fail(types.E_TYPE_MISMATCH, "length requires a list, array, or string")
		}
		return types.Ok(types.NewInt(int64(len(elements))))
	}
}
