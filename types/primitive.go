package types

// PrimitiveFunc is the Go-level signature every built-in procedure
// implements: take the already-evaluated argument list, return a Result.
// Primitives never need FlowTailCall — a primitive is never tail-recursive
// into itself (§4.3), so a call into one always settles to a value or an
// error immediately.
type PrimitiveFunc func(args []Value) Result

// PrimitiveValue is an opaque handle to a built-in procedure, carrying a
// name for diagnostics (error messages, `procedure?`) and the callable.
type PrimitiveValue struct {
	Name string
	Fn   PrimitiveFunc
}

func NewPrimitive(name string, fn PrimitiveFunc) PrimitiveValue {
	return PrimitiveValue{Name: name, Fn: fn}
}

func (p PrimitiveValue) Type() TypeCode { return TYPE_PRIMITIVE }

func (p PrimitiveValue) String() string { return "#<primitive:" + p.Name + ">" }

// Equal: primitives are compared by name, since two handles for the same
// registered procedure should compare equal under equal? even though Fn
// values (Go funcs) are not themselves comparable.
func (p PrimitiveValue) Equal(other Value) bool {
	o, ok := other.(PrimitiveValue)
	return ok && p.Name == o.Name
}

func (p PrimitiveValue) Truthy() bool { return true }
