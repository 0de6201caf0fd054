package types

// NilValue is the empty list / unit value, and the canonical "no result"
// return of mutators (§3).
type NilValue struct{}

// Nil is the single Nil value; Nil is immutable so sharing the zero value
// is safe and avoids allocating one per occurrence.
var Nil = NilValue{}

func (n NilValue) Type() TypeCode { return TYPE_NIL }

func (n NilValue) String() string { return "()" }

func (n NilValue) Equal(other Value) bool {
	_, ok := other.(NilValue)
	return ok
}

// Truthy: the empty list is truthy (§4.3 — only Boolean false is false).
func (n NilValue) Truthy() bool { return true }
