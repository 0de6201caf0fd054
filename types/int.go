package types

import "strconv"

// IntValue is a signed 64-bit integer.
type IntValue struct {
	Val int64
}

func NewInt(v int64) IntValue { return IntValue{Val: v} }

func (i IntValue) Type() TypeCode { return TYPE_INTEGER }

func (i IntValue) String() string { return strconv.FormatInt(i.Val, 10) }

func (i IntValue) Equal(other Value) bool {
	o, ok := other.(IntValue)
	return ok && i.Val == o.Val
}

// Truthy: integers are always truthy, including 0 (§4.3).
func (i IntValue) Truthy() bool { return true }
