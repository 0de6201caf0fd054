package types

import "strings"

// StrValue is an immutable text value.
type StrValue struct {
	Val string
}

func NewStr(s string) StrValue { return StrValue{Val: s} }

func (s StrValue) Type() TypeCode { return TYPE_STRING }

// String returns the canonical printed form: double-quoted, with embedded
// quotes and backslashes escaped (the reader's inverse).
func (s StrValue) String() string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s.Val {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func (s StrValue) Equal(other Value) bool {
	o, ok := other.(StrValue)
	return ok && s.Val == o.Val
}

// Truthy: the empty string is truthy (§4.3 — only Boolean false is false).
func (s StrValue) Truthy() bool { return true }
