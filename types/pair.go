package types

// PairValue is a cons cell. Ordered lists are right-nested pairs terminated
// by Nil. Per §3, pair contents are treated as immutable: no primitive in
// this package mutates Car/Cdr once a pair is built.
type PairValue struct {
	Car Value
	Cdr Value
}

func NewPair(car, cdr Value) PairValue { return PairValue{Car: car, Cdr: cdr} }

// NewList builds a right-nested proper list from elements, terminated by Nil.
func NewList(elements ...Value) Value {
	var result Value = Nil
	for i := len(elements) - 1; i >= 0; i-- {
		result = PairValue{Car: elements[i], Cdr: result}
	}
	return result
}

func (p PairValue) Type() TypeCode { return TYPE_PAIR }

func (p PairValue) String() string {
	return "(" + formatPairBody(p) + ")"
}

// formatPairBody renders the elements of a (possibly improper) list without
// the enclosing parens, space-separated, so callers composing printed forms
// (e.g. quote sugar) can reuse it.
func formatPairBody(p PairValue) string {
	out := p.Car.String()
	switch cdr := p.Cdr.(type) {
	case NilValue:
		return out
	case PairValue:
		return out + " " + formatPairBody(cdr)
	default:
		// improper list: render the tail after a dot
		return out + " . " + cdr.String()
	}
}

func (p PairValue) Equal(other Value) bool {
	o, ok := other.(PairValue)
	return ok && p.Car.Equal(o.Car) && p.Cdr.Equal(o.Cdr)
}

func (p PairValue) Truthy() bool { return true }

// IsProperList reports whether v is Nil or a Pair chain whose final Cdr is
// Nil, walking the whole chain (backs §4.4's `list?`).
func IsProperList(v Value) bool {
	switch t := v.(type) {
	case NilValue:
		return true
	case PairValue:
		return isProperListTail(t.Cdr)
	default:
		return false
	}
}

func isProperListTail(v Value) bool {
	for {
		switch t := v.(type) {
		case NilValue:
			return true
		case PairValue:
			v = t.Cdr
		default:
			return false
		}
	}
}

// ListElements collects the elements of a proper list into a slice. ok is
// false if v is not a proper list.
func ListElements(v Value) (elements []Value, ok bool) {
	for {
		switch t := v.(type) {
		case NilValue:
			return elements, true
		case PairValue:
			elements = append(elements, t.Car)
			v = t.Cdr
		default:
			return nil, false
		}
	}
}
