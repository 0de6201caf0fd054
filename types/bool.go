package types

// BoolValue is a boolean. BoolValue{false} is the only falsy value in the
// language (§4.3's truthiness rule).
type BoolValue struct {
	Val bool
}

func NewBool(v bool) BoolValue { return BoolValue{Val: v} }

var (
	True  = BoolValue{Val: true}
	False = BoolValue{Val: false}
)

func (b BoolValue) Type() TypeCode { return TYPE_BOOLEAN }

func (b BoolValue) String() string {
	if b.Val {
		return "#t"
	}
	return "#f"
}

func (b BoolValue) Equal(other Value) bool {
	o, ok := other.(BoolValue)
	return ok && b.Val == o.Val
}

func (b BoolValue) Truthy() bool { return b.Val }
