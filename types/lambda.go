package types

// lambdaData holds a user-defined procedure's immutable parts. LambdaValue
// wraps a pointer to it so that two LambdaValue copies describing the same
// closure compare Equal by identity, matching Scheme's usual "procedures
// are equal iff they are literally the same closure" rule.
type lambdaData struct {
	Params []string
	Body   []Value // sequence of body expressions; never empty (§4.3)
	// Env holds the captured environment by handle. Typed as interface{}
	// to avoid an import cycle: the concrete *eval.Environment type lives
	// in the eval package, which already imports types. The evaluator
	// asserts this back to *eval.Environment when applying the lambda,
	// the same import-cycle-avoidance pattern Result.TailEnv uses in
	// types/result.go.
	Env interface{}
}

// LambdaValue is a user-defined procedure: formal parameters (all
// positional), a body as a sequence of expressions, and a captured
// environment handle.
type LambdaValue struct {
	data *lambdaData
}

func NewLambda(params []string, body []Value, env interface{}) LambdaValue {
	return LambdaValue{data: &lambdaData{Params: params, Body: body, Env: env}}
}

func (l LambdaValue) Type() TypeCode { return TYPE_LAMBDA }

func (l LambdaValue) String() string { return "#<lambda>" }

func (l LambdaValue) Equal(other Value) bool {
	o, ok := other.(LambdaValue)
	return ok && l.data == o.data
}

func (l LambdaValue) Truthy() bool { return true }

func (l LambdaValue) Params() []string { return l.data.Params }
func (l LambdaValue) Body() []Value    { return l.data.Body }
func (l LambdaValue) Env() interface{} { return l.data.Env }
