// Package golden is a YAML-driven table test harness: each fixture names a
// snippet of source, evaluates it in a fresh child scope of a shared global
// environment, and
// checks the printed result or the expected error code, grounded on the
// teacher's conformance/schema.go and conformance/loader.go, trimmed down
// to what this dialect needs (no setup/teardown/permission fields — this
// language has no object model to set up fixtures against).
package golden

// Suite is one YAML file: a named group of related test cases.
type Suite struct {
	Name  string `yaml:"name"`
	Tests []Case `yaml:"tests"`
}

// Case is a single (code, expectation) pair.
type Case struct {
	Name   string     `yaml:"name"`
	Code   string     `yaml:"code"`
	Expect Expectation `yaml:"expect"`
}

// Expectation holds exactly one of Value (the canonical printed form the
// result must match) or Error (the ErrorCode name, e.g. "E_UNBOUND").
type Expectation struct {
	Value string `yaml:"value,omitempty"`
	Error string `yaml:"error,omitempty"`
}
