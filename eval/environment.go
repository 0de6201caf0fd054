package eval

import "github.com/mongoosemoo/lumisp/types"

// Environment is a chain of frames, each a mapping from name to Value plus
// a parent link: a classic Environment{vars, parent} chain. Frames are
// shared by handle (ordinary Go
// pointers) so a closure and its enclosing scope observe the same
// bindings (§4.2).
type Environment struct {
	vars   map[string]types.Value
	parent *Environment
}

// NewEnvironment creates a fresh environment with no parent — the global
// frame. No constants are
// pre-populated here; the global primitive bindings are installed by the
// caller (see NewEvaluator in eval.go), since this language has no
// object-system type constants to seed.
func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]types.Value)}
}

// NewChildEnvironment creates a new frame whose parent is the receiver.
func (e *Environment) NewChildEnvironment() *Environment {
	return &Environment{vars: make(map[string]types.Value), parent: e}
}

// Get walks parent links and returns the first binding found.
func (e *Environment) Get(name string) (types.Value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Define creates or overwrites a binding in the current frame only;
// re-defining an existing name in the same frame is allowed (§4.2).
func (e *Environment) Define(name string, value types.Value) {
	e.vars[name] = value
}

// Set walks parent links and overwrites the first frame where name is
// already bound. It reports whether a binding was found.
func (e *Environment) Set(name string, value types.Value) bool {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.vars[name]; ok {
			env.vars[name] = value
			return true
		}
	}
	return false
}

// Extend produces a child frame binding names to values in order, with
// parent set to the receiver. Lengths must match (§4.2).
func (e *Environment) Extend(names []string, values []types.Value) (*Environment, bool) {
	if len(names) != len(values) {
		return nil, false
	}
	child := e.NewChildEnvironment()
	for i, name := range names {
		child.vars[name] = values[i]
	}
	return child, true
}
