package types

// SymbolValue names a variable binding or a map key. Equality is by name
// (§3's "Symbol equality is by name").
type SymbolValue struct {
	Name string
}

func NewSymbol(name string) SymbolValue { return SymbolValue{Name: name} }

func (s SymbolValue) Type() TypeCode { return TYPE_SYMBOL }

func (s SymbolValue) String() string { return s.Name }

func (s SymbolValue) Equal(other Value) bool {
	o, ok := other.(SymbolValue)
	return ok && s.Name == o.Name
}

func (s SymbolValue) Truthy() bool { return true }
