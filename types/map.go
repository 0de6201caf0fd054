package types

import "strings"

// mapStorage is the shared, interior-mutable backing store for a Map value,
// a Go map keyed by the
// hashable name plus an insertion-order slice, so printing and map-keys can
// walk entries in a stable order without depending on Go map iteration
// order. Keys are always Symbol values (§3's invariant), so the hash key is
// simply the symbol name — no String()-based hashing trick is needed here.
type mapStorage struct {
	order []string
	pairs map[string]Value
}

// MapValue is a mutable mapping from Symbol keys to Values, shared by handle.
type MapValue struct {
	data *mapStorage
}

// NewMap allocates a fresh, empty Map handle.
func NewMap() MapValue {
	return MapValue{data: &mapStorage{pairs: make(map[string]Value)}}
}

func (m MapValue) Type() TypeCode { return TYPE_MAP }

// String renders entries in insertion order (§9's open question: printed
// order is unconstrained, tests must compare via equal?, never printed
// strings, for maps).
func (m MapValue) String() string {
	if len(m.data.order) == 0 {
		return "{}"
	}
	parts := make([]string, 0, len(m.data.order))
	for _, key := range m.data.order {
		parts = append(parts, key+": "+m.data.pairs[key].String())
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Equal is structural and ignores insertion order (§3): two empty maps
// compare equal, and same-length maps compare equal iff every key in one
// has an equal value in the other.
func (m MapValue) Equal(other Value) bool {
	o, ok := other.(MapValue)
	if !ok || len(m.data.order) != len(o.data.order) {
		return false
	}
	for key, v := range m.data.pairs {
		ov, present := o.data.pairs[key]
		if !present || !v.Equal(ov) {
			return false
		}
	}
	return true
}

func (m MapValue) Truthy() bool { return true }

func (m MapValue) Len() int { return len(m.data.order) }

// Ref returns the value bound to a Symbol key, or (nil, false) if absent;
// the map-ref primitive turns the absent case into Nil (§4.4).
func (m MapValue) Ref(key SymbolValue) (Value, bool) {
	v, ok := m.data.pairs[key.Name]
	return v, ok
}

// Set mutates the shared backing store in place, inserting or updating.
func (m MapValue) Set(key SymbolValue, v Value) {
	if _, exists := m.data.pairs[key.Name]; !exists {
		m.data.order = append(m.data.order, key.Name)
	}
	m.data.pairs[key.Name] = v
}

// Keys returns the map's keys. Per §5, mutation during iteration is not
// defined to be safe, so callers should snapshot keys (as this does) before
// traversing.
func (m MapValue) Keys() []SymbolValue {
	out := make([]SymbolValue, len(m.data.order))
	for i, name := range m.data.order {
		out[i] = SymbolValue{Name: name}
	}
	return out
}

// SameHandle reports whether m and other share the same underlying storage.
func (m MapValue) SameHandle(other MapValue) bool {
	return m.data == other.data
}
