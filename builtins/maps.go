package builtins

import "github.com/mongoosemoo/lumisp/types"

// registerMaps wires make-map, map-ref, map-set!, map-keys, map? on top of
// MapValue's own method set, narrowed to Symbol-keyed maps (§4.4).
func registerMaps(r *Registry) {
	r.Register("make-map", builtinMakeMap)
	r.Register("map-ref", builtinMapRef)
	r.Register("map-set!", builtinMapSet)
	r.Register("map-keys", builtinMapKeys)
	r.Register("map?", builtinMapP)
}

func builtinMakeMap(args []types.Value) types.Result {
	if len(args) != 0 {
		return types.Fail(types.E_ARITY_MISMATCH, "make-map requires 0 arguments")
	}
	return types.Ok(types.NewMap())
}

func asSymbol(v types.Value) (types.SymbolValue, bool) {
	s, ok := v.(types.SymbolValue)
	return s, ok
}

// map-ref returns the value for symbol k or Nil if absent (§4.4).
func builtinMapRef(args []types.Value) types.Result {
	if len(args) != 2 {
		return types.Fail(types.E_ARITY_MISMATCH, "map-ref requires 2 arguments")
	}
	m, ok := args[0].(types.MapValue)
	if !ok {
		return types.Fail(types.E_TYPE_MISMATCH, "map-ref requires a map")
	}
	key, ok := asSymbol(args[1])
	if !ok {
		return types.Fail(types.E_TYPE_MISMATCH, "map-ref requires a symbol key")
	}
	v, ok := m.Ref(key)
	if !ok {
		return types.Ok(types.Nil)
	}
	return types.Ok(v)
}

func builtinMapSet(args []types.Value) types.Result {
	if len(args) != 3 {
		return types.Fail(types.E_ARITY_MISMATCH, "map-set! requires 3 arguments")
	}
	m, ok := args[0].(types.MapValue)
	if !ok {
		return types.Fail(types.E_TYPE_MISMATCH, "map-set! requires a map")
	}
	key, ok := asSymbol(args[1])
	if !ok {
		return types.Fail(types.E_TYPE_MISMATCH, "map-set! requires a symbol key")
	}
	m.Set(key, args[2])
	return types.Ok(types.Nil)
}

// map-keys returns a list of keys in any order (§4.4); Keys() already
// snapshots before returning, so mutation during this call is safe (§5).
func builtinMapKeys(args []types.Value) types.Result {
	if len(args) != 1 {
		return types.Fail(types.E_ARITY_MISMATCH, "map-keys requires 1 argument")
	}
	m, ok := args[0].(types.MapValue)
	if !ok {
		return types.Fail(types.E_TYPE_MISMATCH, "map-keys requires a map")
	}
	keys := m.Keys()
	elements := make([]types.Value, len(keys))
	for i, k := range keys {
		elements[i] = k
	}
	return types.Ok(types.NewList(elements...))
}

func builtinMapP(args []types.Value) types.Result {
	if len(args) != 1 {
		return types.Fail(types.E_ARITY_MISMATCH, "map? requires 1 argument")
	}
	_, ok := args[0].(types.MapValue)
	return types.Ok(types.NewBool(ok))
}
