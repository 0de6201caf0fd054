package types

import "testing"

func TestIntValue(t *testing.T) {
	if NewInt(42).String() != "42" {
		t.Errorf("expected 42, got %q", NewInt(42).String())
	}
	if NewInt(-7).String() != "-7" {
		t.Errorf("expected -7, got %q", NewInt(-7).String())
	}
	if !NewInt(0).Truthy() {
		t.Error("0 should be truthy per §4.3")
	}
	if !NewInt(1).Equal(NewInt(1)) {
		t.Error("equal ints should compare equal")
	}
	if NewInt(1).Equal(NewInt(2)) {
		t.Error("unequal ints should not compare equal")
	}
}

func TestBoolValue(t *testing.T) {
	if True.String() != "#t" || False.String() != "#f" {
		t.Errorf("unexpected bool printed forms: %q %q", True.String(), False.String())
	}
	if False.Truthy() {
		t.Error("Boolean false must be falsy")
	}
	if !True.Truthy() {
		t.Error("Boolean true must be truthy")
	}
}

func TestStrValue(t *testing.T) {
	if NewStr("hi").String() != `"hi"` {
		t.Errorf("expected quoted string, got %q", NewStr("hi").String())
	}
	if NewStr(`a"b\c`).String() != `"a\"b\\c"` {
		t.Errorf("escape mismatch: %q", NewStr(`a"b\c`).String())
	}
	if !NewStr("").Truthy() {
		t.Error("empty string should be truthy per §4.3")
	}
}

func TestNilValue(t *testing.T) {
	if Nil.String() != "()" {
		t.Errorf("expected (), got %q", Nil.String())
	}
	if !Nil.Truthy() {
		t.Error("Nil should be truthy per §4.3")
	}
}

func TestPairAndList(t *testing.T) {
	list := NewList(NewInt(1), NewInt(2), NewInt(3))
	if list.String() != "(1 2 3)" {
		t.Errorf("expected (1 2 3), got %q", list.String())
	}
	elems, ok := ListElements(list)
	if !ok || len(elems) != 3 {
		t.Fatalf("expected 3-element proper list, got %v ok=%v", elems, ok)
	}
	if !IsProperList(list) {
		t.Error("NewList result should be a proper list")
	}
	if !IsProperList(Nil) {
		t.Error("Nil is a proper (empty) list")
	}
	improper := NewPair(NewInt(1), NewInt(2))
	if IsProperList(improper) {
		t.Error("dotted pair is not a proper list")
	}
}

func TestArrayHandleSharing(t *testing.T) {
	a := NewArray([]Value{NewInt(10), NewStr("hi"), True})
	b := a // copies the handle, not the storage
	if !a.Set(0, NewInt(99)) {
		t.Fatal("in-range Set should succeed")
	}
	v, ok := b.Ref(0)
	if !ok || !v.Equal(NewInt(99)) {
		t.Errorf("mutation through one handle should be visible through another, got %v", v)
	}
	if v, ok := a.Ref(99); ok || v != nil {
		t.Errorf("out-of-range Ref should report not-ok, got %v %v", v, ok)
	}
}

func TestArrayDistinctAllocations(t *testing.T) {
	a := NewArray(nil)
	b := NewArray(nil)
	if a.SameHandle(b) {
		t.Error("two empty array literals must produce distinct handles per §4.1")
	}
}

func TestArrayEqualityIsStructural(t *testing.T) {
	a := NewArray([]Value{NewInt(1), NewInt(2)})
	b := NewArray([]Value{NewInt(1), NewInt(2)})
	if a.SameHandle(b) {
		t.Fatal("test setup: expected distinct handles")
	}
	if !a.Equal(b) {
		t.Error("arrays with equal contents should be equal? regardless of handle identity")
	}
}

func TestMapHandleSharingAndEquality(t *testing.T) {
	m := NewMap()
	m.Set(SymbolValue{Name: "name"}, NewStr("Bob"))
	m.Set(SymbolValue{Name: "age"}, NewInt(42))

	other := m // same handle
	other.Set(SymbolValue{Name: "age"}, NewInt(43))
	v, ok := m.Ref(SymbolValue{Name: "age"})
	if !ok || !v.Equal(NewInt(43)) {
		t.Errorf("mutation through shared handle should be visible, got %v", v)
	}

	a := NewMap()
	a.Set(SymbolValue{Name: "a"}, NewInt(1))
	a.Set(SymbolValue{Name: "b"}, NewInt(2))
	b := NewMap()
	b.Set(SymbolValue{Name: "b"}, NewInt(2))
	b.Set(SymbolValue{Name: "a"}, NewInt(1))
	if !a.Equal(b) {
		t.Error("maps with same pairs in different insertion order should be equal?")
	}

	if !NewMap().Equal(NewMap()) {
		t.Error("two empty maps should compare equal")
	}
}

func TestMapRefMissingKeyReportsAbsent(t *testing.T) {
	m := NewMap()
	if _, ok := m.Ref(SymbolValue{Name: "missing"}); ok {
		t.Error("Ref on a missing key should report not-ok; caller maps this to Nil")
	}
}

func TestSymbolEqualityByName(t *testing.T) {
	if !NewSymbol("foo").Equal(NewSymbol("foo")) {
		t.Error("symbols with the same name should be equal")
	}
	if NewSymbol("foo").Equal(NewSymbol("bar")) {
		t.Error("symbols with different names should not be equal")
	}
}

func TestLambdaEqualityIsByIdentity(t *testing.T) {
	l1 := NewLambda([]string{"x"}, []Value{NewSymbol("x")}, nil)
	l2 := NewLambda([]string{"x"}, []Value{NewSymbol("x")}, nil)
	if l1.Equal(l2) {
		t.Error("structurally identical but distinct lambdas should not be equal?")
	}
	if !l1.Equal(l1) {
		t.Error("a lambda should be equal? to itself")
	}
}

func TestPrimitiveEqualityByName(t *testing.T) {
	p1 := NewPrimitive("car", func(args []Value) Result { return Ok(Nil) })
	p2 := NewPrimitive("car", func(args []Value) Result { return Ok(Nil) })
	if !p1.Equal(p2) {
		t.Error("primitives with the same registered name should compare equal")
	}
}
