package types

import "testing"

func TestBuiltinTypeStrings(t *testing.T) {
	tests := []struct {
		typ      Type
		expected string
	}{
		{Void, "Void"},
		{Nothing, "Nothing"},
		{Bool, "Bool"},
		{I1, "Int1"},
		{I8, "Int8"},
		{I16, "Int16"},
		{I32, "Int32"},
		{I64, "Int64"},
		{Float16, "f16"},
		{Float32, "f32"},
		{Float64, "f64"},
		{Float128, "f128"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.expected {
			t.Errorf("String() = %v, want %v", got, tt.expected)
		}
	}
}

func TestTypeEquality(t *testing.T) {
	if !I32.Equals(I32) {
		t.Error("I32 should equal I32")
	}
	if I32.Equals(I64) {
		t.Error("I32 should not equal I64")
	}
	if I32.Equals(Float32) {
		t.Error("I32 should not equal Float32")
	}
	if Bool.Equals(I1) {
		t.Error("Bool is its own kind, distinct from Int1")
	}
}

func TestIsArithmetic(t *testing.T) {
	for _, typ := range []Type{I8, I16, I32, I64, Float32, Float64} {
		if !typ.IsArithmetic() {
			t.Errorf("%s should be arithmetic", typ)
		}
	}
	for _, typ := range []Type{Bool, Void, Nothing} {
		if typ.IsArithmetic() {
			t.Errorf("%s should not be arithmetic", typ)
		}
	}
}

func TestLookup(t *testing.T) {
	if typ, ok := Lookup("Int32"); !ok || typ != I32 {
		t.Errorf("Lookup(Int32) = %v, %v", typ, ok)
	}
	if _, ok := Lookup("NotAType"); ok {
		t.Error("Lookup should fail for an unknown name")
	}
}

func TestHintAccepts(t *testing.T) {
	h := Expect(I32)
	if !h.Accepts(I32) {
		t.Error("Expected(I32) should accept I32")
	}
	if h.Accepts(I64) {
		t.Error("Expected(I32) should not accept I64")
	}

	oneOf := ExpectOneOf(ArithmeticPreference...)
	if !oneOf.Accepts(I64) || !oneOf.Accepts(Float32) {
		t.Error("ExpectedOneOf(arithmetic) should accept I64 and Float32")
	}
	if oneOf.Accepts(Bool) {
		t.Error("ExpectedOneOf(arithmetic) should not accept Bool")
	}

	if got, ok := oneOf.Pick(func(t Type) bool { return t.IsFloat() }); !ok || got != Float64 {
		t.Errorf("Pick(IsFloat) = %v, %v, want Float64, true", got, ok)
	}
}
