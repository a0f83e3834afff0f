package types

// HintKind names which variant of TypeHint is active.
type HintKind int

const (
	// HintNone carries no expectation at all (e.g. a statement checked
	// purely for its side effects).
	HintNone HintKind = iota
	// HintUnknown means "infer whatever comes naturally," as opposed to
	// None's "this position doesn't care."
	HintUnknown
	// HintExpected names exactly one expected type.
	HintExpected
	// HintExpectedOneOf names several acceptable types in preference
	// order; the first match wins.
	HintExpectedOneOf
)

// Hint is the downward type information passed into the checker
// (spec.md §4.3, design note in §9): `None | Unknown | Expected(T) |
// ExpectedOneOf({T1,...,Tn})`, each additionally carrying a
// requires-lvalue flag. Hint is passed by value and never mutated once
// constructed — callers build a new Hint rather than editing one in place.
type Hint struct {
	Kind            HintKind
	Expected        Type
	OneOf           []Type
	RequiresLValue  bool
}

// None is the hint used where no expectation applies.
func None() Hint { return Hint{Kind: HintNone} }

// Unknown is the hint used where any type is fine and should be inferred
// from the expression itself.
func Unknown() Hint { return Hint{Kind: HintUnknown} }

// Expect builds an Expected(t) hint.
func Expect(t Type) Hint { return Hint{Kind: HintExpected, Expected: t} }

// ExpectLValue builds an Expected(t) hint that also requires an lvalue.
func ExpectLValue(t Type) Hint {
	return Hint{Kind: HintExpected, Expected: t, RequiresLValue: true}
}

// ExpectOneOf builds an ExpectedOneOf hint over ts, in preference order.
func ExpectOneOf(ts ...Type) Hint { return Hint{Kind: HintExpectedOneOf, OneOf: ts} }

// ExpectOneOfLValue builds an ExpectedOneOf hint that also requires an
// lvalue (used for the left operand of a compound-assignment).
func ExpectOneOfLValue(ts ...Type) Hint {
	return Hint{Kind: HintExpectedOneOf, OneOf: ts, RequiresLValue: true}
}

// ArithmeticPreference is the preferred-order list consulted when an
// integer literal is checked under ExpectedOneOf and no single type was
// named (spec.md §4.3): iNative, i64, i32, i16, i8, f64, f32.
var ArithmeticPreference = []Type{INative, I64, I32, I16, I8, Float64, Float32}

// Accepts reports whether t satisfies the hint on its own terms (ignoring
// RequiresLValue, which the caller must check against the expression
// being an lvalue, not against the type).
func (h Hint) Accepts(t Type) bool {
	switch h.Kind {
	case HintNone, HintUnknown:
		return true
	case HintExpected:
		return t.Equals(h.Expected)
	case HintExpectedOneOf:
		for _, candidate := range h.OneOf {
			if t.Equals(candidate) {
				return true
			}
		}
	}
	return false
}

// Pick returns the first type in an ExpectedOneOf hint that matches pred,
// or the zero Type and false if none does (or the hint isn't
// ExpectedOneOf).
func (h Hint) Pick(pred func(Type) bool) (Type, bool) {
	if h.Kind != HintExpectedOneOf {
		return Type{}, false
	}
	for _, t := range h.OneOf {
		if pred(t) {
			return t, true
		}
	}
	return Type{}, false
}
