package checker

import "github.com/jtlang/juicec/internal/types"

// arithmeticHintFor narrows an incoming hint to one suitable for checking
// an arithmetic operand: if the caller already wants one specific
// arithmetic type, keep that; otherwise fall back to the preference order
// from spec.md §4.3 so an untyped literal adopts iNative by default.
func arithmeticHintFor(h types.Hint) types.Hint {
	switch h.Kind {
	case types.HintExpected:
		if h.Expected.IsArithmetic() {
			return h
		}
	case types.HintExpectedOneOf:
		return h
	}
	return types.ExpectOneOf(types.ArithmeticPreference...)
}

// maxSignedMagnitude returns the largest non-negative value that fits in a
// signed integer of width w. The lexer never produces negative INT tokens
// (minus is a unary operator), so overflow is checked against this bound.
func maxSignedMagnitude(w types.IntWidth) uint64 {
	if w >= 64 {
		return 1<<63 - 1
	}
	return 1<<(uint(w)-1) - 1
}

// pickIntType resolves the concrete integer type a literal adopts under h,
// defaulting to the native width when h carries no preference.
func pickIntType(h types.Hint) types.Type {
	switch h.Kind {
	case types.HintExpected:
		if h.Expected.IsInt() {
			return h.Expected
		}
	case types.HintExpectedOneOf:
		if t, ok := h.Pick(types.Type.IsInt); ok {
			return t
		}
	}
	return types.INative
}

// pickFloatType resolves the concrete float type a literal adopts under h.
func pickFloatType(h types.Hint) types.Type {
	if t, ok := floatHintType(h); ok {
		return t
	}
	return types.Float64
}

// floatHintType reports the float type h commits a literal to, if any. It
// differs from pickFloatType in that it reports false rather than
// defaulting to Float64 when h carries no floating-point preference —
// checkNumberLit uses that distinction to decide whether an *integer*
// literal should convert to a float type at all (spec.md §4.3: "Integer
// literal under Expected(T) adopts T when T is an integer ... or
// floating-point").
func floatHintType(h types.Hint) (types.Type, bool) {
	switch h.Kind {
	case types.HintExpected:
		if h.Expected.IsFloat() {
			return h.Expected, true
		}
	case types.HintExpectedOneOf:
		// The first arithmetic candidate in preference order decides, so an
		// integer-first list such as ArithmeticPreference keeps an integer
		// literal integral.
		if t, ok := h.Pick(types.Type.IsArithmetic); ok && t.IsFloat() {
			return t, true
		}
	}
	return types.Type{}, false
}
