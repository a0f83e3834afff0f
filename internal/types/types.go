// Package types implements the closed set of built-in types from spec.md
// §3.3: Void, Nothing, Bool, signed integers of width 1/8/16/32/64, and
// floats f16/f32/f64/f128. Equality is structural and every singleton is
// statically allocated, mirroring the teacher's INTEGER/FLOAT/STRING/...
// package-level singletons.
package types

import "fmt"

// Kind names which built-in type a Type value is.
type Kind int

const (
	KindVoid Kind = iota
	KindNothing
	KindBool
	KindInt
	KindFloat
)

func (k Kind) String() string {
	switch k {
	case KindVoid:
		return "Void"
	case KindNothing:
		return "Nothing"
	case KindBool:
		return "Bool"
	case KindInt:
		return "Int"
	case KindFloat:
		return "Float"
	}
	return "?"
}

// IntWidth is one of the five supported integer widths.
type IntWidth int

const (
	Width1 IntWidth = 1
	Width8 IntWidth = 8
	Width16 IntWidth = 16
	Width32 IntWidth = 32
	Width64 IntWidth = 64
)

// FloatKind is one of the four supported floating-point kinds.
type FloatKind int

const (
	F16 FloatKind = iota
	F32
	F64
	F128
)

func (f FloatKind) String() string {
	switch f {
	case F16:
		return "f16"
	case F32:
		return "f32"
	case F64:
		return "f64"
	case F128:
		return "f128"
	}
	return "?"
}

// Type is a built-in type. It is comparable by value: two Types are the
// same type iff ==.
type Type struct {
	kind      Kind
	intWidth  IntWidth
	floatKind FloatKind
}

// Singletons, per spec.md §3.3. "Nothing" is the type of statements that do
// not yield a value.
var (
	Void    = Type{kind: KindVoid}
	Nothing = Type{kind: KindNothing}
	Bool    = Type{kind: KindBool}

	I1  = Type{kind: KindInt, intWidth: Width1}
	I8  = Type{kind: KindInt, intWidth: Width8}
	I16 = Type{kind: KindInt, intWidth: Width16}
	I32 = Type{kind: KindInt, intWidth: Width32}
	I64 = Type{kind: KindInt, intWidth: Width64}

	Float16  = Type{kind: KindFloat, floatKind: F16}
	Float32  = Type{kind: KindFloat, floatKind: F32}
	Float64  = Type{kind: KindFloat, floatKind: F64}
	Float128 = Type{kind: KindFloat, floatKind: F128}
)

// INative is the native integer width used to default integer literals
// under a None/Unknown hint (spec.md §4.3); it is I64 on every target this
// compiler supports.
var INative = I64

// Kind returns the type's category.
func (t Type) Kind() Kind { return t.kind }

// IntWidth returns the integer width; only meaningful when Kind() == KindInt.
func (t Type) IntWidth() IntWidth { return t.intWidth }

// FloatKind returns the float kind; only meaningful when Kind() == KindFloat.
func (t Type) FloatKind() FloatKind { return t.floatKind }

// IsInt reports whether t is one of the integer widths, including Bool's
// underlying i1 representation is excluded: Bool is its own Kind.
func (t Type) IsInt() bool { return t.kind == KindInt }

// IsFloat reports whether t is one of the float kinds.
func (t Type) IsFloat() bool { return t.kind == KindFloat }

// IsArithmetic reports whether t supports +, -, *, /, <, <=, >, >= — every
// integer and float type (but not Bool, Void or Nothing).
func (t Type) IsArithmetic() bool { return t.IsInt() || t.IsFloat() }

// Equals reports structural equality. Built-in types are comparable by ==
// directly; Equals exists for symmetry with the checker's TypeHint API and
// so callers needn't special-case the zero Type.
func (t Type) Equals(other Type) bool { return t == other }

// String renders the type the way diagnostics and IR dumps name it.
func (t Type) String() string {
	switch t.kind {
	case KindVoid:
		return "Void"
	case KindNothing:
		return "Nothing"
	case KindBool:
		return "Bool"
	case KindInt:
		return fmt.Sprintf("Int%d", t.intWidth)
	case KindFloat:
		return t.floatKind.String()
	}
	return "<invalid type>"
}

// byName maps the source language's type-annotation spelling (spec.md §3.2
// TypeRepr) to the Type it denotes.
var byName = map[string]Type{
	"Void": Void,
	"Bool": Bool,
	"Int1": I1, "Int8": I8, "Int16": I16, "Int32": I32, "Int64": I64,
	"Float16": Float16, "Float32": Float32, "Float64": Float64, "Float128": Float128,
}

// Lookup resolves a type-annotation name to its Type. ok is false for any
// name outside the closed built-in set (spec.md's Non-goals exclude
// user-defined types entirely).
func Lookup(name string) (t Type, ok bool) {
	t, ok = byName[name]
	return t, ok
}
