// Package typedast is structurally parallel to package ast, per spec.md
// §3.4: every node additionally carries its resolved types.Type. The
// variable-reference node stores the declaration's dense slot index and
// mutability; the if-expression node stores the common type of all
// branches. Ownership is identical to the untyped AST.
package typedast

import (
	"github.com/jtlang/juicec/internal/lexer"
	"github.com/jtlang/juicec/internal/types"
)

// Expression is any typed node that produces a value.
type Expression interface {
	Type() types.Type
	// IsLValue reports whether this expression designates an addressable
	// storage location (spec.md §3.3's l-value flag).
	IsLValue() bool
}

// Statement is any typed node with an action; Type() is Nothing unless the
// statement's last component yields a value (spec.md invariant #2, §8).
type Statement interface {
	Type() types.Type
}

// Module is the typed root: the type of the whole compilation is the type
// of its last statement, or Nothing if empty.
type Module struct {
	Stmts []Statement
	Typ   types.Type

	// AllocaCount is the checker's allocaVectorSize: the number of stack
	// slots the IR generator must materialize for declarations (spec.md
	// §3.5, §4.4).
	AllocaCount int
}

func (m *Module) Type() types.Type { return m.Typ }

type BinaryExpr struct {
	Op    lexer.Token
	Left  Expression
	Right Expression
	Typ   types.Type
}

func (b *BinaryExpr) Type() types.Type { return b.Typ }
func (b *BinaryExpr) IsLValue() bool   { return false }

type UnaryExpr struct {
	Op      lexer.Token
	Operand Expression
	Typ     types.Type
}

func (u *UnaryExpr) Type() types.Type { return u.Typ }
func (u *UnaryExpr) IsLValue() bool   { return false }

type NumberLit struct {
	IsFloat    bool
	IntValue   uint64
	FloatValue float64
	Typ        types.Type
}

func (n *NumberLit) Type() types.Type { return n.Typ }
func (n *NumberLit) IsLValue() bool   { return false }

type BoolLit struct {
	Value bool
}

func (*BoolLit) Type() types.Type { return types.Bool }
func (*BoolLit) IsLValue() bool   { return false }

// VarRef is a resolved use of a declared name: the slot it was assigned by
// the checker's dense-slot scheme (spec.md §3.5), whether the declaration
// is mutable, and its type.
type VarRef struct {
	Name    string
	Slot    int
	Mutable bool
	Typ     types.Type
}

func (v *VarRef) Type() types.Type { return v.Typ }
func (v *VarRef) IsLValue() bool   { return v.Mutable }

type Grouping struct {
	Inner Expression
}

func (g *Grouping) Type() types.Type { return g.Inner.Type() }
func (g *Grouping) IsLValue() bool   { return g.Inner.IsLValue() }

// Body is the typed counterpart of ast.Body: exactly one of Block/Expr is
// set.
type Body struct {
	Block *Block
	Expr  Expression
}

func (b Body) Type() types.Type {
	if b.Block != nil {
		return b.Block.Typ
	}
	return b.Expr.Type()
}

type ElifClause struct {
	Cond Expression
	Body Body
}

// IfExpr carries the common type of all branches (spec.md §3.4). As a
// statement its Typ is always Nothing and Else may be nil.
type IfExpr struct {
	Cond        Expression
	Then        Body
	Elifs       []ElifClause
	Else        *Body
	IsStatement bool
	Typ         types.Type
}

func (e *IfExpr) Type() types.Type { return e.Typ }
func (e *IfExpr) IsLValue() bool   { return false }

type Block struct {
	Stmts []Statement
	Typ   types.Type
}

func (b *Block) Type() types.Type { return b.Typ }
func (b *Block) IsLValue() bool   { return false }

type ExprStmt struct {
	X Expression
}

func (e *ExprStmt) Type() types.Type { return e.X.Type() }

type IfStmt struct {
	If *IfExpr
}

func (s *IfStmt) Type() types.Type { return types.Nothing }

type WhileStmt struct {
	Cond Expression
	Body Body
}

func (w *WhileStmt) Type() types.Type { return types.Nothing }

// VarDecl is the typed declaration: the name is bound to Slot in the
// checker's dense declaration vector, with Init already checked against
// the declared or inferred type.
type VarDecl struct {
	Name    string
	Mutable bool
	Slot    int
	Init    Expression
}

func (d *VarDecl) Type() types.Type { return types.Nothing }
