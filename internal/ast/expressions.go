package ast

import (
	"github.com/jtlang/juicec/internal/lexer"
	"github.com/jtlang/juicec/internal/source"
)

func (*BinaryExpr) exprNode()   {}
func (*NumberLit) exprNode()    {}
func (*BoolLit) exprNode()      {}
func (*Ident) exprNode()        {}
func (*Grouping) exprNode()     {}
func (*IfExpr) exprNode()       {}
func (*UnaryExpr) exprNode()    {}

// BinaryExpr is an operator token plus its left and right operands. It
// covers assignment, compound-assignment, logical, equality, comparison,
// additive and multiplicative operators (spec.md §4.2 precedence table).
type BinaryExpr struct {
	Op    lexer.Token
	Left  Expression
	Right Expression
}

func (b *BinaryExpr) Range() source.Range { return b.Left.Range().Join(b.Right.Range()) }

// UnaryExpr is a prefix operator (! or -) applied to an operand. Parsed but
// not exercised by THE CORE beyond parsing, per spec.md §4.2 precedence
// level 8.
type UnaryExpr struct {
	Op      lexer.Token
	Operand Expression
}

func (u *UnaryExpr) Range() source.Range { return u.Op.Range.Join(u.Operand.Range()) }

// NumberLit is an integer or floating-point literal token together with its
// parsed numeric value. Which of IntValue/FloatValue is meaningful is
// determined by the originating token's Kind (INT vs FLOAT).
type NumberLit struct {
	Tok        lexer.Token
	IsFloat    bool
	IntValue   uint64
	FloatValue float64
}

func (n *NumberLit) Range() source.Range { return n.Tok.Range }

// BoolLit is the `true` or `false` keyword token.
type BoolLit struct {
	Tok   lexer.Token
	Value bool
}

func (b *BoolLit) Range() source.Range { return b.Tok.Range }

// Ident is an identifier reference: a use of a previously declared name.
type Ident struct {
	Tok lexer.Token
}

func (i *Ident) Range() source.Range { return i.Tok.Range }

// Name returns the identifier's source text.
func (i *Ident) Name(buf *source.Buffer) string { return i.Tok.Lexeme(buf) }

// Grouping is a parenthesized expression, kept as its own node (rather than
// collapsed away) so that diagnostics and the formatter can see the
// original parens.
type Grouping struct {
	LParen lexer.Token
	Inner  Expression
	RParen lexer.Token
}

func (g *Grouping) Range() source.Range { return g.LParen.Range.Join(g.RParen.Range) }

// ElifClause is one `elif` arm of an IfExpr.
type ElifClause struct {
	Tok  lexer.Token // the 'elif' keyword
	Cond Expression
	Body Body
}

// IfExpr is both an expression and (wrapped in IfStmt) a statement, per
// spec.md §3.2. When IsStatement is false every branch must yield a value
// of a common type and Else is mandatory; when true, Else is optional and
// no value is produced.
type IfExpr struct {
	IfTok      lexer.Token
	Cond       Expression
	Then       Body
	Elifs      []ElifClause
	Else       *Body // nil if no else branch
	ElseTok    lexer.Token
	IsStatement bool
}

func (e *IfExpr) Range() source.Range {
	r := e.IfTok.Range.Join(e.Then.Range())
	for _, el := range e.Elifs {
		r = r.Join(el.Body.Range())
	}
	if e.Else != nil {
		r = r.Join(e.Else.Range())
	}
	return r
}
