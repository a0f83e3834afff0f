package ast

import (
	"github.com/jtlang/juicec/internal/lexer"
	"github.com/jtlang/juicec/internal/source"
)

func (*Block) stmtNode()      {}
func (*Block) exprNode()      {}
func (*ExprStmt) stmtNode()   {}
func (*IfStmt) stmtNode()     {}
func (*WhileStmt) stmtNode()  {}
func (*VarDecl) stmtNode()    {}

// Block is a brace-delimited sequence of statements. A block's type (once
// checked) is the type of its last statement, or Nothing if empty.
type Block struct {
	LBrace lexer.Token
	Stmts  []Statement
	RBrace lexer.Token
}

func (b *Block) Range() source.Range { return b.LBrace.Range.Join(b.RBrace.Range) }

// ExprStmt is a statement that evaluates an expression for its side
// effects (or, at module/block end, for its value).
type ExprStmt struct {
	X Expression
}

func (e *ExprStmt) Range() source.Range { return e.X.Range() }

// IfStmt wraps an IfExpr with IsStatement = true: the else branch is
// optional and the statement's type is Nothing.
type IfStmt struct {
	If *IfExpr
}

func (s *IfStmt) Range() source.Range { return s.If.Range() }

// WhileStmt is statement-only: condition, then body. Its type is always
// Nothing.
type WhileStmt struct {
	WhileTok lexer.Token
	Cond     Expression
	Body     Body
}

func (w *WhileStmt) Range() source.Range { return w.WhileTok.Range.Join(w.Body.Range()) }
