package ast

import (
	"github.com/jtlang/juicec/internal/lexer"
	"github.com/jtlang/juicec/internal/source"
)

// Body is a control-flow body: a tagged union of "block" or "expression",
// accompanied by the keyword token that introduced it (if/elif/else/while),
// kept around purely for diagnostics. Exactly one of Block or Expr is set.
type Body struct {
	Keyword lexer.Token
	Block   *Block
	Expr    Expression
}

func (b Body) IsBlock() bool { return b.Block != nil }

func (b Body) Range() source.Range {
	if b.Block != nil {
		return b.Block.Range()
	}
	return b.Expr.Range()
}

// BlockBody wraps a Block as a Body.
func BlockBody(kw lexer.Token, block *Block) Body {
	return Body{Keyword: kw, Block: block}
}

// ExprBody wraps a single expression as a Body.
func ExprBody(kw lexer.Token, expr Expression) Body {
	return Body{Keyword: kw, Expr: expr}
}
