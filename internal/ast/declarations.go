package ast

import (
	"github.com/jtlang/juicec/internal/lexer"
	"github.com/jtlang/juicec/internal/source"
)

// VarDecl is a variable declaration: `var`/`let` name [: Type] = initializer.
// It is both a Declaration and a Statement (spec.md §3.2: "Statement: ...
// and declaration"). Mutable is true for `var`, false for `let`.
type VarDecl struct {
	KeywordTok lexer.Token // 'var' or 'let'
	Mutable    bool
	NameTok    lexer.Token
	Type       *TypeRepr // nil if the type is to be inferred from Init
	Init       Expression
}

func (d *VarDecl) Range() source.Range { return d.KeywordTok.Range.Join(d.Init.Range()) }

// Name returns the declared identifier's source text.
func (d *VarDecl) Name(buf *source.Buffer) string { return d.NameTok.Lexeme(buf) }
