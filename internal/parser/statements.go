package parser

import (
	"github.com/jtlang/juicec/internal/ast"
	"github.com/jtlang/juicec/internal/diag"
	"github.com/jtlang/juicec/internal/lexer"
)

// parseStatement dispatches on the current token to one of: block,
// if-statement, while-statement, declaration, or expression-statement
// (spec.md §3.2). It never returns a nil Statement wrapped in a non-nil
// interface; on a parse error it resynchronizes and still returns a
// statement, built around an errorExpr placeholder where one was needed.
func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Kind {
	case lexer.LBRACE:
		return p.parseBlock()
	case lexer.IF:
		stmt := &ast.IfStmt{If: p.parseIfExpr(true)}
		p.expectTerminator()
		return stmt
	case lexer.WHILE:
		return p.parseWhileStatement()
	case lexer.VAR, lexer.LET:
		return p.parseVarDecl()
	default:
		return p.parseExprStatement()
	}
}

func (p *Parser) parseBlock() *ast.Block {
	lbrace, _ := p.expect(lexer.LBRACE)
	block := &ast.Block{LBrace: lbrace}
	p.skipNewlines()
	for !p.curIs(lexer.RBRACE) && !p.curIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Stmts = append(block.Stmts, stmt)
		}
		p.skipNewlines()
	}
	rbrace, _ := p.expect(lexer.RBRACE)
	block.RBrace = rbrace
	return block
}

func (p *Parser) parseBody(introducer lexer.Token) ast.Body {
	if p.curIs(lexer.LBRACE) {
		return ast.BlockBody(introducer, p.parseBlock())
	}
	expr := p.parseExpression(precLowest)
	return ast.ExprBody(introducer, expr)
}

func (p *Parser) parseWhileStatement() *ast.WhileStmt {
	whileTok, _ := p.expect(lexer.WHILE)
	cond := p.parseExpression(precLowest)
	body := p.parseBody(whileTok)
	stmt := &ast.WhileStmt{WhileTok: whileTok, Cond: cond, Body: body}
	p.expectTerminator()
	return stmt
}

func (p *Parser) parseVarDecl() *ast.VarDecl {
	kwTok := p.cur
	mutable := p.cur.Kind == lexer.VAR
	p.next()

	nameTok, _ := p.expect(lexer.IDENT)

	var typeRepr *ast.TypeRepr
	if p.curIs(lexer.COLON) {
		p.next()
		nameOfType, ok := p.expect(lexer.IDENT)
		if ok {
			typeRepr = &ast.TypeRepr{Name: nameOfType}
		}
	}

	if _, ok := p.expect(lexer.ASSIGN); !ok {
		p.syncToTerminator()
		return &ast.VarDecl{KeywordTok: kwTok, Mutable: mutable, NameTok: nameTok, Type: typeRepr, Init: errorExpr(p)}
	}

	init := p.parseExpression(precLowest)
	decl := &ast.VarDecl{KeywordTok: kwTok, Mutable: mutable, NameTok: nameTok, Type: typeRepr, Init: init}
	p.expectTerminator()
	return decl
}

func (p *Parser) parseExprStatement() ast.Statement {
	expr := p.parseExpression(precLowest)
	stmt := &ast.ExprStmt{X: expr}
	p.expectTerminator()
	return stmt
}

// errorExpr synthesizes a placeholder expression node after a parse error,
// so downstream stages always see a structurally valid tree. It is a
// zero-width identifier at the current position; the checker resolves it,
// like any other unresolved name, to a Void-typed VarRef with slot -1.
func errorExpr(p *Parser) ast.Expression {
	p.diags.Errorf(diag.ExpectedExpression, p.cur.Range, p.cur.Kind.String())
	return &ast.Ident{Tok: p.cur}
}
