// Package parser implements the recursive-descent, Pratt-style operator
// precedence parser from spec.md §4.2. Its entry point, ParseModule,
// accumulates top-level statements until EOF, never throwing out of the
// parse: on an unexpected token it records a diagnostic and resynchronizes
// at the next statement terminator.
package parser

import (
	"github.com/jtlang/juicec/internal/ast"
	"github.com/jtlang/juicec/internal/diag"
	"github.com/jtlang/juicec/internal/lexer"
	"github.com/jtlang/juicec/internal/source"
)

// Parser holds the two-token lookahead window (current + peek) the way the
// teacher's original Pratt parser did before its TokenCursor rewrite; THE
// CORE's grammar needs nothing fancier than that.
type Parser struct {
	buf   *source.Buffer
	lex   *lexer.Lexer
	diags *diag.Engine

	cur  lexer.Token
	peek lexer.Token
}

// New constructs a Parser reading tokens from l, reporting diagnostics to
// diags.
func New(buf *source.Buffer, l *lexer.Lexer, diags *diag.Engine) *Parser {
	p := &Parser{buf: buf, lex: l, diags: diags}
	p.next()
	p.next()
	return p
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.lex.Next()
}

func (p *Parser) curIs(k lexer.Kind) bool  { return p.cur.Kind == k }
func (p *Parser) peekIs(k lexer.Kind) bool { return p.peek.Kind == k }

// expect consumes the current token if it is of kind k, reporting a
// diagnostic and leaving the cursor unmoved otherwise.
func (p *Parser) expect(k lexer.Kind) (lexer.Token, bool) {
	if p.cur.Kind == k {
		tok := p.cur
		p.next()
		return tok, true
	}
	p.diags.Errorf(diag.ExpectedToken, p.cur.Range, k.String(), p.cur.Kind.String())
	return lexer.Token{}, false
}

// skipNewlines consumes zero or more NEWLINE tokens; multiple statement
// terminators collapse into one (spec.md §4.2).
func (p *Parser) skipNewlines() {
	for p.curIs(lexer.NEWLINE) {
		p.next()
	}
}

// expectTerminator consumes a single statement terminator: a NEWLINE, a
// SEMI, or EOF. Multiple terminators collapse.
func (p *Parser) expectTerminator() {
	if p.curIs(lexer.NEWLINE) || p.curIs(lexer.SEMI) {
		p.skipTerminators()
		return
	}
	if p.curIs(lexer.EOF) || p.curIs(lexer.RBRACE) {
		return
	}
	p.diags.Errorf(diag.ExpectedStatementTerminator, p.cur.Range, p.cur.Kind.String())
	p.syncToTerminator()
}

func (p *Parser) skipTerminators() {
	for p.curIs(lexer.NEWLINE) || p.curIs(lexer.SEMI) {
		p.next()
	}
}

// syncToTerminator implements the parser's statement-level error recovery
// (spec.md §4.2, §7): skip tokens up to the next statement terminator.
func (p *Parser) syncToTerminator() {
	for !p.curIs(lexer.NEWLINE) && !p.curIs(lexer.SEMI) && !p.curIs(lexer.EOF) && !p.curIs(lexer.RBRACE) {
		p.next()
	}
	p.skipTerminators()
}

// ParseModule is the parser's entry point: it produces a Module AST,
// accumulating top-level statements until EOF.
func ParseModule(buf *source.Buffer, l *lexer.Lexer, diags *diag.Engine) *ast.Module {
	p := New(buf, l, diags)
	mod := &ast.Module{}
	p.skipNewlines()
	for !p.curIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			mod.Stmts = append(mod.Stmts, stmt)
		}
		p.skipNewlines()
	}
	return mod
}
