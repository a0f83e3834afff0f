package parser

import (
	"strconv"
	"strings"

	"github.com/jtlang/juicec/internal/ast"
	"github.com/jtlang/juicec/internal/diag"
	"github.com/jtlang/juicec/internal/lexer"
)

// Precedence levels, low to high, per spec.md §4.2.
const (
	precLowest = iota
	precAssign         // = += -= *= /= %=   (right-associative)
	precOr             // ||
	precAnd            // &&
	precEquality       // == !=
	precComparison     // < <= > >=
	precAdditive       // + -
	precMultiplicative // * / %
	precUnary          // ! - (prefix)
)

var assignOps = map[lexer.Kind]bool{
	lexer.ASSIGN: true, lexer.PLUS_EQ: true, lexer.MINUS_EQ: true,
	lexer.STAR_EQ: true, lexer.SLASH_EQ: true, lexer.PCT_EQ: true,
}

func precedenceOf(k lexer.Kind) int {
	switch {
	case assignOps[k]:
		return precAssign
	case k == lexer.OR_OR:
		return precOr
	case k == lexer.AND_AND:
		return precAnd
	case k == lexer.EQ, k == lexer.NEQ:
		return precEquality
	case k == lexer.LT, k == lexer.LEQ, k == lexer.GT, k == lexer.GEQ:
		return precComparison
	case k == lexer.PLUS, k == lexer.MINUS:
		return precAdditive
	case k == lexer.STAR, k == lexer.SLASH, k == lexer.PCT:
		return precMultiplicative
	}
	return precLowest
}

// parseExpression is the Pratt-style precedence-climbing core: parse a
// prefix/primary, then repeatedly fold in infix operators whose precedence
// exceeds minPrec.
func (p *Parser) parseExpression(minPrec int) ast.Expression {
	left := p.parsePrefix()

	for {
		opPrec := precedenceOf(p.cur.Kind)
		if opPrec <= minPrec {
			break
		}
		op := p.cur
		p.next()

		// Left-associative operators recurse at their own precedence, so
		// a run of same-precedence operators is consumed by this loop
		// rather than by the recursive call. Assignment is
		// right-associative: recursing one level lower lets a chain like
		// `a = b = c` nest as a = (b = c).
		nextMinPrec := opPrec
		if assignOps[op.Kind] {
			nextMinPrec = precAssign - 1
		}
		right := p.parseExpression(nextMinPrec)
		left = &ast.BinaryExpr{Op: op, Left: left, Right: right}
	}

	return left
}

func (p *Parser) parsePrefix() ast.Expression {
	switch p.cur.Kind {
	case lexer.BANG, lexer.MINUS:
		op := p.cur
		p.next()
		operand := p.parseExpression(precUnary)
		return &ast.UnaryExpr{Op: op, Operand: operand}
	case lexer.INT, lexer.FLOAT:
		return p.parseNumberLit()
	case lexer.TRUE, lexer.FALSE:
		tok := p.cur
		p.next()
		return &ast.BoolLit{Tok: tok, Value: tok.Kind == lexer.TRUE}
	case lexer.IDENT:
		tok := p.cur
		p.next()
		return &ast.Ident{Tok: tok}
	case lexer.LPAREN:
		return p.parseGrouping()
	case lexer.IF:
		return p.parseIfExpr(false)
	case lexer.LBRACE:
		// Block-expression, per the primary production in spec.md §4.2;
		// ast.Block satisfies both Statement and Expression so the same
		// node serves both roles.
		return p.parseBlock()
	}

	return errorExpr(p)
}

func (p *Parser) parseGrouping() ast.Expression {
	lparen, _ := p.expect(lexer.LPAREN)
	inner := p.parseExpression(precLowest)
	rparen, _ := p.expect(lexer.RPAREN)
	return &ast.Grouping{LParen: lparen, Inner: inner, RParen: rparen}
}

// parseIfExpr parses `if cond body (elif cond body)* [else body]`. When
// isStatement is true, else is optional; otherwise it is mandatory and its
// absence is reported as MissingElse (spec.md §4.2, §7).
func (p *Parser) parseIfExpr(isStatement bool) *ast.IfExpr {
	ifTok, _ := p.expect(lexer.IF)
	cond := p.parseExpression(precLowest)
	then := p.parseBody(ifTok)

	expr := &ast.IfExpr{IfTok: ifTok, Cond: cond, Then: then, IsStatement: isStatement}

	for p.curIs(lexer.ELIF) {
		elifTok := p.cur
		p.next()
		elifCond := p.parseExpression(precLowest)
		elifBody := p.parseBody(elifTok)
		expr.Elifs = append(expr.Elifs, ast.ElifClause{Tok: elifTok, Cond: elifCond, Body: elifBody})
	}

	if p.curIs(lexer.ELSE) {
		elseTok := p.cur
		p.next()
		elseBody := p.parseBody(elseTok)
		expr.Else = &elseBody
		expr.ElseTok = elseTok
	} else if !isStatement {
		p.diags.Errorf(diag.MissingElse, expr.Range())
	}

	return expr
}

func (p *Parser) parseNumberLit() ast.Expression {
	tok := p.cur
	lexeme := tok.Lexeme(p.buf)
	p.next()

	if tok.Kind == lexer.FLOAT {
		v, err := strconv.ParseFloat(lexeme, 64)
		if err != nil {
			p.diags.Errorf(diag.MalformedNumber, tok.Range, lexeme)
			return &ast.NumberLit{Tok: tok, IsFloat: true}
		}
		return &ast.NumberLit{Tok: tok, IsFloat: true, FloatValue: v}
	}

	v, err := strconv.ParseUint(strings.TrimSpace(lexeme), 10, 64)
	if err != nil {
		p.diags.Errorf(diag.MalformedNumber, tok.Range, lexeme)
		return &ast.NumberLit{Tok: tok}
	}
	return &ast.NumberLit{Tok: tok, IntValue: v}
}
