package checker

import (
	"github.com/jtlang/juicec/internal/ast"
	"github.com/jtlang/juicec/internal/diag"
	"github.com/jtlang/juicec/internal/lexer"
	"github.com/jtlang/juicec/internal/typedast"
	"github.com/jtlang/juicec/internal/types"
)

func (c *Checker) checkExpression(e ast.Expression, hint types.Hint) typedast.Expression {
	switch n := e.(type) {
	case *ast.BinaryExpr:
		return c.checkBinary(n, hint)
	case *ast.UnaryExpr:
		return c.checkUnary(n, hint)
	case *ast.NumberLit:
		return c.checkNumberLit(n, hint)
	case *ast.BoolLit:
		return &typedast.BoolLit{Value: n.Value}
	case *ast.Ident:
		return c.checkIdent(n, hint)
	case *ast.Grouping:
		return &typedast.Grouping{Inner: c.checkExpression(n.Inner, hint)}
	case *ast.IfExpr:
		return c.checkIfExpr(n, hint)
	case *ast.Block:
		return c.checkBlock(n, hint)
	}
	return &typedast.BoolLit{Value: false}
}

var assignOps = map[lexer.Kind]bool{
	lexer.ASSIGN: true, lexer.PLUS_EQ: true, lexer.MINUS_EQ: true,
	lexer.STAR_EQ: true, lexer.SLASH_EQ: true, lexer.PCT_EQ: true,
}

func (c *Checker) checkBinary(n *ast.BinaryExpr, hint types.Hint) typedast.Expression {
	switch {
	case assignOps[n.Op.Kind]:
		return c.checkAssign(n)
	case n.Op.Kind == lexer.AND_AND || n.Op.Kind == lexer.OR_OR:
		left := c.checkExpression(n.Left, types.Expect(types.Bool))
		if !left.Type().Equals(types.Bool) {
			c.diags.Errorf(diag.NotBoolean, n.Left.Range(), left.Type())
		}
		right := c.checkExpression(n.Right, types.Expect(types.Bool))
		if !right.Type().Equals(types.Bool) {
			c.diags.Errorf(diag.NotBoolean, n.Right.Range(), right.Type())
		}
		return &typedast.BinaryExpr{Op: n.Op, Left: left, Right: right, Typ: types.Bool}
	case n.Op.Kind == lexer.EQ || n.Op.Kind == lexer.NEQ:
		left := c.checkExpression(n.Left, types.Unknown())
		right := c.checkExpression(n.Right, types.Expect(left.Type()))
		if !right.Type().Equals(left.Type()) {
			c.diags.Errorf(diag.TypeMismatch, n.Right.Range(), left.Type(), right.Type())
		}
		return &typedast.BinaryExpr{Op: n.Op, Left: left, Right: right, Typ: types.Bool}
	case n.Op.Kind == lexer.LT || n.Op.Kind == lexer.LEQ || n.Op.Kind == lexer.GT || n.Op.Kind == lexer.GEQ:
		left := c.checkExpression(n.Left, arithmeticHintFor(hint))
		if !left.Type().IsArithmetic() {
			c.diags.Errorf(diag.NotArithmetic, n.Left.Range(), left.Type())
		}
		right := c.checkExpression(n.Right, types.Expect(left.Type()))
		if !right.Type().Equals(left.Type()) {
			c.diags.Errorf(diag.TypeMismatch, n.Right.Range(), left.Type(), right.Type())
		}
		return &typedast.BinaryExpr{Op: n.Op, Left: left, Right: right, Typ: types.Bool}
	default: // + - * / %
		effHint := arithmeticHintFor(hint)
		left := c.checkExpression(n.Left, effHint)
		if !left.Type().IsArithmetic() {
			c.diags.Errorf(diag.NotArithmetic, n.Left.Range(), left.Type())
		}
		right := c.checkExpression(n.Right, types.Expect(left.Type()))
		if !right.Type().Equals(left.Type()) {
			c.diags.Errorf(diag.TypeMismatch, n.Right.Range(), left.Type(), right.Type())
		}
		return &typedast.BinaryExpr{Op: n.Op, Left: left, Right: right, Typ: left.Type()}
	}
}

// checkAssign handles both `=` and the compound-assignment family. The
// left-hand side must be a mutable, previously declared identifier
// (spec.md §4.3 l-value rule); compound forms additionally require an
// arithmetic type since they desugar to a load-modify-store in the IR
// generator.
func (c *Checker) checkAssign(n *ast.BinaryExpr) typedast.Expression {
	ident, ok := n.Left.(*ast.Ident)
	if !ok {
		c.diags.Errorf(diag.LValueRequired, n.Left.Range(), "<expression>")
		right := c.checkExpression(n.Right, types.Unknown())
		return &typedast.BinaryExpr{Op: n.Op, Left: c.checkExpression(n.Left, types.Unknown()), Right: right, Typ: right.Type()}
	}

	name := ident.Name(c.buf)
	d, slot, found := c.lookup(name)
	if !found {
		c.diags.Errorf(diag.UnresolvedName, ident.Range(), name)
		right := c.checkExpression(n.Right, types.Unknown())
		return &typedast.BinaryExpr{
			Op:    n.Op,
			Left:  &typedast.VarRef{Name: name, Slot: -1, Typ: types.Void},
			Right: right,
			Typ:   right.Type(),
		}
	}
	if !d.mutable {
		c.diags.Errorf(diag.LValueRequired, ident.Range(), name)
	}
	if n.Op.Kind != lexer.ASSIGN && !d.typ.IsArithmetic() {
		c.diags.Errorf(diag.NotArithmetic, ident.Range(), d.typ)
	}

	left := &typedast.VarRef{Name: name, Slot: slot, Mutable: d.mutable, Typ: d.typ}
	right := c.checkExpression(n.Right, types.Expect(d.typ))
	if !right.Type().Equals(d.typ) {
		c.diags.Errorf(diag.TypeMismatch, n.Right.Range(), d.typ, right.Type())
	}
	return &typedast.BinaryExpr{Op: n.Op, Left: left, Right: right, Typ: d.typ}
}

func (c *Checker) checkUnary(n *ast.UnaryExpr, hint types.Hint) typedast.Expression {
	if n.Op.Kind == lexer.BANG {
		operand := c.checkExpression(n.Operand, types.Expect(types.Bool))
		if !operand.Type().Equals(types.Bool) {
			c.diags.Errorf(diag.NotBoolean, n.Operand.Range(), operand.Type())
		}
		return &typedast.UnaryExpr{Op: n.Op, Operand: operand, Typ: types.Bool}
	}
	operand := c.checkExpression(n.Operand, arithmeticHintFor(hint))
	if !operand.Type().IsArithmetic() {
		c.diags.Errorf(diag.NotArithmetic, n.Operand.Range(), operand.Type())
	}
	return &typedast.UnaryExpr{Op: n.Op, Operand: operand, Typ: operand.Type()}
}

func (c *Checker) checkNumberLit(n *ast.NumberLit, hint types.Hint) typedast.Expression {
	if n.IsFloat {
		t := pickFloatType(hint)
		return &typedast.NumberLit{IsFloat: true, FloatValue: n.FloatValue, Typ: t}
	}
	// An integer literal under a hint that expects a floating-point type
	// adopts that type directly rather than defaulting to an integer width
	// and failing TypeMismatch against it, mirroring
	// TypeCheckedIntegerLiteralExpressionAST::createByTypeChecking and the
	// ConstantFP lowering in generateIntegerLiteralExpression (spec.md §4.3).
	if t, ok := floatHintType(hint); ok {
		return &typedast.NumberLit{IsFloat: true, FloatValue: float64(n.IntValue), Typ: t}
	}
	t := pickIntType(hint)
	if n.IntValue > maxSignedMagnitude(t.IntWidth()) {
		c.diags.Errorf(diag.LiteralOverflow, n.Range(), n.Tok.Lexeme(c.buf), t)
	}
	return &typedast.NumberLit{IntValue: n.IntValue, Typ: t}
}

func (c *Checker) checkIdent(n *ast.Ident, hint types.Hint) typedast.Expression {
	name := n.Name(c.buf)
	d, slot, found := c.lookup(name)
	if !found {
		c.diags.Errorf(diag.UnresolvedName, n.Range(), name)
		return &typedast.VarRef{Name: name, Slot: -1, Typ: types.Void}
	}
	if hint.RequiresLValue && !d.mutable {
		c.diags.Errorf(diag.LValueRequired, n.Range(), name)
	}
	if !hint.Accepts(d.typ) {
		c.diags.Errorf(diag.TypeMismatch, n.Range(), hintExpectedString(hint), d.typ)
	}
	return &typedast.VarRef{Name: name, Slot: slot, Mutable: d.mutable, Typ: d.typ}
}

func (c *Checker) checkIfExpr(n *ast.IfExpr, hint types.Hint) typedast.Expression {
	te := c.checkIfExprCommon(n, hint)
	return te
}

func (c *Checker) checkBlock(n *ast.Block, hint types.Hint) typedast.Expression {
	tb := c.checkBlockCommon(n, hint)
	return tb
}

// hintExpectedString renders a hint's expectation for TypeMismatch's first
// argument; ExpectedOneOf reports its preferred (first) candidate.
func hintExpectedString(h types.Hint) interface{} {
	switch h.Kind {
	case types.HintExpected:
		return h.Expected
	case types.HintExpectedOneOf:
		if len(h.OneOf) > 0 {
			return h.OneOf[0]
		}
	}
	return "?"
}
