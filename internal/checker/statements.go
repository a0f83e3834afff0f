package checker

import (
	"github.com/jtlang/juicec/internal/ast"
	"github.com/jtlang/juicec/internal/diag"
	"github.com/jtlang/juicec/internal/typedast"
	"github.com/jtlang/juicec/internal/types"
)

// checkStatement dispatches on the untyped statement kind. hint is only
// meaningful when s sits in value position (the last statement of a block
// or module); every other statement is checked under types.None().
func (c *Checker) checkStatement(s ast.Statement, hint types.Hint) typedast.Statement {
	switch n := s.(type) {
	case *ast.Block:
		return c.checkBlockCommon(n, hint)
	case *ast.ExprStmt:
		return &typedast.ExprStmt{X: c.checkExpression(n.X, hint)}
	case *ast.IfStmt:
		return &typedast.IfStmt{If: c.checkIfExprCommon(n.If, types.None())}
	case *ast.WhileStmt:
		return c.checkWhile(n)
	case *ast.VarDecl:
		return c.checkVarDecl(n)
	}
	return &typedast.ExprStmt{X: &typedast.BoolLit{Value: false}}
}

// checkBlockCommon type-checks a block in its own scope. Every statement
// but the last is checked under None(); the last inherits hint, so a block
// used as an expression (if-branch, var initializer) propagates the
// expected type down to its tail expression.
func (c *Checker) checkBlockCommon(n *ast.Block, hint types.Hint) *typedast.Block {
	c.pushScope()
	defer c.popScope()

	out := &typedast.Block{}
	for i, s := range n.Stmts {
		h := types.None()
		if i == len(n.Stmts)-1 {
			h = hint
		}
		out.Stmts = append(out.Stmts, c.checkStatement(s, h))
	}
	if len(out.Stmts) > 0 {
		out.Typ = out.Stmts[len(out.Stmts)-1].Type()
	} else {
		out.Typ = types.Nothing
	}
	return out
}

func (c *Checker) checkBody(b ast.Body, hint types.Hint) typedast.Body {
	if b.Block != nil {
		return typedast.Body{Block: c.checkBlockCommon(b.Block, hint)}
	}
	return typedast.Body{Expr: c.checkExpression(b.Expr, hint)}
}

// checkIfExprCommon checks an if/elif/else chain. As a statement, branches
// are checked under None() and need not agree; as an expression, all
// branches must resolve to the same type, determined by the first branch
// when hint itself carries no expectation (spec.md §4.3, §3.4).
func (c *Checker) checkIfExprCommon(n *ast.IfExpr, hint types.Hint) *typedast.IfExpr {
	cond := c.checkExpression(n.Cond, types.Expect(types.Bool))
	if !cond.Type().Equals(types.Bool) {
		c.diags.Errorf(diag.NotBoolean, n.Cond.Range(), cond.Type())
	}

	out := &typedast.IfExpr{Cond: cond, IsStatement: n.IsStatement}

	if n.IsStatement {
		out.Then = c.checkBody(n.Then, types.None())
		for _, el := range n.Elifs {
			elCond := c.checkExpression(el.Cond, types.Expect(types.Bool))
			if !elCond.Type().Equals(types.Bool) {
				c.diags.Errorf(diag.NotBoolean, el.Cond.Range(), elCond.Type())
			}
			out.Elifs = append(out.Elifs, typedast.ElifClause{Cond: elCond, Body: c.checkBody(el.Body, types.None())})
		}
		if n.Else != nil {
			eb := c.checkBody(*n.Else, types.None())
			out.Else = &eb
		}
		out.Typ = types.Nothing
		return out
	}

	branchHint := hint
	out.Then = c.checkBody(n.Then, branchHint)
	common := out.Then.Type()
	if branchHint.Kind == types.HintNone || branchHint.Kind == types.HintUnknown {
		branchHint = types.Expect(common)
	}

	for _, el := range n.Elifs {
		elCond := c.checkExpression(el.Cond, types.Expect(types.Bool))
		if !elCond.Type().Equals(types.Bool) {
			c.diags.Errorf(diag.NotBoolean, el.Cond.Range(), elCond.Type())
		}
		elBody := c.checkBody(el.Body, branchHint)
		if !elBody.Type().Equals(common) {
			c.diags.Errorf(diag.BranchTypeMismatch, el.Body.Range(), common, elBody.Type())
		}
		out.Elifs = append(out.Elifs, typedast.ElifClause{Cond: elCond, Body: elBody})
	}

	// n.Else is nil here only when the parser has already reported
	// MissingElse (it synthesizes no else body), so the nil case is skipped
	// without a second diagnostic.
	if n.Else != nil {
		elseBody := c.checkBody(*n.Else, branchHint)
		if !elseBody.Type().Equals(common) {
			c.diags.Errorf(diag.BranchTypeMismatch, n.Else.Range(), common, elseBody.Type())
		}
		out.Else = &elseBody
	}
	out.Typ = common
	return out
}

func (c *Checker) checkWhile(n *ast.WhileStmt) *typedast.WhileStmt {
	cond := c.checkExpression(n.Cond, types.Expect(types.Bool))
	if !cond.Type().Equals(types.Bool) {
		c.diags.Errorf(diag.NotBoolean, n.Cond.Range(), cond.Type())
	}
	body := c.checkBody(n.Body, types.None())
	return &typedast.WhileStmt{Cond: cond, Body: body}
}

func (c *Checker) checkVarDecl(n *ast.VarDecl) *typedast.VarDecl {
	name := n.Name(c.buf)

	var declared types.Type
	hasDeclared := false
	if n.Type != nil {
		typeName := n.Type.Name.Lexeme(c.buf)
		t, ok := types.Lookup(typeName)
		if !ok {
			c.diags.Errorf(diag.UnresolvedName, n.Type.Range(), typeName)
		} else {
			declared = t
			hasDeclared = true
		}
	}

	var init typedast.Expression
	if hasDeclared {
		init = c.checkExpression(n.Init, types.Expect(declared))
		if !init.Type().Equals(declared) {
			c.diags.Errorf(diag.TypeMismatch, n.Init.Range(), declared, init.Type())
		}
	} else {
		init = c.checkExpression(n.Init, types.Unknown())
		declared = init.Type()
	}

	slot := c.declare(name, n.Mutable, declared, n.Range())
	return &typedast.VarDecl{Name: name, Mutable: n.Mutable, Slot: slot, Init: init}
}
