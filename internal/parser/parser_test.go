package parser

import (
	"testing"

	"github.com/jtlang/juicec/internal/ast"
	"github.com/jtlang/juicec/internal/diag"
	"github.com/jtlang/juicec/internal/lexer"
	"github.com/jtlang/juicec/internal/source"
)

func parseSource(t *testing.T, input string) (*ast.Module, *diag.Engine, *source.Buffer) {
	t.Helper()
	buf, err := source.New("<test>", []byte(input))
	if err != nil {
		t.Fatalf("source.New: %v", err)
	}
	engine := diag.New(buf)
	l := lexer.New(buf, engine)
	mod := ParseModule(buf, l, engine)
	return mod, engine, buf
}

func TestParsePrecedence(t *testing.T) {
	mod, engine, _ := parseSource(t, "1 + 2 * 3")
	if engine.HadError() {
		t.Fatalf("unexpected diagnostics: %v", engine.Entries())
	}
	if len(mod.Stmts) != 1 {
		t.Fatalf("want 1 statement, got %d", len(mod.Stmts))
	}
	es, ok := mod.Stmts[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("want ExprStmt, got %T", mod.Stmts[0])
	}
	bin, ok := es.X.(*ast.BinaryExpr)
	if !ok || bin.Op.Kind != lexer.PLUS {
		t.Fatalf("want top-level +, got %#v", es.X)
	}
	rhs, ok := bin.Right.(*ast.BinaryExpr)
	if !ok || rhs.Op.Kind != lexer.STAR {
		t.Fatalf("want right operand to be *, got %#v", bin.Right)
	}
}

func TestParseAssignmentRightAssociative(t *testing.T) {
	mod, engine, _ := parseSource(t, "let x = 1\nx = x = 2")
	if engine.HadError() {
		t.Fatalf("unexpected diagnostics: %v", engine.Entries())
	}
	es := mod.Stmts[1].(*ast.ExprStmt)
	outer, ok := es.X.(*ast.BinaryExpr)
	if !ok || outer.Op.Kind != lexer.ASSIGN {
		t.Fatalf("want outer assignment, got %#v", es.X)
	}
	if _, ok := outer.Right.(*ast.BinaryExpr); !ok {
		t.Fatalf("want right-associative nesting, got %#v", outer.Right)
	}
}

func TestParseVarDecl(t *testing.T) {
	mod, engine, buf := parseSource(t, "var x: Int32 = 3")
	if engine.HadError() {
		t.Fatalf("unexpected diagnostics: %v", engine.Entries())
	}
	decl, ok := mod.Stmts[0].(*ast.VarDecl)
	if !ok {
		t.Fatalf("want VarDecl, got %T", mod.Stmts[0])
	}
	if !decl.Mutable {
		t.Error("var should be mutable")
	}
	if decl.Name(buf) != "x" {
		t.Errorf("name = %q", decl.Name(buf))
	}
	if decl.Type == nil || decl.Type.Name.Lexeme(buf) != "Int32" {
		t.Errorf("type = %#v", decl.Type)
	}
}

func TestParseLetImmutable(t *testing.T) {
	mod, engine, _ := parseSource(t, "let y = 1")
	if engine.HadError() {
		t.Fatalf("unexpected diagnostics: %v", engine.Entries())
	}
	decl := mod.Stmts[0].(*ast.VarDecl)
	if decl.Mutable {
		t.Error("let should be immutable")
	}
}

func TestParseIfExpressionRequiresElse(t *testing.T) {
	// As a var initializer, `if` is parsed as an expression
	// (parseIfExpr(false)), where an absent else is a diagnostic.
	_, engine, _ := parseSource(t, "let x = if true { 1 }")
	if !engine.HadError() {
		t.Fatal("an if-expression without else should be a diagnostic")
	}
}

func TestParseIfStatementElseOptional(t *testing.T) {
	// At top level, `if` is parsed as a statement (parseIfExpr(true)),
	// where an absent else is not a diagnostic.
	_, engine, _ := parseSource(t, "if true { 1 }")
	if engine.HadError() {
		t.Fatalf("if-statement without else should not be a diagnostic: %v", engine.Entries())
	}
}

func TestParseWhile(t *testing.T) {
	mod, engine, _ := parseSource(t, "var i = 0\nwhile i < 3 { i += 1 }\ni")
	if engine.HadError() {
		t.Fatalf("unexpected diagnostics: %v", engine.Entries())
	}
	ws, ok := mod.Stmts[1].(*ast.WhileStmt)
	if !ok {
		t.Fatalf("want WhileStmt, got %T", mod.Stmts[1])
	}
	cond, ok := ws.Cond.(*ast.BinaryExpr)
	if !ok || cond.Op.Kind != lexer.LT {
		t.Fatalf("want < condition, got %#v", ws.Cond)
	}
}

func TestParseElifChain(t *testing.T) {
	mod, engine, _ := parseSource(t, "if true { 1 } elif false { 2 } else { 3 }")
	if engine.HadError() {
		t.Fatalf("unexpected diagnostics: %v", engine.Entries())
	}
	stmt := mod.Stmts[0].(*ast.IfStmt)
	if len(stmt.If.Elifs) != 1 {
		t.Fatalf("want 1 elif, got %d", len(stmt.If.Elifs))
	}
	if stmt.If.Else == nil {
		t.Fatal("want an else branch")
	}
}

func TestParseErrorRecoverySynchronizes(t *testing.T) {
	mod, engine, _ := parseSource(t, ") garbage\nlet x = 1")
	if !engine.HadError() {
		t.Fatal("want a diagnostic for the stray ')'")
	}
	found := false
	for _, s := range mod.Stmts {
		if _, ok := s.(*ast.VarDecl); ok {
			found = true
		}
	}
	if !found {
		t.Fatalf("parser should recover and still see the let statement: %#v", mod.Stmts)
	}
}
