package checker

import (
	"testing"

	"github.com/jtlang/juicec/internal/diag"
	"github.com/jtlang/juicec/internal/lexer"
	"github.com/jtlang/juicec/internal/parser"
	"github.com/jtlang/juicec/internal/source"
	"github.com/jtlang/juicec/internal/typedast"
	"github.com/jtlang/juicec/internal/types"
)

func checkSource(t *testing.T, input string) (*typedast.Module, *diag.Engine) {
	t.Helper()
	buf, err := source.New("<test>", []byte(input))
	if err != nil {
		t.Fatalf("source.New: %v", err)
	}
	engine := diag.New(buf)
	l := lexer.New(buf, engine)
	mod := parser.ParseModule(buf, l, engine)
	if engine.HadError() {
		t.Fatalf("unexpected parse diagnostics: %v", engine.Entries())
	}
	return Check(mod, buf, engine), engine
}

func TestIntLiteralDefaultsToNative(t *testing.T) {
	tm, engine := checkSource(t, "let x = 1")
	if engine.HadError() {
		t.Fatalf("unexpected diagnostics: %v", engine.Entries())
	}
	decl := tm.Stmts[0].(*typedast.VarDecl)
	if !decl.Init.Type().Equals(types.INative) {
		t.Errorf("want native int default, got %s", decl.Init.Type())
	}
}

func TestVarDeclExplicitType(t *testing.T) {
	tm, engine := checkSource(t, "var x: Int32 = 3")
	if engine.HadError() {
		t.Fatalf("unexpected diagnostics: %v", engine.Entries())
	}
	decl := tm.Stmts[0].(*typedast.VarDecl)
	if !decl.Init.Type().Equals(types.I32) {
		t.Errorf("want Int32, got %s", decl.Init.Type())
	}
}

func TestLiteralOverflowReported(t *testing.T) {
	_, engine := checkSource(t, "var x: Int8 = 1000")
	if !engine.HadError() {
		t.Fatal("want overflow diagnostic")
	}
}

func TestAssignToImmutableReportsLValueRequired(t *testing.T) {
	_, engine := checkSource(t, "let x = 1\nx = 2")
	if !engine.HadError() {
		t.Fatal("want LValueRequired diagnostic for assignment to let")
	}
}

func TestAssignToMutableOK(t *testing.T) {
	_, engine := checkSource(t, "var x = 1\nx = 2")
	if engine.HadError() {
		t.Fatalf("unexpected diagnostics: %v", engine.Entries())
	}
}

func TestUnresolvedNameReported(t *testing.T) {
	_, engine := checkSource(t, "y")
	if !engine.HadError() {
		t.Fatal("want UnresolvedName diagnostic")
	}
}

func TestRedeclarationInSameScope(t *testing.T) {
	_, engine := checkSource(t, "let x = 1\nlet x = 2")
	if !engine.HadError() {
		t.Fatal("want Redeclaration diagnostic")
	}
}

func TestShadowingAcrossScopesOK(t *testing.T) {
	_, engine := checkSource(t, "let x = 1\n{ let x = 2\nx }")
	if engine.HadError() {
		t.Fatalf("unexpected diagnostics: %v", engine.Entries())
	}
}

func TestWhileConditionMustBeBool(t *testing.T) {
	_, engine := checkSource(t, "while 1 { }")
	if !engine.HadError() {
		t.Fatal("want NotBoolean diagnostic for non-bool while condition")
	}
}

func TestIfExpressionBranchesMustAgree(t *testing.T) {
	_, engine := checkSource(t, "let x = if true { 1 } else { true }")
	if !engine.HadError() {
		t.Fatal("want BranchTypeMismatch diagnostic")
	}
}

func TestIfExpressionMatchingBranchesOK(t *testing.T) {
	tm, engine := checkSource(t, "let x = if true { 1 } else { 2 }")
	if engine.HadError() {
		t.Fatalf("unexpected diagnostics: %v", engine.Entries())
	}
	decl := tm.Stmts[0].(*typedast.VarDecl)
	ifExpr, ok := decl.Init.(*typedast.IfExpr)
	if !ok {
		t.Fatalf("want IfExpr, got %T", decl.Init)
	}
	if !ifExpr.Typ.Equals(types.INative) {
		t.Errorf("want branches to share native int type, got %s", ifExpr.Typ)
	}
}

func TestCompoundAssignRequiresArithmetic(t *testing.T) {
	_, engine := checkSource(t, "var b = true\nb += 1")
	if !engine.HadError() {
		t.Fatal("want NotArithmetic diagnostic for += on Bool")
	}
}

func TestComparisonProducesBool(t *testing.T) {
	tm, engine := checkSource(t, "let x = 1 < 2")
	if engine.HadError() {
		t.Fatalf("unexpected diagnostics: %v", engine.Entries())
	}
	decl := tm.Stmts[0].(*typedast.VarDecl)
	if !decl.Init.Type().Equals(types.Bool) {
		t.Errorf("want Bool, got %s", decl.Init.Type())
	}
}

func TestModuleAllocaCountTracksDeclarations(t *testing.T) {
	tm, engine := checkSource(t, "let x = 1\nvar y = 2\n{ let z = 3 }")
	if engine.HadError() {
		t.Fatalf("unexpected diagnostics: %v", engine.Entries())
	}
	if tm.AllocaCount != 3 {
		t.Errorf("want 3 slots, got %d", tm.AllocaCount)
	}
}

func TestSiblingScopesReuseSlots(t *testing.T) {
	tm, engine := checkSource(t, "{ let a = 1 }\n{ let b = 2 }")
	if engine.HadError() {
		t.Fatalf("unexpected diagnostics: %v", engine.Entries())
	}
	if tm.AllocaCount != 1 {
		t.Errorf("want 1 slot reused across sibling scopes, got %d", tm.AllocaCount)
	}
}

func TestIntLiteralAdoptsFloatHint(t *testing.T) {
	tm, engine := checkSource(t, "var x: Float64 = 1")
	if engine.HadError() {
		t.Fatalf("unexpected diagnostics: %v", engine.Entries())
	}
	decl := tm.Stmts[0].(*typedast.VarDecl)
	if !decl.Init.Type().Equals(types.Float64) {
		t.Errorf("want Float64, got %s", decl.Init.Type())
	}
	lit, ok := decl.Init.(*typedast.NumberLit)
	if !ok || !lit.IsFloat || lit.FloatValue != 1 {
		t.Errorf("want a float-valued NumberLit, got %#v", decl.Init)
	}
}

func TestIntLiteralUnifiesWithFloatLiteral(t *testing.T) {
	tm, engine := checkSource(t, "let x = 2.5 + 1")
	if engine.HadError() {
		t.Fatalf("unexpected diagnostics: %v", engine.Entries())
	}
	decl := tm.Stmts[0].(*typedast.VarDecl)
	if !decl.Init.Type().Equals(types.Float64) {
		t.Errorf("want Float64, got %s", decl.Init.Type())
	}
}
