package irgen

import (
	"strings"
	"testing"

	"github.com/jtlang/juicec/internal/checker"
	"github.com/jtlang/juicec/internal/diag"
	"github.com/jtlang/juicec/internal/lexer"
	"github.com/jtlang/juicec/internal/parser"
	"github.com/jtlang/juicec/internal/source"
)

func generateSource(t *testing.T, input string) *Generator {
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
	tm := checker.Check(mod, buf, engine)
	if engine.HadError() {
		t.Fatalf("unexpected check diagnostics: %v", engine.Entries())
	}
	return Generate(tm, "test")
}

func TestGenerateEmitsMainFunction(t *testing.T) {
	g := generateSource(t, "let x = 1 + 2")
	defer g.Dispose()
	ir := g.String()
	if !strings.Contains(ir, "@main") {
		t.Errorf("expected a main function in IR, got:\n%s", ir)
	}
}

func TestGenerateLowersWhileLoop(t *testing.T) {
	g := generateSource(t, "var i = 0\nwhile i < 3 { i += 1 }")
	defer g.Dispose()
	ir := g.String()
	if !strings.Contains(ir, "while.cond") {
		t.Errorf("expected a while.cond block, got:\n%s", ir)
	}
}

func TestGenerateLowersIfExpression(t *testing.T) {
	g := generateSource(t, "let x = if true { 1 } else { 2 }")
	defer g.Dispose()
	ir := g.String()
	if !strings.Contains(ir, "if.end") {
		t.Errorf("expected an if.end merge block, got:\n%s", ir)
	}
}

// A sibling scope reuses the checker's slot index for its own declaration
// of a different type; the alloca for that slot must be rebuilt rather
// than reused, or the second scope's store would target a pointer typed
// for the first scope's declaration.
func TestGenerateRebuildsAllocaForReusedSlotOfDifferentType(t *testing.T) {
	g := generateSource(t, "{ let a = 1 }\n{ let b = 2.5 }")
	defer g.Dispose()
	ir := g.String()
	if !strings.Contains(ir, "alloca i") {
		t.Errorf("expected an integer alloca for the first scope's slot, got:\n%s", ir)
	}
	if !strings.Contains(ir, "alloca double") {
		t.Errorf("expected a double alloca for the second scope's reused slot, got:\n%s", ir)
	}
}
