package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/jtlang/juicec/internal/ast"
	"github.com/jtlang/juicec/internal/diag"
	"github.com/jtlang/juicec/internal/irgen"
	"github.com/jtlang/juicec/internal/typedast"
)

// writeFixture materializes src under a temp directory so the pipeline
// helpers, which all take a file path, can be exercised the same way the
// juicec binary invokes them from the command line.
func writeFixture(t *testing.T, name, src string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(src), 0644); err != nil {
		t.Fatalf("writing fixture %s: %v", name, err)
	}
	return path
}

const sampleProgram = `let x = 1 + 2 * 3
var y = true
while y {
	y = false
}
if x > 5 {
	x
} else {
	0
}
`

func TestDumpTokensSnapshot(t *testing.T) {
	path := writeFixture(t, "tokens.juice", sampleProgram)

	buf, err := loadSource(path)
	if err != nil {
		t.Fatalf("loadSource: %v", err)
	}
	diags := diag.New(buf)

	var out string
	for _, tok := range lexAll(buf, diags) {
		out += fmt.Sprintf("%-14s %q\n", tok.Kind, tok.Lexeme(buf))
	}
	if diags.HadError() {
		t.Fatalf("unexpected lex diagnostics")
	}

	snaps.MatchSnapshot(t, out)
}

func TestDumpASTSnapshot(t *testing.T) {
	path := writeFixture(t, "ast.juice", sampleProgram)

	mod, buf, diags, err := parseFile(path)
	if err != nil {
		t.Fatalf("parseFile: %v", err)
	}
	if diags.HadError() {
		t.Fatalf("unexpected parse diagnostics")
	}

	snaps.MatchSnapshot(t, ast.Dump(mod, buf))
}

func TestDumpTypedASTSnapshot(t *testing.T) {
	path := writeFixture(t, "typed.juice", sampleProgram)

	tm, _, diags, err := checkFile(path)
	if err != nil {
		t.Fatalf("checkFile: %v", err)
	}
	if diags.HadError() {
		t.Fatalf("unexpected check diagnostics")
	}

	snaps.MatchSnapshot(t, typedast.Dump(tm))
}

func TestEmitIRSnapshot(t *testing.T) {
	path := writeFixture(t, "ir.juice", "let x = 40 + 2\nx\n")

	tm, _, diags, err := checkFile(path)
	if err != nil {
		t.Fatalf("checkFile: %v", err)
	}
	if diags.HadError() {
		t.Fatalf("unexpected check diagnostics")
	}

	g := irgen.Generate(tm, moduleNameFor(path))
	defer g.Dispose()

	snaps.MatchSnapshot(t, g.String())
}

// TestBuildStopsAtTypeError guards spec.md §7's stage gate: a type error
// must stop the pipeline before emit-ir/build/run reaches irgen.Generate,
// rather than only catching a nil *typedast.Module (which only happens
// when parsing itself fails).
func TestBuildStopsAtTypeError(t *testing.T) {
	path := writeFixture(t, "typeerror.juice", "y = 2\n")
	outDir := t.TempDir()
	out := filepath.Join(outDir, "typeerror.o")

	prevOutput, prevTarget := buildOutput, buildTarget
	buildOutput = out
	buildTarget = ""
	t.Cleanup(func() { buildOutput, buildTarget = prevOutput, prevTarget })

	err := buildCmd.RunE(buildCmd, []string{path})
	if err == nil {
		t.Fatal("want an error for a program with an unresolved assignment target")
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Errorf("build must not emit an object file once the checker reports an error, found %s", out)
	}
}

func TestDumpTokensReportsLexErrors(t *testing.T) {
	path := writeFixture(t, "bad.juice", "let x = `\n")

	buf, err := loadSource(path)
	if err != nil {
		t.Fatalf("loadSource: %v", err)
	}
	diags := diag.New(buf)
	lexAll(buf, diags)

	if !diags.HadError() {
		t.Fatalf("expected a lex diagnostic for an unterminated/unknown token")
	}
}
