package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jtlang/juicec/internal/ast"
	"github.com/jtlang/juicec/internal/checker"
	"github.com/jtlang/juicec/internal/diag"
	"github.com/jtlang/juicec/internal/lexer"
	"github.com/jtlang/juicec/internal/parser"
	"github.com/jtlang/juicec/internal/source"
	"github.com/jtlang/juicec/internal/typedast"
)

// moduleNameFor derives an LLVM module name from a source path, the way
// vslc's transform.go names its module after the input file.
func moduleNameFor(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// wantColor resolves the --color tri-state flag against whether f looks
// like a terminal, the way the juice C++ original's ColoredStringStream
// decides on ANSI output.
func wantColor(f *os.File) bool {
	switch colorMode {
	case "always":
		return true
	case "never":
		return false
	default:
		info, err := f.Stat()
		if err != nil {
			return false
		}
		return info.Mode()&os.ModeCharDevice != 0
	}
}

// reportAndExit writes every diagnostic in diags to stderr and returns an
// error when any of them is an error-severity diagnostic, per spec.md §7's
// hadError() gate.
func reportAndExit(diags *diag.Engine) error {
	diags.WriteTo(os.Stderr, wantColor(os.Stderr))
	if diags.HadError() {
		return fmt.Errorf("compilation failed with %d diagnostic(s)", diags.Count())
	}
	return nil
}

func loadSource(path string) (*source.Buffer, error) {
	buf, err := source.Load(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", path, err)
	}
	return buf, nil
}

// lexAll runs the lexer over buf, for the dump-tokens action.
func lexAll(buf *source.Buffer, diags *diag.Engine) []lexer.Token {
	l := lexer.New(buf, diags)
	var toks []lexer.Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Kind == lexer.EOF {
			break
		}
	}
	return toks
}

// parseFile lexes and parses path's contents, for any action at dump-ast or
// later in the pipeline.
func parseFile(path string) (*ast.Module, *source.Buffer, *diag.Engine, error) {
	buf, err := loadSource(path)
	if err != nil {
		return nil, nil, nil, err
	}
	diags := diag.New(buf)
	l := lexer.New(buf, diags)
	mod := parser.ParseModule(buf, l, diags)
	return mod, buf, diags, nil
}

// checkFile parses and type-checks path, for any action at emit-ir or
// later.
func checkFile(path string) (*typedast.Module, *source.Buffer, *diag.Engine, error) {
	mod, buf, diags, err := parseFile(path)
	if err != nil {
		return nil, nil, nil, err
	}
	if diags.HadError() {
		return nil, buf, diags, nil
	}
	tm := checker.Check(mod, buf, diags)
	return tm, buf, diags, nil
}
