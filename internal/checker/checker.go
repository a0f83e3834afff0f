// Package checker implements the bidirectional type checker that lowers
// the untyped ast.Module into a typedast.Module (spec.md §3.4, §4.3): every
// expression is checked against a downward types.Hint and resolves to an
// upward types.Type, the same split the teacher's internal/semantic uses
// for its expression-type inference pass, generalized to this language's
// smaller, closed type set.
package checker

import (
	"github.com/jtlang/juicec/internal/ast"
	"github.com/jtlang/juicec/internal/diag"
	"github.com/jtlang/juicec/internal/source"
	"github.com/jtlang/juicec/internal/typedast"
	"github.com/jtlang/juicec/internal/types"
)

// Checker holds the state for one compilation: the diagnostic sink and the
// scope stack backing the dense declaration vector (spec.md §3.5).
type Checker struct {
	buf      *source.Buffer
	diags    *diag.Engine
	scopes   []*scope
	decls    []decl
	cursor   int // number of slots live in the current scope chain
	maxSlots int // high-water mark across the whole module, for AllocaCount
}

// Check type-checks mod and returns the typed module. Diagnostics are
// appended to diags; the caller decides whether to proceed to IR generation
// based on diags.HadError(), per §7.
func Check(mod *ast.Module, buf *source.Buffer, diags *diag.Engine) *typedast.Module {
	c := &Checker{buf: buf, diags: diags}
	c.pushScope()

	out := &typedast.Module{}
	for _, s := range mod.Stmts {
		ts := c.checkStatement(s, types.None())
		out.Stmts = append(out.Stmts, ts)
	}
	if len(out.Stmts) > 0 {
		out.Typ = out.Stmts[len(out.Stmts)-1].Type()
	} else {
		out.Typ = types.Nothing
	}
	out.AllocaCount = c.maxSlots

	c.popScope()
	return out
}
