// Package ast defines the untyped syntax tree produced by the parser
// (spec.md §3.2). It is a sum type over three tiers — Expression, Statement,
// and Declaration — implemented as a closed set of Go interfaces with one
// struct per variant. Every node uniquely owns its children; there are no
// back-edges at this tier. Nodes are created during parsing and consumed
// (moved-from, in spirit) by the type checker.
package ast

import (
	"github.com/jtlang/juicec/internal/lexer"
	"github.com/jtlang/juicec/internal/source"
)

// Node is the common interface every AST node satisfies.
type Node interface {
	// Range returns the node's full source span, for diagnostics.
	Range() source.Range
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	exprNode()
}

// Statement is any node that performs an action; it may or may not produce
// a value (an if-expression used as a statement has type Nothing).
type Statement interface {
	Node
	stmtNode()
}

// Module owns an ordered sequence of top-level statements; it is the root
// of the untyped AST and corresponds to the entire compilation unit.
type Module struct {
	Stmts []Statement
}

func (m *Module) Range() source.Range {
	if len(m.Stmts) == 0 {
		return source.Range{}
	}
	return m.Stmts[0].Range().Join(m.Stmts[len(m.Stmts)-1].Range())
}

// TypeRepr is the untyped, syntactic representation of a type annotation —
// just the identifier token naming a built-in type (spec.md §3.2,
// "declaration ... optional type representation"). The checker resolves it
// to a types.Type.
type TypeRepr struct {
	Name lexer.Token
}

func (t *TypeRepr) Range() source.Range { return t.Name.Range }
