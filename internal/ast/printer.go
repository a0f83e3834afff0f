package ast

import (
	"fmt"
	"strings"

	"github.com/jtlang/juicec/internal/source"
)

// Dump renders m as an indented text tree, the `dumpAST` action's output
// (spec.md §6). Re-parsing a canonical source's Dump output is not
// supported; Dump is a debugging view, not a serialization format.
func Dump(m *Module, buf *source.Buffer) string {
	var sb strings.Builder
	sb.WriteString("Module\n")
	for _, s := range m.Stmts {
		dumpStmt(&sb, buf, s, 1)
	}
	return sb.String()
}

func indent(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
}

func dumpStmt(sb *strings.Builder, buf *source.Buffer, s Statement, depth int) {
	switch n := s.(type) {
	case *Block:
		indent(sb, depth)
		sb.WriteString("Block\n")
		for _, inner := range n.Stmts {
			dumpStmt(sb, buf, inner, depth+1)
		}
	case *ExprStmt:
		indent(sb, depth)
		sb.WriteString("ExprStmt\n")
		dumpExpr(sb, buf, n.X, depth+1)
	case *IfStmt:
		dumpIf(sb, buf, n.If, depth)
	case *WhileStmt:
		indent(sb, depth)
		sb.WriteString("While\n")
		dumpExpr(sb, buf, n.Cond, depth+1)
		dumpBody(sb, buf, n.Body, depth+1)
	case *VarDecl:
		indent(sb, depth)
		kw := "var"
		if !n.Mutable {
			kw = "let"
		}
		fmt.Fprintf(sb, "VarDecl(%s %s", kw, n.NameTok.Lexeme(buf))
		if n.Type != nil {
			fmt.Fprintf(sb, " : %s", n.Type.Name.Lexeme(buf))
		}
		sb.WriteString(")\n")
		dumpExpr(sb, buf, n.Init, depth+1)
	default:
		indent(sb, depth)
		fmt.Fprintf(sb, "<unknown statement %T>\n", s)
	}
}

func dumpIf(sb *strings.Builder, buf *source.Buffer, e *IfExpr, depth int) {
	indent(sb, depth)
	tag := "If"
	if e.IsStatement {
		tag = "IfStmt"
	}
	sb.WriteString(tag + "\n")
	dumpExpr(sb, buf, e.Cond, depth+1)
	dumpBody(sb, buf, e.Then, depth+1)
	for _, el := range e.Elifs {
		indent(sb, depth)
		sb.WriteString("Elif\n")
		dumpExpr(sb, buf, el.Cond, depth+1)
		dumpBody(sb, buf, el.Body, depth+1)
	}
	if e.Else != nil {
		indent(sb, depth)
		sb.WriteString("Else\n")
		dumpBody(sb, buf, *e.Else, depth+1)
	}
}

func dumpBody(sb *strings.Builder, buf *source.Buffer, b Body, depth int) {
	if b.Block != nil {
		dumpStmt(sb, buf, b.Block, depth)
		return
	}
	dumpExpr(sb, buf, b.Expr, depth)
}

func dumpExpr(sb *strings.Builder, buf *source.Buffer, e Expression, depth int) {
	switch n := e.(type) {
	case *BinaryExpr:
		indent(sb, depth)
		fmt.Fprintf(sb, "BinOp(%s)\n", n.Op.Kind)
		dumpExpr(sb, buf, n.Left, depth+1)
		dumpExpr(sb, buf, n.Right, depth+1)
	case *UnaryExpr:
		indent(sb, depth)
		fmt.Fprintf(sb, "UnaryOp(%s)\n", n.Op.Kind)
		dumpExpr(sb, buf, n.Operand, depth+1)
	case *NumberLit:
		indent(sb, depth)
		fmt.Fprintf(sb, "Number(%s)\n", n.Tok.Lexeme(buf))
	case *BoolLit:
		indent(sb, depth)
		fmt.Fprintf(sb, "Bool(%v)\n", n.Value)
	case *Ident:
		indent(sb, depth)
		fmt.Fprintf(sb, "Ident(%s)\n", n.Tok.Lexeme(buf))
	case *Grouping:
		indent(sb, depth)
		sb.WriteString("Grouping\n")
		dumpExpr(sb, buf, n.Inner, depth+1)
	case *IfExpr:
		dumpIf(sb, buf, n, depth)
	case *Block:
		dumpStmt(sb, buf, n, depth)
	default:
		indent(sb, depth)
		fmt.Fprintf(sb, "<unknown expression %T>\n", e)
	}
}
