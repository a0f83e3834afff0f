package typedast

import (
	"fmt"
	"strings"
)

// Dump renders a typed module as an indented text tree, annotating every
// node with its resolved type. This is the typed-AST view named in the
// pipeline's list of producible outputs, distinct from the untyped
// ast.Dump used by the dump-ast action.
func Dump(m *Module) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Module : %s\n", m.Typ)
	for _, s := range m.Stmts {
		dumpStmt(&sb, s, 1)
	}
	return sb.String()
}

func indent(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
}

func dumpStmt(sb *strings.Builder, s Statement, depth int) {
	switch n := s.(type) {
	case *Block:
		indent(sb, depth)
		fmt.Fprintf(sb, "Block : %s\n", n.Typ)
		for _, inner := range n.Stmts {
			dumpStmt(sb, inner, depth+1)
		}
	case *ExprStmt:
		indent(sb, depth)
		sb.WriteString("ExprStmt\n")
		dumpExpr(sb, n.X, depth+1)
	case *IfStmt:
		dumpIf(sb, n.If, depth)
	case *WhileStmt:
		indent(sb, depth)
		sb.WriteString("While\n")
		dumpExpr(sb, n.Cond, depth+1)
		dumpBody(sb, n.Body, depth+1)
	case *VarDecl:
		indent(sb, depth)
		kw := "var"
		if !n.Mutable {
			kw = "let"
		}
		fmt.Fprintf(sb, "VarDecl(%s %s : %s, slot=%d)\n", kw, n.Name, n.Init.Type(), n.Slot)
		dumpExpr(sb, n.Init, depth+1)
	default:
		indent(sb, depth)
		fmt.Fprintf(sb, "<unknown statement %T>\n", s)
	}
}

func dumpIf(sb *strings.Builder, e *IfExpr, depth int) {
	indent(sb, depth)
	tag := "If"
	if e.IsStatement {
		tag = "IfStmt"
	}
	fmt.Fprintf(sb, "%s : %s\n", tag, e.Typ)
	dumpExpr(sb, e.Cond, depth+1)
	dumpBody(sb, e.Then, depth+1)
	for _, el := range e.Elifs {
		indent(sb, depth)
		sb.WriteString("Elif\n")
		dumpExpr(sb, el.Cond, depth+1)
		dumpBody(sb, el.Body, depth+1)
	}
	if e.Else != nil {
		indent(sb, depth)
		sb.WriteString("Else\n")
		dumpBody(sb, *e.Else, depth+1)
	}
}

func dumpBody(sb *strings.Builder, b Body, depth int) {
	if b.Block != nil {
		dumpStmt(sb, b.Block, depth)
		return
	}
	dumpExpr(sb, b.Expr, depth)
}

func dumpExpr(sb *strings.Builder, e Expression, depth int) {
	switch n := e.(type) {
	case *BinaryExpr:
		indent(sb, depth)
		fmt.Fprintf(sb, "BinOp(%s) : %s\n", n.Op.Kind, n.Typ)
		dumpExpr(sb, n.Left, depth+1)
		dumpExpr(sb, n.Right, depth+1)
	case *UnaryExpr:
		indent(sb, depth)
		fmt.Fprintf(sb, "UnaryOp(%s) : %s\n", n.Op.Kind, n.Typ)
		dumpExpr(sb, n.Operand, depth+1)
	case *NumberLit:
		indent(sb, depth)
		if n.IsFloat {
			fmt.Fprintf(sb, "Number(%v) : %s\n", n.FloatValue, n.Typ)
		} else {
			fmt.Fprintf(sb, "Number(%d) : %s\n", n.IntValue, n.Typ)
		}
	case *BoolLit:
		indent(sb, depth)
		fmt.Fprintf(sb, "Bool(%v) : Bool\n", n.Value)
	case *VarRef:
		indent(sb, depth)
		fmt.Fprintf(sb, "Ref(%s, slot=%d) : %s\n", n.Name, n.Slot, n.Typ)
	case *Grouping:
		indent(sb, depth)
		sb.WriteString("Grouping\n")
		dumpExpr(sb, n.Inner, depth+1)
	case *IfExpr:
		dumpIf(sb, n, depth)
	case *Block:
		dumpStmt(sb, n, depth)
	default:
		indent(sb, depth)
		fmt.Fprintf(sb, "<unknown expression %T>\n", e)
	}
}
