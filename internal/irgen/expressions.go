package irgen

import (
	"tinygo.org/x/go-llvm"

	"github.com/jtlang/juicec/internal/lexer"
	"github.com/jtlang/juicec/internal/typedast"
	"github.com/jtlang/juicec/internal/types"
)

func (g *Generator) genExpression(e typedast.Expression) (llvm.Value, types.Type) {
	switch n := e.(type) {
	case *typedast.BinaryExpr:
		return g.genBinary(n)
	case *typedast.UnaryExpr:
		return g.genUnary(n)
	case *typedast.NumberLit:
		return g.genNumberLit(n)
	case *typedast.BoolLit:
		v := uint64(0)
		if n.Value {
			v = 1
		}
		return llvm.ConstInt(llvm.Int1Type(), v, false), types.Bool
	case *typedast.VarRef:
		return g.genVarRef(n)
	case *typedast.Grouping:
		return g.genExpression(n.Inner)
	case *typedast.IfExpr:
		return g.genIfExpr(n)
	case *typedast.Block:
		return g.genBlock(n)
	}
	return llvm.Value{}, types.Nothing
}

func (g *Generator) genNumberLit(n *typedast.NumberLit) (llvm.Value, types.Type) {
	if n.IsFloat {
		return llvm.ConstFloat(llvmType(n.Typ), n.FloatValue), n.Typ
	}
	return llvm.ConstInt(llvmType(n.Typ), n.IntValue, false), n.Typ
}

func (g *Generator) genVarRef(n *typedast.VarRef) (llvm.Value, types.Type) {
	alloca := g.slotAlloca(n.Slot, n.Typ, n.Name)
	return g.builder.CreateLoad(llvmType(n.Typ), alloca, n.Name), n.Typ
}

func (g *Generator) genUnary(n *typedast.UnaryExpr) (llvm.Value, types.Type) {
	operand, t := g.genExpression(n.Operand)
	if n.Op.Kind == lexer.BANG {
		return g.builder.CreateXor(operand, llvm.ConstInt(llvm.Int1Type(), 1, false), ""), types.Bool
	}
	if t.IsFloat() {
		return g.builder.CreateFNeg(operand, ""), t
	}
	return g.builder.CreateNeg(operand, ""), t
}

var assignOps = map[lexer.Kind]bool{
	lexer.ASSIGN: true, lexer.PLUS_EQ: true, lexer.MINUS_EQ: true,
	lexer.STAR_EQ: true, lexer.SLASH_EQ: true, lexer.PCT_EQ: true,
}

func (g *Generator) genBinary(n *typedast.BinaryExpr) (llvm.Value, types.Type) {
	switch {
	case assignOps[n.Op.Kind]:
		return g.genAssign(n)
	case n.Op.Kind == lexer.AND_AND:
		return g.genShortCircuit(n, false)
	case n.Op.Kind == lexer.OR_OR:
		return g.genShortCircuit(n, true)
	}

	left, t := g.genExpression(n.Left)
	right, _ := g.genExpression(n.Right)

	switch n.Op.Kind {
	case lexer.EQ, lexer.NEQ, lexer.LT, lexer.LEQ, lexer.GT, lexer.GEQ:
		return g.genCompare(n.Op.Kind, left, right, t), types.Bool
	default:
		return g.genArith(n.Op.Kind, left, right, t), t
	}
}

func (g *Generator) genArith(op lexer.Kind, left, right llvm.Value, t types.Type) llvm.Value {
	if t.IsFloat() {
		switch op {
		case lexer.PLUS:
			return g.builder.CreateFAdd(left, right, "")
		case lexer.MINUS:
			return g.builder.CreateFSub(left, right, "")
		case lexer.STAR:
			return g.builder.CreateFMul(left, right, "")
		case lexer.SLASH:
			return g.builder.CreateFDiv(left, right, "")
		case lexer.PCT:
			return g.builder.CreateFRem(left, right, "")
		}
	}
	switch op {
	case lexer.PLUS:
		return g.builder.CreateAdd(left, right, "")
	case lexer.MINUS:
		return g.builder.CreateSub(left, right, "")
	case lexer.STAR:
		return g.builder.CreateMul(left, right, "")
	case lexer.SLASH:
		return g.builder.CreateSDiv(left, right, "")
	case lexer.PCT:
		return g.builder.CreateSRem(left, right, "")
	}
	return llvm.Value{}
}

func (g *Generator) genCompare(op lexer.Kind, left, right llvm.Value, t types.Type) llvm.Value {
	if t.IsFloat() {
		var pred llvm.FloatPredicate
		switch op {
		case lexer.EQ:
			pred = llvm.FloatOEQ
		case lexer.NEQ:
			pred = llvm.FloatONE
		case lexer.LT:
			pred = llvm.FloatOLT
		case lexer.LEQ:
			pred = llvm.FloatOLE
		case lexer.GT:
			pred = llvm.FloatOGT
		case lexer.GEQ:
			pred = llvm.FloatOGE
		}
		return g.builder.CreateFCmp(pred, left, right, "")
	}
	var pred llvm.IntPredicate
	switch op {
	case lexer.EQ:
		pred = llvm.IntEQ
	case lexer.NEQ:
		pred = llvm.IntNE
	case lexer.LT:
		pred = llvm.IntSLT
	case lexer.LEQ:
		pred = llvm.IntSLE
	case lexer.GT:
		pred = llvm.IntSGT
	case lexer.GEQ:
		pred = llvm.IntSGE
	}
	return g.builder.CreateICmp(pred, left, right, "")
}

// genAssign lowers `=` as a direct store and the compound-assignment family
// as a load-modify-store against the target slot's alloca, returning the stored
// value so a chained assignment (`a = b = c`) can keep composing.
func (g *Generator) genAssign(n *typedast.BinaryExpr) (llvm.Value, types.Type) {
	target := n.Left.(*typedast.VarRef)
	alloca := g.slotAlloca(target.Slot, target.Typ, target.Name)

	rhs, _ := g.genExpression(n.Right)

	var toStore llvm.Value
	if n.Op.Kind == lexer.ASSIGN {
		toStore = rhs
	} else {
		current := g.builder.CreateLoad(llvmType(target.Typ), alloca, target.Name)
		var op lexer.Kind
		switch n.Op.Kind {
		case lexer.PLUS_EQ:
			op = lexer.PLUS
		case lexer.MINUS_EQ:
			op = lexer.MINUS
		case lexer.STAR_EQ:
			op = lexer.STAR
		case lexer.SLASH_EQ:
			op = lexer.SLASH
		case lexer.PCT_EQ:
			op = lexer.PCT
		}
		toStore = g.genArith(op, current, rhs, target.Typ)
	}

	g.builder.CreateStore(toStore, alloca)
	return toStore, target.Typ
}
