package irgen

import (
	"tinygo.org/x/go-llvm"

	"github.com/jtlang/juicec/internal/typedast"
	"github.com/jtlang/juicec/internal/types"
)

func (g *Generator) genIfStmt(n *typedast.IfExpr) (llvm.Value, types.Type) {
	return g.genIf(n, false)
}

func (g *Generator) genIfExpr(n *typedast.IfExpr) (llvm.Value, types.Type) {
	return g.genIf(n, true)
}

type ifArm struct {
	cond typedast.Expression
	body typedast.Body
}

type phiIncoming struct {
	val   llvm.Value
	block llvm.BasicBlock
}

// genIf lowers an if/elif*/else chain to basic blocks. Every arm gets its
// own "then" block guarded by a conditional branch into the next arm's
// test; all arms (and the else, when present) branch into a shared merge
// block. When wantValue is set, each arm's tail value feeds a phi node in
// the merge block (spec.md §4.4); as a statement, the branch values are
// discarded and the merge block carries no phi.
func (g *Generator) genIf(n *typedast.IfExpr, wantValue bool) (llvm.Value, types.Type) {
	arms := make([]ifArm, 0, 1+len(n.Elifs))
	arms = append(arms, ifArm{cond: n.Cond, body: n.Then})
	for _, el := range n.Elifs {
		arms = append(arms, ifArm{cond: el.Cond, body: el.Body})
	}

	mergeBB := llvm.AddBasicBlock(g.fn, "if.end")

	var incomings []phiIncoming
	resultType := types.Nothing

	for _, arm := range arms {
		condVal, _ := g.genExpression(arm.cond)
		thenBB := llvm.AddBasicBlock(g.fn, "if.then")
		nextBB := llvm.AddBasicBlock(g.fn, "if.next")
		g.builder.CreateCondBr(condVal, thenBB, nextBB)

		g.builder.SetInsertPointAtEnd(thenBB)
		val, t := g.genBody(arm.body)
		resultType = t
		if wantValue {
			incomings = append(incomings, phiIncoming{val: val, block: g.builder.GetInsertBlock()})
		}
		g.builder.CreateBr(mergeBB)

		g.builder.SetInsertPointAtEnd(nextBB)
	}

	if n.Else != nil {
		val, t := g.genBody(*n.Else)
		resultType = t
		if wantValue {
			incomings = append(incomings, phiIncoming{val: val, block: g.builder.GetInsertBlock()})
		}
	}
	g.builder.CreateBr(mergeBB)

	g.builder.SetInsertPointAtEnd(mergeBB)

	if !wantValue {
		return llvm.Value{}, types.Nothing
	}

	phi := g.builder.CreatePHI(llvmType(resultType), "if.result")
	vals := make([]llvm.Value, len(incomings))
	blocks := make([]llvm.BasicBlock, len(incomings))
	for i, inc := range incomings {
		vals[i] = inc.val
		blocks[i] = inc.block
	}
	phi.AddIncoming(vals, blocks)
	return phi, resultType
}

// genWhile lowers a while loop to the classic cond/body/end block triple.
func (g *Generator) genWhile(w *typedast.WhileStmt) (llvm.Value, types.Type) {
	condBB := llvm.AddBasicBlock(g.fn, "while.cond")
	bodyBB := llvm.AddBasicBlock(g.fn, "while.body")
	endBB := llvm.AddBasicBlock(g.fn, "while.end")

	g.builder.CreateBr(condBB)

	g.builder.SetInsertPointAtEnd(condBB)
	condVal, _ := g.genExpression(w.Cond)
	g.builder.CreateCondBr(condVal, bodyBB, endBB)

	g.builder.SetInsertPointAtEnd(bodyBB)
	g.genBody(w.Body)
	g.builder.CreateBr(condBB)

	g.builder.SetInsertPointAtEnd(endBB)
	return llvm.Value{}, types.Nothing
}

// genShortCircuit lowers && and || without materializing the right operand
// unless it is needed: isOr selects OR semantics (skip-on-true) versus AND
// (skip-on-false), per spec.md §4.4.
func (g *Generator) genShortCircuit(n *typedast.BinaryExpr, isOr bool) (llvm.Value, types.Type) {
	left, _ := g.genExpression(n.Left)
	startBB := g.builder.GetInsertBlock()

	rhsBB := llvm.AddBasicBlock(g.fn, "logic.rhs")
	mergeBB := llvm.AddBasicBlock(g.fn, "logic.end")

	if isOr {
		g.builder.CreateCondBr(left, mergeBB, rhsBB)
	} else {
		g.builder.CreateCondBr(left, rhsBB, mergeBB)
	}

	g.builder.SetInsertPointAtEnd(rhsBB)
	right, _ := g.genExpression(n.Right)
	rhsEndBB := g.builder.GetInsertBlock()
	g.builder.CreateBr(mergeBB)

	g.builder.SetInsertPointAtEnd(mergeBB)
	phi := g.builder.CreatePHI(llvm.Int1Type(), "logic.result")
	phi.AddIncoming([]llvm.Value{left, right}, []llvm.BasicBlock{startBB, rhsEndBB})
	return phi, types.Bool
}

// genPrint emits a printf call for the module's final value, declaring
// printf on first use. The format verb is chosen from the value's type;
// Bool prints as "true"/"false" via a select rather than a format verb,
// since libc has none for it.
func (g *Generator) genPrint(val llvm.Value, t types.Type) {
	printf := g.printfDecl()

	if t.Kind() == types.KindBool {
		trueStr := g.builder.CreateGlobalStringPtr("true\n", "$str.true")
		falseStr := g.builder.CreateGlobalStringPtr("false\n", "$str.false")
		fmtStr := g.builder.CreateSelect(val, trueStr, falseStr, "")
		g.builder.CreateCall(printf.GlobalValueType(), printf, []llvm.Value{fmtStr}, "")
		return
	}

	var verb string
	switch {
	case t.IsFloat():
		verb = "%f\n"
	default:
		verb = "%ld\n"
	}
	fmtStr := g.builder.CreateGlobalStringPtr(verb, "$str.fmt")

	arg := val
	if t.IsFloat() && t.FloatKind() != types.F64 {
		arg = g.builder.CreateFPExt(val, llvm.DoubleType(), "")
	}
	g.builder.CreateCall(printf.GlobalValueType(), printf, []llvm.Value{fmtStr, arg}, "")
}

func (g *Generator) printfDecl() llvm.Value {
	if !g.printfFn.IsNil() {
		return g.printfFn
	}
	paramTypes := []llvm.Type{llvm.PointerType(llvm.Int8Type(), 0)}
	fnType := llvm.FunctionType(llvm.Int32Type(), paramTypes, true)
	g.printfFn = llvm.AddFunction(g.mod, "printf", fnType)
	return g.printfFn
}
