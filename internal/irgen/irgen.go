// Package irgen lowers a typedast.Module into LLVM IR via
// tinygo.org/x/go-llvm, the way the retrieved vslc compiler's
// src/ir/llvm/transform.go lowers its own AST: one llvm.Context/Builder per
// compilation, a single "main" function, basic blocks per control-flow
// construct, and a symbol table of llvm.Value mapped here onto the
// checker's dense declaration slots instead of a name-keyed map (spec.md
// §4.4, §3.5).
package irgen

import (
	"fmt"

	"tinygo.org/x/go-llvm"

	"github.com/jtlang/juicec/internal/typedast"
	"github.com/jtlang/juicec/internal/types"
)

// Generator owns the LLVM context for one compilation. Callers must call
// Dispose when done with both the textual IR and any object emission.
type Generator struct {
	ctx     llvm.Context
	builder llvm.Builder
	mod     llvm.Module
	fn      llvm.Value

	// slots holds the alloca for each checker declaration slot, indexed the
	// same way typedast.VarRef.Slot is; slotTypes records the type each
	// slot's alloca was built for. Loads and stores take their type from the
	// typed node, not from slotTypes.
	slots     []llvm.Value
	slotTypes []types.Type

	printfFn llvm.Value
}

// Generate builds an LLVM module named moduleName containing a single
// `main` function that executes tm's statements in order and, if the
// module's overall value is printable, prints it before returning 0
// (spec.md §4.4's "final module-level print").
func Generate(tm *typedast.Module, moduleName string) *Generator {
	ctx := llvm.NewContext()
	builder := ctx.NewBuilder()
	mod := ctx.NewModule(moduleName)

	g := &Generator{
		ctx:       ctx,
		builder:   builder,
		mod:       mod,
		slots:     make([]llvm.Value, tm.AllocaCount),
		slotTypes: make([]types.Type, tm.AllocaCount),
	}

	fnType := llvm.FunctionType(llvm.Int32Type(), nil, false)
	fn := llvm.AddFunction(mod, "main", fnType)
	g.fn = fn

	entry := llvm.AddBasicBlock(fn, "entry")
	builder.SetInsertPointAtEnd(entry)

	var last llvm.Value
	lastType := types.Nothing
	for _, s := range tm.Stmts {
		last, lastType = g.genStatement(s)
	}

	if isPrintable(lastType) {
		g.genPrint(last, lastType)
	}

	builder.CreateRet(llvm.ConstInt(llvm.Int32Type(), 0, false))
	return g
}

func isPrintable(t types.Type) bool {
	return t.IsArithmetic() || t.Kind() == types.KindBool
}

// String renders the module as textual LLVM IR, the `emit-ir` action's
// output (spec.md §6).
func (g *Generator) String() string { return g.mod.String() }

// Dispose releases the underlying LLVM context. Safe to call once.
func (g *Generator) Dispose() {
	g.builder.Dispose()
	g.mod.Dispose()
	g.ctx.Dispose()
}

// llvmType maps a checker types.Type onto its LLVM representation.
func llvmType(t types.Type) llvm.Type {
	switch t.Kind() {
	case types.KindBool:
		return llvm.Int1Type()
	case types.KindInt:
		return llvm.IntType(int(t.IntWidth()))
	case types.KindFloat:
		switch t.FloatKind() {
		case types.F16:
			return llvm.HalfType()
		case types.F32:
			return llvm.FloatType()
		case types.F64:
			return llvm.DoubleType()
		case types.F128:
			return llvm.FP128Type()
		}
	}
	return llvm.VoidType()
}

// declareSlot allocates a fresh alloca for slot and records it as the
// current occupant, for genVarDecl to call at a declaration site. The
// checker reuses a slot index across sibling scopes once the first
// scope's lifetime ends (spec.md §3.5), so a later declaration at the
// same index may carry a different type than an earlier one did — the
// alloca must be rebuilt here rather than reused, or a reused slot would
// keep the wrong-typed pointer from its previous occupant.
func (g *Generator) declareSlot(slot int, t types.Type, name string) llvm.Value {
	g.slots[slot] = g.builder.CreateAlloca(llvmType(t), name)
	g.slotTypes[slot] = t
	return g.slots[slot]
}

// slotAlloca returns the alloca already materialized for slot by a prior
// declareSlot call. Declarations are visited in program order by
// genVarDecl before any use, so by the time a VarRef or assignment reads
// or writes a slot its alloca already exists.
func (g *Generator) slotAlloca(slot int, t types.Type, name string) llvm.Value {
	if slot < 0 {
		// Unresolved-name placeholder from the checker; produce an
		// otherwise-unused scratch alloca so code generation can proceed
		// without a nil llvm.Value, matching the checker's "keep going
		// after a diagnostic" policy.
		return g.builder.CreateAlloca(llvmType(t), fmt.Sprintf("$err.%s", name))
	}
	if g.slots[slot].IsNil() {
		// Defensive fallback only; a well-typed program always reaches a
		// VarDecl for a slot before any reference to it.
		g.slots[slot] = g.builder.CreateAlloca(llvmType(t), name)
		g.slotTypes[slot] = t
	}
	return g.slots[slot]
}
