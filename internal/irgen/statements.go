package irgen

import (
	"tinygo.org/x/go-llvm"

	"github.com/jtlang/juicec/internal/typedast"
	"github.com/jtlang/juicec/internal/types"
)

// genStatement lowers one typed statement, returning the value and type it
// yields when used in value position (a block's or module's tail
// statement); every other caller discards both.
func (g *Generator) genStatement(s typedast.Statement) (llvm.Value, types.Type) {
	switch n := s.(type) {
	case *typedast.Block:
		return g.genBlock(n)
	case *typedast.ExprStmt:
		return g.genExpression(n.X)
	case *typedast.IfStmt:
		return g.genIfStmt(n.If)
	case *typedast.WhileStmt:
		return g.genWhile(n)
	case *typedast.VarDecl:
		return g.genVarDecl(n)
	}
	return llvm.Value{}, types.Nothing
}

func (g *Generator) genBlock(b *typedast.Block) (llvm.Value, types.Type) {
	var last llvm.Value
	lastType := types.Nothing
	for _, s := range b.Stmts {
		last, lastType = g.genStatement(s)
	}
	return last, lastType
}

func (g *Generator) genVarDecl(d *typedast.VarDecl) (llvm.Value, types.Type) {
	init, initType := g.genExpression(d.Init)
	alloca := g.declareSlot(d.Slot, initType, d.Name)
	g.builder.CreateStore(init, alloca)
	return llvm.Value{}, types.Nothing
}

func (g *Generator) genBody(b typedast.Body) (llvm.Value, types.Type) {
	if b.Block != nil {
		return g.genBlock(b.Block)
	}
	return g.genExpression(b.Expr)
}
