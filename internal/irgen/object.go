package irgen

import (
	"fmt"

	"tinygo.org/x/go-llvm"
)

var targetInitOnce bool

// initTarget initializes the native target backend exactly once per
// process, mirroring the vslc transform's InitializeAllTarget* calls but
// narrowed to the native target since cross-compilation is out of scope.
func initTarget() {
	if targetInitOnce {
		return
	}
	llvm.InitializeNativeTarget()
	llvm.InitializeNativeAsmPrinter()
	targetInitOnce = true
}

// EmitObject compiles the generated module to a native object file at
// path, the `emitObject` action (spec.md §6). target overrides the host
// triple when non-empty (SPEC_FULL.md §2.5's --target flag).
func (g *Generator) EmitObject(path, target string) error {
	initTarget()

	triple := target
	if triple == "" {
		triple = llvm.DefaultTargetTriple()
	}

	tgt, err := llvm.GetTargetFromTriple(triple)
	if err != nil {
		return fmt.Errorf("resolve target triple %q: %w", triple, err)
	}

	tm := tgt.CreateTargetMachine(triple, "generic", "",
		llvm.CodeGenLevelDefault, llvm.RelocDefault, llvm.CodeModelDefault)
	defer tm.Dispose()

	td := tm.CreateTargetData()
	defer td.Dispose()
	g.mod.SetDataLayout(td.String())
	g.mod.SetTarget(tm.Triple())

	if err := llvm.VerifyModule(g.mod, llvm.ReturnStatusAction); err != nil {
		return fmt.Errorf("module verification failed: %w", err)
	}

	return tm.EmitToFile(g.mod, path, llvm.ObjectFile)
}
