package checker

import (
	"github.com/jtlang/juicec/internal/diag"
	"github.com/jtlang/juicec/internal/source"
	"github.com/jtlang/juicec/internal/types"
)

// decl is one entry in the checker's dense declaration vector; its index in
// Checker.decls is the slot the IR generator later allocates a stack slot
// for (spec.md §3.5, §4.4).
type decl struct {
	name    string
	mutable bool
	typ     types.Type
}

// scope maps names visible in one lexical level to slots in decls. Scopes
// are pushed/popped as a stack; a name declared in an inner scope shadows,
// rather than conflicts with, the same name in an outer one. start records
// the cursor at the point the scope was opened, so popping it can free the
// slots the scope handed out back to its sibling.
type scope struct {
	names map[string]int
	start int
}

// pushScope opens a new lexical level.
func (c *Checker) pushScope() {
	c.scopes = append(c.scopes, &scope{names: make(map[string]int), start: c.cursor})
}

// popScope closes the innermost lexical level, freeing the slots it handed
// out for reuse by a later sibling scope (spec.md §3.5, §4.3), the same
// overwrite-or-append behavior as the original TypeChecker::State::Scope::
// addDeclaration. AllocaCount tracks the high-water mark separately, since
// the cursor itself shrinks back down here.
func (c *Checker) popScope() {
	c.cursor = c.scopes[len(c.scopes)-1].start
	c.scopes = c.scopes[:len(c.scopes)-1]
}

func (c *Checker) top() *scope { return c.scopes[len(c.scopes)-1] }

// declare adds name to the current scope, reporting Redeclaration if it is
// already bound in that same scope (shadowing an outer scope is fine). It
// returns the slot assigned regardless, so callers can keep checking. The
// slot is taken from the current cursor position, overwriting a slot freed
// by an already-closed sibling scope when one is available, and only
// appending to decls past the previous high-water mark.
func (c *Checker) declare(name string, mutable bool, typ types.Type, at source.Range) int {
	top := c.top()
	slot := c.cursor
	d := decl{name: name, mutable: mutable, typ: typ}
	if slot < len(c.decls) {
		c.decls[slot] = d
	} else {
		c.decls = append(c.decls, d)
	}
	c.cursor++
	if c.cursor > c.maxSlots {
		c.maxSlots = c.cursor
	}
	if _, exists := top.names[name]; exists {
		c.diags.Errorf(diag.Redeclaration, at, name)
	}
	top.names[name] = slot
	return slot
}

// lookup searches the scope stack innermost-first.
func (c *Checker) lookup(name string) (decl, int, bool) {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if slot, ok := c.scopes[i].names[name]; ok {
			return c.decls[slot], slot, true
		}
	}
	return decl{}, -1, false
}
