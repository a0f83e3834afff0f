// Package diag is the cross-cutting diagnostic sink every pipeline stage
// writes to. It is append-only: nothing in the pipeline removes an entry
// once reported, so a single run surfaces as many problems as possible
// before the driver decides whether to continue.
package diag

import (
	"io"

	"github.com/jtlang/juicec/internal/source"
)

// Engine accumulates diagnostics for a single compilation. A fresh Engine is
// constructed per file, matching the single-threaded, no-shared-state model
// described in the pipeline's concurrency notes.
type Engine struct {
	buf     *source.Buffer
	entries []Diagnostic
	errors  int
}

// New creates an Engine bound to buf, used to resolve line/column and to
// quote source text when formatting.
func New(buf *source.Buffer) *Engine {
	return &Engine{buf: buf}
}

// Errorf records an error-severity diagnostic.
func (e *Engine) Errorf(id ID, r source.Range, args ...interface{}) {
	e.entries = append(e.entries, Diagnostic{Severity: SeverityError, ID: id, Range: r, Args: args})
	e.errors++
}

// Warnf records a warning-severity diagnostic.
func (e *Engine) Warnf(id ID, r source.Range, args ...interface{}) {
	e.entries = append(e.entries, Diagnostic{Severity: SeverityWarning, ID: id, Range: r, Args: args})
}

// HadError reports whether any error-severity diagnostic has been recorded.
// The driver consults this after parsing and after type checking to decide
// whether to proceed.
func (e *Engine) HadError() bool { return e.errors > 0 }

// Count returns the number of recorded diagnostics.
func (e *Engine) Count() int { return len(e.entries) }

// Entries returns the recorded diagnostics in report order.
func (e *Engine) Entries() []Diagnostic { return e.entries }

// WriteTo renders every recorded diagnostic to w, in the order reported.
func (e *Engine) WriteTo(w io.Writer, color bool) {
	for _, d := range e.entries {
		io.WriteString(w, d.Format(e.buf, color))
	}
}
